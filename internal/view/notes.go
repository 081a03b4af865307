package view

import (
	"net/url"
	"strconv"

	"github.com/Leonard-ssj/portfolio/internal/content"
	"github.com/Leonard-ssj/portfolio/internal/markdown"
	"github.com/Leonard-ssj/portfolio/internal/notes"
	cmp "maragu.dev/gomponents"
	ui "maragu.dev/gomponents/components"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// NotesList is a filtered notes listing.
type NotesList struct {
	Query      notes.Query
	Categories []string
	Results    []content.Note
}

// NotesPage renders the searchable notes index.
func NotesPage(p Page, l NotesList) cmp.Node {
	n := p.Site.Notes
	return Layout(p,
		g.Section(
			g.Class("section notes"),
			g.A(g.Href("/"), cmp.Text(p.L("backHome"))),
			g.H1(cmp.Text(p.T(n.Title))),
			g.P(g.Class("subtitle"), cmp.Text(p.T(n.Subtitle))),
			g.Form(
				g.Method("get"),
				g.Action("/notes"),
				g.Class("notes-search"),
				g.Input(
					g.Type("search"),
					g.Name("q"),
					g.Value(l.Query.Text),
					g.Placeholder(p.T(n.SearchPlaceholder)),
					cmp.Attr("autocomplete", "off"),
					hx.Get("/notes/results"),
					hx.Trigger("keyup changed, search"),
					hx.Target("#notes-results"),
					hx.Include("[name='category']"),
				),
				g.Input(g.Type("hidden"), g.Name("category"), g.Value(l.Query.Category)),
			),
			g.Nav(g.Class("chips"), categoryChips(p, l)),
			NotesResults(p, l),
		),
	)
}

func categoryChips(p Page, l NotesList) cmp.Node {
	chip := func(label, category string) cmp.Node {
		q := url.Values{}
		if l.Query.Text != "" {
			q.Set("q", l.Query.Text)
		}
		if category != "" {
			q.Set("category", category)
		}
		href := "/notes"
		if enc := q.Encode(); enc != "" {
			href += "?" + enc
		}
		return g.A(
			ui.Classes{"chip": true, "chip-active": l.Query.Category == category},
			g.Href(href),
			cmp.Text(label),
		)
	}
	chips := []cmp.Node{chip(p.L("allCategories"), "")}
	for _, c := range l.Categories {
		chips = append(chips, chip(c, c))
	}
	return cmp.Group(chips)
}

// NotesResults is the result list, swapped on every search keystroke.
func NotesResults(p Page, l NotesList) cmp.Node {
	return g.Div(
		g.ID("notes-results"),
		g.Aria("live", "polite"),
		g.P(g.Class("muted"), cmp.Textf("%d %s", len(l.Results), p.L("results"))),
		cmp.If(len(l.Results) == 0, g.P(cmp.Text(p.L("noNotes")))),
		g.Div(g.Class("cards"), cmp.Map(l.Results, func(n content.Note) cmp.Node {
			return noteCard(p, n)
		})),
	)
}

func noteCard(p Page, n content.Note) cmp.Node {
	href := "/notes/" + url.PathEscape(n.Slug)
	return g.Article(
		g.Class("card note"),
		noteMeta(p, n),
		g.H3(g.A(g.Href(href), cmp.Text(p.T(n.Title)))),
		g.P(cmp.Text(p.T(n.Summary))),
		g.A(g.Href(href), cmp.Text(p.L("readMore"))),
	)
}

func noteMeta(p Page, n content.Note) cmp.Node {
	return g.P(
		g.Class("note-meta"),
		g.Span(cmp.Text(n.Date)),
		g.Span(g.Class("badge"), cmp.Text(p.T(n.Category))),
		g.Span(cmp.Text(strconv.Itoa(notes.ReadMinutes(p.T(n.Content)))+" "+p.L("minRead"))),
	)
}

// NotePage renders one note with its table of contents.
func NotePage(p Page, n content.Note) cmp.Node {
	doc := markdown.Parse(p.T(n.Content))
	return Layout(p,
		g.Article(
			g.Class("section note-detail"),
			g.A(g.Href("/notes"), cmp.Text(p.L("backNotes"))),
			g.H1(cmp.Text(p.T(n.Title))),
			noteMeta(p, n),
			g.Aside(
				g.Class("toc"),
				g.H2(cmp.Text(p.L("onThisNote"))),
				cmp.If(len(doc.Headings) == 0, g.P(g.Class("muted"), cmp.Text(p.L("noSections")))),
				g.Ol(cmp.Map(doc.Headings, func(h markdown.Heading) cmp.Node {
					return g.Li(g.A(g.Href("#"+h.ID), cmp.Text(h.Title)))
				})),
			),
			g.Div(g.Class("note-body"), Markdown(p, doc)),
		),
	)
}

// NoteNotFound is shown for unknown slugs.
func NoteNotFound(p Page) cmp.Node {
	return Layout(p,
		g.Section(
			g.Class("section"),
			g.H1(cmp.Text(p.L("noteNotFound"))),
			g.A(g.Href("/notes"), cmp.Text(p.L("backNotes"))),
		),
	)
}
