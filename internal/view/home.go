package view

import (
	"strconv"

	"github.com/Leonard-ssj/portfolio/internal/content"
	cmp "maragu.dev/gomponents"
	ui "maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

// Home is the data of the landing page beyond the shared Page.
type Home struct {
	Highlights []content.Note
	Contact    ContactState
}

// HomePage renders every section of the landing page in navigation order.
func HomePage(p Page, h Home) cmp.Node {
	return Layout(p,
		heroSection(p),
		aboutSection(p),
		skillsSection(p),
		experienceSection(p),
		projectsSection(p),
		docsSection(p),
		notesPreviewSection(p, h.Highlights),
		ContactSection(p, h.Contact),
		cmp.If(p.Features.Game, playSection(p)),
	)
}

func section(id, title string, children ...cmp.Node) cmp.Node {
	return g.Section(
		g.ID(id),
		g.Class("section"),
		g.H2(g.Class("section-title"), cmp.Text(title)),
		cmp.Group(children),
	)
}

func heroSection(p Page) cmp.Node {
	prof := p.Site.Profile
	hero := p.Site.Hero
	return g.Section(
		g.ID("hero"),
		g.Class("section hero"),
		cmp.If(prof.Avatar != "", g.Img(g.Src(prof.Avatar), g.Alt(prof.Name), g.Class("avatar"))),
		g.H1(cmp.Text(prof.Name)),
		g.P(g.Class("role"), cmp.Text(p.T(prof.Role))),
		g.P(g.Class("subtitle"), cmp.Text(p.T(hero.Subtitle))),
		g.Ul(g.Class("chips"), cmp.Map(pick(p, hero.Chips), func(c string) cmp.Node {
			return g.Li(g.Class("chip"), cmp.Text(c))
		})),
		g.Div(
			g.Class("roles"),
			g.P(g.Class("typewriter"), g.Data("typewriter", "roles"), g.Aria("hidden", "true"),
				g.Span(g.Class("typed")), g.Span(g.Class("caret"))),
			g.Ul(g.Data("rotate", "true"), cmp.Map(pick(p, hero.Roles), func(r string) cmp.Node {
				return g.Li(cmp.Text(r))
			})),
		),
		g.Div(
			g.Class("actions"),
			g.A(g.Class("btn"), g.Href(prof.CV), cmp.Attr("download"), cmp.Text(p.T(hero.Buttons.DownloadCV))),
			g.A(g.Class("btn btn-ghost"), g.Href(prof.CVATS), cmp.Text(p.T(hero.Buttons.ViewATSDocx))),
			g.A(g.Class("btn btn-ghost"), g.Href("/resume"), cmp.Text(p.T(hero.Buttons.ViewATSText))),
		),
		g.Ul(
			g.Class("socials"),
			social("GitHub", prof.GitHub),
			social("LinkedIn", prof.LinkedIn),
			social("Instagram", prof.Instagram),
			social("TikTok", prof.TikTok),
		),
	)
}

func social(name, href string) cmp.Node {
	if href == "" {
		return nil
	}
	return g.Li(g.A(g.Href(href), g.Target("_blank"), g.Rel("noopener noreferrer"), cmp.Text(name)))
}

func aboutSection(p Page) cmp.Node {
	a := p.Site.About
	return section("about", p.T(a.Title),
		g.P(cmp.Text(p.T(a.Text))),
		g.H3(cmp.Text(p.T(a.FrameworkTitle))),
		g.Div(g.Class("cards"), cmp.Map(pick(p, a.Cards), func(c content.Card) cmp.Node {
			return g.Article(
				g.Class("card"),
				g.H4(cmp.Text(c.Title)),
				g.P(cmp.Text(c.Description)),
			)
		})),
	)
}

func skillsSection(p Page) cmp.Node {
	s := p.Site.Skills
	categories := pick(p, s.Categories)
	card := func(hidden bool) func(content.SkillCategory) cmp.Node {
		return func(c content.SkillCategory) cmp.Node {
			return g.Article(
				g.Class("card skill-card"),
				g.Data("skill-card", ""),
				cmp.If(hidden, g.Aria("hidden", "true")),
				g.H3(cmp.Text(c.Name)),
				g.Ul(g.Class("chips"), cmp.Map(c.Items, func(item string) cmp.Node {
					return g.Li(g.Class("chip"), cmp.Text(item))
				})),
			)
		}
	}

	// The strip holds every card twice so the auto-scroll can wrap at half
	// its width without a visible jump.
	return section("skills", p.T(s.Title),
		g.Div(
			g.Class("strip-controls"),
			stripButton("prev", p.L("skillsPrev"), "‹"),
			stripButton("toggle", p.L("skillsPause"), "❚❚", g.Data("label-play", p.L("skillsPlay"))),
			stripButton("next", p.L("skillsNext"), "›"),
		),
		g.Div(
			g.Class("strip"),
			g.Data("autoscroll", "0.5"),
			cmp.Map(categories, card(false)),
			cmp.Map(categories, card(true)),
		),
		g.Ol(g.Class("strip-dots"), cmp.Map(indexes(len(categories)), func(i int) cmp.Node {
			return g.Li(g.Button(g.Type("button"), g.Data("strip-index", strconv.Itoa(i)),
				g.Aria("label", categories[i].Name)))
		})),
	)
}

func stripButton(action, label, glyph string, extra ...cmp.Node) cmp.Node {
	return g.Button(
		g.Type("button"),
		g.Class("btn btn-ghost"),
		g.Data("strip", action),
		g.Aria("label", label),
		cmp.Group(extra),
		cmp.Text(glyph),
	)
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func experienceSection(p Page) cmp.Node {
	e := p.Site.Experience
	return section("experience", p.T(e.Title),
		g.Ol(g.Class("timeline"), cmp.Map(pick(p, e.Items), func(j content.Job) cmp.Node {
			return g.Li(
				ui.Classes{"job": true, "job-current": j.Current},
				g.H3(cmp.Text(j.Role)),
				g.P(g.Class("job-meta"), cmp.Textf("%s · %s · %s", j.Company, j.Location, j.Period)),
				g.Ul(cmp.Map(j.Bullets, func(b string) cmp.Node { return g.Li(cmp.Text(b)) })),
			)
		})),
	)
}

func projectsSection(p Page) cmp.Node {
	pr := p.Site.Projects
	return section("projects", p.T(pr.Title),
		g.Div(g.Class("cards"), cmp.Map(pick(p, pr.Items), func(it content.Project) cmp.Node {
			return g.Article(
				g.Class("card project"),
				g.H3(cmp.Text(it.Title)),
				g.P(g.Class("project-meta"), cmp.Textf("%s · %s", it.Type, it.Status)),
				g.Ul(g.Class("chips"), cmp.Map(it.Stack, func(s string) cmp.Node {
					return g.Li(g.Class("chip"), cmp.Text(s))
				})),
				g.Ul(cmp.Map(it.Bullets, func(b string) cmp.Node { return g.Li(cmp.Text(b)) })),
				g.Div(g.Class("links"), cmp.Map(it.Links, func(l content.Link) cmp.Node {
					return g.A(g.Href(l.Href), g.Target("_blank"), g.Rel("noopener noreferrer"), cmp.Text(l.Label))
				})),
			)
		})),
	)
}
