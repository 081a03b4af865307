package view

import (
	"strconv"
	"strings"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// htmxConfig lets htmx swap the 404 and 422 fragments the handlers return
// for missing previews and rejected forms.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"404","swap":true},{"code":"422","swap":true},{"code":"[45]..","swap":false,"error":true}]}`

// Layout wraps body in the document shell: head, navigation, flash messages,
// footer and the decorative layers enabled by the feature toggles.
func Layout(p Page, body ...cmp.Node) cmp.Node {
	title := p.Site.Profile.Name
	if p.Title != "" {
		title = p.Title + " - " + p.Site.Profile.Name
	}
	return g.Doctype(
		g.HTML(
			g.Lang(p.lang().String()),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.Meta(g.Name("htmx-config"), g.Content(htmxConfig)),
				g.TitleEl(cmp.Text(title)),
				g.Link(g.Rel("stylesheet"), g.Href("/css/site.css")),
				g.Script(g.Src("https://unpkg.com/htmx.org@2.0.4"), g.Defer()),
				g.Script(g.Src("/js/site.js"), g.Defer()),
			),
			g.Body(
				hx.Boost("true"),
				g.Data("game", strconv.FormatBool(p.Features.Game)),
				g.Data("cursor", strconv.FormatBool(p.Features.Cursor)),
				g.Data("particles", strconv.FormatBool(p.Features.Particles)),
				cmp.If(p.Features.Particles, g.Canvas(g.ID("particles"), g.Class("fx-particles"), g.Aria("hidden", "true"))),
				cmp.If(p.Features.Cursor, g.Div(g.ID("cursor"), g.Class("fx-cursor"), g.Aria("hidden", "true"))),
				header(p),
				flash(p.Flash),
				g.Main(g.ID("top"), cmp.Group(body)),
				footer(p),
			),
		),
	)
}

func header(p Page) cmp.Node {
	labels := pick(p, p.Site.Nav.Labels)
	links := make([]cmp.Node, 0, len(labels))
	for i, label := range labels {
		if i >= len(p.Site.Nav.Anchors) {
			break
		}
		links = append(links, g.Li(g.A(g.Href("/#"+p.Site.Nav.Anchors[i]), cmp.Text(label))))
	}
	return g.Header(
		g.Class("site-header"),
		g.A(g.Href("/"), g.Class("brand"), cmp.Text(p.Site.Profile.Initials)),
		g.Nav(g.Ul(links...)),
		langSwitch(p),
	)
}

// langSwitch posts the other language and returns to the current page.
func langSwitch(p Page) cmp.Node {
	other := p.lang().Other()
	return g.Form(
		g.Method("post"),
		g.Action("/lang"),
		g.Class("lang-switch"),
		g.Input(g.Type("hidden"), g.Name("lang"), g.Value(other.String())),
		g.Input(g.Type("hidden"), g.Name("redirect"), g.Value(p.Path)),
		g.Button(
			g.Type("submit"),
			g.Aria("label", p.L("switchLang")),
			cmp.Text(strings.ToUpper(other.String())),
		),
	)
}

func flash(f FlashData) cmp.Node {
	if f.Empty() {
		return nil
	}
	return g.Div(
		g.Class("flash"),
		g.Role("status"),
		cmp.Map(f.Success, func(m string) cmp.Node { return g.P(g.Class("flash-success"), cmp.Text(m)) }),
		cmp.Map(f.Error, func(m string) cmp.Node { return g.P(g.Class("flash-error"), cmp.Text(m)) }),
	)
}

func footer(p Page) cmp.Node {
	return g.Footer(
		g.Class("site-footer"),
		g.P(cmp.Text(p.Site.Footer.Copyright)),
		g.A(g.Href("#top"), cmp.Text(p.T(p.Site.Footer.BackToTop))),
	)
}
