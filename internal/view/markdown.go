package view

import (
	"github.com/Leonard-ssj/portfolio/internal/markdown"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Markdown renders a parsed note body. Every source line becomes one
// element, so blank lines keep their spacing.
func Markdown(p Page, doc markdown.Document) cmp.Node {
	return cmp.Map(doc.Nodes, func(n markdown.Node) cmp.Node {
		switch n.Kind {
		case markdown.Heading1:
			return g.H2(g.Class("md-h1"), cmp.Text(n.Text))
		case markdown.Heading2:
			return g.H3(
				g.ID(n.ID),
				g.Class("md-h2"),
				cmp.Text(n.Text),
				g.A(g.Href("#"+n.ID), g.Class("anchor"), g.Data("copy-link", n.ID),
					g.Aria("label", p.L("copyLink")), cmp.Text("#")),
			)
		case markdown.TermBullet:
			sep := ""
			if n.Colon {
				sep = ": "
			}
			return g.P(g.Class("md-bullet"), g.Strong(cmp.Text(n.Term)), cmp.Text(sep+n.Text))
		case markdown.Bullet:
			return g.P(g.Class("md-bullet"), cmp.Text(n.Text))
		case markdown.Blank:
			return g.Div(g.Class("md-gap"))
		default:
			return g.P(cmp.Text(n.Text))
		}
	})
}
