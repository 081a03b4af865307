package view

import (
	"github.com/Leonard-ssj/portfolio/internal/content"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func notesPreviewSection(p Page, highlights []content.Note) cmp.Node {
	np := p.Site.NotesPreview
	return section("notes-preview", p.T(np.Title),
		g.P(g.Class("subtitle"), cmp.Text(p.T(np.Subtitle))),
		g.Div(g.Class("cards"), cmp.Map(highlights, func(n content.Note) cmp.Node {
			return noteCard(p, n)
		})),
		g.A(g.Class("btn"), g.Href("/notes"), cmp.Text(p.T(np.CTA))),
	)
}
