package view

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// atsBlock is the plain-text resume, kept as a templ component so that it
// can also be streamed on its own.
func atsBlock(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<pre class="ats" id="ats-text">`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, html.EscapeString(text)); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</pre>`)
		return err
	})
}

// ResumePage shows the downloadable resumes and the ATS-friendly text.
func ResumePage(ctx context.Context, p Page) cmp.Node {
	r := p.Site.Resume
	prof := p.Site.Profile
	return Layout(p,
		g.Section(
			g.Class("section resume"),
			g.A(g.Href("/"), cmp.Text(p.L("backHome"))),
			g.H1(cmp.Text(p.T(r.Title))),
			g.Div(
				g.Class("actions"),
				g.A(g.Class("btn"), g.Href(prof.CV), cmp.Attr("download"), cmp.Text(p.T(r.DownloadPDF))),
				g.A(g.Class("btn btn-ghost"), g.Href(prof.CVATS), cmp.Attr("download"), cmp.Text(p.T(r.DownloadDocx))),
			),
			g.P(g.Class("muted"), cmp.Text(p.T(r.ATSNote))),
			g.H2(cmp.Text(p.T(r.ATSTitle))),
			FromTempl(ctx, atsBlock(r.ATSContent)),
		),
	)
}
