package view

import (
	"fmt"
	"strconv"

	"github.com/Leonard-ssj/portfolio/internal/collection"
	"github.com/Leonard-ssj/portfolio/internal/content"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// Preview is the outcome of a deferred collection preview.
type Preview struct {
	Status  collection.Status
	Summary collection.Summary
}

func docsSection(p Page) cmp.Node {
	d := p.Site.Docs
	items := pick(p, d.Items)
	cards := make([]cmp.Node, 0, len(items))
	for i, doc := range items {
		cards = append(cards, docCard(p, i, doc))
	}
	return section("docs", p.T(d.Title),
		g.P(g.Class("subtitle"), cmp.Text(p.T(d.Subtitle))),
		g.Div(g.Class("cards docs"), cmp.Group(cards)),
	)
}

func docCard(p Page, index int, doc content.Doc) cmp.Node {
	return g.Article(
		g.Class("card doc"),
		g.Header(
			g.H3(cmp.Text(doc.Title)),
			g.Span(g.Class("badge"), cmp.Text(string(doc.Type))),
		),
		docPreview(p, index, doc),
		g.A(g.Href(doc.Href), g.Target("_blank"), g.Rel("noopener noreferrer"), cmp.Text(p.L("open"))),
	)
}

func docPreview(p Page, index int, doc content.Doc) cmp.Node {
	switch doc.Type {
	case content.DocPDF:
		return g.IFrame(
			g.Class("preview preview-pdf"),
			g.Src(doc.Href),
			cmp.Attr("title", p.L("pdfPreview")),
			cmp.Attr("loading", "lazy"),
		)
	case content.DocPNG:
		return g.Img(g.Class("preview preview-image"), g.Src(doc.Href), g.Alt(doc.Title), cmp.Attr("loading", "lazy"))
	case content.DocJSON:
		return g.Div(
			g.Class("preview preview-collection"),
			g.Data("status", string(collection.StatusLoading)),
			hx.Get("/docs/preview/"+strconv.Itoa(index)),
			hx.Trigger("load"),
			hx.Swap("outerHTML"),
			g.P(cmp.Text(p.L("loadingCollection"))),
		)
	default:
		return nil
	}
}

// DocPreview is the fragment that replaces the loading placeholder of a
// collection document.
func DocPreview(p Page, pv Preview) cmp.Node {
	if pv.Status != collection.StatusReady {
		return g.Div(
			g.Class("preview preview-collection"),
			g.Data("status", string(collection.StatusError)),
			g.P(cmp.Text(p.L("previewUnavailable"))),
		)
	}

	s := pv.Summary
	rows, truncated := s.Preview(collection.PreviewLimit)
	return g.Div(
		g.Class("preview preview-collection"),
		g.Data("status", string(collection.StatusReady)),
		g.H4(cmp.Text(s.Name)),
		g.Dl(
			g.Dt(cmp.Text(p.L("requests"))), g.Dd(cmp.Text(strconv.Itoa(s.RequestCount))),
			g.Dt(cmp.Text(p.L("variables"))), g.Dd(cmp.Text(strconv.Itoa(s.VariableCount))),
			cmp.If(s.Schema != "", cmp.Group{g.Dt(cmp.Text(p.L("schema"))), g.Dd(g.Code(cmp.Text(s.Schema)))}),
		),
		cmp.If(len(rows) == 0, g.P(cmp.Text(p.L("noRequests")))),
		cmp.If(len(rows) > 0, g.Table(
			g.THead(g.Tr(
				g.Th(cmp.Text("")),
				g.Th(cmp.Text(p.L("endpoint"))),
				g.Th(cmp.Text(p.L("url"))),
			)),
			g.TBody(cmp.Map(rows, func(r collection.Request) cmp.Node {
				url := r.URL
				if url == "" {
					url = p.L("urlUnavailable")
				}
				return g.Tr(
					g.Td(g.Span(g.Class("method"), cmp.Text(r.Method))),
					g.Td(cmp.Text(r.Name)),
					g.Td(g.Code(cmp.Text(url))),
				)
			})),
		)),
		cmp.If(truncated, g.P(g.Class("muted"), cmp.Text(fmt.Sprintf("%s %d", p.L("showingFirst"), collection.PreviewLimit)))),
	)
}
