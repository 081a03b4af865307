package view

import (
	"net/url"

	"github.com/Leonard-ssj/portfolio/internal/contact"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// ContactState is the contact form as last submitted, with its errors.
type ContactState struct {
	Form   contact.Form
	Errors contact.FieldErrors
}

// ContactSection renders the contact form and the direct channels. It is
// also the fragment htmx swaps in after a rejected submission.
func ContactSection(p Page, st ContactState) cmp.Node {
	c := p.Site.Contact
	prof := p.Site.Profile
	wa := contact.WhatsApp(prof.Phone, p.T(c.WhatsAppText))

	return g.Section(
		g.ID("contact"),
		g.Class("section"),
		g.H2(g.Class("section-title"), cmp.Text(p.T(c.Title))),
		g.Div(
			g.Class("contact-grid"),
			g.Form(
				g.Class("contact-form"),
				g.Method("post"),
				g.Action("/contact"),
				hx.Post("/contact"),
				hx.Target("#contact"),
				hx.Swap("outerHTML"),
				cmp.Attr("novalidate"),
				field(contact.FieldName, p.T(c.Form.Name), st,
					g.Input(g.Type("text"), g.Name(contact.FieldName), g.ID("contact-name"),
						g.Value(st.Form.Name), g.Placeholder(p.T(c.Form.NamePlaceholder)))),
				field(contact.FieldEmail, p.T(c.Form.Email), st,
					g.Input(g.Type("email"), g.Name(contact.FieldEmail), g.ID("contact-email"),
						g.Value(st.Form.Email), g.Placeholder(p.T(c.Form.EmailPlaceholder)))),
				field(contact.FieldMessage, p.T(c.Form.Message), st,
					g.Textarea(g.Name(contact.FieldMessage), g.ID("contact-message"), cmp.Attr("rows", "5"),
						g.Placeholder(p.T(c.Form.MessagePlaceholder)), cmp.Text(st.Form.Message))),
				g.Button(g.Type("submit"), g.Class("btn"), cmp.Text(p.T(c.Form.Send))),
			),
			g.Ul(
				g.Class("channels"),
				g.Li(
					g.Span(cmp.Text(p.L("email"))),
					g.A(g.Href(contact.Mailto(prof.Email)), cmp.Text(prof.Email)),
					g.Button(g.Type("button"), g.Class("copy"),
						g.Data("copy", prof.Email),
						g.Data("copied", p.T(c.Form.Copied)),
						cmp.Text(p.T(c.Form.CopyEmail))),
				),
				g.Li(
					g.Span(cmp.Text(p.L("phone"))),
					g.A(g.Href(contact.Tel(prof.Phone)), cmp.Text(prof.Phone)),
				),
				cmp.If(wa != "", g.Li(
					g.A(g.Href(wa), g.Target("_blank"), g.Rel("noopener noreferrer"), cmp.Text(p.L("sendWhatsapp"))),
				)),
				g.Li(
					g.Span(cmp.Text(p.L("location"))),
					g.Span(cmp.Text(prof.Location)),
				),
			),
			g.IFrame(
				g.Class("map"),
				g.Src("https://www.google.com/maps?output=embed&q="+url.QueryEscape(prof.Location)),
				cmp.Attr("title", p.T(c.MapTitle)),
				cmp.Attr("loading", "lazy"),
			),
		),
	)
}

func field(name, label string, st ContactState, input cmp.Node) cmp.Node {
	msg := st.Errors[name]
	return g.Div(
		g.Class("field"),
		g.Label(g.For("contact-"+name), cmp.Text(label)),
		input,
		cmp.If(msg != "", g.P(g.Class("field-error"), g.Role("alert"), g.Data("field", name), cmp.Text(msg))),
	)
}
