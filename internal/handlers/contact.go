package handlers

import (
	"net/http"
	"time"

	"github.com/Leonard-ssj/portfolio/internal/contact"
	"github.com/Leonard-ssj/portfolio/internal/middleware"
	"github.com/Leonard-ssj/portfolio/internal/notes"
	"github.com/Leonard-ssj/portfolio/internal/pubsub"
	"github.com/Leonard-ssj/portfolio/internal/view"
	"github.com/labstack/echo/v4"
)

// ContactHandler validates the contact form and hands it to the visitor's
// mail client.
type ContactHandler struct {
	*Pages
	validator *contact.Validator
	publisher pubsub.Publisher
	now       func() time.Time
}

// NewContactHandler creates a ContactHandler. publisher may be nil.
func NewContactHandler(p *Pages, v *contact.Validator, publisher pubsub.Publisher) *ContactHandler {
	return &ContactHandler{Pages: p, validator: v, publisher: publisher, now: time.Now}
}

// Post validates the form. A rejected form is rendered again with inline
// errors and status 422. An accepted one publishes contact.composed and
// redirects to the composed mailto link.
func (h *ContactHandler) Post(c echo.Context) error {
	var form contact.Form
	if err := c.Bind(&form); err != nil {
		return err
	}
	sel := middleware.Selector(c)
	ctx := c.Request().Context()

	if errs := h.validator.Validate(&form, sel); errs != nil {
		st := view.ContactState{Form: form, Errors: errs}
		if isHTMX(c) {
			return h.renderer.Page(c, http.StatusUnprocessableEntity, view.ContactSection(h.fragment(c), st))
		}
		p := h.page(c, "")
		home := view.Home{
			Highlights: notes.Highlights(p.Site.Notes.Posts, p.Site.NotesPreview.Highlights),
			Contact:    st,
		}
		return h.renderer.Page(c, http.StatusUnprocessableEntity, view.HomePage(p, home))
	}

	if h.publisher != nil {
		event := contact.Composed{Form: form, Lang: sel.Lang(), At: h.now().UTC()}
		if err := pubsub.Publish(ctx, h.publisher, contact.ComposedEvent, middleware.VisitorID(c), event); err != nil {
			middleware.FromContext(ctx).Warn("failed to publish contact event", "error", err)
		}
	}

	link := contact.ComposeMailto(h.content.Site().Profile.Email, form)
	if isHTMX(c) {
		c.Response().Header().Set("HX-Redirect", link)
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, link)
}
