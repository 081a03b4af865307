package handlers

import (
	"net/http"

	"github.com/Leonard-ssj/portfolio/internal/collection"
	"github.com/Leonard-ssj/portfolio/internal/content"
	"github.com/Leonard-ssj/portfolio/internal/i18n"
	"github.com/Leonard-ssj/portfolio/internal/middleware"
	"github.com/Leonard-ssj/portfolio/internal/view"
	"github.com/labstack/echo/v4"
)

// DocsHandler completes the deferred previews of the docs section.
type DocsHandler struct {
	*Pages
	loader *collection.Loader
}

func NewDocsHandler(p *Pages, loader *collection.Loader) *DocsHandler {
	return &DocsHandler{Pages: p, loader: loader}
}

// Preview loads the collection behind a docs entry and renders its summary.
// Failures degrade to the "preview not available" fragment. When the client
// has gone away nothing is written.
func (h *DocsHandler) Preview(c echo.Context) error {
	var req PreviewRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	p := h.fragment(c)
	ctx := c.Request().Context()
	log := middleware.FromContext(ctx)

	items := i18n.Pick(p.Lang, p.Site.Docs.Items)
	if c.Validate(&req) != nil || req.Index >= len(items) || items[req.Index].Type != content.DocJSON {
		return h.renderer.Page(c, http.StatusNotFound, view.DocPreview(p, view.Preview{Status: collection.StatusError}))
	}

	href := items[req.Index].Href
	summary, err := h.loader.Load(ctx, href)
	if ctx.Err() != nil {
		log.Debug("preview abandoned by client", "href", href)
		return nil
	}

	pv := view.Preview{Status: collection.StatusReady, Summary: summary}
	if err != nil {
		log.Warn("collection preview failed", "href", href, "error", err)
		pv = view.Preview{Status: collection.StatusError}
	}
	return h.renderer.Page(c, http.StatusOK, view.DocPreview(p, pv))
}
