package handlers

import (
	"net/http"

	"github.com/Leonard-ssj/portfolio/internal/notes"
	"github.com/Leonard-ssj/portfolio/internal/view"
	"github.com/labstack/echo/v4"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	*Pages
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(p *Pages) *HomeHandler {
	return &HomeHandler{Pages: p}
}

// HomeGet renders every section of the landing page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	p := h.page(c, "")
	home := view.Home{
		Highlights: notes.Highlights(p.Site.Notes.Posts, p.Site.NotesPreview.Highlights),
	}
	return h.renderer.Page(c, http.StatusOK, view.HomePage(p, home))
}
