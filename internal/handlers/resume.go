package handlers

import (
	"net/http"

	"github.com/Leonard-ssj/portfolio/internal/view"
	"github.com/labstack/echo/v4"
)

// ResumeGet renders the resume page with the ATS text.
func (h *HomeHandler) ResumeGet(c echo.Context) error {
	p := h.page(c, h.title(c, h.content.Site().Resume.Title))
	return h.renderer.Page(c, http.StatusOK, view.ResumePage(c.Request().Context(), p))
}
