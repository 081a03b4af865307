package handlers

import (
	"net/http"

	"github.com/Leonard-ssj/portfolio/internal/middleware"
	"github.com/labstack/echo/v4"
)

// Health reports liveness with a glimpse of the served content.
func (h *Pages) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Notes:  len(h.content.Site().Notes.Posts),
		Lang:   middleware.Selector(c).Lang().String(),
	})
}
