package handlers

import (
	"github.com/Leonard-ssj/portfolio/internal/config"
	"github.com/Leonard-ssj/portfolio/internal/content"
	"github.com/Leonard-ssj/portfolio/internal/i18n"
	"github.com/Leonard-ssj/portfolio/internal/middleware"
	"github.com/Leonard-ssj/portfolio/internal/rendering"
	"github.com/Leonard-ssj/portfolio/internal/view"
	"github.com/labstack/echo/v4"
)

// Pages holds what every page handler needs to build a view.Page.
type Pages struct {
	content  *content.Provider
	features config.Features
	renderer *rendering.HTML
}

// NewPages creates the shared page dependencies.
func NewPages(p *content.Provider, features config.Features, r *rendering.HTML) *Pages {
	return &Pages{content: p, features: features, renderer: r}
}

func (h *Pages) page(c echo.Context, title string) view.Page {
	return view.Page{
		Site:     h.content.Site(),
		Lang:     middleware.Selector(c),
		Path:     c.Request().URL.RequestURI(),
		Title:    title,
		Features: h.features,
		Flash:    view.GetFlashData(c),
	}
}

// fragment is a page for htmx partials; it leaves pending flashes alone.
func (h *Pages) fragment(c echo.Context) view.Page {
	return view.Page{
		Site:     h.content.Site(),
		Lang:     middleware.Selector(c),
		Features: h.features,
	}
}

func (h *Pages) title(c echo.Context, t i18n.Text) string {
	return i18n.Pick(middleware.Selector(c), t)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
