package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/Leonard-ssj/portfolio/internal/i18n"
	"github.com/Leonard-ssj/portfolio/internal/middleware"
	"github.com/Leonard-ssj/portfolio/internal/view"
	"github.com/labstack/echo/v4"
)

// LangHandler switches the visitor's language.
type LangHandler struct {
	*Pages
}

func NewLangHandler(p *Pages) *LangHandler {
	return &LangHandler{Pages: p}
}

// Set handles POST /lang and GET /lang/:code. The choice is persisted in the
// preferences session and the visitor is sent back to where they were.
func (h *LangHandler) Set(c echo.Context) error {
	var req LangRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, i18n.ErrUnsupportedLang.Error())
	}
	lang, err := i18n.Parse(req.Lang)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sel := middleware.Selector(c)
	if err := sel.Set(c.Request().Context(), lang); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	view.SetFlashSuccess(c, h.content.Site().Label(sel, "langChanged"))
	return c.Redirect(http.StatusSeeOther, localPath(req.Redirect))
}

// localPath keeps redirects on this site.
func localPath(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	q := u.Query()
	if q.Has("lang") {
		q.Del("lang")
		u.RawQuery = q.Encode()
	}
	return u.RequestURI()
}
