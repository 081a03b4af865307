package middleware

import (
	"github.com/Leonard-ssj/portfolio/internal/i18n"
	"github.com/Leonard-ssj/portfolio/internal/storage"
	"github.com/labstack/echo/v4"
)

const selectorKey = "lang_selector"

// LanguageConfig controls how the active language of a request is chosen.
type LanguageConfig struct {
	Default i18n.Lang
	// Negotiate uses Accept-Language when the visitor has no stored choice.
	Negotiate bool
}

// Language builds the visitor's language selector on top of the preferences
// session and makes it available to handlers. A valid ?lang= query
// parameter switches and persists the language.
func Language(cfg LanguageConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()

			fallback := cfg.Default
			if cfg.Negotiate {
				fallback = i18n.Negotiate(req.Header.Get("Accept-Language"))
			}
			sel := i18n.NewSelector(ctx, storage.NewSessionStore(c), fallback)

			if q := c.QueryParam("lang"); q != "" {
				if l, err := i18n.Parse(q); err == nil {
					_ = sel.Set(ctx, l)
				}
			}

			c.Set(selectorKey, sel)
			c.SetRequest(req.WithContext(i18n.WithSelector(ctx, sel)))
			c.Response().Header().Set("Content-Language", sel.Lang().String())
			return next(c)
		}
	}
}

// Selector returns the language selector of the request. Outside the
// Language middleware it returns a selector pinned to the default language.
func Selector(c echo.Context) *i18n.Selector {
	if sel, ok := c.Get(selectorKey).(*i18n.Selector); ok {
		return sel
	}
	return i18n.NewSelector(c.Request().Context(), storage.Nop{}, i18n.Default)
}
