package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Leonard-ssj/portfolio/internal/i18n"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func newEcho(cfg LanguageConfig) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	e.Use(Visitor())
	e.Use(Language(cfg))
	e.GET("/", func(c echo.Context) error {
		fromCtx := i18n.FromContext(c.Request().Context())
		if fromCtx != Selector(c) {
			return c.String(http.StatusInternalServerError, "selector mismatch")
		}
		return c.String(http.StatusOK, Selector(c).Lang().String()+" "+VisitorID(c))
	})
	return e
}

func get(e *echo.Echo, target string, header http.Header, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func lastCookies(rec *httptest.ResponseRecorder) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		byName[c.Name] = c
	}
	out := make([]*http.Cookie, 0, len(byName))
	for _, c := range byName {
		out = append(out, c)
	}
	return out
}

func TestLanguage(t *testing.T) {
	t.Run("configured default", func(t *testing.T) {
		e := newEcho(LanguageConfig{Default: i18n.EN})
		rec := get(e, "/", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Regexp(t, `^en [0-9a-f-]{36}$`, rec.Body.String())
		assert.Equal(t, "en", rec.Header().Get("Content-Language"))
	})

	t.Run("accept-language only when negotiation is enabled", func(t *testing.T) {
		h := http.Header{"Accept-Language": {"en-US,en;q=0.9"}}
		assert.Regexp(t, `^es `, get(newEcho(LanguageConfig{Default: i18n.ES}), "/", h, nil).Body.String())
		assert.Regexp(t, `^en `, get(newEcho(LanguageConfig{Default: i18n.ES, Negotiate: true}), "/", h, nil).Body.String())
	})

	t.Run("query switch persists in the session", func(t *testing.T) {
		e := newEcho(LanguageConfig{Default: i18n.ES})
		rec := get(e, "/?lang=en", nil, nil)
		assert.Regexp(t, `^en `, rec.Body.String())

		h := http.Header{"Accept-Language": {"es"}}
		again := get(e, "/", h, lastCookies(rec))
		assert.Equal(t, rec.Body.String(), again.Body.String(), "language and visitor id survive")
	})

	t.Run("unsupported query is ignored", func(t *testing.T) {
		e := newEcho(LanguageConfig{Default: i18n.ES})
		assert.Regexp(t, `^es `, get(e, "/?lang=fr", nil, nil).Body.String())
	})
}

func TestSelectorOutsideMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, i18n.Default, Selector(c).Lang())
	assert.Empty(t, VisitorID(c))
}
