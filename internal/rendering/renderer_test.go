package rendering

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

type failing struct{}

func (failing) Render(io.Writer) error { return errors.New("boom") }

func TestBytes(t *testing.T) {
	h := New()
	ctx := context.Background()

	t.Run("gomponents node", func(t *testing.T) {
		b, err := h.Bytes(ctx, g.P(cmp.Text("hola")))
		require.NoError(t, err)
		assert.Equal(t, "<p>hola</p>", string(b))
	})

	t.Run("templ component", func(t *testing.T) {
		comp := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<pre>ats</pre>")
			return err
		})
		b, err := h.Bytes(ctx, comp)
		require.NoError(t, err)
		assert.Equal(t, "<pre>ats</pre>", string(b))
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := h.Bytes(ctx, 42)
		assert.ErrorContains(t, err, "unsupported component type int")
	})
}

func TestPage(t *testing.T) {
	h := New()
	e := echo.New()

	t.Run("writes status and html", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, h.Page(c, http.StatusNotFound, g.H1(cmp.Text("missing"))))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
		assert.Equal(t, "<h1>missing</h1>", rec.Body.String())
	})

	t.Run("render failure commits nothing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		err := h.Page(c, http.StatusOK, failing{})
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusInternalServerError, he.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("echo renderer", func(t *testing.T) {
		e.Renderer = h
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, c.Render(http.StatusOK, "", g.Span(cmp.Text("ok"))))
		assert.Equal(t, "<span>ok</span>", rec.Body.String())
	})
}
