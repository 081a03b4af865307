// Package rendering turns view components into HTTP responses. Views are
// gomponents nodes; templ components are accepted as well.
package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// node is the shape of gomponents.Node.
type node interface {
	Render(w io.Writer) error
}

// HTML renders components and implements echo.Renderer.
type HTML struct{}

// New returns an HTML renderer.
func New() *HTML {
	return &HTML{}
}

func (h *HTML) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case node:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type %T", component)
	}
}

// Bytes renders component into memory, for fragments pushed outside a
// request/response cycle.
func (h *HTML) Bytes(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := h.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("render component: %w", err)
	}
	return buf.Bytes(), nil
}

// Page writes component as the response. The body is rendered before the
// status is committed, so a failing view still yields a clean 500.
func (h *HTML) Page(c echo.Context, status int, component any) error {
	body, err := h.Bytes(c.Request().Context(), component)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer; the component travels in data.
func (h *HTML) Render(w io.Writer, _ string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return h.render(c.Request().Context(), data, w)
}
