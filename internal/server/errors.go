package server

import (
	"errors"
	"log/slog"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// setupErrorHandling logs errors that no handler turned into an HTTP error,
// with the stack that produced them, before echo answers with a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			slog.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		} else if he.Internal != nil {
			slog.Error("request failed", "status", he.Code, "error", he.Internal, "path", c.Request().URL.Path)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
