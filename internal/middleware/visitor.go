package middleware

import (
	"log/slog"

	"github.com/Leonard-ssj/portfolio/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const visitorKey = "visitor_id"

// Visitor assigns every browser an anonymous, stable visitor ID kept in the
// preferences session. Without a usable session the ID lasts one request.
func Visitor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(storage.SessionName, c)
			if err != nil {
				slog.Debug("visitor session unavailable", "error", err)
				c.Set(visitorKey, uuid.NewString())
				return next(c)
			}

			id, _ := sess.Values[visitorKey].(string)
			if _, perr := uuid.Parse(id); perr != nil {
				id = uuid.NewString()
				sess.Values[visitorKey] = id
				if err := sess.Save(c.Request(), c.Response()); err != nil {
					slog.Warn("failed to save visitor session", "error", err)
				}
			}
			c.Set(visitorKey, id)
			return next(c)
		}
	}
}

// VisitorID returns the visitor ID assigned to the request, or "".
func VisitorID(c echo.Context) string {
	id, _ := c.Get(visitorKey).(string)
	return id
}
