package storage

import (
	"context"
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// SessionName is the cookie session that carries visitor preferences.
const SessionName = "portfolio-prefs"

// SessionStore adapts the cookie session of a single request to the Store port.
// It requires the echo-contrib session middleware.
type SessionStore struct {
	c echo.Context
}

// NewSessionStore binds a Store to the given request context.
func NewSessionStore(c echo.Context) *SessionStore {
	return &SessionStore{c: c}
}

func (s *SessionStore) Get(_ context.Context, key string) (string, bool, error) {
	sess, err := session.Get(SessionName, s.c)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	v, ok := sess.Values[key].(string)
	return v, ok, nil
}

func (s *SessionStore) Set(_ context.Context, key, value string) error {
	sess, err := session.Get(SessionName, s.c)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	sess.Values[key] = value
	if err := sess.Save(s.c.Request(), s.c.Response()); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
