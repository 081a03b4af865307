package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(map[string]string{KeyLang: "en"})

	v, ok, err := m.Get(ctx, KeyLang)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "en", v)

	_, ok, err = m.Get(ctx, KeyBestScore)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, KeyBestScore, "12"))
	v, _, _ = m.Get(ctx, KeyBestScore)
	assert.Equal(t, "12", v)
}

func TestNop(t *testing.T) {
	ctx := context.Background()
	var s Store = Nop{}
	require.NoError(t, s.Set(ctx, KeyLang, "en"))
	_, ok, err := s.Get(ctx, KeyLang)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	memFs := afero.NewMemMapFs()
	fs := NewFileStore(memFs, "visitors")

	t.Run("missing document reads as empty", func(t *testing.T) {
		_, ok, err := fs.Namespace("abc").Get(ctx, KeyBestScore)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("values are isolated per namespace", func(t *testing.T) {
		require.NoError(t, fs.Namespace("abc").Set(ctx, KeyBestScore, "7"))
		require.NoError(t, fs.Namespace("def").Set(ctx, KeyBestScore, "3"))

		v, ok, err := fs.Namespace("abc").Get(ctx, KeyBestScore)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "7", v)

		exists, err := afero.Exists(memFs, "visitors/def.json")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("corrupt document is treated as empty", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(memFs, "visitors/bad.json", []byte("{not json"), 0o644))
		_, ok, err := fs.Namespace("bad").Get(ctx, KeyBestScore)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, fs.Namespace("bad").Set(ctx, KeyBestScore, "1"))
		v, _, _ := fs.Namespace("bad").Get(ctx, KeyBestScore)
		assert.Equal(t, "1", v)
	})

	t.Run("rejects path-like namespaces", func(t *testing.T) {
		err := fs.Namespace("../etc").Set(ctx, KeyBestScore, "1")
		assert.Error(t, err)
	})

	t.Run("read-only filesystem reports unavailable", func(t *testing.T) {
		ro := NewFileStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), "visitors")
		err := ro.Namespace("abc").Set(ctx, KeyBestScore, "1")
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestSessionStore(t *testing.T) {
	e := echo.New()
	cookieStore := sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))

	t.Run("round trip within a request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler := session.Middleware(cookieStore)(func(c echo.Context) error {
			s := NewSessionStore(c)
			_, ok, err := s.Get(c.Request().Context(), KeyLang)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(c.Request().Context(), KeyLang, "en"))
			v, ok, err := s.Get(c.Request().Context(), KeyLang)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "en", v)
			return nil
		})
		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.NotEmpty(t, rec.Header().Get("Set-Cookie"))
	})

	t.Run("without session middleware", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		_, _, err := NewSessionStore(c).Get(context.Background(), KeyLang)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}
