package collection

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "info": {"name": "Portfolio API", "schema": "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"},
  "variable": [{"key": "baseUrl"}, {"key": "token"}],
  "item": [
    {"name": "Auth", "item": [
      {"name": "Login", "request": {"method": "post", "url": {"raw": "{{baseUrl}}/auth/login"}}},
      {"name": "Me", "request": {"method": "GET", "url": {"protocol": "https", "host": ["api", "example", "com"], "path": ["v1", "me"]}}}
    ]},
    {"request": {"url": "https://example.com/health"}},
    {"name": "Folder without requests", "item": []},
    {"name": "Broken", "request": "GET /nope"},
    42
  ]
}`

func TestSummarize(t *testing.T) {
	s, err := Summarize([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "Portfolio API", s.Name)
	assert.Contains(t, s.Schema, "v2.1.0")
	assert.Equal(t, 2, s.VariableCount)
	assert.Equal(t, 3, s.RequestCount)
	assert.Equal(t, []string{"info", "variable", "item"}, s.RawKeys, "keys keep document order")

	assert.Equal(t, []Request{
		{Name: "Auth / Login", Method: "POST", URL: "{{baseUrl}}/auth/login"},
		{Name: "Auth / Me", Method: "GET", URL: "https://api.example.com/v1/me"},
		{Name: "Untitled", Method: "REQ", URL: "https://example.com/health"},
	}, s.Requests)
}

func TestSummarizeRawKeys(t *testing.T) {
	s, err := Summarize([]byte(`{"variable": [], "zeta": 1, "info": {"name": "x"}, "zeta": 2, "alpha": null}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"variable", "zeta", "info", "alpha"}, s.RawKeys)

	s, err = Summarize([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, s.RawKeys)
}

func TestSummarizeDegrades(t *testing.T) {
	_, err := Summarize([]byte("{not json"))
	assert.ErrorIs(t, err, ErrMalformed)

	for _, doc := range []string{`[]`, `"text"`, `null`, `{}`, `{"info": 3, "item": {"a": 1}, "variable": "x"}`} {
		t.Run(doc, func(t *testing.T) {
			s, err := Summarize([]byte(doc))
			require.NoError(t, err)
			assert.Zero(t, s.RequestCount)
			assert.Zero(t, s.VariableCount)
			assert.Empty(t, s.Name)
		})
	}
}

func TestPreview(t *testing.T) {
	s := Summary{Requests: make([]Request, 75)}
	rows, cut := s.Preview(PreviewLimit)
	assert.Len(t, rows, 60)
	assert.True(t, cut)

	s.Requests = s.Requests[:3]
	rows, cut = s.Preview(PreviewLimit)
	assert.Len(t, rows, 3)
	assert.False(t, cut)
}

func TestLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/postman-collection.json": {Data: []byte(sample)},
		"docs/broken.json":             {Data: []byte("{")},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow" {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			return
		}
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	l := &Loader{Local: FSSource{FS: fsys}, Remote: HTTPSource{Client: srv.Client()}, Timeout: time.Second}
	ctx := context.Background()

	t.Run("local document", func(t *testing.T) {
		s, err := l.Load(ctx, "/docs/postman-collection.json")
		require.NoError(t, err)
		assert.Equal(t, 3, s.RequestCount)
	})

	t.Run("remote document", func(t *testing.T) {
		s, err := l.Load(ctx, srv.URL+"/collection.json")
		require.NoError(t, err)
		assert.Equal(t, "Portfolio API", s.Name)
	})

	t.Run("missing document", func(t *testing.T) {
		_, err := l.Load(ctx, "/docs/none.json")
		assert.Error(t, err)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := l.Load(ctx, "/docs/broken.json")
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("path escape rejected", func(t *testing.T) {
		_, err := l.Load(ctx, "/../secrets.json")
		assert.Error(t, err)
	})

	t.Run("cancelled caller", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := l.Load(cctx, "/docs/postman-collection.json")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("timeout", func(t *testing.T) {
		quick := &Loader{Remote: HTTPSource{Client: srv.Client()}, Timeout: 50 * time.Millisecond}
		_, err := quick.Load(ctx, srv.URL+"/slow")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("no remote source", func(t *testing.T) {
		_, err := (&Loader{}).Load(ctx, "https://example.com/x.json")
		assert.ErrorIs(t, err, ErrNoSource)
	})
}
