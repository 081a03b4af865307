package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Leonard-ssj/portfolio/internal/config"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	// --- Setup ---
	e := echo.New()

	// 1. Capture log output
	// We temporarily redirect slog's output to a buffer to inspect it.
	var logBuffer bytes.Buffer
	// Create a new logger that writes to our buffer
	handler := slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{
		AddSource: true,
	})
	logger := slog.New(handler)
	// Store the original default logger and defer its restoration
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	// 2. Set up the error handler we want to test
	setupErrorHandling(e)

	// 3. Define a route that will always produce an unhandled error
	e.GET("/test-unhandled-error", func(c echo.Context) error {
		// This is the kind of error that should trigger our stack trace logging.
		return errors.New("a deliberate unhandled error occurred")
	})

	// --- Act ---
	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// --- Assert ---
	// First, check that the HTTP response is correct (a 500 error)
	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")

	// Now, check the captured log output
	logOutput := logBuffer.String()

	// Assert that the log contains the key pieces of information
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)", "Log message should indicate an unhandled error")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"", "Log should contain the original error message")
	assert.Contains(t, logOutput, "stack_trace=", "Log must contain the stack_trace field")

	// A good stack trace will contain the path to the Go runtime and this test file.
	// This is a strong indicator that a real stack trace was captured.
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

func newTestServer(t *testing.T, env map[string]string) *Server {
	t.Helper()
	env["DATA_DIR"] = t.TempDir()
	env["SESSION_SECRET"] = "a-very-secret-key-for-testing-!"
	cfg := config.FromEnv(func(k string) string { return env[k] })

	s, err := New(cfg)
	require.NoError(t, err)
	s.RegisterRoutes()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return s
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t, map[string]string{"DEFAULT_LANG": "en"})

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/", http.StatusOK, `<html lang="en">`},
		{"/health", http.StatusOK, `"status":"ok"`},
		{"/notes", http.StatusOK, "result(s)"},
		{"/notes/multi-tenant-estrategia", http.StatusOK, "toc"},
		{"/notes/missing", http.StatusNotFound, "Note not found"},
		{"/resume", http.StatusOK, `class="ats"`},
		{"/docs/preview/3", http.StatusOK, `data-status="ready"`},
		{"/css/site.css", http.StatusOK, "--accent"},
		{"/docs/postman-collection.json", http.StatusOK, "CRM API"},
		{"/nothing-here", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(s, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func TestContactIsRateLimited(t *testing.T) {
	s := newTestServer(t, map[string]string{})
	form := url.Values{"name": {"Ana"}, "email": {"ana@example.com"}, "message": {"Hola, me interesa tu perfil."}}

	codes := map[int]int{}
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.RemoteAddr = "198.51.100.7:4000"
		codes[serve(s, req).Code]++
	}
	assert.Positive(t, codes[http.StatusSeeOther])
	assert.Positive(t, codes[http.StatusTooManyRequests])
}

func TestGameToggle(t *testing.T) {
	s := newTestServer(t, map[string]string{"FEATURE_GAME": "false"})
	rec := serve(s, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotContains(t, rec.Body.String(), `id="play"`)

	rec = serve(s, httptest.NewRequest(http.MethodGet, "/play/ws", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
