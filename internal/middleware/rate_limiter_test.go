package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.POST("/contact", handler, RateLimiter(ContactRate, ContactBurst))

	send := func(ip string, htmx bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = ip
		if htmx {
			req.Header.Set("HX-Request", "true")
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allows requests within the burst", func(t *testing.T) {
		rec := send("192.0.2.1:1234", false)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("blocks requests exceeding the burst", func(t *testing.T) {
		clientIP := "192.0.2.2:1234"
		for i := 0; i < ContactBurst; i++ {
			rec := send(clientIP, false)
			require.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i+1)
		}

		rec := send(clientIP, false)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "Too many requests")

		rec = send(clientIP, true)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), `role="alert"`)
	})

	t.Run("limits clients independently", func(t *testing.T) {
		rec := send("192.0.2.3:1234", false)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
