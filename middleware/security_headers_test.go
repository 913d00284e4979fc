package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func securityHeadersFor(t *testing.T, path string) http.Header {
	t.Helper()
	e := echo.New()
	e.Use(SecurityHeaders())
	e.GET(path, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Header()
}

func TestSecurityHeaders(t *testing.T) {
	headers := securityHeadersFor(t, "/api/posts/public")

	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))

	csp := headers.Get("Content-Security-Policy")
	assert.Contains(t, csp, "default-src 'self'")
	// The live notification channel must be reachable
	assert.Contains(t, csp, "ws:")
	assert.Contains(t, csp, "wss:")

	assert.Empty(t, headers.Get("Content-Disposition"))
}

func TestSecurityHeadersForUploads(t *testing.T) {
	headers := securityHeadersFor(t, "/uploads/posts/x.png")

	assert.Equal(t, "inline", headers.Get("Content-Disposition"))
	assert.Equal(t, "cross-origin", headers.Get("Cross-Origin-Resource-Policy"))
}
