package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newApp(l *Limiter) *echo.Echo {
	e := echo.New()
	e.Use(l.Middleware())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return e
}

func hit(e *echo.Echo, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestLimiterBlocksPastBurst(t *testing.T) {
	e := newApp(New(1, 2))

	require.Equal(t, http.StatusOK, hit(e, "10.0.0.1"))
	require.Equal(t, http.StatusOK, hit(e, "10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, hit(e, "10.0.0.1"))
}

func TestLimiterIsPerIP(t *testing.T) {
	e := newApp(New(1, 1))

	require.Equal(t, http.StatusOK, hit(e, "10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, hit(e, "10.0.0.1"))
	require.Equal(t, http.StatusOK, hit(e, "10.0.0.2"))
}
