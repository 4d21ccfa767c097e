package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quaidirect/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runInternalAuth(t *testing.T, m *InternalAuthMiddleware, decorate func(*http.Request)) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/notify-drop", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := m.Require(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, reached
}

func TestInternalAuthMiddleware_Require(t *testing.T) {
	t.Parallel()

	m := NewInternalAuthMiddleware(&config.Config{
		InternalAuth: &config.InternalAuthConfig{
			Secret:  "super-secret",
			AnonKey: "anon-key",
		},
	})

	t.Run("valid internal secret passes", func(t *testing.T) {
		t.Parallel()

		rec, reached := runInternalAuth(t, m, func(req *http.Request) {
			req.Header.Set(HeaderInternalSecret, "super-secret")
		})

		assert.True(t, reached)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("valid anon key bearer token passes", func(t *testing.T) {
		t.Parallel()

		rec, reached := runInternalAuth(t, m, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer anon-key")
		})

		assert.True(t, reached)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing credentials rejected before handler runs", func(t *testing.T) {
		t.Parallel()

		rec, reached := runInternalAuth(t, m, nil)

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error": "missing or invalid credentials"}`, rec.Body.String())
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		t.Parallel()

		rec, reached := runInternalAuth(t, m, func(req *http.Request) {
			req.Header.Set(HeaderInternalSecret, "guess")
		})

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("anon key without bearer prefix rejected", func(t *testing.T) {
		t.Parallel()

		rec, reached := runInternalAuth(t, m, func(req *http.Request) {
			req.Header.Set("Authorization", "anon-key")
		})

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unconfigured credentials reject everything", func(t *testing.T) {
		t.Parallel()

		unconfigured := NewInternalAuthMiddleware(&config.Config{})

		rec, reached := runInternalAuth(t, unconfigured, func(req *http.Request) {
			req.Header.Set(HeaderInternalSecret, "")
		})

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
