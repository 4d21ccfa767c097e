package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"quaidirect/config"

	"github.com/labstack/echo/v4"
)

// HeaderInternalSecret carries the shared secret on service-to-service calls.
const HeaderInternalSecret = "X-Internal-Secret"

// InternalAuthMiddleware guards internal endpoints such as the fan-out
// trigger. Callers authenticate with the shared internal secret header, or by
// presenting the platform's anonymous key as a bearer token (the form used by
// database-trigger-initiated calls).
type InternalAuthMiddleware struct {
	secret  string
	anonKey string
}

// NewInternalAuthMiddleware is the constructor for InternalAuthMiddleware.
func NewInternalAuthMiddleware(cfg *config.Config) *InternalAuthMiddleware {
	m := &InternalAuthMiddleware{}
	if cfg.InternalAuth != nil {
		m.secret = cfg.InternalAuth.Secret
		m.anonKey = cfg.InternalAuth.AnonKey
	}

	return m
}

// Require rejects the request with 401 before any other work when neither
// credential matches.
func (m *InternalAuthMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.matchesSecret(c) || m.matchesAnonKey(c) {
			return next(c)
		}

		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing or invalid credentials"})
	}
}

func (m *InternalAuthMiddleware) matchesSecret(c echo.Context) bool {
	if m.secret == "" {
		return false
	}
	provided := c.Request().Header.Get(HeaderInternalSecret)

	return subtle.ConstantTimeCompare([]byte(provided), []byte(m.secret)) == 1
}

func (m *InternalAuthMiddleware) matchesAnonKey(c echo.Context) bool {
	if m.anonKey == "" {
		return false
	}
	authHeader := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(m.anonKey)) == 1
}
