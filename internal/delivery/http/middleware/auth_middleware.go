package middleware

import (
	"slices"
	"strings"

	"quaidirect/config"
	domainerrors "quaidirect/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
// Tokens are issued by the account service; this service only validates them.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WithDetails("expected a Bearer token")
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return []byte(m.cfg.SecretKey.Access), nil
		})
		if err != nil || !token.Valid {
			return domainerrors.ErrTokenInvalid
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return domainerrors.ErrTokenInvalid.WithDetails("failed to parse token claims")
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return domainerrors.ErrTokenInvalid.WithDetails("subject missing from token")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WithDetails("subject is not a valid UUID")
		}

		rolesClaim, _ := claims["roles"].([]any)
		var roles []string
		for _, r := range rolesClaim {
			if roleStr, ok := r.(string); ok {
				roles = append(roles, roleStr)
			}
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyRoles, roles)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get(ContextKeyRoles)
			roles, ok := rolesVal.([]string)
			if !ok {
				return domainerrors.ErrForbidden.WithDetails("role information missing")
			}

			if !slices.Contains(roles, requiredRole) {
				return domainerrors.ErrForbidden.WithDetails("require '" + requiredRole + "' role")
			}

			return next(c)
		}
	}
}

// UserID extracts the authenticated user ID placed on the context by Authenticate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}
