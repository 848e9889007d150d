package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/worldroam/countries-api/internal/core/domain"
)

// IdentityKey is the echo.Context key under which the authenticated user is
// stored. Handlers behind Auth may assume it holds a *domain.User.
const IdentityKey = "identity"

// TokenVerifier validates a bearer token and returns the embedded user id.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// IdentityResolver loads the account referenced by a verified token.
type IdentityResolver interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth extracts the bearer token, verifies it, resolves the identity and
// attaches it to the request context. Every failure mode — missing header,
// malformed or expired token, identity gone since issuance — yields the same
// 401 so callers cannot probe which check failed.
func Auth(tokens TokenVerifier, users IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrNotAuthorized
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrNotAuthorized
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				return domain.ErrNotAuthorized
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return domain.ErrNotAuthorized
			}

			c.Set(IdentityKey, user)
			return next(c)
		}
	}
}
