package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/worldroam/countries-api/internal/api/middleware"
	"github.com/worldroam/countries-api/internal/core/domain"
)

// currentUser extracts the identity attached by the Auth middleware. A
// missing or mistyped value means the route was wired without the
// middleware; reject as unauthorized rather than panicking.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.IdentityKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrNotAuthorized
	}
	return user, nil
}
