package ports

import (
	"context"

	"github.com/worldroam/countries-api/internal/core/domain"
)

// AuthService implements registration, login and profile retrieval.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, id string) (*domain.User, error)
}
