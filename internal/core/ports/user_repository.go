package ports

import (
	"context"

	"github.com/worldroam/countries-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
//
// Create must rely on a storage-level uniqueness constraint on email so that
// concurrent registrations with the same address cannot both succeed.
// AddFavorite and RemoveFavorite must be atomic per document: membership
// check and mutation happen in a single conditional update, returning the
// favorites as stored after the operation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// AddFavorite appends code if absent; returns domain.ErrAlreadyFavorite otherwise.
	AddFavorite(ctx context.Context, id, code string) ([]string, error)
	// RemoveFavorite removes code if present; returns domain.ErrNotFavorite otherwise.
	RemoveFavorite(ctx context.Context, id, code string) ([]string, error)
}
