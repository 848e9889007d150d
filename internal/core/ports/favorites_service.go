package ports

import "context"

// FavoritesService manages the authenticated user's favorites collection.
// All operations assume the caller's identity was already resolved by the
// auth middleware; userID is the owning account's id.
type FavoritesService interface {
	List(ctx context.Context, userID string) ([]string, error)
	Add(ctx context.Context, userID, code string) ([]string, error)
	Remove(ctx context.Context, userID, code string) ([]string, error)
}
