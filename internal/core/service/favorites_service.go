package service

import (
	"context"
	"strings"

	"github.com/worldroam/countries-api/internal/core/domain"
	"github.com/worldroam/countries-api/internal/core/ports"
)

// FavoritesService manages a user's favorites collection. Set semantics
// (no duplicates, exact-string membership) are enforced by the repository's
// atomic conditional updates, so two concurrent adds of the same code cannot
// both succeed.
type FavoritesService struct {
	repo ports.UserRepository
}

func NewFavoritesService(repo ports.UserRepository) *FavoritesService {
	return &FavoritesService{repo: repo}
}

// List returns the user's favorites in insertion order, possibly empty.
func (s *FavoritesService) List(ctx context.Context, userID string) ([]string, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Favorites == nil {
		return []string{}, nil
	}
	return user.Favorites, nil
}

// Add appends code to the user's favorites. A second add of the same code
// fails with domain.ErrAlreadyFavorite rather than succeeding silently.
func (s *FavoritesService) Add(ctx context.Context, userID, code string) ([]string, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domain.ErrMissingCountryCode
	}
	return s.repo.AddFavorite(ctx, userID, code)
}

// Remove deletes code from the user's favorites, failing with
// domain.ErrNotFavorite when it is not present.
func (s *FavoritesService) Remove(ctx context.Context, userID, code string) ([]string, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domain.ErrMissingCountryCode
	}
	return s.repo.RemoveFavorite(ctx, userID, code)
}
