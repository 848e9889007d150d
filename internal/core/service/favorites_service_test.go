package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/worldroam/countries-api/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, favorites ...string) string {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Username:  "fav",
		Email:     "fav@example.com",
		Favorites: favorites,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func TestFavoritesService_List_Empty(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewFavoritesService(repo)
	id := seedUser(t, repo)

	codes, err := svc.List(context.Background(), id)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if codes == nil || len(codes) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", codes)
	}
}

func TestFavoritesService_Add_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewFavoritesService(repo)
	id := seedUser(t, repo)

	codes, err := svc.Add(context.Background(), id, "USA")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if !reflect.DeepEqual(codes, []string{"USA"}) {
		t.Fatalf("unexpected favorites: %v", codes)
	}
}

func TestFavoritesService_Add_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewFavoritesService(repo)
	id := seedUser(t, repo)

	if _, err := svc.Add(context.Background(), id, "CAN"); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if _, err := svc.Add(context.Background(), id, "CAN"); err != domain.ErrAlreadyFavorite {
		t.Fatalf("expected ErrAlreadyFavorite, got %v", err)
	}

	codes, err := svc.List(context.Background(), id)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if !reflect.DeepEqual(codes, []string{"CAN"}) {
		t.Fatalf("expected CAN exactly once, got %v", codes)
	}
}

func TestFavoritesService_Add_MissingCode(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewFavoritesService(repo)
	id := seedUser(t, repo)

	for _, code := range []string{"", "   "} {
		if _, err := svc.Add(context.Background(), id, code); err != domain.ErrMissingCountryCode {
			t.Fatalf("expected ErrMissingCountryCode for %q, got %v", code, err)
		}
	}
}

func TestFavoritesService_Remove_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewFavoritesService(repo)
	id := seedUser(t, repo, "DEU", "ITA")

	codes, err := svc.Remove(context.Background(), id, "DEU")
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if !reflect.DeepEqual(codes, []string{"ITA"}) {
		t.Fatalf("expected [ITA], got %v", codes)
	}
}

func TestFavoritesService_Remove_NotPresent(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewFavoritesService(repo)
	id := seedUser(t, repo, "DEU")

	if _, err := svc.Remove(context.Background(), id, "XXX"); err != domain.ErrNotFavorite {
		t.Fatalf("expected ErrNotFavorite, got %v", err)
	}

	codes, err := svc.List(context.Background(), id)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if !reflect.DeepEqual(codes, []string{"DEU"}) {
		t.Fatalf("favorites changed on failed remove: %v", codes)
	}
}

// The collection must never hold a duplicate code after any sequence of
// add/remove operations.
func TestFavoritesService_SetInvariant(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewFavoritesService(repo)
	id := seedUser(t, repo)

	ops := []struct {
		add  bool
		code string
	}{
		{true, "USA"}, {true, "CAN"}, {true, "USA"},
		{false, "USA"}, {true, "USA"}, {true, "MEX"},
		{false, "CAN"}, {true, "CAN"}, {true, "CAN"},
	}

	for _, op := range ops {
		if op.add {
			_, _ = svc.Add(context.Background(), id, op.code)
		} else {
			_, _ = svc.Remove(context.Background(), id, op.code)
		}

		codes, err := svc.List(context.Background(), id)
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		seen := make(map[string]bool, len(codes))
		for _, c := range codes {
			if seen[c] {
				t.Fatalf("duplicate %q in favorites after %+v: %v", c, op, codes)
			}
			seen[c] = true
		}
	}
}
