package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/worldroam/countries-api/internal/api/middleware"
	"github.com/worldroam/countries-api/internal/core/domain"
)

type stubFavoritesService struct {
	listFn   func(ctx context.Context, userID string) ([]string, error)
	addFn    func(ctx context.Context, userID, code string) ([]string, error)
	removeFn func(ctx context.Context, userID, code string) ([]string, error)
}

func (s *stubFavoritesService) List(ctx context.Context, userID string) ([]string, error) {
	return s.listFn(ctx, userID)
}

func (s *stubFavoritesService) Add(ctx context.Context, userID, code string) ([]string, error) {
	return s.addFn(ctx, userID, code)
}

func (s *stubFavoritesService) Remove(ctx context.Context, userID, code string) ([]string, error) {
	return s.removeFn(ctx, userID, code)
}

func decodeData(t *testing.T, body []byte) []any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success true, got %v", resp["success"])
	}
	data, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("expected data array, got %T", resp["data"])
	}
	return data
}

func TestFavoritesHandler_List(t *testing.T) {
	stub := &stubFavoritesService{
		listFn: func(ctx context.Context, userID string) ([]string, error) {
			if userID != "user_1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return []string{"USA", "CAN"}, nil
		},
	}
	h := NewFavoritesHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/favorites", "")
	c.Set(middleware.IdentityKey, &domain.User{ID: "user_1"})

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeData(t, rec.Body.Bytes())
	if len(data) != 2 || data[0] != "USA" || data[1] != "CAN" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestFavoritesHandler_List_EmptyStaysArray(t *testing.T) {
	stub := &stubFavoritesService{
		listFn: func(ctx context.Context, userID string) ([]string, error) {
			return []string{}, nil
		},
	}
	h := NewFavoritesHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/favorites", "")
	c.Set(middleware.IdentityKey, &domain.User{ID: "user_1"})

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	data := decodeData(t, rec.Body.Bytes())
	if len(data) != 0 {
		t.Fatalf("expected empty data array, got %v", data)
	}
}

func TestFavoritesHandler_Add_Success(t *testing.T) {
	stub := &stubFavoritesService{
		addFn: func(ctx context.Context, userID, code string) ([]string, error) {
			if code != "USA" {
				t.Fatalf("unexpected code: %s", code)
			}
			return []string{"USA"}, nil
		},
	}
	h := NewFavoritesHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/favorites", `{"countryCode":"USA"}`)
	c.Set(middleware.IdentityKey, &domain.User{ID: "user_1"})

	if err := h.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeData(t, rec.Body.Bytes())
	if len(data) != 1 || data[0] != "USA" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestFavoritesHandler_Add_Duplicate(t *testing.T) {
	stub := &stubFavoritesService{
		addFn: func(ctx context.Context, userID, code string) ([]string, error) {
			return nil, domain.ErrAlreadyFavorite
		},
	}
	h := NewFavoritesHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/favorites", `{"countryCode":"CAN"}`)
	c.Set(middleware.IdentityKey, &domain.User{ID: "user_1"})

	if err := h.Add(c); !errors.Is(err, domain.ErrAlreadyFavorite) {
		t.Fatalf("expected ErrAlreadyFavorite, got %v", err)
	}
}

func TestFavoritesHandler_Add_MissingCode(t *testing.T) {
	stub := &stubFavoritesService{
		addFn: func(ctx context.Context, userID, code string) ([]string, error) {
			if code != "" {
				t.Fatalf("unexpected code: %q", code)
			}
			return nil, domain.ErrMissingCountryCode
		},
	}
	h := NewFavoritesHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/favorites", `{}`)
	c.Set(middleware.IdentityKey, &domain.User{ID: "user_1"})

	if err := h.Add(c); !errors.Is(err, domain.ErrMissingCountryCode) {
		t.Fatalf("expected ErrMissingCountryCode, got %v", err)
	}
}

func TestFavoritesHandler_Add_NoIdentity(t *testing.T) {
	called := false
	stub := &stubFavoritesService{
		addFn: func(ctx context.Context, userID, code string) ([]string, error) {
			called = true
			return nil, nil
		},
	}
	h := NewFavoritesHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/favorites", `{"countryCode":"USA"}`)

	if err := h.Add(c); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if called {
		t.Fatalf("service must not be touched without an identity")
	}
}

func TestFavoritesHandler_Remove_Success(t *testing.T) {
	stub := &stubFavoritesService{
		removeFn: func(ctx context.Context, userID, code string) ([]string, error) {
			if code != "DEU" {
				t.Fatalf("unexpected code: %s", code)
			}
			return []string{"ITA"}, nil
		},
	}
	h := NewFavoritesHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/favorites/DEU", "")
	c.SetParamNames("countryCode")
	c.SetParamValues("DEU")
	c.Set(middleware.IdentityKey, &domain.User{ID: "user_1"})

	if err := h.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	data := decodeData(t, rec.Body.Bytes())
	if len(data) != 1 || data[0] != "ITA" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestFavoritesHandler_Remove_NotPresent(t *testing.T) {
	stub := &stubFavoritesService{
		removeFn: func(ctx context.Context, userID, code string) ([]string, error) {
			return nil, domain.ErrNotFavorite
		},
	}
	h := NewFavoritesHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/api/favorites/XXX", "")
	c.SetParamNames("countryCode")
	c.SetParamValues("XXX")
	c.Set(middleware.IdentityKey, &domain.User{ID: "user_1"})

	if err := h.Remove(c); !errors.Is(err, domain.ErrNotFavorite) {
		t.Fatalf("expected ErrNotFavorite, got %v", err)
	}
}
