package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/worldroam/countries-api/internal/core/domain"
)

type stubFetcher struct {
	calls []string
	body  json.RawMessage
	err   error
}

func (f *stubFetcher) Fetch(_ context.Context, path string) (json.RawMessage, error) {
	f.calls = append(f.calls, path)
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

type stubCache struct {
	entries map[string][]byte
	getErr  error
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *stubCache) Set(_ context.Context, key string, value []byte) error {
	c.entries[key] = value
	return nil
}

func TestCountriesService_All_CachesResponse(t *testing.T) {
	fetcher := &stubFetcher{body: json.RawMessage(`[{"cca3":"USA"}]`)}
	cache := newStubCache()
	svc := NewCountriesService(fetcher, cache, zerolog.Nop())

	first, err := svc.All(context.Background())
	if err != nil {
		t.Fatalf("first All returned error: %v", err)
	}
	if len(fetcher.calls) != 1 {
		t.Fatalf("expected one upstream call, got %d", len(fetcher.calls))
	}

	second, err := svc.All(context.Background())
	if err != nil {
		t.Fatalf("second All returned error: %v", err)
	}
	if len(fetcher.calls) != 1 {
		t.Fatalf("second call should be served from cache, got %d upstream calls", len(fetcher.calls))
	}
	if string(first) != string(second) {
		t.Fatalf("cached response differs: %s vs %s", first, second)
	}
}

func TestCountriesService_ByName_PathAndKey(t *testing.T) {
	fetcher := &stubFetcher{body: json.RawMessage(`[{"cca3":"DEU"}]`)}
	cache := newStubCache()
	svc := NewCountriesService(fetcher, cache, zerolog.Nop())

	if _, err := svc.ByName(context.Background(), "Germany"); err != nil {
		t.Fatalf("ByName returned error: %v", err)
	}
	if fetcher.calls[0] != "/name/Germany" {
		t.Fatalf("unexpected upstream path: %s", fetcher.calls[0])
	}
	if _, ok := cache.entries["name:germany"]; !ok {
		t.Fatalf("expected cache entry under normalized key, have %v", cache.entries)
	}
}

func TestCountriesService_UpstreamErrorPropagates(t *testing.T) {
	fetcher := &stubFetcher{err: domain.ErrCountryNotFound}
	cache := newStubCache()
	svc := NewCountriesService(fetcher, cache, zerolog.Nop())

	if _, err := svc.ByCode(context.Background(), "XXX"); err != domain.ErrCountryNotFound {
		t.Fatalf("expected ErrCountryNotFound, got %v", err)
	}
	if len(cache.entries) != 0 {
		t.Fatalf("error responses must not be cached: %v", cache.entries)
	}
}

func TestCountriesService_CacheFailureFallsThrough(t *testing.T) {
	fetcher := &stubFetcher{body: json.RawMessage(`[]`)}
	cache := newStubCache()
	cache.getErr = context.DeadlineExceeded
	svc := NewCountriesService(fetcher, cache, zerolog.Nop())

	body, err := svc.ByRegion(context.Background(), "Europe")
	if err != nil {
		t.Fatalf("ByRegion returned error: %v", err)
	}
	if string(body) != "[]" {
		t.Fatalf("unexpected body: %s", body)
	}
	if len(fetcher.calls) != 1 {
		t.Fatalf("expected upstream call despite cache failure")
	}
}
