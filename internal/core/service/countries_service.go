package service

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/worldroam/countries-api/internal/api/metrics"
	"github.com/worldroam/countries-api/internal/core/ports"
)

// CountriesFetcher abstracts the upstream REST Countries client.
type CountriesFetcher interface {
	Fetch(ctx context.Context, path string) (json.RawMessage, error)
}

// CountriesCache abstracts the response cache (Redis).
type CountriesCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// allFields trims the /all payload to what the SPA renders.
const allFields = "name,population,region,capital,flags,cca3,languages"

type countriesService struct {
	client CountriesFetcher
	cache  CountriesCache
	log    zerolog.Logger
}

// NewCountriesService returns a read-through cached CountriesService.
func NewCountriesService(client CountriesFetcher, cache CountriesCache, log zerolog.Logger) ports.CountriesService {
	return &countriesService{client: client, cache: cache, log: log}
}

func (s *countriesService) All(ctx context.Context) (json.RawMessage, error) {
	return s.fetchCached(ctx, "all", "/all?fields="+allFields)
}

func (s *countriesService) ByName(ctx context.Context, name string) (json.RawMessage, error) {
	return s.fetchCached(ctx, "name:"+strings.ToLower(name), "/name/"+url.PathEscape(name))
}

func (s *countriesService) ByRegion(ctx context.Context, region string) (json.RawMessage, error) {
	return s.fetchCached(ctx, "region:"+strings.ToLower(region), "/region/"+url.PathEscape(region))
}

func (s *countriesService) ByCode(ctx context.Context, code string) (json.RawMessage, error) {
	return s.fetchCached(ctx, "code:"+strings.ToUpper(code), "/alpha/"+url.PathEscape(code))
}

// fetchCached serves from cache when possible and falls back to the
// upstream API, caching successful responses. Cache failures are logged and
// otherwise ignored: the proxy must keep working when Redis is down.
func (s *countriesService) fetchCached(ctx context.Context, key, path string) (json.RawMessage, error) {
	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("countries cache read failed")
	} else if ok {
		metrics.CountriesCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.CountriesCacheTotal.WithLabelValues("miss").Inc()

	body, err := s.client.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, body); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("countries cache write failed")
	}
	return body, nil
}
