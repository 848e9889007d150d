package ports

import (
	"context"
	"encoding/json"
)

// CountriesService proxies the public REST Countries API. Responses are
// passed through as raw JSON; this system owns no part of their schema.
type CountriesService interface {
	All(ctx context.Context) (json.RawMessage, error)
	ByName(ctx context.Context, name string) (json.RawMessage, error)
	ByRegion(ctx context.Context, region string) (json.RawMessage, error)
	ByCode(ctx context.Context, code string) (json.RawMessage, error)
}
