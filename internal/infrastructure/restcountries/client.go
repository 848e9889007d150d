// Package restcountries is a thin read-only client for the public
// REST Countries API (https://restcountries.com). The upstream schema is
// opaque to this system: responses are returned as raw JSON.
package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/worldroam/countries-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL (e.g.
// "https://restcountries.com/v3.1").
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Fetch performs a GET against baseURL+path and returns the response body.
// Upstream 404 maps to domain.ErrCountryNotFound (name/code searches with no
// match); any other non-200 status maps to domain.ErrUpstreamFailure.
func (c *Client) Fetch(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build countries request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrCountryNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: upstream status %d", domain.ErrUpstreamFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read countries response: %w", err)
	}
	return body, nil
}
