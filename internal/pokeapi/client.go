// Package pokeapi is a thin HTTP client for the public PokeAPI REST service.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// ErrNotFound is returned when the upstream API answers 404 for a resource.
var ErrNotFound = errors.New("pokeapi: resource not found")

// Cache stores raw upstream payloads keyed by request path. A Get miss (or
// stale entry) is reported as ok=false. The client treats cache failures as
// misses; they never fail a request.
type Cache interface {
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	Put(ctx context.Context, key string, payload []byte) error
}

type Client struct {
	baseURL string
	client  *http.Client
	cache   Cache
	logger  *log.Logger
}

// NewClient builds a PokeAPI client. cache may be nil, in which case every
// call goes straight to the upstream API.
func NewClient(baseURL string, timeout time.Duration, cache Cache, logger *log.Logger) *Client {
	transport := &http.Transport{
		MaxIdleConns:        20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		cache:  cache,
		logger: logger,
	}
}

// getJSON resolves path (relative to the base URL) into target, going
// through the cache first and falling back to an upstream GET.
func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	if c.cache != nil {
		payload, ok, err := c.cache.Get(ctx, path)
		if err != nil {
			c.logger.Printf("WARN: cache read for %s failed: %v", path, err)
		} else if ok {
			return json.Unmarshal(payload, target)
		}
	}

	payload, err := c.fetch(ctx, path)
	if err != nil {
		return err
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, path, payload); err != nil {
			c.logger.Printf("WARN: cache write for %s failed: %v", path, err)
		}
	}

	return json.Unmarshal(payload, target)
}

func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", url, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	return payload, nil
}

// ListPokemon fetches the first limit entries of the Pokémon resource list.
func (c *Client) ListPokemon(ctx context.Context, limit int) (*ListResult, error) {
	c.logger.Printf("Fetching pokemon list, limit=%d", limit)

	var result ListResult
	if err := c.getJSON(ctx, fmt.Sprintf("/pokemon?limit=%d", limit), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPokemon fetches a single Pokémon resource by its numeric id.
func (c *Client) GetPokemon(ctx context.Context, id int) (*Pokemon, error) {
	c.logger.Printf("Fetching pokemon %d", id)

	var pokemon Pokemon
	if err := c.getJSON(ctx, fmt.Sprintf("/pokemon/%d", id), &pokemon); err != nil {
		return nil, err
	}
	return &pokemon, nil
}
