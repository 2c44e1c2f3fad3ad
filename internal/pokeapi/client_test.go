package pokeapi

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestListPokemonDecodesUpstreamPayload(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "2" {
			t.Errorf("expected limit=2, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"count":2,"results":[
			{"name":"bulbasaur","url":"https://pokeapi.co/api/v2/pokemon/1/"},
			{"name":"ivysaur","url":"https://pokeapi.co/api/v2/pokemon/2/"}]}`)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, 5*time.Second, nil, testLogger())

	result, err := c.ListPokemon(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListPokemon returned error: %v", err)
	}
	if len(result.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(result.Results))
	}
	if result.Results[0].Name != "bulbasaur" {
		t.Errorf("expected first result bulbasaur, got %q", result.Results[0].Name)
	}
}

func TestGetPokemonDecodesUpstreamPayload(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon/25" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":25,"name":"pikachu","height":4,"weight":60,
			"types":[{"slot":1,"type":{"name":"electric","url":""}}],
			"stats":[{"base_stat":35,"stat":{"name":"hp","url":""}},
			         {"base_stat":90,"stat":{"name":"speed","url":""}}]}`)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, 5*time.Second, nil, testLogger())

	pokemon, err := c.GetPokemon(context.Background(), 25)
	if err != nil {
		t.Fatalf("GetPokemon returned error: %v", err)
	}
	if pokemon.ID != 25 || pokemon.Name != "pikachu" {
		t.Errorf("unexpected pokemon %+v", pokemon)
	}
	if len(pokemon.Stats) != 2 || pokemon.Stats[1].Stat.Name != "speed" {
		t.Errorf("unexpected stats %+v", pokemon.Stats)
	}
}

func TestGetPokemonMaps404ToErrNotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, 5*time.Second, nil, testLogger())

	_, err := c.GetPokemon(context.Background(), 99999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetPokemonRejectsServerError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, 5*time.Second, nil, testLogger())

	if _, err := c.GetPokemon(context.Background(), 1); err == nil {
		t.Fatal("expected error for upstream 500, got nil")
	}
}

// memoryCache is a map-backed Cache for tests.
type memoryCache struct {
	entries map[string][]byte
	getErr  error
	putErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	payload, ok := m.entries[key]
	return payload, ok, nil
}

func (m *memoryCache) Put(ctx context.Context, key string, payload []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.entries[key] = payload
	return nil
}

func TestCacheHitSkipsUpstreamCall(t *testing.T) {
	var calls int
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		io.WriteString(w, `{"id":1,"name":"bulbasaur"}`)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, 5*time.Second, newMemoryCache(), testLogger())

	for i := 0; i < 3; i++ {
		if _, err := c.GetPokemon(context.Background(), 1); err != nil {
			t.Fatalf("GetPokemon call %d returned error: %v", i, err)
		}
	}

	if calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls)
	}
}

func TestCacheFailureFallsBackToUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":1,"name":"bulbasaur"}`)
	}))
	defer upstream.Close()

	cache := newMemoryCache()
	cache.getErr = errors.New("database is locked")
	cache.putErr = errors.New("database is locked")

	c := NewClient(upstream.URL, 5*time.Second, cache, testLogger())

	pokemon, err := c.GetPokemon(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected cache failure to be ignored, got %v", err)
	}
	if pokemon.Name != "bulbasaur" {
		t.Errorf("unexpected pokemon %+v", pokemon)
	}
}
