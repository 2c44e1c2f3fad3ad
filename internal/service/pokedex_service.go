package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/godex-app/godex/internal/model"
	"github.com/godex-app/godex/internal/pokeapi"
)

// PokeapiClient is the upstream contract the service depends on. The
// concrete implementation is pokeapi.Client.
type PokeapiClient interface {
	ListPokemon(ctx context.Context, limit int) (*pokeapi.ListResult, error)
	GetPokemon(ctx context.Context, id int) (*pokeapi.Pokemon, error)
}

type PokedexService struct {
	client    PokeapiClient
	spriteURL string
	listLimit int
}

func NewPokedexService(client PokeapiClient, spriteURL string, listLimit int) *PokedexService {
	return &PokedexService{
		client:    client,
		spriteURL: spriteURL,
		listLimit: listLimit,
	}
}

// ListPokemon returns one summary per entry of the upstream resource list,
// in upstream order.
func (s *PokedexService) ListPokemon(ctx context.Context) ([]model.PokemonSummary, error) {
	result, err := s.client.ListPokemon(ctx, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	summaries := make([]model.PokemonSummary, 0, len(result.Results))
	for _, entry := range result.Results {
		id, err := idFromResourceURL(entry.URL)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %q: %v", ErrUpstream, entry.Name, err)
		}
		summaries = append(summaries, model.PokemonSummary{
			ID:       id,
			Name:     entry.Name,
			ImageURL: s.imageURL(id),
		})
	}
	return summaries, nil
}

// GetPokemon reshapes a single upstream resource into the detail view model.
// Stat names and values are taken positionally from the same upstream array,
// so the two slices are aligned and equal in length.
func (s *PokedexService) GetPokemon(ctx context.Context, id int) (*model.PokemonDetail, error) {
	pokemon, err := s.client.GetPokemon(ctx, id)
	if err != nil {
		if errors.Is(err, pokeapi.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	types := make([]string, 0, len(pokemon.Types))
	for _, t := range pokemon.Types {
		types = append(types, t.Type.Name)
	}

	statNames := make([]string, 0, len(pokemon.Stats))
	statValues := make([]int, 0, len(pokemon.Stats))
	for _, st := range pokemon.Stats {
		statNames = append(statNames, st.Stat.Name)
		statValues = append(statValues, st.BaseStat)
	}

	return &model.PokemonDetail{
		ID:         pokemon.ID,
		Name:       pokemon.Name,
		ImageURL:   s.imageURL(pokemon.ID),
		Types:      types,
		Height:     pokemon.Height,
		Weight:     pokemon.Weight,
		StatNames:  statNames,
		StatValues: statValues,
	}, nil
}

func (s *PokedexService) imageURL(id int) string {
	return fmt.Sprintf("%s/%d.png", s.spriteURL, id)
}

// idFromResourceURL extracts the numeric id from the trailing path segment
// of an upstream resource URL, e.g. ".../api/v2/pokemon/25/" -> 25.
func idFromResourceURL(url string) (int, error) {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return 0, fmt.Errorf("no path segments in resource url %q", url)
	}

	id, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("resource url %q has no numeric id", url)
	}
	return id, nil
}
