package model

// PokemonSummary is one entry on the listing page. It lives only for the
// duration of the request that built it.
type PokemonSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// PokemonDetail is the view model for a single Pokémon's detail page.
// StatNames and StatValues are always the same length and positionally
// aligned, in the order the upstream API returned them.
type PokemonDetail struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	ImageURL   string   `json:"image_url"`
	Types      []string `json:"types"`
	Height     int      `json:"height"`
	Weight     int      `json:"weight"`
	StatNames  []string `json:"stat_names"`
	StatValues []int    `json:"stat_values"`
}
