package pokeapi

// Subset of the PokeAPI schema this application reads. Fields not listed
// here are ignored by the JSON decoder.

type ListResult struct {
	Count   int                `json:"count"`
	Results []NamedAPIResource `json:"results"`
}

type NamedAPIResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Pokemon struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Height int        `json:"height"`
	Weight int        `json:"weight"`
	Types  []TypeSlot `json:"types"`
	Stats  []StatSlot `json:"stats"`
}

type TypeSlot struct {
	Slot int              `json:"slot"`
	Type NamedAPIResource `json:"type"`
}

type StatSlot struct {
	BaseStat int              `json:"base_stat"`
	Stat     NamedAPIResource `json:"stat"`
}
