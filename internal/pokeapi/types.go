// Package pokeapi is a thin HTTP client for the PokeAPI v2 REST service.
//
// The types in this file mirror the upstream JSON. Optional or nullable
// upstream fields are pointers, and lists are left nil when the upstream
// document omits them, so callers can tell "absent" from "empty".
package pokeapi

// NamedResource is the {name, url} pair PokeAPI uses for every reference.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pokemon is the /pokemon/{id or name} document.
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Height         int           `json:"height"` // decimeters
	Weight         int           `json:"weight"` // hectograms
	BaseExperience *int          `json:"base_experience"`
	Types          []TypeSlot    `json:"types"`
	Abilities      []AbilitySlot `json:"abilities"`
	Stats          []StatValue   `json:"stats"`
	Sprites        *Sprites      `json:"sprites"`
	Moves          []PokemonMove `json:"moves"`
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type AbilitySlot struct {
	Slot     int           `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

type StatValue struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// Sprites holds the default sprite URLs; each may be null upstream.
type Sprites struct {
	FrontDefault *string `json:"front_default"`
	FrontShiny   *string `json:"front_shiny"`
	BackDefault  *string `json:"back_default"`
	BackShiny    *string `json:"back_shiny"`
}

type PokemonMove struct {
	Move                NamedResource      `json:"move"`
	VersionGroupDetails []MoveVersionGroup `json:"version_group_details"`
}

type MoveVersionGroup struct {
	LevelLearnedAt  int           `json:"level_learned_at"`
	MoveLearnMethod NamedResource `json:"move_learn_method"`
}

// Species is the /pokemon-species/{name} document (fields we use).
type Species struct {
	Name           string       `json:"name"`
	EvolutionChain *APIResource `json:"evolution_chain"`
}

// APIResource is an unnamed reference.
type APIResource struct {
	URL string `json:"url"`
}

// EvolutionChain is the /evolution-chain/{id} document.
type EvolutionChain struct {
	ID    int        `json:"id"`
	Chain *ChainLink `json:"chain"`
}

// ChainLink is one node of the nested evolution chain.
type ChainLink struct {
	Species          *NamedResource    `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

// EvolutionDetail is one alternative condition for evolving into a link.
type EvolutionDetail struct {
	MinLevel *int           `json:"min_level"`
	Trigger  *NamedResource `json:"trigger"`
}

// Type is the /type/{name} document.
type Type struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Pokemon []TypePokemon `json:"pokemon"`
}

type TypePokemon struct {
	Slot    int           `json:"slot"`
	Pokemon NamedResource `json:"pokemon"`
}
