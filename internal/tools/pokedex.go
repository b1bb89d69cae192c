package tools

import (
	"context"

	"github.com/hession/pokemate/internal/pokedex"
)

// PokemonInfoTool returns the normalized record of one creature.
type PokemonInfoTool struct {
	svc *pokedex.Service
}

func NewPokemonInfoTool(svc *pokedex.Service) *PokemonInfoTool {
	return &PokemonInfoTool{svc: svc}
}

func (t *PokemonInfoTool) Name() string {
	return "get_pokemon_info"
}

func (t *PokemonInfoTool) Description() string {
	return "Get detailed information about a Pokemon: types, abilities, base stats, size and sprites."
}

func (t *PokemonInfoTool) Parameters() []ParameterDef {
	return []ParameterDef{
		{
			Name:        "name_or_id",
			Type:        "string",
			Description: "Pokemon name (e.g. pikachu) or national dex number (e.g. 25)",
			Required:    true,
		},
	}
}

func (t *PokemonInfoTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	ident, err := requireString(args, "name_or_id")
	if err != nil {
		return nil, err
	}
	return t.svc.PokemonInfo(ctx, ident)
}

// EvolutionChainTool returns the evolution tree containing a species.
type EvolutionChainTool struct {
	svc *pokedex.Service
}

func NewEvolutionChainTool(svc *pokedex.Service) *EvolutionChainTool {
	return &EvolutionChainTool{svc: svc}
}

func (t *EvolutionChainTool) Name() string {
	return "get_pokemon_evolution_chain"
}

func (t *EvolutionChainTool) Description() string {
	return "Get the full evolution chain of a Pokemon species, with level and trigger for each step."
}

func (t *EvolutionChainTool) Parameters() []ParameterDef {
	return []ParameterDef{
		{
			Name:        "name",
			Type:        "string",
			Description: "Species name (alias: pokemon_name)",
			Required:    true,
			Aliases:     []string{"pokemon_name"},
		},
	}
}

func (t *EvolutionChainTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	name, err := requireString(args, "name", "pokemon_name")
	if err != nil {
		return nil, err
	}
	return t.svc.EvolutionChain(ctx, name)
}

// SearchByTypeTool lists creatures of one elemental type.
type SearchByTypeTool struct {
	svc          *pokedex.Service
	defaultLimit int
}

func NewSearchByTypeTool(svc *pokedex.Service, defaultLimit int) *SearchByTypeTool {
	return &SearchByTypeTool{svc: svc, defaultLimit: defaultLimit}
}

func (t *SearchByTypeTool) Name() string {
	return "search_pokemon_by_type"
}

func (t *SearchByTypeTool) Description() string {
	return "List Pokemon of a given type (fire, water, electric, ...), sorted by dex number."
}

func (t *SearchByTypeTool) Parameters() []ParameterDef {
	return []ParameterDef{
		{
			Name:        "type",
			Type:        "string",
			Description: "Type name (alias: pokemon_type)",
			Required:    true,
			Aliases:     []string{"pokemon_type"},
		},
		{
			Name:        "limit",
			Type:        "integer",
			Description: "Maximum number of roster entries to resolve",
			Default:     t.defaultLimit,
		},
	}
}

func (t *SearchByTypeTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	typeName, err := requireString(args, "type", "pokemon_type")
	if err != nil {
		return nil, err
	}
	limit, err := intArg(args, "limit", t.defaultLimit)
	if err != nil {
		return nil, err
	}
	return t.svc.SearchByType(ctx, typeName, limit)
}

// RandomPokemonTool returns a uniformly chosen creature.
type RandomPokemonTool struct {
	svc *pokedex.Service
}

func NewRandomPokemonTool(svc *pokedex.Service) *RandomPokemonTool {
	return &RandomPokemonTool{svc: svc}
}

func (t *RandomPokemonTool) Name() string {
	return "get_random_pokemon"
}

func (t *RandomPokemonTool) Description() string {
	return "Get the full record of a random Pokemon."
}

func (t *RandomPokemonTool) Parameters() []ParameterDef {
	return nil
}

func (t *RandomPokemonTool) Execute(ctx context.Context, _ map[string]any) (any, error) {
	return t.svc.RandomPokemon(ctx)
}

// CompareStatsTool compares the base stats of two creatures.
type CompareStatsTool struct {
	svc *pokedex.Service
}

func NewCompareStatsTool(svc *pokedex.Service) *CompareStatsTool {
	return &CompareStatsTool{svc: svc}
}

func (t *CompareStatsTool) Name() string {
	return "compare_pokemon_stats"
}

func (t *CompareStatsTool) Description() string {
	return "Compare the six base stats and stat totals of two Pokemon."
}

func (t *CompareStatsTool) Parameters() []ParameterDef {
	return []ParameterDef{
		{
			Name:        "a",
			Type:        "string",
			Description: "First Pokemon name or id (alias: pokemon1)",
			Required:    true,
			Aliases:     []string{"pokemon1"},
		},
		{
			Name:        "b",
			Type:        "string",
			Description: "Second Pokemon name or id (alias: pokemon2)",
			Required:    true,
			Aliases:     []string{"pokemon2"},
		},
	}
}

func (t *CompareStatsTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	a, err := requireString(args, "a", "pokemon1")
	if err != nil {
		return nil, err
	}
	b, err := requireString(args, "b", "pokemon2")
	if err != nil {
		return nil, err
	}
	return t.svc.CompareStats(ctx, a, b)
}

// PokemonMovesTool lists the learnable moves of a creature.
type PokemonMovesTool struct {
	svc          *pokedex.Service
	defaultLimit int
}

func NewPokemonMovesTool(svc *pokedex.Service, defaultLimit int) *PokemonMovesTool {
	return &PokemonMovesTool{svc: svc, defaultLimit: defaultLimit}
}

func (t *PokemonMovesTool) Name() string {
	return "get_pokemon_moves"
}

func (t *PokemonMovesTool) Description() string {
	return "List the moves a Pokemon can learn, with learn method and level."
}

func (t *PokemonMovesTool) Parameters() []ParameterDef {
	return []ParameterDef{
		{
			Name:        "name",
			Type:        "string",
			Description: "Pokemon name or id (alias: pokemon_name)",
			Required:    true,
			Aliases:     []string{"pokemon_name"},
		},
		{
			Name:        "limit",
			Type:        "integer",
			Description: "Maximum number of moves to show",
			Default:     t.defaultLimit,
		},
	}
}

func (t *PokemonMovesTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	name, err := requireString(args, "name", "pokemon_name")
	if err != nil {
		return nil, err
	}
	limit, err := intArg(args, "limit", t.defaultLimit)
	if err != nil {
		return nil, err
	}
	return t.svc.Moves(ctx, name, limit)
}
