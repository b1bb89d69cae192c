package pokedex

import (
	"strings"

	"github.com/hession/pokemate/internal/pokeapi"
)

// NormalizePokemon converts a raw /pokemon document into a PokemonRecord.
// Missing stats, types, abilities or sprites are a MalformedPayload; no
// field is defaulted except a null base_experience.
func NormalizePokemon(raw *pokeapi.Pokemon) (PokemonRecord, error) {
	if raw == nil {
		return PokemonRecord{}, Malformed("pokemon", "empty document")
	}
	if raw.ID <= 0 {
		return PokemonRecord{}, Malformed("pokemon", "id must be positive, got %d", raw.ID)
	}
	if strings.TrimSpace(raw.Name) == "" {
		return PokemonRecord{}, Malformed("pokemon", "missing name")
	}
	if raw.Height < 0 || raw.Weight < 0 {
		return PokemonRecord{}, Malformed("pokemon", "negative height or weight")
	}
	if raw.Types == nil {
		return PokemonRecord{}, Malformed("pokemon", "missing types")
	}
	if raw.Abilities == nil {
		return PokemonRecord{}, Malformed("pokemon", "missing abilities")
	}
	if raw.Sprites == nil {
		return PokemonRecord{}, Malformed("pokemon", "missing sprites")
	}

	stats, err := normalizeStats(raw.Stats)
	if err != nil {
		return PokemonRecord{}, err
	}

	types := make([]string, 0, len(raw.Types))
	for _, t := range raw.Types {
		types = append(types, t.Type.Name)
	}

	abilities := make([]string, 0, len(raw.Abilities))
	for _, a := range raw.Abilities {
		abilities = append(abilities, DisplayLabel(a.Ability.Name))
	}

	baseExp := 0
	if raw.BaseExperience != nil {
		baseExp = *raw.BaseExperience
	}

	return PokemonRecord{
		ID:             raw.ID,
		Name:           DisplayCase(raw.Name),
		HeightM:        Tenths(raw.Height),
		WeightKg:       Tenths(raw.Weight),
		BaseExperience: baseExp,
		Types:          types,
		Abilities:      abilities,
		Stats:          stats,
		Sprites: Sprites{
			FrontDefault: raw.Sprites.FrontDefault,
			FrontShiny:   raw.Sprites.FrontShiny,
			BackDefault:  raw.Sprites.BackDefault,
			BackShiny:    raw.Sprites.BackShiny,
		},
	}, nil
}

func normalizeStats(raw []pokeapi.StatValue) (Stats, error) {
	if raw == nil {
		return Stats{}, Malformed("pokemon", "missing stats")
	}

	var stats Stats
	seen := make(map[StatKey]bool, len(StatKeys))
	for _, v := range raw {
		key := statKeyOf(v.Stat.Name)
		field := stats.field(key)
		if field == nil {
			// accuracy/evasion and future stats are not part of the record
			continue
		}
		if v.BaseStat < 0 {
			return Stats{}, Malformed("pokemon", "negative base stat %s", key)
		}
		*field = v.BaseStat
		seen[key] = true
	}

	for _, key := range StatKeys {
		if !seen[key] {
			return Stats{}, Malformed("pokemon", "missing stat %s", key)
		}
	}
	return stats, nil
}

// summarize extracts the roster view of a creature: id, name and front
// sprite only.
func summarize(raw *pokeapi.Pokemon) (TypeRosterEntry, error) {
	if raw == nil || raw.ID <= 0 || strings.TrimSpace(raw.Name) == "" {
		return TypeRosterEntry{}, Malformed("pokemon", "missing id or name")
	}
	if raw.Sprites == nil {
		return TypeRosterEntry{}, Malformed("pokemon", "missing sprites")
	}
	return TypeRosterEntry{
		ID:        raw.ID,
		Name:      DisplayCase(raw.Name),
		SpriteURL: raw.Sprites.FrontDefault,
	}, nil
}
