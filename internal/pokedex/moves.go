package pokedex

import (
	"github.com/hession/pokemate/internal/pokeapi"
)

// UnknownLearnMethod is reported for moves without version-group details.
const UnknownLearnMethod = "Unknown"

// MoveEntry is one learnable move.
type MoveEntry struct {
	Name         string `json:"name"`
	LearnMethod  string `json:"learn_method"`
	LevelLearned *int   `json:"level_learned"`
}

// MoveList is the payload of get_pokemon_moves.
type MoveList struct {
	Pokemon    string      `json:"pokemon"`
	TotalMoves int         `json:"total_moves"`
	MovesShown int         `json:"moves_shown"`
	Moves      []MoveEntry `json:"moves"`
}

// ListMoves returns the first limit moves of a creature in upstream order.
// Each move reports only its first version-group detail; later version
// groups are ignored.
func ListMoves(raw *pokeapi.Pokemon, limit int) (MoveList, error) {
	if raw == nil || raw.Name == "" {
		return MoveList{}, Malformed("pokemon", "missing name")
	}
	if raw.Moves == nil {
		return MoveList{}, Malformed("pokemon", "missing moves")
	}
	if limit < 0 {
		limit = 0
	}

	shown := raw.Moves
	if len(shown) > limit {
		shown = shown[:limit]
	}

	moves := make([]MoveEntry, 0, len(shown))
	for _, m := range shown {
		entry := MoveEntry{
			Name:        DisplayLabel(m.Move.Name),
			LearnMethod: UnknownLearnMethod,
		}
		if len(m.VersionGroupDetails) > 0 {
			first := m.VersionGroupDetails[0]
			entry.LearnMethod = DisplayLabel(first.MoveLearnMethod.Name)
			level := first.LevelLearnedAt
			entry.LevelLearned = &level
		}
		moves = append(moves, entry)
	}

	return MoveList{
		Pokemon:    DisplayCase(raw.Name),
		TotalMoves: len(raw.Moves),
		MovesShown: len(moves),
		Moves:      moves,
	}, nil
}
