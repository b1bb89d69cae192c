package pokedex

// DrawMarker marks a tied stat or total.
const DrawMarker = "Draw"

// StatSummary is one side of a comparison.
type StatSummary struct {
	Name  string `json:"name"`
	ID    int    `json:"id"`
	Stats Stats  `json:"stats"`
}

// StatTotals compares the sums of all six stats.
type StatTotals struct {
	TotalFirst  int    `json:"total_first"`
	TotalSecond int    `json:"total_second"`
	Winner      string `json:"winner"`
}

// ComparisonResult is the payload of compare_pokemon_stats.
type ComparisonResult struct {
	First        StatSummary        `json:"pokemon1"`
	Second       StatSummary        `json:"pokemon2"`
	WinnerByStat map[StatKey]string `json:"winner_by_stat"`
	Totals       StatTotals         `json:"total_stats"`
}

// Compare computes per-stat and total winners. A strictly greater value
// wins; equal values are a draw.
func Compare(first, second PokemonRecord) ComparisonResult {
	result := ComparisonResult{
		First:        StatSummary{Name: first.Name, ID: first.ID, Stats: first.Stats},
		Second:       StatSummary{Name: second.Name, ID: second.ID, Stats: second.Stats},
		WinnerByStat: make(map[StatKey]string, len(StatKeys)),
	}

	for _, key := range StatKeys {
		result.WinnerByStat[key] = winner(first.Stats.Get(key), second.Stats.Get(key), first.Name, second.Name)
	}

	totalFirst := first.Stats.Total()
	totalSecond := second.Stats.Total()
	result.Totals = StatTotals{
		TotalFirst:  totalFirst,
		TotalSecond: totalSecond,
		Winner:      winner(totalFirst, totalSecond, first.Name, second.Name),
	}
	return result
}

func winner(a, b int, nameA, nameB string) string {
	switch {
	case a > b:
		return nameA
	case b > a:
		return nameB
	default:
		return DrawMarker
	}
}
