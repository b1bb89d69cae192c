// Package pokedex turns raw PokeAPI documents into the normalized views
// served by the tools: creature records, evolution trees, type rosters,
// move lists and stat comparisons.
package pokedex

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// StatKey names one of the six base stats.
type StatKey string

const (
	StatHP             StatKey = "hp"
	StatAttack         StatKey = "attack"
	StatDefense        StatKey = "defense"
	StatSpecialAttack  StatKey = "special_attack"
	StatSpecialDefense StatKey = "special_defense"
	StatSpeed          StatKey = "speed"
)

// StatKeys is the fixed iteration order for every stat-wise computation.
var StatKeys = [6]StatKey{
	StatHP,
	StatAttack,
	StatDefense,
	StatSpecialAttack,
	StatSpecialDefense,
	StatSpeed,
}

// Stats always carries all six base stats.
type Stats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// Get returns the value of one stat.
func (s Stats) Get(key StatKey) int {
	if p := s.field(key); p != nil {
		return *p
	}
	return 0
}

// Total sums the six stats.
func (s Stats) Total() int {
	total := 0
	for _, key := range StatKeys {
		total += s.Get(key)
	}
	return total
}

func (s *Stats) field(key StatKey) *int {
	switch key {
	case StatHP:
		return &s.HP
	case StatAttack:
		return &s.Attack
	case StatDefense:
		return &s.Defense
	case StatSpecialAttack:
		return &s.SpecialAttack
	case StatSpecialDefense:
		return &s.SpecialDefense
	case StatSpeed:
		return &s.Speed
	}
	return nil
}

// Sprites holds the four default sprite URLs, each possibly null.
type Sprites struct {
	FrontDefault *string `json:"front_default"`
	FrontShiny   *string `json:"front_shiny"`
	BackDefault  *string `json:"back_default"`
	BackShiny    *string `json:"back_shiny"`
}

// Tenths is a non-float decimal with one fractional digit. Upstream sizes
// are integers in decimeters and hectograms, so a Tenths holds them
// unchanged and only the rendering moves the decimal point.
type Tenths int

func (t Tenths) String() string {
	sign := ""
	v := int(t)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%d", sign, v/10, v%10)
}

func (t Tenths) MarshalJSON() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tenths) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid decimal %s: %w", data, err)
	}
	*t = Tenths(math.Round(f * 10))
	return nil
}

// PokemonRecord is the normalized creature view.
type PokemonRecord struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	HeightM        Tenths   `json:"height_m"`
	WeightKg       Tenths   `json:"weight_kg"`
	BaseExperience int      `json:"base_experience"`
	Types          []string `json:"types"`
	Abilities      []string `json:"abilities"`
	Stats          Stats    `json:"stats"`
	Sprites        Sprites  `json:"sprites"`
}

// DisplayCase upper-cases the first letter of each whitespace-separated
// token and lower-cases the rest: "mr-mime" -> "Mr-mime".
func DisplayCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		runes := []rune(strings.ToLower(f))
		runes[0] = unicode.ToUpper(runes[0])
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}

// DisplayLabel is DisplayCase for hyphenated identifiers such as moves and
// abilities: "thunder-punch" -> "Thunder Punch".
func DisplayLabel(s string) string {
	return DisplayCase(strings.ReplaceAll(s, "-", " "))
}

// statKeyOf maps an upstream stat name ("special-attack") to its key.
func statKeyOf(upstream string) StatKey {
	return StatKey(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(upstream)), "-", "_"))
}
