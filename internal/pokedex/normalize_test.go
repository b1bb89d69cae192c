package pokedex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hession/pokemate/internal/pokeapi"
)

func TestNormalizePokemon(t *testing.T) {
	rec, err := NormalizePokemon(pikachu())
	require.NoError(t, err)

	assert.Equal(t, 25, rec.ID)
	assert.Equal(t, "Pikachu", rec.Name)
	assert.Equal(t, "0.4", rec.HeightM.String())
	assert.Equal(t, "6.0", rec.WeightKg.String())
	assert.Equal(t, 125, rec.BaseExperience)
	assert.Equal(t, []string{"electric"}, rec.Types)
	assert.Equal(t, []string{"Static", "Lightning Rod"}, rec.Abilities)
	assert.Equal(t, Stats{HP: 35, Attack: 55, Defense: 40, SpecialAttack: 50, SpecialDefense: 50, Speed: 90}, rec.Stats)
	require.NotNil(t, rec.Sprites.FrontDefault)
	assert.Equal(t, "https://img.test/25.png", *rec.Sprites.FrontDefault)
	assert.Nil(t, rec.Sprites.BackShiny)
}

func TestNormalizePokemon_IgnoresExtraStats(t *testing.T) {
	raw := pikachu()
	raw.Stats = append(raw.Stats, pokeapi.StatValue{BaseStat: 999, Stat: pokeapi.NamedResource{Name: "accuracy"}})

	rec, err := NormalizePokemon(raw)
	require.NoError(t, err)
	assert.Equal(t, 320, rec.Stats.Total())
}

func TestNormalizePokemon_NullBaseExperience(t *testing.T) {
	raw := pikachu()
	raw.BaseExperience = nil

	rec, err := NormalizePokemon(raw)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.BaseExperience)
}

func TestNormalizePokemon_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *pokeapi.Pokemon)
		detail string
	}{
		{"zero id", func(p *pokeapi.Pokemon) { p.ID = 0 }, "id must be positive"},
		{"empty name", func(p *pokeapi.Pokemon) { p.Name = " " }, "missing name"},
		{"negative height", func(p *pokeapi.Pokemon) { p.Height = -1 }, "negative height"},
		{"missing types", func(p *pokeapi.Pokemon) { p.Types = nil }, "missing types"},
		{"missing abilities", func(p *pokeapi.Pokemon) { p.Abilities = nil }, "missing abilities"},
		{"missing sprites", func(p *pokeapi.Pokemon) { p.Sprites = nil }, "missing sprites"},
		{"missing stats", func(p *pokeapi.Pokemon) { p.Stats = nil }, "missing stats"},
		{"missing speed", func(p *pokeapi.Pokemon) { p.Stats = p.Stats[:5] }, "missing stat speed"},
		{"negative stat", func(p *pokeapi.Pokemon) { p.Stats[0].BaseStat = -3 }, "negative base stat hp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := pikachu()
			tt.mutate(raw)

			_, err := NormalizePokemon(raw)
			require.Error(t, err)
			assert.True(t, IsMalformed(err))
			assert.Contains(t, err.Error(), "upstream request failed: malformed pokemon payload")
			assert.Contains(t, err.Error(), tt.detail)
		})
	}
}

func TestNormalizePokemon_Nil(t *testing.T) {
	_, err := NormalizePokemon(nil)
	assert.True(t, IsMalformed(err))
}

func TestSummarize(t *testing.T) {
	entry, err := summarize(raichu())
	require.NoError(t, err)
	assert.Equal(t, 26, entry.ID)
	assert.Equal(t, "Raichu", entry.Name)
	require.NotNil(t, entry.SpriteURL)
	assert.Equal(t, "https://img.test/26.png", *entry.SpriteURL)

	raw := raichu()
	raw.Sprites.FrontDefault = nil
	entry, err = summarize(raw)
	require.NoError(t, err)
	assert.Nil(t, entry.SpriteURL)

	raw.Sprites = nil
	_, err = summarize(raw)
	assert.True(t, IsMalformed(err))
}
