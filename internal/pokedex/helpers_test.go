package pokedex

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/hession/pokemate/internal/pokeapi"
)

// fakeFetcher serves canned documents and records every call.
type fakeFetcher struct {
	mu          sync.Mutex
	pokemon     map[string]*pokeapi.Pokemon
	species     map[string]*pokeapi.Species
	chains      map[string]*pokeapi.EvolutionChain
	types       map[string]*pokeapi.Type
	errs        map[string]error
	delays      map[string]time.Duration
	calls       []string
	inFlight    int
	maxInFlight int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		pokemon: make(map[string]*pokeapi.Pokemon),
		species: make(map[string]*pokeapi.Species),
		chains:  make(map[string]*pokeapi.EvolutionChain),
		types:   make(map[string]*pokeapi.Type),
		errs:    make(map[string]error),
		delays:  make(map[string]time.Duration),
	}
}

func (f *fakeFetcher) addPokemon(p *pokeapi.Pokemon) {
	f.pokemon[p.Name] = p
	f.pokemon[strconv.Itoa(p.ID)] = p
}

func (f *fakeFetcher) enter(ctx context.Context, key string) (func(), error) {
	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	delay := f.delays[key]
	err := f.errs[key]
	f.mu.Unlock()

	done := func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
		}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return done, ctxErr
	}
	return done, err
}

func (f *fakeFetcher) callCount(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (f *fakeFetcher) Pokemon(ctx context.Context, nameOrID string) (*pokeapi.Pokemon, error) {
	done, err := f.enter(ctx, "pokemon:"+nameOrID)
	defer done()
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pokemon[nameOrID]
	if !ok {
		return nil, &pokeapi.NotFoundError{Resource: "pokemon", Identifier: nameOrID}
	}
	return p, nil
}

func (f *fakeFetcher) Species(ctx context.Context, name string) (*pokeapi.Species, error) {
	done, err := f.enter(ctx, "species:"+name)
	defer done()
	if err != nil {
		return nil, err
	}
	s, ok := f.species[name]
	if !ok {
		return nil, &pokeapi.NotFoundError{Resource: "pokemon-species", Identifier: name}
	}
	return s, nil
}

func (f *fakeFetcher) EvolutionChain(ctx context.Context, url string) (*pokeapi.EvolutionChain, error) {
	done, err := f.enter(ctx, "chain:"+url)
	defer done()
	if err != nil {
		return nil, err
	}
	c, ok := f.chains[url]
	if !ok {
		return nil, &pokeapi.NotFoundError{Resource: "evolution-chain", Identifier: url}
	}
	return c, nil
}

func (f *fakeFetcher) Type(ctx context.Context, name string) (*pokeapi.Type, error) {
	done, err := f.enter(ctx, "type:"+name)
	defer done()
	if err != nil {
		return nil, err
	}
	t, ok := f.types[name]
	if !ok {
		return nil, &pokeapi.NotFoundError{Resource: "type", Identifier: name}
	}
	return t, nil
}

var upstreamStatNames = [6]string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// rawPokemon builds a complete upstream document with stats in StatKeys order.
func rawPokemon(id int, name string, stats [6]int) *pokeapi.Pokemon {
	exp := 100 + id
	stat := make([]pokeapi.StatValue, 0, len(stats))
	for i, v := range stats {
		stat = append(stat, pokeapi.StatValue{BaseStat: v, Stat: pokeapi.NamedResource{Name: upstreamStatNames[i]}})
	}
	return &pokeapi.Pokemon{
		ID:             id,
		Name:           name,
		Height:         4,
		Weight:         60,
		BaseExperience: &exp,
		Types: []pokeapi.TypeSlot{
			{Slot: 1, Type: pokeapi.NamedResource{Name: "electric"}},
		},
		Abilities: []pokeapi.AbilitySlot{
			{Slot: 1, Ability: pokeapi.NamedResource{Name: "static"}},
			{Slot: 3, IsHidden: true, Ability: pokeapi.NamedResource{Name: "lightning-rod"}},
		},
		Stats: stat,
		Sprites: &pokeapi.Sprites{
			FrontDefault: strPtr(fmt.Sprintf("https://img.test/%d.png", id)),
		},
		Moves: []pokeapi.PokemonMove{},
	}
}

func pikachu() *pokeapi.Pokemon {
	return rawPokemon(25, "pikachu", [6]int{35, 55, 40, 50, 50, 90})
}

func raichu() *pokeapi.Pokemon {
	return rawPokemon(26, "raichu", [6]int{60, 90, 55, 90, 80, 110})
}

func typeRoster(name string, members ...string) *pokeapi.Type {
	t := &pokeapi.Type{Name: name, Pokemon: []pokeapi.TypePokemon{}}
	for i, m := range members {
		t.Pokemon = append(t.Pokemon, pokeapi.TypePokemon{
			Slot:    i + 1,
			Pokemon: pokeapi.NamedResource{Name: m},
		})
	}
	return t
}

// link builds one evolution chain link; trigger "" means no trigger.
func link(species string, minLevel *int, trigger string, children ...pokeapi.ChainLink) pokeapi.ChainLink {
	l := pokeapi.ChainLink{
		Species:   &pokeapi.NamedResource{Name: species},
		EvolvesTo: children,
	}
	if minLevel != nil || trigger != "" {
		d := pokeapi.EvolutionDetail{MinLevel: minLevel}
		if trigger != "" {
			d.Trigger = &pokeapi.NamedResource{Name: trigger}
		}
		l.EvolutionDetails = []pokeapi.EvolutionDetail{d}
	}
	return l
}
