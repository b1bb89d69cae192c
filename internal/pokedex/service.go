package pokedex

import (
	"context"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/hession/pokemate/internal/pokeapi"
)

const (
	// DefaultRosterWorkers is the default width of the roster fan-out.
	DefaultRosterWorkers = 5
	// DefaultMaxRandomID is the highest id get_random_pokemon picks.
	DefaultMaxRandomID = 1010
)

// Fetcher performs single upstream lookups. *pokeapi.Client implements it.
type Fetcher interface {
	Pokemon(ctx context.Context, nameOrID string) (*pokeapi.Pokemon, error)
	Species(ctx context.Context, name string) (*pokeapi.Species, error)
	EvolutionChain(ctx context.Context, url string) (*pokeapi.EvolutionChain, error)
	Type(ctx context.Context, name string) (*pokeapi.Type, error)
}

// RandomSource picks an integer in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// Service implements the six pokedex operations. It holds no state
// between calls.
type Service struct {
	fetcher     Fetcher
	workers     int
	random      RandomSource
	maxRandomID int
}

// Option configures a Service.
type Option func(*Service)

// WithRosterWorkers sets how many roster lookups may be in flight.
func WithRosterWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithRandomSource replaces the random source used by RandomPokemon.
func WithRandomSource(r RandomSource) Option {
	return func(s *Service) {
		if r != nil {
			s.random = r
		}
	}
}

// WithMaxRandomID sets the upper bound of RandomPokemon.
func WithMaxRandomID(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxRandomID = n
		}
	}
}

// NewService creates a Service on top of a Fetcher.
func NewService(fetcher Fetcher, opts ...Option) *Service {
	s := &Service{
		fetcher:     fetcher,
		workers:     DefaultRosterWorkers,
		random:      globalRandom{},
		maxRandomID: DefaultMaxRandomID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PokemonInfo fetches and normalizes one creature.
func (s *Service) PokemonInfo(ctx context.Context, nameOrID string) (PokemonRecord, error) {
	ident := pokeapi.NormalizeIdentifier(nameOrID)
	if ident == "" {
		return PokemonRecord{}, InvalidArgument("name_or_id is required")
	}

	raw, err := s.fetcher.Pokemon(ctx, ident)
	if err != nil {
		return PokemonRecord{}, classify(err)
	}
	return NormalizePokemon(raw)
}

// RandomPokemon returns the record of a uniformly chosen id in
// [1, maxRandomID].
func (s *Service) RandomPokemon(ctx context.Context) (PokemonRecord, error) {
	id := 1 + s.random.IntN(s.maxRandomID)
	return s.PokemonInfo(ctx, strconv.Itoa(id))
}

// EvolutionChain resolves a species and builds its evolution tree. It
// makes exactly two upstream calls.
func (s *Service) EvolutionChain(ctx context.Context, name string) (EvolutionChainResult, error) {
	ident := pokeapi.NormalizeIdentifier(name)
	if ident == "" {
		return EvolutionChainResult{}, InvalidArgument("name is required")
	}

	species, err := s.fetcher.Species(ctx, ident)
	if err != nil {
		return EvolutionChainResult{}, classify(err)
	}
	if species.EvolutionChain == nil || strings.TrimSpace(species.EvolutionChain.URL) == "" {
		return EvolutionChainResult{}, Malformed("species", "missing evolution_chain url")
	}

	chain, err := s.fetcher.EvolutionChain(ctx, species.EvolutionChain.URL)
	if err != nil {
		return EvolutionChainResult{}, classify(err)
	}

	tree, err := BuildEvolutionTree(chain.Chain)
	if err != nil {
		return EvolutionChainResult{}, err
	}

	display := species.Name
	if display == "" {
		display = ident
	}
	return EvolutionChainResult{
		Pokemon:        DisplayCase(display),
		EvolutionChain: tree,
	}, nil
}

// CompareStats normalizes both creatures, first a then b, and compares
// them. The first failure is returned as is.
func (s *Service) CompareStats(ctx context.Context, a, b string) (ComparisonResult, error) {
	first, err := s.PokemonInfo(ctx, a)
	if err != nil {
		return ComparisonResult{}, err
	}
	second, err := s.PokemonInfo(ctx, b)
	if err != nil {
		return ComparisonResult{}, err
	}
	return Compare(first, second), nil
}

// Moves lists the first limit moves of a creature.
func (s *Service) Moves(ctx context.Context, name string, limit int) (MoveList, error) {
	ident := pokeapi.NormalizeIdentifier(name)
	if ident == "" {
		return MoveList{}, InvalidArgument("name is required")
	}
	if limit < 0 {
		return MoveList{}, InvalidArgument("limit cannot be negative, got %d", limit)
	}

	raw, err := s.fetcher.Pokemon(ctx, ident)
	if err != nil {
		return MoveList{}, classify(err)
	}
	return ListMoves(raw, limit)
}
