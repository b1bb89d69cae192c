package pokedex

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hession/pokemate/internal/logger"
	"github.com/hession/pokemate/internal/pokeapi"
)

// TypeRosterEntry is the lightweight view of one roster member.
type TypeRosterEntry struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	SpriteURL *string `json:"sprite_url"`
}

// TypeRoster is the payload of search_pokemon_by_type.
type TypeRoster struct {
	Type    string            `json:"type"`
	Count   int               `json:"count"`
	Pokemon []TypeRosterEntry `json:"pokemon"`
}

// SearchByType lists up to limit creatures of a type, sorted by id.
//
// Only the type lookup can fail the call. Each of the first limit roster
// references is then resolved with one lookup on a pool of s.workers
// goroutines; references that fail to resolve are dropped.
func (s *Service) SearchByType(ctx context.Context, typeName string, limit int) (TypeRoster, error) {
	name := pokeapi.NormalizeIdentifier(typeName)
	if name == "" {
		return TypeRoster{}, InvalidArgument("type is required")
	}
	if limit < 0 {
		return TypeRoster{}, InvalidArgument("limit cannot be negative, got %d", limit)
	}

	raw, err := s.fetcher.Type(ctx, name)
	if err != nil {
		return TypeRoster{}, classify(err)
	}
	if raw.Pokemon == nil {
		return TypeRoster{}, Malformed("type", "missing pokemon list")
	}

	refs := raw.Pokemon
	if len(refs) > limit {
		refs = refs[:limit]
	}

	entries, err := s.resolveRoster(ctx, refs)
	if err != nil {
		return TypeRoster{}, err
	}

	return TypeRoster{
		Type:    DisplayCase(name),
		Count:   len(entries),
		Pokemon: entries,
	}, nil
}

func (s *Service) resolveRoster(ctx context.Context, refs []pokeapi.TypePokemon) ([]TypeRosterEntry, error) {
	// One slot per reference; the goroutines never share a slot.
	resolved := make([]*TypeRosterEntry, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, ref := range refs {
		g.Go(func() error {
			entry, err := s.resolveEntry(gctx, ref.Pokemon.Name)
			if err != nil {
				logger.Debug("roster: dropping %q: %v", ref.Pokemon.Name, err)
				return nil // a failed member never aborts its siblings
			}
			resolved[i] = &entry
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, UpstreamFault(err)
	}

	entries := make([]TypeRosterEntry, 0, len(refs))
	for _, e := range resolved {
		if e != nil {
			entries = append(entries, *e)
		}
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].ID < entries[b].ID
	})
	return entries, nil
}

func (s *Service) resolveEntry(ctx context.Context, name string) (TypeRosterEntry, error) {
	if pokeapi.NormalizeIdentifier(name) == "" {
		return TypeRosterEntry{}, Malformed("type", "roster reference without name")
	}
	raw, err := s.fetcher.Pokemon(ctx, name)
	if err != nil {
		return TypeRosterEntry{}, err
	}
	return summarize(raw)
}
