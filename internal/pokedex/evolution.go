package pokedex

import (
	"github.com/hession/pokemate/internal/pokeapi"
)

// MaxEvolutionDepth bounds the evolution tree. Real chains are at most
// four levels deep.
const MaxEvolutionDepth = 8

// EvolutionNode is one species in an evolution tree.
type EvolutionNode struct {
	SpeciesName string          `json:"species_name"`
	MinLevel    *int            `json:"min_level"`
	Trigger     *string         `json:"trigger"`
	Children    []EvolutionNode `json:"children"`
}

// EvolutionChainResult is the payload of get_pokemon_evolution_chain.
type EvolutionChainResult struct {
	Pokemon        string        `json:"pokemon"`
	EvolutionChain EvolutionNode `json:"evolution_chain"`
}

// BuildEvolutionTree rebuilds the nested upstream chain depth-first.
//
// A link may list several alternative evolution conditions; only the first
// one supplies min_level and trigger. Children are always kept, in
// upstream order. A tree deeper than MaxEvolutionDepth, or one where a
// species repeats along a branch, is rejected as malformed.
func BuildEvolutionTree(root *pokeapi.ChainLink) (EvolutionNode, error) {
	if root == nil {
		return EvolutionNode{}, Malformed("evolution chain", "missing chain")
	}
	b := &treeBuilder{onPath: make(map[string]bool)}
	return b.build(root, 0)
}

type treeBuilder struct {
	onPath map[string]bool
}

func (b *treeBuilder) build(link *pokeapi.ChainLink, depth int) (EvolutionNode, error) {
	if depth >= MaxEvolutionDepth {
		return EvolutionNode{}, Malformed("evolution chain", "chain deeper than %d levels", MaxEvolutionDepth)
	}
	if link.Species == nil || link.Species.Name == "" {
		return EvolutionNode{}, Malformed("evolution chain", "link without species")
	}

	name := link.Species.Name
	if b.onPath[name] {
		return EvolutionNode{}, Malformed("evolution chain", "species %q evolves into itself", name)
	}
	b.onPath[name] = true
	defer delete(b.onPath, name)

	node := EvolutionNode{
		SpeciesName: name,
		Children:    make([]EvolutionNode, 0, len(link.EvolvesTo)),
	}

	if len(link.EvolutionDetails) > 0 {
		first := link.EvolutionDetails[0]
		if first.MinLevel != nil && *first.MinLevel > 0 {
			level := *first.MinLevel
			node.MinLevel = &level
		}
		if first.Trigger != nil && first.Trigger.Name != "" {
			trigger := first.Trigger.Name
			node.Trigger = &trigger
		}
	}

	for i := range link.EvolvesTo {
		child, err := b.build(&link.EvolvesTo[i], depth+1)
		if err != nil {
			return EvolutionNode{}, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}
