package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/chromatic/pkg/errors"
)

// Algorithm selects one of the built-in coloring strategies.
// The zero value is Greedy.
type Algorithm int

const (
	// Greedy colors vertices in insertion order with the smallest free color.
	Greedy Algorithm = iota
	// SmallestFirst runs the greedy pass over vertices sorted by degree,
	// largest first. The name is kept for compatibility with the "sf" option;
	// the ordering is descending degree.
	SmallestFirst
	// Exact finds a coloring with the minimum number of colors.
	// Its running time is exponential in the vertex count.
	Exact
)

// String returns the short name used on the command line.
func (a Algorithm) String() string {
	switch a {
	case Greedy:
		return "greedy"
	case SmallestFirst:
		return "sf"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm { return []Algorithm{Greedy, SmallestFirst, Exact} }

// ParseAlgorithm maps a name to an Algorithm. Accepted names are "greedy",
// "sf" (or "smallest-first") and "exact", case-insensitively. An empty name
// selects Greedy.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "greedy":
		return Greedy, nil
	case "sf", "smallest-first":
		return SmallestFirst, nil
	case "exact":
		return Exact, nil
	}
	return Greedy, errors.New(errors.ErrCodeInvalidAlgorithm, "invalid algorithm %q (want greedy, sf or exact)", s)
}

// Strategy computes a complete color assignment for a graph.
//
// Color must not mutate g. The returned map holds one entry per vertex,
// keyed by vertex ID. Implementations that can run long should watch ctx
// and return an error once it is done.
type Strategy interface {
	Name() string
	Color(ctx context.Context, g *Graph) (map[int]int, error)
}

// Select returns the strategy implementing a. Unknown values select Greedy.
func Select(a Algorithm) Strategy {
	switch a {
	case SmallestFirst:
		return DegreeStrategy{}
	case Exact:
		return ExactStrategy{}
	default:
		return GreedyStrategy{}
	}
}

// ColorGraph replaces the current coloring with the one computed by alg.
// It never fails: without a deadline even the exact search runs to
// completion. An empty graph is left uncolored.
func (g *Graph) ColorGraph(alg Algorithm) {
	_ = g.ColorGraphContext(context.Background(), alg)
}

// ColorGraphContext is ColorGraph with cancellation. If ctx is done before
// the strategy finishes, the error is returned and the graph is left
// uncolored.
func (g *Graph) ColorGraphContext(ctx context.Context, alg Algorithm) error {
	return g.ColorWith(ctx, Select(alg))
}

// ColorWith clears the current coloring and applies the assignment computed
// by s. Entries for IDs that are not vertices of g are rejected with an
// ErrCodeInvalidReference error.
func (g *Graph) ColorWith(ctx context.Context, s Strategy) error {
	g.ClearColors()
	if g.IsEmpty() {
		return nil
	}

	assignment, err := s.Color(ctx, g)
	if err != nil {
		return err
	}
	for id := range assignment {
		if !g.HasVertex(id) {
			return errors.New(errors.ErrCodeInvalidReference, "%s coloring: vertex %d does not exist", s.Name(), id)
		}
	}
	for id, c := range assignment {
		g.colors[id] = c
	}
	return nil
}
