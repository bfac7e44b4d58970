// Package samples builds the demonstration graphs used by the chromatic CLI.
//
// Every constructor adds vertices through [graph.Graph.AddVertexAt], so IDs
// are dense from 0 in construction order, and places them at normalized
// coordinates in [0, 1] suitable for the renderers. Edges are emitted in a
// fixed order, which keeps greedy colorings reproducible.
//
// Named shapes are looked up with [Build]:
//
//	g, err := samples.Build("petersen")
//	g.ColorGraph(graph.Exact) // 3 colors
package samples

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
)

// Constructor adds a shape to g.
type Constructor func(g *graph.Graph) error

// Sample is a named demonstration graph.
type Sample struct {
	Name        string
	Description string
	Chromatic   int // Known chromatic number
	Build       Constructor
}

const (
	center       = 0.5
	circleRadius = 0.35
)

var registry = []Sample{
	{"complete", "complete graph K5, every pair adjacent", 5, Complete(5)},
	{"cycle", "even cycle C8", 2, Cycle(8)},
	{"odd-cycle", "odd cycle C5", 3, Cycle(5)},
	{"grid", "4x4 grid, bipartite", 2, Grid(4, 4)},
	{"star", "star with one hub and 10 leaves", 2, Star(10)},
	{"petersen", "Petersen graph, 10 vertices, 3-regular", 3, Petersen()},
}

// All returns the registered samples in display order.
func All() []Sample { return slices.Clone(registry) }

// Names returns the registered sample names in display order.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the sample registered under name.
func Lookup(name string) (Sample, error) {
	if err := errors.ValidateSampleName(name); err != nil {
		return Sample{}, err
	}
	i := slices.IndexFunc(registry, func(s Sample) bool { return s.Name == name })
	if i < 0 {
		return Sample{}, errors.New(errors.ErrCodeInvalidSample, "unknown sample %q (available: %v)", name, Names())
	}
	return registry[i], nil
}

// Build constructs a fresh graph for the named sample.
func Build(name string) (*graph.Graph, error) {
	s, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.New()
}

// New constructs a fresh graph for s.
func (s Sample) New() (*graph.Graph, error) {
	g := graph.New()
	if err := s.Build(g); err != nil {
		return nil, fmt.Errorf("build %s: %w", s.Name, err)
	}
	return g, nil
}

// Random picks one registered sample uniformly with rng.
func Random(rng *rand.Rand) Sample {
	return registry[rng.Intn(len(registry))]
}

// =============================================================================
// Constructors
// =============================================================================

// Complete returns a Constructor for K_n laid out on a circle.
func Complete(n int) Constructor {
	return func(g *graph.Graph) error {
		if n < 1 {
			return tooSmall("complete", "n", n, 1)
		}
		base := ring(g, n, circleRadius, 0)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.Connect(base+i, base+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Cycle returns a Constructor for the cycle C_n laid out on a circle.
func Cycle(n int) Constructor {
	return func(g *graph.Graph) error {
		if n < 3 {
			return tooSmall("cycle", "n", n, 3)
		}
		base := ring(g, n, circleRadius, 0)
		for i := 0; i < n; i++ {
			if err := g.Connect(base+i, base+(i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}

// Grid returns a Constructor for a rows x cols grid, connecting each vertex
// to its right and lower neighbor.
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph) error {
		if rows < 1 || cols < 1 {
			return tooSmall("grid", "rows*cols", rows*cols, 1)
		}
		sx := 1.0 / float64(cols+1)
		sy := 1.0 / float64(rows+1)
		base := g.VertexCount()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertexAt(sx*float64(c+1), sy*float64(r+1))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := base + r*cols + c
				if c < cols-1 {
					if err := g.Connect(i, i+1); err != nil {
						return err
					}
				}
				if r < rows-1 {
					if err := g.Connect(i, i+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// Star returns a Constructor for a hub joined to n leaves. The hub is added
// first.
func Star(n int) Constructor {
	return func(g *graph.Graph) error {
		if n < 1 {
			return tooSmall("star", "leaves", n, 1)
		}
		hub, _ := g.AddVertexAt(center, center)
		base := ring(g, n, 0.4, 0)
		for i := 0; i < n; i++ {
			if err := g.Connect(hub, base+i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Petersen returns a Constructor for the Petersen graph: an outer pentagon,
// an inner pentagram, and spokes between them.
func Petersen() Constructor {
	return func(g *graph.Graph) error {
		outer := ring(g, 5, 0.4, 0)
		inner := ring(g, 5, 0.2, math.Pi/5)
		for i := 0; i < 5; i++ {
			if err := g.Connect(outer+i, outer+(i+1)%5); err != nil {
				return err
			}
		}
		for i := 0; i < 5; i++ {
			if err := g.Connect(outer+i, inner+i); err != nil {
				return err
			}
		}
		for i := 0; i < 5; i++ {
			if err := g.Connect(inner+i, inner+(i+2)%5); err != nil {
				return err
			}
		}
		return nil
	}
}

// ring adds n vertices evenly spaced on a circle around the center and
// returns the ID of the first one.
func ring(g *graph.Graph, n int, radius, offset float64) int {
	base := g.VertexCount()
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) + offset
		g.AddVertexAt(center+radius*math.Cos(angle), center+radius*math.Sin(angle))
	}
	return base
}

func tooSmall(shape, param string, got, least int) error {
	return errors.New(errors.ErrCodeInvalidInput, "%s: %s=%d < min=%d", shape, param, got, least)
}
