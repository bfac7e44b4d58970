package graph

import (
	"cmp"
	"context"
	"slices"
)

// GreedyStrategy is sequential greedy coloring in vertex insertion order.
// It uses at most maxDegree+1 colors and is not optimal in general.
type GreedyStrategy struct{}

// Name implements Strategy.
func (GreedyStrategy) Name() string { return Greedy.String() }

// Color implements Strategy.
func (GreedyStrategy) Color(_ context.Context, g *Graph) (map[int]int, error) {
	return greedyAssign(g, g.vertices), nil
}

// DegreeStrategy is greedy coloring over vertices sorted by degree,
// largest first. Ties keep insertion order.
type DegreeStrategy struct{}

// Name implements Strategy.
func (DegreeStrategy) Name() string { return SmallestFirst.String() }

// Color implements Strategy.
func (DegreeStrategy) Color(_ context.Context, g *Graph) (map[int]int, error) {
	return greedyAssign(g, DegreeOrder(g)), nil
}

// DegreeOrder returns the vertices of g sorted by degree, descending.
// Degrees count adjacency entries as returned by [Graph.AdjacentIDs].
func DegreeOrder(g *Graph) []*Vertex {
	deg := make(map[int]int, len(g.vertices))
	for _, v := range g.vertices {
		deg[v.ID] = len(g.AdjacentIDs(v.ID))
	}
	order := slices.Clone(g.vertices)
	slices.SortStableFunc(order, func(a, b *Vertex) int {
		return cmp.Compare(deg[b.ID], deg[a.ID])
	})
	return order
}

// greedyAssign gives each vertex of order the smallest color not held by an
// already-colored neighbor. The used-color indicator is sized to the vertex
// count since no greedy pass needs more colors than vertices.
func greedyAssign(g *Graph, order []*Vertex) map[int]int {
	n := len(g.vertices)
	colors := make(map[int]int, n)
	used := make([]bool, n)

	for _, v := range order {
		clear(used)
		for _, adj := range g.AdjacentIDs(v.ID) {
			if c, ok := colors[adj]; ok && c < n {
				used[c] = true
			}
		}
		c := 0
		for c < n && used[c] {
			c++
		}
		colors[v.ID] = c
	}
	return colors
}
