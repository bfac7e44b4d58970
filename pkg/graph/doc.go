// Package graph provides an undirected graph model and proper vertex coloring.
//
// # Overview
//
// A proper coloring assigns an integer color to every vertex so that no edge
// joins two vertices of the same color. [Graph] owns the vertices, the edges
// and the current assignment; callers build it, run one of the coloring
// algorithms, and read colors back.
//
// # Basic Usage
//
//	g := graph.New()
//	for i := 0; i < 5; i++ {
//	    g.AddVertexAt(float64(i)/4, 0.5) // IDs 0..4
//	}
//	for i := 0; i < 5; i++ {
//	    _ = g.Connect(i, (i+1)%5)
//	}
//	g.ColorGraph(graph.Exact)
//	g.NumColors()       // 3
//	g.IsValidColoring() // true
//
// # Algorithms
//
// Three strategies are available through [Select] and the [Algorithm]
// enumeration:
//
//   - [Greedy]: insertion order, smallest free color. At most maxDegree+1
//     colors.
//   - [SmallestFirst]: the same greedy pass over vertices sorted by degree,
//     largest first (the historical name is kept).
//   - [Exact]: binary search over the color budget with backtracking probes.
//     Always optimal, exponential in the worst case.
//
// Custom strategies implement [Strategy] and run through [Graph.ColorWith].
//
// # Structural Rules
//
// Vertex IDs are unique; inserting a duplicate ID is a silent no-op. Edges
// must reference existing vertices ([errors.ErrCodeInvalidReference]), may
// not be self-loops ([errors.ErrCodeInvalidEdge]), and are deduplicated
// under symmetric equality. Setting the color of an unknown vertex fails with
// [errors.ErrCodeNotFound].
//
// # Concurrency
//
// A Graph has a single owner. It is not safe for concurrent mutation, and a
// coloring run must not overlap with mutation from another goroutine.
package graph
