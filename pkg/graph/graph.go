package graph

import (
	"maps"
	"slices"

	"github.com/matzehuels/chromatic/pkg/errors"
)

// NoColor is returned by [Graph.VertexColor] for vertices without an
// assigned color, including IDs that are not in the graph.
const NoColor = -1

// Graph is an undirected simple graph that owns its vertices, its edges and
// the current color assignment.
//
// Vertices and edges keep their insertion order. The order is part of the
// contract: the greedy and exact algorithms visit vertices in it, so the same
// sequence of insertions always yields the same coloring.
//
// The zero value is not usable - use New to create a valid Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	vertices []*Vertex
	index    map[int]int // vertex ID -> position in vertices
	edges    []Edge
	colors   map[int]int // vertex ID -> color; absent means uncolored
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		index:  make(map[int]int),
		colors: make(map[int]int),
	}
}

// =============================================================================
// Vertices
// =============================================================================

// AddVertex appends v unless a vertex with the same ID already exists, in
// which case the call is a silent no-op. It reports whether v was inserted.
func (g *Graph) AddVertex(v Vertex) bool {
	if _, exists := g.index[v.ID]; exists {
		return false
	}
	g.index[v.ID] = len(g.vertices)
	g.vertices = append(g.vertices, &v)
	return true
}

// AddVertexAt appends a vertex at (x, y) whose ID is the current vertex
// count, so graphs built only through AddVertexAt have dense IDs 0..n-1.
// When that ID is already taken by an explicit insertion the call is a no-op
// and reports false.
func (g *Graph) AddVertexAt(x, y float64) (int, bool) {
	id := len(g.vertices)
	return id, g.AddVertex(NewVertex(id, x, y))
}

// Vertex returns the vertex with the given ID.
// The returned pointer stays owned by the graph; use it to read the vertex or
// to move and relabel it.
func (g *Graph) Vertex(id int) (*Vertex, bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return g.vertices[i], true
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.index[id]
	return ok
}

// Vertices returns the vertices in insertion order.
// The slice is a copy; the vertices it points to are not.
func (g *Graph) Vertices() []*Vertex { return slices.Clone(g.vertices) }

// SetVertexPosition moves a vertex. It returns an ErrCodeNotFound error for
// unknown IDs.
func (g *Graph) SetVertexPosition(id int, x, y float64) error {
	v, ok := g.Vertex(id)
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "set position: vertex %d does not exist", id)
	}
	v.SetPosition(x, y)
	return nil
}

// SetVertexLabel relabels a vertex. It returns an ErrCodeNotFound error for
// unknown IDs.
func (g *Graph) SetVertexLabel(id int, label string) error {
	v, ok := g.Vertex(id)
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "set label: vertex %d does not exist", id)
	}
	v.SetLabel(label)
	return nil
}

// =============================================================================
// Edges
// =============================================================================

// AddEdge appends e after checking that both endpoints exist.
//
// It returns an ErrCodeInvalidReference error if either endpoint is missing
// and an ErrCodeInvalidEdge error for self-loops, leaving the graph
// unchanged in both cases. Adding an edge equal to an existing one (in either
// direction) is a silent no-op.
func (g *Graph) AddEdge(e Edge) error {
	for _, id := range [2]int{e.Source, e.Target} {
		if !g.HasVertex(id) {
			return errors.New(errors.ErrCodeInvalidReference,
				"add edge %d-%d: vertex %d does not exist", e.Source, e.Target, id)
		}
	}
	if e.IsLoop() {
		return errors.New(errors.ErrCodeInvalidEdge, "add edge %d-%d: self-loops cannot be colored", e.Source, e.Target)
	}
	if slices.ContainsFunc(g.edges, e.Equal) {
		return nil
	}
	g.edges = append(g.edges, e)
	return nil
}

// Connect adds a unit-weight edge between a and b. See [Graph.AddEdge].
func (g *Graph) Connect(a, b int) error {
	return g.AddEdge(NewEdge(a, b))
}

// Edge returns the edge joining a and b in either direction.
func (g *Graph) Edge(a, b int) (*Edge, bool) {
	for i := range g.edges {
		if g.edges[i].ConnectsPair(a, b) {
			return &g.edges[i], true
		}
	}
	return nil, false
}

// Edges returns a copy of the edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// AdjacentIDs returns the neighbors of id in edge insertion order.
//
// Every incident edge contributes one entry and the result is not
// deduplicated. Since AddEdge rejects self-loops and duplicate pairs, each
// neighbor appears once in practice.
func (g *Graph) AdjacentIDs(id int) []int {
	var adj []int
	for _, e := range g.edges {
		if e.Source == id {
			adj = append(adj, e.Target)
		} else if e.Target == id {
			adj = append(adj, e.Source)
		}
	}
	return adj
}

// Degree returns the number of edge endpoints incident to id.
func (g *Graph) Degree(id int) int {
	n := 0
	for _, e := range g.edges {
		if e.Connects(id) {
			n++
		}
	}
	return n
}

// MaxDegree returns the largest vertex degree, or 0 for an edgeless graph.
func (g *Graph) MaxDegree() int {
	deg := make(map[int]int, len(g.vertices))
	best := 0
	for _, e := range g.edges {
		deg[e.Source]++
		deg[e.Target]++
		best = max(best, deg[e.Source], deg[e.Target])
	}
	return best
}

// =============================================================================
// Colors
// =============================================================================

// SetVertexColor assigns color to the vertex, overwriting any previous color.
// It returns an ErrCodeNotFound error for unknown IDs. The color is not
// range-checked.
func (g *Graph) SetVertexColor(id, color int) error {
	if !g.HasVertex(id) {
		return errors.New(errors.ErrCodeNotFound, "set color: vertex %d does not exist", id)
	}
	g.colors[id] = color
	return nil
}

// VertexColor returns the color of id, or NoColor when the vertex is
// uncolored or unknown.
func (g *Graph) VertexColor(id int) int {
	if c, ok := g.colors[id]; ok {
		return c
	}
	return NoColor
}

// Colors returns a copy of the current assignment (vertex ID -> color).
func (g *Graph) Colors() map[int]int { return maps.Clone(g.colors) }

// IsValidColoring reports whether every edge joins two colored vertices with
// different colors. Partial colorings are invalid; a graph without edges is
// trivially valid.
func (g *Graph) IsValidColoring() bool {
	for _, e := range g.edges {
		cs, okS := g.colors[e.Source]
		ct, okT := g.colors[e.Target]
		if !okS || !okT || cs == ct {
			return false
		}
	}
	return true
}

// NumColors returns 1 + the largest assigned color, or 0 when nothing is
// colored. Colors produced by the built-in algorithms are dense from 0, so
// this equals the number of distinct colors used.
func (g *Graph) NumColors() int {
	if len(g.colors) == 0 {
		return 0
	}
	return slices.Max(slices.Collect(maps.Values(g.colors))) + 1
}

// ClearColors removes every color assignment and keeps the structure.
func (g *Graph) ClearColors() { clear(g.colors) }

// =============================================================================
// Structure
// =============================================================================

// Clear removes all vertices, edges and colors.
func (g *Graph) Clear() {
	g.vertices = nil
	g.edges = nil
	clear(g.index)
	clear(g.colors)
}

// IsEmpty reports whether the graph has no vertices.
func (g *Graph) IsEmpty() bool { return len(g.vertices) == 0 }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
