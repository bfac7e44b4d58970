package graph

// DefaultWeight is the weight of edges created with [NewEdge] and [Graph.Connect].
const DefaultWeight = 1.0

// Edge is an undirected connection between two vertex IDs.
// Source and Target are interchangeable: Edge{1, 2} and Edge{2, 1} are equal.
// Weight is carried for callers but ignored by every coloring algorithm.
type Edge struct {
	Source int
	Target int
	Weight float64
}

// NewEdge returns a unit-weight edge between a and b.
func NewEdge(a, b int) Edge {
	return Edge{Source: a, Target: b, Weight: DefaultWeight}
}

// Equal reports whether e and o join the same unordered pair of vertices.
func (e Edge) Equal(o Edge) bool { return e.ConnectsPair(o.Source, o.Target) }

// Connects reports whether id is either endpoint of e.
func (e Edge) Connects(id int) bool { return e.Source == id || e.Target == id }

// ConnectsPair reports whether e joins exactly the unordered pair {a, b}.
func (e Edge) ConnectsPair(a, b int) bool {
	return (e.Source == a && e.Target == b) || (e.Source == b && e.Target == a)
}

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge) IsLoop() bool { return e.Source == e.Target }

// Other returns the endpoint of e opposite to id, and false when id is not
// an endpoint.
func (e Edge) Other(id int) (int, bool) {
	switch id {
	case e.Source:
		return e.Target, true
	case e.Target:
		return e.Source, true
	}
	return 0, false
}
