package graph

// Vertex is an identified point with normalized 2-D coordinates and a label.
// Coordinates are advisory: no coloring algorithm reads them, they only
// position the vertex for renderers.
//
// A Vertex's color is not stored on the Vertex; it lives in the owning
// [Graph] and is read with [Graph.VertexColor].
type Vertex struct {
	ID    int     // Unique within a Graph
	X, Y  float64 // Normalized logical position, no enforced range
	Label string  // Display label (defaults to the ID when empty)
}

// NewVertex returns a vertex with the given id and position and no label.
func NewVertex(id int, x, y float64) Vertex {
	return Vertex{ID: id, X: x, Y: y}
}

// Equal reports whether v and o have the same identity.
// Position and label do not take part in equality.
func (v Vertex) Equal(o Vertex) bool { return v.ID == o.ID }

// SetPosition moves the vertex.
func (v *Vertex) SetPosition(x, y float64) {
	v.X = x
	v.Y = y
}

// SetLabel replaces the display label.
func (v *Vertex) SetLabel(label string) { v.Label = label }
