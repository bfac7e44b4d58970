package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/chromatic/pkg/errors"
)

func TestEdgeEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b Edge
		want bool
	}{
		{"same direction", NewEdge(1, 2), NewEdge(1, 2), true},
		{"reversed", NewEdge(1, 2), NewEdge(2, 1), true},
		{"weight ignored", Edge{Source: 1, Target: 2, Weight: 5}, NewEdge(2, 1), true},
		{"different pair", NewEdge(1, 2), NewEdge(1, 3), false},
		{"shared endpoint only", NewEdge(1, 2), NewEdge(2, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a), "equality must be symmetric")
		})
	}
}

func TestEdgeConnects(t *testing.T) {
	e := NewEdge(3, 7)

	assert.True(t, e.Connects(3))
	assert.True(t, e.Connects(7))
	assert.False(t, e.Connects(5))

	assert.True(t, e.ConnectsPair(3, 7))
	assert.True(t, e.ConnectsPair(7, 3))
	assert.False(t, e.ConnectsPair(3, 3))
	assert.False(t, e.ConnectsPair(3, 5))

	other, ok := e.Other(3)
	assert.True(t, ok)
	assert.Equal(t, 7, other)
	_, ok = e.Other(4)
	assert.False(t, ok)

	assert.Equal(t, DefaultWeight, e.Weight)
}

func TestVertexEquality(t *testing.T) {
	a := Vertex{ID: 1, X: 0.1, Y: 0.2, Label: "a"}
	b := Vertex{ID: 1, X: 0.9, Y: 0.9, Label: "b"}
	c := Vertex{ID: 2, X: 0.1, Y: 0.2, Label: "a"}

	assert.True(t, a.Equal(b), "identity is the ID")
	assert.False(t, a.Equal(c))
}

func TestAddVertex(t *testing.T) {
	g := New()
	require.True(t, g.IsEmpty())

	require.True(t, g.AddVertex(NewVertex(7, 0.5, 0.5)))
	require.False(t, g.AddVertex(Vertex{ID: 7, Label: "dup"}), "duplicate ID is a no-op")
	assert.Equal(t, 1, g.VertexCount())

	v, ok := g.Vertex(7)
	require.True(t, ok)
	assert.Empty(t, v.Label, "duplicate insertion must not overwrite the first vertex")
	assert.False(t, g.IsEmpty())

	_, ok = g.Vertex(8)
	assert.False(t, ok)
}

func TestAddVertexAt(t *testing.T) {
	g := New()
	for i := 0; i < 3; i++ {
		id, ok := g.AddVertexAt(float64(i), 0)
		require.True(t, ok)
		assert.Equal(t, i, id)
	}

	v, ok := g.Vertex(2)
	require.True(t, ok)
	assert.Equal(t, 2.0, v.X)

	t.Run("guarded against explicit IDs", func(t *testing.T) {
		g := New()
		g.AddVertex(NewVertex(1, 0, 0))

		id, ok := g.AddVertexAt(0.5, 0.5)
		assert.Equal(t, 1, id)
		assert.False(t, ok)
		assert.Equal(t, 1, g.VertexCount())
	})
}

func TestVerticesKeepInsertionOrder(t *testing.T) {
	g := New()
	for _, id := range []int{5, 2, 9, 0} {
		g.AddVertex(NewVertex(id, 0, 0))
	}

	var ids []int
	for _, v := range g.Vertices() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []int{5, 2, 9, 0}, ids)
}

func TestVertexSetters(t *testing.T) {
	g := New()
	g.AddVertex(NewVertex(0, 0, 0))

	require.NoError(t, g.SetVertexPosition(0, 0.25, 0.75))
	require.NoError(t, g.SetVertexLabel(0, "hub"))

	v, _ := g.Vertex(0)
	assert.Equal(t, 0.25, v.X)
	assert.Equal(t, 0.75, v.Y)
	assert.Equal(t, "hub", v.Label)

	assert.True(t, errors.Is(g.SetVertexPosition(1, 0, 0), errors.ErrCodeNotFound))
	assert.True(t, errors.Is(g.SetVertexLabel(1, "x"), errors.ErrCodeNotFound))
}

func TestAddEdge(t *testing.T) {
	g := New()
	for i := 0; i < 3; i++ {
		g.AddVertexAt(0, 0)
	}

	require.NoError(t, g.Connect(0, 1))
	require.NoError(t, g.AddEdge(Edge{Source: 1, Target: 2, Weight: 2.5}))
	assert.Equal(t, 2, g.EdgeCount())

	t.Run("duplicate in either direction", func(t *testing.T) {
		require.NoError(t, g.Connect(0, 1))
		require.NoError(t, g.Connect(1, 0))
		assert.Equal(t, 2, g.EdgeCount())
	})

	t.Run("lookup", func(t *testing.T) {
		e, ok := g.Edge(2, 1)
		require.True(t, ok)
		assert.Equal(t, 2.5, e.Weight)

		_, ok = g.Edge(0, 2)
		assert.False(t, ok)
	})
}

func TestAddEdgeInvalidReference(t *testing.T) {
	g := New()
	g.AddVertexAt(0, 0)
	g.AddVertexAt(1, 1)
	require.NoError(t, g.Connect(0, 1))

	tests := []struct {
		name string
		edge Edge
	}{
		{"unknown target", NewEdge(0, 5)},
		{"unknown source", NewEdge(5, 1)},
		{"both unknown", NewEdge(8, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.AddEdge(tt.edge)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidReference), "got %v", err)
			assert.Equal(t, 2, g.VertexCount())
			assert.Equal(t, 1, g.EdgeCount())
		})
	}
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := New()
	g.AddVertexAt(0, 0)

	err := g.Connect(0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidEdge))
	assert.Zero(t, g.EdgeCount())
}

func TestAdjacentIDs(t *testing.T) {
	g := New()
	for i := 0; i < 4; i++ {
		g.AddVertexAt(0, 0)
	}
	require.NoError(t, g.Connect(2, 0))
	require.NoError(t, g.Connect(0, 1))
	require.NoError(t, g.Connect(3, 0))
	require.NoError(t, g.Connect(1, 2))

	assert.Equal(t, []int{2, 1, 3}, g.AdjacentIDs(0), "edge insertion order")
	assert.Equal(t, []int{0, 2}, g.AdjacentIDs(1))
	assert.Empty(t, g.AdjacentIDs(42))

	assert.Equal(t, 3, g.Degree(0))
	assert.Equal(t, 1, g.Degree(3))
	assert.Equal(t, 3, g.MaxDegree())
}

func TestSetVertexColor(t *testing.T) {
	g := New()
	g.AddVertexAt(0, 0)
	g.AddVertexAt(1, 0)

	require.NoError(t, g.SetVertexColor(0, 4))
	assert.Equal(t, 4, g.VertexColor(0))
	assert.Equal(t, NoColor, g.VertexColor(1), "uncolored")
	assert.Equal(t, NoColor, g.VertexColor(99), "unknown")

	err := g.SetVertexColor(99, 1)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))
	assert.Len(t, g.Colors(), 1, "failed call must not mutate")

	require.NoError(t, g.SetVertexColor(0, 1), "overwrite")
	assert.Equal(t, 1, g.VertexColor(0))
}

func TestIsValidColoring(t *testing.T) {
	build := func() *Graph {
		g := New()
		for i := 0; i < 3; i++ {
			g.AddVertexAt(0, 0)
		}
		_ = g.Connect(0, 1)
		_ = g.Connect(1, 2)
		return g
	}

	tests := []struct {
		name   string
		colors map[int]int
		want   bool
	}{
		{"proper", map[int]int{0: 0, 1: 1, 2: 0}, true},
		{"conflict", map[int]int{0: 0, 1: 0, 2: 1}, false},
		{"partial", map[int]int{0: 0, 1: 1}, false},
		{"uncolored", map[int]int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build()
			for id, c := range tt.colors {
				require.NoError(t, g.SetVertexColor(id, c))
			}
			assert.Equal(t, tt.want, g.IsValidColoring())
		})
	}

	t.Run("no edges", func(t *testing.T) {
		g := New()
		g.AddVertexAt(0, 0)
		assert.True(t, g.IsValidColoring())
	})
}

func TestNumColors(t *testing.T) {
	g := New()
	for i := 0; i < 3; i++ {
		g.AddVertexAt(0, 0)
	}
	assert.Zero(t, g.NumColors())

	require.NoError(t, g.SetVertexColor(0, 0))
	assert.Equal(t, 1, g.NumColors())

	require.NoError(t, g.SetVertexColor(1, 4))
	assert.Equal(t, 5, g.NumColors(), "max color + 1, not distinct count")
}

func TestClear(t *testing.T) {
	g := New()
	g.AddVertexAt(0, 0)
	g.AddVertexAt(1, 1)
	require.NoError(t, g.Connect(0, 1))
	require.NoError(t, g.SetVertexColor(0, 0))

	g.Clear()

	assert.True(t, g.IsEmpty())
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Zero(t, g.NumColors())
	assert.False(t, g.HasVertex(0))

	id, ok := g.AddVertexAt(0, 0)
	assert.True(t, ok)
	assert.Zero(t, id)
}

func TestAccessorsReturnCopies(t *testing.T) {
	g := New()
	g.AddVertexAt(0, 0)
	g.AddVertexAt(1, 1)
	require.NoError(t, g.Connect(0, 1))
	require.NoError(t, g.SetVertexColor(0, 2))

	edges := g.Edges()
	edges[0].Target = 9
	e, _ := g.Edge(0, 1)
	assert.Equal(t, 1, e.Target)

	colors := g.Colors()
	colors[0] = 7
	assert.Equal(t, 2, g.VertexColor(0))

	vs := g.Vertices()
	vs[0] = nil
	assert.NotNil(t, g.Vertices()[0])
}
