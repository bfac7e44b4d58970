package graph_test

import (
	"fmt"

	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
)

func ExampleGraph_ColorGraph() {
	// An odd cycle needs three colors.
	g := graph.New()
	for i := 0; i < 5; i++ {
		g.AddVertexAt(float64(i)/4, 0.5)
	}
	for i := 0; i < 5; i++ {
		_ = g.Connect(i, (i+1)%5)
	}

	g.ColorGraph(graph.Exact)

	fmt.Println("colors:", g.NumColors())
	fmt.Println("valid:", g.IsValidColoring())
	for _, v := range g.Vertices() {
		fmt.Printf("vertex %d: color %d\n", v.ID, g.VertexColor(v.ID))
	}
	// Output:
	// colors: 3
	// valid: true
	// vertex 0: color 0
	// vertex 1: color 1
	// vertex 2: color 0
	// vertex 3: color 1
	// vertex 4: color 2
}

func ExampleGraph_AddEdge() {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: 1, Label: "a"})
	g.AddVertex(graph.Vertex{ID: 2, Label: "b"})

	err := g.AddEdge(graph.NewEdge(1, 3))
	fmt.Println(errors.GetCode(err))
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// INVALID_REFERENCE
	// edges: 0
}

func ExampleSelect() {
	g := graph.New()
	for i := 0; i < 4; i++ {
		g.AddVertexAt(0, 0)
	}
	_ = g.Connect(0, 1)
	_ = g.Connect(0, 2)
	_ = g.Connect(0, 3)

	for _, alg := range graph.Algorithms() {
		g.ColorGraph(alg)
		fmt.Printf("%s: %d colors\n", graph.Select(alg).Name(), g.NumColors())
	}
	// Output:
	// greedy: 2 colors
	// sf: 2 colors
	// exact: 2 colors
}
