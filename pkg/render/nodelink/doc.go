// Package nodelink renders colored graphs as node-link diagrams with Graphviz.
//
// # Usage
//
// Convert a colored graph to DOT, then render it:
//
//	g, _ := samples.Build("petersen")
//	g.ColorGraph(graph.Exact)
//	dot := nodelink.ToDOT(g, nodelink.Options{Width: 800, Height: 800})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.Render(ctx, dot, nodelink.FormatPNG, "neato")
//
// # DOT Output
//
// [ToDOT] emits an undirected graph. Vertices are fixed-size filled circles
// pinned at their positions (pos="x,y!"), so the neato and fdp engines keep
// the sample geometry; circo and dot ignore pins and lay the graph out
// themselves. Labels are the vertex label, or its ID when unlabeled.
//
// # Dependencies
//
// Rendering runs in-process through [github.com/goccy/go-graphviz]; no
// Graphviz installation is needed.
package nodelink
