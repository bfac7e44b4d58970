// Package render holds what every chromatic renderer shares: the vertex
// [Palette] and the mapping from normalized vertex coordinates to a pixel
// frame.
//
// # Palette
//
// Colors are indexed by the integer a coloring assigns. [DefaultPalette] has
// ten entries; any color outside the palette, and [graph.NoColor], is drawn
// with the last entry:
//
//	p := render.DefaultPalette()
//	p.Color(0)  // "#FF0000"
//	p.Color(-1) // "#008000"
//
// # Frame
//
// [Frame] maps a vertex at (x, y) in [0, 1] to pixel space, inset by the
// vertex radius so discs never leave the frame. Y grows downward, like a
// screen.
//
// # Renderers
//
// The [nodelink] subpackage emits Graphviz DOT and renders it to SVG or PNG.
// The CLI's terminal viewer uses the same palette and frame.
//
// [graph.NoColor]: github.com/matzehuels/chromatic/pkg/graph#NoColor
// [nodelink]: github.com/matzehuels/chromatic/pkg/render/nodelink
package render
