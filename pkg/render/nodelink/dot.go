package nodelink

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/chromatic/pkg/buildinfo"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/render"
)

// pointsPerInch converts pixel positions to the inches neato expects in pos.
const pointsPerInch = 72.0

const (
	DefaultWidth  = 800
	DefaultHeight = 800
)

// Options configures DOT generation.
type Options struct {
	Width   int // Frame width in pixels
	Height  int // Frame height in pixels
	Palette render.Palette
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if len(o.Palette) == 0 {
		o.Palette = render.DefaultPalette()
	}
	return o
}

// ToDOT converts a colored graph to an undirected Graphviz graph.
//
// Each vertex is a filled disc pinned at its normalized position scaled into
// the frame, so layouts that honor pinning (neato, fdp) reproduce the
// sample's geometry. Fill colors come from the palette; uncolored vertices
// use its last entry. Edges are drawn first, vertices on top.
func ToDOT(g *graph.Graph, opts Options) string {
	opts = opts.withDefaults()
	frame := render.NewFrame(float64(opts.Width), float64(opts.Height))
	diameter := 2 * frame.Radius / pointsPerInch

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  comment=%q;\n", buildinfo.UserAgent())
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	buf.WriteString("  splines=false;\n")
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fixedsize=true, width=%s, color=black, penwidth=1.5, fontname=\"Helvetica\", fontsize=11];\n", ftoa(diameter))
	buf.WriteString("  edge [color=black, penwidth=2.5];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		c := g.VertexColor(v.ID)
		x, y := frame.ProjectUp(v.X, v.Y)
		fmt.Fprintf(&buf, "  %d [label=%q, pos=\"%s,%s!\", fillcolor=%q, fontcolor=%q];\n",
			v.ID, label(v), ftoa(x/pointsPerInch), ftoa(y/pointsPerInch),
			opts.Palette.Color(c), opts.Palette.TextColor(c))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e.Source, e.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func label(v *graph.Vertex) string {
	if v.Label != "" {
		return v.Label
	}
	return strconv.Itoa(v.ID)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
