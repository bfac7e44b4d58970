package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/render"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	g.AddVertexAt(0, 0)
	g.AddVertexAt(1, 0)
	g.AddVertexAt(0.5, 1)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		if err := g.Connect(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestToDOT_Basic(t *testing.T) {
	g := triangle(t)
	g.ColorGraph(graph.Greedy)

	dot := ToDOT(g, Options{})

	for _, want := range []string{
		"graph G {",
		`0 [label="0"`,
		`fillcolor="#FF0000"`,
		`fillcolor="#0000FF"`,
		`fillcolor="#00CC00"`,
		"0 -- 1;",
		"1 -- 2;",
		"2 -- 0;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q", want)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("ToDOT() should be undirected")
	}
}

func TestToDOT_PinnedPositions(t *testing.T) {
	g := triangle(t)

	dot := ToDOT(g, Options{Width: 720, Height: 720})

	// (0,0) is the top-left corner inset by the radius: 15px from the left,
	// 705px up from the bottom.
	if !strings.Contains(dot, `pos="0.208,9.792!"`) {
		t.Errorf("vertex 0 position not pinned as expected:\n%s", dot)
	}
	if !strings.Contains(dot, `pos="9.792,9.792!"`) {
		t.Errorf("vertex 1 position not pinned as expected:\n%s", dot)
	}
}

func TestToDOT_UncoloredUsesLastColor(t *testing.T) {
	g := triangle(t)

	dot := ToDOT(g, Options{Palette: render.Palette{"#111111", "#222222"}})

	if got := strings.Count(dot, `fillcolor="#222222"`); got != 3 {
		t.Errorf("uncolored vertices with last color = %d, want 3", got)
	}
}

func TestToDOT_Label(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: 4, X: 0.5, Y: 0.5, Label: "hub"})

	dot := ToDOT(g, Options{})

	if !strings.Contains(dot, `4 [label="hub"`) {
		t.Errorf("ToDOT() should use the vertex label:\n%s", dot)
	}
}

func TestValidate(t *testing.T) {
	for _, f := range Formats() {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v", f, err)
		}
	}
	if err := ValidateFormat("pdf"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(pdf) = %v, want INVALID_FORMAT", err)
	}

	for _, e := range Engines() {
		if err := ValidateEngine(e); err != nil {
			t.Errorf("ValidateEngine(%q) = %v", e, err)
		}
	}
	if err := ValidateEngine("twopi"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("ValidateEngine(twopi) = %v, want INVALID_CONFIG", err)
	}
}

func TestRender_DOTPassthrough(t *testing.T) {
	out, err := Render(context.Background(), "graph G {}", FormatDOT, "")
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "graph G {}" {
		t.Errorf("Render(dot) = %q", out)
	}
}

func TestRender_SVG(t *testing.T) {
	g := triangle(t)
	g.ColorGraph(graph.Exact)

	svg, err := RenderSVG(context.Background(), ToDOT(g, Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `)) {
		t.Error("SVG root tag not normalized")
	}
	if !bytes.Contains(svg, []byte(`fill="#ff0000"`)) && !bytes.Contains(svg, []byte(`fill="#FF0000"`)) {
		t.Error("SVG missing first palette color")
	}
}

func TestRender_PNG(t *testing.T) {
	g := triangle(t)
	g.ColorGraph(graph.Greedy)

	png, err := RenderPNG(context.Background(), ToDOT(g, Options{}))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output is not a PNG")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := normalizeViewBox(in)
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if string(out) != want {
		t.Errorf("normalizeViewBox =\n%s\nwant\n%s", out, want)
	}

	plain := []byte("<svg></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("SVG without viewBox should be unchanged")
	}
}
