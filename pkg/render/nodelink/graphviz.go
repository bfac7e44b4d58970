package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/observability"
)

// Output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// DefaultEngine honors pinned positions.
const DefaultEngine = "neato"

var (
	formats = []string{FormatDOT, FormatSVG, FormatPNG}
	engines = []string{"neato", "fdp", "circo", "dot"}
)

// Formats returns the supported output formats.
func Formats() []string { return slices.Clone(formats) }

// Engines returns the supported Graphviz layout engines.
func Engines() []string { return slices.Clone(engines) }

// ValidateFormat checks that format is one of [Formats].
func ValidateFormat(format string) error {
	if !slices.Contains(formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %v)", format, formats)
	}
	return nil
}

// ValidateEngine checks that engine is one of [Engines].
func ValidateEngine(engine string) error {
	if !slices.Contains(engines, engine) {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid engine: %q (must be one of: %v)", engine, engines)
	}
	return nil
}

// Render produces format from dot with the given layout engine. The DOT
// format returns the source unchanged. An empty engine means [DefaultEngine].
func Render(ctx context.Context, dot, format, engine string) ([]byte, error) {
	if engine == "" {
		engine = DefaultEngine
	}
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if err := ValidateEngine(engine); err != nil {
		return nil, err
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, format, len(dot))
	start := time.Now()

	var out []byte
	var err error
	switch format {
	case FormatDOT:
		out = []byte(dot)
	case FormatSVG:
		out, err = run(ctx, dot, graphviz.SVG, engine)
		if err == nil {
			out = normalizeViewBox(out)
		}
	case FormatPNG:
		out, err = run(ctx, dot, graphviz.PNG, engine)
	}

	hooks.OnRenderComplete(ctx, format, len(out), time.Since(start), err)
	return out, err
}

// RenderSVG renders dot to SVG with the default engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return Render(ctx, dot, FormatSVG, DefaultEngine)
}

// RenderPNG renders dot to PNG with the default engine.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return Render(ctx, dot, FormatPNG, DefaultEngine)
}

func run(ctx context.Context, dot string, format graphviz.Format, engine string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.Layout(engine))

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's root tag with one whose viewBox starts
// at the origin and whose size matches it, so the SVG scales cleanly.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
