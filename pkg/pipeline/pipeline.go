// Package pipeline runs chromatic's build → color → render flow.
//
// The CLI and the terminal viewer both go through a [Runner], so sample
// construction, the exact-search guard, logging and hooks behave the same
// everywhere.
//
// # Exact Guard
//
// The exact search is exponential. Two limits keep it bounded:
//
//   - MaxExactVertices refuses graphs above a vertex count up front
//     (ErrCodeTooLarge).
//   - ExactTimeout abandons a search that runs too long (ErrCodeTimeout).
//
// When either trips and Fallback names a heuristic, the graph is colored
// with it instead and the result is marked FellBack. Without a fallback the
// guard error is returned.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Sample:       "petersen",
//	    Algorithm:    "exact",
//	    ExactTimeout: 5 * time.Second,
//	    Fallback:     "sf",
//	})
//	fmt.Println(result.NumColors, result.Valid) // 3 true
//
// Render the colored graph:
//
//	svg, cached, err := runner.Render(ctx, result.Graph, pipeline.RenderOptions{Format: "svg"})
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/render"
	"github.com/matzehuels/chromatic/pkg/render/nodelink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Config
// =============================================================================

const (
	// DefaultSample is colored when no sample or graph is given.
	DefaultSample = "petersen"

	// DefaultAlgorithm is the algorithm used when none is given.
	DefaultAlgorithm = "greedy"

	// DefaultMaxExactVertices bounds the exact search for CLI users.
	DefaultMaxExactVertices = 64

	// DefaultExactTimeout abandons exact searches that run longer.
	DefaultExactTimeout = 10 * time.Second

	// DefaultFallback is the heuristic used when the exact guard trips.
	DefaultFallback = "sf"
)

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options configures a coloring run.
type Options struct {
	// Sample names a registered demonstration graph. Ignored when Graph is set.
	Sample string `json:"sample,omitempty"`

	// Algorithm is "greedy", "sf" or "exact".
	Algorithm string `json:"algorithm"`

	// MaxExactVertices refuses exact runs on larger graphs. Zero disables
	// the limit.
	MaxExactVertices int `json:"max_exact_vertices,omitempty"`

	// ExactTimeout abandons exact runs after this long. Zero disables it.
	ExactTimeout time.Duration `json:"exact_timeout,omitempty"`

	// Fallback names the heuristic used when the exact guard trips. Empty
	// disables fallback.
	Fallback string `json:"fallback,omitempty"`

	// Runtime options (not serialized)
	Graph    *graph.Graph                               `json:"-"`
	Logger   *log.Logger                                `json:"-"`
	Progress func(budget int, feasible bool, steps int) `json:"-"`

	algorithm graph.Algorithm
	fallback  graph.Algorithm
	validated bool
}

// ValidateAndSetDefaults checks every field and fills in defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Graph == nil && o.Sample == "" {
		o.Sample = DefaultSample
	}
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}

	alg, err := graph.ParseAlgorithm(o.Algorithm)
	if err != nil {
		return err
	}
	o.algorithm = alg
	o.Algorithm = alg.String()

	if o.MaxExactVertices < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max exact vertices must be >= 0, got %d", o.MaxExactVertices)
	}
	if o.ExactTimeout < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "exact timeout must be >= 0, got %s", o.ExactTimeout)
	}

	if o.Fallback != "" {
		fb, err := ParseFallback(o.Fallback)
		if err != nil {
			return err
		}
		o.fallback = fb
		o.Fallback = fb.String()
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// HasFallback reports whether a fallback heuristic is configured.
func (o *Options) HasFallback() bool { return o.Fallback != "" }

// ParseFallback parses a fallback heuristic name. The exact search cannot be
// its own fallback.
func ParseFallback(name string) (graph.Algorithm, error) {
	alg, err := graph.ParseAlgorithm(name)
	if err != nil {
		return alg, err
	}
	if alg == graph.Exact {
		return alg, errors.New(errors.ErrCodeInvalidAlgorithm, "fallback must be a heuristic (greedy or sf), got %q", name)
	}
	return alg, nil
}

// =============================================================================
// Render Options
// =============================================================================

// RenderOptions configures artifact rendering.
type RenderOptions struct {
	Format  string         `json:"format"`
	Engine  string         `json:"engine,omitempty"`
	Width   int            `json:"width,omitempty"`
	Height  int            `json:"height,omitempty"`
	Palette render.Palette `json:"palette,omitempty"`
}

// ValidateAndSetDefaults checks the format and engine and fills in defaults.
func (o *RenderOptions) ValidateAndSetDefaults() error {
	if o.Format == "" {
		o.Format = nodelink.FormatSVG
	}
	if o.Engine == "" {
		o.Engine = nodelink.DefaultEngine
	}
	if o.Width == 0 {
		o.Width = nodelink.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = nodelink.DefaultHeight
	}
	if len(o.Palette) == 0 {
		o.Palette = render.DefaultPalette()
	}
	if err := nodelink.ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := nodelink.ValidateEngine(o.Engine); err != nil {
		return err
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "render size must be >= 0, got %dx%d", o.Width, o.Height)
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result is the outcome of a coloring run.
type Result struct {
	// RunID identifies the run in logs and reports.
	RunID string

	// Sample is the sample name, empty for caller-supplied graphs.
	Sample string

	// Algorithm is the requested algorithm; Used is the one whose coloring
	// the graph carries. They differ only when FellBack is set.
	Algorithm graph.Algorithm
	Used      graph.Algorithm
	FellBack  bool

	// FallbackReason is the guard error that triggered the fallback.
	FallbackReason error

	Graph     *graph.Graph
	Colors    map[int]int
	NumColors int
	Valid     bool

	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	Vertices  int
	Edges     int
	MaxDegree int
	Duration  time.Duration

	// Exact search counters, zero for heuristics.
	Probes int
	Steps  int
}
