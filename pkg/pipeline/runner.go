package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/chromatic/pkg/cache"
	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/observability"
	"github.com/matzehuels/chromatic/pkg/samples"
)

// Runner executes coloring runs and renders their results.
//
// The Runner holds no per-run state; one Runner may serve concurrent runs as
// long as each run colors its own graph.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables artifact caching; a nil
// logger uses log.Default.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute builds the graph, colors it under the exact guard and verifies the
// result. opts.Logger, when set, takes precedence over the runner's logger.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	explicitLogger := opts.Logger != nil
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.Logger
	if explicitLogger {
		logger = opts.Logger
	}

	g := opts.Graph
	if g == nil {
		var err error
		if g, err = samples.Build(opts.Sample); err != nil {
			return nil, err
		}
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Sample:    opts.Sample,
		Algorithm: opts.algorithm,
		Graph:     g,
		Stats: Stats{
			Vertices:  g.VertexCount(),
			Edges:     g.EdgeCount(),
			MaxDegree: g.MaxDegree(),
		},
	}
	if opts.Graph != nil {
		result.Sample = ""
	}
	logger = logger.With("run", result.RunID[:8])
	logger.Debug("coloring", "sample", result.Sample, "algorithm", opts.algorithm,
		"vertices", result.Stats.Vertices, "edges", result.Stats.Edges)

	start := time.Now()
	used, err := r.color(ctx, g, opts, result, logger)
	result.Stats.Duration = time.Since(start)
	if err != nil {
		return nil, err
	}

	result.Used = used
	result.Colors = g.Colors()
	result.NumColors = g.NumColors()
	result.Valid = g.IsValidColoring()

	logger.Info("colored graph",
		"algorithm", used,
		"colors", result.NumColors,
		"valid", result.Valid,
		"duration", result.Stats.Duration.Round(time.Microsecond))
	if !result.Valid {
		return result, errors.New(errors.ErrCodeInternal, "%s produced an invalid coloring", used)
	}
	return result, nil
}

// color runs the requested algorithm, falling back to the configured
// heuristic when the exact guard trips.
func (r *Runner) color(ctx context.Context, g *graph.Graph, opts Options, result *Result, logger *log.Logger) (graph.Algorithm, error) {
	if opts.algorithm != graph.Exact {
		return opts.algorithm, r.attempt(ctx, g, graph.Select(opts.algorithm))
	}

	err := r.exact(ctx, g, opts, result)
	if err == nil {
		return graph.Exact, nil
	}
	// Cancellation from the caller is not a guard trip.
	if ctx.Err() != nil || !errors.IsGuard(err) || !opts.HasFallback() {
		return graph.Exact, err
	}

	logger.Warn("exact search guard tripped, falling back",
		"fallback", opts.fallback, "reason", errors.UserMessage(err))
	observability.Coloring().OnFallback(ctx, graph.Exact.String(), opts.fallback.String(), err)
	result.FellBack = true
	result.FallbackReason = err
	return opts.fallback, r.attempt(ctx, g, graph.Select(opts.fallback))
}

func (r *Runner) exact(ctx context.Context, g *graph.Graph, opts Options, result *Result) error {
	if n := g.VertexCount(); opts.MaxExactVertices > 0 && n > opts.MaxExactVertices {
		return errors.New(errors.ErrCodeTooLarge, "exact search refused: %d vertices exceeds limit of %d", n, opts.MaxExactVertices)
	}
	if opts.ExactTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.ExactTimeout)
		defer cancel()
	}

	strategy := graph.ExactStrategy{
		Progress: func(budget int, feasible bool, steps int) {
			result.Stats.Probes++
			result.Stats.Steps = steps
			if opts.Progress != nil {
				opts.Progress(budget, feasible, steps)
			}
		},
	}
	return r.attempt(ctx, g, strategy)
}

func (r *Runner) attempt(ctx context.Context, g *graph.Graph, s graph.Strategy) error {
	hooks := observability.Coloring()
	hooks.OnColorStart(ctx, s.Name(), g.VertexCount(), g.EdgeCount())
	start := time.Now()
	err := g.ColorWith(ctx, s)
	hooks.OnColorComplete(ctx, s.Name(), g.NumColors(), time.Since(start), err)
	return err
}
