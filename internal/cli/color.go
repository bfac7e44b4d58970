package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/pipeline"
	"github.com/matzehuels/chromatic/pkg/render"
)

// colorOpts holds options for the color command.
type colorOpts struct {
	run     runFlags
	json    bool
	compare bool
}

// colorCommand creates the color command for coloring a sample graph.
func (c *CLI) colorCommand() *cobra.Command {
	opts := &colorOpts{}

	cmd := &cobra.Command{
		Use:   "color",
		Short: "Color a sample graph and print the assignment",
		Long: `Color a sample graph and print the color of every vertex.

Three algorithms are available:
  greedy  insertion order, smallest free color
  sf      the greedy pass over vertices sorted by degree, largest first
  exact   binary search for the chromatic number with backtracking

The exact search is bounded by --max-exact and --timeout. When either trips,
the graph is colored with the --fallback heuristic instead.`,
		Example: `  # Petersen graph with the exact search
  chromatic color -s petersen -a exact

  # Every algorithm on a random sample
  chromatic color -s random --compare

  # Machine-readable output
  chromatic color -s grid --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runColor(cmd, opts)
		},
	}

	opts.run.register(cmd)
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&opts.compare, "compare", false, "run every algorithm on the same graph")

	return cmd
}

func (c *CLI) runColor(cmd *cobra.Command, opts *colorOpts) error {
	ctx := cmd.Context()
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return err
	}
	runOpts := opts.run.options(cmd, cfg)
	runner := c.newRunner(true)

	if opts.compare {
		return c.compare(ctx, runner, runOpts, opts.json)
	}

	res, err := c.execute(ctx, runner, runOpts, !opts.json)
	if err != nil {
		return err
	}
	if opts.json {
		return res.WriteJSON(c.out())
	}
	printResult(c.out(), res, palette)
	return nil
}

// execute runs one coloring. Exact runs show a spinner tracking the binary
// search when interactive is set.
func (c *CLI) execute(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, interactive bool) (*pipeline.Result, error) {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	if alg, err := graph.ParseAlgorithm(opts.Algorithm); err == nil && alg == graph.Exact && interactive {
		spinner := newSpinner(ctx, "Searching for the chromatic number...")
		spinner.Start()
		defer spinner.Stop()
		opts.Progress = func(budget int, feasible bool, steps int) {
			verdict := "infeasible"
			if feasible {
				verdict = "feasible"
			}
			spinner.SetMessage(fmt.Sprintf("%d colors %s after %d steps", budget, verdict, steps))
			logger.Debug("exact probe", "budget", budget, "feasible", feasible, "steps", steps)
		}
	}

	return runner.Execute(ctx, opts)
}

// compare colors fresh copies of the same sample with every algorithm.
func (c *CLI) compare(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, asJSON bool) error {
	results := make([]*pipeline.Result, 0, len(graph.Algorithms()))
	for _, alg := range graph.Algorithms() {
		o := opts
		o.Algorithm = alg.String()
		res, err := c.execute(ctx, runner, o, !asJSON)
		if err != nil {
			return fmt.Errorf("%s: %w", alg, err)
		}
		results = append(results, res)
	}

	w := c.out()
	if asJSON {
		for _, res := range results {
			if err := res.WriteJSON(w); err != nil {
				return err
			}
		}
		return nil
	}

	first := results[0]
	printSuccess(w, "Compared %d algorithms on %s", len(results), StyleHighlight.Render(first.Sample))
	printStats(w, first.Stats, nil)
	fmt.Fprintln(w, compareTable(results))
	return nil
}

// printResult prints a single run: summary, per-vertex table and verdict.
func printResult(w io.Writer, res *pipeline.Result, p render.Palette) {
	printSuccess(w, "Colored %s with %s in %s",
		StyleHighlight.Render(res.Sample),
		StyleHighlight.Render(res.Used.String()),
		StyleNumber.Render(fmt.Sprintf("%.3f ms", float64(res.Stats.Duration.Microseconds())/1000)))
	printStats(w, res.Stats, nil)
	if res.FellBack {
		printWarning(w, "%s search abandoned (%s), used %s", res.Algorithm, errors.UserMessage(res.FallbackReason), res.Used)
	}

	fmt.Fprintln(w, vertexTable(res, p))

	legend := ""
	for i := 0; i < res.NumColors; i++ {
		legend += swatch(p, i)
	}
	printKeyValue(w, "Colors used", fmt.Sprintf("%d  %s", res.NumColors, legend))
	printKeyValue(w, "Valid", yesNo(res.Valid))
	printKeyValue(w, "Run", res.RunID)
	if res.Sample != "" {
		fmt.Fprintln(w)
		printNextStep(w, "Render it", fmt.Sprintf("chromatic render -s %s -a %s", res.Sample, res.Algorithm))
	}
}
