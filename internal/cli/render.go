package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/render/nodelink"
)

// renderOpts holds options for the render command.
type renderOpts struct {
	run     runFlags
	output  string
	format  string
	engine  string
	width   int
	height  int
	noCache bool
}

// renderCommand creates the render command for drawing a colored graph.
func (c *CLI) renderCommand() *cobra.Command {
	opts := &renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Color a sample graph and draw it as DOT, SVG or PNG",
		Long: `Color a sample graph and draw it with Graphviz.

Vertices keep their sample positions and are filled with their palette
color. SVG and PNG output is cached by content; use --no-cache to force a
fresh render.`,
		Example: `  # SVG of the Petersen graph, written to petersen.svg
  chromatic render -s petersen -a exact

  # PNG of a grid at a custom size
  chromatic render -s grid -f png --width 400 --height 400 -o grid.png

  # DOT source to stdout
  chromatic render -s cycle -f dot -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, opts)
		},
	}

	opts.run.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default <sample>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: "+strings.Join(nodelink.Formats(), ", "))
	cmd.Flags().StringVar(&opts.engine, "engine", "", "Graphviz layout engine: "+strings.Join(nodelink.Engines(), ", "))
	cmd.Flags().IntVar(&opts.width, "width", 0, "drawing width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "drawing height in pixels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return nodelink.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("engine", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return nodelink.Engines(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	ropts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if fl.Changed("format") {
		ropts.Format = opts.format
	}
	if fl.Changed("engine") {
		ropts.Engine = opts.engine
	}
	if fl.Changed("width") {
		ropts.Width = opts.width
	}
	if fl.Changed("height") {
		ropts.Height = opts.height
	}
	if err := ropts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner := c.newRunner(opts.noCache)
	res, err := c.execute(ctx, runner, opts.run.options(cmd, cfg), opts.output != "-")
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	data, cached, err := runner.Render(ctx, res.Graph, ropts)
	if err != nil {
		return err
	}

	if opts.output == "-" {
		_, err := c.out().Write(data)
		return err
	}

	path := opts.output
	if path == "" {
		path = res.Sample + "." + ropts.Format
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	prog.done("Rendered "+path, "format", ropts.Format, "bytes", len(data), "cached", cached)

	w := c.out()
	printSuccess(w, "Rendered %s with %s: %s colors",
		StyleHighlight.Render(res.Sample),
		StyleHighlight.Render(res.Used.String()),
		StyleNumber.Render(fmt.Sprint(res.NumColors)))
	if res.FellBack {
		printWarning(w, "%s search abandoned (%s), used %s", res.Algorithm, errors.UserMessage(res.FallbackReason), res.Used)
	}
	printFile(w, path)
	if ropts.Format != nodelink.FormatDOT {
		printStats(w, res.Stats, &cached)
	} else {
		printStats(w, res.Stats, nil)
	}
	return nil
}
