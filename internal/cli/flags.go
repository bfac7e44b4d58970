package cli

import (
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/config"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/pipeline"
	"github.com/matzehuels/chromatic/pkg/samples"
)

// randomSample picks a registered sample at random.
const randomSample = "random"

// runFlags are the coloring flags shared by color, render and view. Each
// flag overrides the config file only when set on the command line.
type runFlags struct {
	sample     string
	algorithm  string
	maxExact   int
	timeout    int
	fallback   string
	noFallback bool

	// rng picks the random sample; nil seeds from the clock.
	rng *rand.Rand
}

func (f *runFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.sample, "sample", "s", "", "sample graph: "+strings.Join(samples.Names(), ", ")+" or "+randomSample)
	fl.StringVarP(&f.algorithm, "algorithm", "a", "", "coloring algorithm: greedy, sf or exact")
	fl.IntVar(&f.maxExact, "max-exact", 0, "refuse exact search above this many vertices (0 = no limit)")
	fl.IntVar(&f.timeout, "timeout", 0, "abandon exact search after this many seconds (0 = no limit)")
	fl.StringVar(&f.fallback, "fallback", "", "heuristic used when the exact search is refused or abandoned")
	fl.BoolVar(&f.noFallback, "no-fallback", false, "fail instead of falling back to a heuristic")

	_ = cmd.RegisterFlagCompletionFunc("sample", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return append(samples.Names(), randomSample), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("algorithm", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, 3)
		for _, a := range graph.Algorithms() {
			names = append(names, a.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("fallback", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{graph.Greedy.String(), graph.SmallestFirst.String()}, cobra.ShellCompDirectiveNoFileComp
	})
}

// options merges the flags over cfg and resolves the random sample.
func (f *runFlags) options(cmd *cobra.Command, cfg config.Config) pipeline.Options {
	opts := cfg.PipelineOptions()
	fl := cmd.Flags()
	if fl.Changed("sample") {
		opts.Sample = f.sample
	}
	if fl.Changed("algorithm") {
		opts.Algorithm = f.algorithm
	}
	if fl.Changed("max-exact") {
		opts.MaxExactVertices = f.maxExact
	}
	if fl.Changed("timeout") {
		opts.ExactTimeout = time.Duration(f.timeout) * time.Second
	}
	if fl.Changed("fallback") {
		opts.Fallback = f.fallback
	}
	if f.noFallback {
		opts.Fallback = ""
	}
	if opts.Sample == randomSample {
		rng := f.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		opts.Sample = samples.Random(rng).Name
	}
	return opts
}
