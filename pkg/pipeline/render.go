package pipeline

import (
	"context"

	"github.com/matzehuels/chromatic/pkg/cache"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/render/nodelink"
)

// Render draws the colored graph g in opts.Format. Graphviz output is served
// from the runner's cache when the same DOT source was rendered before with
// the same options; the second return value reports a cache hit.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, opts RenderOptions) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	dot := nodelink.ToDOT(g, nodelink.Options{
		Width:   opts.Width,
		Height:  opts.Height,
		Palette: opts.Palette,
	})
	if opts.Format == nodelink.FormatDOT {
		return []byte(dot), false, nil
	}

	key := cache.ArtifactKey(dot, cache.ArtifactKeyOpts{
		Format: opts.Format,
		Engine: opts.Engine,
		Width:  opts.Width,
		Height: opts.Height,
	})
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		r.Logger.Debug("artifact cache hit", "format", opts.Format)
		return data, true, nil
	}

	data, err := nodelink.Render(ctx, dot, opts.Format, opts.Engine)
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
	}
	return data, false, nil
}
