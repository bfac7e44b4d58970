// Package pkg provides the libraries behind the chromatic graph coloring CLI.
//
// # Overview
//
// Chromatic assigns colors to the vertices of an undirected graph so that no
// edge joins two vertices of the same color. The pkg directory is organized
// into these areas:
//
//  1. [graph] - Graph model and the greedy, sf and exact coloring algorithms
//  2. [samples] - Demonstration graphs with known chromatic numbers
//  3. [pipeline] - Orchestration (build → color → render) with the exact guard
//  4. [render] - Palette, frame projection and the Graphviz node-link drawing
//  5. [cache] - Rendered artifact cache
//  6. [config], [errors], [observability], [buildinfo] - Ambient support
//
// # Architecture
//
//	Sample registry or caller graph
//	         ↓
//	    [graph] package (color with a Strategy)
//	         ↓
//	    [pipeline] package (guard, fallback, verification)
//	         ↓
//	    [render/nodelink] package (DOT, then SVG/PNG via Graphviz)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil)
//	res, err := runner.Execute(ctx, pipeline.Options{Sample: "petersen", Algorithm: "exact"})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.NumColors) // 3
//
// [graph]: github.com/matzehuels/chromatic/pkg/graph
// [samples]: github.com/matzehuels/chromatic/pkg/samples
// [pipeline]: github.com/matzehuels/chromatic/pkg/pipeline
// [render]: github.com/matzehuels/chromatic/pkg/render
// [render/nodelink]: github.com/matzehuels/chromatic/pkg/render/nodelink
// [cache]: github.com/matzehuels/chromatic/pkg/cache
// [config]: github.com/matzehuels/chromatic/pkg/config
// [errors]: github.com/matzehuels/chromatic/pkg/errors
// [observability]: github.com/matzehuels/chromatic/pkg/observability
// [buildinfo]: github.com/matzehuels/chromatic/pkg/buildinfo
package pkg
