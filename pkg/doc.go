// Package pkg provides the core libraries for Planboard mission visualization.
//
// # Overview
//
// Planboard turns mission plans into layered boards where every step sits in
// the row below the steps that wait on it. The pkg directory is organized
// into four main areas:
//
//  1. [plan] / [layout] / [source] - Domain logic (mission model, board engine, loaders)
//  2. [render] - Visualization (board SVG/PNG, node-link DOT)
//  3. [cache] / [store] - Infrastructure (artifact caching, mission persistence)
//  4. [pipeline] / [api] - Orchestration and serving
//
// # Architecture
//
// The typical data flow through Planboard:
//
//	Mission file (.json / .toml)
//	         ↓
//	    [source] package (detect format, load)
//	         ↓
//	    [plan] package (domain model + validation)
//	         ↓
//	    [layout] package (reroute → layer → order → measure → position)
//	         ↓
//	    [render] package (board SVG/PNG, nodelink DOT)
//	         ↓
//	    SVG/PNG/DOT/JSON output
//
// # Quick Start
//
// Load a mission and render a board:
//
//	import (
//	    "github.com/planboard/planboard/pkg/plan"
//	    "github.com/planboard/planboard/pkg/render"
//	    "github.com/planboard/planboard/pkg/source"
//	)
//
//	// 1. Load a mission
//	p, _ := source.Load("release.json")
//
//	// 2. Compute the board geometry
//	l := plan.FromResult(p, p.Compute())
//
//	// 3. Render to SVG
//	svg := render.RenderSVG(l, render.WithStyle(render.NewDark()))
//
// # Main Packages
//
// ## Domain Logic
//
// [plan] - The mission model: steps with containment children and dependency
// edges, status tracking, validation findings, and the Layout type with its
// JSON wire format.
//
// [layout] - The board engine. Builds the step graph with dependency
// rerouting, assigns cycle-safe layers, orders rows to keep subtrees
// contiguous, measures subtree widths, and positions every block.
//
// [source] - Mission file loaders selected by extension (.json wire format,
// .toml authoring format). Custom formats plug in via the Loader interface.
//
// ## Visualization
//
// [render] - Board rendering to SVG with light and dark styles, plus PNG
// conversion.
//
// [render/nodelink] - Traditional directed graph diagrams using Graphviz.
//
// ## Infrastructure
//
// [cache] - Content-addressed artifact cache keyed by hashed inputs.
// FileCache for the CLI, RedisCache for the API, NullCache for tests and
// --no-cache runs.
//
// [store] - Mission persistence behind a small Store interface. MemoryStore
// for development and tests, MongoStore for deployments.
//
// ## Orchestration
//
// [pipeline] - Complete pipeline (load → layout → render) used by both CLI
// and API. Ensures consistent behavior across all entry points.
//
// [observability] - Pipeline hooks for stage timings and cache hit logging.
//
// [api] - HTTP API over the pipeline and store (chi router): mission CRUD
// plus on-demand layout and render endpoints.
//
// [errors] - Coded errors shared across packages, and the validation
// findings the plan package reports.
//
// [buildinfo] - Version metadata injected at build time via ldflags.
//
// # Common Workflows
//
// Validate a mission before laying it out:
//
//	for _, issue := range p.Validate() {
//	    fmt.Println(issue)
//	}
//
// Run the full pipeline with caching:
//
//	fc, _ := cache.NewFileCache(dir)
//	runner := pipeline.NewRunner(fc, nil, logger)
//	defer runner.Close()
//
//	res, _ := runner.Execute(ctx, pipeline.Options{
//	    Path:    "release.json",
//	    Formats: []string{pipeline.FormatSVG},
//	})
//
// Render a node-link diagram instead of a board:
//
//	dot := nodelink.ToDOT(p.Compute(), nodelink.Options{Detailed: true})
//	svg, _ := nodelink.RenderSVG(dot)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//	go test -run Example        # Examples only
//
// [plan]: https://pkg.go.dev/github.com/planboard/planboard/pkg/plan
// [layout]: https://pkg.go.dev/github.com/planboard/planboard/pkg/layout
// [source]: https://pkg.go.dev/github.com/planboard/planboard/pkg/source
// [render]: https://pkg.go.dev/github.com/planboard/planboard/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/planboard/planboard/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/planboard/planboard/pkg/cache
// [store]: https://pkg.go.dev/github.com/planboard/planboard/pkg/store
// [pipeline]: https://pkg.go.dev/github.com/planboard/planboard/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/planboard/planboard/pkg/observability
// [api]: https://pkg.go.dev/github.com/planboard/planboard/pkg/api
// [errors]: https://pkg.go.dev/github.com/planboard/planboard/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/planboard/planboard/pkg/buildinfo
package pkg
