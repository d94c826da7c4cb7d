// Package pkg provides the libraries behind scoreline, an imposition layout
// calculator for documents placed side by side on a print page.
//
// # Overview
//
// A page of length P holds as many documents of length D as fit with a fixed
// gutter G between neighbours. The row is centred on the page, and each
// document receives fold scores according to its folding scheme.
//
//	Page length, document length, scheme
//	         ↓
//	    [imposition] count, start positions, scores
//	         ↓
//	    [render] scene on a canvas → SVG/PNG/PDF/JSON/text
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/scoreline/pkg/imposition"
//	    "github.com/matzehuels/scoreline/pkg/render"
//	)
//
//	scheme, _ := imposition.ParseScheme("trifold", "")
//	l, _ := imposition.Compute(imposition.NewParams(12, 3.625), scheme)
//	fmt.Print(render.Summary(l))
//
//	scene, _ := render.NewScene(l, render.DefaultCanvas)
//	svg := render.RenderSVG(scene)
//
// # Main Packages
//
// [imposition] - The calculator. Pure functions over float64 lengths; every
// reported position is rounded to the nearest thousandth.
//
// [render] - Projects a layout onto a pixel canvas and renders it. Drawing
// fails with DEGENERATE_SCALE when the page cannot be scaled to the canvas;
// the layout itself is unaffected.
//
// [pipeline] - Calculate then render with artifact caching. Shared by the CLI,
// the interactive form and the HTTP server.
//
// [cache] - Artifact caches: null, file (CLI) and Redis (server).
//
// [config] - TOML settings with .env and environment overrides.
//
// [server] - HTTP API on chi.
//
// [errors] - Coded errors shared by every layer.
//
// [observability] - Metric hooks with no-op defaults.
//
// [buildinfo] - Version information injected at build time.
//
// [imposition]: https://pkg.go.dev/github.com/matzehuels/scoreline/pkg/imposition
// [render]: https://pkg.go.dev/github.com/matzehuels/scoreline/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/scoreline/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/scoreline/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/scoreline/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/scoreline/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/scoreline/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/scoreline/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/scoreline/pkg/buildinfo
package pkg
