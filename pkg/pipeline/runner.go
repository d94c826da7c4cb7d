package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scoreline/pkg/cache"
	"github.com/matzehuels/scoreline/pkg/imposition"
	"github.com/matzehuels/scoreline/pkg/observability"
	"github.com/matzehuels/scoreline/pkg/render"
)

// Runner executes the pipeline with artifact caching.
//
// The Runner holds no per-run state, so one Runner can serve concurrent
// requests with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration // artifact lifetime; zero keeps entries until evicted
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses the DefaultKeyer and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Close releases the cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Execute runs Calculate then Render.
//
// Calculation errors return a nil Result. Render errors return the Result
// with its Layout and Summary set, together with the error.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	calcStart := time.Now()
	l, err := r.Calculate(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("calculate: %w", err)
	}
	result := &Result{
		Layout:  l,
		Summary: render.Summary(l),
	}
	result.Stats.CalculateTime = time.Since(calcStart)

	renderStart := time.Now()
	artifacts, hit, err := r.Render(ctx, l, opts)
	result.Artifacts = artifacts
	result.CacheHit = hit
	result.Stats.RenderTime = time.Since(renderStart)
	if err != nil {
		return result, fmt.Errorf("render: %w", err)
	}

	r.Logger.Info("rendered layout",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)
	return result, nil
}

// Calculate validates the inputs and computes the layout.
func (r *Runner) Calculate(ctx context.Context, opts Options) (l imposition.Layout, err error) {
	if err := ctx.Err(); err != nil {
		return imposition.Layout{}, err
	}
	start := time.Now()
	defer func() {
		observability.Pipeline().OnCalculate(ctx, opts.Scheme, l.Count, time.Since(start), err)
	}()

	scheme, err := opts.ParseScheme()
	if err != nil {
		return imposition.Layout{}, err
	}
	l, err = imposition.Compute(opts.Params(), scheme)
	if err != nil {
		return imposition.Layout{}, err
	}
	r.Logger.Debug("calculated layout",
		"input", describe(opts),
		"documents", l.Count,
		"scores", len(l.Scores))
	return l, nil
}

// Render produces one artifact per requested format, consulting the cache
// first. hit reports whether every artifact came from the cache. When the
// canvas cannot show the layout, artifacts that need no canvas (json) are
// still returned alongside the error.
func (r *Runner) Render(ctx context.Context, l imposition.Layout, opts Options) (artifacts map[string][]byte, hit bool, err error) {
	opts.SetDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	layoutJSON, err := render.RenderJSON(l)
	if err != nil {
		return nil, false, err
	}
	layoutHash := cache.Hash(layoutJSON)

	cacheHooks := observability.Cache()
	artifacts = make(map[string][]byte, len(opts.Formats))
	allHit := true
	var sceneErr error

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutHash, cache.ArtifactKeyOpts{
			Format: format,
			Width:  opts.Width,
			Height: opts.Height,
			Labels: opts.Labels,
		})
		if data, ok, err := r.Cache.Get(ctx, key); err == nil && ok {
			r.Logger.Debug("artifact cache hit", "format", format)
			cacheHooks.OnCacheHit(ctx, format)
			artifacts[format] = data
			continue
		} else if err != nil {
			r.Logger.Warn("artifact cache read failed", "format", format, "err", err)
		}
		allHit = false
		cacheHooks.OnCacheMiss(ctx, format)

		data, err := renderFormat(l, layoutJSON, format, opts)
		if err != nil {
			sceneErr = err
			continue
		}
		artifacts[format] = data
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			r.Logger.Warn("artifact cache write failed", "format", format, "err", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, format, len(data))
	}

	if sceneErr != nil {
		return artifacts, false, sceneErr
	}
	return artifacts, allHit, nil
}

// renderFormat dispatches to a sink.
func renderFormat(l imposition.Layout, layoutJSON []byte, format string, opts Options) ([]byte, error) {
	if format == FormatJSON {
		return layoutJSON, nil
	}
	if format == FormatText {
		canvas := render.Canvas{Width: DefaultTextColumns, Height: opts.Height}
		scene, err := render.NewScene(l, canvas)
		if err != nil {
			return nil, err
		}
		return []byte(render.Summary(l) + "\n" + render.RenderText(scene, render.WithPlain()) + "\n"), nil
	}

	scene, err := render.NewScene(l, opts.Canvas())
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatSVG:
		var svgOpts []render.SVGOption
		if opts.Labels {
			svgOpts = append(svgOpts, render.WithLabels())
		}
		return render.RenderSVG(scene, svgOpts...), nil
	case FormatPNG:
		return render.RenderPNG(scene)
	case FormatPDF:
		return render.RenderPDF(scene, render.WithTitle(render.Title(l)))
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
