package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/mindtree/pkg/cache"
	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/graph"
	"github.com/matzehuels/mindtree/pkg/mindmap"
	"github.com/matzehuels/mindtree/pkg/observability"
)

// maxRenderWorkers bounds concurrent format rendering in one call.
const maxRenderWorkers = 4

// Runner encapsulates pipeline execution with caching.
//
// The Runner holds no per-run state; one Runner may serve many goroutines
// with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer means DefaultKeyer, a nil cache
// means NullCache and a nil logger means log.Default().
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

// Execute lays out m and renders every requested format.
func (r *Runner) Execute(ctx context.Context, m *mindmap.Mindmap, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Layout
	layoutStart := time.Now()
	l, hash, layoutHit, err := r.computeLayout(ctx, m, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.DocHash = hash
	result.Stats.NodeCount = m.Count()
	result.Stats.Depth = m.Depth()
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"nodes", result.Stats.NodeCount,
		"canvas", fmt.Sprintf("%gx%g", l.Width, l.Height),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayoutWithCacheInfo lays out a private copy of m and reports
// whether the layout came from the cache. m itself is not modified.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, m *mindmap.Mindmap, opts Options) (graph.Layout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return graph.Layout{}, false, err
	}
	l, _, hit, err := r.computeLayout(ctx, m, opts)
	return l, hit, err
}

// ComputeLayout is ComputeLayoutWithCacheInfo without the cache info.
func (r *Runner) ComputeLayout(ctx context.Context, m *mindmap.Mindmap, opts Options) (graph.Layout, error) {
	l, _, err := r.ComputeLayoutWithCacheInfo(ctx, m, opts)
	return l, err
}

func (r *Runner) computeLayout(ctx context.Context, m *mindmap.Mindmap, opts Options) (graph.Layout, string, bool, error) {
	if m == nil {
		m = mindmap.New(nil)
	}
	if err := apperrors.ValidateTreeShape(m.Depth(), m.Count(), opts.MaxDepth, opts.MaxNodes); err != nil {
		return graph.Layout{}, "", false, err
	}

	work := prepare(m, opts)
	hash, err := docHash(work)
	if err != nil {
		return graph.Layout{}, "", false, err
	}
	key := r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts(work.Style))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if cached, err := graph.UnmarshalLayout(data); err == nil {
				return cached, hash, true, nil
			}
			opts.Logger.Warn("discarding unreadable cached layout", "key", key)
		} else if err != nil {
			opts.Logger.Warn("cache read failed", "err", err)
		}
	}

	count := work.Count()
	observability.Pipeline().OnLayoutStart(ctx, opts.Engine, count)
	start := time.Now()
	l, err := GenerateLayout(work, opts)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Engine, count, time.Since(start), err)
	if err != nil {
		return graph.Layout{}, "", false, err
	}
	opts.Logger.Debug("layout pass", "engine", opts.Engine, "nodes", count, "duration", time.Since(start))

	if data, err := graph.MarshalLayout(l); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
			opts.Logger.Warn("cache write failed", "err", err)
		}
	}
	return l, hash, false, nil
}

// RenderWithCacheInfo renders every format in opts.Formats, reusing cached
// artifacts, and reports whether all of them came from the cache. Missing
// formats are rendered concurrently.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	layoutData, err := graph.MarshalLayout(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
				continue
			}
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxRenderWorkers)
	for _, format := range missing {
		g.Go(func() error {
			observability.Pipeline().OnRenderStart(gctx, format)
			start := time.Now()
			data, err := RenderFormat(gctx, l, format, opts)
			observability.Pipeline().OnRenderComplete(gctx, format, len(data), time.Since(start), err)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}

			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if err := r.Cache.Set(gctx, key, data, cache.TTLArtifact); err != nil {
				opts.Logger.Warn("cache write failed", "format", format, "err", err)
			}

			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false, err
	}
	return artifacts, false, nil
}

// Render is RenderWithCacheInfo without the cache info.
func (r *Runner) Render(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
