package pipeline

import (
	"bytes"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/graphexport/pkg/cache"
	"github.com/matzehuels/graphexport/pkg/errors"
	"github.com/matzehuels/graphexport/pkg/export"
	graphio "github.com/matzehuels/graphexport/pkg/io"
	"github.com/matzehuels/graphexport/pkg/node"
	"github.com/matzehuels/graphexport/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
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

// Load reads a graph description document. See [Load].
func (r *Runner) Load(ctx context.Context, path string) (node.Node, error) {
	root, err := Load(ctx, path)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("loaded graph", "source", path)
	return root, nil
}

// Execute exports root in every requested format.
//
// The graph is validated once up front, so structural problems are reported
// before any exporter runs. Formats are exported concurrently; the first
// failure cancels the rest and no artifacts are returned.
func (r *Runner) Execute(ctx context.Context, root node.Node, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := node.Validate(root); err != nil {
		return nil, err
	}

	result := &Result{
		ID:        uuid.NewString(),
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}
	logger := r.Logger.With("run", result.ID[:8])

	counts, err := export.Count(root, opts.EngineOptions()...)
	if err != nil {
		return nil, err
	}
	result.Counts = counts
	result.Stats.NodeCount = counts.Leaves() + counts.Graphs

	hash, err := fingerprint(root)
	if err != nil {
		return nil, err
	}
	result.GraphHash = hash

	logger.Debug("exporting graph",
		"nodes", result.Stats.NodeCount,
		"depth", counts.MaxDepth,
		"formats", opts.Formats)

	start := time.Now()
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			data, hit, err := r.exportCached(gctx, root, hash, format, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			result.Artifacts[format] = data
			if hit {
				result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(result.CacheInfo.Hits)
	result.CacheInfo.All = len(result.CacheInfo.Hits) == len(opts.Formats)
	result.Stats.ExportTime = time.Since(start)

	logger.Info("exported graph",
		"formats", opts.Formats,
		"cached", len(result.CacheInfo.Hits),
		"duration", result.Stats.ExportTime)

	return result, nil
}

// ExportWithCacheInfo exports one format with caching and reports whether
// the artifact came from the cache.
func (r *Runner) ExportWithCacheInfo(ctx context.Context, root node.Node, format string, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	if err := ValidateFormat(format); err != nil {
		return nil, false, err
	}
	hash, err := fingerprint(root)
	if err != nil {
		return nil, false, err
	}
	return r.exportCached(ctx, root, hash, format, opts)
}

func (r *Runner) exportCached(ctx context.Context, root node.Node, hash, format string, opts Options) ([]byte, bool, error) {
	hooks := observability.Cache()
	key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			hooks.OnCacheHit(ctx, "artifact")
			r.Logger.Debug("cache hit", "format", format)
			return data, true, nil
		}
		hooks.OnCacheMiss(ctx, "artifact")
	}

	data, err := Export(ctx, root, format, opts)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "format", format, "err", err)
	} else {
		hooks.OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// fingerprint hashes the canonical JSON description of root.
func fingerprint(root node.Node) (string, error) {
	var buf bytes.Buffer
	if err := graphio.Write(root, &buf, graphio.FormatJSON); err != nil {
		return "", errors.Wrap(errors.GetCode(err), err, "fingerprint graph")
	}
	return cache.Hash(buf.Bytes()), nil
}
