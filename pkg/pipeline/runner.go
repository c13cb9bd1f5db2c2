package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/amoor/pkg/cache"
	"github.com/matzehuels/amoor/pkg/config"
	"github.com/matzehuels/amoor/pkg/model"
	"github.com/matzehuels/amoor/pkg/observability"
	"github.com/matzehuels/amoor/pkg/render/simxml"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
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

// input is the loaded and validated config of one run.
type input struct {
	raw  []byte
	file *config.File
}

// Execute runs the complete load → build → serialize pipeline with caching.
// On error no document is returned.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)
	result := &Result{RunID: opts.RunID}
	if result.RunID == "" {
		result.RunID = uuid.NewString()
	}
	logger = logger.With("run", result.RunID)

	// Stage 1: Load
	start := time.Now()
	in, err := r.load(opts)
	if err != nil {
		return nil, err
	}
	template, err := loadTemplate(opts)
	if err != nil {
		return nil, err
	}
	result.Timing.Load = time.Since(start)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Build
	start = time.Now()
	m, err := r.build(ctx, result.RunID, in.file)
	if err != nil {
		return nil, err
	}
	result.Model = m
	result.Stats = m.Stats()
	result.Timing.Build = time.Since(start)
	logger.Info("built model",
		"nodes", m.NodeCount(),
		"edges", m.EdgeCount(),
		"duration", result.Timing.Build)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Serialize, through the cache
	key := r.Keyer.ModelKey(cache.ModelKeyOpts{
		ConfigHash:   cache.Hash(in.raw),
		TemplateHash: cache.Hash(template),
		Seed:         opts.Seed,
		Indent:       opts.Indent,
	})
	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			logger.Warn("cache read failed", "err", err)
		case hit:
			observability.Cache().OnCacheHit(ctx, key)
			result.Document = data
			result.CacheHit = true
			logger.Debug("document from cache", "key", key)
			return result, nil
		default:
			observability.Cache().OnCacheMiss(ctx, key)
		}
	}

	start = time.Now()
	hooks := observability.Pipeline()
	hooks.OnSerializeStart(ctx, result.RunID)
	doc, err := simxml.Render(template, m, simxml.Options{Seed: opts.Seed, Indent: opts.Indent})
	result.Timing.Serialize = time.Since(start)
	hooks.OnSerializeComplete(ctx, result.RunID, len(doc), result.Timing.Serialize, err)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	logger.Info("serialized document",
		"bytes", len(doc),
		"duration", result.Timing.Serialize)

	if err := r.Cache.Set(ctx, key, doc, TTLModel); err != nil {
		logger.Warn("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, key, len(doc))
	}
	return result, nil
}

// Model loads the config and builds the model without serializing it.
func (r *Runner) Model(ctx context.Context, opts Options) (*model.Model, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	in, err := r.load(opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	return r.build(ctx, runID, in.file)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) load(opts Options) (input, error) {
	raw, format := opts.Config, opts.ConfigFormat
	if opts.ConfigPath != "" {
		var err error
		raw, format, err = config.Read(opts.ConfigPath)
		if err != nil {
			return input{}, err
		}
	}
	file, err := config.Parse(raw, format)
	if err != nil {
		return input{}, err
	}
	return input{raw: raw, file: file}, nil
}

func (r *Runner) build(ctx context.Context, runID string, f *config.File) (*model.Model, error) {
	anchors, err := f.AnchorTable()
	if err != nil {
		return nil, err
	}
	grid := f.Grid()

	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, runID, grid, len(anchors))
	start := time.Now()
	m, err := model.Build(grid, anchors)
	var stats model.Stats
	if m != nil {
		stats = m.Stats()
	}
	hooks.OnBuildComplete(ctx, runID, stats, time.Since(start), err)
	return m, err
}

// logger returns the per-run logger if set, else the runner's.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
