// Package app implements the application layer for glint.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.trai.ch/glint/internal/adapters/arena" //nolint:depguard // The session allocation target is shared with the cache
	"go.trai.ch/glint/internal/core/domain"
	"go.trai.ch/glint/internal/core/ports"
	"go.trai.ch/glint/internal/engine/typecache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultStressWorkers is the number of concurrent requests Stress issues
// when StressOptions.Workers is not set.
const DefaultStressWorkers = 64

// CacheProvider opens a type cache for the given configuration. The returned
// release function ends whatever the provider started.
type CacheProvider func(cfg *domain.Config) (cache ports.TypeCache, release func())

// jsonSwitcher is implemented by loggers that support structured output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	logger        ports.Logger
	target        *arena.Target[domain.Type]
	cacheProvider CacheProvider
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger, target *arena.Target[domain.Type]) *App {
	a := &App{
		configLoader: loader,
		logger:       log,
		target:       target,
	}
	a.cacheProvider = a.openCache
	return a
}

// WithCacheProvider replaces how the App obtains its type cache.
func (a *App) WithCacheProvider(p CacheProvider) *App {
	a.cacheProvider = p
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	ConfigPath string
	JSONLogs   bool
	Out        io.Writer
}

// Run interns every spec and writes one report line per spec:
// the packed key, the mangled name and the type as written in GLSL.
func (a *App) Run(ctx context.Context, specs []string, opts RunOptions) error {
	if len(specs) == 0 {
		return domain.ErrNoSpecsSpecified
	}

	cfg, err := a.loadConfig(opts.ConfigPath, opts.JSONLogs)
	if err != nil {
		return err
	}

	parsed, err := parseSpecs(specs)
	if err != nil {
		return err
	}

	cache, release := a.cacheProvider(cfg)
	defer release()

	if err := prewarm(ctx, cache, cfg.Prewarm); err != nil {
		return zerr.Wrap(err, "failed to prewarm type cache")
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	for _, spec := range parsed {
		if err := ctx.Err(); err != nil {
			return err
		}
		t := getType(cache, spec)
		if _, err := fmt.Fprintf(out, "%s %s %s\n", t.Key(), t.MangledName(), t); err != nil {
			return zerr.Wrap(err, "failed to write report")
		}
	}

	stats := cache.Stats()
	a.logger.Info(fmt.Sprintf(
		"%d descriptors interned (%d hits, %d misses)",
		stats.Entries, stats.Hits, stats.Misses,
	))

	return nil
}

// StressOptions configuration for the Stress method.
type StressOptions struct {
	ConfigPath string
	JSONLogs   bool
	Workers    int
}

// StressResult summarizes a Stress run.
type StressResult struct {
	// Workers is the number of concurrent requests issued.
	Workers int
	// Distinct is the number of different descriptors the workers observed.
	Distinct int
	// Constructions is the number of descriptors the cache built.
	Constructions uint64
	// Type is the descriptor observed by the first worker.
	Type *domain.Type
}

// Stress issues Workers simultaneous requests for spec and verifies that
// every one of them observed the same descriptor.
func (a *App) Stress(ctx context.Context, spec string, opts StressOptions) (StressResult, error) {
	cfg, err := a.loadConfig(opts.ConfigPath, opts.JSONLogs)
	if err != nil {
		return StressResult{}, err
	}

	parsed, err := domain.ParseTypeSpec(spec)
	if err != nil {
		return StressResult{}, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultStressWorkers
	}

	cache, release := a.cacheProvider(cfg)
	defer release()

	before := cache.Stats().Misses

	results := make([]*domain.Type, workers)
	start := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		g.Go(func() error {
			select {
			case <-start:
			case <-ctx.Done():
				return ctx.Err()
			}
			results[i] = getType(cache, parsed)
			return nil
		})
	}
	close(start)

	if err := g.Wait(); err != nil {
		return StressResult{}, err
	}

	seen := make(map[*domain.Type]struct{}, 1)
	for _, t := range results {
		seen[t] = struct{}{}
	}

	result := StressResult{
		Workers:       workers,
		Distinct:      len(seen),
		Constructions: cache.Stats().Misses - before,
		Type:          results[0],
	}

	if result.Distinct != 1 {
		return result, zerr.With(domain.ErrInterningMismatch, "distinct", result.Distinct)
	}

	a.logger.Info(fmt.Sprintf(
		"%d workers observed one descriptor for %q (%d constructed)",
		workers, result.Type.String(), result.Constructions,
	))

	return result, nil
}

func (a *App) loadConfig(path string, forceJSON bool) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if forceJSON || cfg.JSONLogs {
		if s, ok := a.logger.(jsonSwitcher); ok {
			s.SetJSON(true)
		}
	}

	return cfg, nil
}

// openCache is the default CacheProvider. The process scope shares the
// process-wide cache and never destroys it; the session scope builds a cache
// on the App's allocation target and destroys it on release.
func (a *App) openCache(cfg *domain.Config) (ports.TypeCache, func()) {
	opts := []typecache.Option{
		typecache.WithChunkSize(cfg.ChunkSize),
		typecache.WithInitialCapacity(cfg.InitialCapacity),
	}

	if cfg.Scope == domain.ScopeProcess {
		c := typecache.Default()
		c.Configure(opts...)
		c.Initialize()
		return c, func() {}
	}

	c := typecache.New(a.target, a.logger, opts...)
	c.Initialize()
	return c, c.Destroy
}

func parseSpecs(specs []string) ([]domain.TypeSpec, error) {
	parsed := make([]domain.TypeSpec, 0, len(specs))
	for _, text := range specs {
		spec, err := domain.ParseTypeSpec(text)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, spec)
	}
	return parsed, nil
}

func prewarm(ctx context.Context, cache ports.TypeCache, specs []domain.TypeSpec) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, spec := range specs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			getType(cache, spec)
			return nil
		})
	}

	return g.Wait()
}

func getType(cache ports.TypeCache, spec domain.TypeSpec) *domain.Type {
	return cache.GetType(spec.Basic, spec.Precision, spec.Qualifier, spec.PrimarySize, spec.SecondarySize)
}
