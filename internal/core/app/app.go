package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"importprune/internal/core/config"
	"importprune/internal/core/ports"
	"importprune/internal/data/history"
	"importprune/internal/engine/symbols"
	"importprune/internal/shared/observability"
	"importprune/internal/shared/util"

	"github.com/gobwas/glob"
)

// App wires the pure liveness engine to configuration, persistence and
// observability. The engine packages stay free of all of that; everything
// environmental lives here.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	resolve   symbols.ResolveFunc
	history   ports.HistoryStore
	histStop  func() error
	traceStop func(context.Context) error
	limiter   *util.Limiter
	excludes  []glob.Glob
}

// New builds an App around the injected resolver primitive. The resolver is
// the external name-resolution collaborator; this core never parses or
// resolves anything itself.
func New(cfg *config.Config, logger *slog.Logger, resolve symbols.ResolveFunc) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if resolve == nil {
		return nil, fmt.Errorf("resolver is required")
	}

	excludes, err := cfg.CompileExcludes()
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:   cfg,
		Logger:   logger,
		resolve:  resolve,
		excludes: excludes,
	}

	if cfg.Analysis.ModuleRate > 0 {
		a.limiter = util.NewLimiter(cfg.Analysis.ModuleRate, cfg.Analysis.Burst)
	}

	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("open history store: %w", err)
		}
		adapter := history.NewAdapter(store)
		a.history = adapter
		a.histStop = adapter.Close
	}

	if cfg.Tracing.Enabled {
		shutdown, err := observability.InitTracing(context.Background(), cfg.Tracing.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("init tracing: %w", err)
		}
		a.traceStop = shutdown
	}

	return a, nil
}

// WithHistoryStore swaps the snapshot sink, mainly for tests and embedders
// that already own a store.
func (a *App) WithHistoryStore(store ports.HistoryStore) *App {
	a.history = store
	a.histStop = nil
	return a
}

// Close flushes every shutdown hook the constructor installed. A hook
// failure does not stop the others; all failures surface joined.
func (a *App) Close(ctx context.Context) error {
	if a == nil {
		return nil
	}
	var errs []error
	if a.histStop != nil {
		errs = append(errs, a.histStop())
	}
	if a.traceStop != nil {
		errs = append(errs, a.traceStop(ctx))
	}
	return errors.Join(errs...)
}

func (a *App) excluded(module string) bool {
	for _, g := range a.excludes {
		if g.Match(module) {
			return true
		}
	}
	return false
}
