package app

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"importprune/internal/core/errors"
	"importprune/internal/core/ports"
	"importprune/internal/data/history"
	"importprune/internal/engine/liveness"
	"importprune/internal/engine/symbols"
	"importprune/internal/lang"
	"importprune/internal/shared/observability"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type pruneService struct {
	app *App
}

var _ ports.PruneService = (*pruneService)(nil)

func NewPruneService(app *App) ports.PruneService {
	return &pruneService{app: app}
}

func (a *App) PruneService() ports.PruneService {
	return NewPruneService(a)
}

func (s *pruneService) Close(ctx context.Context) error {
	if s == nil || s.app == nil {
		return nil
	}
	return s.app.Close(ctx)
}

func (s *pruneService) PrunePackage(ctx context.Context, req ports.PruneRequest) (ports.PruneResult, error) {
	ctx, span := observability.Tracer.Start(ctx, "pruneService.PrunePackage", trace.WithAttributes(
		attribute.Int("package.exposed_modules", len(req.Exposed)),
		attribute.Int("package.internal_modules", len(req.Internal)),
	))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return ports.PruneResult{}, err
	}
	if s.app == nil {
		return ports.PruneResult{}, fmt.Errorf("app is required")
	}

	started := time.Now()
	result := ports.PruneResult{
		RunID:    uuid.NewString(),
		Warnings: make([]string, 0),
	}

	envStart := time.Now()
	env, err := symbols.BuildEnvironment(s.app.resolve, req.Exposed, req.Internal)
	if err != nil {
		return ports.PruneResult{}, errors.AddContext(err, errors.CtxOperation, "build_environment")
	}
	observability.EnvironmentBuildDuration.Observe(time.Since(envStart).Seconds())
	observability.EnvironmentModules.Set(float64(len(env)))

	targets := make([]*lang.Module, 0, len(req.Exposed)+len(req.Internal))
	targets = append(targets, req.Exposed...)
	targets = append(targets, req.Internal...)

	moduleResults, err := s.pruneAll(ctx, env, targets)
	if err != nil {
		return ports.PruneResult{}, err
	}

	sort.Slice(moduleResults, func(i, j int) bool {
		return moduleResults[i].Module < moduleResults[j].Module
	})
	result.Modules = moduleResults

	for i := range targets {
		result.ImportsSeen += len(targets[i].Imports)
	}
	for _, mr := range moduleResults {
		if mr.Excluded {
			result.ModulesExcluded++
			continue
		}
		result.ModulesAnalyzed++
		result.UnknownSkipped += mr.UnknownSkipped
		for _, finding := range mr.Dropped {
			switch finding.Reason {
			case liveness.ReasonUnusedImplicit:
				result.DroppedImplicit++
			case liveness.ReasonUnusedQualifier:
				result.DroppedQualified++
			}
		}
	}

	observability.ModulesAnalyzedTotal.Add(float64(result.ModulesAnalyzed))
	observability.UnusedImportsTotal.WithLabelValues(string(liveness.ReasonUnusedImplicit)).Add(float64(result.DroppedImplicit))
	observability.UnusedImportsTotal.WithLabelValues(string(liveness.ReasonUnusedQualifier)).Add(float64(result.DroppedQualified))
	observability.UnknownImportsSkippedTotal.Add(float64(result.UnknownSkipped))
	observability.AnalysisDuration.WithLabelValues("prune_package").Observe(time.Since(started).Seconds())

	s.recordSnapshot(&result, len(env), time.Since(started))

	s.app.Logger.Info("package pruned",
		"run_id", result.RunID,
		"modules", result.ModulesAnalyzed,
		"dropped_implicit", result.DroppedImplicit,
		"dropped_qualified", result.DroppedQualified,
		"unknown_skipped", result.UnknownSkipped,
	)
	return result, nil
}

// pruneAll fans the per-module analysis out over a bounded worker pool. The
// environment is shared read-only; module verdicts are independent, so no
// ordering is needed beyond the final sort.
func (s *pruneService) pruneAll(ctx context.Context, env symbols.Environment, targets []*lang.Module) ([]ports.ModuleResult, error) {
	workers := s.app.Config.Analysis.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(targets) {
		workers = len(targets)
	}
	if workers == 0 {
		return nil, nil
	}

	jobs := make(chan *lang.Module)
	results := make([]ports.ModuleResult, 0, len(targets))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for mod := range jobs {
				mr := s.pruneOne(env, mod)
				mu.Lock()
				results = append(results, mr)
				mu.Unlock()
			}
		}()
	}

	var dispatchErr error
	for _, mod := range targets {
		if s.app.limiter != nil {
			if err := s.app.limiter.Wait(ctx, 1); err != nil {
				dispatchErr = err
				break
			}
		}
		select {
		case <-ctx.Done():
			dispatchErr = ctx.Err()
		case jobs <- mod:
			continue
		}
		break
	}
	close(jobs)
	wg.Wait()

	if dispatchErr != nil {
		return nil, dispatchErr
	}
	return results, nil
}

func (s *pruneService) pruneOne(env symbols.Environment, mod *lang.Module) ports.ModuleResult {
	if s.app.excluded(string(mod.Name)) {
		// Excluded modules keep their import list verbatim.
		return ports.ModuleResult{
			Module:   mod.Name,
			Imports:  mod.Imports,
			Excluded: true,
		}
	}

	res := liveness.PruneModule(env, mod)
	return ports.ModuleResult{
		Module:         res.Module,
		Imports:        res.Imports,
		Dropped:        res.Dropped,
		UnknownSkipped: res.UnknownSkipped,
	}
}

func (s *pruneService) recordSnapshot(result *ports.PruneResult, envModules int, elapsed time.Duration) {
	if s.app.history == nil {
		return
	}
	snap := history.Snapshot{
		RunID:                result.RunID,
		Timestamp:            time.Now().UTC(),
		ModuleCount:          result.ModulesAnalyzed,
		ImportCount:          result.ImportsSeen,
		UnusedImplicitCount:  result.DroppedImplicit,
		UnusedQualifiedCount: result.DroppedQualified,
		UnknownSkippedCount:  result.UnknownSkipped,
		EnvironmentModules:   envModules,
		DurationMilliseconds: elapsed.Milliseconds(),
	}
	if err := s.app.history.SaveSnapshot(s.app.Config.Project.Key, snap); err != nil {
		s.app.Logger.Warn("history snapshot failed", "error", err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("save history snapshot: %v", err))
	}
}
