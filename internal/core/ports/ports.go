package ports

import (
	"context"
	"time"

	"importprune/internal/data/history"
	"importprune/internal/engine/liveness"
	"importprune/internal/lang"
)

// PruneService is the driving port for whole-package dead-import analysis.
type PruneService interface {
	PrunePackage(ctx context.Context, req PruneRequest) (PruneResult, error)
	Close(ctx context.Context) error
}

// HistoryStore abstracts snapshot persistence for trend/report workflows.
type HistoryStore interface {
	SaveSnapshot(projectKey string, snapshot history.Snapshot) error
	LoadSnapshots(projectKey string, since time.Time) ([]history.Snapshot, error)
}

// PruneRequest carries one package: the modules forming its public surface
// and its internal-only modules. Both sets are analyzed; only the exposed
// ones end up as environment keys.
type PruneRequest struct {
	Exposed  []*lang.Module
	Internal []*lang.Module
}

// ModuleResult is the final import list for one module plus removal details.
type ModuleResult struct {
	Module         lang.ModuleName
	Imports        []lang.ImportDecl
	Dropped        []liveness.Finding
	UnknownSkipped int
	Excluded       bool
}

// PruneResult summarizes a completed package analysis.
type PruneResult struct {
	RunID            string
	ModulesAnalyzed  int
	ModulesExcluded  int
	ImportsSeen      int
	DroppedImplicit  int
	DroppedQualified int
	UnknownSkipped   int
	Modules          []ModuleResult
	Warnings         []string
}
