// Package importprune decides which import declarations of an annotated,
// name-resolved module package are dead and returns the pruned import lists.
// Parsing, name resolution and file rewriting are external collaborators;
// this package only re-exports the analysis surface from internal.
package importprune

import (
	"log/slog"

	"importprune/internal/core/app"
	"importprune/internal/core/config"
	"importprune/internal/core/ports"
	"importprune/internal/engine/liveness"
	"importprune/internal/engine/symbols"
	"importprune/internal/lang"
)

// Language model handed over by the parser/resolver collaborator.
type (
	ModuleName = lang.ModuleName
	Name       = lang.Name
	Symbol     = lang.Symbol
	SymbolKind = lang.SymbolKind
	ImportDecl = lang.ImportDecl
	Occurrence = lang.Occurrence
	Module     = lang.Module
	Decl       = lang.Decl
)

const (
	KindValue       = lang.KindValue
	KindType        = lang.KindType
	KindConstructor = lang.KindConstructor
	KindField       = lang.KindField
)

const (
	QualOpen      = lang.QualOpen
	QualQualified = lang.QualQualified
	QualAliased   = lang.QualAliased
)

const (
	SelectImplicit = lang.SelectImplicit
	SelectOnly     = lang.SelectOnly
	SelectHiding   = lang.SelectHiding
)

// Engine surface for callers that drive the analysis themselves.
type (
	Environment = symbols.Environment
	Table       = symbols.Table
	ResolveFunc = symbols.ResolveFunc
	PruneOutput = liveness.Result
)

var (
	BuildEnvironment = symbols.BuildEnvironment
	PruneModule      = liveness.PruneModule
)

// Service surface for callers that want config, metrics and history wired.
type (
	Config       = config.Config
	PruneService = ports.PruneService
	PruneRequest = ports.PruneRequest
	PruneResult  = ports.PruneResult
)

var (
	DefaultConfig = config.Default
	LoadConfig    = config.Load
)

// NewService builds the orchestrating analysis service around the injected
// resolver primitive.
func NewService(cfg *Config, logger *slog.Logger, resolve ResolveFunc) (PruneService, error) {
	a, err := app.New(cfg, logger, resolve)
	if err != nil {
		return nil, err
	}
	return a.PruneService(), nil
}
