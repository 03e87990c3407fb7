package liveness

import (
	"importprune/internal/engine/symbols"
	"importprune/internal/lang"
)

type DropReason string

const (
	ReasonUnusedImplicit  DropReason = "unused_implicit"
	ReasonUnusedQualifier DropReason = "unused_qualifier"
)

// Finding records one removed import together with why it was removed.
type Finding struct {
	Import lang.ImportDecl
	Reason DropReason
}

// Result is the final verdict for one module: the surviving import list plus
// removal findings. The import list is handed back to the external rewriting
// layer as-is; there is no advisory output format.
type Result struct {
	Module         lang.ModuleName
	Imports        []lang.ImportDecl
	Dropped        []Finding
	UnknownSkipped int
}

// PruneModule runs the full per-module pipeline: dead implicit imports
// first, then qualified imports with dead qualifiers. The environment is
// read-only; modules can be pruned concurrently against a shared one.
//
// The pipeline is subtractive, so running it again on its own output with
// the same occurrences yields an identical list.
func PruneModule(env symbols.Environment, mod *lang.Module) Result {
	used := func(sym lang.Symbol) bool {
		return SymbolUsed(sym, mod.Occurrences)
	}

	unusedNames := UnusedImplicitImports(used, env, mod.Imports)
	afterImplicit := DropImplicitImports(unusedNames, mod.Imports)
	final := DropUnusedQualifiedImports(env, afterImplicit, mod.Occurrences)

	result := Result{
		Module:  mod.Name,
		Imports: final,
		Dropped: make([]Finding, 0),
	}
	for _, decl := range mod.Imports {
		if !KnownImport(env, decl) {
			result.UnknownSkipped++
		}
	}
	for _, decl := range diffImports(mod.Imports, afterImplicit) {
		result.Dropped = append(result.Dropped, Finding{Import: decl, Reason: ReasonUnusedImplicit})
	}
	for _, decl := range diffImports(afterImplicit, final) {
		result.Dropped = append(result.Dropped, Finding{Import: decl, Reason: ReasonUnusedQualifier})
	}
	return result
}

// diffImports returns the declarations present in before but not in after,
// respecting multiplicity. Both slices preserve the original declaration
// order, so a single forward walk suffices.
func diffImports(before, after []lang.ImportDecl) []lang.ImportDecl {
	removed := make([]lang.ImportDecl, 0)
	i := 0
	for _, decl := range before {
		if i < len(after) && sameDecl(decl, after[i]) {
			i++
			continue
		}
		removed = append(removed, decl)
	}
	return removed
}

func sameDecl(a, b lang.ImportDecl) bool {
	if a.Module != b.Module || a.Qualification != b.Qualification ||
		a.Alias != b.Alias || a.Selector != b.Selector || len(a.Names) != len(b.Names) {
		return false
	}
	for i := range a.Names {
		if a.Names[i] != b.Names[i] {
			return false
		}
	}
	return true
}
