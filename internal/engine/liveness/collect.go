package liveness

import (
	"importprune/internal/engine/symbols"
	"importprune/internal/lang"
)

// UsedFunc is the usage verdict for one symbol, typically a closure over a
// module's occurrence list.
type UsedFunc func(lang.Symbol) bool

// UnusedSymbols returns every candidate symbol in the table for which used
// is false. Names mapping to several candidates are checked per candidate.
func UnusedSymbols(used UsedFunc, table symbols.Table) []lang.Symbol {
	unused := make([]lang.Symbol, 0)
	for _, sym := range table.Symbols() {
		if !used(sym) {
			unused = append(unused, sym)
		}
	}
	return unused
}

// UnusedImplicitImports reports the modules of implicit imports whose entire
// symbol table is dead. A single live symbol keeps the whole import: only an
// import that contributes nothing at all may be removed outright. Imports of
// modules unknown to the environment are skipped, never reported.
func UnusedImplicitImports(used UsedFunc, env symbols.Environment, imports []lang.ImportDecl) []lang.ModuleName {
	unused := make([]lang.ModuleName, 0)
	for _, decl := range imports {
		if !decl.IsImplicit() {
			continue
		}
		table, ok := symbols.TableForImport(env, decl)
		if !ok {
			continue
		}
		if len(UnusedSymbols(used, table)) == len(table.Symbols()) {
			unused = append(unused, decl.Module)
		}
	}
	return unused
}

// KnownImport reports whether the environment has information about the
// import's module. It guards every removal decision.
func KnownImport(env symbols.Environment, decl lang.ImportDecl) bool {
	return env.Known(decl.Module)
}
