package symbols

import (
	"importprune/internal/lang"
	"importprune/internal/shared/util"
)

// Table maps a locally visible name to the set of symbols it denotes. A name
// maps to more than one symbol when ambiguous re-exports collide; predicates
// must handle the full candidate set and never assume uniqueness.
type Table map[lang.Name][]lang.Symbol

// Add appends a candidate symbol under its local name.
func (t Table) Add(sym lang.Symbol) {
	t[sym.Name] = append(t[sym.Name], sym)
}

// Symbols flattens the table into a slice, ordered by name so results are
// deterministic regardless of map iteration order.
func (t Table) Symbols() []lang.Symbol {
	out := make([]lang.Symbol, 0, len(t))
	for _, name := range util.SortedKeys(t) {
		out = append(out, t[name]...)
	}
	return out
}

// Restrict returns a copy of the table limited to the given names.
func (t Table) Restrict(names []lang.Name) Table {
	keep := make(map[lang.Name]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	out := make(Table, len(names))
	for name, syms := range t {
		if keep[name] {
			out[name] = syms
		}
	}
	return out
}

// Without returns a copy of the table with the given names removed.
func (t Table) Without(names []lang.Name) Table {
	drop := make(map[lang.Name]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	out := make(Table, len(t))
	for name, syms := range t {
		if drop[name] {
			continue
		}
		out[name] = syms
	}
	return out
}

// TableForImport derives the symbol table one import declaration brings into
// scope from the environment entry of its referenced module. The second
// return is false when the module is unknown to the environment, in which
// case no removal decision may be taken for the import.
func TableForImport(env Environment, decl lang.ImportDecl) (Table, bool) {
	base, ok := env[decl.Module]
	if !ok {
		return nil, false
	}
	switch decl.Selector {
	case lang.SelectOnly:
		return base.Restrict(decl.Names), true
	case lang.SelectHiding:
		return base.Without(decl.Names), true
	default:
		return base, true
	}
}
