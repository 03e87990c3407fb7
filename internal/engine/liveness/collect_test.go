package liveness

import (
	"reflect"
	"testing"

	"importprune/internal/engine/symbols"
	"importprune/internal/lang"
)

func tableOf(syms ...lang.Symbol) symbols.Table {
	table := make(symbols.Table)
	for _, sym := range syms {
		table.Add(sym)
	}
	return table
}

func usedBy(occs []lang.Occurrence) UsedFunc {
	return func(sym lang.Symbol) bool { return SymbolUsed(sym, occs) }
}

func TestUnusedSymbols(t *testing.T) {
	sort := value("Data.List", "sort")
	nub := value("Data.List", "nub")
	table := tableOf(sort, nub)
	occs := []lang.Occurrence{use(sort)}

	got := UnusedSymbols(usedBy(occs), table)
	if !reflect.DeepEqual(got, []lang.Symbol{nub}) {
		t.Fatalf("expected only nub unused, got %v", got)
	}
}

func TestUnusedSymbols_AmbiguousCandidates(t *testing.T) {
	listSort := value("Data.List", "sort")
	nonEmptySort := value("Data.List.NonEmpty", "sort")
	table := tableOf(listSort, nonEmptySort)
	occs := []lang.Occurrence{use(listSort)}

	got := UnusedSymbols(usedBy(occs), table)
	if !reflect.DeepEqual(got, []lang.Symbol{nonEmptySort}) {
		t.Fatalf("each candidate under an ambiguous name is judged separately, got %v", got)
	}
}

func TestUnusedImplicitImports_Conservatism(t *testing.T) {
	a := value("M", "a")
	b := value("M", "b")
	env := symbols.Environment{"M": tableOf(a, b)}
	imports := []lang.ImportDecl{{Module: "M"}}

	// Only b is referenced; the import still brings in a live symbol.
	occs := []lang.Occurrence{use(b)}
	if got := UnusedImplicitImports(usedBy(occs), env, imports); len(got) != 0 {
		t.Fatalf("an import with any live symbol must not be reported, got %v", got)
	}

	// Nothing referenced at all: now the import is dead.
	got := UnusedImplicitImports(usedBy(nil), env, imports)
	if !reflect.DeepEqual(got, []lang.ModuleName{"M"}) {
		t.Fatalf("fully dead implicit import must be reported, got %v", got)
	}
}

func TestUnusedImplicitImports_SkipsExplicitSelectors(t *testing.T) {
	env := symbols.Environment{"M": tableOf(value("M", "a"))}
	imports := []lang.ImportDecl{
		{Module: "M", Selector: lang.SelectOnly, Names: []lang.Name{"a"}},
		{Module: "M", Selector: lang.SelectHiding, Names: []lang.Name{"a"}},
	}

	if got := UnusedImplicitImports(usedBy(nil), env, imports); len(got) != 0 {
		t.Fatalf("explicit-selector imports are never whole-import candidates, got %v", got)
	}
}

func TestUnusedImplicitImports_SkipsUnknownModules(t *testing.T) {
	env := symbols.Environment{}
	imports := []lang.ImportDecl{{Module: "External.Dependency"}}

	if got := UnusedImplicitImports(usedBy(nil), env, imports); len(got) != 0 {
		t.Fatalf("unknown modules must never be reported, got %v", got)
	}
}

func TestKnownImport(t *testing.T) {
	env := symbols.Environment{"M": tableOf(value("M", "a"))}
	if !KnownImport(env, lang.ImportDecl{Module: "M"}) {
		t.Error("expected M to be known")
	}
	if KnownImport(env, lang.ImportDecl{Module: "N"}) {
		t.Error("expected N to be unknown")
	}
}
