package liveness

import (
	"reflect"
	"testing"

	"importprune/internal/engine/symbols"
	"importprune/internal/lang"
)

func TestDropImplicitImports(t *testing.T) {
	imports := []lang.ImportDecl{
		{Module: "Dead"},
		{Module: "Live"},
		{Module: "Dead", Selector: lang.SelectOnly, Names: []lang.Name{"x"}},
	}

	got := DropImplicitImports([]lang.ModuleName{"Dead"}, imports)
	want := []lang.ImportDecl{
		{Module: "Live"},
		{Module: "Dead", Selector: lang.SelectOnly, Names: []lang.Name{"x"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestUsedQualifiers(t *testing.T) {
	imports := []lang.ImportDecl{
		{Module: "Data.Map", Qualification: lang.QualAliased, Alias: "Map"},
		{Module: "Data.Set", Qualification: lang.QualQualified},
		{Module: "Data.Text", Qualification: lang.QualAliased, Alias: "T",
			Selector: lang.SelectOnly, Names: []lang.Name{"pack"}},
		{Module: "Data.List"}, // open import, never a candidate
	}
	occs := []lang.Occurrence{
		lang.GlobalOccurrence("Map", value("Data.Map", "insert")),
		lang.GlobalOccurrence("Data.Set", value("Data.Set", "member")),
		lang.GlobalOccurrence("T", value("Data.Text", "pack")),
	}

	got := UsedQualifiers(imports, occs)
	// T comes from an explicit-list import, so it is not a candidate even
	// though the prefix is written in the body.
	want := []lang.ModuleName{"Map", "Data.Set"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestQualifiedImportNeeded(t *testing.T) {
	usedQuals := map[lang.ModuleName]bool{"Map": true, "Data.Set": true}

	tests := []struct {
		name string
		decl lang.ImportDecl
		want bool
	}{
		{
			name: "aliased with used alias",
			decl: lang.ImportDecl{Module: "Data.Map", Qualification: lang.QualAliased, Alias: "Map"},
			want: true,
		},
		{
			name: "aliased with dead alias",
			decl: lang.ImportDecl{Module: "Data.IntMap", Qualification: lang.QualAliased, Alias: "IM"},
			want: false,
		},
		{
			name: "aliased dead but explicit selector",
			decl: lang.ImportDecl{Module: "Data.IntMap", Qualification: lang.QualAliased, Alias: "IM",
				Selector: lang.SelectOnly, Names: []lang.Name{"empty"}},
			want: true,
		},
		{
			name: "qualified with used module name",
			decl: lang.ImportDecl{Module: "Data.Set", Qualification: lang.QualQualified},
			want: true,
		},
		{
			name: "qualified with dead module name",
			decl: lang.ImportDecl{Module: "Data.Char", Qualification: lang.QualQualified},
			want: false,
		},
		{
			name: "open imports are never removed here",
			decl: lang.ImportDecl{Module: "Data.Char", Qualification: lang.QualOpen},
			want: true,
		},
	}

	for _, tc := range tests {
		if got := qualifiedImportNeeded(usedQuals, tc.decl); got != tc.want {
			t.Errorf("%s: qualifiedImportNeeded = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDropUnusedQualifiedImports_UnknownModuleSurvives(t *testing.T) {
	env := symbols.Environment{}
	imports := []lang.ImportDecl{
		{Module: "External.Thing", Qualification: lang.QualAliased, Alias: "X"},
	}

	got := DropUnusedQualifiedImports(env, imports, nil)
	if !reflect.DeepEqual(got, imports) {
		t.Fatalf("imports of unknown modules must pass through unchanged, got %v", got)
	}
}

func TestDropUnusedQualifiedImports_RoundTrip(t *testing.T) {
	insert := value("Data.Map", "insert")
	env := symbols.Environment{"Data.Map": tableOf(insert)}
	imports := []lang.ImportDecl{
		{Module: "Data.Map", Qualification: lang.QualAliased, Alias: "Map"},
	}

	withUse := []lang.Occurrence{lang.GlobalOccurrence("Map", insert)}
	if got := DropUnusedQualifiedImports(env, imports, withUse); len(got) != 1 {
		t.Fatal("import with exercised qualifier must be retained")
	}

	// Same module, occurrences gone: the verdict flips.
	if got := DropUnusedQualifiedImports(env, imports, nil); len(got) != 0 {
		t.Fatalf("import with dead qualifier must be removed, got %v", got)
	}
}
