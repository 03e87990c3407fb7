package liveness

import (
	"testing"

	"importprune/internal/lang"
)

func value(module lang.ModuleName, name lang.Name) lang.Symbol {
	return lang.Symbol{Module: module, Name: name, Kind: lang.KindValue}
}

func ctor(module lang.ModuleName, name, parent lang.Name) lang.Symbol {
	return lang.Symbol{Module: module, Name: name, Kind: lang.KindConstructor, Parent: parent}
}

func field(module lang.ModuleName, name, parent lang.Name) lang.Symbol {
	return lang.Symbol{Module: module, Name: name, Kind: lang.KindField, Parent: parent}
}

func use(sym lang.Symbol) lang.Occurrence {
	return lang.GlobalOccurrence("", sym)
}

func TestSymbolUsed_Direct(t *testing.T) {
	sort := value("Data.List", "sort")
	occs := []lang.Occurrence{
		lang.LocalOccurrence("xs"),
		use(sort),
	}

	if !SymbolUsed(sort, occs) {
		t.Error("directly referenced symbol must be used")
	}
	if SymbolUsed(value("Data.List", "sortBy"), occs) {
		t.Error("unreferenced symbol must not be used")
	}
}

func TestSymbolUsed_LocalOccurrencesAreNotEvidence(t *testing.T) {
	shadow := value("Data.List", "sort")
	occs := []lang.Occurrence{lang.LocalOccurrence("sort")}

	if SymbolUsed(shadow, occs) {
		t.Error("a local binding of the same name is not a use of the global")
	}
}

func TestSymbolUsed_TypeFamily(t *testing.T) {
	just := ctor("Data.Maybe", "Just", "Maybe")
	nothing := ctor("Data.Maybe", "Nothing", "Maybe")
	accessor := field("Data.Maybe", "fromJust", "Maybe")
	occs := []lang.Occurrence{use(nothing)}

	// Referencing Nothing keeps every constructor/accessor of Maybe alive.
	if !SymbolUsed(just, occs) {
		t.Error("sibling constructor must count as used via the type family")
	}
	if !SymbolUsed(accessor, occs) {
		t.Error("field accessor of the same type must count as used")
	}

	otherModule := ctor("My.Maybe", "Just", "Maybe")
	if SymbolUsed(otherModule, occs) {
		t.Error("type family must not cross module boundaries")
	}
	otherType := ctor("Data.Maybe", "Left", "Either")
	if SymbolUsed(otherType, occs) {
		t.Error("type family must not cross parent types")
	}
}

func TestSymbolUsed_ValueNotPulledInByFamily(t *testing.T) {
	helper := value("Data.Maybe", "maybe")
	occs := []lang.Occurrence{use(ctor("Data.Maybe", "Just", "Maybe"))}

	if SymbolUsed(helper, occs) {
		t.Error("plain values do not belong to a constructor family")
	}
}

func TestQualifierUsed(t *testing.T) {
	insert := value("Data.Map", "insert")
	occs := []lang.Occurrence{
		lang.GlobalOccurrence("Map", insert),
		use(value("Data.List", "sort")),
	}

	if !QualifierUsed("Map", occs) {
		t.Error("written qualifier must be detected")
	}
	if QualifierUsed("Data.Map", occs) {
		t.Error("match is on the prefix as written, not on the resolved module")
	}
	if QualifierUsed("Set", occs) {
		t.Error("unexercised qualifier must not be detected")
	}
}

func TestQualifierUsed_IgnoresLocals(t *testing.T) {
	occs := []lang.Occurrence{{Name: "x", Qualifier: "Map", Local: true}}
	if QualifierUsed("Map", occs) {
		t.Error("local occurrences are not evidence for qualifier use")
	}
}

func TestHiddenNameUsed(t *testing.T) {
	hidden := value("Prelude", "lookup")
	occs := []lang.Occurrence{use(value("Data.Map", "lookup"))}

	// Name-only match: the body resolves lookup to Data.Map, but the hidden
	// Prelude name still counts as exercised under the loose rule.
	if !HiddenNameUsed(hidden, occs) {
		t.Error("name-only match must ignore the defining module")
	}
	if HiddenNameUsed(value("Prelude", "filter"), occs) {
		t.Error("different names must not match")
	}
	if HiddenNameUsed(lang.Symbol{Module: "Prelude", Name: "lookup", Kind: lang.KindType}, occs) {
		t.Error("kind still participates in the loose match")
	}
}
