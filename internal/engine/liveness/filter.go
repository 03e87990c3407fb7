package liveness

import (
	"importprune/internal/engine/symbols"
	"importprune/internal/lang"
)

// DropImplicitImports removes an import iff it is implicit and its module is
// in unusedNames. Explicit-selector imports and live implicit imports pass
// through unchanged.
func DropImplicitImports(unusedNames []lang.ModuleName, imports []lang.ImportDecl) []lang.ImportDecl {
	dead := make(map[lang.ModuleName]bool, len(unusedNames))
	for _, name := range unusedNames {
		dead[name] = true
	}

	kept := make([]lang.ImportDecl, 0, len(imports))
	for _, decl := range imports {
		if decl.IsImplicit() && dead[decl.Module] {
			continue
		}
		kept = append(kept, decl)
	}
	return kept
}

// UsedQualifiers returns the qualifier prefixes that are both introduced by
// some qualified implicit import and exercised by at least one occurrence.
// Explicit-list qualified imports contribute no candidates: their contents
// are already controlled and the import stays regardless.
func UsedQualifiers(imports []lang.ImportDecl, occurrences []lang.Occurrence) []lang.ModuleName {
	used := make([]lang.ModuleName, 0)
	seen := make(map[lang.ModuleName]bool)
	for _, decl := range imports {
		if decl.Qualification == lang.QualOpen || !decl.IsImplicit() {
			continue
		}
		qualifier := decl.QualifierName()
		if seen[qualifier] {
			continue
		}
		seen[qualifier] = true
		if QualifierUsed(qualifier, occurrences) {
			used = append(used, qualifier)
		}
	}
	return used
}

// qualifiedImportNeeded decides retention for one declaration given the set
// of exercised qualifiers. Explicit selectors are authoritative and always
// kept; open imports are never removed here, the implicit-import path owns
// them.
func qualifiedImportNeeded(usedQuals map[lang.ModuleName]bool, decl lang.ImportDecl) bool {
	switch decl.Qualification {
	case lang.QualAliased:
		return !decl.IsImplicit() || usedQuals[decl.Alias]
	case lang.QualQualified:
		return !decl.IsImplicit() || usedQuals[decl.Module]
	default:
		return true
	}
}

// DropUnusedQualifiedImports removes qualified implicit imports whose
// qualifier is never written in the module body. Imports of modules unknown
// to the environment are kept untouched.
func DropUnusedQualifiedImports(env symbols.Environment, imports []lang.ImportDecl, occurrences []lang.Occurrence) []lang.ImportDecl {
	usedQuals := make(map[lang.ModuleName]bool)
	for _, q := range UsedQualifiers(imports, occurrences) {
		usedQuals[q] = true
	}

	kept := make([]lang.ImportDecl, 0, len(imports))
	for _, decl := range imports {
		if !KnownImport(env, decl) {
			kept = append(kept, decl)
			continue
		}
		if qualifiedImportNeeded(usedQuals, decl) {
			kept = append(kept, decl)
		}
	}
	return kept
}
