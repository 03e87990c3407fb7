// Package liveness decides which import declarations of a module are dead.
// All predicates scan the module's resolved occurrence annotations; they are
// total functions over well-formed input and never fail. The only fallible
// stage of the analysis is environment construction in the symbols package.
package liveness

import "importprune/internal/lang"

// SymbolUsed reports whether sym is referenced by any global occurrence.
// Besides direct matches, a reference to any constructor or field accessor
// of the same type in the same defining module counts: those declarations
// travel together on an import line, and dropping one because a sibling was
// the one referenced would break the module.
func SymbolUsed(sym lang.Symbol, occurrences []lang.Occurrence) bool {
	for _, occ := range occurrences {
		g, ok := occ.Global()
		if !ok {
			continue
		}
		if g == sym || sym.SameFamily(g) {
			return true
		}
	}
	return false
}

// QualifierUsed reports whether any global occurrence was written with the
// given qualifier prefix. The match is purely syntactic: it does not matter
// which module the qualifier resolves to, only that the prefix is exercised.
func QualifierUsed(qualifier lang.ModuleName, occurrences []lang.Occurrence) bool {
	for _, occ := range occurrences {
		if _, ok := occ.Global(); !ok {
			continue
		}
		if occ.Qualifier == qualifier {
			return true
		}
	}
	return false
}

// HiddenNameUsed is SymbolUsed's direct-match rule with the defining module
// ignored on both sides. A name in a hiding clause may resolve, in the body,
// to a different module's entity of the same name; the loose comparison
// catches that. See DESIGN.md: the removal policy for hiding clauses is
// still open, so nothing in the filter chain calls this yet.
func HiddenNameUsed(sym lang.Symbol, occurrences []lang.Occurrence) bool {
	for _, occ := range occurrences {
		g, ok := occ.Global()
		if !ok {
			continue
		}
		if g.SameLocal(sym) {
			return true
		}
	}
	return false
}
