package lang

// Occurrence is one identifier use-site after name resolution. It either
// resolved to a global symbol or to a local binding (let, pattern, parameter).
// Occurrences are never mutated by the analysis.
type Occurrence struct {
	Name      Name
	Qualifier ModuleName // qualifier exactly as written at the use site, "" when unqualified
	Local     bool
	Symbol    Symbol // valid only when !Local
}

// Global returns the resolved symbol for a non-local occurrence.
func (o Occurrence) Global() (Symbol, bool) {
	if o.Local {
		return Symbol{}, false
	}
	return o.Symbol, true
}

// GlobalOccurrence builds an occurrence resolved to sym, written with the
// given qualifier prefix.
func GlobalOccurrence(qualifier ModuleName, sym Symbol) Occurrence {
	return Occurrence{Name: sym.Name, Qualifier: qualifier, Symbol: sym}
}

// LocalOccurrence builds an occurrence resolved to a non-imported binding.
func LocalOccurrence(name Name) Occurrence {
	return Occurrence{Name: name, Local: true}
}
