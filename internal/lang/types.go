package lang

// ModuleName identifies a compilation unit. Names are opaque but totally
// ordered by their string form.
type ModuleName string

// Name is a locally visible identifier within a module.
type Name string

type Qualification int

const (
	QualOpen Qualification = iota
	QualQualified
	QualAliased
)

type SelectorMode int

const (
	SelectImplicit SelectorMode = iota // bring every exposed name into scope
	SelectOnly                         // explicit only-list
	SelectHiding                       // everything except the listed names
)

type ImportDecl struct {
	Module        ModuleName
	Qualification Qualification
	Alias         ModuleName // set only for QualAliased
	Selector      SelectorMode
	Names         []Name // selector name list for SelectOnly / SelectHiding
}

// IsImplicit reports whether the import has no explicit name list. Only
// implicit imports are eligible for whole-import removal.
func (d ImportDecl) IsImplicit() bool {
	return d.Selector == SelectImplicit
}

// QualifierName returns the prefix required to reference names from a
// qualified import: the alias when one was written, the module name otherwise.
func (d ImportDecl) QualifierName() ModuleName {
	if d.Qualification == QualAliased {
		return d.Alias
	}
	return d.Module
}

// Decl is a top-level declaration as handed over by the parser. The core
// never inspects declarations itself; they exist for the resolver primitive
// to build export tables from.
type Decl struct {
	Name   Name
	Kind   SymbolKind
	Parent Name // parent type for constructors and field accessors
}

// Module is one annotated compilation unit. Occurrences carry the
// name-resolution verdicts for every identifier use in the module body and
// are read-only evidence for the liveness analysis.
type Module struct {
	Name        ModuleName
	Imports     []ImportDecl
	Decls       []Decl
	Occurrences []Occurrence
}
