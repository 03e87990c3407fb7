package lang

type SymbolKind int

const (
	KindValue SymbolKind = iota
	KindType
	KindConstructor
	KindField
)

func (k SymbolKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindType:
		return "type"
	case KindConstructor:
		return "constructor"
	case KindField:
		return "field"
	default:
		return "unknown"
	}
}

// HasParentType reports whether the kind is tied to a parent type
// declaration (constructors and field accessors).
func (k SymbolKind) HasParentType() bool {
	return k == KindConstructor || k == KindField
}

// Symbol is an entity published by some module. Module is always the module
// that originally declared the entity, never a re-exporting one. Two symbols
// are equal iff all fields match, so plain == is the identity test.
type Symbol struct {
	Module ModuleName
	Name   Name
	Kind   SymbolKind
	Parent Name // parent type name, set only when Kind.HasParentType()
}

// SameFamily reports whether both symbols are constructors or field
// accessors of the same type in the same defining module. Such declarations
// are conventionally imported as a unit: a reference to any one of them
// counts as a use of the others.
func (s Symbol) SameFamily(other Symbol) bool {
	return s.Kind.HasParentType() && other.Kind.HasParentType() &&
		s.Module == other.Module && s.Parent == other.Parent
}

// TypeLinked extends SameFamily with the parent type itself: a constructor
// or accessor is linked to the type symbol it belongs to.
func TypeLinked(a, b Symbol) bool {
	if a.Module != b.Module {
		return false
	}
	switch {
	case a.Kind.HasParentType() && b.Kind.HasParentType():
		return a.Parent == b.Parent
	case a.Kind.HasParentType() && b.Kind == KindType:
		return a.Parent == b.Name
	case b.Kind.HasParentType() && a.Kind == KindType:
		return b.Parent == a.Name
	default:
		return false
	}
}

// SameLocal compares everything except the defining module. This is the
// loose match used for names listed in hiding clauses, where the body may
// resolve the same name to a different module's entity.
func (s Symbol) SameLocal(other Symbol) bool {
	return s.Name == other.Name && s.Kind == other.Kind && s.Parent == other.Parent
}
