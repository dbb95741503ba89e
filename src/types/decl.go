package types

// ClassInfo is the registry's record for a declared class: its fields
// in declared order, an optional superclass name, and whether it is
// move-only (spec §3 "Named declarations").
type ClassInfo struct {
	Name       string
	Fields     []FieldInfo
	Superclass string // "" when none
	MoveOnly   bool
}

// FieldInfo is one field of a class, in declared order (declared
// order matters for struct layout, spec §4.2 "Size & alignment").
type FieldInfo struct {
	Name string
	Type Type
}

// TraitInfo is the registry's record for a declared trait: its name
// and the declared signature of each method (spec §3).
type TraitInfo struct {
	Name    string
	Methods map[string]*Function
}

// TraitImpl records that a concrete target type implements a named
// trait with concrete (possibly substituted) method signatures (spec
// §3).
type TraitImpl struct {
	TraitName string
	Target    Type
	Methods   map[string]*Function
}

// GenericDecl is the registry's record for a generic declaration: the
// constructor name, its ordered type parameters (with bounds), and
// the term it expands to (spec §3).
type GenericDecl struct {
	Constructor string
	Params      []TypeParameter
	Definition  Type
}
