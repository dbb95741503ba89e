package predicates

import (
	"github.com/tafolabi009/TocinLang/src/registry"
	"github.com/tafolabi009/TocinLang/src/types"
)

// resourcePrimitives are the known resource type names that are never
// copyable, hard-coded exactly as the distillation source does (spec
// §4.2 "known resource primitive"; original_source's isCopyable names
// these same four).
var resourcePrimitives = map[string]bool{
	"File":   true,
	"Socket": true,
	"Mutex":  true,
	"Thread": true,
}

// Copyable reports whether a value of term t may be implicitly
// copied. False for unique pointers, move-only classes, and the
// known resource primitives (spec §4.2 "Copyable / movable").
func Copyable(r *registry.Registry, t types.Type) bool {
	switch t := t.(type) {
	case *types.Pointer:
		return !t.Unique
	case *types.Class:
		if resourcePrimitives[t.Name] {
			return false
		}
		if info, ok := r.GetClassInfo(t.Name); ok && info.MoveOnly {
			return false
		}
		return true
	default:
		return true
	}
}

// Movable is unconditionally true: every term is movable (spec §4.2).
func Movable(types.Type) bool { return true }

// Nullable reports whether t is nullable at the type level: exactly
// pointer terms. Option-wrapped terms are a distinct, name-checked
// concept, not nullability (spec §4.2 "Nullable").
func Nullable(t types.Type) bool {
	_, ok := t.(*types.Pointer)
	return ok
}

// IsOption reports whether t is the Option<_> generic wrapper,
// checked by constructor name as spec §4.2 requires ("distinct and
// checked by name").
func IsOption(t types.Type) bool {
	g, ok := t.(*types.Generic)
	return ok && g.Constructor == types.ConstructorOption
}
