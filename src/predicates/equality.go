// Package predicates implements the structural predicates (spec
// §4.2): equality, subtyping, size/alignment, copyability, and
// nullability. These are pure, decidable questions over a pair of
// type terms, independent of the variable environment; the only
// registry access is for nominal lookups (class chains, trait impls).
package predicates

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/tafolabi009/TocinLang/src/common"
	"github.com/tafolabi009/TocinLang/src/registry"
	"github.com/tafolabi009/TocinLang/src/types"
)

const DebugPredicates = false

func predicatesPrintf(format string, args ...interface{}) {
	if DebugPredicates {
		fmt.Printf(format, args...)
	}
}

// Equal reports structural, deep equality (spec §4.2 "Equality"):
// same variant, pairwise-equal constituent attributes. Null-term
// handling: two nulls are equal; one null and one non-null are not.
func Equal(a, b types.Type) bool {
	if _, aNull := a.(*types.NullType); aNull {
		_, bNull := b.(*types.NullType)
		return bNull
	}
	if _, bNull := b.(*types.NullType); bNull {
		return false
	}

	switch a := a.(type) {
	case *types.Basic:
		b, ok := b.(*types.Basic)
		return ok && a.Kind == b.Kind
	case *types.Class:
		b, ok := b.(*types.Class)
		return ok && a.Name == b.Name
	case *types.Trait:
		b, ok := b.(*types.Trait)
		return ok && a.Name == b.Name
	case *types.Variable:
		b, ok := b.(*types.Variable)
		return ok && a.Name == b.Name
	case *types.Pointer:
		b, ok := b.(*types.Pointer)
		return ok && a.Unique == b.Unique && Equal(a.Elem, b.Elem)
	case *types.Reference:
		b, ok := b.(*types.Reference)
		return ok && a.Mutable == b.Mutable && Equal(a.Elem, b.Elem)
	case *types.Array:
		b, ok := b.(*types.Array)
		return ok && a.Length == b.Length && Equal(a.Elem, b.Elem)
	case *types.Function:
		b, ok := b.(*types.Function)
		if !ok || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !Equal(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return Equal(a.Return, b.Return)
	case *types.Generic:
		b, ok := b.(*types.Generic)
		if !ok || a.Constructor != b.Constructor || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	default:
		spew.Dump(a, b)
		panic("unreachable")
	}
}

// ClassChain walks a class's superclass chain via the registry,
// starting at name itself, until it reaches a class with no
// superclass. It is exported so both Subtype (rule 3) and callers
// checking transitivity directly (spec §8 "Subtyping transitivity on
// classes") can reuse it without re-deriving the walk.
func ClassChain(r *registry.Registry, name string) []string {
	var chain []string
	seen := common.NewSet[string]()
	for name != "" {
		if seen.Contains(name) {
			break // acyclicity is enforced at registration time; this guards a stale registry
		}
		seen.Add(name)
		chain = append(chain, name)
		info, ok := r.GetClassInfo(name)
		if !ok {
			break
		}
		name = info.Superclass
	}
	return chain
}
