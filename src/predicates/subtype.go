package predicates

import (
	"github.com/tafolabi009/TocinLang/src/registry"
	"github.com/tafolabi009/TocinLang/src/types"
)

// Subtype reports whether sub flows into a context expecting super,
// per spec §4.2's seven ordered rules; the first matching rule wins.
func Subtype(r *registry.Registry, sub, super types.Type) bool {
	predicatesPrintf("? %v <: %v\n", sub, super)

	// Rule 1: null subtypes any pointer type.
	if _, ok := sub.(*types.NullType); ok {
		if _, ok := super.(*types.Pointer); ok {
			return true
		}
	}

	// Rule 2: reflexivity.
	if Equal(sub, super) {
		return true
	}

	// Rule 3: nominal class widening.
	if subClass, ok := sub.(*types.Class); ok {
		if superClass, ok := super.(*types.Class); ok {
			for _, name := range ClassChain(r, subClass.Name) {
				if name == superClass.Name {
					return true
				}
			}
			return false
		}
	}

	// Rule 4: trait implementation.
	if superTrait, ok := super.(*types.Trait); ok {
		return r.DoesImplement(superTrait.Name, sub)
	}

	// Rule 5: invariant generics.
	if subGen, ok := sub.(*types.Generic); ok {
		if superGen, ok := super.(*types.Generic); ok {
			if subGen.Constructor != superGen.Constructor || len(subGen.Args) != len(superGen.Args) {
				return false
			}
			for i := range subGen.Args {
				if !Equal(subGen.Args[i], superGen.Args[i]) {
					return false
				}
			}
			return true
		}
		return false
	}

	// Rule 6: function subtyping (contravariant params, covariant
	// return).
	if subFn, ok := sub.(*types.Function); ok {
		if superFn, ok := super.(*types.Function); ok {
			if len(subFn.Params) != len(superFn.Params) {
				return false
			}
			for i := range subFn.Params {
				if !Subtype(r, superFn.Params[i], subFn.Params[i]) {
					return false
				}
			}
			return Subtype(r, subFn.Return, superFn.Return)
		}
		return false
	}

	// Rule 7: otherwise false.
	return false
}
