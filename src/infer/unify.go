package infer

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/tafolabi009/TocinLang/src/diag"
	"github.com/tafolabi009/TocinLang/src/predicates"
	"github.com/tafolabi009/TocinLang/src/registry"
	"github.com/tafolabi009/TocinLang/src/types"
)

// unifyOutcome bundles unify's two results so the panic boundary
// (tryDiag) only has to carry a single generic value through.
type unifyOutcome struct {
	result types.Type
	subst  Subst
}

// Engine is the sole entry point a caller outside this package needs:
// constructed from a Registry, it ascribes types to expressions,
// unifies terms, instantiates generics, and verifies trait impls and
// bounds (spec §6).
type Engine struct {
	Registry *registry.Registry
	Fresh    *types.FreshSource
}

// New constructs an Engine over the given registry.
func New(r *registry.Registry) *Engine {
	return &Engine{Registry: r, Fresh: types.NewFreshSource()}
}

// Unify finds a substitution that makes a and b equal, or reports a
// unification-failure diagnostic (spec §4.3.2). This is the public,
// panic-recovering entry point; internal recursion uses unify, which
// panics with a *diag.Diagnostic on failure.
func (e *Engine) Unify(a, b types.Type) (types.Type, Subst, error) {
	out, err := tryDiag(func() unifyOutcome {
		result, subst := e.unify(a, b, EmptySubst())
		return unifyOutcome{result: result, subst: subst}
	})
	return out.result, out.subst, err
}

// unify is Robinson-style unification with the occurs check (spec
// §4.3.2). It threads the substitution through its return value
// (each Bind produces a new persistent Subst, spec §9's "mutable
// substitution map" reimagined without in-place mutation) and panics
// with a diagnostic on failure, the same control-flow shape the
// teacher's UnifyEq/UnifySubtype use for their internal recursion
// (checker_unify.go).
func (e *Engine) unify(a, b types.Type, subst Subst) (types.Type, Subst) {
	a = e.resolve(a, subst)
	b = e.resolve(b, subst)

	inferPrintf("? %v = %v\n", a, b)

	// Step 1: already equal.
	if predicates.Equal(a, b) {
		return a, subst
	}

	// Step 2: variable binding with occurs check.
	if v, ok := a.(*types.Variable); ok {
		return e.bindVariable(v, b, subst)
	}
	if v, ok := b.(*types.Variable); ok {
		return e.bindVariable(v, a, subst)
	}

	// Step 3: numeric widening — the one intentional exception to
	// "unification preserves structure" (spec §4.3.2 rule 3).
	if aBasic, ok := a.(*types.Basic); ok {
		if bBasic, ok := b.(*types.Basic); ok {
			if aBasic.IsNumeric() && bBasic.IsNumeric() {
				if aBasic.IsFloat() {
					return a, subst
				}
				if bBasic.IsFloat() {
					return b, subst
				}
				return a, subst
			}
			panic(diag.Unify(a, b))
		}
	}

	// Step 4: functions — equal arity required.
	if aFn, ok := a.(*types.Function); ok {
		bFn, ok := b.(*types.Function)
		if !ok || len(aFn.Params) != len(bFn.Params) {
			panic(diag.Unify(a, b))
		}
		params := make([]types.Type, len(aFn.Params))
		for i := range aFn.Params {
			params[i], subst = e.unify(aFn.Params[i], bFn.Params[i], subst)
		}
		var ret types.Type
		ret, subst = e.unify(aFn.Return, bFn.Return, subst)
		return &types.Function{Params: params, Return: ret}, subst
	}

	// Step 5: arrays — unify element types, preserve length if they
	// agree, otherwise dynamic.
	if aArr, ok := a.(*types.Array); ok {
		bArr, ok := b.(*types.Array)
		if !ok {
			panic(diag.Unify(a, b))
		}
		var elem types.Type
		elem, subst = e.unify(aArr.Elem, bArr.Elem, subst)
		length := 0
		if aArr.Length == bArr.Length {
			length = aArr.Length
		}
		return &types.Array{Elem: elem, Length: length}, subst
	}

	// Step 6: generics — equal constructor name and arity required.
	if aGen, ok := a.(*types.Generic); ok {
		bGen, ok := b.(*types.Generic)
		if !ok || aGen.Constructor != bGen.Constructor || len(aGen.Args) != len(bGen.Args) {
			panic(diag.Unify(a, b))
		}
		args := make([]types.Type, len(aGen.Args))
		for i := range aGen.Args {
			args[i], subst = e.unify(aGen.Args[i], bGen.Args[i], subst)
		}
		return &types.Generic{Constructor: aGen.Constructor, Args: args}, subst
	}

	// Step 7: subtyping fallback at the nearest common super-term.
	if predicates.Subtype(e.Registry, a, b) {
		return b, subst
	}
	if predicates.Subtype(e.Registry, b, a) {
		return a, subst
	}

	// Step 8: otherwise fail.
	spew.Dump(a, b)
	panic(diag.Unify(a, b))
}

func (e *Engine) bindVariable(v *types.Variable, other types.Type, subst Subst) (types.Type, Subst) {
	if occurs(v, other) {
		panic(diag.New(diag.KindUnificationFailure, "circular type: "+v.Name+" occurs in "+other.String()))
	}
	if existing, ok := subst.Get(v.Name); ok {
		return e.unify(existing, other, subst)
	}
	return other, subst.Bind(v.Name, other)
}

// occurs implements the occurs check (spec §4.3.2 rule 2, glossary
// "Occurs check"): v must not syntactically appear in other.
func occurs(v *types.Variable, other types.Type) bool {
	switch other := other.(type) {
	case *types.Variable:
		return other.Name == v.Name
	case *types.Pointer:
		return occurs(v, other.Elem)
	case *types.Reference:
		return occurs(v, other.Elem)
	case *types.Array:
		return occurs(v, other.Elem)
	case *types.Function:
		for _, p := range other.Params {
			if occurs(v, p) {
				return true
			}
		}
		return occurs(v, other.Return)
	case *types.Generic:
		for _, a := range other.Args {
			if occurs(v, a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// resolve applies the current substitution to the term's outermost
// variable (not a full recursive Apply — that would be wasted work on
// every unify step since only the head matters for dispatch).
func (e *Engine) resolve(t types.Type, subst Subst) types.Type {
	for {
		v, ok := t.(*types.Variable)
		if !ok {
			return t
		}
		next, ok := subst.Get(v.Name)
		if !ok {
			return t
		}
		t = next
	}
}
