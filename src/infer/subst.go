// Package infer implements the Inference & Unification Engine (spec
// §4.3): expression typing, Robinson-style unification with the
// occurs check, generic instantiation, trait-bound/impl
// verification, and the circular-dependency guard.
package infer

import (
	"fmt"

	"github.com/benbjohnson/immutable"
	"github.com/davecgh/go-spew/spew"
	"github.com/tafolabi009/TocinLang/src/diag"
	"github.com/tafolabi009/TocinLang/src/predicates"
	"github.com/tafolabi009/TocinLang/src/registry"
	"github.com/tafolabi009/TocinLang/src/types"
)

const DebugInfer = false

func inferPrintf(format string, args ...interface{}) {
	if DebugInfer {
		fmt.Printf(format, args...)
	}
}

// Subst is a substitution from variable names to ground terms,
// backed by a persistent map (spec §9: "A mutable substitution map
// threaded through unification is the simplest design" — here made
// persistent via github.com/benbjohnson/immutable so Merge/Simplify
// never mutate a substitution a caller still holds a reference to).
type Subst struct {
	m *immutable.Map[string, types.Type]
}

// EmptySubst is the substitution with no bindings.
func EmptySubst() Subst {
	return Subst{m: immutable.NewMap[string, types.Type](nil)}
}

func (s Subst) Get(name string) (types.Type, bool) {
	if s.m == nil {
		return nil, false
	}
	return s.m.Get(name)
}

func (s Subst) Bind(name string, t types.Type) Subst {
	if s.m == nil {
		s = EmptySubst()
	}
	return Subst{m: s.m.Set(name, t)}
}

func (s Subst) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Merge combines lhs and rhs, panicking (recovered at the engine's
// public boundary, like every other internal inconsistency) if both
// bind the same variable to structurally unequal terms (spec §8
// "Substitution composition": disjoint-map union must agree with
// double substitution).
func Merge(r *registry.Registry, lhs, rhs Subst) Subst {
	result := lhs
	if rhs.m == nil {
		return result
	}
	itr := rhs.m.Iterator()
	for !itr.Done() {
		name, t, _ := itr.Next()
		if existing, ok := result.Get(name); ok {
			if !predicates.Equal(existing, t) {
				panic(diag.New(diag.KindUnificationFailure, "incompatible substitutions for "+name))
			}
			continue
		}
		result = result.Bind(name, t)
	}
	return result
}

// Simplify applies a substitution to each of its own bindings until
// they stop changing (at most one pass per binding, which is enough
// for any acyclic chain), so no bound variable appears (as a free
// variable) in its own image chain.
func Simplify(subst Subst) Subst {
	if subst.m == nil {
		return subst
	}
	for i := 0; i < subst.Len(); i++ {
		next := EmptySubst()
		changed := false
		itr := subst.m.Iterator()
		for !itr.Done() {
			name, t, _ := itr.Next()
			applied := Apply(t, subst)
			if applied != t {
				changed = true
			}
			next = next.Bind(name, applied)
		}
		subst = next
		if !changed {
			break
		}
	}
	return subst
}

// Apply substitutes every Variable term recursively, and also a Basic
// term whose Kind names a bound generic parameter (spec §4.3.3 step 3:
// "basic (name matches a key ⇒ substitute)") — a generic parameter
// reference can legally arrive encoded as a plain named type instead
// of Variable. Returns the same term as-is when nothing changes
// (structural sharing), and a fresh term only where substitution
// actually applied.
func Apply(t types.Type, subst Subst) types.Type {
	switch t := t.(type) {
	case *types.Variable:
		if sub, ok := subst.Get(t.Name); ok {
			return sub
		}
		return t
	case *types.Basic:
		if sub, ok := subst.Get(string(t.Kind)); ok {
			return sub
		}
		return t
	case *types.NullType, *types.Class, *types.Trait:
		return t
	case *types.Pointer:
		elem := Apply(t.Elem, subst)
		if elem == t.Elem {
			return t
		}
		return &types.Pointer{Elem: elem, Unique: t.Unique}
	case *types.Reference:
		elem := Apply(t.Elem, subst)
		if elem == t.Elem {
			return t
		}
		return &types.Reference{Elem: elem, Mutable: t.Mutable}
	case *types.Array:
		elem := Apply(t.Elem, subst)
		if elem == t.Elem {
			return t
		}
		return &types.Array{Elem: elem, Length: t.Length}
	case *types.Function:
		changed := false
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = Apply(p, subst)
			if params[i] != p {
				changed = true
			}
		}
		ret := Apply(t.Return, subst)
		if ret != t.Return {
			changed = true
		}
		if !changed {
			return t
		}
		return &types.Function{Params: params, Return: ret}
	case *types.Generic:
		changed := false
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = Apply(a, subst)
			if args[i] != a {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return &types.Generic{Constructor: t.Constructor, Args: args}
	default:
		spew.Dump(t)
		panic("unreachable")
	}
}
