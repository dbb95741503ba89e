package infer

import (
	"github.com/tafolabi009/TocinLang/src/algos"
	"github.com/tafolabi009/TocinLang/src/diag"
	"github.com/tafolabi009/TocinLang/src/types"
)

func superclassEdges(info *types.ClassInfo) map[string]struct{} {
	if info.Superclass == "" {
		return nil
	}
	return map[string]struct{}{info.Superclass: {}}
}

// CheckClassHierarchy verifies that every registered class's
// superclass chain is acyclic and terminates (spec §3 "Class single
// inheritance": "the inheritance chain is acyclic and terminates").
// Unlike CheckAcyclic (field-layout cycles, legally broken by a
// pointer or reference indirection), a superclass cycle has no legal
// escape, so this walks the whole class graph at once rather than one
// chain at a time.
//
// A class naming a Superclass that was never itself registered is
// rejected here too: algos.FindCycle indexes nodes by name, and
// recursing into a name absent from that index hands superclassEdges
// a nil *types.ClassInfo. Validating every reference up front, the
// way predicates.ClassChain guards a stale lookup, keeps that case a
// diagnostic instead of a crash.
func (e *Engine) CheckClassHierarchy() error {
	_, err := tryDiag(func() struct{} {
		classes := e.Registry.AllClasses()
		for _, info := range classes {
			if info.Superclass != "" && !classes.Contains(info.Superclass) {
				panic(diag.Unknown("class", info.Superclass))
			}
		}
		if cycle := algos.FindCycle(classes, superclassEdges); len(cycle) > 0 {
			panic(diag.Circular(cycle[0].Name))
		}
		return struct{}{}
	})
	return err
}

// ClassDeclarationOrder returns every registered class ordered so
// each class follows its own superclass, the order a declaration pass
// would want to process base classes before derived ones. Call
// CheckClassHierarchy first; a cyclic hierarchy yields an incomplete,
// unspecified order here.
func (e *Engine) ClassDeclarationOrder() []*types.ClassInfo {
	classes := e.Registry.AllClasses()
	return algos.TopologicalSort(classes, superclassEdges)
}
