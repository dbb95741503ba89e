package infer

import (
	"github.com/tafolabi009/TocinLang/src/common"
	"github.com/tafolabi009/TocinLang/src/diag"
	"github.com/tafolabi009/TocinLang/src/types"
)

// CheckAcyclic walks t depth-first looking for a non-pointer,
// non-reference cycle through a class name (spec §4.3.5). Pointer and
// reference terms do not recurse — they close the cycle legally. The
// visited set is a per-call local resource popped on unwind so
// siblings never see a false cycle (spec §5 "Shared resources"); this
// is the single, carefully-balanced implementation spec §9(b) asks
// for, not the distillation source's duplicated, looser variant.
func (e *Engine) CheckAcyclic(t types.Type) error {
	_, err := tryDiag(func() struct{} {
		e.checkAcyclic(t, common.NewSet[string]())
		return struct{}{}
	})
	return err
}

func (e *Engine) checkAcyclic(t types.Type, onPath common.Set[string]) {
	switch t := t.(type) {
	case *types.Class:
		if onPath.Contains(t.Name) {
			panic(diag.Circular(t.Name))
		}
		onPath.Add(t.Name)
		defer delete(onPath, t.Name)

		info, ok := e.Registry.GetClassInfo(t.Name)
		if !ok {
			return
		}
		for _, field := range info.Fields {
			e.checkAcyclic(field.Type, onPath)
		}
	case *types.Pointer, *types.Reference:
		// Pointers and references close the cycle legally: do not recurse.
		return
	case *types.Array:
		e.checkAcyclic(t.Elem, onPath)
	case *types.Generic:
		for _, arg := range t.Args {
			e.checkAcyclic(arg, onPath)
		}
	default:
		return
	}
}
