package predicates

import (
	"github.com/tafolabi009/TocinLang/src/registry"
	"github.com/tafolabi009/TocinLang/src/types"
)

// pointerWidth is the fixed 64-bit target width for pointers,
// references, and function pointers (spec §4.2 "Size & alignment").
const pointerWidth = 8

var basicSizes = map[types.BasicKind]int{
	types.KindBool:    1,
	types.KindInt8:    1,
	types.KindUint8:   1,
	types.KindInt16:   2,
	types.KindUint16:  2,
	types.KindInt32:   4,
	types.KindUint32:  4,
	types.KindInt:     4,
	types.KindFloat32: 4,
	types.KindFloat:   4,
	types.KindInt64:   8,
	types.KindUint64:  8,
	types.KindFloat64: 8,
	types.KindDouble:  8,
	types.KindVoid:    0,
}

// Size returns a term's size in bytes, or false when the term is
// unsized (e.g. a type variable) (spec §4.2).
func Size(r *registry.Registry, t types.Type) (int, bool) {
	switch t := t.(type) {
	case *types.Basic:
		sz, ok := basicSizes[t.Kind]
		return sz, ok
	case *types.Pointer, *types.Reference, *types.Function:
		return pointerWidth, true
	case *types.Array:
		if t.Length == 0 {
			return pointerWidth, true // dynamic array: pointer-sized handle
		}
		elemSz, ok := Size(r, t.Elem)
		if !ok {
			return 0, false
		}
		return t.Length * elemSz, true
	case *types.Class:
		return classLayout(r, t.Name)
	default:
		return 0, false
	}
}

// Alignment returns a term's alignment in bytes, or 1 for unsized
// terms (spec §4.2).
func Alignment(r *registry.Registry, t types.Type) int {
	switch t := t.(type) {
	case *types.Basic:
		sz, ok := basicSizes[t.Kind]
		if !ok {
			return 1
		}
		return capAt(sz, 8)
	case *types.Pointer, *types.Reference, *types.Function:
		return pointerWidth
	case *types.Array:
		return Alignment(r, t.Elem)
	case *types.Class:
		_, align := classLayoutAligned(r, t.Name)
		return align
	default:
		return 1
	}
}

func capAt(v, max int) int {
	if v > max {
		return max
	}
	return v
}

// classLayout walks a class's fields in declared order, C-style:
// pad each field to its own alignment, then round the total up to
// the max field alignment (spec §4.2 "Classes").
func classLayout(r *registry.Registry, name string) (int, bool) {
	size, _ := classLayoutAligned(r, name)
	return size, true
}

func classLayoutAligned(r *registry.Registry, name string) (size, align int) {
	info, ok := r.GetClassInfo(name)
	if !ok {
		return 0, 1
	}

	offset := 0
	maxAlign := 1
	for _, f := range info.Fields {
		fieldAlign := Alignment(r, f.Type)
		fieldSize, sized := Size(r, f.Type)
		if !sized {
			continue
		}
		if fieldAlign > maxAlign {
			maxAlign = fieldAlign
		}
		offset = roundUp(offset, fieldAlign) + fieldSize
	}
	total := roundUp(offset, maxAlign)
	return total, maxAlign
}

func roundUp(n, align int) int {
	if align <= 1 {
		return n
	}
	rem := n % align
	if rem == 0 {
		return n
	}
	return n + (align - rem)
}
