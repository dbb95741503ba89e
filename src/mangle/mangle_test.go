package mangle_test

import (
	"testing"

	"github.com/tafolabi009/TocinLang/src/mangle"
	"github.com/tafolabi009/TocinLang/src/types"
)

// distinctPrimitiveKinds are the basic kinds that are meant to be
// distinguishable at the source level and must therefore mangle to
// distinct symbols (spec §8: "mangling is injective on distinct
// primitives"). int/int32 and float/float32 and double/float64 are
// intentionally aliased pairs, so they are excluded here; the
// int/int32 and float64/double pairs are checked separately below.
var distinctPrimitiveKinds = []types.BasicKind{
	types.KindInt64,
	types.KindUint32,
	types.KindUint64,
	types.KindFloat64,
	types.KindBool,
	types.KindString,
	types.KindVoid,
}

func TestMangleInjectiveOnDistinctPrimitives(t *testing.T) {
	seen := map[string]types.BasicKind{}
	for _, kind := range distinctPrimitiveKinds {
		m := mangle.Mangle(&types.Basic{Kind: kind})
		if prior, ok := seen[m]; ok {
			t.Errorf("kinds %v and %v both mangle to %q", prior, kind, m)
		}
		seen[m] = kind
	}
}

func TestMangleAliasedPrimitivesShareSymbol(t *testing.T) {
	if mangle.Mangle(&types.Basic{Kind: types.KindInt}) != mangle.Mangle(&types.Basic{Kind: types.KindInt32}) {
		t.Error("int and int32 are the same machine word and should mangle identically")
	}
	if mangle.Mangle(&types.Basic{Kind: types.KindFloat64}) != mangle.Mangle(&types.Basic{Kind: types.KindDouble}) {
		t.Error("float64 and double are the same machine word and should mangle identically")
	}
}

func TestManglePointerAndArrayShapes(t *testing.T) {
	elem := &types.Basic{Kind: types.KindInt64}
	ptr := &types.Pointer{Elem: elem}
	if got, want := mangle.Mangle(ptr), "P"+mangle.Mangle(elem); got != want {
		t.Errorf("Mangle(*int64) = %q, want %q", got, want)
	}

	fixed := &types.Array{Elem: elem, Length: 4}
	if got := mangle.Mangle(fixed); got == mangle.Mangle(&types.Array{Elem: elem, Length: 0}) {
		t.Errorf("a fixed-length array must not mangle the same as a dynamic one, got %q for both", got)
	}
}

func TestMangleGenericDistinguishesConstructorAndArgs(t *testing.T) {
	intArr := &types.Generic{Constructor: types.ConstructorArray, Args: []types.Type{&types.Basic{Kind: types.KindInt64}}}
	boolArr := &types.Generic{Constructor: types.ConstructorArray, Args: []types.Type{&types.Basic{Kind: types.KindBool}}}
	if mangle.Mangle(intArr) == mangle.Mangle(boolArr) {
		t.Error("Array<int64> and Array<bool> should mangle differently")
	}

	opt := &types.Generic{Constructor: types.ConstructorOption, Args: []types.Type{&types.Basic{Kind: types.KindInt64}}}
	if mangle.Mangle(intArr) == mangle.Mangle(opt) {
		t.Error("Array<int64> and Option<int64> should mangle differently")
	}
}

func TestMangleFunctionShape(t *testing.T) {
	fn := &types.Function{
		Params: []types.Type{&types.Basic{Kind: types.KindInt64}},
		Return: &types.Basic{Kind: types.KindBool},
	}
	got := mangle.Mangle(fn)
	if got[0] != 'F' || got[len(got)-1] != 'E' {
		t.Errorf("Mangle(function) = %q, want F...E envelope", got)
	}
}
