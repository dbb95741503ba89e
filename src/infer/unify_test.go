package infer_test

import (
	"testing"

	"github.com/tafolabi009/TocinLang/src/diag"
	"github.com/tafolabi009/TocinLang/src/infer"
	"github.com/tafolabi009/TocinLang/src/registry"
	"github.com/tafolabi009/TocinLang/src/types"
)

func TestUnifyIdenticalBasics(t *testing.T) {
	e := infer.New(registry.New(nil))
	result, _, err := e.Unify(&types.Basic{Kind: types.KindInt}, &types.Basic{Kind: types.KindInt})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := result.(*types.Basic); !ok || b.Kind != types.KindInt {
		t.Errorf("unify(int, int) = %v, want int", result)
	}
}

func TestUnifyNumericWidening(t *testing.T) {
	e := infer.New(registry.New(nil))
	result, _, err := e.Unify(&types.Basic{Kind: types.KindInt}, &types.Basic{Kind: types.KindFloat})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := result.(*types.Basic); !ok || b.Kind != types.KindFloat {
		t.Errorf("unify(int, float) = %v, want float (float wins widening)", result)
	}
}

func TestUnifyIncompatibleBasicsFails(t *testing.T) {
	e := infer.New(registry.New(nil))
	_, _, err := e.Unify(&types.Basic{Kind: types.KindBool}, &types.Basic{Kind: types.KindInt})
	if err == nil {
		t.Fatal("unify(bool, int) should fail")
	}
	d, ok := err.(*diag.Diagnostic)
	if !ok || d.Kind != diag.KindUnificationFailure {
		t.Errorf("expected a unification-failure diagnostic, got %v", err)
	}
}

func TestUnifyVariableBinding(t *testing.T) {
	e := infer.New(registry.New(nil))
	v := &types.Variable{Name: "T"}
	target := &types.Basic{Kind: types.KindString}

	result, subst, err := e.Unify(v, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameBasic(result, types.KindString) {
		t.Errorf("unify(T, string) = %v, want string", result)
	}
	bound, ok := subst.Get("T")
	if !ok || !sameBasic(bound, types.KindString) {
		t.Errorf("substitution should bind T to string, got %v, %v", bound, ok)
	}
}

func TestUnifyOccursCheckFails(t *testing.T) {
	e := infer.New(registry.New(nil))
	v := &types.Variable{Name: "T"}
	selfReferential := &types.Pointer{Elem: v}

	_, _, err := e.Unify(v, selfReferential)
	if err == nil {
		t.Fatal("unify(T, *T) should fail the occurs check")
	}
}

func TestUnifyFunctionsRecurseParamsAndReturn(t *testing.T) {
	e := infer.New(registry.New(nil))
	a := &types.Function{
		Params: []types.Type{&types.Basic{Kind: types.KindInt}},
		Return: &types.Variable{Name: "R"},
	}
	b := &types.Function{
		Params: []types.Type{&types.Basic{Kind: types.KindInt}},
		Return: &types.Basic{Kind: types.KindBool},
	}

	result, subst, err := e.Unify(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn, ok := result.(*types.Function)
	if !ok {
		t.Fatalf("expected a Function result, got %v", result)
	}
	if !sameBasic(fn.Return, types.KindBool) {
		t.Errorf("return type should unify to bool, got %v", fn.Return)
	}
	if bound, ok := subst.Get("R"); !ok || !sameBasic(bound, types.KindBool) {
		t.Errorf("R should be bound to bool in the resulting substitution")
	}
}

func TestUnifyArityMismatchFails(t *testing.T) {
	e := infer.New(registry.New(nil))
	a := &types.Function{Params: []types.Type{&types.Basic{Kind: types.KindInt}}, Return: &types.Basic{Kind: types.KindVoid}}
	b := &types.Function{Params: []types.Type{}, Return: &types.Basic{Kind: types.KindVoid}}
	if _, _, err := e.Unify(a, b); err == nil {
		t.Fatal("functions of different arity should not unify")
	}
}

func TestUnifySubtypeFallback(t *testing.T) {
	r := registry.New(nil)
	if err := r.RegisterClass(&types.ClassInfo{Name: "Animal"}); err != nil {
		t.Fatal(err)
	}
	if err := r.RegisterClass(&types.ClassInfo{Name: "Dog", Superclass: "Animal"}); err != nil {
		t.Fatal(err)
	}
	e := infer.New(r)

	result, _, err := e.Unify(&types.Class{Name: "Dog"}, &types.Class{Name: "Animal"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c, ok := result.(*types.Class); !ok || c.Name != "Animal" {
		t.Errorf("unify(Dog, Animal) should fall back to the supertype, got %v", result)
	}
}

func sameBasic(t types.Type, kind types.BasicKind) bool {
	b, ok := t.(*types.Basic)
	return ok && b.Kind == kind
}
