package registry_test

import (
	"testing"

	"github.com/tafolabi009/TocinLang/src/registry"
	"github.com/tafolabi009/TocinLang/src/types"
)

func TestBuiltinsPreregistered(t *testing.T) {
	r := registry.New(nil)
	for _, name := range []string{"int", "float", "bool", "string", "void", "unknown"} {
		if _, ok := r.LookupType(name); !ok {
			t.Errorf("builtin %q should be preregistered", name)
		}
	}
}

func TestRegisterTypeRejectsDuplicates(t *testing.T) {
	r := registry.New(nil)
	if err := r.RegisterType("int", &types.Basic{Kind: types.KindInt}); err == nil {
		t.Error("re-registering a builtin primitive should fail")
	}
	if err := r.RegisterType("MyAlias", &types.Class{Name: "Foo"}); err != nil {
		t.Fatalf("first registration should succeed: %v", err)
	}
	if err := r.RegisterType("MyAlias", &types.Class{Name: "Bar"}); err == nil {
		t.Error("second registration of the same name should fail")
	}
}

func TestRegisterClassRejectsDuplicates(t *testing.T) {
	r := registry.New(nil)
	if err := r.RegisterClass(&types.ClassInfo{Name: "Dog"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.RegisterClass(&types.ClassInfo{Name: "Dog"}); err == nil {
		t.Error("duplicate class registration should fail")
	}
}

func TestRegisterGenericRejectsDuplicates(t *testing.T) {
	r := registry.New(nil)
	decl := &types.GenericDecl{Constructor: "Box", Params: []types.TypeParameter{{Name: "T"}}}
	if err := r.RegisterGeneric(decl); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.RegisterGeneric(decl); err == nil {
		t.Error("duplicate generic registration should fail")
	}
	if params, ok := r.GetTypeParameters("Box"); !ok || len(params) != 1 {
		t.Errorf("GetTypeParameters(Box) = %v, %v", params, ok)
	}
}

func TestAliasLastWriteWins(t *testing.T) {
	r := registry.New(nil)
	r.RegisterAlias("Num", &types.Basic{Kind: types.KindInt})
	r.RegisterAlias("Num", &types.Basic{Kind: types.KindFloat64})

	resolved, ok := r.LookupType("Num")
	if !ok {
		t.Fatal("alias should resolve")
	}
	if b, ok := resolved.(*types.Basic); !ok || b.Kind != types.KindFloat64 {
		t.Errorf("alias should resolve to the last write, got %v", resolved)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	elem := &types.Basic{Kind: types.KindInt}
	arr := registry.MakeArray(elem)
	if g, ok := arr.(*types.Generic); !ok || g.Constructor != types.ConstructorArray {
		t.Errorf("MakeArray should build a canonical Array<T> generic, got %v", arr)
	}

	opt := registry.MakeOption(elem)
	if g, ok := opt.(*types.Generic); !ok || g.Constructor != types.ConstructorOption {
		t.Errorf("MakeOption should build a canonical Option<T> generic, got %v", opt)
	}

	res := registry.MakeResult(elem, &types.Basic{Kind: types.KindString})
	if g, ok := res.(*types.Generic); !ok || g.Constructor != types.ConstructorResult || len(g.Args) != 2 {
		t.Errorf("MakeResult should build a canonical Result<T,E> generic, got %v", res)
	}

	ptr := registry.MakePointer(elem, true)
	if p, ok := ptr.(*types.Pointer); !ok || !p.Unique {
		t.Errorf("MakePointer(unique=true) should build a unique pointer, got %v", ptr)
	}
}

func TestDoesImplement(t *testing.T) {
	r := registry.New(func(ty types.Type) string { return ty.String() })
	point := &types.Class{Name: "Point"}
	show := &types.Function{Return: &types.Basic{Kind: types.KindString}}

	if r.DoesImplement("Display", point) {
		t.Error("no impl registered yet")
	}

	r.RegisterTraitImpl(&types.TraitImpl{TraitName: "Display", Target: point, Methods: map[string]*types.Function{"show": show}})

	if !r.DoesImplement("Display", point) {
		t.Error("impl was registered, DoesImplement should be true")
	}
	if r.DoesImplement("Display", &types.Class{Name: "Other"}) {
		t.Error("Other has no impl")
	}
}
