package infer_test

import (
	"testing"

	"github.com/tafolabi009/TocinLang/src/diag"
	"github.com/tafolabi009/TocinLang/src/infer"
	"github.com/tafolabi009/TocinLang/src/registry"
	"github.com/tafolabi009/TocinLang/src/types"
)

func TestCheckClassHierarchyAcceptsChain(t *testing.T) {
	r := registry.New(nil)
	must(t, r.RegisterClass(&types.ClassInfo{Name: "Animal"}))
	must(t, r.RegisterClass(&types.ClassInfo{Name: "Dog", Superclass: "Animal"}))
	must(t, r.RegisterClass(&types.ClassInfo{Name: "Puppy", Superclass: "Dog"}))
	e := infer.New(r)

	if err := e.CheckClassHierarchy(); err != nil {
		t.Errorf("a terminating single-inheritance chain should be accepted: %v", err)
	}
}

func TestCheckClassHierarchyRejectsCycle(t *testing.T) {
	r := registry.New(nil)
	must(t, r.RegisterClass(&types.ClassInfo{Name: "A", Superclass: "B"}))
	must(t, r.RegisterClass(&types.ClassInfo{Name: "B", Superclass: "A"}))
	e := infer.New(r)

	if err := e.CheckClassHierarchy(); err == nil {
		t.Fatal("a superclass cycle A -> B -> A should be rejected")
	}
}

func TestCheckClassHierarchyRejectsDanglingSuperclass(t *testing.T) {
	r := registry.New(nil)
	must(t, r.RegisterClass(&types.ClassInfo{Name: "Dog", Superclass: "Animal"}))
	e := infer.New(r)

	err := e.CheckClassHierarchy()
	if err == nil {
		t.Fatal("a superclass naming a class that was never registered should be rejected")
	}
	d, ok := err.(*diag.Diagnostic)
	if !ok {
		t.Fatalf("expected a *diag.Diagnostic, got %T: %v", err, err)
	}
	if d.Kind != diag.KindUnknownName {
		t.Errorf("expected KindUnknownName, got %v", d.Kind)
	}
}

func TestClassDeclarationOrderPlacesSuperclassFirst(t *testing.T) {
	r := registry.New(nil)
	must(t, r.RegisterClass(&types.ClassInfo{Name: "Puppy", Superclass: "Dog"}))
	must(t, r.RegisterClass(&types.ClassInfo{Name: "Dog", Superclass: "Animal"}))
	must(t, r.RegisterClass(&types.ClassInfo{Name: "Animal"}))
	e := infer.New(r)

	order := e.ClassDeclarationOrder()
	index := map[string]int{}
	for i, info := range order {
		index[info.Name] = i
	}
	if index["Animal"] >= index["Dog"] || index["Dog"] >= index["Puppy"] {
		t.Errorf("expected Animal before Dog before Puppy, got order %v", order)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
