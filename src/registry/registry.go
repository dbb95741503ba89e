// Package registry is the canonical naming authority for declared
// entities (spec §4.1): built-in primitives, classes, traits, trait
// impls, generic declarations, aliases, and the variable environment.
//
// A Registry is single-writer during a declaration pass and
// many-reader during inference (spec §5); it performs no
// synchronization of its own.
package registry

import (
	"github.com/benbjohnson/immutable"
	"github.com/tafolabi009/TocinLang/src/common"
	"github.com/tafolabi009/TocinLang/src/diag"
	"github.com/tafolabi009/TocinLang/src/types"
)

// Registry is the single owner of every declared entity. Entries are
// stored in persistent maps (github.com/benbjohnson/immutable, also
// reached for by the pack's wdamron-poly HM engine for the same
// problem — an immutable type environment) so that a lookup never
// observes a partially-applied mutation and a caller that captured an
// older Registry snapshot keeps seeing it, matching spec §3's "Type
// terms are immutable once constructed and shared freely".
type Registry struct {
	types   *immutable.SortedMap[string, types.Type]
	aliases *immutable.SortedMap[string, types.Type]
	classes *immutable.SortedMap[string, *types.ClassInfo]
	traits  *immutable.SortedMap[string, *types.TraitInfo]
	// impls is indexed by "<trait>/<mangled target>" for O(1) lookup
	// (SPEC_FULL §4, "Trait-impl lookup indexing"); Mangle avoids an
	// import cycle by taking a function instead of the mangle package.
	impls    *immutable.SortedMap[string, *types.TraitImpl]
	generics *immutable.SortedMap[string, *types.GenericDecl]
	vars     *immutable.SortedMap[string, types.Type]

	mangle func(types.Type) string
}

// New constructs a Registry with the built-in primitives
// pre-registered (spec §4.1: "primitives are inserted once at
// construction"). mangle is used only to build the trait-impl index
// key; passing the zero value is safe for tests that never register
// an impl.
func New(mangle func(types.Type) string) *Registry {
	if mangle == nil {
		mangle = func(t types.Type) string { return t.String() }
	}
	r := &Registry{
		types:    immutable.NewSortedMap[string, types.Type](nil),
		aliases:  immutable.NewSortedMap[string, types.Type](nil),
		classes:  immutable.NewSortedMap[string, *types.ClassInfo](nil),
		traits:   immutable.NewSortedMap[string, *types.TraitInfo](nil),
		impls:    immutable.NewSortedMap[string, *types.TraitImpl](nil),
		generics: immutable.NewSortedMap[string, *types.GenericDecl](nil),
		vars:     immutable.NewSortedMap[string, types.Type](nil),
		mangle:   mangle,
	}
	for name, kind := range builtinKinds {
		r.types = r.types.Set(name, &types.Basic{Kind: kind})
	}
	return r
}

var builtinKinds = map[string]types.BasicKind{
	"int":     types.KindInt,
	"int8":    types.KindInt8,
	"int16":   types.KindInt16,
	"int32":   types.KindInt32,
	"int64":   types.KindInt64,
	"uint8":   types.KindUint8,
	"uint16":  types.KindUint16,
	"uint32":  types.KindUint32,
	"uint64":  types.KindUint64,
	"float":   types.KindFloat,
	"float32": types.KindFloat32,
	"float64": types.KindFloat64,
	"double":  types.KindDouble,
	"bool":    types.KindBool,
	"string":  types.KindString,
	"void":    types.KindVoid,
	"unknown": types.KindUnknown,
}

// RegisterType adds a named type (spec §4.1). Fails when name is
// already present; built-in primitives can never be overwritten
// because they occupy their keys from New onward.
func (r *Registry) RegisterType(name string, term types.Type) error {
	if _, ok := r.types.Get(name); ok {
		return diag.Duplicate(name)
	}
	r.types = r.types.Set(name, term)
	return nil
}

// RegisterAlias records name -> term; last write wins, and aliases
// are resolved eagerly on lookup (spec §4.1).
func (r *Registry) RegisterAlias(name string, term types.Type) {
	r.aliases = r.aliases.Set(name, term)
}

// RegisterClass adds a class's field list, optional superclass, and
// move-only flag. Fails on duplicate registration (spec §4.1).
func (r *Registry) RegisterClass(info *types.ClassInfo) error {
	if _, ok := r.classes.Get(info.Name); ok {
		return diag.Duplicate(info.Name)
	}
	r.classes = r.classes.Set(info.Name, info)
	return nil
}

// RegisterTrait adds a trait's method-name -> declared-signature map.
// Fails on duplicate registration (spec §4.1).
func (r *Registry) RegisterTrait(info *types.TraitInfo) error {
	if _, ok := r.traits.Get(info.Name); ok {
		return diag.Duplicate(info.Name)
	}
	r.traits = r.traits.Set(info.Name, info)
	return nil
}

// RegisterGeneric records a generic declaration's parameter list
// (with per-parameter trait bounds) and defining term. Fails on
// duplicate registration (spec §4.1).
func (r *Registry) RegisterGeneric(decl *types.GenericDecl) error {
	if _, ok := r.generics.Get(decl.Constructor); ok {
		return diag.Duplicate(decl.Constructor)
	}
	r.generics = r.generics.Set(decl.Constructor, decl)
	return nil
}

// RegisterTraitImpl stores a verified trait implementation. Callers
// are expected to have validated the impl (infer.RegisterTraitImpl,
// spec §4.3.6) before calling this; the registry itself does not
// re-validate, consistent with it being a pure store.
func (r *Registry) RegisterTraitImpl(impl *types.TraitImpl) {
	key := impl.TraitName + "/" + r.mangle(impl.Target)
	r.impls = r.impls.Set(key, impl)
}

// DefineVar adds name -> term to the variable environment (spec
// §3 "Variable environment").
func (r *Registry) DefineVar(name string, term types.Type) {
	r.vars = r.vars.Set(name, term)
}

// LookupType performs a total lookup, resolving through aliases
// eagerly. Never fails; absence is reported via the bool (spec
// §4.1).
func (r *Registry) LookupType(name string) (types.Type, bool) {
	if t, ok := r.aliases.Get(name); ok {
		return r.ResolveAlias(t), true
	}
	if t, ok := r.types.Get(name); ok {
		return t, true
	}
	return nil, false
}

// ResolveAlias follows alias chains transparently until reaching a
// non-alias term (spec §4.1 "aliases are resolved eagerly on
// lookup").
func (r *Registry) ResolveAlias(t types.Type) types.Type {
	for {
		named, ok := t.(*types.Class)
		if !ok {
			return t
		}
		next, ok := r.aliases.Get(named.Name)
		if !ok {
			return t
		}
		t = next
	}
}

// LookupVar performs a total lookup in the variable environment.
func (r *Registry) LookupVar(name string) (types.Type, bool) {
	return r.vars.Get(name)
}

// GetTypeParameters returns a generic declaration's formal parameter
// list.
func (r *Registry) GetTypeParameters(constructor string) ([]types.TypeParameter, bool) {
	decl, ok := r.generics.Get(constructor)
	if !ok {
		return nil, false
	}
	return decl.Params, true
}

// GetGeneric returns the full generic declaration record.
func (r *Registry) GetGeneric(constructor string) (*types.GenericDecl, bool) {
	return r.generics.Get(constructor)
}

// GetClassInfo returns a class's registered field/superclass/move-only
// record.
func (r *Registry) GetClassInfo(name string) (*types.ClassInfo, bool) {
	return r.classes.Get(name)
}

// GetTraitInfo returns a trait's declared method signatures.
func (r *Registry) GetTraitInfo(name string) (*types.TraitInfo, bool) {
	return r.traits.Get(name)
}

// AllClasses returns every registered class keyed by name, for
// callers (infer.CheckClassHierarchy) that need to walk the whole
// superclass graph at once rather than one chain at a time.
func (r *Registry) AllClasses() common.Map[string, *types.ClassInfo] {
	out := common.NewMap[string, *types.ClassInfo]()
	itr := r.classes.Iterator()
	for !itr.Done() {
		name, info, _ := itr.Next()
		out.Add(name, info)
	}
	return out
}

// GetTraitImplsFor returns every trait impl registered for target,
// scanning the impl index's values (an O(n) scan over impls, not over
// classes: impls are comparatively rare against instantiation sites,
// which is why DoesImplement below indexes by (trait, mangled target)
// instead of asking this method to do the narrowing).
func (r *Registry) GetTraitImplsFor(target types.Type, mangle func(types.Type) string) []*types.TraitImpl {
	if mangle == nil {
		mangle = r.mangle
	}
	targetKey := mangle(target)
	var out []*types.TraitImpl
	itr := r.impls.Iterator()
	for !itr.Done() {
		_, impl, _ := itr.Next()
		if mangle(impl.Target) == targetKey {
			out = append(out, impl)
		}
	}
	return out
}

// DoesImplement reports whether target has a registered impl of
// traitName, via the (trait, mangled-target) index (spec §4.2 rule
// 4, scenario 3 in spec §8).
func (r *Registry) DoesImplement(traitName string, target types.Type) bool {
	key := traitName + "/" + r.mangle(target)
	_, ok := r.impls.Get(key)
	return ok
}

// GetTraitImpl returns the specific impl of traitName for target, if
// registered.
func (r *Registry) GetTraitImpl(traitName string, target types.Type) (*types.TraitImpl, bool) {
	key := traitName + "/" + r.mangle(target)
	return r.impls.Get(key)
}
