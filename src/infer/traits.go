package infer

import (
	"github.com/tafolabi009/TocinLang/src/diag"
	"github.com/tafolabi009/TocinLang/src/predicates"
	"github.com/tafolabi009/TocinLang/src/types"
)

// RegisterTraitImpl validates impl against its trait's declared
// method set (spec §4.3.6) and, on success, stores it in the
// registry. The trait must exist; every declared method must be
// present in impl with the same function type after substitution —
// equal arity, pairwise-equal parameter types, equal return type. An
// impl missing a method, providing extras, or mis-typing a signature
// is rejected with a diagnostic naming the offending method.
func (e *Engine) RegisterTraitImpl(impl *types.TraitImpl) error {
	_, err := tryDiag(func() struct{} {
		e.checkTraitImpl(impl)
		e.Registry.RegisterTraitImpl(impl)
		return struct{}{}
	})
	return err
}

func (e *Engine) checkTraitImpl(impl *types.TraitImpl) {
	trait, ok := e.Registry.GetTraitInfo(impl.TraitName)
	if !ok {
		panic(diag.Unknown("trait", impl.TraitName))
	}

	for name, declared := range trait.Methods {
		provided, ok := impl.Methods[name]
		if !ok {
			panic(diag.Signature(name, "missing method "+name+" required by trait "+impl.TraitName))
		}
		if !predicates.Equal(declared, provided) {
			panic(diag.Signature(name, "method "+name+" has the wrong signature for trait "+impl.TraitName))
		}
	}

	for name := range impl.Methods {
		if _, ok := trait.Methods[name]; !ok {
			panic(diag.Signature(name, "method "+name+" is not declared by trait "+impl.TraitName))
		}
	}
}

// DoesImplement reports whether target implements traitName, per the
// registry's impl index (spec §4.2 rule 4, scenario 3 in spec §8).
func (e *Engine) DoesImplement(target types.Type, traitName string) bool {
	return e.Registry.DoesImplement(traitName, target)
}
