package infer

import (
	"github.com/tafolabi009/TocinLang/src/diag"
	"github.com/tafolabi009/TocinLang/src/types"
)

// Instantiate validates and applies a generic instantiation (spec
// §4.3.3): the registry must know the constructor, argument count
// must equal parameter count, and every argument must satisfy every
// bound on its corresponding parameter. On success it returns the
// generic's defining term with the parameter->argument substitution
// applied throughout.
func (e *Engine) Instantiate(constructor string, args []types.Type) (types.Type, error) {
	return tryDiag(func() types.Type {
		return e.instantiate(constructor, args)
	})
}

func (e *Engine) instantiate(constructor string, args []types.Type) types.Type {
	decl, ok := e.Registry.GetGeneric(constructor)
	if !ok {
		panic(diag.Unknown("generic", constructor))
	}
	if len(decl.Params) != len(args) {
		panic(diag.Arity(constructor, len(decl.Params), len(args)))
	}

	subst := EmptySubst()
	for i, param := range decl.Params {
		subst = subst.Bind(param.Name, args[i])
		for _, constraintName := range param.Constraints {
			e.checkBound(args[i], constraintName, param.Name)
		}
	}

	return Apply(decl.Definition, subst)
}

// checkBound verifies that arg satisfies the named trait bound (spec
// §4.3.4): the registry must contain a trait-impl whose trait name
// equals constraintName and whose target equals arg. A trait is
// referenced by name, not structural signature.
func (e *Engine) checkBound(arg types.Type, constraintName, paramName string) {
	if !e.Registry.DoesImplement(constraintName, arg) {
		panic(diag.Named(diag.KindConstraintFailure,
			"type does not implement trait "+constraintName, constraintName))
	}
	_ = paramName // kept for a future diagnostic that names the parameter too
}

// CheckBounds validates one argument against a list of trait
// constraints on its own, outside a full Instantiate call — useful for a caller that
// already has concrete type arguments from elsewhere (e.g. a
// higher-level call-site check) and wants a standalone trait-bound
// verdict (spec §4.3.4, scenario 3 in spec §8: instantiating a bound
// generic with a concrete type that lacks the trait impl).
func (e *Engine) CheckBounds(arg types.Type, constraintNames []string) error {
	_, err := tryDiag(func() struct{} {
		for _, name := range constraintNames {
			e.checkBound(arg, name, "")
		}
		return struct{}{}
	})
	return err
}
