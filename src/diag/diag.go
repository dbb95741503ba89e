// Package diag defines the structured diagnostic carried by every
// fallible operation in the type subsystem.
package diag

import "fmt"

// Kind classifies the cause of a diagnostic. The type subsystem never
// returns a bare error value; every failure path names one of these.
type Kind string

const (
	KindUnknownName          Kind = "unknown-name"
	KindArityMismatch         Kind = "arity-mismatch"
	KindConstraintFailure     Kind = "constraint-failure"
	KindSignatureMismatch     Kind = "signature-mismatch"
	KindCircularDependency    Kind = "circular-dependency"
	KindUnificationFailure    Kind = "unification-failure"
	KindDuplicateRegistration Kind = "duplicate-registration"
	KindNullOperand           Kind = "null-operand"
)

func (k Kind) String() string {
	switch k {
	case KindUnknownName, KindArityMismatch, KindConstraintFailure, KindSignatureMismatch,
		KindCircularDependency, KindUnificationFailure, KindDuplicateRegistration, KindNullOperand:
		return string(k)
	default:
		panic("unreachable")
	}
}

// Diagnostic is a single-sentence, structured error: a kind plus a
// human-readable message, optionally naming the offending entity (a
// type name, method name, or parameter index) so a higher-level error
// reporter can attach source spans. Diagnostics are never thrown; they
// are always returned.
type Diagnostic struct {
	Kind    Kind
	Message string
	Entity  string
}

func (d *Diagnostic) Error() string {
	if d.Entity != "" {
		return fmt.Sprintf("%s: %s (%s)", d.Kind, d.Message, d.Entity)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

func New(kind Kind, message string) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: message}
}

func Named(kind Kind, message, entity string) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: message, Entity: entity}
}

func Unknown(what, name string) *Diagnostic {
	return Named(KindUnknownName, fmt.Sprintf("unknown %s", what), name)
}

func Arity(what string, want, got int) *Diagnostic {
	return New(KindArityMismatch, fmt.Sprintf("%s expects %d argument(s), got %d", what, want, got))
}

func Constraint(traitName, typeName string) *Diagnostic {
	return Named(KindConstraintFailure, fmt.Sprintf("type %s does not implement trait %s", typeName, traitName), traitName)
}

func Signature(methodName, reason string) *Diagnostic {
	return Named(KindSignatureMismatch, reason, methodName)
}

func Circular(name string) *Diagnostic {
	return Named(KindCircularDependency, fmt.Sprintf("type %s is circular", name), name)
}

func Unify(left, right fmt.Stringer) *Diagnostic {
	return New(KindUnificationFailure, fmt.Sprintf("cannot unify incompatible types: %v and %v", left, right))
}

func Duplicate(name string) *Diagnostic {
	return Named(KindDuplicateRegistration, fmt.Sprintf("%s is already registered", name), name)
}

func NullOperand(context string) *Diagnostic {
	return New(KindNullOperand, fmt.Sprintf("null operand is not valid in this context: %s", context))
}
