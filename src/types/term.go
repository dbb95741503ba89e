// Package types defines the closed type-term algebra consumed and
// produced by the type subsystem, plus the expression-tree nodes the
// inference engine ascribes types to.
package types

import (
	"fmt"
	"strings"
)

// Type is the sealed interface implemented by every variant of the
// type-term algebra (spec §3). Only this package may implement it.
type Type interface {
	fmt.Stringer
	_Type()
}

type termBase struct{}

func (termBase) _Type() {}

// BasicKind enumerates the primitive kinds, plus the two sentinels
// void and unknown. The null literal has its own variant, NullType.
type BasicKind string

const (
	KindInt     BasicKind = "int"
	KindInt8    BasicKind = "int8"
	KindInt16   BasicKind = "int16"
	KindInt32   BasicKind = "int32"
	KindInt64   BasicKind = "int64"
	KindUint8   BasicKind = "uint8"
	KindUint16  BasicKind = "uint16"
	KindUint32  BasicKind = "uint32"
	KindUint64  BasicKind = "uint64"
	KindFloat   BasicKind = "float"
	KindFloat32 BasicKind = "float32"
	KindFloat64 BasicKind = "float64"
	KindDouble  BasicKind = "double"
	KindBool    BasicKind = "bool"
	KindString  BasicKind = "string"
	KindVoid    BasicKind = "void"
	KindUnknown BasicKind = "unknown"
)

// Basic is a primitive type: int, float, bool, string, void, unknown,
// plus width aliases (int32/int64, float32/float64) which coexist as
// distinct registry keys (spec §4.1).
type Basic struct {
	termBase
	Kind BasicKind
}

func (b *Basic) String() string { return string(b.Kind) }

// IsNumeric reports whether the basic kind participates in numeric
// unification widening (spec §4.3.2 rule 3).
func (b *Basic) IsNumeric() bool {
	switch b.Kind {
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat, KindFloat32, KindFloat64, KindDouble:
		return true
	default:
		return false
	}
}

// IsFloat reports whether the basic kind is one of the float widths.
func (b *Basic) IsFloat() bool {
	switch b.Kind {
	case KindFloat, KindFloat32, KindFloat64, KindDouble:
		return true
	default:
		return false
	}
}

// NullType is the sentinel type of the `null` literal: it subtypes
// every pointer type (spec §4.2 rule 1) and unifies with one.
type NullType struct{ termBase }

func (*NullType) String() string { return "null" }

// Pointer is a pointer to a pointee term. Unique pointers are
// move-only; shared pointers are copyable (spec §3).
type Pointer struct {
	termBase
	Elem   Type
	Unique bool
}

func (p *Pointer) String() string {
	if p.Unique {
		return fmt.Sprintf("unique Pointer<%v>", p.Elem)
	}
	return fmt.Sprintf("Pointer<%v>", p.Elem)
}

// Reference is a reference to a referent term, with the same
// representation size as a pointer (spec §3).
type Reference struct {
	termBase
	Elem    Type
	Mutable bool
}

func (r *Reference) String() string {
	if r.Mutable {
		return fmt.Sprintf("&mut %v", r.Elem)
	}
	return fmt.Sprintf("&%v", r.Elem)
}

// Array is a fixed- or dynamic-length array. Length 0 denotes a
// pointer-sized dynamic handle (spec §3).
type Array struct {
	termBase
	Elem   Type
	Length int
}

func (a *Array) String() string {
	if a.Length == 0 {
		return fmt.Sprintf("[]%v", a.Elem)
	}
	return fmt.Sprintf("[%d]%v", a.Length, a.Elem)
}

// Function is an ordered parameter list plus a return term. Arity is
// semantically significant (spec §3).
type Function struct {
	termBase
	Params []Type
	Return Type
}

func (f *Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %v", strings.Join(parts, ", "), f.Return)
}

// Generic is a constructor applied to an ordered list of argument
// terms, e.g. Array<T>, Option<T>, Result<T, E> (spec §3).
type Generic struct {
	termBase
	Constructor string
	Args        []Type
}

func (g *Generic) String() string {
	parts := make([]string, len(g.Args))
	for i, a := range g.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", g.Constructor, strings.Join(parts, ", "))
}

// Standard generic constructor names produced by the registry's
// convenience constructors (spec §4.1).
const (
	ConstructorArray     = "Array"
	ConstructorPointer   = "Pointer"
	ConstructorReference = "Reference"
	ConstructorOption    = "Option"
	ConstructorResult    = "Result"
)

// Class is a nominal reference to a user-defined class; field and
// superclass details live in the registry, keyed by Name (spec §3).
type Class struct {
	termBase
	Name string
}

func (c *Class) String() string { return c.Name }

// Trait is a nominal reference to a declared trait; method signatures
// live in the registry, keyed by Name (spec §3).
type Trait struct {
	termBase
	Name string
}

func (t *Trait) String() string { return t.Name }

// Variable is a fresh identifier produced by inference and replaced
// by a ground term in the returned substitution (spec §3).
type Variable struct {
	termBase
	Name string
}

func (v *Variable) String() string { return "'" + v.Name }

// Fresh generates distinct variable terms from a shared counter, in
// the teacher's style (*int threaded through a checker, spec §9 notes
// a union-find alternative for a full HM extension).
type FreshSource struct {
	next int
}

func NewFreshSource() *FreshSource { return &FreshSource{} }

func (f *FreshSource) Fresh(prefix string) *Variable {
	f.next++
	return &Variable{Name: fmt.Sprintf("%s%d", prefix, f.next)}
}

// TypeParameter is a generic declaration's formal parameter: a name
// plus the ordered list of trait names it must satisfy (spec §3).
type TypeParameter struct {
	Name        string
	Constraints []string
}
