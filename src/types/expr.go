package types

import "fmt"

// Expr is the sealed interface for the expression-tree variants the
// inference engine ascribes types to (spec §4.3.1). The parser that
// produces these trees is out of this subsystem's scope (spec §1); it
// hands the engine a tree already in this shape.
type Expr interface {
	fmt.Stringer
	_Expr()
}

type exprBase struct{}

func (exprBase) _Expr() {}

// LiteralKind distinguishes the lexer token kinds that drive literal
// typing (spec §4.3.1 "Literal").
type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralString
	LiteralBool
)

// Literal is a literal token. HasDecimalPoint drives the
// int-vs-float split for numeric literals: "a numeric literal
// containing a decimal point -> float primitive; otherwise -> int".
type Literal struct {
	exprBase
	Kind            LiteralKind
	HasDecimalPoint bool
}

func (l *Literal) String() string { return fmt.Sprintf("literal(%v)", l.Kind) }

// VariableExpr references a name looked up in the variable
// environment at typing time.
type VariableExpr struct {
	exprBase
	Name string
}

func (v *VariableExpr) String() string { return v.Name }

// UnaryOp enumerates the unary operators relevant to typing (spec
// §4.3.1 "Unary": logical-not always yields bool; others pass the
// operand's type through).
type UnaryOp int

const (
	UnaryNot UnaryOp = iota
	UnaryNeg
	UnaryPos
)

type UnaryExpr struct {
	exprBase
	Op      UnaryOp
	Operand Expr
}

func (u *UnaryExpr) String() string { return fmt.Sprintf("unary(%v)", u.Operand) }

// BinaryOp enumerates the binary operators relevant to typing: the
// four arithmetic operators unify and return the unified type; the
// six comparison operators unify and return bool (spec §4.3.1
// "Binary").
type BinaryOp int

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv

	BinaryEq
	BinaryNeq
	BinaryLt
	BinaryLte
	BinaryGt
	BinaryGte
)

func (op BinaryOp) IsComparison() bool {
	switch op {
	case BinaryEq, BinaryNeq, BinaryLt, BinaryLte, BinaryGt, BinaryGte:
		return true
	default:
		return false
	}
}

func (op BinaryOp) String() string {
	switch op {
	case BinaryAdd:
		return "+"
	case BinarySub:
		return "-"
	case BinaryMul:
		return "*"
	case BinaryDiv:
		return "/"
	case BinaryEq:
		return "=="
	case BinaryNeq:
		return "!="
	case BinaryLt:
		return "<"
	case BinaryLte:
		return "<="
	case BinaryGt:
		return ">"
	case BinaryGte:
		return ">="
	default:
		panic("unreachable")
	}
}

type BinaryExpr struct {
	exprBase
	Op          BinaryOp
	Left, Right Expr
}

func (b *BinaryExpr) String() string { return fmt.Sprintf("(%v %v %v)", b.Left, b.Op, b.Right) }

// CallExpr applies a callee, which must infer to a Function type; the
// result is that function's return type. Argument-to-parameter
// checking is deliberately not performed here (spec §4.3.1 "Call") so
// that partial inference on the callee can proceed independently of
// argument typing; it belongs to a higher-level check built from the
// subtyping predicate (spec §4.2).
type CallExpr struct {
	exprBase
	Callee Expr
	Args   []Expr
}

func (c *CallExpr) String() string { return fmt.Sprintf("%v(...)", c.Callee) }

// LambdaExpr constructs a Function type from declared parameter types
// and a declared or annotated return type (spec §4.3.1 "Lambda").
type LambdaExpr struct {
	exprBase
	ParamTypes []Type
	ReturnType Type
	Body       Expr
}

func (l *LambdaExpr) String() string { return "lambda" }

// ListExpr is a list literal. An empty list has no inference target
// and is a type error; a non-empty list's element type is the unified
// type of every element, wrapped as a dynamic Array (spec §4.3.1
// "List literal", resolved per the Open Question in spec §9(a): unify
// across all elements rather than typing only from the first).
type ListExpr struct {
	exprBase
	Elems []Expr
}

func (l *ListExpr) String() string { return fmt.Sprintf("[%d elems]", len(l.Elems)) }

// OtherExpr stands in for any expression variant this subsystem does
// not specialize; Synth falls back to void for it (spec §4.3.1
// "Fallback").
type OtherExpr struct {
	exprBase
	Label string
}

func (o *OtherExpr) String() string { return o.Label }
