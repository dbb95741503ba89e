package infer

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/tafolabi009/TocinLang/src/diag"
	"github.com/tafolabi009/TocinLang/src/types"
)

// Synth ascribes a type to expr, one rule per variant (spec
// §4.3.1). This is the public, panic-recovering entry point.
func (e *Engine) Synth(expr types.Expr) (types.Type, error) {
	return tryDiag(func() types.Type {
		return e.synth(expr)
	})
}

func (e *Engine) synth(expr types.Expr) types.Type {
	switch expr := expr.(type) {
	case *types.Literal:
		return e.synthLiteral(expr)
	case *types.VariableExpr:
		return e.synthVariable(expr)
	case *types.UnaryExpr:
		return e.synthUnary(expr)
	case *types.BinaryExpr:
		return e.synthBinary(expr)
	case *types.CallExpr:
		return e.synthCall(expr)
	case *types.LambdaExpr:
		return e.synthLambda(expr)
	case *types.ListExpr:
		return e.synthList(expr)
	default:
		// Fallback: any unhandled expression variant yields void
		// (spec §4.3.1 "Fallback").
		return &types.Basic{Kind: types.KindVoid}
	}
}

// synthLiteral: the lexer token kind drives the result — a numeric
// literal containing a decimal point is a float, otherwise an int;
// strings and booleans type directly (spec §4.3.1 "Literal").
func (e *Engine) synthLiteral(lit *types.Literal) types.Type {
	switch lit.Kind {
	case types.LiteralInt:
		if lit.HasDecimalPoint {
			return &types.Basic{Kind: types.KindFloat}
		}
		return &types.Basic{Kind: types.KindInt}
	case types.LiteralFloat:
		return &types.Basic{Kind: types.KindFloat}
	case types.LiteralString:
		return &types.Basic{Kind: types.KindString}
	case types.LiteralBool:
		return &types.Basic{Kind: types.KindBool}
	default:
		spew.Dump(lit)
		panic("unreachable")
	}
}

// synthVariable: look up in the variable environment; a missing name
// is an error (spec §4.3.1 "Variable").
func (e *Engine) synthVariable(v *types.VariableExpr) types.Type {
	ty, ok := e.Registry.LookupVar(v.Name)
	if !ok {
		panic(diag.Unknown("variable", v.Name))
	}
	return ty
}

// synthUnary: logical-not always yields bool regardless of operand
// (the operand must still type-check); every other unary operator
// passes the operand's inferred type through unchanged (spec §4.3.1
// "Unary").
func (e *Engine) synthUnary(u *types.UnaryExpr) types.Type {
	operand := e.synth(u.Operand)
	if u.Op == types.UnaryNot {
		return &types.Basic{Kind: types.KindBool}
	}
	return operand
}

// synthBinary: arithmetic operators unify the operand types and
// return the unified type; comparison operators require the operand
// types to unify and return bool regardless of the unified result
// (spec §4.3.1 "Binary").
func (e *Engine) synthBinary(b *types.BinaryExpr) types.Type {
	left := e.synth(b.Left)
	right := e.synth(b.Right)
	unified, _ := e.unify(left, right, EmptySubst())
	if b.Op.IsComparison() {
		return &types.Basic{Kind: types.KindBool}
	}
	return unified
}

// synthCall: the callee must infer to a Function type; the result is
// that function's return type. Argument-to-parameter checking is
// deliberately not performed here (spec §4.3.1 "Call") so that
// partial inference on the callee can proceed even when individual
// arguments don't yet type-check; that check belongs to a
// higher-level layer built from the subtyping predicate (spec §4.2).
func (e *Engine) synthCall(c *types.CallExpr) types.Type {
	calleeTy := e.synth(c.Callee)
	fn, ok := calleeTy.(*types.Function)
	if !ok {
		panic(diag.New(diag.KindUnificationFailure, "callee is not a function: "+calleeTy.String()))
	}
	return fn.Return
}

// synthLambda: construct a Function type from the declared parameter
// types and the declared/annotated return type (spec §4.3.1
// "Lambda").
func (e *Engine) synthLambda(l *types.LambdaExpr) types.Type {
	return &types.Function{Params: l.ParamTypes, Return: l.ReturnType}
}

// synthList: an empty list has no inference target and is a type
// error; a non-empty list's element type is the unification of every
// element's inferred type, wrapped as a dynamic array. Spec §9(a)'s
// Open Question is resolved per its own instruction: unify across all
// elements rather than typing only from the first.
func (e *Engine) synthList(l *types.ListExpr) types.Type {
	if len(l.Elems) == 0 {
		panic(diag.New(diag.KindUnificationFailure, "cannot infer type of empty list literal"))
	}
	elemTy := e.synth(l.Elems[0])
	subst := EmptySubst()
	for _, elem := range l.Elems[1:] {
		next := e.synth(elem)
		elemTy, subst = e.unify(elemTy, next, subst)
	}
	return &types.Array{Elem: elemTy, Length: 0}
}
