package interpreter

import (
	"github.com/tliron/commonlog"

	"loxite/internal/ast"
	"loxite/internal/errors"
	"loxite/internal/token"
)

// result carries either a value or the runtime error that aborted
// evaluation of the enclosing expression.
type result struct {
	value Value
	err   *errors.Diagnostic
}

func ok(v Value) result {
	return result{value: v}
}

func fail(d *errors.Diagnostic) result {
	return result{err: d}
}

// Interpreter evaluates expression trees. It holds no state between calls.
type Interpreter struct{}

func New() *Interpreter {
	return &Interpreter{}
}

// Evaluate computes the value of expr. The first runtime error aborts the
// whole evaluation and is returned instead of a value.
func (in *Interpreter) Evaluate(expr ast.Expr) (Value, *errors.Diagnostic) {
	r := ast.Accept[result](expr, in)
	if r.err != nil {
		logger().Debugf("runtime error: %s", r.err)
		return nil, r.err
	}
	logger().Debugf("evaluated to %s %s", r.value.Kind(), r.value)
	return r.value, nil
}

// Evaluate runs expr with a fresh interpreter.
func Evaluate(expr ast.Expr) (Value, *errors.Diagnostic) {
	return New().Evaluate(expr)
}

func (in *Interpreter) VisitLiteralExpr(expr *ast.LiteralExpr) result {
	return ok(FromLiteral(expr.Value))
}

func (in *Interpreter) VisitGroupingExpr(expr *ast.GroupingExpr) result {
	return ast.Accept[result](expr.Inner, in)
}

func (in *Interpreter) VisitUnaryExpr(expr *ast.UnaryExpr) result {
	operand := ast.Accept[result](expr.Operand, in)
	if operand.err != nil {
		return operand
	}

	switch expr.Operator.Type {
	case token.MINUS:
		n, isNumber := operand.value.(Number)
		if !isNumber {
			return fail(errors.NumberOperand(expr.Operator))
		}
		return ok(-n)
	case token.BANG:
		return ok(Boolean(!IsTruthy(operand.value)))
	}

	panic("interpreter: unary operator " + expr.Operator.Type.String())
}

func (in *Interpreter) VisitBinaryExpr(expr *ast.BinaryExpr) result {
	left := ast.Accept[result](expr.Left, in)
	if left.err != nil {
		return left
	}
	right := ast.Accept[result](expr.Right, in)
	if right.err != nil {
		return right
	}

	op := expr.Operator
	switch op.Type {
	case token.EQUAL_EQUAL:
		return ok(Boolean(IsEqual(left.value, right.value)))
	case token.BANG_EQUAL:
		return ok(Boolean(!IsEqual(left.value, right.value)))
	case token.PLUS:
		return add(op, left.value, right.value)
	}

	a, b, isNumbers := numberOperands(left.value, right.value)
	if !isNumbers {
		return fail(errors.NumberOperands(op))
	}

	switch op.Type {
	case token.MINUS:
		return ok(a - b)
	case token.STAR:
		return ok(a * b)
	case token.SLASH:
		// IEEE division: x/0 is ±Inf and 0/0 is NaN.
		return ok(a / b)
	case token.GREATER:
		return ok(Boolean(a > b))
	case token.GREATER_EQUAL:
		return ok(Boolean(a >= b))
	case token.LESS:
		return ok(Boolean(a < b))
	case token.LESS_EQUAL:
		return ok(Boolean(a <= b))
	}

	panic("interpreter: binary operator " + op.Type.String())
}

func add(op token.Token, left, right Value) result {
	if a, b, isNumbers := numberOperands(left, right); isNumbers {
		return ok(a + b)
	}

	a, leftString := left.(String)
	b, rightString := right.(String)
	if leftString && rightString {
		return ok(a + b)
	}

	return fail(errors.NumberOrStringOperands(op))
}

func numberOperands(left, right Value) (Number, Number, bool) {
	a, leftNumber := left.(Number)
	b, rightNumber := right.(Number)
	return a, b, leftNumber && rightNumber
}

func logger() commonlog.Logger {
	return commonlog.GetLogger("loxite.interpreter")
}
