package semantic

import (
	"loxite/internal/ast"
	"loxite/internal/errors"
	"loxite/internal/interpreter"
	"loxite/internal/token"
)

// Analyzer walks a parsed expression and reports constructs that are legal
// but almost certainly not what was meant. It never reports errors: every
// finding is a warning and evaluation is unaffected.
type Analyzer struct {
	warnings []*errors.Diagnostic
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze returns the warnings for expr in source order.
func (a *Analyzer) Analyze(expr ast.Expr) []*errors.Diagnostic {
	a.warnings = nil
	ast.Accept[inferred](expr, a)
	return a.warnings
}

// Analyze runs a fresh analyzer over expr.
func Analyze(expr ast.Expr) []*errors.Diagnostic {
	return NewAnalyzer().Analyze(expr)
}

func (a *Analyzer) warn(d *errors.Diagnostic) {
	a.warnings = append(a.warnings, d)
}

func (a *Analyzer) VisitLiteralExpr(expr *ast.LiteralExpr) inferred {
	return known(interpreter.FromLiteral(expr.Value).Kind())
}

func (a *Analyzer) VisitGroupingExpr(expr *ast.GroupingExpr) inferred {
	switch expr.Inner.(type) {
	case *ast.LiteralExpr, *ast.GroupingExpr:
		a.warn(errors.RedundantGrouping(expr.Pos, expr.EndPos))
	}
	return ast.Accept[inferred](expr.Inner, a)
}

func (a *Analyzer) VisitUnaryExpr(expr *ast.UnaryExpr) inferred {
	operand := ast.Accept[inferred](expr.Operand, a)

	if inner, ok := expr.Operand.(*ast.UnaryExpr); ok && inner.Operator.Type == expr.Operator.Type {
		// !!x is the idiom for converting to a boolean, so it only has no
		// effect when x is already one.
		innerOperand := ast.Accept[inferred](inner.Operand, &Analyzer{})
		if expr.Operator.Type == token.MINUS || innerOperand.is(interpreter.BooleanKind) {
			a.warn(errors.DoubleNegation(expr.Operator))
		}
	}

	return a.inferUnary(expr.Operator, operand)
}

func (a *Analyzer) VisitBinaryExpr(expr *ast.BinaryExpr) inferred {
	left := ast.Accept[inferred](expr.Left, a)
	right := ast.Accept[inferred](expr.Right, a)

	switch expr.Operator.Type {
	case token.EQUAL_EQUAL, token.BANG_EQUAL:
		if left.known && right.known && left.kind != right.kind {
			a.warn(errors.ConstantComparison(expr.Operator, left.kind.String(), right.kind.String(),
				expr.Operator.Type == token.BANG_EQUAL))
		}
	}

	return a.inferBinary(expr.Operator, left, right)
}
