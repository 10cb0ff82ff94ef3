package ast

import "fmt"

// Visitor handles every expression variant. Adding a variant to Expr means
// adding a method here, which breaks every implementation until it is handled.
type Visitor[R any] interface {
	VisitLiteralExpr(expr *LiteralExpr) R
	VisitGroupingExpr(expr *GroupingExpr) R
	VisitUnaryExpr(expr *UnaryExpr) R
	VisitBinaryExpr(expr *BinaryExpr) R
}

// Accept dispatches expr to the matching Visitor method.
func Accept[R any](expr Expr, v Visitor[R]) R {
	switch e := expr.(type) {
	case *LiteralExpr:
		return v.VisitLiteralExpr(e)
	case *GroupingExpr:
		return v.VisitGroupingExpr(e)
	case *UnaryExpr:
		return v.VisitUnaryExpr(e)
	case *BinaryExpr:
		return v.VisitBinaryExpr(e)
	}
	panic(fmt.Sprintf("ast: unhandled expression %T", expr))
}

// Walk calls fn for expr and each of its descendants in source order.
// Returning false from fn skips the children of that node.
func Walk(expr Expr, fn func(Expr) bool) {
	if expr == nil || !fn(expr) {
		return
	}
	switch e := expr.(type) {
	case *GroupingExpr:
		Walk(e.Inner, fn)
	case *UnaryExpr:
		Walk(e.Operand, fn)
	case *BinaryExpr:
		Walk(e.Left, fn)
		Walk(e.Right, fn)
	}
}
