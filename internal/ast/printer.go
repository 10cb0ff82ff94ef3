package ast

import "strings"

// Printer renders an expression as a fully parenthesized prefix form.
// Example: -123 * (45.67) prints as (* (- 123) (group 45.67))
type Printer struct{}

func Print(expr Expr) string {
	return Accept[string](expr, Printer{})
}

func (p Printer) VisitLiteralExpr(expr *LiteralExpr) string {
	if expr.Value.IsEmpty() {
		return "nil"
	}
	return expr.Value.String()
}

func (p Printer) VisitGroupingExpr(expr *GroupingExpr) string {
	return p.parenthesize("group", expr.Inner)
}

func (p Printer) VisitUnaryExpr(expr *UnaryExpr) string {
	return p.parenthesize(expr.Operator.Lexeme, expr.Operand)
}

func (p Printer) VisitBinaryExpr(expr *BinaryExpr) string {
	return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (p Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder

	b.WriteString("(")
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteString(" ")
		b.WriteString(Accept[string](expr, p))
	}
	b.WriteString(")")

	return b.String()
}

func (l *LiteralExpr) String() string  { return Print(l) }
func (g *GroupingExpr) String() string { return Print(g) }
func (u *UnaryExpr) String() string    { return Print(u) }
func (b *BinaryExpr) String() string   { return Print(b) }
