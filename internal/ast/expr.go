package ast

import "loxite/internal/token"

// Expr is the closed set of expression nodes. The unexported marker keeps
// the set sealed to this package; consumers handle every variant through
// Visitor.
type Expr interface {
	Node
	isExpr()
}

func (*LiteralExpr) isExpr() {}

func (*GroupingExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

// LiteralExpr is a number, string, boolean or nil written in source.
// Example: 42, "hello", true, nil
type LiteralExpr struct {
	Pos    token.Position
	EndPos token.Position
	Value  token.Literal
}

// GroupingExpr is a parenthesized expression.
// Example: (1 + 2)
type GroupingExpr struct {
	Pos    token.Position
	EndPos token.Position
	Inner  Expr
}

// UnaryExpr is a prefix operator applied to a single operand.
// Example: -x, !true
type UnaryExpr struct {
	Operator token.Token
	Operand  Expr
}

// BinaryExpr is an infix operator applied to two operands.
// Example: 1 + 2, a == b
type BinaryExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}
