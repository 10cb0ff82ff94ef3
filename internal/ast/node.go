package ast

import "loxite/internal/token"

type Node interface {
	NodePos() token.Position
	NodeEndPos() token.Position
	NodeType() NodeType
	String() string
}

func (l *LiteralExpr) NodePos() token.Position    { return l.Pos }
func (l *LiteralExpr) NodeEndPos() token.Position { return l.EndPos }
func (*LiteralExpr) NodeType() NodeType           { return LITERAL }

func (g *GroupingExpr) NodePos() token.Position    { return g.Pos }
func (g *GroupingExpr) NodeEndPos() token.Position { return g.EndPos }
func (*GroupingExpr) NodeType() NodeType           { return GROUPING }

func (u *UnaryExpr) NodePos() token.Position    { return u.Operator.Position }
func (u *UnaryExpr) NodeEndPos() token.Position { return u.Operand.NodeEndPos() }
func (*UnaryExpr) NodeType() NodeType           { return UNARY }

func (b *BinaryExpr) NodePos() token.Position    { return b.Left.NodePos() }
func (b *BinaryExpr) NodeEndPos() token.Position { return b.Right.NodeEndPos() }
func (*BinaryExpr) NodeType() NodeType           { return BINARY }

// EndOf returns the position just past the last byte of tok.
func EndOf(tok token.Token) token.Position {
	return token.Position{
		Line:   tok.Position.Line,
		Column: tok.Position.Column + tok.Width(),
		Offset: tok.Position.Offset + len(tok.Lexeme),
	}
}
