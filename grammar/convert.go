package grammar

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"loxite/internal/ast"
	"loxite/internal/token"
)

var operatorTypes = map[string]token.TokenType{
	"!=": token.BANG_EQUAL,
	"==": token.EQUAL_EQUAL,
	">":  token.GREATER,
	">=": token.GREATER_EQUAL,
	"<":  token.LESS,
	"<=": token.LESS_EQUAL,
	"-":  token.MINUS,
	"+":  token.PLUS,
	"/":  token.SLASH,
	"*":  token.STAR,
	"!":  token.BANG,
}

// ToAST converts the parse tree into the expression tree the evaluator
// consumes. Operator chains fold to the left.
func (p *Program) ToAST() ast.Expr {
	return p.Expr.toAST()
}

func (e *Expression) toAST() ast.Expr {
	return e.Equality.toAST()
}

func (e *Equality) toAST() ast.Expr {
	expr := e.Head.toAST()
	for _, op := range e.Tail {
		expr = binary(expr, op.Pos, op.Operator, op.Right.toAST())
	}
	return expr
}

func (c *Comparison) toAST() ast.Expr {
	expr := c.Head.toAST()
	for _, op := range c.Tail {
		expr = binary(expr, op.Pos, op.Operator, op.Right.toAST())
	}
	return expr
}

func (t *Term) toAST() ast.Expr {
	expr := t.Head.toAST()
	for _, op := range t.Tail {
		expr = binary(expr, op.Pos, op.Operator, op.Right.toAST())
	}
	return expr
}

func (f *Factor) toAST() ast.Expr {
	expr := f.Head.toAST()
	for _, op := range f.Tail {
		expr = binary(expr, op.Pos, op.Operator, op.Right.toAST())
	}
	return expr
}

func (u *Unary) toAST() ast.Expr {
	if u.Operator == nil {
		return u.Primary.toAST()
	}
	return &ast.UnaryExpr{
		Operator: operatorToken(u.Pos, *u.Operator),
		Operand:  u.Operand.toAST(),
	}
}

func (p *Primary) toAST() ast.Expr {
	if p.Group != nil {
		return &ast.GroupingExpr{
			Pos:    position(p.Pos),
			EndPos: position(p.EndPos),
			Inner:  p.Group.toAST(),
		}
	}

	var value token.Literal
	switch {
	case p.Number != nil:
		value = token.Number(parseNumber(*p.Number))
	case p.Str != nil:
		value = token.String((*p.Str)[1 : len(*p.Str)-1])
	case p.True:
		value = token.Boolean(true)
	case p.False:
		value = token.Boolean(false)
	}

	return &ast.LiteralExpr{
		Pos:    position(p.Pos),
		EndPos: position(p.EndPos),
		Value:  value,
	}
}

func binary(left ast.Expr, pos lexer.Position, operator string, right ast.Expr) ast.Expr {
	return &ast.BinaryExpr{
		Left:     left,
		Operator: operatorToken(pos, operator),
		Right:    right,
	}
}

func operatorToken(pos lexer.Position, operator string) token.Token {
	return token.Token{
		Type:     operatorTypes[operator],
		Lexeme:   operator,
		Position: position(pos),
	}
}

func position(pos lexer.Position) token.Position {
	return token.Position{Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
}

// parseNumber only sees digit runs admitted by the lexer, so the one
// possible failure is overflow, where ParseFloat already returns ±Inf.
func parseNumber(text string) float64 {
	value, _ := strconv.ParseFloat(text, 64)
	return value
}
