package parser

import (
	"loxite/internal/ast"
	"loxite/internal/errors"
	"loxite/internal/token"
)

// Parser is a recursive-descent parser over a scanned token sequence.
// Each precedence level has its own method, lowest first:
//
//	expression → equality
//	equality   → comparison ( ( "!=" | "==" ) comparison )*
//	comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term       → factor ( ( "-" | "+" ) factor )*
//	factor     → unary ( ( "/" | "*" ) unary )*
//	unary      → ( "!" | "-" ) unary | primary
//	primary    → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
type Parser struct {
	tokens  []token.Token
	current int
}

func NewParser(tokens []token.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		eof := token.Token{Type: token.EOF, Position: token.Position{Line: 1}}
		if len(tokens) > 0 {
			eof.Position = ast.EndOf(tokens[len(tokens)-1])
		}
		tokens = append(tokens[:len(tokens):len(tokens)], eof)
	}
	return &Parser{tokens: tokens}
}

// Parse parses a single expression spanning the whole token sequence.
// The first error aborts the parse.
func (p *Parser) Parse() (ast.Expr, *errors.Diagnostic) {
	expr, err := p.expression()
	if err != nil {
		logger().Debugf("parse failed: %s", err)
		return nil, err
	}

	if !p.isAtEnd() {
		return nil, errors.TrailingInput(p.peek())
	}

	logger().Debugf("parsed %s", expr)
	return expr, nil
}

func (p *Parser) expression() (ast.Expr, *errors.Diagnostic) {
	return p.equality()
}

func (p *Parser) equality() (ast.Expr, *errors.Diagnostic) {
	return p.binary(p.comparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

func (p *Parser) comparison() (ast.Expr, *errors.Diagnostic) {
	return p.binary(p.term, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

func (p *Parser) term() (ast.Expr, *errors.Diagnostic) {
	return p.binary(p.factor, token.MINUS, token.PLUS)
}

func (p *Parser) factor() (ast.Expr, *errors.Diagnostic) {
	return p.binary(p.unary, token.SLASH, token.STAR)
}

// binary parses one left-associative precedence level: an operand followed
// by any number of (operator operand) pairs, folded to the left.
func (p *Parser) binary(operand func() (ast.Expr, *errors.Diagnostic), operators ...token.TokenType) (ast.Expr, *errors.Diagnostic) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(operators...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}

	return expr, nil
}

func (p *Parser) unary() (ast.Expr, *errors.Diagnostic) {
	if p.match(token.BANG, token.MINUS) {
		operator := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{
			Operator: operator,
			Operand:  operand,
		}, nil
	}

	return p.primary()
}

func (p *Parser) primary() (ast.Expr, *errors.Diagnostic) {
	if p.match(token.NUMBER, token.STRING, token.TRUE, token.FALSE, token.NIL) {
		tok := p.previous()
		return &ast.LiteralExpr{
			Pos:    tok.Position,
			EndPos: ast.EndOf(tok),
			Value:  tok.Literal,
		}, nil
	}

	if p.match(token.LEFT_PAREN) {
		open := p.previous()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}

		closing, err := p.consume(token.RIGHT_PAREN, func(tok token.Token) *errors.Diagnostic {
			return errors.ExpectedRightParen(tok, open)
		})
		if err != nil {
			return nil, err
		}

		return &ast.GroupingExpr{
			Pos:    open.Position,
			EndPos: ast.EndOf(closing),
			Inner:  inner,
		}, nil
	}

	return nil, errors.ExpectedExpression(p.peek())
}
