package parser

import (
	"loxite/internal/errors"
	"loxite/internal/token"
)

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt token.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) match(types ...token.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume is the only place an expected token is enforced. On a mismatch
// nothing is consumed and fail builds the diagnostic for the current token.
func (p *Parser) consume(tt token.TokenType, fail func(token.Token) *errors.Diagnostic) (token.Token, *errors.Diagnostic) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return token.Token{}, fail(p.peek())
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

// previous returns the most recently consumed token, or the current one
// when nothing has been consumed yet.
func (p *Parser) previous() token.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

// Synchronize discards tokens until the start of the next statement: just
// past a ';' or before a statement keyword. Expression parsing aborts on the
// first error and never calls it; it is kept for statement-level recovery.
func (p *Parser) Synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}

		p.advance()
	}
}
