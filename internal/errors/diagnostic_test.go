package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"loxite/internal/token"
)

func TestDiagnosticRendering(t *testing.T) {
	minus := token.Token{Type: token.MINUS, Lexeme: "-", Position: token.Position{Line: 3, Column: 1}}
	rparen := token.Token{Type: token.RIGHT_PAREN, Lexeme: ")", Position: token.Position{Line: 1, Column: 2}}
	eof := token.Token{Type: token.EOF, Position: token.Position{Line: 4}}

	tests := []struct {
		name     string
		d        *Diagnostic
		expected string
	}{
		{"lex", UnexpectedCharacter('@', token.Position{Line: 2, Column: 5}), "[line 2] Error: Unexpected character."},
		{"unterminated", UnterminatedString(token.Position{Line: 7}, 3), "[line 7] Error: Unterminated string"},
		{"parse at lexeme", ExpectedExpression(rparen), "[line 1] Error at ')': Expected expression."},
		{"parse at end", ExpectedRightParen(eof, rparen), "[line 4] Error at end: Expected ')' after expression"},
		{"runtime", NumberOperand(minus), "[line 3]: Operand must be a number."},
		{"lint", DoubleNegation(minus), "[line 3] Warning: Repeated '-' has no effect."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.d.String())
			assert.Equal(t, tt.expected, tt.d.Error())
		})
	}
}

func TestDiagnosticKinds(t *testing.T) {
	plus := token.Token{Type: token.PLUS, Lexeme: "+", Position: token.Position{Line: 1, Column: 3}}

	assert.Equal(t, LexError, UnexpectedCharacter('$', token.Position{Line: 1}).Kind)
	assert.Equal(t, ParseError, TrailingInput(plus).Kind)
	assert.Equal(t, RuntimeError, NumberOperands(plus).Kind)
	assert.Equal(t, ErrorNumberOperands, NumberOperands(plus).Code)
	assert.Equal(t, plus, NumberOperands(plus).Token)
}

func TestBuilderCopiesDiagnostic(t *testing.T) {
	b := NewDiagnostic(RuntimeError, ErrorNumberOperands, "Operands must be numbers.", token.Position{Line: 1})
	first := b.Build()
	b.WithHelp("changed")

	assert.Empty(t, first.HelpText)
	assert.Equal(t, 1, first.Length)
}

func TestHasErrors(t *testing.T) {
	warn := NewDiagnostic(LexError, ErrorUnexpectedCharacter, "x", token.Position{Line: 1}).Build()
	warn.Level = Warning

	assert.False(t, HasErrors(nil))
	assert.False(t, HasErrors([]*Diagnostic{warn}))
	assert.True(t, HasErrors([]*Diagnostic{warn, UnexpectedCharacter('@', token.Position{Line: 1})}))
}

func TestErrorCategories(t *testing.T) {
	assert.Equal(t, "Lexer", GetErrorCategory(ErrorUnterminatedString))
	assert.Equal(t, "Parser", GetErrorCategory(ErrorExpectedRightParen))
	assert.Equal(t, "Runtime", GetErrorCategory(ErrorNumberOrStringOperands))
	assert.Equal(t, "Lint", GetErrorCategory(WarningConstantComparison))
	assert.Equal(t, "Unknown", GetErrorCategory("X1"))
	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
}

func TestLintDiagnosticsAreWarnings(t *testing.T) {
	eq := token.Token{Type: token.EQUAL_EQUAL, Lexeme: "==", Position: token.Position{Line: 1, Column: 3, Offset: 2}}

	d := ConstantComparison(eq, "number", "string", false)
	assert.Equal(t, Lint, d.Kind)
	assert.Equal(t, Warning, d.Level)
	assert.Equal(t, "[line 1] Warning: Comparison is always false.", d.String())
	assert.False(t, HasErrors([]*Diagnostic{d}))

	group := RedundantGrouping(token.Position{Line: 1, Offset: 0}, token.Position{Line: 1, Offset: 3})
	assert.Equal(t, 3, group.Length)
}
