package grammar_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loxite/grammar"
	"loxite/internal/ast"
	"loxite/internal/errors"
	"loxite/internal/parser"
	"loxite/internal/token"
)

var validSources = []string{
	"1",
	"45.67",
	`"hello"`,
	`""`,
	"true",
	"false",
	"nil",
	"-123 * (45.67)",
	"1 + 2 * 3",
	"(1 + 2) * 3",
	"1 - 2 - 3",
	"8 / 4 / 2",
	"!!true",
	"--1",
	"1 < 2 == 3 >= 4",
	"1 == 2 != 3",
	"-1 + -2 * !3 <= 4",
	"((1))",
	"1 // trailing comment",
	"\"multi\nline\" + \"x\"",
}

var invalidSources = []string{
	"",
	")",
	"1 +",
	"(1 + 2",
	"(1 2)",
	"1 2",
	"foo",
	"* 3",
	"123.",
	"1 !== 2",
}

func TestGrammarMatchesDescentParser(t *testing.T) {
	for _, source := range validSources {
		t.Run(source, func(t *testing.T) {
			expected, _, diags := parser.ParseSource(source)
			require.Empty(t, diags)

			program, err := grammar.ParseString("test.lox", source)
			require.NoError(t, err)
			assert.Equal(t, ast.Print(expected), ast.Print(program.ToAST()))
		})
	}
}

func TestGrammarRejectsWhatDescentRejects(t *testing.T) {
	for _, source := range invalidSources {
		t.Run(source, func(t *testing.T) {
			_, _, diags := parser.ParseSource(source)
			require.NotEmpty(t, diags)

			_, err := grammar.ParseString("test.lox", source)
			assert.Error(t, err)
		})
	}
}

func TestGrammarLiterals(t *testing.T) {
	program, err := grammar.ParseString("test.lox", `"a\nb"`)
	require.NoError(t, err)

	lit, ok := program.ToAST().(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, token.String(`a\nb`), lit.Value)

	program, err = grammar.ParseString("test.lox", "nil")
	require.NoError(t, err)
	assert.True(t, program.ToAST().(*ast.LiteralExpr).Value.IsEmpty())

	program, err = grammar.ParseString("test.lox", "1"+strings.Repeat("0", 400))
	require.NoError(t, err)
	assert.True(t, math.IsInf(program.ToAST().(*ast.LiteralExpr).Value.Num, 1))
}

func TestGrammarOperatorPositions(t *testing.T) {
	program, err := grammar.ParseString("test.lox", "1 +\n  -2")
	require.NoError(t, err)

	binary, ok := program.ToAST().(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, binary.Operator.Type)
	assert.Equal(t, token.Position{Line: 1, Column: 3, Offset: 2}, binary.Operator.Position)

	unary, ok := binary.Right.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.MINUS, unary.Operator.Type)
	assert.Equal(t, 2, unary.Operator.Line())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"1+2*3", "1 + 2 * 3"},
		{"( 1+2 )*3", "(1 + 2) * 3"},
		{"- - 1", "--1"},
		{"!  true==false", "!true == false"},
		{"1<=2 // note", "1 <= 2"},
		{`"a"+"b"`, `"a" + "b"`},
		{"nil!=nil", "nil != nil"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			program, err := grammar.ParseString("test.lox", tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, program.String())

			reparsed, err := grammar.ParseString("test.lox", program.String())
			require.NoError(t, err)
			assert.Equal(t, ast.Print(program.ToAST()), ast.Print(reparsed.ToAST()))
		})
	}
}

func TestToDiagnostic(t *testing.T) {
	source := "1 2"
	tokens, _ := parser.Scan(source)

	_, err := grammar.ParseString("test.lox", source)
	require.Error(t, err)

	d := grammar.ToDiagnostic(err, tokens)
	assert.Equal(t, errors.ParseError, d.Kind)
	assert.Equal(t, errors.ErrorGrammarRejected, d.Code)
	assert.Equal(t, "2", d.Token.Lexeme)
	assert.True(t, strings.HasPrefix(d.String(), "[line 1] Error at '2': "))
}
