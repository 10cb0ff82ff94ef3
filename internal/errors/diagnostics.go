package errors

import (
	"fmt"

	"loxite/internal/token"
)

// DiagnosticBuilder provides a fluent interface for creating diagnostics with suggestions
type DiagnosticBuilder struct {
	d Diagnostic
}

// NewDiagnostic creates a new error-level diagnostic builder
func NewDiagnostic(kind Kind, code, message string, pos token.Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		d: Diagnostic{
			Kind:     kind,
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// At attaches the offending token and takes its position and length
func (b *DiagnosticBuilder) At(tok token.Token) *DiagnosticBuilder {
	b.d.Token = tok
	b.d.Position = tok.Position
	b.d.Length = max(1, tok.Width())
	return b
}

// WithLevel sets the severity
func (b *DiagnosticBuilder) WithLevel(level ErrorLevel) *DiagnosticBuilder {
	b.d.Level = level
	return b
}

// WithLength sets the length of the error span
func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	b.d.Length = length
	return b
}

// WithSuggestion adds a suggestion to the diagnostic
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.d.Suggestions = append(b.d.Suggestions, message)
	return b
}

// WithNote adds a note to the diagnostic
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

// WithHelp adds help text to the diagnostic
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.d.HelpText = help
	return b
}

// Build returns the completed diagnostic
func (b *DiagnosticBuilder) Build() *Diagnostic {
	d := b.d
	return &d
}

// Lexer diagnostics

func UnexpectedCharacter(c byte, pos token.Position) *Diagnostic {
	return NewDiagnostic(LexError, ErrorUnexpectedCharacter, "Unexpected character.", pos).
		WithNote(fmt.Sprintf("found %q", c)).
		Build()
}

func UnterminatedString(pos token.Position, length int) *Diagnostic {
	return NewDiagnostic(LexError, ErrorUnterminatedString, "Unterminated string", pos).
		WithLength(length).
		WithSuggestion("add a closing '\"' to end the string").
		WithNote("string literals may span lines but must be closed before the end of input").
		Build()
}

// Parser diagnostics

func ExpectedExpression(tok token.Token) *Diagnostic {
	return NewDiagnostic(ParseError, ErrorExpectedExpression, "Expected expression.", tok.Position).
		At(tok).
		WithHelp("an expression starts with a number, a string, true, false, nil, '(', '!' or '-'").
		Build()
}

func ExpectedRightParen(tok token.Token, open token.Token) *Diagnostic {
	return NewDiagnostic(ParseError, ErrorExpectedRightParen, "Expected ')' after expression", tok.Position).
		At(tok).
		WithSuggestion("add ')' to close the group").
		WithNote(fmt.Sprintf("the group was opened on line %d", open.Line())).
		Build()
}

func TrailingInput(tok token.Token) *Diagnostic {
	return NewDiagnostic(ParseError, ErrorTrailingInput, "Expected end of expression.", tok.Position).
		At(tok).
		WithHelp("only a single expression is evaluated per input").
		Build()
}

func GrammarRejected(tok token.Token, message string) *Diagnostic {
	return NewDiagnostic(ParseError, ErrorGrammarRejected, message, tok.Position).
		At(tok).
		Build()
}

// Runtime diagnostics

func NumberOperand(operator token.Token) *Diagnostic {
	return NewDiagnostic(RuntimeError, ErrorNumberOperand, "Operand must be a number.", operator.Position).
		At(operator).
		Build()
}

func NumberOperands(operator token.Token) *Diagnostic {
	return NewDiagnostic(RuntimeError, ErrorNumberOperands, "Operands must be numbers.", operator.Position).
		At(operator).
		Build()
}

func NumberOrStringOperands(operator token.Token) *Diagnostic {
	return NewDiagnostic(RuntimeError, ErrorNumberOrStringOperands, "Operands must be two numbers or two strings.", operator.Position).
		At(operator).
		WithNote("values are never converted implicitly; '+' does not mix numbers and strings").
		Build()
}

// Lint diagnostics

func RedundantGrouping(start, end token.Position) *Diagnostic {
	return NewDiagnostic(Lint, WarningRedundantGrouping, "Redundant parentheses.", start).
		WithLevel(Warning).
		WithLength(max(1, end.Offset-start.Offset)).
		WithSuggestion("remove the parentheses").
		Build()
}

func DoubleNegation(operator token.Token) *Diagnostic {
	return NewDiagnostic(Lint, WarningDoubleNegation, fmt.Sprintf("Repeated '%s' has no effect.", operator.Lexeme), operator.Position).
		At(operator).
		WithLevel(Warning).
		WithSuggestion(fmt.Sprintf("remove both '%s' operators", operator.Lexeme)).
		Build()
}

func ConstantComparison(operator token.Token, left, right string, result bool) *Diagnostic {
	return NewDiagnostic(Lint, WarningConstantComparison, fmt.Sprintf("Comparison is always %t.", result), operator.Position).
		At(operator).
		WithLevel(Warning).
		WithNote(fmt.Sprintf("a %s is never equal to a %s", left, right)).
		Build()
}
