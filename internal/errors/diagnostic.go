package errors

import (
	"fmt"

	"loxite/internal/token"
)

// Kind identifies the pipeline stage that produced a diagnostic.
type Kind uint8

const (
	LexError Kind = iota
	ParseError
	RuntimeError
	Lint
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case ParseError:
		return "parse error"
	case RuntimeError:
		return "runtime error"
	case Lint:
		return "lint"
	default:
		return "error"
	}
}

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// Diagnostic is a failure reported by the scanner, parser or interpreter,
// or a lint finding. Lex and lint diagnostics carry only a position; parse
// and runtime diagnostics also carry the offending token.
type Diagnostic struct {
	Kind        Kind
	Level       ErrorLevel
	Code        string
	Message     string
	Token       token.Token
	Position    token.Position
	Length      int
	Suggestions []string
	Notes       []string
	HelpText    string
}

func (d *Diagnostic) Line() int {
	return d.Position.Line
}

// String renders the diagnostic in its canonical one-line form.
func (d *Diagnostic) String() string {
	switch d.Kind {
	case ParseError:
		return fmt.Sprintf("[line %d] Error%s: %s", d.Line(), d.Token.Where(), d.Message)
	case RuntimeError:
		return fmt.Sprintf("[line %d]: %s", d.Line(), d.Message)
	case Lint:
		return fmt.Sprintf("[line %d] Warning: %s", d.Line(), d.Message)
	default:
		return fmt.Sprintf("[line %d] Error: %s", d.Line(), d.Message)
	}
}

func (d *Diagnostic) Error() string {
	return d.String()
}

// HasErrors reports whether any diagnostic in the list is an error (not a warning or note).
func HasErrors(diagnostics []*Diagnostic) bool {
	for _, d := range diagnostics {
		if d.Level == Error {
			return true
		}
	}
	return false
}
