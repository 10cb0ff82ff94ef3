package pipeline

import (
	"fmt"

	"github.com/tliron/commonlog"

	"loxite/grammar"
	"loxite/internal/ast"
	"loxite/internal/errors"
	"loxite/internal/interpreter"
	"loxite/internal/parser"
	"loxite/internal/semantic"
	"loxite/internal/token"
)

// Process exit statuses used by the executables.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitNoInput  = 66
	ExitSoftware = 70
	ExitIOErr    = 74
)

// Engine selects which parser builds the expression tree.
type Engine string

const (
	EngineDescent    Engine = "descent"
	EngineParticiple Engine = "participle"
)

func ParseEngine(name string) (Engine, error) {
	switch Engine(name) {
	case "", EngineDescent:
		return EngineDescent, nil
	case EngineParticiple:
		return EngineParticiple, nil
	}
	return "", fmt.Errorf("unknown engine %q (want %q or %q)", name, EngineDescent, EngineParticiple)
}

type Options struct {
	Engine   Engine
	Filename string
	// ParseOnly stops after parsing; Value stays nil.
	ParseOnly bool
	// Lint runs the analyzer on a parsed expression and fills Warnings.
	Lint bool
}

// Result holds everything one run produced. Stages after the first failing
// one do not run, so later fields stay empty.
type Result struct {
	Source      string
	Tokens      []token.Token
	Expr        ast.Expr
	Value       interpreter.Value
	Diagnostics []*errors.Diagnostic
	Warnings    []*errors.Diagnostic
}

func (r *Result) Failed() bool {
	return errors.HasErrors(r.Diagnostics)
}

// ExitCode maps the outcome to a process exit status: lex and parse errors
// are data errors, runtime errors are software errors.
func (r *Result) ExitCode() int {
	if !r.Failed() {
		return ExitOK
	}
	if r.Diagnostics[0].Kind == errors.RuntimeError {
		return ExitSoftware
	}
	return ExitDataErr
}

// Run scans, parses and evaluates source. No state is kept between runs.
func Run(source string, opts Options) *Result {
	result := &Result{Source: source}

	tokens, scanErrors := parser.Scan(source)
	result.Tokens = tokens
	if len(scanErrors) > 0 {
		result.Diagnostics = scanErrors
		return result
	}

	expr, parseErr := parse(source, tokens, opts)
	if parseErr != nil {
		result.Diagnostics = []*errors.Diagnostic{parseErr}
		return result
	}
	result.Expr = expr

	if opts.Lint {
		result.Warnings = semantic.Analyze(expr)
	}

	if opts.ParseOnly {
		return result
	}

	value, runtimeErr := interpreter.Evaluate(expr)
	if runtimeErr != nil {
		result.Diagnostics = []*errors.Diagnostic{runtimeErr}
		return result
	}
	result.Value = value

	return result
}

func parse(source string, tokens []token.Token, opts Options) (ast.Expr, *errors.Diagnostic) {
	if opts.Engine != EngineParticiple {
		return parser.NewParser(tokens).Parse()
	}

	filename := opts.Filename
	if filename == "" {
		filename = "<input>"
	}
	program, err := grammar.ParseString(filename, source)
	if err != nil {
		logger().Debugf("grammar rejected %s: %s", filename, err)
		return nil, grammar.ToDiagnostic(err, tokens)
	}
	return program.ToAST(), nil
}

// Format returns source in canonical layout, or the diagnostics that stop
// it from being formatted.
func Format(filename, source string) (string, []*errors.Diagnostic) {
	tokens, scanErrors := parser.Scan(source)
	if len(scanErrors) > 0 {
		return "", scanErrors
	}

	program, err := grammar.ParseString(filename, source)
	if err != nil {
		return "", []*errors.Diagnostic{grammar.ToDiagnostic(err, tokens)}
	}
	return program.String(), nil
}

func logger() commonlog.Logger {
	return commonlog.GetLogger("loxite.pipeline")
}
