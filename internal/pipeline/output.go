package pipeline

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"loxite/internal/ast"
	"loxite/internal/errors"
	"loxite/internal/interpreter"
)

// Output writes run results: values and dumps go to Out, diagnostics and
// warnings go to Err.
type Output struct {
	Out        io.Writer
	Err        io.Writer
	Filename   string
	Color      bool
	Pretty     bool
	ShowTokens bool
	ShowAST    bool
}

func (o *Output) Write(result *Result) {
	if o.ShowTokens {
		for _, tok := range result.Tokens {
			fmt.Fprintln(o.Out, tok)
		}
	}

	if o.ShowAST && result.Expr != nil {
		fmt.Fprintln(o.Out, ast.Print(result.Expr))
	}

	if len(result.Warnings) > 0 {
		o.WriteDiagnostics(result.Source, result.Warnings)
	}

	if result.Failed() {
		o.WriteDiagnostics(result.Source, result.Diagnostics)
		return
	}

	if result.Value != nil {
		fmt.Fprintln(o.Out, o.colorize(result.Value))
	}
}

func (o *Output) WriteDiagnostics(source string, diagnostics []*errors.Diagnostic) {
	if o.Pretty {
		reporter := errors.NewErrorReporter(o.filename(), source)
		fmt.Fprint(o.Err, reporter.FormatAll(diagnostics))
		return
	}

	for _, d := range diagnostics {
		fmt.Fprintln(o.Err, d)
	}
}

func (o *Output) colorize(v interpreter.Value) string {
	if !o.Color {
		return v.String()
	}

	var c *color.Color
	switch v.Kind() {
	case interpreter.NumberKind:
		c = color.New(color.FgCyan)
	case interpreter.StringKind:
		c = color.New(color.FgGreen)
	case interpreter.BooleanKind:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.Faint)
	}
	return c.Sprint(v.String())
}

func (o *Output) filename() string {
	if o.Filename == "" {
		return "<input>"
	}
	return o.Filename
}
