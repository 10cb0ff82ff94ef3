package pipeline

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func newOutput() (*Output, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Output{Out: &out, Err: &errOut, Filename: "test.lox"}, &out, &errOut
}

func TestOutputValue(t *testing.T) {
	o, out, errOut := newOutput()

	o.Write(Run(`"a" + "b"`, Options{}))

	assert.Equal(t, "ab\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestOutputDiagnostics(t *testing.T) {
	o, out, errOut := newOutput()

	o.Write(Run("1 @ #", Options{}))

	assert.Empty(t, out.String())
	assert.Equal(t, "[line 1] Error: Unexpected character.\n[line 1] Error: Unexpected character.\n", errOut.String())
}

func TestOutputDumps(t *testing.T) {
	o, out, _ := newOutput()
	o.ShowTokens = true
	o.ShowAST = true

	o.Write(Run("-1", Options{}))

	assert.Equal(t, "MINUS - \nNUMBER 1 1\nEOF  \n(- 1)\n-1\n", out.String())
}

func TestOutputPrettyDiagnostics(t *testing.T) {
	o, _, errOut := newOutput()
	o.Pretty = true

	o.Write(Run(`1 + "a"`, Options{}))

	assert.Contains(t, errOut.String(), "error[E0303]: [line 1]: Operands must be two numbers or two strings.")
	assert.Contains(t, errOut.String(), "test.lox:1:3")
}

func TestOutputWarnings(t *testing.T) {
	o, out, errOut := newOutput()

	o.Write(Run("(1)", Options{Lint: true}))

	assert.Equal(t, "1\n", out.String())
	assert.Equal(t, "[line 1] Warning: Redundant parentheses.\n", errOut.String())
}
