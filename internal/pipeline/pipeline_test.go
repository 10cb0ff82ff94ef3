package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loxite/internal/ast"
	"loxite/internal/errors"
	"loxite/internal/interpreter"
)

func TestRun(t *testing.T) {
	for _, engine := range []Engine{EngineDescent, EngineParticiple} {
		t.Run(string(engine), func(t *testing.T) {
			result := Run("(1 + 2) * 3", Options{Engine: engine})

			require.False(t, result.Failed())
			assert.Equal(t, interpreter.Number(9), result.Value)
			assert.Equal(t, "(* (group (+ 1 2)) 3)", ast.Print(result.Expr))
			assert.Len(t, result.Tokens, 8)
			assert.Equal(t, ExitOK, result.ExitCode())
		})
	}
}

func TestRunStopsAtFirstFailingStage(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		kind     errors.Kind
		count    int
		exitCode int
	}{
		{"lex", "1 @ #", errors.LexError, 2, ExitDataErr},
		{"parse", "(1 + 2", errors.ParseError, 1, ExitDataErr},
		{"runtime", `1 + "a"`, errors.RuntimeError, 1, ExitSoftware},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Run(tt.source, Options{})

			require.True(t, result.Failed())
			require.Len(t, result.Diagnostics, tt.count)
			assert.Equal(t, tt.kind, result.Diagnostics[0].Kind)
			assert.Nil(t, result.Value)
			assert.Equal(t, tt.exitCode, result.ExitCode())
			if tt.kind != errors.RuntimeError {
				assert.Nil(t, result.Expr)
			}
		})
	}
}

func TestRunParticipleReportsGrammarError(t *testing.T) {
	result := Run("1 2", Options{Engine: EngineParticiple, Filename: "x.lox"})

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, errors.ErrorGrammarRejected, result.Diagnostics[0].Code)
	assert.Equal(t, ExitDataErr, result.ExitCode())
}

func TestRunParseOnly(t *testing.T) {
	result := Run(`1 + "a"`, Options{ParseOnly: true})

	assert.False(t, result.Failed())
	assert.NotNil(t, result.Expr)
	assert.Nil(t, result.Value)
}

func TestParseEngine(t *testing.T) {
	engine, err := ParseEngine("")
	require.NoError(t, err)
	assert.Equal(t, EngineDescent, engine)

	engine, err = ParseEngine("participle")
	require.NoError(t, err)
	assert.Equal(t, EngineParticiple, engine)

	_, err = ParseEngine("yacc")
	assert.ErrorContains(t, err, `unknown engine "yacc"`)
}

func TestFormat(t *testing.T) {
	formatted, diags := Format("x.lox", "1+( 2 )")
	require.Empty(t, diags)
	assert.Equal(t, "1 + (2)", formatted)

	_, diags = Format("x.lox", `"open`)
	require.Len(t, diags, 1)
	assert.Equal(t, errors.LexError, diags[0].Kind)

	_, diags = Format("x.lox", "1 +")
	require.Len(t, diags, 1)
	assert.Equal(t, errors.ParseError, diags[0].Kind)
}

func TestRunLint(t *testing.T) {
	result := Run("--1", Options{Lint: true})

	assert.False(t, result.Failed())
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, errors.WarningDoubleNegation, result.Warnings[0].Code)
	assert.Equal(t, interpreter.Number(1), result.Value)

	result = Run("--1", Options{})
	assert.Empty(t, result.Warnings)
}
