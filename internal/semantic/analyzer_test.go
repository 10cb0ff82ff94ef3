package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loxite/internal/errors"
	"loxite/internal/parser"
)

func analyze(t *testing.T, source string) []*errors.Diagnostic {
	t.Helper()
	expr, _, diags := parser.ParseSource(source)
	require.Empty(t, diags, "diagnostics for %q", source)
	return Analyze(expr)
}

func codes(warnings []*errors.Diagnostic) []string {
	var result []string
	for _, w := range warnings {
		result = append(result, w.Code)
	}
	return result
}

func TestCleanExpressions(t *testing.T) {
	for _, source := range []string{
		"1 + 2 * 3",
		"(1 + 2) * 3",
		"!!1",
		`"a" == "b"`,
		"-(1 + 2)",
		"nil == nil",
	} {
		assert.Empty(t, analyze(t, source), source)
	}
}

func TestRedundantGrouping(t *testing.T) {
	warnings := analyze(t, "((1 + 2)) * (3)")

	assert.Equal(t, []string{errors.WarningRedundantGrouping, errors.WarningRedundantGrouping}, codes(warnings))
	assert.Equal(t, 1, warnings[0].Position.Column)
	assert.Equal(t, 9, warnings[0].Length)
	assert.Equal(t, 13, warnings[1].Position.Column)
	assert.Equal(t, errors.Warning, warnings[0].Level)
	assert.Equal(t, "[line 1] Warning: Redundant parentheses.", warnings[0].String())
}

func TestDoubleNegation(t *testing.T) {
	warnings := analyze(t, "--1")
	require.Len(t, warnings, 1)
	assert.Equal(t, "[line 1] Warning: Repeated '-' has no effect.", warnings[0].String())

	warnings = analyze(t, "!!(1 < 2)")
	require.Len(t, warnings, 1)
	assert.Equal(t, errors.WarningDoubleNegation, warnings[0].Code)
}

func TestConstantComparison(t *testing.T) {
	warnings := analyze(t, `1 == "1"`)
	require.Len(t, warnings, 1)
	assert.Equal(t, "[line 1] Warning: Comparison is always false.", warnings[0].String())
	assert.Contains(t, warnings[0].Notes, "a number is never equal to a string")

	warnings = analyze(t, "nil != (1 < 2)")
	require.Len(t, warnings, 1)
	assert.Equal(t, "[line 1] Warning: Comparison is always true.", warnings[0].String())
}

func TestFailingOperandsAreNotCompared(t *testing.T) {
	assert.Empty(t, analyze(t, `(1 + "a") == 2`))
	assert.Empty(t, analyze(t, `-"a" == nil`))
}

func TestLintDoesNotAffectErrors(t *testing.T) {
	warnings := analyze(t, "--1")
	assert.False(t, errors.HasErrors(warnings))
	assert.Equal(t, "Lint", errors.GetErrorCategory(warnings[0].Code))
}
