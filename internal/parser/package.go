package parser

import (
	"loxite/internal/ast"
	"loxite/internal/errors"
	"loxite/internal/token"
)

// ParseSource scans and parses source. Lex errors stop the pipeline before
// parsing, so at most one of the returned diagnostic lists is non-empty and
// the expression is nil whenever a diagnostic is returned.
func ParseSource(source string) (ast.Expr, []token.Token, []*errors.Diagnostic) {
	tokens, scanErrors := Scan(source)
	if len(scanErrors) > 0 {
		return nil, tokens, scanErrors
	}

	expr, parseErr := NewParser(tokens).Parse()
	if parseErr != nil {
		return nil, tokens, []*errors.Diagnostic{parseErr}
	}

	return expr, tokens, nil
}
