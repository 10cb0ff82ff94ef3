package grammar

import (
	"github.com/alecthomas/participle/v2"

	"loxite/internal/errors"
	"loxite/internal/token"
)

var programParser = participle.MustBuild[Program](
	participle.Lexer(LoxLexer),
	participle.Elide("Whitespace", "Comment"),
)

// ParseString parses source with the declarative grammar.
func ParseString(filename, source string) (*Program, error) {
	return programParser.ParseString(filename, source)
}

// ToDiagnostic converts a grammar failure into a parse diagnostic anchored
// at the scanned token where the failure was detected.
func ToDiagnostic(err error, tokens []token.Token) *errors.Diagnostic {
	pe, ok := err.(participle.Error)
	if !ok {
		return errors.GrammarRejected(lastToken(tokens), err.Error())
	}

	offset := pe.Position().Offset
	for _, tok := range tokens {
		if tok.Position.Offset >= offset {
			return errors.GrammarRejected(tok, pe.Message())
		}
	}
	return errors.GrammarRejected(lastToken(tokens), pe.Message())
}

func lastToken(tokens []token.Token) token.Token {
	if len(tokens) == 0 {
		return token.Token{Type: token.EOF, Position: token.Position{Line: 1, Column: 1}}
	}
	return tokens[len(tokens)-1]
}
