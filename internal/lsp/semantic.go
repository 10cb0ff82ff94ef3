package lsp

import (
	"strings"

	"loxite/internal/token"
)

// SemanticTokenTypes is the legend advertised to the client. Indices into
// it are sent on the wire.
var SemanticTokenTypes = []string{
	"keyword",
	"number",
	"string",
	"operator",
	"variable",
}

var SemanticTokenModifiers = []string{
	"readonly",
}

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens classifies the scanned tokens in source order.
// Punctuation is left to the editor's own highlighting.
func collectSemanticTokens(tokens []token.Token) []SemanticToken {
	var result []SemanticToken

	for _, tok := range tokens {
		// Tokens spanning lines cannot be expressed without multiline support.
		if tok.Type == token.EOF || strings.Contains(tok.Lexeme, "\n") {
			continue
		}

		var tokenType string
		modifiers := 0
		switch {
		case tok.Type == token.NUMBER:
			tokenType = "number"
		case tok.Type == token.STRING:
			tokenType = "string"
		case tok.Type == token.TRUE, tok.Type == token.FALSE, tok.Type == token.NIL:
			tokenType = "keyword"
			modifiers = 1 << indexOf("readonly", SemanticTokenModifiers)
		case tok.Type.IsKeyword():
			tokenType = "keyword"
		case tok.Type.IsOperator():
			tokenType = "operator"
		case tok.Type == token.IDENTIFIER:
			tokenType = "variable"
		default:
			continue
		}

		result = append(result, makeToken(tok, tokenType, modifiers))
	}

	return result
}

func makeToken(tok token.Token, tokenType string, modifiers int) SemanticToken {
	return SemanticToken{
		Line:           uint32(tok.Position.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(tok.Position.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(len(tok.Lexeme)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	}
}

// encodeSemanticTokens packs tokens into the LSP wire format using
// delta-line and delta-start compression.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		deltaStart := tok.StartChar
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
