package token

import (
	"fmt"
	"strings"
)

// Token is a single lexeme scanned from source. Tokens are values and are
// never mutated after the scanner produces them.
type Token struct {
	Type     TokenType
	Lexeme   string
	Literal  Literal
	Position Position
}

// Line returns the 1-based source line the token is attributed to. For a
// token spanning several lines that is the line it ends on.
func (t Token) Line() int {
	return t.Position.Line
}

// Width returns how many columns the token covers on its attributed line.
// A token spanning several lines is positioned at column 1 of its last line,
// so only the text after its last newline counts.
func (t Token) Width() int {
	return len(LastLine(t.Lexeme))
}

// LastLine returns the text after the final newline in s, or s itself.
func LastLine(s string) string {
	return s[strings.LastIndexByte(s, '\n')+1:]
}

// Where renders the location fragment used by lex and parse diagnostics.
func (t Token) Where() string {
	if t.Type == EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", t.Lexeme)
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, t.Literal)
}
