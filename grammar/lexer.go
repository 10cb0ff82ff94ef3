package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var LoxLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `//[^\n]*`, Action: nil},

		// Literals. Strings have no escapes and may span lines.
		{Name: "String", Pattern: `"[^"]*"`, Action: nil},
		{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`, Action: nil},

		// Keywords and Identifiers
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},

		// Operators (two-character forms first)
		{Name: "Operator", Pattern: `(==|!=|<=|>=|[-+*/!<>=])`, Action: nil},

		// Punctuation
		{Name: "Punctuation", Pattern: `[(){},.;]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
