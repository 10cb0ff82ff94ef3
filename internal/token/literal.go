package token

import (
	"math"
	"strconv"
)

type LiteralKind uint8

const (
	EmptyLiteral LiteralKind = iota
	StringLiteral
	NumberLiteral
	BooleanLiteral
)

// Literal is the parsed value attached to a token. Tokens without a value,
// including the nil keyword, carry the zero Literal (EmptyLiteral).
type Literal struct {
	Kind LiteralKind
	Str  string
	Num  float64
	Bool bool
}

func Empty() Literal {
	return Literal{}
}

func String(s string) Literal {
	return Literal{Kind: StringLiteral, Str: s}
}

func Number(n float64) Literal {
	return Literal{Kind: NumberLiteral, Num: n}
}

func Boolean(b bool) Literal {
	return Literal{Kind: BooleanLiteral, Bool: b}
}

func (l Literal) IsEmpty() bool {
	return l.Kind == EmptyLiteral
}

func (l Literal) String() string {
	switch l.Kind {
	case StringLiteral:
		return l.Str
	case NumberLiteral:
		return FormatNumber(l.Num)
	case BooleanLiteral:
		return strconv.FormatBool(l.Bool)
	default:
		return ""
	}
}

// FormatNumber renders a float the way the language displays numbers:
// integral values have no fractional part, everything else uses the
// shortest representation that round-trips.
func FormatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case math.IsNaN(n):
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
