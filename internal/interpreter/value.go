package interpreter

import (
	"strconv"

	"loxite/internal/token"
)

type ValueKind uint8

const (
	NilKind ValueKind = iota
	BooleanKind
	NumberKind
	StringKind
)

var valueKindNames = [...]string{
	NilKind:     "nil",
	BooleanKind: "boolean",
	NumberKind:  "number",
	StringKind:  "string",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "unknown"
}

// Value is a runtime value. The set of variants is closed.
type Value interface {
	Kind() ValueKind
	// String returns the display form used when a value is printed.
	String() string
	isValue()
}

type Nil struct{}

type Boolean bool

type Number float64

type String string

func (Nil) Kind() ValueKind     { return NilKind }
func (Boolean) Kind() ValueKind { return BooleanKind }
func (Number) Kind() ValueKind  { return NumberKind }
func (String) Kind() ValueKind  { return StringKind }

func (Nil) String() string       { return "nil" }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }
func (n Number) String() string  { return token.FormatNumber(float64(n)) }
func (s String) String() string  { return string(s) }

func (Nil) isValue()     {}
func (Boolean) isValue() {}
func (Number) isValue()  {}
func (String) isValue()  {}

// FromLiteral converts a scanned literal into its runtime value.
// An empty literal is nil.
func FromLiteral(lit token.Literal) Value {
	switch lit.Kind {
	case token.StringLiteral:
		return String(lit.Str)
	case token.NumberLiteral:
		return Number(lit.Num)
	case token.BooleanLiteral:
		return Boolean(lit.Bool)
	default:
		return Nil{}
	}
}

// IsTruthy reports whether v counts as true in a condition: nil and false
// are falsy, everything else is truthy.
func IsTruthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(v)
	default:
		return true
	}
}

// IsEqual is total over values: values of different kinds are never equal,
// and numbers compare with IEEE semantics so NaN is not equal to itself.
func IsEqual(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case Nil:
		return true
	case Boolean:
		return a == b.(Boolean)
	case Number:
		return a == b.(Number)
	case String:
		return a == b.(String)
	}
	return false
}
