package semantic

import (
	"loxite/internal/interpreter"
	"loxite/internal/token"
)

// inferred is the statically inferred kind of a subexpression. It is unknown
// when the subexpression is certain to fail at runtime.
type inferred struct {
	kind  interpreter.ValueKind
	known bool
}

func known(k interpreter.ValueKind) inferred {
	return inferred{kind: k, known: true}
}

var unknown = inferred{}

func (k inferred) is(want interpreter.ValueKind) bool {
	return k.known && k.kind == want
}

func (a *Analyzer) inferUnary(operator token.Token, operand inferred) inferred {
	switch operator.Type {
	case token.BANG:
		return known(interpreter.BooleanKind)
	case token.MINUS:
		if operand.is(interpreter.NumberKind) {
			return operand
		}
	}
	return unknown
}

func (a *Analyzer) inferBinary(operator token.Token, left, right inferred) inferred {
	switch operator.Type {
	case token.EQUAL_EQUAL, token.BANG_EQUAL:
		return known(interpreter.BooleanKind)
	case token.PLUS:
		if left.is(interpreter.NumberKind) && right.is(interpreter.NumberKind) {
			return left
		}
		if left.is(interpreter.StringKind) && right.is(interpreter.StringKind) {
			return left
		}
	case token.MINUS, token.STAR, token.SLASH:
		if left.is(interpreter.NumberKind) && right.is(interpreter.NumberKind) {
			return left
		}
	case token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		if left.is(interpreter.NumberKind) && right.is(interpreter.NumberKind) {
			return known(interpreter.BooleanKind)
		}
	}
	return unknown
}
