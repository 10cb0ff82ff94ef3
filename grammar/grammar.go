package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is a complete input: exactly one expression.
type Program struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Expr   *Expression `parser:"@@"`
}

type Expression struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Equality *Equality `parser:"@@"`
}

type Equality struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Head   *Comparison   `parser:"@@"`
	Tail   []*EqualityOp `parser:"@@*"`
}

type EqualityOp struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string      `parser:"@(\"!=\" | \"==\")"`
	Right    *Comparison `parser:"@@"`
}

type Comparison struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Head   *Term           `parser:"@@"`
	Tail   []*ComparisonOp `parser:"@@*"`
}

type ComparisonOp struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string `parser:"@(\">=\" | \">\" | \"<=\" | \"<\")"`
	Right    *Term  `parser:"@@"`
}

type Term struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Head   *Factor   `parser:"@@"`
	Tail   []*TermOp `parser:"@@*"`
}

type TermOp struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string  `parser:"@(\"-\" | \"+\")"`
	Right    *Factor `parser:"@@"`
}

type Factor struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Head   *Unary      `parser:"@@"`
	Tail   []*FactorOp `parser:"@@*"`
}

type FactorOp struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string `parser:"@(\"/\" | \"*\")"`
	Right    *Unary `parser:"@@"`
}

type Unary struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator *string  `parser:"  @(\"!\" | \"-\")"`
	Operand  *Unary   `parser:"  @@"`
	Primary  *Primary `parser:"| @@"`
}

type Primary struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Number *string     `parser:"  @Number"`
	Str    *string     `parser:"| @String"`
	True   bool        `parser:"| @\"true\""`
	False  bool        `parser:"| @\"false\""`
	Nil    bool        `parser:"| @\"nil\""`
	Group  *Expression `parser:"| \"(\" @@ \")\""`
}
