package grammar

import (
	"strings"
)

// String renders the program in canonical form: one space around binary
// operators, none after unary operators or inside parentheses.
// Comments are not preserved.
func (p *Program) String() string {
	return p.Expr.String()
}

func (e *Expression) String() string {
	return e.Equality.String()
}

func (e *Equality) String() string {
	var b strings.Builder
	b.WriteString(e.Head.String())
	for _, op := range e.Tail {
		writeOp(&b, op.Operator, op.Right.String())
	}
	return b.String()
}

func (c *Comparison) String() string {
	var b strings.Builder
	b.WriteString(c.Head.String())
	for _, op := range c.Tail {
		writeOp(&b, op.Operator, op.Right.String())
	}
	return b.String()
}

func (t *Term) String() string {
	var b strings.Builder
	b.WriteString(t.Head.String())
	for _, op := range t.Tail {
		writeOp(&b, op.Operator, op.Right.String())
	}
	return b.String()
}

func (f *Factor) String() string {
	var b strings.Builder
	b.WriteString(f.Head.String())
	for _, op := range f.Tail {
		writeOp(&b, op.Operator, op.Right.String())
	}
	return b.String()
}

func (u *Unary) String() string {
	if u.Operator != nil {
		return *u.Operator + u.Operand.String()
	}
	return u.Primary.String()
}

func (p *Primary) String() string {
	switch {
	case p.Number != nil:
		return *p.Number
	case p.Str != nil:
		return *p.Str
	case p.True:
		return "true"
	case p.False:
		return "false"
	case p.Nil:
		return "nil"
	case p.Group != nil:
		return "(" + p.Group.String() + ")"
	}
	return ""
}

func writeOp(b *strings.Builder, operator, right string) {
	b.WriteString(" ")
	b.WriteString(operator)
	b.WriteString(" ")
	b.WriteString(right)
}
