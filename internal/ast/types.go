package ast

type NodeType int

const (
	ILLEGAL NodeType = iota
	LITERAL
	GROUPING
	UNARY
	BINARY
)

func (t NodeType) String() string {
	switch t {
	case LITERAL:
		return "LITERAL"
	case GROUPING:
		return "GROUPING"
	case UNARY:
		return "UNARY"
	case BINARY:
		return "BINARY"
	default:
		return "ILLEGAL"
	}
}
