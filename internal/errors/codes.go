package errors

// Error codes for loxite diagnostics.
//
// Error code ranges:
// E0100-E0199: Lexer errors
// E0200-E0299: Parser errors
// E0300-E0399: Runtime errors
// W0400-W0499: Lint warnings

const (
	// E0101: A byte that starts no token
	ErrorUnexpectedCharacter = "E0101"

	// E0102: String literal without a closing quote
	ErrorUnterminatedString = "E0102"

	// E0201: Token that cannot start an expression
	ErrorExpectedExpression = "E0201"

	// E0202: Grouping without a closing parenthesis
	ErrorExpectedRightParen = "E0202"

	// E0203: Tokens left over after a complete expression
	ErrorTrailingInput = "E0203"

	// E0204: Input rejected by the declarative grammar engine
	ErrorGrammarRejected = "E0204"

	// E0301: Unary minus applied to a non-number
	ErrorNumberOperand = "E0301"

	// E0302: Arithmetic or comparison on non-numbers
	ErrorNumberOperands = "E0302"

	// E0303: Addition of mixed or unsupported operand kinds
	ErrorNumberOrStringOperands = "E0303"

	// W0401: Parentheses around a literal or another grouping
	WarningRedundantGrouping = "W0401"

	// W0402: Operator applied twice where the second application undoes the first
	WarningDoubleNegation = "W0402"

	// W0403: Equality between operands whose kinds already decide the result
	WarningConstantComparison = "W0403"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedCharacter:
		return "Source contains a character that does not start any token"
	case ErrorUnterminatedString:
		return "String literal reaches the end of input without a closing quote"
	case ErrorExpectedExpression:
		return "Token cannot start an expression"
	case ErrorExpectedRightParen:
		return "Parenthesized expression is missing its closing ')'"
	case ErrorTrailingInput:
		return "Input continues after a complete expression"
	case ErrorGrammarRejected:
		return "Input does not match the expression grammar"
	case ErrorNumberOperand:
		return "Unary '-' requires a number"
	case ErrorNumberOperands:
		return "Arithmetic and comparison operators require numbers"
	case ErrorNumberOrStringOperands:
		return "'+' requires two numbers or two strings"
	case WarningRedundantGrouping:
		return "Parentheses do not change the meaning of the expression"
	case WarningDoubleNegation:
		return "Repeated operator has no effect"
	case WarningConstantComparison:
		return "Comparison result is fixed by the operand kinds"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Lexer"
	case code >= "E0200" && code < "E0300":
		return "Parser"
	case code >= "E0300" && code < "E0400":
		return "Runtime"
	case code >= "W0400" && code < "W0500":
		return "Lint"
	default:
		return "Unknown"
	}
}
