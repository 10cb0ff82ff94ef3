package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tliron/commonlog"

	"loxite/internal/errors"
	"loxite/internal/token"
)

type Scanner struct {
	source      string
	tokens      []token.Token
	keywords    map[string]token.TokenType
	start       int
	current     int
	line        int
	startColumn int
	column      int
	errors      []*errors.Diagnostic
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source:   source,
		keywords: newKeywordTable(),
		line:     1,
		column:   1,
	}
}

// Scan tokenizes source in one pass. Scanning never stops early: every
// problem is collected and the returned tokens always end with EOF.
func Scan(source string) ([]token.Token, []*errors.Diagnostic) {
	s := NewScanner(source)
	tokens := s.ScanTokens()
	return tokens, s.Errors()
}

func (s *Scanner) ScanTokens() []token.Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.Token{
		Type:     token.EOF,
		Position: token.Position{Line: s.line, Column: s.column, Offset: s.current},
	})

	logger().Debugf("scanned %d tokens with %d errors", len(s.tokens), len(s.errors))
	return s.tokens
}

func (s *Scanner) Errors() []*errors.Diagnostic {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case '{':
		s.addToken(token.LEFT_BRACE)
	case '}':
		s.addToken(token.RIGHT_BRACE)
	case ',':
		s.addToken(token.COMMA)
	case '.':
		s.addToken(token.DOT)
	case '-':
		s.addToken(token.MINUS)
	case '+':
		s.addToken(token.PLUS)
	case ';':
		s.addToken(token.SEMICOLON)
	case '*':
		s.addToken(token.STAR)

	// One or two character operators
	case '!':
		s.addTokenIfNext('=', token.BANG_EQUAL, token.BANG)
	case '=':
		s.addTokenIfNext('=', token.EQUAL_EQUAL, token.EQUAL)
	case '<':
		s.addTokenIfNext('=', token.LESS_EQUAL, token.LESS)
	case '>':
		s.addTokenIfNext('=', token.GREATER_EQUAL, token.GREATER)
	case '/':
		s.scanSlashOperator()

	// Whitespace (ignored)
	case ' ', '\r', '\t':
	case '\n':
		// Handled in advance()

	case '"':
		s.scanString()

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) addTokenIfNext(expected byte, matched, otherwise token.TokenType) {
	if s.matchNext(expected) {
		s.addToken(matched)
	} else {
		s.addToken(otherwise)
	}
}

func (s *Scanner) scanSlashOperator() {
	if s.matchNext('/') {
		s.scanSingleLineComment()
	} else {
		s.addToken(token.SLASH)
	}
}

func (s *Scanner) scanDefault(c byte) {
	switch {
	case isDigit(c):
		s.scanNumber()
	case isAlpha(c):
		s.scanIdentifier()
	default:
		// Consume the rest of a multi-byte character so it is reported once.
		if c >= utf8.RuneSelf {
			_, size := utf8.DecodeRuneInString(s.source[s.start:])
			for s.current < s.start+size && !s.isAtEnd() {
				s.advance()
			}
		}
		s.errors = append(s.errors, errors.UnexpectedCharacter(c, s.startPosition()))
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokenType token.TokenType) {
	s.addTokenWithLiteral(tokenType, token.Empty())
}

func (s *Scanner) addTokenWithLiteral(tokenType token.TokenType, literal token.Literal) {
	s.tokens = append(s.tokens, token.Token{
		Type:     tokenType,
		Lexeme:   s.source[s.start:s.current],
		Literal:  literal,
		Position: s.startPosition(),
	})
}

// startPosition reports the current line, as tokens spanning several lines
// are attributed to the line they end on. Such tokens start at column 1 of
// that line so that line and column agree.
func (s *Scanner) startPosition() token.Position {
	column := s.startColumn
	if strings.IndexByte(s.source[s.start:s.current], '\n') >= 0 {
		column = 1
	}
	return token.Position{Line: s.line, Column: column, Offset: s.start}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.source[s.start:s.current]
	tokenType, ok := s.keywords[text]
	if !ok {
		tokenType = token.IDENTIFIER
	}

	switch tokenType {
	case token.TRUE:
		s.addTokenWithLiteral(tokenType, token.Boolean(true))
	case token.FALSE:
		s.addTokenWithLiteral(tokenType, token.Boolean(false))
	default:
		s.addToken(tokenType)
	}
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// A fraction needs at least one digit after the dot.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	text := s.source[s.start:s.current]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Overlong literals saturate to infinity, like any float parse.
		numErr, ok := err.(*strconv.NumError)
		if !ok || numErr.Err != strconv.ErrRange {
			panic(fmt.Sprintf("scanner: number lexeme %q did not parse: %v", text, err))
		}
	}

	s.addTokenWithLiteral(token.NUMBER, token.Number(value))
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		s.advance()
	}

	if s.isAtEnd() {
		s.errors = append(s.errors, errors.UnterminatedString(s.startPosition(), max(1, len(token.LastLine(s.source[s.start:s.current])))))
		return
	}

	// The closing quote.
	s.advance()

	value := s.source[s.start+1 : s.current-1]
	s.addTokenWithLiteral(token.STRING, token.String(value))
}

func (s *Scanner) scanSingleLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func logger() commonlog.Logger {
	return commonlog.GetLogger("loxite.parser")
}
