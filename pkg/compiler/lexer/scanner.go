package lexer

import (
	"github.com/zurustar/mybash/pkg/compiler/token"
)

// Scanner tokenizes the header of a conditional line:
// words, quoted strings and comparison operators.
type Scanner struct {
	input        string
	position     int  // current position in input
	readPosition int  // current reading position (after current char)
	ch           byte // current char
}

// NewScanner creates a new Scanner.
func NewScanner(input string) *Scanner {
	s := &Scanner{input: input}
	s.readChar()
	return s
}

// Rest returns the unscanned remainder of the input starting at offset.
func (s *Scanner) Rest(offset int) string {
	if offset >= len(s.input) {
		return ""
	}
	return s.input[offset:]
}

// NextToken returns the next token.
func (s *Scanner) NextToken() token.Token {
	s.skipWhitespace()

	start := s.position
	tok := token.Token{Column: start + 1}

	switch s.ch {
	case 0:
		tok.Type = token.EOF
	case '=', '!':
		if s.peekChar() == '=' {
			s.readChar()
			s.readChar()
			tok.Type = token.OPERATOR
		} else {
			s.readChar()
			tok.Type = token.ILLEGAL
		}
	case '<', '>':
		if s.peekChar() == '=' {
			s.readChar()
		}
		s.readChar()
		tok.Type = token.OPERATOR
	case '\'', '"':
		lit, ok := s.readString()
		if !ok {
			tok.Type = token.ILLEGAL
			tok.Literal = s.input[start:s.position]
			tok.End = s.position
			return tok
		}
		tok.Type = token.STRING
		tok.Literal = lit
		tok.End = s.position
		return tok
	default:
		s.readWord()
		tok.Type = token.WORD
	}

	tok.Literal = s.input[start:s.position]
	tok.End = s.position
	return tok
}

func (s *Scanner) readChar() {
	if s.readPosition >= len(s.input) {
		s.ch = 0
	} else {
		s.ch = s.input[s.readPosition]
	}
	s.position = s.readPosition
	s.readPosition++
}

func (s *Scanner) peekChar() byte {
	if s.readPosition >= len(s.input) {
		return 0
	}
	return s.input[s.readPosition]
}

func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.readChar()
	}
}

// readString consumes a quoted string and returns its contents.
func (s *Scanner) readString() (string, bool) {
	quote := s.ch
	s.readChar()
	start := s.position
	for s.ch != quote {
		if s.ch == 0 {
			return "", false
		}
		s.readChar()
	}
	lit := s.input[start:s.position]
	s.readChar()
	return lit, true
}

func (s *Scanner) readWord() {
	for s.ch != 0 && !isWhitespace(s.ch) && !isDelimiter(s.ch) {
		s.readChar()
	}
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDelimiter(ch byte) bool {
	switch ch {
	case '=', '!', '<', '>', '\'', '"':
		return true
	}
	return false
}
