package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors for each parse failure. A *ParseError unwraps to one of them.
var (
	ErrInvalidVarDeclaration = errors.New("invalid variable declaration")
	ErrInvalidInt            = errors.New("invalid int")
	ErrInvalidDataType       = errors.New("invalid data type")
	ErrNoMatch               = errors.New("echo expression does not match")
	ErrInvalidCondition      = errors.New("invalid condition")
	ErrUnknownStatement      = errors.New("unknown statement")
)

// ParseError describes a line that could not be parsed.
type ParseError struct {
	Err     error  // one of the Err* sentinels
	Token   string // the offending token, or the whole line
	Message string
	Line    int // 1-indexed, 0 when parsing a single line
	Column  int // 1-indexed, 0 when unknown
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Unwrap returns the sentinel so callers can use errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

func newInvalidVarDeclaration(line string) *ParseError {
	return &ParseError{
		Err:     ErrInvalidVarDeclaration,
		Token:   line,
		Message: fmt.Sprintf("`%s` is not a valid variable declaration", line),
	}
}

func newInvalidInt(v string) *ParseError {
	return &ParseError{
		Err:     ErrInvalidInt,
		Token:   v,
		Message: fmt.Sprintf("`%s` is not a valid int", v),
	}
}

func newInvalidDataType(typ string) *ParseError {
	return &ParseError{
		Err:     ErrInvalidDataType,
		Token:   typ,
		Message: fmt.Sprintf("`%s` is not a valid data type (Int, Str, String)", typ),
	}
}

func newNoMatch(line string) *ParseError {
	return &ParseError{
		Err:     ErrNoMatch,
		Token:   line,
		Message: fmt.Sprintf("`%s` doesn't match an echo expression", line),
	}
}

func newInvalidCondition(tok, reason string) *ParseError {
	return &ParseError{
		Err:     ErrInvalidCondition,
		Token:   tok,
		Message: fmt.Sprintf("invalid condition near `%s`: %s", tok, reason),
	}
}

func newUnknownStatement(line string) *ParseError {
	return &ParseError{
		Err:     ErrUnknownStatement,
		Token:   line,
		Message: fmt.Sprintf("`%s` is not a declaration, an echo or a condition", line),
	}
}
