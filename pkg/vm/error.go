// Package vm provides error handling for the mybash executor.
package vm

import (
	"fmt"
)

// ErrorType represents the type of runtime error.
type ErrorType string

const (
	ErrorNestedCondition   ErrorType = "NESTED_CONDITION"
	ErrorOutputFailed      ErrorType = "OUTPUT_FAILED"
	ErrorUnknownExpression ErrorType = "UNKNOWN_EXPRESSION"
)

// RuntimeError represents an error that aborts execution.
type RuntimeError struct {
	Type    ErrorType
	Message string
	Line    int // Line number if available, -1 otherwise
	Err     error
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if e.Line >= 0 {
		return fmt.Sprintf("[%s] %s at line %d", e.Type, e.Message, e.Line)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *RuntimeError) Unwrap() error { return e.Err }

// NewRuntimeError creates a new RuntimeError.
func NewRuntimeError(errType ErrorType, message string) *RuntimeError {
	return &RuntimeError{
		Type:    errType,
		Message: message,
		Line:    -1,
	}
}

// NewRuntimeErrorWithLine creates a new RuntimeError with line information.
func NewRuntimeErrorWithLine(errType ErrorType, message string, line int) *RuntimeError {
	return &RuntimeError{
		Type:    errType,
		Message: message,
		Line:    line,
	}
}

// NewNestedConditionError reports a conditional whose branch is another conditional.
func NewNestedConditionError(line int) *RuntimeError {
	return NewRuntimeErrorWithLine(ErrorNestedCondition, "nested conditions are not supported", line)
}

// NewOutputError wraps a failed write to the output stream.
func NewOutputError(line int, err error) *RuntimeError {
	e := NewRuntimeErrorWithLine(ErrorOutputFailed, fmt.Sprintf("failed to write output: %v", err), line)
	e.Err = err
	return e
}

// NewUnknownExpressionError reports an expression type the executor cannot run.
func NewUnknownExpressionError(line int, expr any) *RuntimeError {
	return NewRuntimeErrorWithLine(ErrorUnknownExpression, fmt.Sprintf("unknown expression type: %T", expr), line)
}
