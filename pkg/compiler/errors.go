// Package compiler provides the parsing pipeline for mybash scripts.
// This file defines the CompileError type for structured error reporting.
package compiler

import (
	"fmt"
	"strings"
)

// CompileError represents a parse failure with location information.
// It wraps the underlying parser error so errors.Is still reaches the
// parser's sentinel errors.
type CompileError struct {
	// Phase indicates which phase generated the error ("parser").
	Phase string

	// File is the script file name, empty for in-memory sources.
	File string

	// Message is the human-readable error description.
	Message string

	// Line is the 1-indexed line number where the error occurred.
	Line int

	// Column is the 1-indexed column number where the error occurred.
	Column int

	// Context contains the source code around the error location,
	// with a pointer (^) indicating the error column.
	Context string

	Err error
}

// Error implements the error interface. The message is always a single line.
func (e *CompileError) Error() string {
	loc := fmt.Sprintf("line %d, column %d", e.Line, e.Column)
	if e.File != "" {
		loc = fmt.Sprintf("%s:%d:%d", e.File, e.Line, e.Column)
	}
	return fmt.Sprintf("%s error at %s: %s", e.Phase, loc, e.Message)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error { return e.Err }

// Detail returns Error() followed by the source context, if any.
func (e *CompileError) Detail() string {
	if e.Context == "" {
		return e.Error()
	}
	return e.Error() + "\n" + strings.TrimRight(e.Context, "\n")
}

// NewParserErrorWithContext creates a new CompileError for parser phase errors with source context.
func NewParserErrorWithContext(err error, message string, line, column int, source string) *CompileError {
	return &CompileError{
		Phase:   "parser",
		Message: message,
		Line:    line,
		Column:  column,
		Context: GenerateErrorContext(source, line, column),
		Err:     err,
	}
}

// GenerateErrorContext generates source code context around an error location.
// It includes 2 lines before and 2 lines after the error line, with line numbers
// and a pointer (^) indicating the error column.
//
// Example output:
//
//	  2 | name: Str = 'Jone'
//	  3 | echo name
//	> 4 | age: Int = abc
//	    |            ^
//	  5 | echo age
func GenerateErrorContext(source string, line, column int) string {
	if source == "" || line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}

	start := line - 3
	if start < 0 {
		start = 0
	}
	end := line + 2
	if end > len(lines) {
		end = len(lines)
	}

	var buf strings.Builder

	lineNumWidth := len(fmt.Sprintf("%d", end))

	for i := start; i < end; i++ {
		lineNum := i + 1
		lineContent := strings.TrimRight(lines[i], "\r")

		if lineNum == line {
			buf.WriteString(fmt.Sprintf("> %*d | %s\n", lineNumWidth, lineNum, lineContent))
			// "> " + lineNumWidth + " | "
			pointerIndent := 2 + lineNumWidth + 3
			if column > 0 {
				buf.WriteString(fmt.Sprintf("%s%s^\n", strings.Repeat(" ", pointerIndent), strings.Repeat(" ", column-1)))
			} else {
				buf.WriteString(fmt.Sprintf("%s^\n", strings.Repeat(" ", pointerIndent)))
			}
		} else {
			buf.WriteString(fmt.Sprintf("  %*d | %s\n", lineNumWidth, lineNum, lineContent))
		}
	}

	return buf.String()
}
