// Package compiler chains classification and parsing of mybash source:
// - Compile: parses a source string into a Program
// - CompileScript: parses a loaded script file, tagging errors with its name
package compiler

import (
	"errors"

	"github.com/zurustar/mybash/pkg/compiler/ast"
	"github.com/zurustar/mybash/pkg/compiler/parser"
	"github.com/zurustar/mybash/pkg/script"
)

// Compile parses source into a Program.
// Parse failures are returned as *CompileError carrying source context.
func Compile(source string) (*ast.Program, error) {
	program, err := parser.ParseProgram(source)
	if err != nil {
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			return nil, NewParserErrorWithContext(pe, pe.Message, pe.Line, pe.Column, source)
		}
		return nil, err
	}
	return program, nil
}

// CompileScript parses a loaded script.
func CompileScript(s *script.Script) (*ast.Program, error) {
	program, err := Compile(s.Content)
	if err != nil {
		var ce *CompileError
		if errors.As(err, &ce) {
			ce.File = s.FileName
		}
		return nil, err
	}
	return program, nil
}
