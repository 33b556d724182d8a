// Package parser turns classified mybash lines into expressions.
package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/zurustar/mybash/pkg/compiler/ast"
	"github.com/zurustar/mybash/pkg/compiler/lexer"
	"github.com/zurustar/mybash/pkg/compiler/token"
	"github.com/zurustar/mybash/pkg/value"
)

// ParseProgram parses a whole source text.
// Lines that are neither declarations, echoes nor conditionals are skipped.
// The first failing line aborts the parse and no program is returned.
func ParseProgram(source string) (*ast.Program, error) {
	trimmed := strings.TrimSpace(source)
	// Keep line numbers relative to the untrimmed source.
	offset := strings.Count(source[:strings.Index(source, trimmed)], "\n")
	if trimmed == "" {
		return &ast.Program{}, nil
	}

	program := &ast.Program{}
	for i, raw := range strings.Split(trimmed, "\n") {
		lineNum := offset + i + 1
		line := strings.TrimSpace(raw)

		kind := lexer.Classify(line)
		if kind == token.SKIP {
			continue
		}

		expr, err := parseLine(line, kind, lineNum)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = lineNum
				if idx := strings.Index(raw, pe.Token); pe.Token != "" && idx >= 0 {
					pe.Column = idx + 1
				}
			}
			return nil, err
		}
		program.Expressions = append(program.Expressions, expr)
	}

	return program, nil
}

// ParseLine parses a single line that has already been classified.
func ParseLine(line string, kind token.LineKind) (ast.Expression, error) {
	return parseLine(strings.TrimSpace(line), kind, 0)
}

// ParseVarDecl parses `name: Type = value`.
func ParseVarDecl(line string) (*ast.VarDecl, error) {
	return parseVarDecl(strings.TrimSpace(line), 0)
}

// ParseEcho parses `echo arg`.
func ParseEcho(line string) (*ast.Echo, error) {
	return parseEcho(strings.TrimSpace(line), 0)
}

// ParseCondition parses `if left op right then branch`.
func ParseCondition(line string) (*ast.Condition, error) {
	return parseCondition(strings.TrimSpace(line), 0)
}

func parseLine(line string, kind token.LineKind, lineNum int) (ast.Expression, error) {
	switch kind {
	case token.VAR_DECL:
		return parseVarDecl(line, lineNum)
	case token.ECHO:
		return parseEcho(line, lineNum)
	case token.IF:
		cond, err := parseCondition(line, lineNum)
		if err != nil && lexer.IsVarDecl(line) {
			// `if : Int = 5` declares a variable named "if".
			return parseVarDecl(line, lineNum)
		}
		if err != nil {
			return nil, err
		}
		return cond, nil
	default:
		return nil, newUnknownStatement(line)
	}
}

func parseVarDecl(line string, lineNum int) (*ast.VarDecl, error) {
	parts, ok := lexer.MatchVarDecl(line)
	if !ok {
		return nil, newInvalidVarDeclaration(line)
	}

	raw, ok := lexer.StripQuotes(parts.Value)
	if !ok {
		return nil, newInvalidVarDeclaration(line)
	}

	typ, ok := token.LookupType(parts.Type)
	if !ok {
		return nil, newInvalidDataType(parts.Type)
	}

	var v value.Value
	switch typ {
	case token.TypeStr, token.TypeString:
		v = value.Text(raw)
	case token.TypeInt:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, newInvalidInt(raw)
		}
		v = value.Int(i)
	}

	return &ast.VarDecl{
		Line:     lineNum,
		Variable: value.NewVariable(parts.Name, v),
	}, nil
}

func parseEcho(line string, lineNum int) (*ast.Echo, error) {
	arg, ok := lexer.MatchEcho(line)
	if !ok {
		return nil, newNoMatch(line)
	}
	arg, _ = lexer.Unquote(arg)
	return &ast.Echo{Line: lineNum, Arg: arg}, nil
}
