// Package lexer classifies mybash source lines and scans conditional headers.
package lexer

import (
	"regexp"
	"strings"

	"github.com/zurustar/mybash/pkg/compiler/token"
)

var (
	// reVarDecl matches `<name> : <type> = <value>` over the whole line.
	reVarDecl = regexp.MustCompile(`(?i)^(?P<name>[^:\s]+)\s*:\s*(?P<type>[^:\s]+)\s*=\s*(?P<value>[^\n]+)$`)
	reEcho    = regexp.MustCompile(`^echo\s+(?P<expr>\S.*)$`)
	reIf      = regexp.MustCompile(`^if\s+\S`)
)

// VarDeclParts holds the raw captures of a declaration line.
type VarDeclParts struct {
	Name  string
	Type  string
	Value string
}

// MatchVarDecl splits a declaration line into its captures.
// The value is returned as written, including any quotes.
func MatchVarDecl(line string) (VarDeclParts, bool) {
	m := reVarDecl.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return VarDeclParts{}, false
	}
	return VarDeclParts{
		Name:  m[reVarDecl.SubexpIndex("name")],
		Type:  m[reVarDecl.SubexpIndex("type")],
		Value: strings.TrimSpace(m[reVarDecl.SubexpIndex("value")]),
	}, true
}

// MatchEcho returns the raw argument of an echo line.
func MatchEcho(line string) (string, bool) {
	m := reEcho.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[reEcho.SubexpIndex("expr")]), true
}

// IsVarDecl reports whether line has the shape of a variable declaration.
func IsVarDecl(line string) bool {
	parts, ok := MatchVarDecl(line)
	return ok && validValue(parts.Value)
}

// IsEcho reports whether line is an echo statement.
func IsEcho(line string) bool {
	_, ok := MatchEcho(line)
	return ok
}

// IsCondition reports whether line starts with the if keyword.
func IsCondition(line string) bool {
	return reIf.MatchString(strings.TrimSpace(line))
}

// Classify decides what kind of statement a line holds.
// Conditionals are checked first because their branch may itself look
// like a declaration.
func Classify(line string) token.LineKind {
	switch {
	case IsCondition(line):
		return token.IF
	case IsVarDecl(line):
		return token.VAR_DECL
	case IsEcho(line):
		return token.ECHO
	default:
		return token.SKIP
	}
}

// validValue accepts a declaration value whose quotes can be stripped
// by StripQuotes.
func validValue(v string) bool {
	_, ok := StripQuotes(v)
	return ok
}

// StripQuotes removes the quotes around a declaration value.
// A matching pair is removed as a unit and may enclose other quotes.
// Otherwise an opening and a closing quote are each optional, and the
// value left between them must be non-empty and free of quotes.
func StripQuotes(s string) (string, bool) {
	if inner, ok := Unquote(s); ok {
		return inner, true
	}
	if s != "" && isQuote(s[0]) {
		s = s[1:]
	}
	if s != "" && isQuote(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	if s == "" || strings.ContainsAny(s, `'"`) {
		return "", false
	}
	return s, true
}

func isQuote(ch byte) bool {
	return ch == '\'' || ch == '"'
}

// Unquote strips one pair of matching single or double quotes.
func Unquote(s string) (string, bool) {
	if len(s) >= 2 {
		q := s[0]
		if isQuote(q) && s[len(s)-1] == q {
			return s[1 : len(s)-1], true
		}
	}
	return s, false
}
