package token

// LineKind is the classification of one source line.
type LineKind string

const (
	SKIP     LineKind = "SKIP"
	VAR_DECL LineKind = "VAR_DECL"
	ECHO     LineKind = "ECHO"
	IF       LineKind = "IF"
)

// Keywords
const (
	KeywordEcho = "echo"
	KeywordIf   = "if"
	KeywordThen = "then"
)

// DataType is a declared variable type name.
type DataType string

const (
	TypeInt    DataType = "Int"
	TypeStr    DataType = "Str"
	TypeString DataType = "String"
)

// LookupType resolves a declared type name. Type names are case-sensitive.
func LookupType(name string) (DataType, bool) {
	switch DataType(name) {
	case TypeInt, TypeStr, TypeString:
		return DataType(name), true
	}
	return "", false
}

// Operator is a comparison operator used by conditionals.
type Operator string

const (
	EQ     Operator = "=="
	NOT_EQ Operator = "!="
	LT     Operator = "<"
	LTE    Operator = "<="
	GT     Operator = ">"
	GTE    Operator = ">="
)

// Operators lists every supported comparison operator.
var Operators = []Operator{EQ, NOT_EQ, LT, LTE, GT, GTE}

// LookupOperator resolves an operator literal.
func LookupOperator(lit string) (Operator, bool) {
	switch Operator(lit) {
	case EQ, NOT_EQ, LT, LTE, GT, GTE:
		return Operator(lit), true
	}
	return "", false
}

// Negate returns the operator whose result is always the opposite of op.
func (op Operator) Negate() Operator {
	switch op {
	case EQ:
		return NOT_EQ
	case NOT_EQ:
		return EQ
	case LT:
		return GTE
	case LTE:
		return GT
	case GT:
		return LTE
	case GTE:
		return LT
	}
	return op
}

// TokenType is the type of a token produced by the condition scanner.
type TokenType string

const (
	ILLEGAL  TokenType = "ILLEGAL"
	EOF      TokenType = "EOF"
	WORD     TokenType = "WORD"     // x, 5, $1
	STRING   TokenType = "STRING"   // 'abc', "abc"
	OPERATOR TokenType = "OPERATOR" // ==, !=, <, <=, >, >=
)

// Token is one lexeme of a conditional header.
type Token struct {
	Type    TokenType
	Literal string
	Column  int // 1-indexed column of the first character
	End     int // byte offset just past the token
}
