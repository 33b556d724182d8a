// Package value defines the scalar values held by mybash variables and literals.
package value

import "strconv"

// Kind identifies which scalar a Value carries.
type Kind int

const (
	KindText Kind = iota
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindText:
		return "Str"
	default:
		return "Unknown"
	}
}

// Value is an immutable integer or string.
// The zero Value is the empty string.
type Value struct {
	kind Kind
	i    int64
	s    string
}

// Int creates an integer Value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Text creates a string Value.
func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsInt reports whether v holds an integer.
func (v Value) IsInt() bool { return v.kind == KindInt }

// AsInt returns the integer payload and true when v is an integer.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// String returns the canonical textual form: decimal for integers,
// the text itself for strings.
func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.FormatInt(v.i, 10)
	}
	return v.s
}

// Equal reports whether both values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindInt {
		return v.i == other.i
	}
	return v.s == other.s
}

// GoString makes test failures readable.
func (v Value) GoString() string {
	if v.kind == KindInt {
		return "value.Int(" + v.String() + ")"
	}
	return "value.Text(" + strconv.Quote(v.s) + ")"
}

// Variable is a named value produced by a declaration.
type Variable struct {
	Name  string
	Value Value
}

// NewVariable creates a Variable.
func NewVariable(name string, v Value) Variable {
	return Variable{Name: name, Value: v}
}
