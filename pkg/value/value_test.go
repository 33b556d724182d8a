package value

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestValue_String(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"positive int", Int(31), "31"},
		{"negative int", Int(-7), "-7"},
		{"zero int", Int(0), "0"},
		{"text", Text("Jone"), "Jone"},
		{"empty text", Text(""), ""},
		{"zero value", Value{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_Kind(t *testing.T) {
	if Int(1).Kind() != KindInt {
		t.Error("Int(1) should be KindInt")
	}
	if Text("1").Kind() != KindText {
		t.Error("Text(\"1\") should be KindText")
	}
	if (Value{}).Kind() != KindText {
		t.Error("zero Value should be KindText")
	}
	if KindInt.String() != "Int" || KindText.String() != "Str" {
		t.Errorf("unexpected kind names: %s, %s", KindInt, KindText)
	}
}

func TestValue_Equal(t *testing.T) {
	if !Int(5).Equal(Int(5)) {
		t.Error("Int(5) should equal Int(5)")
	}
	if Int(5).Equal(Text("5")) {
		t.Error("Int(5) should not equal Text(\"5\")")
	}
	if Text("a").Equal(Text("b")) {
		t.Error("Text(\"a\") should not equal Text(\"b\")")
	}
}

func TestValue_AsInt(t *testing.T) {
	if i, ok := Int(42).AsInt(); !ok || i != 42 {
		t.Errorf("AsInt() = %d, %v, want 42, true", i, ok)
	}
	if _, ok := Text("42").AsInt(); ok {
		t.Error("AsInt() on text should report false")
	}
}

func TestProperty_IntStringRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("integers never change kind", prop.ForAll(
		func(i int64) bool {
			v := Int(i)
			got, ok := v.AsInt()
			return ok && got == i && v.IsInt()
		},
		gen.Int64(),
	))

	properties.Property("text values print verbatim", prop.ForAll(
		func(s string) bool {
			return Text(s).String() == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
