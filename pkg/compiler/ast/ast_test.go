package ast

import (
	"testing"

	"github.com/zurustar/mybash/pkg/compiler/token"
	"github.com/zurustar/mybash/pkg/value"
)

func TestString(t *testing.T) {
	program := &Program{
		Expressions: []Expression{
			&VarDecl{Line: 1, Variable: value.NewVariable("name", value.Text("Jone"))},
			&VarDecl{Line: 2, Variable: value.NewVariable("age", value.Int(31))},
			&Echo{Line: 3, Arg: "name"},
			&Condition{
				Line:    4,
				Compare: Comparison{Left: "age", Right: "31", Operator: token.EQ},
				Then:    &Echo{Line: 4, Arg: "same"},
			},
		},
	}

	want := `name: Str = "Jone"
age: Int = 31
echo "name"
if "age" == "31" then echo "same"
`
	if program.String() != want {
		t.Errorf("program.String() wrong. got=%q", program.String())
	}
}

func TestDeclarations(t *testing.T) {
	program := &Program{
		Expressions: []Expression{
			&Echo{Line: 1, Arg: "x"},
			&VarDecl{Line: 2, Variable: value.NewVariable("x", value.Int(1))},
			&Condition{
				Line:    3,
				Compare: Comparison{Left: "x", Right: "1", Operator: token.EQ},
				Then:    &VarDecl{Line: 3, Variable: value.NewVariable("y", value.Int(2))},
			},
			&VarDecl{Line: 4, Variable: value.NewVariable("x", value.Int(3))},
		},
	}

	vars := program.Declarations()
	if len(vars) != 2 {
		t.Fatalf("expected 2 top-level declarations, got %d", len(vars))
	}
	if vars[0].Name != "x" || !vars[1].Value.Equal(value.Int(3)) {
		t.Errorf("unexpected declarations: %#v", vars)
	}

	for i, e := range program.Expressions {
		if e.SourceLine() != i+1 {
			t.Errorf("expression %d SourceLine() = %d", i, e.SourceLine())
		}
	}
}
