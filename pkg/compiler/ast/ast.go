package ast

import (
	"strconv"
	"strings"

	"github.com/zurustar/mybash/pkg/compiler/token"
	"github.com/zurustar/mybash/pkg/value"
)

// Expression is one parsed line of a program.
type Expression interface {
	expressionNode()
	// SourceLine is the 1-indexed line the expression was parsed from.
	SourceLine() int
	String() string
}

// Program is the root node: expressions in source order.
type Program struct {
	Expressions []Expression
}

func (p *Program) String() string {
	var out strings.Builder
	for _, e := range p.Expressions {
		out.WriteString(e.String())
		out.WriteString("\n")
	}
	return out.String()
}

// VarDecl: name: Type = value
type VarDecl struct {
	Line     int
	Variable value.Variable
}

func (vd *VarDecl) expressionNode() {}
func (vd *VarDecl) SourceLine() int { return vd.Line }
func (vd *VarDecl) String() string {
	v := vd.Variable.Value
	if v.IsInt() {
		return vd.Variable.Name + ": Int = " + v.String()
	}
	return vd.Variable.Name + ": Str = " + strconv.Quote(v.String())
}

// Echo: echo arg
// Arg is the unresolved argument text with surrounding quotes removed.
type Echo struct {
	Line int
	Arg  string
}

func (e *Echo) expressionNode() {}
func (e *Echo) SourceLine() int { return e.Line }
func (e *Echo) String() string  { return "echo " + strconv.Quote(e.Arg) }

// Comparison: left op right, with operands still unresolved.
type Comparison struct {
	Left     string
	Right    string
	Operator token.Operator
}

func (c Comparison) String() string {
	return strconv.Quote(c.Left) + " " + string(c.Operator) + " " + strconv.Quote(c.Right)
}

// Condition: if compare then branch
// There is no else branch.
type Condition struct {
	Line    int
	Compare Comparison
	Then    Expression
}

func (c *Condition) expressionNode() {}
func (c *Condition) SourceLine() int { return c.Line }
func (c *Condition) String() string {
	var out strings.Builder
	out.WriteString("if ")
	out.WriteString(c.Compare.String())
	out.WriteString(" then ")
	if c.Then != nil {
		out.WriteString(c.Then.String())
	}
	return out.String()
}

// Declarations returns every top-level variable declaration in order.
func (p *Program) Declarations() []value.Variable {
	var vars []value.Variable
	for _, e := range p.Expressions {
		if vd, ok := e.(*VarDecl); ok {
			vars = append(vars, vd.Variable)
		}
	}
	return vars
}
