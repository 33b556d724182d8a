package vm

import (
	"fmt"
	"strconv"

	"github.com/zurustar/mybash/pkg/compiler/ast"
	"github.com/zurustar/mybash/pkg/value"
)

// Execute applies a single expression.
func (vm *VM) Execute(expr ast.Expression) error {
	switch e := expr.(type) {
	case *ast.VarDecl:
		// Declarations were hoisted when the VM was built.
		return nil
	case *ast.Echo:
		return vm.executeEcho(e)
	case *ast.Condition:
		return vm.executeCondition(e)
	default:
		line := -1
		if expr != nil {
			line = expr.SourceLine()
		}
		return NewUnknownExpressionError(line, expr)
	}
}

// executeEcho prints the variable named by the argument, or the
// argument itself when no such variable exists.
func (vm *VM) executeEcho(e *ast.Echo) error {
	text := e.Arg
	if v, ok := vm.env.Get(e.Arg); ok {
		text = v.String()
	}

	vm.log.Debug("echo", "line", e.Line, "arg", e.Arg, "output", text)

	if _, err := fmt.Fprintln(vm.out, text); err != nil {
		return NewOutputError(e.Line, err)
	}
	return nil
}

func (vm *VM) executeCondition(c *ast.Condition) error {
	left := vm.resolveOperand(c.Compare.Left)
	right := vm.resolveOperand(c.Compare.Right)
	taken := Compare(left, right, c.Compare.Operator)

	vm.log.Debug("condition",
		"line", c.Line,
		"left", left.String(),
		"operator", string(c.Compare.Operator),
		"right", right.String(),
		"taken", taken,
	)

	if !taken {
		return nil
	}

	switch branch := c.Then.(type) {
	case *ast.VarDecl:
		vm.env.Set(branch.Variable.Name, branch.Variable.Value)
		vm.log.Debug("variable set", "line", c.Line, "name", branch.Variable.Name, "value", branch.Variable.Value.String())
		return nil
	case *ast.Echo:
		return vm.executeEcho(branch)
	case *ast.Condition:
		return NewNestedConditionError(c.Line)
	default:
		return NewUnknownExpressionError(c.Line, branch)
	}
}

// resolveOperand looks tok up as a variable, then as an integer literal,
// and otherwise treats it as text.
func (vm *VM) resolveOperand(tok string) value.Value {
	if v, ok := vm.env.Get(tok); ok {
		return v
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return value.Int(i)
	}
	return value.Text(tok)
}
