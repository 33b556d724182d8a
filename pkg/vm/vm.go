// Package vm executes parsed mybash programs.
package vm

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/zurustar/mybash/pkg/compiler/ast"
	"github.com/zurustar/mybash/pkg/logger"
)

// VM runs one program against one environment.
type VM struct {
	program *ast.Program
	env     *Environment
	out     io.Writer
	log     *slog.Logger
}

// Option is a functional option for configuring the VM.
type Option func(*VM)

// WithOutput sets the stream echo output is written to.
func WithOutput(w io.Writer) Option {
	return func(vm *VM) {
		vm.out = w
	}
}

// WithLogger sets a custom logger.
func WithLogger(log *slog.Logger) Option {
	return func(vm *VM) {
		vm.log = log
	}
}

// New creates a VM for program. Every top-level declaration is hoisted
// into the environment here, so a name is visible to lines that precede
// its declaration. Later declarations of the same name win.
func New(program *ast.Program, opts ...Option) *VM {
	if program == nil {
		program = &ast.Program{}
	}

	vm := &VM{
		program: program,
		env:     NewEnvironment(),
		out:     os.Stdout,
		log:     logger.GetLogger(),
	}

	for _, opt := range opts {
		opt(vm)
	}

	for _, v := range program.Declarations() {
		vm.env.Set(v.Name, v.Value)
	}

	return vm
}

// Env returns the VM's environment.
func (vm *VM) Env() *Environment {
	return vm.env
}

// Run executes the program once, top to bottom.
// The first error aborts the run. ctx is checked between expressions.
func (vm *VM) Run(ctx context.Context) error {
	vm.log.Info("VM started", "expression_count", len(vm.program.Expressions), "variable_count", vm.env.Len())

	for _, expr := range vm.program.Expressions {
		if err := ctx.Err(); err != nil {
			vm.log.Info("VM execution cancelled")
			return err
		}

		if err := vm.Execute(expr); err != nil {
			vm.log.Error("expression execution failed", "line", expr.SourceLine(), "error", err)
			return err
		}
	}

	vm.log.Info("VM execution completed")
	vm.log.Debug("final environment", "variables", vm.env.Names())
	return nil
}
