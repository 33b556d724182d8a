package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/zurustar/mybash/pkg/cli"
	"github.com/zurustar/mybash/pkg/compiler"
	"github.com/zurustar/mybash/pkg/logger"
	"github.com/zurustar/mybash/pkg/script"
	"github.com/zurustar/mybash/pkg/vm"
)

// Application runs one script from the command line.
type Application struct {
	config *cli.Config
	log    *slog.Logger
	stdout io.Writer
}

// New creates an Application writing script output to stdout.
func New(stdout io.Writer) *Application {
	return &Application{
		stdout: stdout,
	}
}

// Run parses args, loads and parses the script, then executes it.
// Nothing is executed unless the whole script parses.
func (app *Application) Run(ctx context.Context, args []string) error {
	config, err := cli.ParseArgs(args)
	if err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}
	app.config = config

	if app.config.ShowHelp {
		cli.PrintHelp(app.stdout)
		return nil
	}

	if err := logger.InitLogger(app.config.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.log = logger.GetLogger()

	s, err := script.NewLoader(app.config.Encoding).Load(app.config.ScriptPath)
	if err != nil {
		return err
	}

	app.log.Info("Script loaded", "name", s.FileName, "path", s.Path, "size", s.Size, "encoding", app.config.Encoding)
	app.log.Debug("Script content preview", "name", s.FileName, "preview", truncate(s.Content, 100))

	program, err := compiler.CompileScript(s)
	if err != nil {
		return err
	}

	app.log.Info("Script parsed", "expression_count", len(program.Expressions))

	machine := vm.New(program, vm.WithOutput(app.stdout), vm.WithLogger(app.log))
	if err := machine.Run(ctx); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	return nil
}

// truncate shortens s for log previews.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
