package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/zurustar/mybash/pkg/app"
	"github.com/zurustar/mybash/pkg/compiler"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	application := app.New(os.Stdout)
	if err := application.Run(ctx, os.Args[1:]); err != nil {
		reportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// reportError prints err to w, followed by the offending source lines
// when err is a parse failure.
func reportError(w io.Writer, err error) {
	label := color.New(color.FgRed, color.Bold)
	label.Fprint(w, "Error: ")

	var ce *compiler.CompileError
	if errors.As(err, &ce) {
		fmt.Fprintln(w, ce.Error())
		if ce.Context != "" {
			color.New(color.Faint).Fprint(w, ce.Context)
		}
		return
	}
	fmt.Fprintln(w, err)
}
