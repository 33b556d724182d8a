package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zurustar/mybash/pkg/script"
)

// Config holds the settings parsed from the command line.
type Config struct {
	ScriptPath string // script file, or a directory containing main.mb
	LogLevel   string // debug, info, warn, error
	Encoding   string // text encoding of the script file
	ShowHelp   bool
}

const defaultLogLevel = "warn"

// ParseArgs parses command-line arguments into a Config.
// Flags take precedence over the LOG_LEVEL and MYBASH_ENCODING
// environment variables.
func ParseArgs(args []string) (*Config, error) {
	reorderedArgs := reorderArgs(args)

	fs := flag.NewFlagSet("mybash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	config := &Config{}

	fs.StringVar(&config.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogLevel, "l", "", "log level (shorthand)")
	fs.StringVar(&config.Encoding, "encoding", "", "script text encoding")
	fs.StringVar(&config.Encoding, "e", "", "script text encoding (shorthand)")
	fs.BoolVar(&config.ShowHelp, "help", false, "show help")
	fs.BoolVar(&config.ShowHelp, "h", false, "show help (shorthand)")

	if err := fs.Parse(reorderedArgs); err != nil {
		return nil, err
	}

	if config.LogLevel == "" {
		config.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	}
	if config.LogLevel == "" {
		config.LogLevel = defaultLogLevel
	}

	if config.Encoding == "" {
		config.Encoding = os.Getenv("MYBASH_ENCODING")
	}
	if config.Encoding == "" {
		config.Encoding = script.DefaultEncoding
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[config.LogLevel] {
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", config.LogLevel)
	}

	if !script.ValidEncoding(config.Encoding) {
		return nil, fmt.Errorf("unsupported encoding: %s", config.Encoding)
	}

	if fs.NArg() > 1 {
		return nil, fmt.Errorf("expected one script path, got %d arguments", fs.NArg())
	}
	if fs.NArg() == 1 {
		config.ScriptPath = fs.Arg(0)
	}

	return config, nil
}

// reorderArgs moves flags in front of positional arguments so that
// `mybash main.mb -l debug` parses like `mybash -l debug main.mb`.
func reorderArgs(args []string) []string {
	var flags []string
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}

		if len(arg) > 1 && arg[0] == '-' {
			flags = append(flags, arg)

			// -l debug: the next argument is the flag's value
			if !isBoolFlag(arg) && !strings.Contains(arg, "=") && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}

	if len(positional) == 0 {
		return flags
	}
	return append(append(flags, "--"), positional...)
}

func isBoolFlag(arg string) bool {
	switch strings.TrimLeft(arg, "-") {
	case "h", "help":
		return true
	}
	return false
}

// PrintHelp writes the usage message to w.
func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `mybash - a tiny line-oriented script interpreter

Usage:
  mybash [options] <script>

Arguments:
  script    path to a script file, or a directory containing main.mb

Options:
  -l, --log-level <level>     log level: debug, info, warn, error (default: warn)
  -e, --encoding <name>       script encoding, e.g. utf-8, shift_jis, utf-16le (default: utf-8)
  -h, --help                  show this help

Environment Variables:
  LOG_LEVEL=<level>           log level
  MYBASH_ENCODING=<name>      script encoding

Script syntax:
  name: Str = 'Jone'          declare a string (Str or String)
  age: Int = 31               declare an integer
  echo name                   print a variable, or the text itself
  if age >= 18 then echo ok   run one declaration or echo when true
                              operators: == != < <= > >=

Logs are written to stderr; script output goes to stdout.
`)
}
