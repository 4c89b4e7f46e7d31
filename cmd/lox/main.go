// Command lox runs the tree-walking Lox interpreter: scan, parse,
// resolve, evaluate, one source file per invocation.
package main

import (
	"fmt"
	"os"

	"github.com/funvibe/lox/internal/config"
	"github.com/funvibe/lox/internal/diagnostics"
	"github.com/funvibe/lox/internal/pipeline"
)

// debugEnabled reports whether sub-debug run tracing (run start and
// finish) should be emitted, via -v/--verbose or LOX_DEBUG.
func debugEnabled(args []string) bool {
	if os.Getenv("LOX_DEBUG") != "" {
		return true
	}
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [--config <file>] <script.lox>\n", os.Args[0])
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var configPath string
	var scriptPath string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 >= len(args) {
				usage()
				return config.ExitParser
			}
			i++
			configPath = args[i]
		case "-version", "--version":
			fmt.Println(config.Version)
			return config.ExitOK
		case "-v", "--verbose":
			// consumed by debugEnabled below
		default:
			if scriptPath != "" {
				usage()
				return config.ExitParser
			}
			scriptPath = args[i]
		}
	}

	if scriptPath == "" {
		usage()
		return config.ExitParser
	}

	if configPath == "" {
		configPath = os.Getenv("LOXCONFIG")
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lox: could not read config %s: %v\n", configPath, err)
			return config.ExitParser
		}
		cfg = loaded
	}

	source, err := os.ReadFile(scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lox: could not read %s: %v\n", scriptPath, err)
		return config.ExitParser
	}

	debug := diagnostics.NewDebugLogger(os.Stderr, debugEnabled(args))
	debug.Debug("run starting", "script", scriptPath, "bytes", len(source))

	reporter := diagnostics.NewReporter(diagnostics.ColorMode(config.ColorModeFromString(cfg.Color)))
	ctx := pipeline.Run(string(source), os.Stdout, cfg.MaxCallDepth)
	debug.Debug("run finished", "had_errors", ctx.Errors.HasErrors())
	if ctx.Errors.HasErrors() {
		ctx.Errors.Report(os.Stderr, reporter)
		return ctx.Errors.ExitCode()
	}
	return config.ExitOK
}
