// Package main is the entry point for the leadtime CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/leadtime/internal/app"
	"github.com/runoshun/leadtime/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	opts := containerOptions(os.Args[1:])
	opts.Console = os.Stderr

	// Create dependency injection container
	container, err := app.New(cwd, opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// containerOptions reads the global flags the container needs before cobra
// parses the command line.
func containerOptions(args []string) app.Options {
	var opts app.Options
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		switch {
		case arg == "--"+cli.FlagVerbose:
			opts.Verbose = true
		case arg == "--"+cli.FlagDataDir && i+1 < len(args):
			opts.DataDir = args[i+1]
			i++
		case strings.HasPrefix(arg, "--"+cli.FlagDataDir+"="):
			opts.DataDir = strings.TrimPrefix(arg, "--"+cli.FlagDataDir+"=")
		}
	}
	return opts
}
