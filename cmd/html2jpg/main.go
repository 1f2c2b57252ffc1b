package main

import (
	"context"
	"fmt"
	"os"

	html2jpg "github.com/alnah/go-html2jpg"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain dispatches subcommands and returns the process exit code.
func realMain(args []string) int {
	env := DefaultEnv()

	command, rest := splitCommand(args)
	switch command {
	case "version":
		fmt.Fprintf(env.Stdout, "html2jpg %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(rest, env)
	case "convert":
		return runConvertCmd(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", command)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// splitCommand separates the subcommand from its arguments. A bare
// invocation, a flag, or a path as first argument means convert.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "convert", nil
	}
	switch args[0] {
	case "convert", "version", "doctor", "help":
		return args[0], args[1:]
	}
	return "convert", args
}

// runConvertCmd parses flags, builds the renderer pool, and runs the
// conversion under a signal-cancelled context.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", a...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	envCfg, warnings := loadEnvConfig()
	for _, w := range warnings {
		fmt.Fprintln(env.Stderr, w)
	}
	warnUnknownEnvVars(env.Stderr)

	timeout, err := resolveTimeout(flags.timeout, envCfg.Timeout)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	if err := validateWorkers(workers); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	poolSize := resolvePoolSize(workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := NewRendererPool(poolSize, html2jpg.WithTimeout(timeout))
	defer pool.Close()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, envCfg, pool, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
