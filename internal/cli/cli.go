// Package cli implements the passadvisor command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fernandezvara/passadvisor"
	"github.com/fernandezvara/passadvisor/internal/config"
	"github.com/fernandezvara/passadvisor/pkg/debug"
)

// Exit codes.
const (
	ExitOK            = 0
	ExitBelowMinLevel = 1
	ExitUsage         = 2
	ExitRandomSource  = 3
	ExitInterrupted   = 130
)

const (
	programName        = "passadvisor"
	usageHeaderMessage = "passadvisor - password strength advisor"
)

// loadConfig and newGenerator are replaced in tests.
var (
	loadConfig   = config.Load
	newGenerator = passadvisor.NewGenerator
)

// RunContext runs the command line in argv and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		printUsage(stderr)
		return ExitUsage
	}

	cmd, rest := argv[0], argv[1:]
	switch cmd {
	case "help", "-h", "--help", "-help":
		printUsage(stdout)
		return ExitOK
	case "analyze", "generate":
	default:
		fmt.Fprintf(stderr, "%s: unknown command %q\n\n", programName, cmd)
		printUsage(stderr)
		return ExitUsage
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return ExitUsage
	}

	var code int
	if cmd == "analyze" {
		code = runAnalyze(ctx, cfg, rest, stdin, stdout, stderr)
	} else {
		code = runGenerate(ctx, cfg, rest, stdout, stderr)
	}

	if ctx.Err() != nil && code == ExitOK {
		debug.Warning("Interrupted: %v", ctx.Err())
		code = ExitInterrupted
	}
	return code
}

// exitCodeFor maps an error to the exit code reported for it.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, passadvisor.ErrRandomSourceUnavailable):
		return ExitRandomSource
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitInterrupted
	default:
		return ExitUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, usageHeaderMessage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s analyze [options] [PASSWORD | -]\n", programName)
	fmt.Fprintf(w, "  %s generate [options]\n", programName)
	fmt.Fprintf(w, "  %s help\n", programName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without PASSWORD, analyze prompts for one (hidden input on a terminal).")
	fmt.Fprintln(w, "With '-', analyze reads one password per line from stdin.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run '<command> -h' for the options of a command.")
	fmt.Fprintln(w, "Defaults are read from the environment and an optional .env file (PASSADVISOR_*).")
}
