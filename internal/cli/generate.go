package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/fernandezvara/passadvisor"
	"github.com/fernandezvara/passadvisor/internal/config"
)

type generateOptions struct {
	count   int
	length  int
	analyze bool
	json    bool
}

func newGenerateFlagSet(cfg *config.Config, o *generateOptions, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(programName+" generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.count, "n", 1, "number of passwords to generate")
	fs.IntVar(&o.length, "length", cfg.Length, "password length")
	fs.BoolVar(&o.analyze, "analyze", false, "also print the analysis of each password")
	fs.BoolVar(&o.json, "json", cfg.Output == config.OutputJSON, "print JSON")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s generate [options]\n\nOptions:\n", programName)
		fs.PrintDefaults()
	}
	return fs
}

func runGenerate(ctx context.Context, cfg *config.Config, argv []string, stdout, stderr io.Writer) int {
	var o generateOptions
	fs := newGenerateFlagSet(cfg, &o, stderr)

	flagArgs, posArgs := splitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if len(posArgs) > 0 {
		fmt.Fprintf(stderr, "%s generate: unexpected arguments %q\n", programName, posArgs)
		return ExitUsage
	}
	if o.count < 1 {
		fmt.Fprintf(stderr, "%s generate: -n must be at least 1, got %d\n", programName, o.count)
		return ExitUsage
	}

	var analyzer *passadvisor.Analyzer
	if o.analyze {
		var err error
		if analyzer, err = cfg.Analyzer(); err != nil {
			fmt.Fprintf(stderr, "%s generate: %v\n", programName, err)
			return ExitUsage
		}
	}

	g := newGenerator()
	g.Length = o.length

	for i := 0; i < o.count; i++ {
		if err := ctx.Err(); err != nil {
			return ExitInterrupted
		}
		pwd, err := g.Generate()
		if err != nil {
			fmt.Fprintf(stderr, "%s generate: %v\n", programName, err)
			return exitCodeFor(err)
		}
		if err := writeGenerated(stdout, pwd, analyzer, &cfg.Context, o.json, i); err != nil {
			fmt.Fprintf(stderr, "%s generate: %v\n", programName, err)
			return ExitUsage
		}
	}
	return ExitOK
}

func writeGenerated(w io.Writer, pwd string, analyzer *passadvisor.Analyzer, info *passadvisor.ContextInfo, asJSON bool, i int) error {
	var res *passadvisor.Result
	if analyzer != nil {
		r := analyzer.Analyze(pwd, info)
		res = &r
	}

	if asJSON {
		return encodePretty(w, generatedReport{Password: pwd, Analysis: res})
	}
	if res == nil {
		_, err := fmt.Fprintln(w, pwd)
		return err
	}
	if i > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Password:    %s\n", pwd)
	return writeResultText(w, *res)
}
