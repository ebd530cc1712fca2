package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/fernandezvara/passadvisor"
	"github.com/fernandezvara/passadvisor/internal/config"
	"github.com/fernandezvara/passadvisor/pkg/debug"
)

type analyzeOptions struct {
	context  passadvisor.ContextInfo
	dict     string
	json     bool
	minLevel string
}

func newAnalyzeFlagSet(cfg *config.Config, o *analyzeOptions, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(programName+" analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.context.Name, "name", cfg.Context.Name, "your name, flagged if found in the password")
	fs.StringVar(&o.context.BirthYear, "birth-year", cfg.Context.BirthYear, "your birth year")
	fs.StringVar(&o.context.Mobile, "mobile", cfg.Context.Mobile, "your mobile number")
	fs.StringVar(&o.context.FavWord, "fav-word", cfg.Context.FavWord, "your favorite word")
	fs.StringVar(&o.dict, "dict", cfg.DictionaryPath, "custom known-weak password list, one per line")
	fs.BoolVar(&o.json, "json", cfg.Output == config.OutputJSON, "print JSON")
	fs.StringVar(&o.minLevel, "min-level", cfg.MinLevel.String(), "exit 1 when a password is below this level")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s analyze [options] [PASSWORD | -]\n\nOptions:\n", programName)
		fs.PrintDefaults()
	}
	return fs
}

func runAnalyze(ctx context.Context, cfg *config.Config, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var o analyzeOptions
	fs := newAnalyzeFlagSet(cfg, &o, stderr)

	flagArgs, posArgs := splitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if len(posArgs) > 1 {
		fmt.Fprintf(stderr, "%s analyze: expected at most one password, got %d\n", programName, len(posArgs))
		return ExitUsage
	}

	minLevel, err := passadvisor.ParseLevel(o.minLevel)
	if err != nil {
		fmt.Fprintf(stderr, "%s analyze: %v\n", programName, err)
		return ExitUsage
	}

	runCfg := *cfg
	runCfg.DictionaryPath = o.dict
	analyzer, err := runCfg.Analyzer()
	if err != nil {
		fmt.Fprintf(stderr, "%s analyze: %v\n", programName, err)
		return ExitUsage
	}

	a := &analyzeRun{
		analyzer: analyzer,
		info:     &o.context,
		json:     o.json,
		minLevel: minLevel,
		stdout:   stdout,
	}

	switch {
	case len(posArgs) == 1 && posArgs[0] == "-":
		err = eachLine(ctx, stdin, a.emitNext)
	case len(posArgs) == 1:
		err = a.emit(0, posArgs[0])
	default:
		var pwd string
		pwd, err = promptPassword(stdin, stderr)
		if err == nil {
			err = a.emit(0, pwd)
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s analyze: %v\n", programName, err)
		return exitCodeFor(err)
	}

	if a.failed > 0 {
		debug.Info("%d of %d passwords below %s", a.failed, a.count, minLevel)
		return ExitBelowMinLevel
	}
	return ExitOK
}

// analyzeRun holds the state of one analyze invocation.
type analyzeRun struct {
	analyzer *passadvisor.Analyzer
	info     *passadvisor.ContextInfo
	json     bool
	minLevel passadvisor.StrengthLevel
	stdout   io.Writer

	count  int
	failed int
}

// emitNext analyzes one password of a batch.
func (a *analyzeRun) emitNext(pwd string) error {
	return a.emit(a.count+1, pwd)
}

// emit analyzes pwd and prints the result. index is 0 outside batch mode.
func (a *analyzeRun) emit(index int, pwd string) error {
	a.count++
	res := a.analyzer.Analyze(pwd, a.info)
	if a.minLevel > passadvisor.LevelNone && !res.Meets(a.minLevel) {
		a.failed++
	}

	if a.json {
		return encodePretty(a.stdout, analysisReport{Index: index, Result: res})
	}
	if index > 0 {
		if index > 1 {
			fmt.Fprintln(a.stdout)
		}
		fmt.Fprintf(a.stdout, "#%d\n", index)
	}
	return writeResultText(a.stdout, res)
}
