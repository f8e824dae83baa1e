// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package monads wires the scenario command: configuration, scenario
// selection and the summary printed after each run.
package monads

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"code.hybscloud.com/monad/internal/config"
	"code.hybscloud.com/monad/internal/script"
)

// Config holds scenario command configuration.
type Config struct {
	Scenario   string `env:"MONADS_SCENARIO_FILE"`
	Assertions bool   `env:"MONADS_SCENARIO_ASSERT" envDefault:"true"`
	Verbose    bool   `env:"MONADS_VERBOSE"`
	Lang       string `env:"MONADS_LANG"            envDefault:"en"`
}

// ParseConfig reads the environment, then parses flags over it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "path to scenario lua file (default: run built-in scenarios)")
	fs.BoolVar(&cfg.Assertions, "assert", cfg.Assertions, "enable assertions (disable to log failed checks)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "BCP 47 language tag for the summary")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ErrChecksFailed reports that a run finished with failed checks.
var ErrChecksFailed = errors.New("scenario checks failed")

// Run executes the configured scenarios and prints a summary to out.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	tag, err := language.Parse(cfg.Lang)
	if err != nil {
		return fmt.Errorf("parse lang %q: %w", cfg.Lang, err)
	}

	mode := script.AssertionStrict
	if !cfg.Assertions {
		mode = script.AssertionLogOnly
	}
	runner := script.NewRunner(script.Config{
		Assertions: mode,
		Verbose:    cfg.Verbose,
		Logger:     log.New(errOut, "", 0),
	})

	var results []script.Result
	if cfg.Scenario != "" {
		result, err := runner.RunFile(ctx, cfg.Scenario)
		if err != nil {
			return err
		}
		results = append(results, result)
	} else {
		scenarios, err := script.Builtin()
		if err != nil {
			return err
		}
		if results, err = runner.RunAll(ctx, scenarios); err != nil {
			return err
		}
	}

	failed := printSummary(message.NewPrinter(tag), out, results)
	if failed > 0 {
		return fmt.Errorf("%w: %d", ErrChecksFailed, failed)
	}
	return nil
}

// printSummary writes one block per result and returns the number of failed checks.
func printSummary(p *message.Printer, out io.Writer, results []script.Result) int {
	failed := 0
	for _, result := range results {
		p.Fprintf(out, "%s: %d checks, %d failed\n", result.Name, result.Checks, len(result.Failures))
		for _, report := range result.Reports {
			p.Fprintf(out, "  %s = %s\n", report.Label, report.Value)
		}
		for _, failure := range result.Failures {
			p.Fprintf(out, "  FAIL %s\n", failure)
		}
		failed += len(result.Failures)
	}
	return failed
}
