// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package script runs Lua scenario scripts against MathOp and Game.
//
// Scripts see two constructor tables, MathOp and Game, whose instances
// chain fluently with method call syntax:
//
//	local g = Game.new():move("c"):move("a")
//	local on, score = g:run(false, 0)
//	check("toggle then add", score, 1)
//	report("math", MathOp.new(5):mul(2):div(0))
//
// check compares two values with raw equality; report records a labelled
// value in the scenario result.
package script

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

// AssertionMode selects how failed checks are handled.
type AssertionMode int

const (
	// AssertionStrict aborts the scenario at the first failed check.
	AssertionStrict AssertionMode = iota
	// AssertionLogOnly logs failed checks and keeps running.
	AssertionLogOnly
)

// Config controls scenario execution.
type Config struct {
	Assertions AssertionMode
	Verbose    bool
	Logger     *log.Logger
}

// Report is one labelled value emitted by a script.
type Report struct {
	Label string
	Value string
}

// Result summarizes one scenario run.
type Result struct {
	Name     string
	Checks   int
	Failures []string
	Reports  []Report
}

// Passed reports whether every check succeeded.
func (r Result) Passed() bool {
	return len(r.Failures) == 0
}

// Runner executes Lua scenarios. A Runner holds no per-scenario state; each
// run gets a fresh Lua state.
type Runner struct {
	assertions AssertionMode
	logger     *log.Logger
	verbose    bool
}

// NewRunner prepares a scenario runner.
func NewRunner(cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	return &Runner{
		assertions: cfg.Assertions,
		logger:     logger,
		verbose:    cfg.Verbose,
	}
}

// RunFile loads and executes a scenario file.
// The scenario is named after the file without its extension.
func (r *Runner) RunFile(ctx context.Context, path string) (Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read scenario: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return r.RunString(ctx, name, string(source))
}

// RunString executes scenario source under the given name.
func (r *Runner) RunString(ctx context.Context, name, source string) (Result, error) {
	if strings.TrimSpace(source) == "" {
		return Result{}, errors.New("scenario source is empty")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	run := &scenarioRun{runner: r, result: Result{Name: name}}
	state := lua.NewState()
	lua.OpenLibraries(state)
	registerTypes(state)
	run.registerGlobals(state)
	watchContext(ctx, state)

	r.logf("scenario start: %s", name)
	if err := lua.LoadBuffer(state, source, "@"+name, "t"); err != nil {
		return run.result, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return run.result, fmt.Errorf("run lua: %w", cerr)
		}
		return run.result, fmt.Errorf("run lua: %w", err)
	}
	r.logf("scenario done: %s (%d checks, %d failed)", name, run.result.Checks, len(run.result.Failures))
	return run.result, nil
}

// RunAll executes each named scenario in order and stops at the first error.
func (r *Runner) RunAll(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		result, err := r.RunString(ctx, s.Name, s.Source)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// hookInterval is the number of Lua instructions between context checks.
const hookInterval = 1000

// watchContext aborts the running script once ctx is done.
func watchContext(ctx context.Context, state *lua.State) {
	if ctx.Done() == nil {
		return
	}
	lua.SetDebugHook(state, func(l *lua.State, _ lua.Debug) {
		if err := ctx.Err(); err != nil {
			lua.Errorf(l, "scenario canceled: %s", err.Error())
		}
	}, lua.MaskCount, hookInterval)
}

func (r *Runner) logf(format string, args ...any) {
	if !r.verbose || r.logger == nil {
		return
	}
	r.logger.Printf(format, args...)
}

// scenarioRun collects checks and reports for a single Lua state.
type scenarioRun struct {
	runner *Runner
	result Result
}

func (s *scenarioRun) registerGlobals(state *lua.State) {
	state.Register("check", s.check)
	state.Register("report", s.report)
}

// check(label, got, want)
func (s *scenarioRun) check(state *lua.State) int {
	label := lua.CheckString(state, 1)
	lua.CheckAny(state, 2)
	lua.CheckAny(state, 3)
	s.result.Checks++
	if state.RawEqual(2, 3) {
		s.runner.logf("check ok: %s", label)
		return 0
	}

	failure := fmt.Sprintf("%s: got %s, want %s", label, luaString(state, 2), luaString(state, 3))
	s.result.Failures = append(s.result.Failures, failure)
	if s.runner.assertions == AssertionStrict {
		lua.Errorf(state, "check failed: %s", failure)
		return 0
	}
	s.runner.logger.Printf("check failed: %s", failure)
	return 0
}

// report(label, value)
func (s *scenarioRun) report(state *lua.State) int {
	label := lua.CheckString(state, 1)
	lua.CheckAny(state, 2)
	value := luaString(state, 2)
	s.result.Reports = append(s.result.Reports, Report{Label: label, Value: value})
	s.runner.logf("report %s: %s", label, value)
	return 0
}

// luaString renders the value at index with its __tostring metamethod.
func luaString(state *lua.State, index int) string {
	value, _ := lua.ToStringMeta(state, index)
	state.Pop(1)
	return value
}
