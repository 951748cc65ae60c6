// Package engine is the measurement core: BenchConfig, BenchRunner,
// GroupRunner, and the explicit Engine object spec.md §9 calls for in
// place of the C source's process-wide configuration singleton
// (internal/loopctl and pkg/stats do the arithmetic; this package wires
// them to registration, filtering, baseline comparison, and reporting).
package engine

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zapbench/zap/internal/compare"
	"github.com/zapbench/zap/pkg/baseline"
	"github.com/zapbench/zap/pkg/filter"
	"github.com/zapbench/zap/pkg/timer"
)

// Reporter is the hook spec.md §4.5/§4.6 forwards results to. Defined
// here (rather than in internal/report, which implements it) so that
// engine has no dependency on the rendering package — report imports
// engine for Result, not the other way around.
type Reporter interface {
	GroupHeader(group string)
	Report(Result)
}

// nopReporter discards everything; used when no Reporter is set so Run
// never needs a nil check at each call site.
type nopReporter struct{}

func (nopReporter) GroupHeader(string) {}
func (nopReporter) Report(Result)      {}

// Engine owns the process-wide Config, BaselineStore, and the
// re-entrancy guard (spec.md §9's "Process-wide configuration
// singleton" note, reconstituted as an explicit object instead of
// globals). One Engine is built per process invocation of the CLI; tests
// construct their own to stay isolated from each other.
type Engine struct {
	mu sync.Mutex

	cfg      Config
	baseline *baseline.Store
	reporter Reporter
	progress ProgressFunc
	clock    timer.Timer
	logger   *zap.Logger
	runID    uuid.UUID

	running       bool
	hasRegression bool
}

// New constructs an Engine. A nil logger collapses to zap.NewNop() so
// tests never need a real sink.
func New(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:      cfg,
		baseline: baseline.New(),
		reporter: nopReporter{},
		clock:    timer.New(),
		logger:   logger,
		runID:    uuid.New(),
	}
}

// RunID returns the correlation identifier stamped into this Engine's
// JSON report lines and log context.
func (e *Engine) RunID() uuid.UUID { return e.runID }

// SetReporter installs the reporter hook results and group headers are
// forwarded to. Must be called before Run.
func (e *Engine) SetReporter(r Reporter) {
	if r == nil {
		r = nopReporter{}
	}
	e.reporter = r
}

// SetProgress installs an optional live-progress callback (see
// progress.go); nil disables it.
func (e *Engine) SetProgress(p ProgressFunc) { e.progress = p }

// SetClock overrides the Engine's Timer; tests use this to inject a
// pkg/timer.Mock.
func (e *Engine) SetClock(c timer.Timer) { e.clock = c }

// LoadBaseline loads the baseline store from cfg.BaselinePath. A missing
// file is not an error (spec.md §6); it leaves the Engine's store empty.
func (e *Engine) LoadBaseline() error {
	if e.cfg.BaselinePath == "" {
		return nil
	}
	store, found, err := baseline.Load(e.cfg.BaselinePath)
	if err != nil {
		return err
	}
	if found {
		e.baseline = store
	}
	return nil
}

// SaveBaseline writes the Engine's current baseline store to
// cfg.BaselinePath.
func (e *Engine) SaveBaseline() error {
	if e.cfg.BaselinePath == "" {
		return nil
	}
	return baseline.Save(e.baseline, e.cfg.BaselinePath)
}

// Run executes every group's matching benchmarks in registration order
// (spec.md §4.6), comparing against the loaded baseline and upserting
// new entries as configured. It is an error to call Run while a prior
// call on the same Engine is still in progress (spec.md §9's
// re-entrancy guard).
func (e *Engine) Run(groups []*Group) (Summary, error) {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return Summary{}, ErrReentrant
	}
	e.running = true
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
	}()

	var summary Summary
	for _, g := range groups {
		if !tagsMatch(g.tags, e.cfg.Tags) {
			continue
		}
		cfg := g.resolveConfig(e.cfg.Default)
		if err := cfg.Validate(); err != nil {
			e.logger.Warn("skipping group with invalid config", zap.String("group", g.Name), zap.Error(err))
			continue
		}

		headerSent := false
		for _, rb := range g.benches {
			if !filter.Match(rb.name, e.cfg.Filter) {
				continue
			}
			if !headerSent {
				e.reporter.GroupHeader(g.Name)
				headerSent = true
			}
			result := e.runOne(cfg, g.Name, rb.name, rb.fn)
			e.reporter.Report(result)
			summary.Results = append(summary.Results, result)
		}
	}
	summary.HasRegression = e.hasRegression
	return summary, nil
}

// List returns "<group>/<name>" for every benchmark that would run given
// the Engine's current filter and tag configuration, without running
// anything (spec.md §6 --dry-run/--list). The group prefix is added only
// here; the name filter, Result.Name and the baseline key all use the
// bare registered name.
func (e *Engine) List(groups []*Group) []string {
	var names []string
	for _, g := range groups {
		if !tagsMatch(g.tags, e.cfg.Tags) {
			continue
		}
		for _, rb := range g.benches {
			if !filter.Match(rb.name, e.cfg.Filter) {
				continue
			}
			names = append(names, g.Name+"/"+rb.name)
		}
	}
	return names
}

func (e *Engine) runOne(cfg BenchConfig, group, name string, fn Func) Result {
	computed := runBench(e.clock, cfg, fn, e.progress, name)

	result := Result{Name: name, Group: group, Stats: computed}

	if computed.SampleCount > 0 && computed.SampleCount < cfg.SampleCount {
		result.Warning = InsufficientSamples{Name: name, Got: computed.SampleCount, Want: cfg.SampleCount}.String()
		e.logger.Warn("insufficient samples", zap.String("bench", name), zap.Int("got", computed.SampleCount), zap.Int("want", cfg.SampleCount))
	}

	if e.cfg.Compare {
		if entry, ok := e.baseline.Find(name); ok {
			cmp := compare.Compare(entry, computed)
			result.Comparison = &cmp
			if cmp.Change == compare.Regressed && e.cfg.FailThreshold != nil && cmp.ChangePct > *e.cfg.FailThreshold {
				e.hasRegression = true
				e.logger.Warn("regression detected",
					zap.String("bench", name),
					zap.Float64("change_pct", cmp.ChangePct),
					zap.Float64("fail_threshold", *e.cfg.FailThreshold),
				)
			}
		}
	}

	if e.cfg.Save && computed.SampleCount > 0 {
		e.baseline.Add(baseline.Entry{
			Name:    name,
			Mean:    computed.Mean,
			StdDev:  computed.StdDev,
			CILower: computed.CILower,
			CIUpper: computed.CIUpper,
		})
	}

	return result
}
