package engine

import (
	"github.com/zapbench/zap/internal/loopctl"
	"github.com/zapbench/zap/pkg/samplebuf"
	"github.com/zapbench/zap/pkg/stats"
	"github.com/zapbench/zap/pkg/timer"
)

// runBench implements BenchRunner (spec.md §4.5): acquire a SampleBuffer
// and Controller sized by cfg, drive the user routine, then compute
// stats over whatever samples were emitted. It never returns an error —
// a routine that emits zero samples yields a zero Stats, per spec.md
// §4.5's failure semantics ("reported, never retried, never fatal").
func runBench(clock timer.Timer, cfg BenchConfig, fn Func, progress ProgressFunc, name string) stats.Stats {
	buf := samplebuf.New(cfg.SampleCount)
	ctl := loopctl.New(clock, loopctl.Config{
		WarmupNS:      cfg.WarmupNS,
		MeasurementNS: cfg.MeasurementNS,
		SampleCount:   cfg.SampleCount,
		MinIterations: cfg.MinIterations,
	}, buf)

	b := newB(clock, ctl)
	if progress != nil {
		b.enableProgress(buf, progress, name, cfg.SampleCount)
	}
	fn(b)

	computed := stats.Compute(buf.Samples())
	// IterationsPerSample and Throughput are not derivable from the
	// sample values alone (spec.md §3); BenchRunner carries them over
	// from the controller's final N and whatever the user routine set
	// via B.SetBytes/SetElements.
	computed.IterationsPerSample = ctl.N()
	computed.Throughput = b.throughput
	return computed
}
