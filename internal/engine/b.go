package engine

import (
	"github.com/zapbench/zap/internal/loopctl"
	"github.com/zapbench/zap/pkg/samplebuf"
	"github.com/zapbench/zap/pkg/stats"
	"github.com/zapbench/zap/pkg/timer"
)

// Func is a user benchmark routine: it drives b until Next reports the
// run is Done.
type Func func(b *B)

// B is the engine/user coroutine spec.md §9 calls for: a controller
// object exposing "should I continue" and "here is this batch's N",
// replacing the C source's `while (start_batch(state)) { ... }` for-loop
// wrapper with an explicit Go iterator. Usage:
//
//	func(b *engine.B) {
//	    for b.Next() {
//	        for i := 0; i < b.N(); i++ {
//	            optbarrier.BlackBox(work())
//	        }
//	    }
//	}
type B struct {
	ctl        *loopctl.Controller
	clock      timer.Timer
	started    bool
	throughput stats.Throughput

	// Live-progress wiring (see progress.go): buf is the same
	// SampleBuffer the controller appends to; est/progress/name/target
	// are nil/zero unless the engine installed a ProgressFunc. seen
	// tracks how many of buf's samples have already been fed to est, so
	// Next can notice exactly the samples EndBatch just recorded.
	buf      *samplebuf.Buffer
	est      *progressEstimator
	progress ProgressFunc
	name     string
	target   int
	seen     int
}

func newB(clock timer.Timer, ctl *loopctl.Controller) *B {
	return &B{ctl: ctl, clock: clock}
}

// Next ends the previously started batch (if any) and requests another.
// It returns false exactly once, when the controller transitions to
// Done; the caller's loop must stop iterating at that point.
func (b *B) Next() bool {
	if b.started {
		b.ctl.EndBatch()
		b.reportProgress()
	}
	b.started = b.ctl.StartBatch()
	return b.started
}

// reportProgress feeds any measurement samples EndBatch just recorded
// into the live estimator and invokes the installed ProgressFunc. A
// no-op unless the engine called enableProgress.
func (b *B) reportProgress() {
	if b.progress == nil || b.buf.Len() <= b.seen {
		return
	}
	for _, s := range b.buf.Samples()[b.seen:] {
		b.est.observe(s)
	}
	b.seen = b.buf.Len()
	b.progress(b.name, b.seen, b.target, b.est.medianEstimate(), b.est.p90Estimate())
}

// enableProgress wires a live ProgressFunc callback into this B,
// invoked from Next immediately after each measurement sample is
// recorded (see reportProgress). buf must be the same SampleBuffer the
// Controller driving this B appends to.
func (b *B) enableProgress(buf *samplebuf.Buffer, progress ProgressFunc, name string, target int) {
	b.buf = buf
	b.est = newProgressEstimator(0.01)
	b.progress = progress
	b.name = name
	b.target = target
}

// N returns the number of inner iterations the caller's loop body must
// execute for the batch just started by Next.
func (b *B) N() int { return int(b.ctl.N()) }

// Phase exposes the controller's current state, mainly so user code and
// tests can assert no samples were recorded during Warmup (spec.md §8).
func (b *B) Phase() loopctl.Phase { return b.ctl.Phase() }

// SetBytes annotates the benchmark with a per-iteration byte count,
// grounded on zap_bencher_set_throughput_bytes (original_source/zap.h)
// and exercised by example_advanced.c's memcpy benchmark. The reporter
// renders it as a rate ("123.4 MB/s") once the run finishes.
func (b *B) SetBytes(n int64) {
	b.throughput = stats.Throughput{Kind: stats.ThroughputBytes, Value: float64(n)}
}

// SetElements annotates the benchmark with a per-iteration element
// count, grounded on zap_bencher_set_throughput_elements.
func (b *B) SetElements(n int64) {
	b.throughput = stats.Throughput{Kind: stats.ThroughputElements, Value: float64(n)}
}
