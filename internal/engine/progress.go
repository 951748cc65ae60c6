package engine

import "github.com/streadway/quantile"

// progressEstimator is an optional, approximate streaming view into a
// benchmark's measurement phase, grounded on the teacher's use of
// github.com/streadway/quantile in benchmarks.go. It is intentionally
// separate from pkg/stats.Compute: spec.md §4.3 requires the final
// Stats to be computed exactly, over the full sorted SampleBuffer, so
// this estimator never feeds the reported result — it only backs an
// optional live progress callback while a long measurement phase is
// still running.
type progressEstimator struct {
	est *quantile.Estimator
}

func newProgressEstimator(tolerance float64) *progressEstimator {
	return &progressEstimator{
		est: quantile.New(
			quantile.Known(0.50, tolerance),
			quantile.Known(0.90, tolerance),
		),
	}
}

func (p *progressEstimator) observe(sampleNS float64) {
	p.est.Add(sampleNS)
}

// medianEstimate returns the estimator's current approximate median, in
// nanoseconds.
func (p *progressEstimator) medianEstimate() float64 {
	return p.est.Get(0.50)
}

// p90Estimate returns the estimator's current approximate 90th
// percentile, in nanoseconds.
func (p *progressEstimator) p90Estimate() float64 {
	return p.est.Get(0.90)
}

// ProgressFunc is an optional callback invoked after each recorded
// measurement sample. It never receives warmup samples.
type ProgressFunc func(name string, emitted, target int, medianNS, p90NS float64)
