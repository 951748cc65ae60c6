// Package stats implements the engine's statistics kernel: pure
// functions over slices of per-iteration nanosecond means (spec.md
// §4.3). Nothing here touches a clock, a file, or a benchmark; every
// function is a deterministic transform of its inputs, which is what
// makes this package exhaustively unit-testable in isolation from the
// rest of the engine.
package stats

import (
	"math"
	"sort"
)

// ThroughputKind annotates a Stats result with how to interpret its
// optional per-iteration throughput value.
type ThroughputKind int

const (
	// ThroughputNone means no throughput annotation was attached.
	ThroughputNone ThroughputKind = iota
	// ThroughputBytes means Value is bytes processed per iteration.
	ThroughputBytes
	// ThroughputElements means Value is elements processed per iteration.
	ThroughputElements
)

// Throughput carries an optional per-iteration rate annotation through
// from BenchState into the computed Stats (spec.md §3).
type Throughput struct {
	Kind  ThroughputKind
	Value float64
}

// Stats is the full set of statistics derived from one benchmark's
// sample set (spec.md §3). It is immutable once returned by Compute.
type Stats struct {
	Mean         float64
	Median       float64
	StdDev       float64
	MAD          float64
	Min          float64
	Max          float64
	P75          float64
	P90          float64
	P95          float64
	P99          float64
	CILower      float64
	CIUpper      float64
	OutliersLow  int
	OutliersHigh int
	SampleCount  int
	// IterationsPerSample is the loop controller's batch size N when the
	// run ended; callers fill this in from the controller since it is not
	// derivable from the sample values alone. Measurement doubles N after
	// a batch shorter than 0.5ms, so this can be twice the N the last
	// sample was measured with.
	IterationsPerSample int64
	Throughput          Throughput
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Median sorts xs in place and returns the middle value (the average of
// the two middle values for an even-length slice).
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	sort.Float64s(xs)
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}

// Percentile returns the p-th percentile of sorted (which must already
// be sorted ascending) using linear interpolation between neighboring
// ranks: rank = p/100 * (n-1), clamped to [0, n-1].
//
// Percentile(sorted, 50) equals Median(sorted) for any n, by construction
// (see the rank formula: for even n it lands exactly between the two
// middle elements and interpolates their average).
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	rank := (p / 100) * float64(n-1)
	if rank < 0 {
		rank = 0
	}
	if rank > float64(n-1) {
		rank = float64(n - 1)
	}
	lower := int(rank)
	upper := lower + 1
	if upper >= n {
		upper = n - 1
	}
	frac := rank - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// StdDev returns the Bessel-corrected sample standard deviation
// (divisor n-1), or 0 when n < 2.
func StdDev(xs []float64, mean float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// MAD returns the median absolute deviation of xs around median: the
// median of |x_i - median|. xs is not sorted by this call; a fresh copy
// of the deviations is sorted internally.
func MAD(xs []float64, median float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	deviations := make([]float64, len(xs))
	for i, x := range xs {
		deviations[i] = abs(x - median)
	}
	return Median(deviations)
}

// tValues95 holds the one-sided upper 97.5% Student's t quantile for
// degrees of freedom n-1, indexed by n (n=2 at index 0) for 2 <= n < 30.
// Above n=29 the normal approximation (1.96) is used instead.
var tValues95 = [...]float64{
	12.71, 4.30, 3.18, 2.78, 2.57, // n = 2-6
	2.45, 2.36, 2.31, 2.26, 2.23, // n = 7-11
	2.20, 2.18, 2.16, 2.14, 2.13, // n = 12-16
	2.12, 2.11, 2.10, 2.09, 2.09, // n = 17-21
	2.08, 2.07, 2.07, 2.06, 2.06, // n = 22-26
	2.05, 2.05, 2.05, // n = 27-29
}

// ConfidenceInterval returns a 95% confidence interval around mean,
// using the normal approximation (t=1.96) for n >= 30, the tValues95
// table for 2 <= n < 30, and a degenerate (mean, mean) interval for
// n < 2.
func ConfidenceInterval(mean, stddev float64, n int) (lower, upper float64) {
	if n < 2 {
		return mean, mean
	}
	t := 1.96
	if n < 30 {
		t = tValues95[n-2]
	}
	margin := t * stddev / math.Sqrt(float64(n))
	return mean - margin, mean + margin
}

// Outliers counts samples whose modified z-score,
// 0.6745*(x-median)/mad, exceeds +-3.5. If mad is 0, both counts are 0
// (every sample is identical; no statistically meaningful notion of
// outlier applies).
func Outliers(xs []float64, median, mad float64) (low, high int) {
	if len(xs) == 0 || mad == 0 {
		return 0, 0
	}
	const threshold = 3.5
	for _, x := range xs {
		z := 0.6745 * (x - median) / mad
		switch {
		case z < -threshold:
			low++
		case z > threshold:
			high++
		}
	}
	return low, high
}

// Compute composes the functions above into a full Stats result over a
// local sorted copy of xs; the caller's slice is never reordered.
//
// Returns the zero Stats when xs is empty — spec.md §4.5 says this case
// (measurement time too short for even one batch) must be reported, not
// treated as fatal, so the zero value is a valid, inspectable result
// rather than an error.
func Compute(xs []float64) Stats {
	if len(xs) == 0 {
		return Stats{}
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	n := len(sorted)
	mean := Mean(xs)
	median := Percentile(sorted, 50)
	stddev := StdDev(xs, mean)

	madCopy := make([]float64, len(xs))
	copy(madCopy, xs)
	mad := MAD(madCopy, median)

	ciLower, ciUpper := ConfidenceInterval(mean, stddev, n)
	low, high := Outliers(xs, median, mad)

	return Stats{
		Mean:         mean,
		Median:       median,
		StdDev:       stddev,
		MAD:          mad,
		Min:          sorted[0],
		Max:          sorted[n-1],
		P75:          Percentile(sorted, 75),
		P90:          Percentile(sorted, 90),
		P95:          Percentile(sorted, 95),
		P99:          Percentile(sorted, 99),
		CILower:      ciLower,
		CIUpper:      ciUpper,
		OutliersLow:  low,
		OutliersHigh: high,
		SampleCount:  n,
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
