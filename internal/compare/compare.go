// Package compare implements the baseline comparator (spec.md §4.7):
// classifies a current run's statistics against a saved baseline entry
// as NoChange, Improved, or Regressed, using a confidence-interval
// overlap test for significance.
package compare

import (
	"github.com/zapbench/zap/pkg/baseline"
	"github.com/zapbench/zap/pkg/stats"
)

// Classification is the comparator's verdict.
type Classification int

const (
	NoChange Classification = iota
	Improved
	Regressed
)

func (c Classification) String() string {
	switch c {
	case Improved:
		return "improved"
	case Regressed:
		return "regressed"
	default:
		return "no change"
	}
}

// Comparison is the result of diffing current stats against a baseline
// entry.
type Comparison struct {
	OldMean     float64
	NewMean     float64
	ChangePct   float64
	Change      Classification
	Significant bool
}

// significantChangeThreshold is the minimum |change_pct| (in percent)
// for a statistically significant shift to be classified as Improved or
// Regressed rather than NoChange.
const significantChangeThreshold = 1.0

// Compare diffs current against a saved baseline entry.
//
//   - change_pct = (new_mean - old_mean) / old_mean * 100, or 0 if
//     old_mean <= 0.
//   - significant iff the confidence intervals do not overlap:
//     current.CIUpper < baseline.CILower || current.CILower > baseline.CIUpper.
//   - classification is NoChange unless significant and |change_pct| >= 1%,
//     in which case it is Improved (change_pct < 0) or Regressed
//     (change_pct > 0).
func Compare(base baseline.Entry, current stats.Stats) Comparison {
	cmp := Comparison{
		OldMean: base.Mean,
		NewMean: current.Mean,
	}

	if base.Mean > 0 {
		cmp.ChangePct = (current.Mean - base.Mean) / base.Mean * 100
	}

	ciOverlap := !(current.CIUpper < base.CILower || current.CILower > base.CIUpper)
	cmp.Significant = !ciOverlap

	switch {
	case !cmp.Significant || absFloat(cmp.ChangePct) < significantChangeThreshold:
		cmp.Change = NoChange
	case cmp.ChangePct < 0:
		cmp.Change = Improved
	default:
		cmp.Change = Regressed
	}

	return cmp
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
