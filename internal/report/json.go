package report

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/zapbench/zap/internal/compare"
	"github.com/zapbench/zap/internal/engine"
)

// jsonResult is the wire shape of one JSON-per-line record (spec.md §6,
// --json mode). RunID is not part of spec.md's data model; it is the
// supplemented correlation identifier (see SPEC_FULL.md) so multiple
// zapbench invocations piped into one aggregator can be told apart.
type jsonResult struct {
	RunID       string   `json:"run_id"`
	Group       string   `json:"group"`
	Name        string   `json:"name"`
	Mean        float64  `json:"mean_ns"`
	Median      float64  `json:"median_ns"`
	StdDev      float64  `json:"stddev_ns"`
	MAD         float64  `json:"mad_ns"`
	P75         float64  `json:"p75_ns"`
	P90         float64  `json:"p90_ns"`
	P95         float64  `json:"p95_ns"`
	P99         float64  `json:"p99_ns"`
	SampleCount int      `json:"sample_count"`
	Evals       int64    `json:"iterations_per_sample"`
	Rate        string   `json:"rate,omitempty"`
	Warning     string   `json:"warning,omitempty"`
	Comparison  *jsonCmp `json:"comparison,omitempty"`
}

type jsonCmp struct {
	OldMean     float64 `json:"old_mean_ns"`
	NewMean     float64 `json:"new_mean_ns"`
	ChangePct   float64 `json:"change_pct"`
	Change      string  `json:"change"`
	Significant bool    `json:"significant"`
}

// JSONReporter renders results as one JSON object per line (spec.md §6's
// --json mode), tagged with a RunID so multiple runs piped into one
// aggregator are distinguishable.
type JSONReporter struct {
	w     io.Writer
	runID uuid.UUID
	enc   *json.Encoder
}

// NewJSONReporter returns a JSONReporter writing to w, stamping every
// line with runID.
func NewJSONReporter(w io.Writer, runID uuid.UUID) *JSONReporter {
	return &JSONReporter{w: w, runID: runID, enc: json.NewEncoder(w)}
}

// GroupHeader implements engine.Reporter. JSON mode has no header line;
// group is carried per-record instead.
func (j *JSONReporter) GroupHeader(string) {}

// Report implements engine.Reporter.
func (j *JSONReporter) Report(r engine.Result) {
	rec := jsonResult{
		RunID:       j.runID.String(),
		Group:       r.Group,
		Name:        r.Name,
		Mean:        r.Stats.Mean,
		Median:      r.Stats.Median,
		StdDev:      r.Stats.StdDev,
		MAD:         r.Stats.MAD,
		P75:         r.Stats.P75,
		P90:         r.Stats.P90,
		P95:         r.Stats.P95,
		P99:         r.Stats.P99,
		SampleCount: r.Stats.SampleCount,
		Evals:       r.Stats.IterationsPerSample,
		Rate:        FormatThroughput(r.Stats.Mean, r.Stats.Throughput),
		Warning:     r.Warning,
	}
	if r.Comparison != nil {
		rec.Comparison = &jsonCmp{
			OldMean:     r.Comparison.OldMean,
			NewMean:     r.Comparison.NewMean,
			ChangePct:   r.Comparison.ChangePct,
			Change:      changeString(r.Comparison.Change),
			Significant: r.Comparison.Significant,
		}
	}
	// Encoder errors here would mean the output stream itself is broken
	// (e.g. a closed pipe); there is nothing left to report to, so the
	// error is swallowed rather than surfaced through an interface with
	// no error return.
	_ = j.enc.Encode(rec)
}

func changeString(c compare.Classification) string {
	switch c {
	case compare.Improved:
		return "improved"
	case compare.Regressed:
		return "regressed"
	default:
		return "no_change"
	}
}
