package report

import (
	"fmt"
	"io"

	"github.com/zapbench/zap/internal/compare"
	"github.com/zapbench/zap/internal/engine"
)

// columnSize mirrors the teacher's Options.columnSize default (10): the
// minimum width for each numeric column so headers and rows line up.
const columnSize = 10

// nameColumn is a fixed width for the benchmark-name column. Unlike the
// teacher's Options.Done, which can afford a single upfront pass over
// every registered name to compute the widest one, this reporter is fed
// one Result at a time as groups run (spec.md §4.6 defers group headers
// until the first match, so the full name set isn't known in advance);
// a fixed width is the simplest faithful substitute.
const nameColumn = 28

// TextReporter renders results as a tab-aligned table, in the shape of
// the teacher's Options.Done, extended with a comparison column and a
// warning suffix.
type TextReporter struct {
	w       io.Writer
	palette Palette
}

// NewTextReporter returns a TextReporter writing to w, colored per mode.
func NewTextReporter(w io.Writer, mode ColorMode) *TextReporter {
	return &TextReporter{w: w, palette: NewPalette(mode)}
}

// GroupHeader implements engine.Reporter.
func (t *TextReporter) GroupHeader(name string) {
	fmt.Fprintf(t.w, "\n%s\n", t.palette.Header("%s", name))
	fmt.Fprintf(t.w, "%-*s\t%*s\t%*s\t%*s\t%*s\t%*s\t%*s\n",
		nameColumn, "Benchmark",
		columnSize, "Mean",
		columnSize, "Median",
		columnSize, "StdDev",
		columnSize, "P99",
		columnSize, "Samples",
		columnSize, "Evals",
	)
}

// Report implements engine.Reporter.
func (t *TextReporter) Report(r engine.Result) {
	fmt.Fprintf(t.w, "%-*s\t%*s\t%*s\t%*s\t%*s\t%*d\t%*d",
		nameColumn, r.Name,
		columnSize, FormatDuration(r.Stats.Mean),
		columnSize, FormatDuration(r.Stats.Median),
		columnSize, FormatDuration(r.Stats.StdDev),
		columnSize, FormatDuration(r.Stats.P99),
		columnSize, r.Stats.SampleCount,
		columnSize, r.Stats.IterationsPerSample,
	)

	if rate := FormatThroughput(r.Stats.Mean, r.Stats.Throughput); rate != "" {
		fmt.Fprintf(t.w, "\t%s", rate)
	}
	if r.Comparison != nil {
		fmt.Fprint(t.w, t.comparisonSuffix(*r.Comparison))
	}
	if r.Warning != "" {
		fmt.Fprintf(t.w, "  %s", t.palette.Warning("warning: %s", r.Warning))
	}
	fmt.Fprintln(t.w)
}

func (t *TextReporter) comparisonSuffix(c compare.Comparison) string {
	switch c.Change {
	case compare.Regressed:
		return fmt.Sprintf("  %s", t.palette.Regressed("%+.1f%% vs baseline", c.ChangePct))
	case compare.Improved:
		return fmt.Sprintf("  %s", t.palette.Improved("%+.1f%% vs baseline", c.ChangePct))
	default:
		return fmt.Sprintf("  %+.1f%% vs baseline (no change)", c.ChangePct)
	}
}
