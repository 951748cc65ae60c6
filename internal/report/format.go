// Package report implements the reporter hook spec.md §4.5/§4.6 forwards
// results to: a text-table renderer in the teacher's tab-aligned style, a
// JSON-per-line renderer, and the --color policy (spec.md §6).
package report

import (
	"fmt"
	"time"

	"github.com/zapbench/zap/pkg/stats"
)

// FormatDuration renders nanoseconds as a human-scaled duration string,
// generalized from the teacher's prettyprint.go (same threshold ladder:
// ns below 1µs, µs below 1ms, ms below 1s, s below 5m, then m/h/multi-day)
// to accept the float64 nanosecond means this package works with instead
// of only time.Duration values.
func FormatDuration(ns float64) string {
	d := time.Duration(ns)
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", int64(d))
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	case d < 5*time.Minute:
		return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
	case d < time.Hour:
		minutes := d / time.Minute
		seconds := float64(d-minutes*time.Minute) / float64(time.Second)
		return fmt.Sprintf("%dm%04.1fs", minutes, seconds)
	case d < 24*time.Hour:
		hours := d / time.Hour
		remainder := d - hours*time.Hour
		minutes := remainder / time.Minute
		remainder -= minutes * time.Minute
		seconds := remainder / time.Second
		return fmt.Sprintf("%dh%02dm%02ds", hours, minutes, seconds)
	default:
		const day = 24 * time.Hour
		days := d / day
		remainder := d - days*day
		hours := remainder / time.Hour
		remainder -= hours * time.Hour
		minutes := remainder / time.Minute
		remainder -= minutes * time.Minute
		seconds := remainder / time.Second
		return fmt.Sprintf("%dd %dh%02dm%02ds", days, hours, minutes, seconds)
	}
}

// rateUnit returns a (divisor, suffix) ladder entry for a magnitude.
func rateUnit(v float64) (float64, string) {
	switch {
	case v >= 1e9:
		return 1e9, "G"
	case v >= 1e6:
		return 1e6, "M"
	case v >= 1e3:
		return 1e3, "k"
	default:
		return 1, ""
	}
}

// FormatRate renders a throughput annotation (spec.md §3's BenchState
// throughput tag, never rendered by the core itself) as a human string,
// e.g. "123.4 MB/s" or, with unit " elem", "4.2 M elem/s". perIterNS is the benchmark's mean
// nanoseconds-per-iteration; value is the configured bytes or elements
// processed per iteration.
func FormatRate(perIterNS, value float64, unit string) string {
	if perIterNS <= 0 || value <= 0 {
		return "n/a"
	}
	perSecond := value / (perIterNS * 1e-9)
	divisor, suffix := rateUnit(perSecond)
	return fmt.Sprintf("%.1f %s%s/s", perSecond/divisor, suffix, unit)
}

// FormatThroughput renders a Stats.Throughput annotation (spec.md §3)
// against the benchmark's mean nanoseconds-per-iteration, or "" when no
// annotation was attached (B.SetBytes/SetElements was never called).
func FormatThroughput(perIterNS float64, t stats.Throughput) string {
	switch t.Kind {
	case stats.ThroughputBytes:
		return FormatRate(perIterNS, t.Value, "B")
	case stats.ThroughputElements:
		return FormatRate(perIterNS, t.Value, " elem")
	default:
		return ""
	}
}
