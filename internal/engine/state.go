package engine

import (
	"fmt"

	"github.com/zapbench/zap/internal/compare"
	"github.com/zapbench/zap/pkg/stats"
)

// BenchID composes spec.md §3's canonical name for a parameterized
// benchmark: "<label>/<param>", grounded on original_source/zap.h's
// zap_benchmark_id helper and example_advanced.c's "fib/20"-style names.
func BenchID(label string, param any) string {
	return fmt.Sprintf("%s/%v", label, param)
}

// Result is one benchmark's outcome: its computed Stats, an optional
// comparison against a baseline entry, and an optional warning (spec.md
// §7's InsufficientSamples, stringified — never a fatal condition).
type Result struct {
	Name       string
	Group      string
	Stats      stats.Stats
	Comparison *compare.Comparison
	Warning    string
}

// Summary collects every Result from one Engine.Run call plus whether
// any comparison crossed the configured fail threshold.
type Summary struct {
	Results       []Result
	HasRegression bool
}
