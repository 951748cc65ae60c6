package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zapbench/zap/internal/compare"
	"github.com/zapbench/zap/internal/engine"
	"github.com/zapbench/zap/internal/report"
	"github.com/zapbench/zap/pkg/stats"
)

func TestJSONReporterEncodesOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	runID := uuid.New()
	r := report.NewJSONReporter(&buf, runID)

	cmp := compare.Comparison{OldMean: 100, NewMean: 103, ChangePct: 3, Change: compare.NoChange, Significant: false}
	r.Report(engine.Result{Name: "a", Group: "g", Stats: stats.Stats{Mean: 103, SampleCount: 20}, Comparison: &cmp})
	r.Report(engine.Result{Name: "b", Group: "g", Stats: stats.Stats{Mean: 50, SampleCount: 20}})

	dec := json.NewDecoder(&buf)

	var first map[string]any
	require.NoError(t, dec.Decode(&first))
	require.Equal(t, runID.String(), first["run_id"])
	require.Equal(t, "a", first["name"])
	comparison, ok := first["comparison"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "no_change", comparison["change"])

	var second map[string]any
	require.NoError(t, dec.Decode(&second))
	require.Equal(t, "b", second["name"])
	require.Nil(t, second["comparison"])
}

func TestJSONReporterEncodesEvalsAndRate(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewJSONReporter(&buf, uuid.New())

	r.Report(engine.Result{
		Name: "memcpy",
		Stats: stats.Stats{
			Mean:                1_000_000,
			SampleCount:         10,
			IterationsPerSample: 4096,
			Throughput:          stats.Throughput{Kind: stats.ThroughputBytes, Value: 1000},
		},
	})

	var rec map[string]any
	require.NoError(t, json.NewDecoder(&buf).Decode(&rec))
	require.Equal(t, float64(4096), rec["iterations_per_sample"])
	require.Equal(t, "1.0 MB/s", rec["rate"])
}
