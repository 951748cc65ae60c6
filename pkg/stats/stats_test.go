package stats_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zapbench/zap/pkg/stats"
)

func TestMean(t *testing.T) {
	require.Equal(t, 0.0, stats.Mean(nil))
	require.Equal(t, 5.0, stats.Mean([]float64{5}))
	require.InDelta(t, 3.0, stats.Mean([]float64{1, 2, 3, 4, 5}), 1e-9)
}

func TestMedianOddEven(t *testing.T) {
	require.Equal(t, 3.0, stats.Median([]float64{1, 2, 3, 4, 5}))
	require.Equal(t, 2.5, stats.Median([]float64{1, 2, 3, 4}))
}

func TestPercentileBoundariesAndMedianAgreement(t *testing.T) {
	for n := 1; n <= 9; n++ {
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = float64(i + 1)
		}
		median := stats.Median(append([]float64(nil), xs...))
		require.InDelta(t, xs[0], stats.Percentile(xs, 0), 1e-9)
		require.InDelta(t, xs[n-1], stats.Percentile(xs, 100), 1e-9)
		require.InDelta(t, median, stats.Percentile(xs, 50), 1e-9, "n=%d", n)
	}
}

func TestStdDevBesselCorrected(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	mean := stats.Mean(xs)
	require.InDelta(t, 5.0, mean, 1e-9)
	require.InDelta(t, 2.138, stats.StdDev(xs, mean), 0.01)
}

func TestStdDevSingleSample(t *testing.T) {
	require.Equal(t, 0.0, stats.StdDev([]float64{42}, 42))
}

func TestPercentileMonotone(t *testing.T) {
	xs := []float64{9, 2, 7, 4, 1, 8, 3, 6, 5, 10, 11, 0.5}
	computed := stats.Compute(xs)
	require.LessOrEqual(t, computed.Min, computed.P75)
	require.LessOrEqual(t, computed.P75, computed.P90)
	require.LessOrEqual(t, computed.P90, computed.P95)
	require.LessOrEqual(t, computed.P95, computed.P99)
	require.LessOrEqual(t, computed.P99, computed.Max)
}

func TestConfidenceIntervalDegenerateBelowTwo(t *testing.T) {
	lower, upper := stats.ConfidenceInterval(100, 5, 1)
	require.Equal(t, 100.0, lower)
	require.Equal(t, 100.0, upper)

	lower, upper = stats.ConfidenceInterval(100, 5, 0)
	require.Equal(t, 100.0, lower)
	require.Equal(t, 100.0, upper)
}

func TestConfidenceIntervalUsesNormalApproximationAboveThreshold(t *testing.T) {
	lower, upper := stats.ConfidenceInterval(100, 10, 30)
	margin := 1.96 * 10 / sqrtHelper(30)
	require.InDelta(t, 100-margin, lower, 1e-9)
	require.InDelta(t, 100+margin, upper, 1e-9)
}

func sqrtHelper(n float64) float64 {
	x := n
	for i := 0; i < 50; i++ {
		x = 0.5 * (x + n/x)
	}
	return x
}

func TestOutliersZeroMAD(t *testing.T) {
	low, high := stats.Outliers([]float64{1, 1, 1}, 1, 0)
	require.Equal(t, 0, low)
	require.Equal(t, 0, high)
}

func TestOutliersDetectsHighOutlier(t *testing.T) {
	xs := []float64{9, 10, 10, 11, 10, 9, 11, 10, 1000}
	median := stats.Median(append([]float64(nil), xs...))
	mad := stats.MAD(append([]float64(nil), xs...), median)
	low, high := stats.Outliers(xs, median, mad)
	require.Equal(t, 0, low)
	require.Equal(t, 1, high)
}

func TestComputeEmpty(t *testing.T) {
	s := stats.Compute(nil)
	require.Equal(t, stats.Stats{}, s)
}

func TestComputeDoesNotReorderInput(t *testing.T) {
	xs := []float64{5, 3, 1, 4, 2}
	original := append([]float64(nil), xs...)
	stats.Compute(xs)
	require.Equal(t, original, xs)
}
