package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zapbench/zap/internal/loopctl"
	"github.com/zapbench/zap/pkg/samplebuf"
	"github.com/zapbench/zap/pkg/timer"
)

func TestBNextDrivesControllerThroughWarmupAndMeasurement(t *testing.T) {
	clock := timer.NewMock(100)
	buf := samplebuf.New(5)
	ctl := loopctl.New(clock, loopctl.Config{WarmupNS: 500, MeasurementNS: 100_000, SampleCount: 5}, buf)
	b := newB(clock, ctl)

	batches := 0
	for b.Next() {
		require.Greater(t, b.N(), 0)
		batches++
		if batches > 10_000 {
			t.Fatal("runaway loop")
		}
	}
	require.Equal(t, loopctl.Done, b.Phase())
	require.Equal(t, 5, buf.Len())
}

func TestBNeverRecordsSamplesDuringWarmup(t *testing.T) {
	clock := timer.NewMock(1_000)
	buf := samplebuf.New(20)
	ctl := loopctl.New(clock, loopctl.Config{WarmupNS: 100_000, MeasurementNS: 10_000_000, SampleCount: 20}, buf)
	b := newB(clock, ctl)

	for b.Next() {
		if b.Phase() == loopctl.Warmup {
			require.Equal(t, 0, buf.Len())
		}
	}
}
