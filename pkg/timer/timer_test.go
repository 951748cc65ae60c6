package timer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zapbench/zap/pkg/timer"
)

func TestMonotonicNonDecreasing(t *testing.T) {
	clock := timer.New()
	prev := clock.Now()
	for i := 0; i < 1000; i++ {
		now := clock.Now()
		require.GreaterOrEqual(t, now, prev)
		prev = now
	}
}

func TestMockAdvancesByStep(t *testing.T) {
	clock := timer.NewMock(100)
	require.Equal(t, int64(100), clock.Now())
	require.Equal(t, int64(200), clock.Now())
	require.Equal(t, int64(300), clock.Now())
}

func TestMockSet(t *testing.T) {
	clock := timer.NewMock(5)
	clock.Set(1000)
	require.Equal(t, int64(1005), clock.Now())
}
