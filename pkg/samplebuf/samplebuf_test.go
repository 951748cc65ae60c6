package samplebuf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zapbench/zap/pkg/samplebuf"
)

func TestAppendUpToCapacity(t *testing.T) {
	buf := samplebuf.New(3)
	require.True(t, buf.Append(1))
	require.True(t, buf.Append(2))
	require.True(t, buf.Append(3))
	require.False(t, buf.Append(4))

	require.Equal(t, 3, buf.Len())
	require.True(t, buf.Full())
	require.Equal(t, []float64{1, 2, 3}, buf.Samples())
}

func TestZeroCapacity(t *testing.T) {
	buf := samplebuf.New(0)
	require.True(t, buf.Full())
	require.False(t, buf.Append(1))
	require.Equal(t, 0, buf.Len())
}

func TestReset(t *testing.T) {
	buf := samplebuf.New(2)
	buf.Append(1)
	buf.Append(2)
	buf.Reset()
	require.Equal(t, 0, buf.Len())
	require.False(t, buf.Full())
	require.True(t, buf.Append(9))
}

func TestNegativeCapacityClampsToZero(t *testing.T) {
	buf := samplebuf.New(-5)
	require.Equal(t, 0, buf.Cap())
}
