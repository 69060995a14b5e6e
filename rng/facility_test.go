package rng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniformIntStaysInRange(t *testing.T) {
	f := New(42)
	for i := 0; i < 200; i++ {
		v, err := f.UniformInt(7)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
	}
}

func TestChoiceExcludingNeverReturnsCurrent(t *testing.T) {
	f := New(7)
	for i := 0; i < 200; i++ {
		v, err := f.ChoiceExcluding(2, 5)
		require.NoError(t, err)
		require.NotEqual(t, 2, v)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 5)
	}
}

func TestMetropolisAlwaysAcceptsImprovingMoves(t *testing.T) {
	f := New(1)
	require.True(t, f.Metropolis(-5, 10))
	require.True(t, f.Metropolis(0, 10))
}

func TestMetropolisRejectsWorseningMovesAtZeroTemperature(t *testing.T) {
	f := New(1)
	require.False(t, f.Metropolis(1, 0))
}

func TestSampleWithoutReplacementReturnsDistinctIndices(t *testing.T) {
	f := New(99)
	sample, err := f.SampleWithoutReplacement(10, 4)
	require.NoError(t, err)
	require.Len(t, sample, 4)
	seen := make(map[int]bool)
	for _, v := range sample {
		require.False(t, seen[v])
		seen[v] = true
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
	}
}

func TestSampleWithoutReplacementCapsAtN(t *testing.T) {
	f := New(3)
	sample, err := f.SampleWithoutReplacement(3, 10)
	require.NoError(t, err)
	require.Len(t, sample, 3)
}

func TestDeriveProducesIndependentStreams(t *testing.T) {
	root := New(5)
	a := root.Derive(1)
	b := root.Derive(2)
	va, _ := a.UniformInt(1 << 30)
	vb, _ := b.UniformInt(1 << 30)
	require.NotEqual(t, va, vb)
}

func TestMultiMutationCountRespectsCap(t *testing.T) {
	f := New(11)
	for i := 0; i < 100; i++ {
		m := f.MultiMutationCount(5, 3)
		require.LessOrEqual(t, m, 3)
		require.GreaterOrEqual(t, m, 1)
	}
}
