package solution

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeOneAppendsUntilCapacity(t *testing.T) {
	s := NewSolutionSet()
	require.NoError(t, s.MergeOne([]int{0, 0}, 10, 1, 2))
	require.NoError(t, s.MergeOne([]int{0, 1}, 5, 1, 2))
	require.Equal(t, 2, s.Len())
}

func TestMergeOneMatchReplacesTimesSeen(t *testing.T) {
	s := NewSolutionSet()
	require.NoError(t, s.MergeOne([]int{1, 2}, 3, 1, 5))
	require.NoError(t, s.MergeOne([]int{1, 2}, 3, 7, 5))
	sols := s.Solutions()
	require.Len(t, sols, 1)
	require.Equal(t, 7, sols[0].TimesSeen)
}

func TestMergeOneEvictsWorseOnFullCapacity(t *testing.T) {
	s := NewSolutionSet()
	require.NoError(t, s.MergeOne([]int{0}, 20, 1, 1))
	require.NoError(t, s.MergeOne([]int{1}, 10, 1, 1))
	sols := s.Solutions()
	require.Len(t, sols, 1)
	require.Equal(t, []int{1}, sols[0].Choices)
}

func TestMergeOneRejectsWorseCandidateAtCapacity(t *testing.T) {
	s := NewSolutionSet()
	require.NoError(t, s.MergeOne([]int{0}, 10, 1, 1))
	require.NoError(t, s.MergeOne([]int{1}, 20, 1, 1))
	sols := s.Solutions()
	require.Equal(t, []int{0}, sols[0].Choices)
	require.InDelta(t, 10, sols[0].Score, 1e-9)
}

func TestSolutionsReturnedInAscendingScoreOrder(t *testing.T) {
	s := NewSolutionSet()
	require.NoError(t, s.MergeOne([]int{2}, 30, 1, 3))
	require.NoError(t, s.MergeOne([]int{0}, 10, 1, 3))
	require.NoError(t, s.MergeOne([]int{1}, 20, 1, 3))
	sols := s.Solutions()
	require.Equal(t, []float64{10, 20, 30}, []float64{sols[0].Score, sols[1].Score, sols[2].Score})
}

func TestMergeOneRejectsEmptyChoices(t *testing.T) {
	s := NewSolutionSet()
	require.ErrorIs(t, s.MergeOne(nil, 1, 1, 1), ErrEmptyChoices)
}

func TestMergeOneRejectsNonPositiveMaxStore(t *testing.T) {
	s := NewSolutionSet()
	require.ErrorIs(t, s.MergeOne([]int{0}, 1, 1, 0), ErrInvalidMaxStore)
}
