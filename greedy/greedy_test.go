package greedy_test

import (
	"testing"

	"github.com/katalvlaran/cfnet/core"
	"github.com/katalvlaran/cfnet/greedy"
	"github.com/katalvlaran/cfnet/solution"
	"github.com/stretchr/testify/require"
)

// buildProblem constructs a 2-variable, 2-choice problem whose unique
// minimum is choices = [1, 0]. starts, if given, are registered as the
// problem's own candidate starting solutions before Finalize.
func buildProblem(t *testing.T, starts ...[]int) *core.Problem {
	t.Helper()
	p := core.NewProblem()
	require.NoError(t, p.SetOneBody(0, 0, 10))
	require.NoError(t, p.SetOneBody(0, 1, 0))
	require.NoError(t, p.SetOneBody(1, 0, 0))
	require.NoError(t, p.SetOneBody(1, 1, 10))
	require.NoError(t, p.SetTwoBody(0, 1, 0, 0, 1))
	require.NoError(t, p.SetTwoBody(0, 1, 0, 1, 1))
	require.NoError(t, p.SetTwoBody(0, 1, 1, 0, 1))
	require.NoError(t, p.SetTwoBody(0, 1, 1, 1, 1))
	for _, s := range starts {
		require.NoError(t, p.AddStartingSolution(s))
	}
	require.NoError(t, p.Finalize())
	return p
}

func TestDescendFindsTheOptimum(t *testing.T) {
	p := buildProblem(t)
	opt, err := greedy.New(greedy.Options{Threads: 2})
	require.NoError(t, err)

	results, err := opt.Run(p, [][]int{{0, 0}, {1, 1}})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		require.Equal(t, []int{1, 0}, r.Choices)
		require.InDelta(t, 1, r.Score, 1e-9)
	}
}

func TestRunRejectsShapeMismatch(t *testing.T) {
	p := buildProblem(t)
	opt, err := greedy.New(greedy.Options{Threads: 0})
	require.NoError(t, err)

	_, err = opt.Run(p, [][]int{{0, 0, 0}})
	require.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestRunFallsBackToProblemStartingSolutions(t *testing.T) {
	p := buildProblem(t, []int{0, 1})
	opt, err := greedy.New(greedy.Options{Threads: 1})
	require.NoError(t, err)

	results, err := opt.Run(p, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, []int{1, 0}, results[0].Choices)
}

func TestRunRejectsBadLengthProblemStartingSolution(t *testing.T) {
	p := buildProblem(t, []int{0, 0, 0})
	opt, err := greedy.New(greedy.Options{Threads: 1})
	require.NoError(t, err)

	_, err = opt.Run(p, nil)
	require.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestMergeResultsDedupsAndKeepsBest(t *testing.T) {
	set := solution.NewSolutionSet()
	results := []greedy.Result{
		{Choices: []int{1, 0}, Score: 1},
		{Choices: []int{1, 0}, Score: 1},
	}
	require.NoError(t, greedy.MergeResults(set, results, 1, 5))
	require.Equal(t, 1, set.Len())
}
