package montecarlo_test

import (
	"testing"

	"github.com/katalvlaran/cfnet/annealing"
	"github.com/katalvlaran/cfnet/core"
	"github.com/katalvlaran/cfnet/montecarlo"
	"github.com/stretchr/testify/require"
)

// buildProblem is the same 2-variable, 2-choice problem used by the
// greedy package's tests: its unique minimum is choices = [1, 0], score 1.
// starts, if given, are registered as the problem's own candidate starting
// solutions before Finalize.
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

func TestRunFindsTheOptimumAtZeroTemperature(t *testing.T) {
	p := buildProblem(t)
	opts := montecarlo.DefaultOptions()
	opts.AnnealingSchedule = annealing.NewConstant(0)
	opts.UseMultiMutation = false
	opts.StepsPerAttempt = 200
	opts.AttemptsPerProblem = 3
	opts.Seed = 123

	opt, err := montecarlo.New(opts)
	require.NoError(t, err)

	sets, err := opt.Run([]*core.Problem{p})
	require.NoError(t, err)
	require.Len(t, sets, 1)

	sols := sets[0].Solutions()
	require.NotEmpty(t, sols)
	require.InDelta(t, 1, sols[0].Score, 1e-9)
	require.Equal(t, []int{1, 0}, sols[0].Choices)
}

func TestRunPrefersProblemStartingSolution(t *testing.T) {
	p := buildProblem(t, []int{0, 0})
	opts := montecarlo.DefaultOptions()
	opts.AnnealingSchedule = annealing.NewConstant(0)
	opts.StepsPerAttempt = 0
	opts.AttemptsPerProblem = 1
	opts.Seed = 42

	opt, err := montecarlo.New(opts)
	require.NoError(t, err)

	sets, err := opt.Run([]*core.Problem{p})
	require.NoError(t, err)
	sols := sets[0].Solutions()
	require.Len(t, sols, 1)
	require.Equal(t, []int{0, 0}, sols[0].Choices)
	require.InDelta(t, 11, sols[0].Score, 1e-9)
}

func TestRunRejectsBadLengthProblemStartingSolution(t *testing.T) {
	p := buildProblem(t, []int{0, 0, 0})
	opts := montecarlo.DefaultOptions()
	opts.AnnealingSchedule = annealing.NewConstant(0)
	opts.StepsPerAttempt = 10
	opts.AttemptsPerProblem = 1
	opts.Seed = 7

	opt, err := montecarlo.New(opts)
	require.NoError(t, err)

	_, err = opt.Run([]*core.Problem{p})
	require.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestNewRejectsMissingAnnealingSchedule(t *testing.T) {
	opts := montecarlo.DefaultOptions()
	_, err := montecarlo.New(opts)
	require.ErrorIs(t, err, montecarlo.ErrInvalidConfig)
}

func TestNewRejectsInvalidPOneMutation(t *testing.T) {
	opts := montecarlo.DefaultOptions()
	opts.AnnealingSchedule = annealing.NewConstant(1)
	opts.POneMutation = 0
	_, err := montecarlo.New(opts)
	require.ErrorIs(t, err, montecarlo.ErrInvalidConfig)
}
