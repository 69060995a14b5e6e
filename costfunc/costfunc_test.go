package costfunc_test

import (
	"testing"

	"github.com/katalvlaran/cfnet/core"
	"github.com/katalvlaran/cfnet/costfunc"
	"github.com/stretchr/testify/require"
)

func TestSumOfChoicePenaltiesSquared(t *testing.T) {
	cf, err := costfunc.NewSumOfChoicePenaltiesSquared(2, 1)
	require.NoError(t, err)
	require.NoError(t, cf.AddPenalty(0, 0, 3))
	require.NoError(t, cf.AddPenalty(0, 1, -1))
	require.NoError(t, cf.AddPenalty(1, 0, 0))
	require.NoError(t, cf.AddPenalty(1, 1, 5))

	p := core.NewProblem()
	require.NoError(t, p.SetOneBody(0, 0, 0))
	require.NoError(t, p.SetOneBody(0, 1, 0))
	require.NoError(t, p.SetOneBody(1, 0, 0))
	require.NoError(t, p.SetOneBody(1, 1, 0))
	require.NoError(t, p.AttachCostFunction(cf))
	require.NoError(t, p.Finalize())

	// choices [0,1]: sum = 3 + 5 + constantOffset(1) = 9; weight*9^2 = 162.
	score, err := p.Absolute([]int{0, 1})
	require.NoError(t, err)
	require.InDelta(t, 162, score, 1e-9)

	delta, err := p.Delta([]int{0, 1}, []int{1, 1}, p.NewScratchSet())
	require.NoError(t, err)
	newScore, err := p.Absolute([]int{1, 1})
	require.NoError(t, err)
	require.InDelta(t, newScore-score, delta, 1e-9)
}

func TestFunctionOfIntegerPenaltySumTabulatedAndTails(t *testing.T) {
	// f tabulated on [0,3): f(0)=10, f(1)=20, f(2)=30, linear both tails.
	cf, err := costfunc.NewFunctionOfIntegerPenaltySum(1, 0, []float64{10, 20, 30}, costfunc.TailLinear, costfunc.TailLinear)
	require.NoError(t, err)
	require.NoError(t, cf.AddPenalty(0, 0, 0))
	require.NoError(t, cf.AddPenalty(0, 1, 5))

	require.NoError(t, cf.Finalize([]int{0}))

	// sum=0 -> f(0)=10.
	score, err := cf.Absolute([]int{0})
	require.NoError(t, err)
	require.InDelta(t, 10, score, 1e-9)

	// sum=5 is past the tabulated high end (0,1,2); linear tail through
	// points 2 and 1 extrapolates to f(5) = 30 + 10*3 = 60.
	score, err = cf.Absolute([]int{1})
	require.NoError(t, err)
	require.InDelta(t, 60, score, 1e-9)
}

func TestSquareOfSumOfUnsatisfiedFeatures(t *testing.T) {
	cf, err := costfunc.NewSquareOfSumOfUnsatisfiedFeatures(1)
	require.NoError(t, err)
	require.NoError(t, cf.AddFeature(costfunc.ChoiceFeature{
		Node: 0, Choice: 0, Min: 1, Max: 1,
		Contributors: []costfunc.FeatureContributor{{OtherNode: 1, OtherChoice: 0, Count: 1}},
	}))
	require.NoError(t, cf.Finalize([]int{0, 1}))

	scratch := cf.NewScratch()

	// sol [0,0]: feature active (node0==choice0), count=1, satisfied.
	score, err := cf.Absolute([]int{0, 0})
	require.NoError(t, err)
	require.InDelta(t, 0, score, 1e-9)

	// sol [0,1]: feature active, count=0 (contributor not selected), unsatisfied.
	score, err = cf.Absolute([]int{0, 1})
	require.NoError(t, err)
	require.InDelta(t, 1, score, 1e-9)

	delta, err := cf.Delta([]int{0, 0}, []int{0, 1}, scratch)
	require.NoError(t, err)
	require.InDelta(t, 1, delta, 1e-9)
}

func TestGraphIslandCount(t *testing.T) {
	graph := costfunc.NewInteractionGraph(true)
	// Declare interaction only between matching choices at each node pair,
	// so the flood fill reduces to the "same chosen value" case.
	graph.AddEdge(0, 0, 1, 0)
	graph.AddEdge(0, 1, 1, 1)
	graph.AddEdge(1, 0, 2, 0)
	graph.AddEdge(1, 1, 2, 1)

	cf, err := costfunc.NewGraphIslandCount(1, graph, 2)
	require.NoError(t, err)
	require.NoError(t, cf.Finalize([]int{0, 1, 2}))

	scratch := cf.NewScratch()

	// All three nodes share choice 0: one island of size 3, contribution
	// (3-2+1)=2, Absolute = -1*2 = -2.
	score, err := cf.Absolute([]int{0, 0, 0})
	require.NoError(t, err)
	require.InDelta(t, -2, score, 1e-9)

	// Node 1 diverges: three singleton islands, each below minIslandSize=2,
	// no contribution.
	score, err = cf.Absolute([]int{0, 1, 0})
	require.NoError(t, err)
	require.InDelta(t, 0, score, 1e-9)

	delta, err := cf.Delta([]int{0, 0, 0}, []int{0, 1, 0}, scratch)
	require.NoError(t, err)
	require.InDelta(t, 2, delta, 1e-9)
}

func TestGraphIslandCountChoiceSpecificInteraction(t *testing.T) {
	// Choice 0 at node 0 interacts with choice 1 at node 1, but choice 0
	// with choice 0 does not: value-equality alone could never express
	// this, since it would either always or never connect the pair.
	graph := costfunc.NewInteractionGraph(true)
	graph.AddEdge(0, 0, 1, 1)

	cf, err := costfunc.NewGraphIslandCount(1, graph, 2)
	require.NoError(t, err)
	require.NoError(t, cf.Finalize([]int{0, 1}))

	// Same choice (0,0): the declared pair is (choice0@0, choice1@1), so
	// this does not connect them; two singleton islands, no contribution.
	score, err := cf.Absolute([]int{0, 0})
	require.NoError(t, err)
	require.InDelta(t, 0, score, 1e-9)

	// Different choices (0 at node0, 1 at node1): the declared pair
	// matches, connecting them into one island of size 2, contribution
	// (2-2+1)=1, Absolute = -1.
	score, err = cf.Absolute([]int{0, 1})
	require.NoError(t, err)
	require.InDelta(t, -1, score, 1e-9)
}
