// Package costfunc implements the non-pairwise cost-function plug-ins that
// attach to a core.Problem: SumOfChoicePenaltiesSquared,
// FunctionOfIntegerPenaltySum (with constant/linear/quadratic tails),
// SquareOfSumOfUnsatisfiedFeatures (built on ChoiceFeature), and
// GraphIslandCount (built on InteractionGraph). Each satisfies
// core.CostFunction: Finalize captures absolute-node state into a
// variable-index layout, Absolute/Delta return weight*raw, and any
// internal working buffer is exposed through NewScratch so Monte-Carlo
// trajectories can reuse it without reallocating.
package costfunc
