// Package montecarlo implements the Metropolis-Hastings simulated
// annealing optimizer: per-problem, independent trajectories run in
// parallel (one per attempt), each making single- or multi-mutation moves
// scored incrementally via core.Problem.Delta, accepted or rejected by a
// pluggable annealing schedule, with an optional greedy-refinement pass
// folded back into the per-problem solution set.
package montecarlo
