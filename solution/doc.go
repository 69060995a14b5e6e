// Package solution implements the bounded, deduplicated best-K store that
// greedy and montecarlo merge their candidate vectors into: Solution is a
// single scored candidate, SolutionSet keeps the K lowest-scoring distinct
// candidates observed across a run, counting repeat sightings via
// times_seen. A SolutionSet's merge operations are safe for concurrent use
// by multiple trajectory goroutines.
package solution
