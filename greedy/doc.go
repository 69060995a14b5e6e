// Package greedy implements the Jacobi-style single-best-site-per-sweep
// descent optimizer: from each starting vector, repeatedly find the one
// (variable node, choice) change that most improves the score and commit
// it, until no change improves, running independent starting vectors in
// parallel via workerpool.Pool. It is exposed both as a standalone solver
// and as the refinement pass montecarlo calls on its own stored
// solutions.
package greedy
