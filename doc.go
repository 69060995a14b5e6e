// Package cfnet implements a pairwise-decomposable cost-function-network
// optimization library: a problem store over discrete per-node choices,
// a handful of non-pairwise cost-function plug-ins, greedy and
// Monte-Carlo/simulated-annealing solvers, and the file interpreters that
// read and write problems and solutions.
//
// Everything lives under subpackages; this root package holds no types of
// its own:
//
//	core/        — Problem: one-body/two-body penalty store, absolute()/delta() scoring
//	costfunc/    — non-pairwise cost-function plug-ins attached to a Problem
//	solution/    — bounded, deduplicated best-K solution store
//	annealing/   — temperature schedules for the Monte-Carlo solver
//	rng/         — thread-safe, seed-derived random facility
//	workerpool/  — bounded parallel job runner
//	tracer/      — tagged status-line logging
//	registry/    — problem/solver-class name resolution
//	greedy/      — single-site steepest-descent solver
//	montecarlo/  — Metropolis-Hastings simulated-annealing solver
//	fileio/      — ASCII and packed-binary problem-file interpreters, solution writer
//
// A Problem is built, finalized once, and then shared by reference across
// solver goroutines; see core's package doc for the exact lifecycle.
package cfnet
