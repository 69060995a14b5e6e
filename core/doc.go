// Package core implements the pairwise-decomposable cost-function-network
// problem store: nodes with per-node choice counts, one-body and two-body
// penalty tables, finalize-time folding of fixed (one-choice) nodes into
// the variable-node one-body rows, and the absolute()/delta() scoring
// contract shared by every solver in this module.
//
// Lifecycle: construct a Problem, populate it with SetOneBody/SetTwoBody
// and AttachCostFunction calls (and optionally AddStartingSolution), then
// call Finalize. Before Finalize the problem is a single-writer builder;
// after Finalize it is immutable and safe to share by reference across
// goroutines — every mutator returns ErrAlreadyFinalized.
package core
