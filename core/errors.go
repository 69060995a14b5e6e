package core

import "errors"

// Sentinel errors for the pairwise problem store. Every public mutator and
// scoring method returns one of these (possibly wrapped with fmt.Errorf)
// so callers can discriminate failure kinds with errors.Is.
var (
	// ErrAlreadyFinalized is returned by any mutator called after Finalize.
	ErrAlreadyFinalized = errors.New("core: problem already finalized")

	// ErrNotFinalized is returned by scoring or finalized-state queries
	// issued before Finalize.
	ErrNotFinalized = errors.New("core: problem not finalized")

	// ErrInvalidKey is returned by SetTwoBody when a >= b.
	ErrInvalidKey = errors.New("core: two-body key requires a < b")

	// ErrShapeMismatch is returned when a candidate or starting vector's
	// length does not match the number of variable nodes, or a choice
	// index is out of range for its node.
	ErrShapeMismatch = errors.New("core: shape mismatch")

	// ErrInvalidConfig is returned when a problem invariant the finalize
	// algebra depends on is violated (e.g. a one-choice node whose
	// two-body block is wider than one row/column).
	ErrInvalidConfig = errors.New("core: invalid problem configuration")
)
