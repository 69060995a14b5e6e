package costfunc

import "errors"

var (
	// ErrInvalidConfig is returned when a cost function is misconfigured:
	// a negative weight, a tabulated function with too few points for the
	// requested tail mode, or an unknown tail mode.
	ErrInvalidConfig = errors.New("costfunc: invalid configuration")

	// ErrNotFinalized is returned by Absolute/Delta before Finalize.
	ErrNotFinalized = errors.New("costfunc: not finalized")

	// ErrShapeMismatch is returned when a candidate vector's length does
	// not match the variable-node layout captured at Finalize time.
	ErrShapeMismatch = errors.New("costfunc: shape mismatch")
)
