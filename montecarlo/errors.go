package montecarlo

import "errors"

var (
	// ErrInvalidConfig is returned when Options carries an invalid
	// combination (non-positive attempt or solution counts, a negative
	// step count, missing annealing schedule, unknown storage mode or
	// refinement mode).
	ErrInvalidConfig = errors.New("montecarlo: invalid configuration")
)
