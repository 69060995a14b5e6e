package solution

import "errors"

var (
	// ErrInvalidMaxStore is returned when max_store is not positive.
	ErrInvalidMaxStore = errors.New("solution: max_store must be positive")

	// ErrEmptyChoices is returned when a candidate vector has zero length.
	ErrEmptyChoices = errors.New("solution: choices must be non-empty")
)
