package rng

import "errors"

var (
	// ErrInvalidRange is returned when a uniform draw's upper bound is not
	// positive.
	ErrInvalidRange = errors.New("rng: n must be positive")

	// ErrInvalidSampleSize is returned when a without-replacement sample
	// requests a negative size.
	ErrInvalidSampleSize = errors.New("rng: sample size must be >= 0")
)
