package greedy

import "errors"

// ErrInvalidConfig is returned when Options.Threads is negative.
var ErrInvalidConfig = errors.New("greedy: invalid configuration")
