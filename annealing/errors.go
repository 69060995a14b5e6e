package annealing

import "errors"

// ErrInvalidFinalStep is returned by SetFinalStep when n is not positive.
var ErrInvalidFinalStep = errors.New("annealing: final step must be positive")
