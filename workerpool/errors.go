package workerpool

import "errors"

// ErrInvalidThreads is returned when a negative thread count is supplied;
// 0 means "no cap", matching the threads/0=all contract.
var ErrInvalidThreads = errors.New("workerpool: threads must be >= 0")
