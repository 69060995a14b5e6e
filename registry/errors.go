package registry

import "errors"

var (
	// ErrNotFound is returned when a requested problem or solver class
	// name has no registered creator.
	ErrNotFound = errors.New("registry: not found")

	// ErrAlreadyRegistered is returned on a duplicate registration of the
	// same name.
	ErrAlreadyRegistered = errors.New("registry: already registered")
)
