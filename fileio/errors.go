package fileio

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuccessfulRecord is returned when every record in the stream
	// failed to parse.
	ErrNoSuccessfulRecord = errors.New("fileio: no successful record parsed")

	// ErrNameSelection is returned when Instantiate is given both a
	// problem-class name and a solver-class name, or neither.
	ErrNameSelection = errors.New("fileio: exactly one of problem-class name or solver-class name is required")

	// ErrUnsupportedExtension is returned for any requested file
	// extension other than "txt".
	ErrUnsupportedExtension = errors.New("fileio: only the \"txt\" extension is supported")
)

// ParseError reports one malformed record, recoverable by skipping to the
// next record.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fileio: line %d: %s", e.Line, e.Msg)
}
