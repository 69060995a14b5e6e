package tracer

import (
	"fmt"
	"log"
	"os"
)

// Tracer emits tagged, leveled status lines. Implementations must be safe
// for concurrent use: solvers call into a shared Tracer from every
// trajectory goroutine.
type Tracer interface {
	Infof(tag, format string, args ...interface{})
	Warnf(tag, format string, args ...interface{})
}

// standard is the default Tracer, built on the standard library's log
// package (which already serializes concurrent writers internally).
type standard struct {
	l *log.Logger
}

// Standard returns a Tracer that writes tagged lines to stderr.
func Standard() Tracer {
	return &standard{l: log.New(os.Stderr, "", log.LstdFlags)}
}

func (s *standard) Infof(tag, format string, args ...interface{}) {
	s.l.Printf("[INFO][%s] %s", tag, fmt.Sprintf(format, args...))
}

func (s *standard) Warnf(tag, format string, args ...interface{}) {
	s.l.Printf("[WARN][%s] %s", tag, fmt.Sprintf(format, args...))
}

// Noop discards every line; useful for library callers and benchmarks
// that don't want solver/parser diagnostics on stderr.
type noop struct{}

// Noop returns a Tracer that discards everything.
func Noop() Tracer { return noop{} }

func (noop) Infof(string, string, ...interface{}) {}
func (noop) Warnf(string, string, ...interface{}) {}
