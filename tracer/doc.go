// Package tracer provides the tagged status-line logging used throughout
// the solvers and file interpreters: every line carries a short subsystem
// tag (e.g. "ascii", "binary", "montecarlo") so a run's log can be
// filtered by component.
package tracer
