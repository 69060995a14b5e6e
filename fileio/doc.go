// Package fileio implements the two problem-file interpreters (ASCII and
// packed-binary), the tab-separated solution writer, and the
// problem/solver-class instantiation helper backed by registry.Registry.
// Both interpreters share the same Outside/Inside block state machine and
// recover from a malformed record by warning through a tracer.Tracer and
// continuing to the next one; at least one successfully parsed record is
// required for the call to succeed.
package fileio
