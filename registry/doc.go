// Package registry provides the plugin registry that resolves a problem
// or solver class name into a ProblemCreator: the file interpreters in
// fileio use it to instantiate a problem container compatible with a
// given solver when only the solver's name is known.
package registry
