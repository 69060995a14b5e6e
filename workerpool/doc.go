// Package workerpool provides the bounded thread pool that greedy and
// montecarlo run their independent (problem, starting-point) trajectories
// on: submit a vector of closures, wait for all of them, get back a
// summary of completed/failed counts and the first error observed.
package workerpool
