// Package annealing provides the pluggable temperature(step) schedule
// consumed by montecarlo's Metropolis acceptance test: Schedule is the
// interface, Constant and Linear are the two concrete schedules.
package annealing
