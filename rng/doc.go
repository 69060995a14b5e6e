// Package rng provides the random-number facility consumed by the
// Monte-Carlo optimizer: uniform integers, Poisson and Bernoulli sampling
// for Metropolis acceptance and multi-mutation move generation, and
// uniform sampling without replacement for selecting the flipped variable
// nodes. Every Facility instance is independently thread-safe; per-
// trajectory facilities are derived from a shared root seed via a
// SplitMix64-style stream mix so runs stay reproducible under any thread
// count.
package rng
