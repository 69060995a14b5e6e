package montecarlo

import (
	"github.com/katalvlaran/cfnet/annealing"
	"github.com/katalvlaran/cfnet/tracer"
)

// StorageMode controls when a Monte-Carlo trajectory offers its current
// candidate to the local solution set.
type StorageMode int

const (
	// CheckAtEveryStep offers every proposed candidate, accepted or not.
	CheckAtEveryStep StorageMode = iota
	// CheckOnAcceptance offers only candidates the Metropolis test accepts.
	CheckOnAcceptance
)

// RefinementMode controls how greedy-refinement output is folded back
// into the stored solutions.
type RefinementMode int

const (
	// RefineTop replaces every stored solution with its greedy-refined
	// counterpart.
	RefineTop RefinementMode = iota
	// RefineTopKeepingOriginal merges the greedy-refined counterparts
	// alongside the original stored solutions.
	RefineTopKeepingOriginal
	// RefineAll refines every trajectory's locally stored solutions
	// before they are merged into the per-problem set.
	RefineAll
)

// Options configures an Optimizer. DefaultOptions returns the spec
// defaults; set AnnealingSchedule before passing to New, it has no
// default.
type Options struct {
	Threads                         int
	AttemptsPerProblem              int
	SolutionsPerProblem             int
	StepsPerAttempt                 int
	AnnealingSchedule               annealing.Schedule
	UseMultiMutation                bool
	POneMutation                    float64
	StorageMode                     StorageMode
	DoGreedyRefinement              bool
	GreedyRefinementMode            RefinementMode
	RecomputeFromScratchEveryNSteps int
	// Seed roots the deterministic per-trajectory RNG derivation; 0 uses
	// the facility's built-in default seed.
	Seed int64
	// Tracer receives one Infof line per trajectory start/finish, each
	// tagged with a generated trajectory ID. Nil uses tracer.Noop().
	Tracer tracer.Tracer
}

// DefaultOptions returns the spec-default configuration. AnnealingSchedule
// is left nil and must be set by the caller.
func DefaultOptions() Options {
	return Options{
		Threads:                         0,
		AttemptsPerProblem:              1,
		SolutionsPerProblem:             1,
		StepsPerAttempt:                 100000,
		UseMultiMutation:                true,
		POneMutation:                    0.75,
		StorageMode:                     CheckAtEveryStep,
		DoGreedyRefinement:              false,
		GreedyRefinementMode:            RefineTopKeepingOriginal,
		RecomputeFromScratchEveryNSteps: 100,
	}
}

func (o Options) validate() error {
	if o.Threads < 0 {
		return ErrInvalidConfig
	}
	if o.AttemptsPerProblem <= 0 || o.SolutionsPerProblem <= 0 || o.StepsPerAttempt < 0 {
		return ErrInvalidConfig
	}
	if o.AnnealingSchedule == nil {
		return ErrInvalidConfig
	}
	if o.POneMutation <= 0 || o.POneMutation > 1 {
		return ErrInvalidConfig
	}
	if o.StorageMode != CheckAtEveryStep && o.StorageMode != CheckOnAcceptance {
		return ErrInvalidConfig
	}
	if o.GreedyRefinementMode != RefineTop && o.GreedyRefinementMode != RefineTopKeepingOriginal && o.GreedyRefinementMode != RefineAll {
		return ErrInvalidConfig
	}
	if o.RecomputeFromScratchEveryNSteps < 0 {
		return ErrInvalidConfig
	}
	return nil
}
