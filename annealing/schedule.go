package annealing

// Schedule is a pluggable step -> temperature driver for Metropolis
// acceptance. Reset rewinds any internal step-dependent state so the same
// schedule instance can be reused across independent trajectories.
type Schedule interface {
	Temperature(step int) float64
	Reset()
}

// FinalStepSetter is implemented by schedules whose curve depends on
// knowing the trajectory's total step count in advance (Linear). A solver
// that learns steps_per_attempt only at run time type-asserts for this
// before starting a trajectory; schedules that don't need it (Constant)
// simply don't implement it.
type FinalStepSetter interface {
	SetFinalStep(n int) error
}
