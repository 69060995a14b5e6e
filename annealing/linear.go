package annealing

// Linear is the schedule that ramps temperature linearly from start to
// end over [0, finalStep]. finalStep is normally supplied via
// SetFinalStep by the solver once steps_per_attempt is known; a Linear
// constructed with finalStep==0 clamps to start at every step until set.
type Linear struct {
	start, end float64
	finalStep  int
}

// NewLinear returns a schedule ramping from start at step 0 to end at
// finalStep (finalStep may be 0 and set later via SetFinalStep).
func NewLinear(start, end float64, finalStep int) (*Linear, error) {
	if finalStep < 0 {
		return nil, ErrInvalidFinalStep
	}
	return &Linear{start: start, end: end, finalStep: finalStep}, nil
}

// SetFinalStep updates the horizon the ramp completes over.
func (l *Linear) SetFinalStep(n int) error {
	if n <= 0 {
		return ErrInvalidFinalStep
	}
	l.finalStep = n
	return nil
}

// Temperature linearly interpolates between start and end; step is
// clamped to [0, finalStep].
func (l *Linear) Temperature(step int) float64 {
	if l.finalStep <= 0 {
		return l.start
	}
	if step <= 0 {
		return l.start
	}
	if step >= l.finalStep {
		return l.end
	}
	frac := float64(step) / float64(l.finalStep)
	return l.start + frac*(l.end-l.start)
}

// Reset is a no-op: Linear's curve depends only on step and finalStep,
// neither of which accumulates across calls.
func (l *Linear) Reset() {}
