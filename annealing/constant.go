package annealing

// Constant is the schedule whose temperature never changes.
type Constant struct {
	t float64
}

// NewConstant returns a schedule fixed at temperature t.
func NewConstant(t float64) *Constant {
	return &Constant{t: t}
}

// Temperature returns t regardless of step.
func (c *Constant) Temperature(_ int) float64 { return c.t }

// Reset is a no-op: Constant carries no step-dependent state.
func (c *Constant) Reset() {}
