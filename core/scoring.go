package core

// value returns the two-body contribution for this neighbor edge given the
// choice at this variable node and at the other endpoint, orienting the
// lookup according to which side of the retained block this node is.
func (nb neighbor) value(selfChoice, otherChoice int) float64 {
	if nb.selfIsRow {
		return nb.m.At(selfChoice, otherChoice)
	}
	return nb.m.At(otherChoice, selfChoice)
}

func (p *Problem) validateCandidate(sol []int) error {
	if len(sol) != len(p.absOfVar) {
		return ErrShapeMismatch
	}
	for vi, c := range sol {
		if c < 0 || c >= p.choiceCounts[vi] {
			return ErrShapeMismatch
		}
	}
	return nil
}

// Absolute returns the total score of a complete candidate vector:
// background_offset + one_choice_offset + one-body sum + two-body sum +
// the sum of every attached cost function's Absolute.
func (p *Problem) Absolute(sol []int) (float64, error) {
	if !p.finalized {
		return 0, ErrNotFinalized
	}
	if err := p.validateCandidate(sol); err != nil {
		return 0, err
	}

	total := p.backgroundOffset + p.oneChoiceOffset
	for vi, c := range sol {
		total += p.onebodyForVar[vi][c]
	}
	for _, it := range p.interactions {
		total += it.matrix.At(sol[it.varA], sol[it.varB])
	}
	for _, cf := range p.costFuncs {
		raw, err := cf.Absolute(sol)
		if err != nil {
			return 0, err
		}
		total += raw
	}
	return total, nil
}

// NewScratchSet returns one per-trajectory Scratch value per attached cost
// function, in attachment order, ready to pass to Delta across an entire
// Monte-Carlo or greedy trajectory.
func (p *Problem) NewScratchSet() []Scratch {
	if len(p.costFuncs) == 0 {
		return nil
	}
	out := make([]Scratch, len(p.costFuncs))
	for i, cf := range p.costFuncs {
		out[i] = cf.NewScratch()
	}
	return out
}

// Delta returns absolute(newSol) - absolute(old) without recomputing the
// whole sum: cost functions are asked directly for their delta (using the
// scratch slot aligned to their attachment position), and only one-body /
// two-body terms touching a changed variable node are re-evaluated. An
// edge between two changed endpoints is counted exactly once, at the
// higher-indexed endpoint.
func (p *Problem) Delta(old, newSol []int, scratch []Scratch) (float64, error) {
	if !p.finalized {
		return 0, ErrNotFinalized
	}
	if err := p.validateCandidate(old); err != nil {
		return 0, err
	}
	if err := p.validateCandidate(newSol); err != nil {
		return 0, err
	}

	var total float64
	for idx, cf := range p.costFuncs {
		var sc Scratch
		if idx < len(scratch) {
			sc = scratch[idx]
		}
		d, err := cf.Delta(old, newSol, sc)
		if err != nil {
			return 0, err
		}
		total += d
	}

	for i := range newSol {
		if old[i] == newSol[i] {
			continue
		}
		row := p.onebodyForVar[i]
		total += row[newSol[i]] - row[old[i]]
		for _, nb := range p.neighbors[i] {
			j := nb.other
			if j < i || old[j] == newSol[j] {
				total += nb.value(newSol[i], newSol[j]) - nb.value(old[i], old[j])
			}
		}
	}
	return total, nil
}
