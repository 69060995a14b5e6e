package costfunc

import "github.com/katalvlaran/cfnet/core"

// TailMode selects how FunctionOfIntegerPenaltySum extrapolates outside its
// tabulated domain.
type TailMode int

const (
	// TailConstant holds the nearest tabulated endpoint value.
	TailConstant TailMode = iota
	// TailLinear fits a line through the two points nearest that end.
	TailLinear
	// TailQuadratic fits a parabola through the three points nearest that end.
	TailQuadratic
)

type intPenaltyEntry struct {
	node, choice, penalty int
}

// FunctionOfIntegerPenaltySum evaluates an arbitrary tabulated function of
// the sum of integer per-choice penalties:
//
//	raw(sol) = f( sum(penalty[node][choice] for each selected choice) )
//
// f is tabulated on [start, start+len(values)) and extrapolated outside
// that domain independently on the low and high side, per lowMode/highMode.
// The low-side tail is fit from the table's first points (nearest the low
// boundary); the high-side tail is fit from its last points (nearest the
// high boundary) — each side is fit independently so the two tails need
// not agree.
type FunctionOfIntegerPenaltySum struct {
	weight            float64
	start             int
	values            []float64
	lowMode, highMode TailMode

	aLow, bLow, cLow    float64
	aHigh, bHigh, cHigh float64

	pending []intPenaltyEntry

	finalized  bool
	fixedSum   int
	varPenalty []map[int]int
}

// NewFunctionOfIntegerPenaltySum constructs the cost function and fits both
// tails immediately, since the tabulated function is supplied in full at
// construction time. weight must be non-negative; values must be
// non-empty; the requested tail modes must have enough tabulated points
// (>=2 for linear, >=3 for quadratic).
func NewFunctionOfIntegerPenaltySum(weight float64, start int, values []float64, lowMode, highMode TailMode) (*FunctionOfIntegerPenaltySum, error) {
	if weight < 0 || len(values) == 0 {
		return nil, ErrInvalidConfig
	}
	cf := &FunctionOfIntegerPenaltySum{
		weight: weight, start: start, values: append([]float64(nil), values...),
		lowMode: lowMode, highMode: highMode,
	}
	var err error
	cf.aLow, cf.bLow, cf.cLow, err = fitTail(false, lowMode, start, cf.values)
	if err != nil {
		return nil, err
	}
	cf.aHigh, cf.bHigh, cf.cHigh, err = fitTail(true, highMode, start, cf.values)
	if err != nil {
		return nil, err
	}
	return cf, nil
}

// AddPenalty records an integer per-choice penalty. Valid only before
// Finalize.
func (cf *FunctionOfIntegerPenaltySum) AddPenalty(node, choice, penalty int) error {
	if cf.finalized {
		return core.ErrAlreadyFinalized
	}
	cf.pending = append(cf.pending, intPenaltyEntry{node: node, choice: choice, penalty: penalty})
	return nil
}

func fitTail(high bool, mode TailMode, start int, values []float64) (a, b, c float64, err error) {
	n := len(values)
	switch mode {
	case TailConstant:
		if n < 1 {
			return 0, 0, 0, ErrInvalidConfig
		}
		if high {
			a = values[n-1]
		} else {
			a = values[0]
		}
		return a, 0, 0, nil
	case TailLinear:
		if n < 2 {
			return 0, 0, 0, ErrInvalidConfig
		}
		x1Idx, x2Idx := 0, 1
		if high {
			x1Idx, x2Idx = n-1, n-2
		}
		x1, x2 := float64(start+x1Idx), float64(start+x2Idx)
		y1, y2 := values[x1Idx], values[x2Idx]
		b = (y1 - y2) / (x1 - x2)
		a = y1 - b*x1
		return a, b, 0, nil
	case TailQuadratic:
		if n < 3 {
			return 0, 0, 0, ErrInvalidConfig
		}
		x1Idx, x2Idx, x3Idx := 0, 1, 2
		if high {
			x1Idx, x2Idx, x3Idx = n-1, n-2, n-3
		}
		x1, x2, x3 := float64(start+x1Idx), float64(start+x2Idx), float64(start+x3Idx)
		y1, y2, y3 := values[x1Idx], values[x2Idx], values[x3Idx]
		c = ((y1-y3)/(x1-x3) - (y1-y2)/(x1-x2)) / (x3 - x2)
		b = (y1-y2)/(x1-x2) - c*(x1+x2)
		a = y1 - b*x1 - c*x1*x1
		return a, b, c, nil
	default:
		return 0, 0, 0, ErrInvalidConfig
	}
}

func evalTail(mode TailMode, x int, a, b, c float64) float64 {
	fx := float64(x)
	switch mode {
	case TailConstant:
		return a
	case TailLinear:
		return b*fx + a
	case TailQuadratic:
		return c*fx*fx + b*fx + a
	default:
		return 0
	}
}

func (cf *FunctionOfIntegerPenaltySum) f(x int) float64 {
	if x < cf.start {
		return evalTail(cf.lowMode, x, cf.aLow, cf.bLow, cf.cLow)
	}
	if x >= cf.start+len(cf.values) {
		return evalTail(cf.highMode, x, cf.aHigh, cf.bHigh, cf.cHigh)
	}
	return cf.values[x-cf.start]
}

// Weight returns the configured weight.
func (cf *FunctionOfIntegerPenaltySum) Weight() float64 { return cf.weight }

// NewScratch returns nil: Delta re-evaluates in O(V) without extra state.
func (cf *FunctionOfIntegerPenaltySum) NewScratch() core.Scratch { return nil }

// Finalize partitions pending integer penalties into the fixed-node sum
// and the per-variable-index lookup.
func (cf *FunctionOfIntegerPenaltySum) Finalize(variableNodeAbs []int) error {
	if cf.finalized {
		return core.ErrAlreadyFinalized
	}
	absToVar := make(map[int]int, len(variableNodeAbs))
	for vi, abs := range variableNodeAbs {
		absToVar[abs] = vi
	}
	cf.varPenalty = make([]map[int]int, len(variableNodeAbs))
	for _, e := range cf.pending {
		if vi, ok := absToVar[e.node]; ok {
			if cf.varPenalty[vi] == nil {
				cf.varPenalty[vi] = make(map[int]int)
			}
			cf.varPenalty[vi][e.choice] += e.penalty
		} else {
			cf.fixedSum += e.penalty
		}
	}
	cf.pending = nil
	cf.finalized = true
	return nil
}

func (cf *FunctionOfIntegerPenaltySum) penaltyAt(vi, choice int) int {
	if m := cf.varPenalty[vi]; m != nil {
		return m[choice]
	}
	return 0
}

func (cf *FunctionOfIntegerPenaltySum) rawIntSum(sol []int) (int, error) {
	if len(sol) != len(cf.varPenalty) {
		return 0, ErrShapeMismatch
	}
	sum := cf.fixedSum
	for vi, c := range sol {
		sum += cf.penaltyAt(vi, c)
	}
	return sum, nil
}

// Absolute returns weight * f(sum of matched integer penalties).
func (cf *FunctionOfIntegerPenaltySum) Absolute(sol []int) (float64, error) {
	if !cf.finalized {
		return 0, ErrNotFinalized
	}
	sum, err := cf.rawIntSum(sol)
	if err != nil {
		return 0, err
	}
	return cf.weight * cf.f(sum), nil
}

// Delta computes the changed integer sum incrementally (O(changed sites))
// then evaluates f at both old and new sums.
func (cf *FunctionOfIntegerPenaltySum) Delta(old, newSol []int, _ core.Scratch) (float64, error) {
	if !cf.finalized {
		return 0, ErrNotFinalized
	}
	oldSum, err := cf.rawIntSum(old)
	if err != nil {
		return 0, err
	}
	newSum := oldSum
	for vi := range newSol {
		if old[vi] == newSol[vi] {
			continue
		}
		newSum += cf.penaltyAt(vi, newSol[vi]) - cf.penaltyAt(vi, old[vi])
	}
	return cf.weight * (cf.f(newSum) - cf.f(oldSum)), nil
}
