package costfunc

import "github.com/katalvlaran/cfnet/core"

// choicePenaltyEntry is one (node,choice)->penalty pair recorded before
// Finalize.
type choicePenaltyEntry struct {
	node, choice int
	penalty      float64
}

// SumOfChoicePenaltiesSquared is the cost function whose raw value is the
// square of the sum of real-valued per-choice penalties over the selected
// choices (plus a constant offset):
//
//	raw(sol) = (sum(penalty[node][choice] for each selected choice) + constantOffset)^2
//
// Penalties on nodes that turn out to be one-choice (fixed) after Finalize
// are folded unconditionally into a constant term, matching the feature
// model's fold-fixed-contributors-into-offset convention.
type SumOfChoicePenaltiesSquared struct {
	weight         float64
	constantOffset float64
	pending        []choicePenaltyEntry

	finalized  bool
	fixedSum   float64
	varPenalty []map[int]float64 // variable index -> choice -> accumulated penalty
}

// NewSumOfChoicePenaltiesSquared constructs the cost function. weight must
// be non-negative.
func NewSumOfChoicePenaltiesSquared(weight, constantOffset float64) (*SumOfChoicePenaltiesSquared, error) {
	if weight < 0 {
		return nil, ErrInvalidConfig
	}
	return &SumOfChoicePenaltiesSquared{weight: weight, constantOffset: constantOffset}, nil
}

// AddPenalty records a per-choice penalty. Valid only before Finalize.
func (cf *SumOfChoicePenaltiesSquared) AddPenalty(node, choice int, penalty float64) error {
	if cf.finalized {
		return core.ErrAlreadyFinalized
	}
	cf.pending = append(cf.pending, choicePenaltyEntry{node: node, choice: choice, penalty: penalty})
	return nil
}

// Weight returns the configured weight.
func (cf *SumOfChoicePenaltiesSquared) Weight() float64 { return cf.weight }

// NewScratch returns nil: this cost function's delta re-evaluates raw from
// scratch in O(V) and needs no persistent buffer.
func (cf *SumOfChoicePenaltiesSquared) NewScratch() core.Scratch { return nil }

// Finalize partitions pending penalties into the fixed-node offset and the
// per-variable-index lookup used by Absolute/Delta.
func (cf *SumOfChoicePenaltiesSquared) Finalize(variableNodeAbs []int) error {
	if cf.finalized {
		return core.ErrAlreadyFinalized
	}
	absToVar := make(map[int]int, len(variableNodeAbs))
	for vi, abs := range variableNodeAbs {
		absToVar[abs] = vi
	}
	cf.varPenalty = make([]map[int]float64, len(variableNodeAbs))
	for _, e := range cf.pending {
		if vi, ok := absToVar[e.node]; ok {
			if cf.varPenalty[vi] == nil {
				cf.varPenalty[vi] = make(map[int]float64)
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

func (cf *SumOfChoicePenaltiesSquared) rawSum(sol []int) float64 {
	s := cf.fixedSum + cf.constantOffset
	for vi, c := range sol {
		if m := cf.varPenalty[vi]; m != nil {
			s += m[c]
		}
	}
	return s
}

// Absolute returns weight * (sum of matched penalties + constantOffset)^2.
func (cf *SumOfChoicePenaltiesSquared) Absolute(sol []int) (float64, error) {
	if !cf.finalized {
		return 0, ErrNotFinalized
	}
	if len(sol) != len(cf.varPenalty) {
		return 0, ErrShapeMismatch
	}
	s := cf.rawSum(sol)
	return cf.weight * s * s, nil
}

// Delta re-evaluates Absolute for both states, each an O(V) sum.
func (cf *SumOfChoicePenaltiesSquared) Delta(old, newSol []int, _ core.Scratch) (float64, error) {
	oldScore, err := cf.Absolute(old)
	if err != nil {
		return 0, err
	}
	newScore, err := cf.Absolute(newSol)
	if err != nil {
		return 0, err
	}
	return newScore - oldScore, nil
}
