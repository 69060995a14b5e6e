package costfunc

import "github.com/katalvlaran/cfnet/core"

// FeatureContributor is one (other_node,other_choice) -> count entry that
// adds to a ChoiceFeature's live connection count whenever other_choice is
// the choice currently selected at other_node.
type FeatureContributor struct {
	OtherNode, OtherChoice, Count int
}

// ChoiceFeature is an abstract "bond slot" attached to (Node,Choice): it is
// active whenever Choice is the choice currently selected at Node (always
// active if Node turns out to be a one-choice/fixed node), and it is
// satisfied when its live connection count falls in [Min,Max].
type ChoiceFeature struct {
	Node, Choice int
	Offset       int
	Min, Max     int
	Contributors []FeatureContributor
}

type contribEntry struct {
	varIdx, choice, count int
}

type finalizedFeature struct {
	varIdx      int
	isFixedNode bool
	choice      int
	min, max    int
	baseOffset  int
	varContribs []contribEntry
}

func (ff *finalizedFeature) active(sol []int) bool {
	if ff.isFixedNode {
		return true
	}
	return sol[ff.varIdx] == ff.choice
}

func (ff *finalizedFeature) liveCount(sol []int) int {
	cnt := ff.baseOffset
	for _, vc := range ff.varContribs {
		if sol[vc.varIdx] == vc.choice {
			cnt += vc.count
		}
	}
	return cnt
}

func (ff *finalizedFeature) unsatisfied(sol []int) bool {
	if !ff.active(sol) {
		return false
	}
	c := ff.liveCount(sol)
	return c < ff.min || c > ff.max
}

// featureScratch caches the last known unsatisfied-feature bitset and
// count, keyed to the solution vector they were computed against, so
// repeated Delta calls along a trajectory only re-evaluate the features
// touched by the changed variable nodes. If the solution passed as `old`
// no longer matches the cached one (e.g. the previous candidate move was
// rejected by the caller), the cache is rebuilt from scratch for that
// call; correctness never depends on the caller's accept/reject decision.
type featureScratch struct {
	have        bool
	sol         []int
	unsatisfied []bool
	count       int
}

func sameSolution(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func ensureCopy(dst []int, src []int) []int {
	if cap(dst) < len(src) {
		dst = make([]int, len(src))
	}
	dst = dst[:len(src)]
	copy(dst, src)
	return dst
}

// SquareOfSumOfUnsatisfiedFeatures counts how many attached ChoiceFeatures
// are active-and-unsatisfied under a candidate solution, squares the
// count, and multiplies by weight.
type SquareOfSumOfUnsatisfiedFeatures struct {
	weight    float64
	pending   []ChoiceFeature
	finalized bool
	features  []finalizedFeature
	varAffects [][]int // variable index -> feature indices whose status it can change
}

// NewSquareOfSumOfUnsatisfiedFeatures constructs the cost function. weight
// must be non-negative.
func NewSquareOfSumOfUnsatisfiedFeatures(weight float64) (*SquareOfSumOfUnsatisfiedFeatures, error) {
	if weight < 0 {
		return nil, ErrInvalidConfig
	}
	return &SquareOfSumOfUnsatisfiedFeatures{weight: weight}, nil
}

// AddFeature attaches a ChoiceFeature. Valid only before Finalize.
func (cf *SquareOfSumOfUnsatisfiedFeatures) AddFeature(f ChoiceFeature) error {
	if cf.finalized {
		return core.ErrAlreadyFinalized
	}
	cf.pending = append(cf.pending, f)
	return nil
}

// Weight returns the configured weight.
func (cf *SquareOfSumOfUnsatisfiedFeatures) Weight() float64 { return cf.weight }

// NewScratch returns a fresh cache for this trajectory.
func (cf *SquareOfSumOfUnsatisfiedFeatures) NewScratch() core.Scratch { return &featureScratch{} }

// Finalize splits every feature's own node and every contributor into
// fixed (folded into the offset) and variable-indexed, and builds the
// variable-index -> affected-feature index used by Delta.
func (cf *SquareOfSumOfUnsatisfiedFeatures) Finalize(variableNodeAbs []int) error {
	if cf.finalized {
		return core.ErrAlreadyFinalized
	}
	absToVar := make(map[int]int, len(variableNodeAbs))
	for vi, abs := range variableNodeAbs {
		absToVar[abs] = vi
	}

	cf.features = make([]finalizedFeature, len(cf.pending))
	cf.varAffects = make([][]int, len(variableNodeAbs))
	for fi, f := range cf.pending {
		ff := finalizedFeature{min: f.Min, max: f.Max, baseOffset: f.Offset}
		if vi, ok := absToVar[f.Node]; ok {
			ff.varIdx = vi
			ff.choice = f.Choice
		} else {
			ff.isFixedNode = true
		}
		for _, c := range f.Contributors {
			if vi, ok := absToVar[c.OtherNode]; ok {
				ff.varContribs = append(ff.varContribs, contribEntry{varIdx: vi, choice: c.OtherChoice, count: c.Count})
			} else {
				ff.baseOffset += c.Count
			}
		}
		cf.features[fi] = ff

		affected := make(map[int]bool)
		if !ff.isFixedNode {
			affected[ff.varIdx] = true
		}
		for _, vc := range ff.varContribs {
			affected[vc.varIdx] = true
		}
		for v := range affected {
			cf.varAffects[v] = append(cf.varAffects[v], fi)
		}
	}
	cf.pending = nil
	cf.finalized = true
	return nil
}

func (cf *SquareOfSumOfUnsatisfiedFeatures) rawCount(sol []int) int {
	n := 0
	for i := range cf.features {
		if cf.features[i].unsatisfied(sol) {
			n++
		}
	}
	return n
}

// Absolute returns weight * (unsatisfied feature count)^2.
func (cf *SquareOfSumOfUnsatisfiedFeatures) Absolute(sol []int) (float64, error) {
	if !cf.finalized {
		return 0, ErrNotFinalized
	}
	if len(sol) != len(cf.varAffects) {
		return 0, ErrShapeMismatch
	}
	n := cf.rawCount(sol)
	return cf.weight * float64(n*n), nil
}

// Delta reuses the scratch's cached unsatisfied bitset when it matches
// `old`, re-evaluating only the features whose dependencies changed;
// otherwise it rebuilds the baseline from `old` before proceeding.
func (cf *SquareOfSumOfUnsatisfiedFeatures) Delta(old, newSol []int, scratch core.Scratch) (float64, error) {
	if !cf.finalized {
		return 0, ErrNotFinalized
	}
	if len(old) != len(cf.varAffects) || len(newSol) != len(cf.varAffects) {
		return 0, ErrShapeMismatch
	}

	fs, _ := scratch.(*featureScratch)
	var workUnsat []bool
	var baseCount int
	if fs != nil && fs.have && sameSolution(fs.sol, old) {
		workUnsat = fs.unsatisfied
		baseCount = fs.count
	} else {
		workUnsat = make([]bool, len(cf.features))
		for i := range cf.features {
			if cf.features[i].unsatisfied(old) {
				workUnsat[i] = true
				baseCount++
			}
		}
	}

	touched := make(map[int]bool)
	for vi := range newSol {
		if old[vi] == newSol[vi] {
			continue
		}
		for _, fi := range cf.varAffects[vi] {
			touched[fi] = true
		}
	}
	newCount := baseCount
	for fi := range touched {
		now := cf.features[fi].unsatisfied(newSol)
		if workUnsat[fi] != now {
			if now {
				newCount++
			} else {
				newCount--
			}
			workUnsat[fi] = now
		}
	}

	if fs != nil {
		fs.have = true
		fs.unsatisfied = workUnsat
		fs.count = newCount
		fs.sol = ensureCopy(fs.sol, newSol)
	}

	return cf.weight * (float64(newCount*newCount) - float64(baseCount*baseCount)), nil
}
