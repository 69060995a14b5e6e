package core

// Scratch is an opaque, per-trajectory working buffer a CostFunction may
// allocate via NewScratch so that repeated Delta calls along one
// Monte-Carlo or greedy trajectory avoid reallocating. Solvers never
// inspect it; they only carry it from one call to the next.
type Scratch interface{}

// CostFunction is the uniform scoring contract every non-pairwise
// cost-function plug-in implements. It mirrors the PairwiseProblem
// contract (Absolute, Delta) so Problem can fold both into a single sum.
type CostFunction interface {
	// Finalize captures whatever state the cost function needs to answer
	// queries against the candidate-vector (variable-index) layout.
	// variableNodeAbs maps variable index -> absolute node index, in
	// variable-index order (dense, preserving absolute order).
	Finalize(variableNodeAbs []int) error

	// Absolute returns weight * raw(sol) for a complete candidate vector.
	Absolute(sol []int) (float64, error)

	// Delta returns weight * (raw(new) - raw(old)). Implementations that
	// cannot do better may return Absolute(new) - Absolute(old). scratch
	// is the value this cost function's NewScratch returned for the
	// current trajectory, or nil if NewScratch returned nil.
	Delta(old, new []int, scratch Scratch) (float64, error)

	// Weight returns the per-instance multiplier applied to raw scores.
	Weight() float64

	// NewScratch returns a fresh per-trajectory scratch value, or nil if
	// this cost function needs none.
	NewScratch() Scratch
}

// pairKey identifies a two-body block between two absolute node indices,
// always stored with A < B.
type pairKey struct {
	A, B int
}

// interaction records one retained variable-to-variable two-body block
// after Finalize, keyed by absolute node index order (a < b). varA/varB
// are the corresponding variable indices.
type interaction struct {
	absA, absB int
	varA, varB int
	matrix     pairMatrix
}

// pairMatrix is the minimal read surface Problem needs from the growable
// two-body matrix; it is satisfied by *densemat.Float64.
type pairMatrix interface {
	At(row, col int) float64
}

// neighbor is one entry in a variable node's interacting-partner list,
// used by Delta to walk only edges that exist.
type neighbor struct {
	other  int // variable index of the other endpoint
	selfIsRow bool
	m      pairMatrix
}
