package core

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/cfnet/internal/densemat"
)

// Problem is the pairwise-decomposable cost-function-network problem
// store. Before Finalize it is a single-writer builder guarded by mu;
// SetOneBody/SetTwoBody grow their targets lazily and zero-pad. After
// Finalize it is immutable and every mutator returns ErrAlreadyFinalized;
// Absolute/Delta become available and read only immutable structure plus
// per-call scratch, so a *Problem may be shared by reference across
// goroutines once finalized.
type Problem struct {
	mu        sync.Mutex
	finalized bool

	nChoices map[int]int
	onebody  map[int][]float64
	twobody  map[pairKey]*densemat.Float64

	backgroundOffset  float64
	startingSolutions [][]int
	costFuncs         []CostFunction

	// Populated by Finalize.
	oneChoiceOffset float64
	absOfVar        []int       // variable index -> absolute node index
	varOfAbs        map[int]int // absolute node index -> variable index
	choiceCounts    []int       // variable index -> K
	onebodyForVar   [][]float64 // variable index -> one-body row
	neighbors       [][]neighbor
	interactions    []interaction
}

// NewProblem returns an empty, unfinalized Problem.
func NewProblem() *Problem {
	return &Problem{
		nChoices: make(map[int]int),
		onebody:  make(map[int][]float64),
		twobody:  make(map[pairKey]*densemat.Float64),
	}
}

func growF64(row []float64, n int) []float64 {
	if len(row) >= n {
		return row
	}
	grown := make([]float64, n)
	copy(grown, row)
	return grown
}

// ensureChoiceCount grows nChoices[node] monotonically to at least atLeast.
func (p *Problem) ensureChoiceCount(node, atLeast int) {
	if cur, ok := p.nChoices[node]; !ok || atLeast > cur {
		p.nChoices[node] = atLeast
	}
}

// SetOneBody sets the one-body penalty for (node,choice), growing the
// node's choice count and its one-body row as needed.
func (p *Problem) SetOneBody(node, choice int, value float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finalized {
		return ErrAlreadyFinalized
	}
	if node < 0 || choice < 0 {
		return fmt.Errorf("%w: negative node or choice index", ErrShapeMismatch)
	}
	p.ensureChoiceCount(node, choice+1)
	row := growF64(p.onebody[node], choice+1)
	row[choice] = value
	p.onebody[node] = row
	return nil
}

// SetTwoBody sets the two-body penalty for (a,ca)-(b,cb), requiring a < b.
// Both nodes' choice counts and the block's extent grow as needed.
func (p *Problem) SetTwoBody(a, b, ca, cb int, value float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finalized {
		return ErrAlreadyFinalized
	}
	if a >= b {
		return ErrInvalidKey
	}
	if a < 0 || b < 0 || ca < 0 || cb < 0 {
		return fmt.Errorf("%w: negative index", ErrShapeMismatch)
	}
	p.ensureChoiceCount(a, ca+1)
	p.ensureChoiceCount(b, cb+1)
	key := pairKey{A: a, B: b}
	mat := p.twobody[key]
	if mat == nil {
		mat = &densemat.Float64{}
		p.twobody[key] = mat
	}
	mat.Set(ca, cb, value)
	return nil
}

// SetBackgroundOffset sets the constant added to every score.
func (p *Problem) SetBackgroundOffset(value float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finalized {
		return ErrAlreadyFinalized
	}
	p.backgroundOffset = value
	return nil
}

// AttachCostFunction registers a non-pairwise cost-function plug-in. It is
// folded into Absolute/Delta and Finalized alongside the problem.
func (p *Problem) AttachCostFunction(cf CostFunction) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finalized {
		return ErrAlreadyFinalized
	}
	p.costFuncs = append(p.costFuncs, cf)
	return nil
}

// AddStartingSolution registers a candidate starting vector. Its length is
// validated against the number of variable nodes only when a solver
// applies it, per spec; Finalize does not check it.
func (p *Problem) AddStartingSolution(sol []int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finalized {
		return ErrAlreadyFinalized
	}
	cp := make([]int, len(sol))
	copy(cp, sol)
	p.startingSolutions = append(p.startingSolutions, cp)
	return nil
}

// StartingSolutions returns a copy of the registered starting vectors.
func (p *Problem) StartingSolutions() [][]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]int, len(p.startingSolutions))
	for i, s := range p.startingSolutions {
		cp := make([]int, len(s))
		copy(cp, s)
		out[i] = cp
	}
	return out
}

// Finalized reports whether Finalize has already succeeded.
func (p *Problem) Finalized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.finalized
}

// NumVariable returns V, the number of variable (K>=2) nodes. Valid only
// after Finalize.
func (p *Problem) NumVariable() int { return len(p.absOfVar) }

// AbsoluteIndex returns the absolute node index of variable index vi.
func (p *Problem) AbsoluteIndex(vi int) int { return p.absOfVar[vi] }

// VariableIndex returns the variable index of absolute node index abs, and
// whether that node is a variable node at all.
func (p *Problem) VariableIndex(abs int) (int, bool) {
	vi, ok := p.varOfAbs[abs]
	return vi, ok
}

// ChoiceCount returns K for variable index vi.
func (p *Problem) ChoiceCount(vi int) int { return p.choiceCounts[vi] }

// CostFunctions returns the attached cost-function plug-ins in attachment
// order.
func (p *Problem) CostFunctions() []CostFunction { return p.costFuncs }

// Finalize folds one-choice (fixed) nodes into the variable nodes' one-body
// rows and into a scalar offset, builds the fast lookup tables used by
// Absolute/Delta, and finalizes every attached cost function. It may be
// called at most once; a second call returns ErrAlreadyFinalized.
func (p *Problem) Finalize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finalized {
		return ErrAlreadyFinalized
	}

	retained := make(map[pairKey]*densemat.Float64, len(p.twobody))
	for key, mat := range p.twobody {
		ka := p.nChoices[key.A]
		kb := p.nChoices[key.B]
		switch {
		case ka == 1 && kb == 1:
			if mat.Rows() > 1 || mat.Cols() > 1 {
				return fmt.Errorf("%w: one-choice pair (%d,%d) two-body block is not a singleton", ErrInvalidConfig, key.A, key.B)
			}
			p.oneChoiceOffset += mat.At(0, 0)
		case ka == 1:
			if mat.Rows() > 1 {
				return fmt.Errorf("%w: one-choice node %d has a multi-row two-body block with node %d", ErrInvalidConfig, key.A, key.B)
			}
			row := growF64(p.onebody[key.B], mat.Cols())
			for c := 0; c < mat.Cols(); c++ {
				row[c] += mat.At(0, c)
			}
			p.onebody[key.B] = row
		case kb == 1:
			if mat.Cols() > 1 {
				return fmt.Errorf("%w: one-choice node %d has a multi-column two-body block with node %d", ErrInvalidConfig, key.B, key.A)
			}
			row := growF64(p.onebody[key.A], mat.Rows())
			for r := 0; r < mat.Rows(); r++ {
				row[r] += mat.At(r, 0)
			}
			p.onebody[key.A] = row
		default:
			retained[key] = mat
		}
	}

	for node, k := range p.nChoices {
		if k == 1 {
			if row := p.onebody[node]; len(row) > 0 {
				p.oneChoiceOffset += row[0]
			}
		}
	}

	var absNodes []int
	for node, k := range p.nChoices {
		if k >= 2 {
			absNodes = append(absNodes, node)
		}
	}
	sort.Ints(absNodes)

	p.absOfVar = absNodes
	p.varOfAbs = make(map[int]int, len(absNodes))
	p.choiceCounts = make([]int, len(absNodes))
	p.onebodyForVar = make([][]float64, len(absNodes))
	for vi, abs := range absNodes {
		p.varOfAbs[abs] = vi
		k := p.nChoices[abs]
		p.choiceCounts[vi] = k
		p.onebodyForVar[vi] = growF64(p.onebody[abs], k)
	}

	p.neighbors = make([][]neighbor, len(absNodes))
	keys := make([]pairKey, 0, len(retained))
	for key := range retained {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})
	for _, key := range keys {
		mat := retained[key]
		va, okA := p.varOfAbs[key.A]
		vb, okB := p.varOfAbs[key.B]
		if !okA || !okB {
			return fmt.Errorf("%w: internal: retained two-body block references a one-choice node", ErrInvalidConfig)
		}
		p.interactions = append(p.interactions, interaction{absA: key.A, absB: key.B, varA: va, varB: vb, matrix: mat})
		p.neighbors[va] = append(p.neighbors[va], neighbor{other: vb, selfIsRow: true, m: mat})
		p.neighbors[vb] = append(p.neighbors[vb], neighbor{other: va, selfIsRow: false, m: mat})
	}
	for vi := range p.neighbors {
		sort.Slice(p.neighbors[vi], func(i, j int) bool { return p.neighbors[vi][i].other < p.neighbors[vi][j].other })
	}

	for _, cf := range p.costFuncs {
		if err := cf.Finalize(absNodes); err != nil {
			return err
		}
	}

	p.twobody = nil
	p.onebody = nil
	p.nChoices = nil
	p.finalized = true
	return nil
}
