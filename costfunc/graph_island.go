package costfunc

import (
	"sort"

	"github.com/katalvlaran/cfnet/core"
	"github.com/katalvlaran/cfnet/internal/densemat"
)

// nodePair identifies a two-node interaction block between two absolute node
// indices, always stored with A < B (mirroring core's pairKey discipline).
type nodePair struct {
	A, B int
}

// InteractionGraph is a static, choice-indexed adjacency over absolute node
// indices: for a node pair (a,b) it holds a K_a x K_b boolean matrix whose
// (ca,cb) entry is true iff choice ca at a interacts with choice cb at b.
// Two different choices at the same node pair may interact independently of
// one another; there is no requirement that interaction track equal choice
// values. GraphIslandCount uses it, restricted to variable nodes, to find
// connected components of currently-selected choices.
type InteractionGraph struct {
	zeroBased bool
	edges     map[nodePair]*densemat.Bool
}

// NewInteractionGraph constructs an empty adjacency. zeroBased controls
// whether absolute node indices recorded via AddEdge are taken as-is
// (true) or decremented by one before use (false), matching how the
// problem file the graph was built from indexes its nodes.
func NewInteractionGraph(zeroBased bool) *InteractionGraph {
	return &InteractionGraph{zeroBased: zeroBased, edges: make(map[nodePair]*densemat.Bool)}
}

func (g *InteractionGraph) normalize(abs int) int {
	if g.zeroBased {
		return abs
	}
	return abs - 1
}

// AddEdge declares that choice choiceA at absA interacts with choice choiceB
// at absB. The pair is stored canonically with the lower absolute index as
// the matrix row; choices are swapped alongside their nodes when absA>absB
// so the stored orientation stays consistent. A self-pair (absA==absB after
// normalization) is rejected silently, since no node interacts with itself.
func (g *InteractionGraph) AddEdge(absA, choiceA, absB, choiceB int) {
	a, b := g.normalize(absA), g.normalize(absB)
	ca, cb := choiceA, choiceB
	if a == b {
		return
	}
	if a > b {
		a, b, ca, cb = b, a, cb, ca
	}
	key := nodePair{A: a, B: b}
	mat := g.edges[key]
	if mat == nil {
		mat = &densemat.Bool{}
		g.edges[key] = mat
	}
	mat.Set(ca, cb, true)
}

// graphIslandScratch holds the flood-fill visited buffer and explicit
// stack so repeated Delta calls along a trajectory do not reallocate
// them.
type graphIslandScratch struct {
	visited []bool
	stack   []int
}

// islandNeighbor is one entry in a variable node's interacting-partner
// list: the other variable index, the choice-indexed matrix for that node
// pair, and whether this node is the matrix's row side (selfIsRow) or
// column side.
type islandNeighbor struct {
	other     int
	selfIsRow bool
	m         *densemat.Bool
}

// interacts reports whether selfChoice (at this neighbor's owning node) and
// otherChoice (at nb.other) are a declared interacting choice pair.
func (nb islandNeighbor) interacts(selfChoice, otherChoice int) bool {
	if nb.selfIsRow {
		return nb.m.At(selfChoice, otherChoice)
	}
	return nb.m.At(otherChoice, selfChoice)
}

// GraphIslandCount is the cost function whose raw value penalizes
// fragmentation of the currently-selected-choice subgraph: for every
// connected component of size s that is at least minIslandSize, it
// contributes (s - minIslandSize + 1); the cost function's value is
// -weight * (sum of those contributions), rewarding fewer/larger islands.
type GraphIslandCount struct {
	weight        float64
	graph         *InteractionGraph
	minIslandSize int

	finalized bool
	numVar    int
	varAdj    [][]islandNeighbor // variable index -> adjacent variable-node interactions
}

// NewGraphIslandCount constructs the cost function. weight must be
// non-negative and minIslandSize must be at least 1.
func NewGraphIslandCount(weight float64, graph *InteractionGraph, minIslandSize int) (*GraphIslandCount, error) {
	if weight < 0 || graph == nil || minIslandSize < 1 {
		return nil, ErrInvalidConfig
	}
	return &GraphIslandCount{weight: weight, graph: graph, minIslandSize: minIslandSize}, nil
}

// Weight returns the configured weight.
func (cf *GraphIslandCount) Weight() float64 { return cf.weight }

// NewScratch returns a fresh flood-fill buffer pair for this trajectory.
func (cf *GraphIslandCount) NewScratch() core.Scratch {
	return &graphIslandScratch{visited: make([]bool, cf.numVar)}
}

// Finalize restricts the interaction graph to edges between two variable
// nodes and builds the variable-index adjacency list, each entry carrying
// the choice-indexed matrix needed to test whether the pair's *currently
// selected* choices interact. An edge with at least one fixed endpoint
// plays no role in island counting: the flood fill only ever walks the
// candidate vector, which has no entry for a fixed node.
func (cf *GraphIslandCount) Finalize(variableNodeAbs []int) error {
	if cf.finalized {
		return core.ErrAlreadyFinalized
	}
	absToVar := make(map[int]int, len(variableNodeAbs))
	for vi, abs := range variableNodeAbs {
		absToVar[abs] = vi
	}
	cf.numVar = len(variableNodeAbs)
	cf.varAdj = make([][]islandNeighbor, cf.numVar)

	keys := make([]nodePair, 0, len(cf.graph.edges))
	for key := range cf.graph.edges {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})
	for _, key := range keys {
		mat := cf.graph.edges[key]
		va, okA := absToVar[key.A]
		vb, okB := absToVar[key.B]
		if !okA || !okB {
			continue
		}
		cf.varAdj[va] = append(cf.varAdj[va], islandNeighbor{other: vb, selfIsRow: true, m: mat})
		cf.varAdj[vb] = append(cf.varAdj[vb], islandNeighbor{other: va, selfIsRow: false, m: mat})
	}
	for vi := range cf.varAdj {
		sort.Slice(cf.varAdj[vi], func(i, j int) bool { return cf.varAdj[vi][i].other < cf.varAdj[vi][j].other })
	}
	cf.finalized = true
	return nil
}

// islandSizes runs an iterative (explicit-stack) depth-first flood fill
// over the variable-node adjacency, visiting only neighbors whose declared
// interacting-choice-pair matrix marks the pair's currently selected
// choices as interacting, and returns every component's size. visited/stack
// are caller-owned scratch buffers, reset in place.
func (cf *GraphIslandCount) islandSizes(sol []int, visited []bool, stack []int) []int {
	for i := range visited {
		visited[i] = false
	}
	var sizes []int
	for start := 0; start < cf.numVar; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		stack = append(stack[:0], start)
		size := 0
		for len(stack) > 0 {
			n := len(stack) - 1
			node := stack[n]
			stack = stack[:n]
			size++
			for _, nb := range cf.varAdj[node] {
				if visited[nb.other] {
					continue
				}
				if !nb.interacts(sol[node], sol[nb.other]) {
					continue
				}
				visited[nb.other] = true
				stack = append(stack, nb.other)
			}
		}
		sizes = append(sizes, size)
	}
	return sizes
}

func (cf *GraphIslandCount) rawScore(sol []int, visited []bool, stack []int) float64 {
	var acc float64
	for _, s := range cf.islandSizes(sol, visited, stack) {
		if s >= cf.minIslandSize {
			acc += float64(s - cf.minIslandSize + 1)
		}
	}
	return acc
}

// Absolute returns -weight * (sum of qualifying island contributions).
func (cf *GraphIslandCount) Absolute(sol []int) (float64, error) {
	if !cf.finalized {
		return 0, ErrNotFinalized
	}
	if len(sol) != cf.numVar {
		return 0, ErrShapeMismatch
	}
	visited := make([]bool, cf.numVar)
	var stack []int
	return -cf.weight * cf.rawScore(sol, visited, stack), nil
}

// Delta recomputes the flood fill fully for both old and new, since a
// single changed choice can merge or split islands anywhere reachable
// from it; it uses the scratch's buffers to avoid reallocating them
// across calls in the same trajectory.
func (cf *GraphIslandCount) Delta(old, newSol []int, scratch core.Scratch) (float64, error) {
	if !cf.finalized {
		return 0, ErrNotFinalized
	}
	if len(old) != cf.numVar || len(newSol) != cf.numVar {
		return 0, ErrShapeMismatch
	}
	gs, _ := scratch.(*graphIslandScratch)
	var visited []bool
	var stack []int
	if gs != nil {
		if len(gs.visited) != cf.numVar {
			gs.visited = make([]bool, cf.numVar)
		}
		// Every node is pushed at most once per fill, so a stack with
		// capacity numVar is never regrown and its backing array is reused.
		if cap(gs.stack) < cf.numVar {
			gs.stack = make([]int, 0, cf.numVar)
		}
		visited, stack = gs.visited, gs.stack
	} else {
		visited = make([]bool, cf.numVar)
	}
	oldScore := cf.rawScore(old, visited, stack)
	newScore := cf.rawScore(newSol, visited, stack)
	if gs != nil {
		gs.visited = visited
	}
	return -cf.weight * (newScore - oldScore), nil
}
