package greedy

import (
	"github.com/katalvlaran/cfnet/core"
	"github.com/katalvlaran/cfnet/solution"
	"github.com/katalvlaran/cfnet/workerpool"
)

// Options configures an Optimizer.
type Options struct {
	// Threads caps concurrent (problem, starting-vector) workers; 0 means
	// no cap.
	Threads int
}

// Optimizer runs Jacobi-style greedy descent from a set of starting
// vectors, one trajectory per vector, in parallel.
type Optimizer struct {
	opts Options
	pool *workerpool.Pool
}

// New constructs an Optimizer.
func New(opts Options) (*Optimizer, error) {
	if opts.Threads < 0 {
		return nil, ErrInvalidConfig
	}
	pool, err := workerpool.New(opts.Threads)
	if err != nil {
		return nil, err
	}
	return &Optimizer{opts: opts, pool: pool}, nil
}

// Result is one trajectory's terminal state.
type Result struct {
	Choices []int
	Score   float64
}

// Run descends from every starting vector independently and in parallel,
// returning one Result per starting vector in input order. If starting is
// empty, the problem's own registered starting solutions are used instead;
// a shape-mismatched starting vector (caller-supplied or from the problem)
// fails that trajectory's job, and the first such error is returned.
func (g *Optimizer) Run(problem *core.Problem, starting [][]int) ([]Result, error) {
	if len(starting) == 0 {
		starting = problem.StartingSolutions()
	}
	results := make([]Result, len(starting))
	jobs := make([]func() error, len(starting))
	for idx, start := range starting {
		idx, start := idx, start
		jobs[idx] = func() error {
			choices, score, err := descend(problem, start)
			if err != nil {
				return err
			}
			results[idx] = Result{Choices: choices, Score: score}
			return nil
		}
	}
	sum := g.pool.Submit(jobs)
	if sum.FirstErr != nil {
		return nil, sum.FirstErr
	}
	return results, nil
}

// MergeResults offers every result to dst with the given seenCount
// (typically 1 for a standalone run, or a carried-over times_seen
// multiplier for a refinement pass) and bound maxStore.
func MergeResults(dst *solution.SolutionSet, results []Result, seenCount, maxStore int) error {
	for _, r := range results {
		if err := dst.MergeOne(r.Choices, r.Score, seenCount, maxStore); err != nil {
			return err
		}
	}
	return nil
}

// descend runs one trajectory: repeatedly find the single (variable,
// choice) change with the lowest resulting score and commit it, until no
// change improves on the current score. Ties are broken by the lowest
// (i,c) encountered first, since only a strict improvement replaces the
// current best.
func descend(problem *core.Problem, start []int) ([]int, float64, error) {
	if len(start) != problem.NumVariable() {
		return nil, 0, core.ErrShapeMismatch
	}
	cur := append([]int(nil), start...)
	curScore, err := problem.Absolute(cur)
	if err != nil {
		return nil, 0, err
	}

	scratch := problem.NewScratchSet()
	trial := append([]int(nil), cur...)

	for {
		bestI, bestC := -1, -1
		bestScore := curScore

		for i := 0; i < len(cur); i++ {
			orig := cur[i]
			k := problem.ChoiceCount(i)
			for c := 0; c < k; c++ {
				if c == orig {
					continue
				}
				trial[i] = c
				delta, err := problem.Delta(cur, trial, scratch)
				if err != nil {
					return nil, 0, err
				}
				if trialScore := curScore + delta; trialScore < bestScore {
					bestScore, bestI, bestC = trialScore, i, c
				}
			}
			trial[i] = orig
		}

		if bestI < 0 {
			break
		}
		cur[bestI] = bestC
		trial[bestI] = bestC
		curScore = bestScore
	}

	return cur, curScore, nil
}
