package montecarlo

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/katalvlaran/cfnet/annealing"
	"github.com/katalvlaran/cfnet/core"
	"github.com/katalvlaran/cfnet/greedy"
	"github.com/katalvlaran/cfnet/rng"
	"github.com/katalvlaran/cfnet/solution"
	"github.com/katalvlaran/cfnet/tracer"
	"github.com/katalvlaran/cfnet/workerpool"
)

// Optimizer runs Metropolis-Hastings simulated annealing trajectories,
// independent attempts in parallel, per problem.
type Optimizer struct {
	opts Options
	pool *workerpool.Pool
	root *rng.Facility
	trc  tracer.Tracer
}

// New validates opts and constructs an Optimizer. If opts.AnnealingSchedule
// implements annealing.FinalStepSetter, its final step is set to
// opts.StepsPerAttempt once here.
func New(opts Options) (*Optimizer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if setter, ok := opts.AnnealingSchedule.(annealing.FinalStepSetter); ok {
		if err := setter.SetFinalStep(opts.StepsPerAttempt); err != nil {
			return nil, err
		}
	}
	pool, err := workerpool.New(opts.Threads)
	if err != nil {
		return nil, err
	}
	trc := opts.Tracer
	if trc == nil {
		trc = tracer.Noop()
	}
	return &Optimizer{opts: opts, pool: pool, root: rng.New(opts.Seed), trc: trc}, nil
}

func choiceKey(sol []int) string {
	var b strings.Builder
	for _, c := range sol {
		b.WriteString(strconv.Itoa(c))
		b.WriteByte(',')
	}
	return b.String()
}

// Run executes attempts_per_problem independent trajectories per problem,
// in parallel, merges each trajectory's local solution set into a
// per-problem solution set, then (if configured) runs the refine_top /
// refine_top_keeping_original post-run greedy refinement pass. Returns one
// SolutionSet per input problem, in order.
func (m *Optimizer) Run(problems []*core.Problem) ([]*solution.SolutionSet, error) {
	perProblem := make([]*solution.SolutionSet, len(problems))
	for i := range perProblem {
		perProblem[i] = solution.NewSolutionSet()
	}

	var jobs []func() error
	for pi, problem := range problems {
		// Starting states registered on the problem are preferred over a
		// random start; when present, attempts are assigned one cyclically
		// so every attempt still runs even if there are fewer starting
		// states than attempts_per_problem.
		startingStates := problem.StartingSolutions()
		for a := 0; a < m.opts.AttemptsPerProblem; a++ {
			pi, problem, a := pi, problem, a
			var start []int
			if len(startingStates) > 0 {
				start = startingStates[a%len(startingStates)]
			}
			facility := m.root.Derive(uint64(pi)*1000003 + uint64(a) + 1)
			jobs = append(jobs, func() error {
				trajectoryID := uuid.New().String()
				m.trc.Infof("montecarlo", "trajectory %s starting (problem %d, attempt %d)", trajectoryID, pi, a)
				local, err := m.runAttempt(problem, facility, start)
				if err != nil {
					m.trc.Warnf("montecarlo", "trajectory %s failed: %v", trajectoryID, err)
					return err
				}
				m.trc.Infof("montecarlo", "trajectory %s finished, %d solutions stored", trajectoryID, local.Len())
				return perProblem[pi].MergeMany(local.Solutions(), m.opts.SolutionsPerProblem)
			})
		}
	}
	sum := m.pool.Submit(jobs)
	if sum.FirstErr != nil {
		return nil, sum.FirstErr
	}

	if m.opts.DoGreedyRefinement && m.opts.GreedyRefinementMode != RefineAll {
		for pi, problem := range problems {
			if err := m.postRunRefine(problem, perProblem[pi]); err != nil {
				return nil, err
			}
		}
	}
	return perProblem, nil
}

// runAttempt executes one trajectory to completion and returns its local
// solution set, already refined in place if GreedyRefinementMode is
// RefineAll. start, when non-nil, is a starting state registered on the
// problem (preferred over sampling a fresh uniform-random start); its
// length is validated against the problem's variable count.
func (m *Optimizer) runAttempt(problem *core.Problem, facility *rng.Facility, start []int) (*solution.SolutionSet, error) {
	v := problem.NumVariable()
	cur := make([]int, v)
	if start != nil {
		if len(start) != v {
			return nil, core.ErrShapeMismatch
		}
		copy(cur, start)
	} else {
		for i := range cur {
			c, err := facility.UniformInt(problem.ChoiceCount(i))
			if err != nil {
				return nil, err
			}
			cur[i] = c
		}
	}
	lastScore, err := problem.Absolute(cur)
	if err != nil {
		return nil, err
	}

	local := solution.NewSolutionSet()
	seenCounts := make(map[string]int)
	seenCounts[choiceKey(cur)] = 1
	if err := local.MergeOne(cur, lastScore, 1, m.opts.SolutionsPerProblem); err != nil {
		return nil, err
	}

	m.opts.AnnealingSchedule.Reset()
	lambda := -math.Log(m.opts.POneMutation)

	scratch := problem.NewScratchSet()
	cand := append([]int(nil), cur...)
	stepsSinceRecompute := 0

	for step := 0; step < m.opts.StepsPerAttempt; step++ {
		var touched []int
		if m.opts.UseMultiMutation {
			mCount := facility.MultiMutationCount(lambda, v)
			idxs, err := facility.SampleWithoutReplacement(v, mCount)
			if err != nil {
				return nil, err
			}
			touched = idxs
		} else {
			i, err := facility.UniformInt(v)
			if err != nil {
				return nil, err
			}
			touched = []int{i}
		}
		for _, i := range touched {
			nc, err := facility.ChoiceExcluding(cur[i], problem.ChoiceCount(i))
			if err != nil {
				return nil, err
			}
			cand[i] = nc
		}

		delta, err := problem.Delta(cur, cand, scratch)
		if err != nil {
			return nil, err
		}
		candScore := lastScore + delta

		if m.opts.StorageMode == CheckAtEveryStep {
			k := choiceKey(cand)
			seenCounts[k]++
			if err := local.MergeOne(cand, candScore, seenCounts[k], m.opts.SolutionsPerProblem); err != nil {
				return nil, err
			}
		}

		temperature := m.opts.AnnealingSchedule.Temperature(step)
		if facility.Metropolis(delta, temperature) {
			copy(cur, cand)
			lastScore = candScore
			stepsSinceRecompute++
			if m.opts.RecomputeFromScratchEveryNSteps > 0 && stepsSinceRecompute >= m.opts.RecomputeFromScratchEveryNSteps {
				recomputed, err := problem.Absolute(cur)
				if err != nil {
					return nil, err
				}
				lastScore = recomputed
				stepsSinceRecompute = 0
			}
			if m.opts.StorageMode == CheckOnAcceptance {
				k := choiceKey(cur)
				seenCounts[k]++
				if err := local.MergeOne(cur, lastScore, seenCounts[k], m.opts.SolutionsPerProblem); err != nil {
					return nil, err
				}
			}
		} else {
			copy(cand, cur)
		}
	}

	if m.opts.DoGreedyRefinement && m.opts.GreedyRefinementMode == RefineAll {
		if err := m.refineInto(problem, local, local.Solutions()); err != nil {
			return nil, err
		}
	}

	return local, nil
}

// refineInto runs one greedy job per stored solution and merges the
// refined output back into dst, carrying over each original's TimesSeen
// as the refined entry's seen-count (the resolved "replace, not add"
// semantics).
func (m *Optimizer) refineInto(problem *core.Problem, dst *solution.SolutionSet, stored []solution.Solution) error {
	refined, err := m.refine(problem, stored)
	if err != nil {
		return err
	}
	return dst.MergeMany(refined, m.opts.SolutionsPerProblem)
}

func (m *Optimizer) refine(problem *core.Problem, stored []solution.Solution) ([]solution.Solution, error) {
	if len(stored) == 0 {
		return nil, nil
	}
	g, err := greedy.New(greedy.Options{Threads: m.opts.Threads})
	if err != nil {
		return nil, err
	}
	starting := make([][]int, len(stored))
	for i, s := range stored {
		starting[i] = s.Choices
	}
	results, err := g.Run(problem, starting)
	if err != nil {
		return nil, err
	}
	refined := make([]solution.Solution, len(results))
	for i, r := range results {
		refined[i] = solution.Solution{Choices: r.Choices, Score: r.Score, TimesSeen: stored[i].TimesSeen}
	}
	return refined, nil
}

// postRunRefine implements the after-all-trajectories refine_top /
// refine_top_keeping_original pass: one greedy job per currently stored
// solution, then either wholesale replacement or merge-append.
func (m *Optimizer) postRunRefine(problem *core.Problem, set *solution.SolutionSet) error {
	stored := set.Solutions()
	refined, err := m.refine(problem, stored)
	if err != nil {
		return err
	}
	if m.opts.GreedyRefinementMode == RefineTop {
		set.Replace(refined)
		return nil
	}
	return set.MergeMany(refined, m.opts.SolutionsPerProblem)
}
