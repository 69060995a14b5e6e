package workerpool

import "golang.org/x/sync/errgroup"

// Summary reports the outcome of one Submit call.
type Summary struct {
	Completed int
	Failed    int
	FirstErr  error
}

// Pool runs independent job closures with a bounded number of concurrent
// workers, built on errgroup.Group's SetLimit.
type Pool struct {
	threads int
}

// New returns a pool capped at threads concurrent workers; threads==0
// means unbounded (every submitted job may run at once).
func New(threads int) (*Pool, error) {
	if threads < 0 {
		return nil, ErrInvalidThreads
	}
	return &Pool{threads: threads}, nil
}

// Submit runs every job to completion, waits for all of them, and
// returns a Summary. A job's error does not stop the other jobs already
// running or queued; only the first error encountered is kept.
func (p *Pool) Submit(jobs []func() error) Summary {
	var g errgroup.Group
	if p.threads > 0 {
		g.SetLimit(p.threads)
	}

	results := make([]error, len(jobs))
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			results[i] = job()
			return nil
		})
	}
	_ = g.Wait()

	sum := Summary{}
	for _, err := range results {
		if err != nil {
			sum.Failed++
			if sum.FirstErr == nil {
				sum.FirstErr = err
			}
		} else {
			sum.Completed++
		}
	}
	return sum
}
