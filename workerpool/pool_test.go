package workerpool

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmitRunsAllJobs(t *testing.T) {
	p, err := New(4)
	require.NoError(t, err)

	var n int64
	jobs := make([]func() error, 10)
	for i := range jobs {
		jobs[i] = func() error {
			atomic.AddInt64(&n, 1)
			return nil
		}
	}
	sum := p.Submit(jobs)
	require.Equal(t, 10, sum.Completed)
	require.Equal(t, 0, sum.Failed)
	require.Nil(t, sum.FirstErr)
	require.EqualValues(t, 10, n)
}

func TestSubmitKeepsFirstErrorButRunsEverything(t *testing.T) {
	p, err := New(0)
	require.NoError(t, err)

	errA := errors.New("job a failed")
	errB := errors.New("job b failed")
	var ran int64
	jobs := []func() error{
		func() error { atomic.AddInt64(&ran, 1); return errA },
		func() error { atomic.AddInt64(&ran, 1); return nil },
		func() error { atomic.AddInt64(&ran, 1); return errB },
	}
	sum := p.Submit(jobs)
	require.EqualValues(t, 3, ran)
	require.Equal(t, 1, sum.Completed)
	require.Equal(t, 2, sum.Failed)
	require.Error(t, sum.FirstErr)
}

func TestNewRejectsNegativeThreads(t *testing.T) {
	_, err := New(-1)
	require.ErrorIs(t, err, ErrInvalidThreads)
}
