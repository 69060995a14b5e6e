package solution

import "sync"

// Solution is one scored candidate choice vector.
type Solution struct {
	Choices   []int
	Score     float64
	TimesSeen int
}

func sameChoices(a, b []int) bool {
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

type entry struct {
	Solution
	seq uint64
}

// SolutionSet keeps the K lowest-scoring distinct choice vectors observed
// across a run, for some K supplied per call as max_store. Two candidates
// are the same solution iff their Choices are element-wise equal; a
// repeat sighting does not grow the set, it only updates the stored
// entry's TimesSeen. Safe for concurrent use by multiple trajectory
// goroutines: every mutation is taken under a single mutex, mirroring the
// per-problem solution set's "serialized by a dedicated mutex" contract.
type SolutionSet struct {
	mu      sync.Mutex
	entries []entry
	nextSeq uint64
}

// NewSolutionSet returns an empty set.
func NewSolutionSet() *SolutionSet {
	return &SolutionSet{}
}

// worseIndex returns the index of the entry that should be evicted first
// if a better candidate arrives and the set is at capacity: the highest
// score (primary), then the fewest times_seen (a less-often-rediscovered
// solution is less valuable to keep), then the most recently inserted
// (keep the longer-lived entry when fully tied).
func worseIndex(entries []entry) int {
	worst := 0
	for i := 1; i < len(entries); i++ {
		a, b := entries[i], entries[worst]
		switch {
		case a.Score != b.Score:
			if a.Score > b.Score {
				worst = i
			}
		case a.TimesSeen != b.TimesSeen:
			if a.TimesSeen < b.TimesSeen {
				worst = i
			}
		default:
			if a.seq > b.seq {
				worst = i
			}
		}
	}
	return worst
}

// MergeOne offers one candidate to the set. seenCount is not added to an
// existing match's times_seen, it replaces it: ordinary trajectory
// call sites track their own running per-candidate sighting counts and
// pass the updated count each time, and greedy-refinement call sites pass
// the carried-over multiplier directly. On a non-match, seenCount becomes
// the new entry's initial times_seen.
func (s *SolutionSet) MergeOne(choices []int, score float64, seenCount, maxStore int) error {
	if maxStore <= 0 {
		return ErrInvalidMaxStore
	}
	if len(choices) == 0 {
		return ErrEmptyChoices
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mergeOneLocked(choices, score, seenCount, maxStore)
	return nil
}

func (s *SolutionSet) mergeOneLocked(choices []int, score float64, seenCount, maxStore int) {
	for i := range s.entries {
		if sameChoices(s.entries[i].Choices, choices) {
			s.entries[i].Score = score
			s.entries[i].TimesSeen = seenCount
			return
		}
	}

	cand := entry{
		Solution: Solution{Choices: append([]int(nil), choices...), Score: score, TimesSeen: seenCount},
		seq:      s.nextSeq,
	}
	s.nextSeq++

	if len(s.entries) < maxStore {
		s.entries = append(s.entries, cand)
		return
	}

	wi := worseIndex(s.entries)
	if cand.Score < s.entries[wi].Score {
		s.entries[wi] = cand
	}
}

// MergeMany offers a batch of candidates under a single lock acquisition.
func (s *SolutionSet) MergeMany(candidates []Solution, maxStore int) error {
	if maxStore <= 0 {
		return ErrInvalidMaxStore
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range candidates {
		if len(c.Choices) == 0 {
			return ErrEmptyChoices
		}
		s.mergeOneLocked(c.Choices, c.Score, c.TimesSeen, maxStore)
	}
	return nil
}

// Replace discards everything currently stored and installs the given
// solutions verbatim, with no max_store trimming: callers (e.g. the
// greedy-refinement "refine_top" merge mode) are expected to supply at
// most max_store entries.
func (s *SolutionSet) Replace(solutions []Solution) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = s.entries[:0]
	for _, sol := range solutions {
		s.entries = append(s.entries, entry{
			Solution: Solution{Choices: append([]int(nil), sol.Choices...), Score: sol.Score, TimesSeen: sol.TimesSeen},
			seq:      s.nextSeq,
		})
		s.nextSeq++
	}
}

// Solutions returns a snapshot of the stored solutions ordered by
// ascending score.
func (s *SolutionSet) Solutions() []Solution {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Solution, len(s.entries))
	for i, e := range s.entries {
		out[i] = Solution{Choices: append([]int(nil), e.Choices...), Score: e.Score, TimesSeen: e.TimesSeen}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Score < out[j-1].Score; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Len returns the number of distinct solutions currently stored.
func (s *SolutionSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
