package registry

import (
	"sync"

	"github.com/katalvlaran/cfnet/core"
)

// ProblemCreator instantiates a fresh, unfinalized problem container.
type ProblemCreator func() (*core.Problem, error)

// Registry resolves a problem-class name or a solver-class name into a
// ProblemCreator. Looking a solver up returns the creator for the first
// problem class registered as compatible with it.
type Registry interface {
	ForProblem(name string) (ProblemCreator, error)
	ForSolver(name string) (ProblemCreator, error)
}

// Static is the concrete, map-backed Registry: problem classes and
// solver-to-compatible-problems associations are registered up front,
// then looked up by name at run time.
type Static struct {
	mu             sync.RWMutex
	problems       map[string]ProblemCreator
	solverProblems map[string][]string
}

// NewStatic returns an empty registry.
func NewStatic() *Static {
	return &Static{
		problems:       make(map[string]ProblemCreator),
		solverProblems: make(map[string][]string),
	}
}

// RegisterProblem associates a problem-class name with a creator.
func (s *Static) RegisterProblem(name string, creator ProblemCreator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.problems[name]; exists {
		return ErrAlreadyRegistered
	}
	s.problems[name] = creator
	return nil
}

// RegisterSolver records which problem classes (in preference order) are
// compatible with a solver-class name.
func (s *Static) RegisterSolver(solverName string, compatibleProblems ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.solverProblems[solverName]; exists {
		return ErrAlreadyRegistered
	}
	s.solverProblems[solverName] = append([]string(nil), compatibleProblems...)
	return nil
}

// ForProblem returns the named problem class's creator.
func (s *Static) ForProblem(name string) (ProblemCreator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.problems[name]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// ForSolver returns the creator of the first problem class registered as
// compatible with the named solver.
func (s *Static) ForSolver(name string) (ProblemCreator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names, ok := s.solverProblems[name]
	if !ok {
		return nil, ErrNotFound
	}
	for _, n := range names {
		if c, ok := s.problems[n]; ok {
			return c, nil
		}
	}
	return nil, ErrNotFound
}
