package fileio

import (
	"path/filepath"
	"strings"

	"github.com/katalvlaran/cfnet/core"
	"github.com/katalvlaran/cfnet/registry"
)

// Instantiate resolves exactly one of problemClassName / solverClassName
// against reg and returns a fresh, unfinalized Problem. Given only a
// solver-class name it asks reg for any problem class compatible with that
// solver. Supplying both or neither is ErrNameSelection.
func Instantiate(reg registry.Registry, problemClassName, solverClassName string) (*core.Problem, error) {
	haveProblem := problemClassName != ""
	haveSolver := solverClassName != ""
	if haveProblem == haveSolver {
		return nil, ErrNameSelection
	}

	var creator registry.ProblemCreator
	var err error
	if haveProblem {
		creator, err = reg.ForProblem(problemClassName)
	} else {
		creator, err = reg.ForSolver(solverClassName)
	}
	if err != nil {
		return nil, err
	}
	return creator()
}

// CheckExtension validates that path names a file with the only advertised
// extension, "txt". The packed-binary interpreter shares the same
// extension contract as the ASCII one; the source format's vestigial
// "pdb" extension is not supported.
func CheckExtension(path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !strings.EqualFold(ext, "txt") {
		return ErrUnsupportedExtension
	}
	return nil
}
