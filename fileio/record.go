package fileio

import "github.com/katalvlaran/cfnet/core"

type onebodyEntry struct {
	node, choice int
	energy       float64
}

type twobodyEntry struct {
	nodeA, nodeB, choiceA, choiceB int
	energy                         float64
}

// buildProblem constructs and finalizes a Problem from one record's
// accumulated entries. A two-body entry with nodeA > nodeB has both its
// node and choice roles swapped together, preserving matrix orientation,
// to satisfy SetTwoBody's a < b contract.
func buildProblem(onebodies []onebodyEntry, twobodies []twobodyEntry) (*core.Problem, error) {
	p := core.NewProblem()
	for _, e := range onebodies {
		if err := p.SetOneBody(e.node, e.choice, e.energy); err != nil {
			return nil, err
		}
	}
	for _, e := range twobodies {
		a, b, ca, cb := e.nodeA, e.nodeB, e.choiceA, e.choiceB
		if a == b {
			return nil, core.ErrInvalidKey
		}
		if a > b {
			a, b, ca, cb = b, a, cb, ca
		}
		if err := p.SetTwoBody(a, b, ca, cb, e.energy); err != nil {
			return nil, err
		}
	}
	if err := p.Finalize(); err != nil {
		return nil, err
	}
	return p, nil
}
