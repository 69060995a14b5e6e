package fileio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/cfnet/core"
)

// WriteSolution emits the tab-separated solution listing
// "variable_node_absolute_index\tchosen_choice_index", one line per
// variable node in ascending absolute-index order. One-choice (fixed)
// nodes are never variable nodes post-finalize, so they are omitted
// automatically.
func WriteSolution(w io.Writer, problem *core.Problem, choices []int) error {
	if len(choices) != problem.NumVariable() {
		return fmt.Errorf("%w: solution has %d entries, problem has %d variable nodes", core.ErrShapeMismatch, len(choices), problem.NumVariable())
	}

	bw := bufio.NewWriter(w)
	for vi, choice := range choices {
		if _, err := fmt.Fprintf(bw, "%d\t%d\n", problem.AbsoluteIndex(vi), choice); err != nil {
			return err
		}
	}
	return bw.Flush()
}
