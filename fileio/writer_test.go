package fileio_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/cfnet/core"
	"github.com/katalvlaran/cfnet/fileio"
	"github.com/stretchr/testify/require"
)

func TestWriteSolutionOmitsOneChoiceNodes(t *testing.T) {
	p := core.NewProblem()
	require.NoError(t, p.SetOneBody(0, 0, 1))
	require.NoError(t, p.SetOneBody(0, 1, 2))
	require.NoError(t, p.SetOneBody(2, 0, 1))
	require.NoError(t, p.SetOneBody(2, 1, 2))
	require.NoError(t, p.SetOneBody(5, 0, 0)) // one-choice node, folded away
	require.NoError(t, p.Finalize())

	var sb strings.Builder
	require.NoError(t, fileio.WriteSolution(&sb, p, []int{1, 0}))
	require.Equal(t, "0\t1\n2\t0\n", sb.String())
}

func TestWriteSolutionRejectsShapeMismatch(t *testing.T) {
	p := core.NewProblem()
	require.NoError(t, p.SetOneBody(0, 0, 1))
	require.NoError(t, p.SetOneBody(0, 1, 2))
	require.NoError(t, p.Finalize())

	err := fileio.WriteSolution(&strings.Builder{}, p, []int{0, 0})
	require.ErrorIs(t, err, core.ErrShapeMismatch)
}
