package fileio_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/cfnet/fileio"
	"github.com/katalvlaran/cfnet/tracer"
	"github.com/stretchr/testify/require"
)

const goodASCIIRecord = `[BEGIN ONEBODY SEQPOS/ROTINDEX/ENERGY]
0	1	10
0	2	0
1	1	0
1	2	10
[END ONEBODY SEQPOS/ROTINDEX/ENERGY]
[BEGIN TWOBODY SEQPOS1/ROTINDEX1/SEQPOS2/ROTINDEX2/ENERGY]
0	1	1	1	1
0	1	1	2	1
0	2	1	1	1
0	2	1	2	1
[END TWOBODY SEQPOS1/ROTINDEX1/SEQPOS2/ROTINDEX2/ENERGY]
`

func TestReadASCIIParsesOneRecordAndConvertsRotindex(t *testing.T) {
	problems, err := fileio.ReadASCII(strings.NewReader(goodASCIIRecord), tracer.Noop())
	require.NoError(t, err)
	require.Len(t, problems, 1)

	p := problems[0]
	require.Equal(t, 2, p.NumVariable())
	score, err := p.Absolute([]int{1, 0})
	require.NoError(t, err)
	require.InDelta(t, 1, score, 1e-9)
}

func TestReadASCIISkipsMalformedRecordAndKeepsGoodOnes(t *testing.T) {
	malformed := `[BEGIN ONEBODY SEQPOS/ROTINDEX/ENERGY]
0	1	not-a-number
[END ONEBODY SEQPOS/ROTINDEX/ENERGY]
[BEGIN TWOBODY SEQPOS1/ROTINDEX1/SEQPOS2/ROTINDEX2/ENERGY]
[END TWOBODY SEQPOS1/ROTINDEX1/SEQPOS2/ROTINDEX2/ENERGY]
`
	content := malformed + goodASCIIRecord
	problems, err := fileio.ReadASCII(strings.NewReader(content), tracer.Noop())
	require.NoError(t, err)
	require.Len(t, problems, 1)
}

func TestReadASCIIFailsWhenNoRecordSucceeds(t *testing.T) {
	malformed := `[BEGIN ONEBODY SEQPOS/ROTINDEX/ENERGY]
garbage
[END ONEBODY SEQPOS/ROTINDEX/ENERGY]
[BEGIN TWOBODY SEQPOS1/ROTINDEX1/SEQPOS2/ROTINDEX2/ENERGY]
[END TWOBODY SEQPOS1/ROTINDEX1/SEQPOS2/ROTINDEX2/ENERGY]
`
	_, err := fileio.ReadASCII(strings.NewReader(malformed), tracer.Noop())
	require.ErrorIs(t, err, fileio.ErrNoSuccessfulRecord)
}

func TestReadASCIINormalizesOutOfOrderSeqpos(t *testing.T) {
	swapped := `[BEGIN ONEBODY SEQPOS/ROTINDEX/ENERGY]
0	1	10
0	2	0
1	1	0
1	2	10
[END ONEBODY SEQPOS/ROTINDEX/ENERGY]
[BEGIN TWOBODY SEQPOS1/ROTINDEX1/SEQPOS2/ROTINDEX2/ENERGY]
1	1	0	1	1
1	2	0	1	1
1	1	0	2	1
1	2	0	2	1
[END TWOBODY SEQPOS1/ROTINDEX1/SEQPOS2/ROTINDEX2/ENERGY]
`
	problems, err := fileio.ReadASCII(strings.NewReader(swapped), tracer.Noop())
	require.NoError(t, err)
	require.Len(t, problems, 1)

	score, err := problems[0].Absolute([]int{1, 0})
	require.NoError(t, err)
	require.InDelta(t, 1, score, 1e-9)
}
