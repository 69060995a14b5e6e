package fileio

import (
	"bufio"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/cfnet/core"
	"github.com/katalvlaran/cfnet/tracer"
)

const (
	binaryBegin = "[BEGIN_BINARY_GRAPH_SUMMARY]"
	binaryEnd   = "[END_BINARY_GRAPH_SUMMARY]"
)

// ReadBinary parses the packed-binary record format: each logical line
// between BEGIN_BINARY_GRAPH_SUMMARY/END_BINARY_GRAPH_SUMMARY is payload
// bytes encoded 3-for-4 (standard base64, unpadded), carrying little-endian
// fixed-width integers and floats. A malformed record is discarded with a
// tracer warning and scanning resumes at the next BEGIN marker; ReadBinary
// fails only if zero records parse successfully.
func ReadBinary(r io.Reader, t tracer.Tracer) ([]*core.Problem, error) {
	if t == nil {
		t = tracer.Noop()
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	var problems []*core.Problem

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line != binaryBegin {
			t.Warnf("binary", "%s", (&ParseError{Line: lineNo, Msg: fmt.Sprintf("expected %s, got %q", binaryBegin, line)}).Error())
			continue
		}

		var body []string
		recordStart := lineNo
		ok := false
		for scanner.Scan() {
			lineNo++
			inner := strings.TrimSpace(scanner.Text())
			if inner == "" {
				continue
			}
			if inner == binaryEnd {
				ok = true
				break
			}
			body = append(body, inner)
		}
		if !ok {
			t.Warnf("binary", "%s", (&ParseError{Line: recordStart, Msg: "missing END_BINARY_GRAPH_SUMMARY marker"}).Error())
			break
		}

		p, err := decodeBinaryRecord(body)
		if err != nil {
			t.Warnf("binary", "%s", (&ParseError{Line: recordStart, Msg: err.Error()}).Error())
			continue
		}
		problems = append(problems, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(problems) == 0 {
		return nil, ErrNoSuccessfulRecord
	}
	return problems, nil
}

func decodeBinaryRecord(body []string) (*core.Problem, error) {
	if len(body) != 6 && len(body) != 7 {
		return nil, fmt.Errorf("binary record wants 6 or 7 packed lines, got %d", len(body))
	}

	nVar, choiceCountWidth, err := twoUints(body[0])
	if err != nil {
		return nil, fmt.Errorf("line 2: %w", err)
	}
	choiceCountBytes, err := decodeLine(body[1])
	if err != nil {
		return nil, fmt.Errorf("line 3: %w", err)
	}
	choiceCounts, err := decodeUintArray(choiceCountBytes, int(choiceCountWidth), int(nVar))
	if err != nil {
		return nil, fmt.Errorf("line 3: %w", err)
	}

	nOneBody, oneBodyWidth, err := twoUints(body[2])
	if err != nil {
		return nil, fmt.Errorf("line 4: %w", err)
	}
	oneBodyBytes, err := decodeLine(body[3])
	if err != nil {
		return nil, fmt.Errorf("line 5: %w", err)
	}
	oneBodyValues, err := decodeFloatArray(oneBodyBytes, int(oneBodyWidth), int(nOneBody))
	if err != nil {
		return nil, fmt.Errorf("line 5: %w", err)
	}

	var expectedOneBody uint64
	for _, k := range choiceCounts {
		expectedOneBody += k
	}
	if expectedOneBody != nOneBody {
		return nil, fmt.Errorf("line 5: one-body count %d does not match sum of choice counts %d", nOneBody, expectedOneBody)
	}

	nPairs, indexWidth, penaltyWidth, err := threeUints(body[4])
	if err != nil {
		return nil, fmt.Errorf("line 6: %w", err)
	}
	pairBytes, err := decodeLine(body[5])
	if err != nil {
		return nil, fmt.Errorf("line 7: %w", err)
	}

	prefix := make([]uint64, len(choiceCounts)+1)
	for i, k := range choiceCounts {
		prefix[i+1] = prefix[i] + k
	}

	absOfVar := make([]int, nVar)
	for vi := range absOfVar {
		absOfVar[vi] = vi
	}
	if len(body) == 7 {
		abs, err := parseIntLine(body[6])
		if err != nil {
			return nil, fmt.Errorf("line 8: %w", err)
		}
		if len(abs) != int(nVar) {
			return nil, fmt.Errorf("line 8: absolute-index list has %d entries, want %d", len(abs), nVar)
		}
		absOfVar = abs
	}

	p := core.NewProblem()

	offset := 0
	for vi, k := range choiceCounts {
		for c := uint64(0); c < k; c++ {
			if err := p.SetOneBody(absOfVar[vi], int(c), oneBodyValues[offset]); err != nil {
				return nil, err
			}
			offset++
		}
	}

	tupleWidth := 2*int(indexWidth) + int(penaltyWidth)
	if len(pairBytes) < int(nPairs)*tupleWidth {
		return nil, fmt.Errorf("line 7: packed tuple data too short for %d pairs", nPairs)
	}
	for i := uint64(0); i < nPairs; i++ {
		off := int(i) * tupleWidth
		g1 := decodeUintLE(pairBytes[off : off+int(indexWidth)])
		off += int(indexWidth)
		g2 := decodeUintLE(pairBytes[off : off+int(indexWidth)])
		off += int(indexWidth)
		penalty, err := decodeFloatLE(pairBytes[off:off+int(penaltyWidth)], int(penaltyWidth))
		if err != nil {
			return nil, fmt.Errorf("line 7: %w", err)
		}

		vi1, c1, err := globalChoiceIndex(prefix, g1)
		if err != nil {
			return nil, fmt.Errorf("line 7: choice1 %d: %w", g1, err)
		}
		vi2, c2, err := globalChoiceIndex(prefix, g2)
		if err != nil {
			return nil, fmt.Errorf("line 7: choice2 %d: %w", g2, err)
		}
		if vi1 == vi2 {
			return nil, fmt.Errorf("line 7: two-body pair references the same variable node twice")
		}

		a, b, ca, cb := absOfVar[vi1], absOfVar[vi2], c1, c2
		if a > b {
			a, b, ca, cb = b, a, cb, ca
		}
		if err := p.SetTwoBody(a, b, ca, cb, penalty); err != nil {
			return nil, err
		}
	}

	if err := p.Finalize(); err != nil {
		return nil, err
	}
	return p, nil
}

// globalChoiceIndex recovers (variable_node, local_choice) for a global
// choice index g by locating the prefix-sum bucket it falls in.
func globalChoiceIndex(prefix []uint64, g uint64) (int, int, error) {
	vi := sort.Search(len(prefix)-1, func(i int) bool { return prefix[i+1] > g })
	if vi >= len(prefix)-1 || g < prefix[vi] || g >= prefix[vi+1] {
		return 0, 0, fmt.Errorf("global choice index out of range")
	}
	return vi, int(g - prefix[vi]), nil
}

func twoUints(line string) (uint64, uint64, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("wants 2 decimal fields, got %d", len(fields))
	}
	a, err1 := strconv.ParseUint(fields[0], 10, 64)
	b, err2 := strconv.ParseUint(fields[1], 10, 64)
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("malformed decimal fields: %q", line)
	}
	return a, b, nil
}

func threeUints(line string) (uint64, uint64, uint64, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("wants 3 decimal fields, got %d", len(fields))
	}
	a, err1 := strconv.ParseUint(fields[0], 10, 64)
	b, err2 := strconv.ParseUint(fields[1], 10, 64)
	c, err3 := strconv.ParseUint(fields[2], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, fmt.Errorf("malformed decimal fields: %q", line)
	}
	return a, b, c, nil
}

func parseIntLine(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("malformed integer %q", f)
		}
		out[i] = v
	}
	return out, nil
}

// decodeLine decodes one base64-like packed-payload line (standard, raw,
// unpadded base64, matching the 3-bytes-for-4-characters contract).
func decodeLine(line string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.TrimSpace(line))
}

func decodeUintArray(b []byte, width, n int) ([]uint64, error) {
	if width <= 0 || width > 8 {
		return nil, fmt.Errorf("unsupported integer bytesize %d", width)
	}
	if len(b) < width*n {
		return nil, fmt.Errorf("packed integer array too short: want %d bytes, got %d", width*n, len(b))
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = decodeUintLE(b[i*width : (i+1)*width])
	}
	return out, nil
}

func decodeUintLE(b []byte) uint64 {
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:])
}

func decodeFloatArray(b []byte, width, n int) ([]float64, error) {
	if len(b) < width*n {
		return nil, fmt.Errorf("packed float array too short: want %d bytes, got %d", width*n, len(b))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := decodeFloatLE(b[i*width:(i+1)*width], width)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func decodeFloatLE(b []byte, width int) (float64, error) {
	switch width {
	case 4:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b))), nil
	case 8:
		return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
	default:
		return 0, fmt.Errorf("unsupported float bytesize %d", width)
	}
}
