package fileio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cfnet/core"
	"github.com/katalvlaran/cfnet/tracer"
)

const (
	asciiBeginOneBody = "[BEGIN ONEBODY SEQPOS/ROTINDEX/ENERGY]"
	asciiEndOneBody   = "[END ONEBODY SEQPOS/ROTINDEX/ENERGY]"
	asciiBeginTwoBody = "[BEGIN TWOBODY SEQPOS1/ROTINDEX1/SEQPOS2/ROTINDEX2/ENERGY]"
	asciiEndTwoBody   = "[END TWOBODY SEQPOS1/ROTINDEX1/SEQPOS2/ROTINDEX2/ENERGY]"
)

// asciiPhase tracks where the scanner is relative to the current record's
// block structure.
type asciiPhase int

const (
	phaseOutside asciiPhase = iota
	phaseOneBody
	phaseTwoBody
)

// ReadASCII parses the tab-separated ASCII record format: one or more
// records, each a [BEGIN ONEBODY...]/[END ONEBODY...] block followed by a
// [BEGIN TWOBODY...]/[END TWOBODY...] block. Wire rotindex values are
// 1-based and converted to 0-based choice indices. A malformed line poisons
// its enclosing record; the record is discarded (warned through t) and
// scanning resumes at the next BEGIN marker. ReadASCII fails only if zero
// records parse successfully.
func ReadASCII(r io.Reader, t tracer.Tracer) ([]*core.Problem, error) {
	if t == nil {
		t = tracer.Noop()
	}

	scanner := bufio.NewScanner(r)
	phase := phaseOutside
	lineNo := 0
	recordBad := false
	oneBodyDone := false
	var onebodies []onebodyEntry
	var twobodies []twobodyEntry
	var problems []*core.Problem

	resetRecord := func() {
		phase = phaseOutside
		recordBad = false
		oneBodyDone = false
		onebodies = nil
		twobodies = nil
	}

	fail := func(format string, args ...interface{}) {
		if !recordBad {
			t.Warnf("ascii", "%s", (&ParseError{Line: lineNo, Msg: fmt.Sprintf(format, args...)}).Error())
		}
		recordBad = true
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch phase {
		case phaseOutside:
			switch line {
			case asciiBeginOneBody:
				phase = phaseOneBody
			case asciiBeginTwoBody:
				if !oneBodyDone {
					fail("TWOBODY block before ONEBODY block")
				}
				phase = phaseTwoBody
			default:
				fail("unexpected line outside any block: %q", line)
			}

		case phaseOneBody:
			if line == asciiEndOneBody {
				phase = phaseOutside
				oneBodyDone = true
				continue
			}
			if line == asciiBeginTwoBody {
				phase = phaseTwoBody
				continue
			}
			fields := strings.Split(line, "\t")
			if len(fields) != 3 {
				fail("one-body line wants 3 tab-separated fields, got %d", len(fields))
				continue
			}
			node, err1 := strconv.Atoi(strings.TrimSpace(fields[0]))
			rotindex, err2 := strconv.Atoi(strings.TrimSpace(fields[1]))
			energy, err3 := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
			if err1 != nil || err2 != nil || err3 != nil {
				fail("malformed one-body fields: %q", line)
				continue
			}
			onebodies = append(onebodies, onebodyEntry{node: node, choice: rotindex - 1, energy: energy})

		case phaseTwoBody:
			if line == asciiEndTwoBody {
				if !recordBad {
					p, err := buildProblem(onebodies, twobodies)
					if err != nil {
						t.Warnf("ascii", "%s", (&ParseError{Line: lineNo, Msg: err.Error()}).Error())
					} else {
						problems = append(problems, p)
					}
				}
				resetRecord()
				continue
			}
			fields := strings.Split(line, "\t")
			if len(fields) != 5 {
				fail("two-body line wants 5 tab-separated fields, got %d", len(fields))
				continue
			}
			seqpos1, err1 := strconv.Atoi(strings.TrimSpace(fields[0]))
			rotindex1, err2 := strconv.Atoi(strings.TrimSpace(fields[1]))
			seqpos2, err3 := strconv.Atoi(strings.TrimSpace(fields[2]))
			rotindex2, err4 := strconv.Atoi(strings.TrimSpace(fields[3]))
			energy, err5 := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
			if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
				fail("malformed two-body fields: %q", line)
				continue
			}
			twobodies = append(twobodies, twobodyEntry{
				nodeA: seqpos1, nodeB: seqpos2,
				choiceA: rotindex1 - 1, choiceB: rotindex2 - 1,
				energy: energy,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(problems) == 0 {
		return nil, ErrNoSuccessfulRecord
	}
	return problems, nil
}
