package vlp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a VLP file from r and returns the fully validated Problem.
// It returns the first error encountered rather than accumulating
// partial state, mirroring core.NewGraph's immediate-validation style.
func Parse(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var p *Problem
	sawEnd := false
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		kind := fields[0]

		switch kind {
		case "c":
			continue
		case "p":
			if p != nil {
				return nil, wrapLine(lineNo, ErrDuplicateProgramLine)
			}
			var err error
			p, err = parseProgramLine(fields)
			if err != nil {
				return nil, wrapLine(lineNo, err)
			}
		case "i":
			if p == nil {
				return nil, wrapLine(lineNo, ErrMissingProgramLine)
			}
			if err := parseBoundLine(fields, p.Rows, p.RowBounds); err != nil {
				return nil, wrapLine(lineNo, err)
			}
		case "j":
			if p == nil {
				return nil, wrapLine(lineNo, ErrMissingProgramLine)
			}
			if err := parseBoundLine(fields, p.Cols, p.ColBounds); err != nil {
				return nil, wrapLine(lineNo, err)
			}
		case "a":
			if p == nil {
				return nil, wrapLine(lineNo, ErrMissingProgramLine)
			}
			if err := parseEntryLine(fields, p.Rows, p.Cols, p.A); err != nil {
				return nil, wrapLine(lineNo, err)
			}
		case "o":
			if p == nil {
				return nil, wrapLine(lineNo, ErrMissingProgramLine)
			}
			if err := parseEntryLine(fields, p.Objs, p.Cols, p.Obj); err != nil {
				return nil, wrapLine(lineNo, err)
			}
		case "e":
			sawEnd = true
		default:
			return nil, wrapLine(lineNo, fmt.Errorf("%w: %q", ErrUnknownLineKind, kind))
		}
		if sawEnd {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrMissingProgramLine
	}
	if !sawEnd {
		return nil, ErrMissingEndLine
	}
	return p, nil
}

func wrapLine(lineNo int, err error) error {
	return fmt.Errorf("vlp: line %d: %w", lineNo, err)
}

func parseProgramLine(fields []string) (*Problem, error) {
	// p vlp DIR ROWS COLS ALINES OBJS OLINES
	if len(fields) < 7 || fields[1] != "vlp" {
		return nil, ErrMalformedLine
	}
	var dir Direction
	switch fields[2] {
	case "min":
		dir = Minimize
	case "max":
		dir = Maximize
	default:
		return nil, ErrBadDirection
	}
	rows, err1 := strconv.Atoi(fields[3])
	cols, err2 := strconv.Atoi(fields[4])
	_, err3 := strconv.Atoi(fields[5]) // ALINES, informational only
	objs, err4 := strconv.Atoi(fields[6])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || rows < 0 || cols < 0 || objs < 0 {
		return nil, ErrMalformedLine
	}

	p := &Problem{
		Direction: dir,
		Rows:      rows,
		Cols:      cols,
		Objs:      objs,
		A:         make(map[[2]int]float64),
		Obj:       make(map[[2]int]float64),
		RowBounds: make([]Bound, rows+1),
		ColBounds: make([]Bound, cols+1),
	}
	for i := 1; i <= rows; i++ {
		p.RowBounds[i] = Bound{Kind: Free}
	}
	for j := 1; j <= cols; j++ {
		// Default column bound is fixed at zero per the format
		// description; well-formed files declare every column used in a
		// nontrivial way with its own `j` line.
		p.ColBounds[j] = Bound{Kind: Fixed, Lo: 0}
	}
	return p, nil
}

func parseBoundLine(fields []string, n int, bounds []Bound) error {
	// i ROW {f | l V | u V | d V1 V2 | s V}
	if len(fields) < 3 {
		return ErrMalformedLine
	}
	idx, err := strconv.Atoi(fields[1])
	if err != nil || idx < 1 || idx > n {
		return ErrIndexOutOfRange
	}
	switch fields[2] {
	case "f":
		bounds[idx] = Bound{Kind: Free}
	case "l":
		v, err := parseFloat(fields, 3)
		if err != nil {
			return err
		}
		bounds[idx] = Bound{Kind: Lower, Lo: v}
	case "u":
		v, err := parseFloat(fields, 3)
		if err != nil {
			return err
		}
		bounds[idx] = Bound{Kind: Upper, Hi: v}
	case "d":
		if len(fields) < 5 {
			return ErrMalformedLine
		}
		v1, err1 := strconv.ParseFloat(fields[3], 64)
		v2, err2 := strconv.ParseFloat(fields[4], 64)
		if err1 != nil || err2 != nil {
			return ErrMalformedLine
		}
		bounds[idx] = Bound{Kind: Double, Lo: v1, Hi: v2}
	case "s":
		v, err := parseFloat(fields, 3)
		if err != nil {
			return err
		}
		bounds[idx] = Bound{Kind: Fixed, Lo: v}
	default:
		return ErrMalformedLine
	}
	return nil
}

func parseFloat(fields []string, at int) (float64, error) {
	if len(fields) <= at {
		return 0, ErrMalformedLine
	}
	v, err := strconv.ParseFloat(fields[at], 64)
	if err != nil {
		return 0, ErrMalformedLine
	}
	return v, nil
}

func parseEntryLine(fields []string, nFirst, nCol int, dst map[[2]int]float64) error {
	// a ROW COL V / o OBJ COL V
	if len(fields) < 4 {
		return ErrMalformedLine
	}
	first, err1 := strconv.Atoi(fields[1])
	col, err2 := strconv.Atoi(fields[2])
	v, err3 := strconv.ParseFloat(fields[3], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return ErrMalformedLine
	}
	if first < 1 || first > nFirst || col < 1 || col > nCol {
		return ErrIndexOutOfRange
	}
	dst[[2]int{first, col}] = v
	return nil
}
