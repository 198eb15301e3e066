package refsimplex

import "github.com/csirmaz-dd/innerdd/vlp"

// colMap describes how one VLP column maps onto the standard-form
// variable set produced by toStandardForm.
type colMap struct {
	free       bool    // split into pos - neg
	posIdx     int     // index of x_j (or x_j' after shifting) in standard form
	negIdx     int     // only valid if free
	offset     float64 // x_j = offset + sign*x_std[posIdx]
	sign       float64 // +1 normally, -1 when shifted from an upper bound
	fixedValue float64 // valid only when fixed
	fixed      bool
}

// standardForm is Ax = b, x >= 0, plus bookkeeping to recover original
// VLP variable values and to fold constant offsets into the objective.
type standardForm struct {
	rows     [][]float64 // len(rows) = m, each len n
	b        []float64
	n        int
	cols     []colMap // len = vlp.Cols+1, index 0 unused
	constOff float64  // objective constant contributed by fixed/shifted columns
}

// toStandardForm converts p into Ax = b, x >= 0 form suitable for the
// tableau simplex, eliminating fixed columns, splitting free columns,
// shifting lower-bounded columns so their lower bound becomes zero, and
// reflecting upper-only columns about their bound (x = hi - x'). The
// upper bound of a Double column becomes an explicit row with a slack
// variable, since this reference implementation does not special-case
// bounded variables inside the pivot rule.
func toStandardForm(p *vlp.Problem) *standardForm {
	sf := &standardForm{cols: make([]colMap, p.Cols+1)}

	n := 0
	for j := 1; j <= p.Cols; j++ {
		b := p.ColBounds[j]
		switch b.Kind {
		case vlp.Fixed:
			sf.cols[j] = colMap{fixed: true, fixedValue: b.Lo}
		case vlp.Free:
			sf.cols[j] = colMap{free: true, posIdx: n, negIdx: n + 1, sign: 1}
			n += 2
		case vlp.Lower, vlp.Double:
			sf.cols[j] = colMap{posIdx: n, offset: b.Lo, sign: 1}
			n++
		case vlp.Upper:
			sf.cols[j] = colMap{posIdx: n, offset: b.Hi, sign: -1}
			n++
		default:
			sf.cols[j] = colMap{posIdx: n, offset: 0, sign: 1}
			n++
		}
	}

	var rows [][]float64
	var rhs []float64

	addRow := func(coeffs map[int]float64, relLo, relHi float64, hasLo, hasHi bool) {
		if hasLo && hasHi && relLo == relHi {
			row := make([]float64, n)
			for idx, v := range coeffs {
				row[idx] += v
			}
			rows = append(rows, row)
			rhs = append(rhs, relLo)
			return
		}
		if hasHi {
			row := make([]float64, n+1)
			for idx, v := range coeffs {
				row[idx] += v
			}
			row[n] = 1 // slack
			rows = append(rows, row)
			rhs = append(rhs, relHi)
			growCols(&rows, n)
			n++
		}
		if hasLo {
			row := make([]float64, n+1)
			for idx, v := range coeffs {
				row[idx] += v
			}
			row[n] = -1 // surplus
			rows = append(rows, row)
			rhs = append(rhs, relLo)
			growCols(&rows, n)
			n++
		}
	}

	baseCoeffs := func(rowOf func(j int) float64) map[int]float64 {
		coeffs := make(map[int]float64)
		for j := 1; j <= p.Cols; j++ {
			v := rowOf(j)
			if v == 0 {
				continue
			}
			cm := sf.cols[j]
			if cm.fixed {
				continue
			}
			if cm.free {
				coeffs[cm.posIdx] += v
				coeffs[cm.negIdx] -= v
			} else {
				coeffs[cm.posIdx] += cm.sign * v
			}
		}
		return coeffs
	}

	constContribution := func(rowOf func(j int) float64) float64 {
		c := 0.0
		for j := 1; j <= p.Cols; j++ {
			v := rowOf(j)
			if v == 0 {
				continue
			}
			cm := sf.cols[j]
			if cm.fixed {
				c += v * cm.fixedValue
			} else if !cm.free {
				c += v * cm.offset
			}
		}
		return c
	}

	for i := 1; i <= p.Rows; i++ {
		rowOf := func(j int) float64 { return p.At(i, j) }
		coeffs := baseCoeffs(rowOf)
		off := constContribution(rowOf)
		rb := p.RowBounds[i]
		switch rb.Kind {
		case vlp.Free:
			continue
		case vlp.Fixed:
			addRow(coeffs, rb.Lo-off, rb.Lo-off, true, true)
			rows[len(rows)-1] = padTo(rows[len(rows)-1], n)
		case vlp.Lower:
			addRow(coeffs, rb.Lo-off, 0, true, false)
		case vlp.Upper:
			addRow(coeffs, 0, rb.Hi-off, false, true)
		case vlp.Double:
			addRow(coeffs, rb.Lo-off, rb.Hi-off, true, true)
		}
	}

	for j := 1; j <= p.Cols; j++ {
		cm := sf.cols[j]
		if cm.fixed || cm.free {
			continue
		}
		b := p.ColBounds[j]
		if b.Kind == vlp.Double {
			coeffs := map[int]float64{cm.posIdx: 1}
			addRow(coeffs, 0, b.Hi-b.Lo, false, true)
		}
	}

	for i := range rows {
		rows[i] = padTo(rows[i], n)
	}

	sf.rows = rows
	sf.b = rhs
	sf.n = n
	return sf
}

func padTo(row []float64, n int) []float64 {
	if len(row) >= n {
		return row
	}
	out := make([]float64, n)
	copy(out, row)
	return out
}

func growCols(rows *[][]float64, oldN int) {
	for i, row := range *rows {
		(*rows)[i] = padTo(row, oldN+1)
	}
}

// objectiveStd translates a composite objective over original VLP
// columns (length p.Cols, 1-indexed via index 0 unused) into a standard
// form cost vector of length sf.n, plus the constant term contributed by
// fixed and shifted columns.
func (sf *standardForm) objectiveStd(c []float64) ([]float64, float64) {
	out := make([]float64, sf.n)
	constant := 0.0
	for j := 1; j < len(c); j++ {
		v := c[j]
		if v == 0 {
			continue
		}
		cm := sf.cols[j]
		if cm.fixed {
			constant += v * cm.fixedValue
			continue
		}
		if cm.free {
			out[cm.posIdx] += v
			out[cm.negIdx] -= v
			continue
		}
		out[cm.posIdx] += cm.sign * v
		constant += v * cm.offset
	}
	return out, constant
}

// recoverColumn returns the original VLP value of column j given a
// standard-form solution vector x.
func (sf *standardForm) recoverColumn(j int, x []float64) float64 {
	cm := sf.cols[j]
	if cm.fixed {
		return cm.fixedValue
	}
	if cm.free {
		return x[cm.posIdx] - x[cm.negIdx]
	}
	return cm.offset + cm.sign*x[cm.posIdx]
}
