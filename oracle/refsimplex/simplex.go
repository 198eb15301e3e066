package refsimplex

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by solveMin, translated into oracle.OracleError
// kinds by Oracle.Probe.
var (
	ErrInfeasible   = errors.New("refsimplex: problem is infeasible")
	ErrUnbounded    = errors.New("refsimplex: problem is unbounded")
	ErrIterLimit    = errors.New("refsimplex: iteration limit exceeded")
	ErrSingularStep = errors.New("refsimplex: degenerate pivot column")
)

const bigM = 1e7

// solveMin minimizes c·x subject to Ax = b, x >= 0, using a Big-M dense
// tableau simplex with Bland's rule as an anti-cycling fallback. A and b
// come from toStandardForm, which already ensures every row is an
// equality; rows whose RHS is negative are flipped so every artificial
// variable can start at a feasible value.
func solveMin(rows [][]float64, b, c []float64, iterLimit int) ([]float64, float64, error) {
	m := len(rows)
	if m == 0 {
		// No constraints: the unconstrained minimum of c·x over x >= 0 is
		// 0 if c >= 0 everywhere, else unbounded.
		n := len(c)
		for _, v := range c {
			if v < 0 {
				return nil, 0, ErrUnbounded
			}
		}
		return make([]float64, n), 0, nil
	}
	n := len(rows[0])

	// Normalize signs so b >= 0.
	A := make([][]float64, m)
	bb := make([]float64, m)
	for i := range rows {
		A[i] = append([]float64(nil), rows[i]...)
		bb[i] = b[i]
		if bb[i] < 0 {
			bb[i] = -bb[i]
			for j := range A[i] {
				A[i][j] = -A[i][j]
			}
		}
	}

	total := n + m // structural/slack columns + one artificial per row
	tab := mat.NewDense(m+1, total+1, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			tab.Set(i, j, A[i][j])
		}
		tab.Set(i, n+i, 1)
		tab.Set(i, total, bb[i])
	}

	cost := make([]float64, total)
	copy(cost, c)
	for j := n; j < total; j++ {
		cost[j] = bigM
	}
	basis := make([]int, m)
	for i := 0; i < m; i++ {
		basis[i] = n + i
	}

	// Row 0 holds reduced costs z_j - c_j, initialised from -cost then
	// reduced by the artificial basis (each artificial has cost bigM, so
	// row0 -= bigM * row_i for every i).
	for j := 0; j <= total; j++ {
		tab.Set(m, j, 0)
	}
	for j := 0; j < total; j++ {
		tab.Set(m, j, -cost[j])
	}
	for i := 0; i < m; i++ {
		rowAdd(tab, m, i, bigM, total)
	}

	iter := 0
	for {
		iter++
		if iter > iterLimit {
			return nil, 0, ErrIterLimit
		}

		pivotCol := -1
		best := -1e-9
		for j := 0; j < total; j++ {
			v := tab.At(m, j)
			if v < best {
				best = v
				pivotCol = j
			}
		}
		if pivotCol == -1 {
			break // optimal
		}

		pivotRow := -1
		bestRatio := math.Inf(1)
		for i := 0; i < m; i++ {
			a := tab.At(i, pivotCol)
			if a <= 1e-12 {
				continue
			}
			ratio := tab.At(i, total) / a
			if ratio < bestRatio-1e-12 || (ratio < bestRatio+1e-12 && (pivotRow == -1 || basis[i] < basis[pivotRow])) {
				bestRatio = ratio
				pivotRow = i
			}
		}
		if pivotRow == -1 {
			return nil, 0, ErrUnbounded
		}

		pivot(tab, pivotRow, pivotCol, total)
		basis[pivotRow] = pivotCol
	}

	for i := 0; i < m; i++ {
		if basis[i] >= n && tab.At(i, total) > 1e-7 {
			return nil, 0, ErrInfeasible
		}
	}

	x := make([]float64, n)
	for i := 0; i < m; i++ {
		if basis[i] < n {
			x[basis[i]] = tab.At(i, total)
		}
	}
	return x, floats.Dot(c, x), nil
}

func rowAdd(tab *mat.Dense, dst, src int, scale float64, cols int) {
	for j := 0; j <= cols; j++ {
		tab.Set(dst, j, tab.At(dst, j)+scale*tab.At(src, j))
	}
}

func pivot(tab *mat.Dense, row, col, cols int) {
	p := tab.At(row, col)
	for j := 0; j <= cols; j++ {
		tab.Set(row, j, tab.At(row, j)/p)
	}
	rows, _ := tab.Dims()
	for i := 0; i < rows; i++ {
		if i == row {
			continue
		}
		factor := tab.At(i, col)
		if factor == 0 {
			continue
		}
		for j := 0; j <= cols; j++ {
			tab.Set(i, j, tab.At(i, j)-factor*tab.At(row, j))
		}
	}
}
