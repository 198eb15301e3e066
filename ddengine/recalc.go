package ddengine

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrRecalcSingular is returned when a facet's adjacent-vertex matrix
// fails to factorize; it indicates a degenerate facet (fewer independent
// constraints than the ambient dimension requires) rather than bad input.
var ErrRecalcSingular = errors.New("ddengine: facet recalculation SVD failed")

// maybeRecalculate runs a facet-equation recalculation pass every
// RecalculateFacets accepted iterations (spec §4.3.4). A value <= 0
// disables it entirely.
func (e *Engine) maybeRecalculate() (Result, bool) {
	if e.cfg.RecalculateFacets <= 0 {
		return Result{}, false
	}
	e.sinceRecalc++
	if e.sinceRecalc < e.cfg.RecalculateFacets {
		return Result{}, false
	}
	e.sinceRecalc = 0
	e.stats.RecalculationPasses++

	for _, fid := range e.store.LiveFacetIDs() {
		if err := e.recalculateFacet(fid); err != nil {
			return e.storeFailure(err), true
		}
	}

	// Tombstoned facet rows and the stale columns they leave behind only
	// accumulate otherwise; the recalculation pass is the same safe,
	// between-iterations point the original program's recalculate_facets
	// runs compress_matrix from.
	if err := e.store.Compress(); err != nil {
		return e.storeFailure(err), true
	}
	return Result{}, false
}

// recalculateFacet rewrites facet fid's equation from scratch by solving
// the homogeneous system A·f = 0, A's rows being fid's adjacent vertices
// in homogeneous coordinates: [coords..., 1] for a finite vertex, and
// [e_axis..., 0] for an ideal vertex (a direction, not a point, so its
// homogeneous last coordinate is zero). The solution is the right
// singular vector of A with the smallest singular value.
func (e *Engine) recalculateFacet(fid int) error {
	f, err := e.store.Facet(fid)
	if err != nil {
		return err
	}
	verts, err := e.store.VerticesOn(fid)
	if err != nil {
		return err
	}
	n := e.dim + 1
	if len(verts) == 0 {
		return nil
	}

	data := make([]float64, 0, len(verts)*n)
	for _, vid := range verts {
		v, err := e.store.Vertex(vid)
		if err != nil {
			return err
		}
		row := make([]float64, n)
		if v.Ideal {
			row[v.IdealAxis] = 1
		} else {
			copy(row, v.Coords)
			row[n-1] = 1
		}
		data = append(data, row...)
	}
	A := mat.NewDense(len(verts), n, data)

	var svd mat.SVD
	if !svd.Factorize(A, mat.SVDFull) {
		return fmt.Errorf("%w: facet %d", ErrRecalcSingular, fid)
	}
	var V mat.Dense
	svd.VTo(&V)

	newEqn := make([]float64, n)
	for i := 0; i < n; i++ {
		v := V.At(i, n-1) // smallest singular value's right vector
		if math.Abs(v) <= e.cfg.LineqEps {
			v = 0
		}
		newEqn[i] = v
	}

	// Normalize so vertex 0 (the original simplex's real vertex, always
	// strictly interior) lies on the negative side.
	if ref, err := e.store.Vertex(0); err == nil && !ref.Ideal {
		d := newEqn[n-1]
		for i, c := range newEqn[:n-1] {
			d += c * ref.Coords[i]
		}
		if d > 0 {
			for i := range newEqn {
				newEqn[i] = -newEqn[i]
			}
		}
	}

	maxDiff := 0.0
	for i := range newEqn {
		if diff := math.Abs(newEqn[i] - f.Eqn[i]); diff > maxDiff {
			maxDiff = diff
		}
	}
	if maxDiff > e.cfg.FacetRecalcEps {
		e.store.RecordInstabilityWarning()
		e.stats.InstabilityWarnings++
	}

	return e.store.SetFacetEquation(fid, newEqn)
}
