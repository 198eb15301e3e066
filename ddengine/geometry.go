package ddengine

import (
	"math"

	"github.com/csirmaz-dd/innerdd/polytope"
)

// signedDistance evaluates facet f's defining affine function
// f.Eqn[0:d]·x + f.Eqn[d] at vertex v. Negative means v is strictly inside
// the half-space f·x+f[d+1]<=0; positive means v violates it.
//
// An ideal vertex is a sentinel for a ray at +infinity along axis
// v.IdealAxis — one generator of the recession cone R_+^d (spec §4.3.1).
// Following that ray, the affine function's value moves toward +infinity
// if f.Eqn[axis] > 0 (the ray eventually violates f), toward -infinity if
// f.Eqn[axis] < 0 (the ray stays feasible forever), and is unchanged if
// f.Eqn[axis] == 0 (the ray is parallel to f's hyperplane, so the ideal
// vertex is incident to f at every finite offset — treated as exactly on
// the facet).
func signedDistance(f polytope.Facet, v polytope.Vertex) float64 {
	if v.Ideal {
		c := f.Eqn[v.IdealAxis]
		switch {
		case c > 0:
			return math.Inf(1)
		case c < 0:
			return math.Inf(-1)
		default:
			return 0
		}
	}
	d := f.Eqn[len(f.Eqn)-1]
	for i, c := range f.Eqn[:len(f.Eqn)-1] {
		d += c * v.Coords[i]
	}
	return d
}

// onFacet reports whether v's signed distance to f is within eps of zero.
// Ideal vertices are "on" f exactly when f's coefficient along their axis
// is zero (an infinite signed distance never satisfies this).
func onFacet(f polytope.Facet, v polytope.Vertex, eps float64) bool {
	if v.Ideal {
		return f.Eqn[v.IdealAxis] == 0
	}
	return math.Abs(signedDistance(f, v)) <= eps
}
