package ddengine

import "github.com/csirmaz-dd/innerdd/polytope"

// classifiedFacet is a live facet together with its signed distance to the
// vertex currently being inserted.
type classifiedFacet struct {
	fid   int
	f     polytope.Facet
	delta float64
}

// insertVertex implements spec §4.3.3: partition facets by signed distance
// to w, cut off F_pos, synthesize a new facet for every ridge found between
// an F_pos member and an F_zer∪F_neg member, then add w with adjacency
// F_zer plus every newly created facet.
func (e *Engine) insertVertex(w polytope.Vertex) error {
	var fPos, fZer, fNeg []classifiedFacet
	for _, fid := range e.store.LiveFacetIDs() {
		f, err := e.store.Facet(fid)
		if err != nil {
			return err
		}
		delta := signedDistance(f, w)
		cf := classifiedFacet{fid: fid, f: f, delta: delta}
		switch {
		case delta > e.cfg.PolytopeEps:
			fPos = append(fPos, cf)
		case delta < -e.cfg.PolytopeEps:
			fNeg = append(fNeg, cf)
		default:
			fZer = append(fZer, cf)
		}
	}

	wid, err := e.store.AddVertex(w)
	if err != nil {
		return err
	}
	e.stats.VerticesAccepted++
	e.notifyVertex(w)

	for _, z := range fZer {
		if err := e.store.SetAdjacent(wid, z.fid); err != nil {
			return err
		}
	}

	posSet := make(map[int]bool, len(fPos))
	for _, p := range fPos {
		posSet[p.fid] = true
	}

	others := make([]classifiedFacet, 0, len(fZer)+len(fNeg))
	others = append(others, fZer...)
	others = append(others, fNeg...)

	testsThisInsertion := 0
	for _, p := range fPos {
		for _, n := range others {
			testsThisInsertion++
			s, err := e.store.CommonVertices(p.fid, n.fid)
			if err != nil {
				return err
			}
			isRidge, err := e.isRidge(s, p.fid, n.fid, posSet)
			if err != nil {
				return err
			}
			if !isRidge {
				continue
			}

			// Synthesize the new facet: the unique nonnegative
			// combination alpha*p + beta*n that passes through w
			// (alpha*p.delta + beta*n.delta == 0, both coefficients
			// nonnegative since p.delta>0 and n.delta<=0).
			alpha := -n.delta
			beta := p.delta
			eqn := make([]float64, e.dim+1)
			for k := range eqn {
				eqn[k] = alpha*p.f.Eqn[k] + beta*n.f.Eqn[k]
			}
			nfid, err := e.store.AddFacet(polytope.Facet{Eqn: eqn, Status: polytope.FacetPending})
			if err != nil {
				return err
			}
			e.stats.FacetsCreated++
			for _, vid := range s {
				if err := e.store.SetAdjacent(vid, nfid); err != nil {
					return err
				}
			}
			if err := e.store.SetAdjacent(wid, nfid); err != nil {
				return err
			}
		}
	}
	e.stats.RidgeTests += testsThisInsertion
	if testsThisInsertion > e.stats.RidgeTestsMax {
		e.stats.RidgeTestsMax = testsThisInsertion
	}

	for _, p := range fPos {
		if err := e.store.MarkFacetDeleted(p.fid); err != nil {
			return err
		}
		e.stats.FacetsDeleted++
	}
	return nil
}

// isRidge implements Chvátal's test (spec §4.3.3): the pair (p, n) defines
// a ridge iff no third live facet, other than p and n and the F_pos
// members about to be cut off, has S as a subset of its adjacent-vertex
// set. When such a blocking facet exists but |S| exceeds the expected
// rank d-2, the polytope is locally degenerate; the conservative policy
// is to accept the pair as a ridge anyway and count an instability
// warning rather than silently dropping a new facet.
func (e *Engine) isRidge(s []int, pFid, nFid int, posSet map[int]bool) (bool, error) {
	for _, fid := range e.store.LiveFacetIDs() {
		if fid == pFid || fid == nFid || posSet[fid] {
			continue
		}
		contained := true
		for _, vid := range s {
			ok, err := e.store.IsAdjacent(vid, fid)
			if err != nil {
				return false, err
			}
			if !ok {
				contained = false
				break
			}
		}
		if contained {
			if len(s) > e.dim-2 {
				e.store.RecordInstabilityWarning()
				e.stats.InstabilityWarnings++
				return true, nil
			}
			return false, nil
		}
	}
	return true, nil
}
