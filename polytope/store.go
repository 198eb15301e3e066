package polytope

import (
	"fmt"

	"github.com/csirmaz-dd/innerdd/bitmat"
)

// Store holds the vertex and facet tables and their two adjacency
// bitmaps, kept in lockstep: vertexAdj has one row per vertex and one
// column per facet; facetAdj has one row per facet and one column per
// vertex. Every AddVertex grows facetAdj's columns by one; every AddFacet
// grows vertexAdj's columns by one.
type Store struct {
	dim int

	vertices []Vertex
	facets   []Facet

	vertexAdj *bitmat.Matrix // rows: vertex index, cols: facet index
	facetAdj  *bitmat.Matrix // rows: facet index, cols: vertex index

	// generation increments on every allocation that grows backing
	// storage (AddVertex, AddFacet, GrowColumns-triggered reallocation),
	// giving the driver loop a cheap way to detect "did memory usage
	// change" for the memory-report-on-change behavior (SUPPLEMENTED
	// FEATURE 4 in DESIGN.md).
	generation uint64

	instabilityWarnings int
}

// NewStore returns an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		vertexAdj: bitmat.NewMatrix(),
		facetAdj:  bitmat.NewMatrix(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dimension returns the ambient dimension d configured via WithDimension.
func (s *Store) Dimension() int { return s.dim }

// AddVertex appends v to the vertex table and returns its stable handle.
// It grows facetAdj's column count by one so every existing facet gains a
// (currently zero) incidence bit for the new vertex.
func (s *Store) AddVertex(v Vertex) (int, error) {
	if s.dim > 0 && !v.Ideal && len(v.Coords) != s.dim {
		return 0, fmt.Errorf("%w: vertex has %d coords, want %d", ErrBadDimension, len(v.Coords), s.dim)
	}
	vid := s.vertexAdj.AddRow()
	if _, err := s.facetAdj.GrowColumns(); err != nil {
		return 0, fmt.Errorf("polytope: growing facet adjacency columns: %w", err)
	}
	s.vertices = append(s.vertices, v)
	s.generation++
	return vid, nil
}

// AddFacet appends f to the facet table and returns its stable handle. It
// grows vertexAdj's column count by one so every existing vertex gains a
// (currently zero) incidence bit for the new facet.
func (s *Store) AddFacet(f Facet) (int, error) {
	if s.dim > 0 && len(f.Eqn) != s.dim+1 {
		return 0, fmt.Errorf("%w: facet has %d coefficients, want %d", ErrBadDimension, len(f.Eqn), s.dim+1)
	}
	fid := s.facetAdj.AddRow()
	if _, err := s.vertexAdj.GrowColumns(); err != nil {
		return 0, fmt.Errorf("polytope: growing vertex adjacency columns: %w", err)
	}
	s.facets = append(s.facets, f)
	s.generation++
	return fid, nil
}

// Vertex returns the vertex stored at handle vid.
func (s *Store) Vertex(vid int) (Vertex, error) {
	if vid < 0 || vid >= len(s.vertices) {
		return Vertex{}, ErrVertexNotFound
	}
	return s.vertices[vid], nil
}

// Facet returns the facet stored at handle fid.
func (s *Store) Facet(fid int) (Facet, error) {
	if fid < 0 || fid >= len(s.facets) {
		return Facet{}, ErrFacetNotFound
	}
	return s.facets[fid], nil
}

// SetAdjacent records that vertex vid lies on facet fid, writing both
// matrices (spec §4.2).
func (s *Store) SetAdjacent(vid, fid int) error {
	if err := s.checkVertex(vid); err != nil {
		return err
	}
	if err := s.checkFacet(fid); err != nil {
		return err
	}
	if err := s.vertexAdj.Set(vid, uint(fid)); err != nil {
		return fmt.Errorf("polytope: setting vertex adjacency: %w", err)
	}
	if err := s.facetAdj.Set(fid, uint(vid)); err != nil {
		return fmt.Errorf("polytope: setting facet adjacency: %w", err)
	}
	return nil
}

// ClearAdjacent removes the adjacency relation between vid and fid from
// both matrices.
func (s *Store) ClearAdjacent(vid, fid int) error {
	if err := s.checkVertex(vid); err != nil {
		return err
	}
	if err := s.checkFacet(fid); err != nil {
		return err
	}
	if err := s.vertexAdj.Clear(vid, uint(fid)); err != nil {
		return fmt.Errorf("polytope: clearing vertex adjacency: %w", err)
	}
	if err := s.facetAdj.Clear(fid, uint(vid)); err != nil {
		return fmt.Errorf("polytope: clearing facet adjacency: %w", err)
	}
	return nil
}

// SetFacetEquation overwrites facet fid's equation in place, used by the
// periodic facet-equation recalculation pass (spec §4.3.4). It does not
// touch adjacency or status.
func (s *Store) SetFacetEquation(fid int, eqn []float64) error {
	if err := s.checkFacet(fid); err != nil {
		return err
	}
	if s.dim > 0 && len(eqn) != s.dim+1 {
		return fmt.Errorf("%w: equation has %d coefficients, want %d", ErrBadDimension, len(eqn), s.dim+1)
	}
	s.facets[fid].Eqn = eqn
	return nil
}

// MarkFacetFinal transitions a facet to FacetFinal.
func (s *Store) MarkFacetFinal(fid int) error {
	if err := s.checkFacet(fid); err != nil {
		return err
	}
	s.facets[fid].Status = FacetFinal
	return nil
}

// MarkFacetDeleted transitions a facet to FacetDeleted (cut off). It
// clears fid's column in vertexAdj for every vertex that was adjacent to
// it, so no live vertex is left claiming adjacency to a tombstoned facet
// row (spec §4.2's bitmap-symmetry invariant).
func (s *Store) MarkFacetDeleted(fid int) error {
	if err := s.checkFacet(fid); err != nil {
		return err
	}
	verts, err := s.VerticesOn(fid)
	if err != nil {
		return err
	}
	for _, vid := range verts {
		if err := s.vertexAdj.Clear(vid, uint(fid)); err != nil {
			return fmt.Errorf("polytope: clearing vertex adjacency for deleted facet: %w", err)
		}
	}
	s.facets[fid].Status = FacetDeleted
	return s.facetAdj.Tombstone(fid)
}

// VerticesOn returns the live vertex handles adjacent to facet fid, in
// ascending order.
func (s *Store) VerticesOn(fid int) ([]int, error) {
	if err := s.checkFacet(fid); err != nil {
		return nil, err
	}
	bits, err := s.facetAdj.SetBits(fid)
	if err != nil {
		return nil, err
	}
	return toIntSlice(bits), nil
}

// FacetsThrough returns the facet handles adjacent to vertex vid, in
// ascending order.
func (s *Store) FacetsThrough(vid int) ([]int, error) {
	if err := s.checkVertex(vid); err != nil {
		return nil, err
	}
	bits, err := s.vertexAdj.SetBits(vid)
	if err != nil {
		return nil, err
	}
	return toIntSlice(bits), nil
}

// IsAdjacent reports whether vertex vid lies on facet fid.
func (s *Store) IsAdjacent(vid, fid int) (bool, error) {
	if err := s.checkVertex(vid); err != nil {
		return false, err
	}
	if err := s.checkFacet(fid); err != nil {
		return false, err
	}
	return s.vertexAdj.Test(vid, uint(fid))
}

// CommonVertices returns the vertex handles adjacent to both fid1 and fid2,
// in ascending order — the candidate ridge set S of spec §4.3.3's
// Chvátal test.
func (s *Store) CommonVertices(fid1, fid2 int) ([]int, error) {
	if err := s.checkFacet(fid1); err != nil {
		return nil, err
	}
	if err := s.checkFacet(fid2); err != nil {
		return nil, err
	}
	bits, err := s.facetAdj.IntersectionBits(fid1, fid2)
	if err != nil {
		return nil, err
	}
	return toIntSlice(bits), nil
}

// LiveVertexIDs returns the handles of every non-deleted vertex, in
// ascending order.
func (s *Store) LiveVertexIDs() []int {
	out := make([]int, 0, len(s.vertices))
	for vid, v := range s.vertices {
		if v.Status == VertexLive {
			out = append(out, vid)
		}
	}
	return out
}

// LiveFacetIDs returns the handles of every non-deleted facet, in index
// order.
func (s *Store) LiveFacetIDs() []int {
	out := make([]int, 0, len(s.facets))
	for fid, f := range s.facets {
		if f.Status != FacetDeleted {
			out = append(out, fid)
		}
	}
	return out
}

// VertexNum returns the number of live (non-deleted) vertices.
func (s *Store) VertexNum() int {
	n := 0
	for _, v := range s.vertices {
		if v.Status == VertexLive {
			n++
		}
	}
	return n
}

// FacetNum returns the number of live (non-deleted) facets.
func (s *Store) FacetNum() int {
	n := 0
	for _, f := range s.facets {
		if f.Status != FacetDeleted {
			n++
		}
	}
	return n
}

// PendingNum returns the number of facets still awaiting a probe.
func (s *Store) PendingNum() int {
	n := 0
	for _, f := range s.facets {
		if f.Status == FacetPending {
			n++
		}
	}
	return n
}

// MemoryEstimate returns an approximate byte count for the two
// adjacency bitmaps plus the vertex/facet coordinate tables, for the
// driver loop's memory report (SUPPLEMENTED FEATURE 4). It is a rough
// accounting, not a precise allocator-level figure.
func (s *Store) MemoryEstimate() int64 {
	bits := int64(s.vertexAdj.NumRows())*int64(s.vertexAdj.NumCols()) +
		int64(s.facetAdj.NumRows())*int64(s.facetAdj.NumCols())
	coords := int64(0)
	for _, v := range s.vertices {
		coords += int64(len(v.Coords)) * 8
	}
	for _, f := range s.facets {
		coords += int64(len(f.Eqn)) * 8
	}
	return bits/8 + coords
}

// Generation returns the allocation-generation counter, incremented on
// every AddVertex/AddFacet and every successful Compress.
func (s *Store) Generation() uint64 { return s.generation }

// InstabilityWarnings returns the running count of ridge-test and
// recalculation disagreements recorded via RecordInstabilityWarning.
func (s *Store) InstabilityWarnings() int { return s.instabilityWarnings }

// RecordInstabilityWarning increments the instability warning counter
// (spec §4.3.3's "recoverable: log, continue" path).
func (s *Store) RecordInstabilityWarning() { s.instabilityWarnings++ }

// Compress removes tombstoned facet rows, renumbers every remaining
// handle, and rewrites both bitmaps accordingly. All handles obtained
// before a Compress call must be considered invalidated afterward; the DD
// engine calls Compress only between iterations, never mid-insertion
// (spec §4.2).
func (s *Store) Compress() error {
	keepFacets := make([]bool, len(s.facets))
	for i, f := range s.facets {
		keepFacets[i] = f.Status != FacetDeleted
	}
	fOldToNew, err := s.facetAdj.CompressRows(keepFacets)
	if err != nil {
		return fmt.Errorf("polytope: compressing facet rows: %w", err)
	}
	if _, err := s.vertexAdj.CompressColumns(keepFacets); err != nil {
		return fmt.Errorf("polytope: compressing vertex-adjacency columns: %w", err)
	}
	newFacets := make([]Facet, 0, len(fOldToNew))
	for old, nf := range fOldToNew {
		if nf >= 0 {
			newFacets = append(newFacets, s.facets[old])
		}
	}
	s.facets = newFacets

	keepVertices := make([]bool, len(s.vertices))
	for i, v := range s.vertices {
		keepVertices[i] = v.Status != VertexDeleted
	}
	vOldToNew, err := s.vertexAdj.CompressRows(keepVertices)
	if err != nil {
		return fmt.Errorf("polytope: compressing vertex rows: %w", err)
	}
	if _, err := s.facetAdj.CompressColumns(keepVertices); err != nil {
		return fmt.Errorf("polytope: compressing facet-adjacency columns: %w", err)
	}
	newVertices := make([]Vertex, 0, len(vOldToNew))
	for old, nv := range vOldToNew {
		if nv >= 0 {
			newVertices = append(newVertices, s.vertices[old])
		}
	}
	s.vertices = newVertices

	s.generation++
	return nil
}

// CheckInvariants verifies bitmap symmetry, adjacency-to-deleted-row
// absence, and the popcount ≥ d rule for live facets (spec §4.2, §4.3.5).
// Tombstoned facet rows are skipped; a live vertex that still points at
// one is reported.
func (s *Store) CheckInvariants() error {
	for vid, v := range s.vertices {
		facets, err := s.FacetsThrough(vid)
		if err != nil {
			return err
		}
		for _, fid := range facets {
			onV, err := s.facetAdj.Test(fid, uint(vid))
			if err != nil {
				return err
			}
			if !onV {
				return fmt.Errorf("%w: vertex %d claims facet %d but facet disagrees", ErrInconsistent, vid, fid)
			}
			if s.facets[fid].Status == FacetDeleted {
				return fmt.Errorf("%w: vertex %d adjacent to deleted facet %d", ErrInconsistent, vid, fid)
			}
		}
		if v.Status == VertexDeleted && len(facets) != 0 {
			return fmt.Errorf("%w: deleted vertex %d still has adjacency", ErrInconsistent, vid)
		}
	}
	for fid, f := range s.facets {
		if f.Status == FacetDeleted {
			continue
		}
		verts, err := s.VerticesOn(fid)
		if err != nil {
			return err
		}
		for _, vid := range verts {
			onF, err := s.vertexAdj.Test(vid, uint(fid))
			if err != nil {
				return err
			}
			if !onF {
				return fmt.Errorf("%w: facet %d claims vertex %d but vertex disagrees", ErrInconsistent, fid, vid)
			}
			if s.vertices[vid].Status == VertexDeleted {
				return fmt.Errorf("%w: facet %d adjacent to deleted vertex %d", ErrInconsistent, fid, vid)
			}
		}
		if f.Status != FacetDeleted && s.dim > 0 && len(verts) < s.dim {
			return fmt.Errorf("%w: live facet %d has only %d adjacent vertices, want >= %d", ErrInconsistent, fid, len(verts), s.dim)
		}
	}
	return nil
}

func (s *Store) checkVertex(vid int) error {
	if vid < 0 || vid >= len(s.vertices) {
		return ErrVertexNotFound
	}
	if s.vertices[vid].Status == VertexDeleted {
		return ErrVertexDeleted
	}
	return nil
}

func (s *Store) checkFacet(fid int) error {
	if fid < 0 || fid >= len(s.facets) {
		return ErrFacetNotFound
	}
	if s.facets[fid].Status == FacetDeleted {
		return ErrFacetDeleted
	}
	return nil
}

func toIntSlice(bits []uint) []int {
	out := make([]int, len(bits))
	for i, b := range bits {
		out[i] = int(b)
	}
	return out
}
