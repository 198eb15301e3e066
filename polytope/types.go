package polytope

// VertexStatus is the lifecycle state of a Vertex row (spec §3 Lifecycle).
type VertexStatus uint8

const (
	// VertexLive marks a vertex as part of the current approximation.
	VertexLive VertexStatus = iota
	// VertexDeleted marks a vertex as tombstoned, pending a Compress pass.
	// Vertices are never deleted once accepted (spec §3); this status exists
	// only so Compress has a uniform tombstone mechanism to share with facets.
	VertexDeleted
)

// FacetStatus is the lifecycle state of a Facet row (spec §3 Lifecycle).
type FacetStatus uint8

const (
	// FacetPending marks a facet as a candidate for further probing.
	FacetPending FacetStatus = iota
	// FacetFinal marks a facet the oracle has certified has no vertex
	// strictly on its negative side.
	FacetFinal
	// FacetDeleted marks a facet cut off by a newly inserted vertex.
	FacetDeleted
)

// Vertex is a d-tuple of coordinates, or, when Ideal is true, a sentinel
// point at infinity along axis IdealAxis encoding one ray of the
// recession cone (spec §4.3.1). Ideal vertices never leave the table and
// are filtered out of all reported output by the driver.
type Vertex struct {
	Coords   []float64
	Ideal    bool
	IdealAxis int
	Status   VertexStatus
}

// Facet is a (d+1)-tuple (Eqn[0:d], Eqn[d]) describing the half-space
// Eqn[0:d]·x + Eqn[d] ≤ 0.
type Facet struct {
	Eqn    []float64
	Status FacetStatus
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithDimension sets the ambient dimension d, used to validate the length
// of every coordinate and equation vector passed to AddVertex/AddFacet and
// to enforce the popcount ≥ d invariant in CheckInvariants.
func WithDimension(d int) Option {
	return func(s *Store) { s.dim = d }
}
