package polytope

import "errors"

// Sentinel errors for polytope store operations.
var (
	// ErrVertexNotFound indicates a reference to an unknown or already
	// compressed-away vertex handle.
	ErrVertexNotFound = errors.New("polytope: vertex not found")

	// ErrFacetNotFound indicates a reference to an unknown or already
	// compressed-away facet handle.
	ErrFacetNotFound = errors.New("polytope: facet not found")

	// ErrVertexDeleted indicates an operation targeted a tombstoned vertex.
	ErrVertexDeleted = errors.New("polytope: vertex is deleted")

	// ErrFacetDeleted indicates an operation targeted a tombstoned facet.
	ErrFacetDeleted = errors.New("polytope: facet is deleted")

	// ErrBadDimension indicates a coordinate or equation vector of the
	// wrong length was passed to AddVertex or AddFacet.
	ErrBadDimension = errors.New("polytope: dimension mismatch")

	// ErrInconsistent is returned by CheckInvariants when the combinatorial
	// structure has drifted (spec §4.3.5, §4.2's invariant list).
	ErrInconsistent = errors.New("polytope: consistency check failed")
)
