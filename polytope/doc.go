// Package polytope holds the evolving vertex/facet description of a
// polyhedron as two parallel tables — Vertices and Facets — each carrying
// an adjacency bitmap into the other (backed by bitmat.Matrix).
//
// The store owns both tables and every adjacency bitmap; callers outside
// this package never write into a bitmap directly, only through
// SetAdjacent, AddVertex, AddFacet and the mark/compress operations. A
// single Store is meant to be held exclusively by one DD-engine iteration
// at a time — it does not guard itself with a mutex the way core.Graph
// guards its maps, since the engine above it is already strictly
// single-threaded (spec §5).
package polytope
