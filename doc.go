// Package innerdd approximates the Pareto frontier of a multiobjective
// linear program by Benson's inner approximation method.
//
// A problem is read from a VLP file (see `innerdd --help=vlp`), solved
// by repeatedly probing a scalar linear-programming oracle in
// directions chosen by the double-description method, and its extremal
// vertices (and, on request, facets) are printed or saved (see
// `innerdd --help=out`).
//
// The solver is organized under several subpackages:
//
//	bitmat/   — packed, growable bit matrices backing incidence bitmaps
//	polytope/ — the vertex/facet store and its consistency invariants
//	oracle/   — the scalar LP oracle interface, an instrumenting adapter,
//	            and a reference dense-tableau simplex implementation
//	vlp/      — the VLP file format parser
//	ddengine/ — the double-description approximation engine itself
//	config/   — command-line and config-file parameter handling
//	driver/   — the run loop, reporting, and output formatting
//	cmd/innerdd/ — the binary entry point
package innerdd
