// Package refsimplex implements a bounded, single-phase Big-M simplex
// solver over github.com/csirmaz-dd/innerdd/vlp problems, used as the
// oracle.Oracle for tests and by cmd/innerdd.
//
// It is a teaching and testing reference, not a substitute for a
// production LP solver: it uses a dense tableau (cost O(rows*cols) per
// pivot), has no presolve, and has no safeguards against degenerate
// cycling beyond a Bland's-rule fallback. Problems with more than a few
// hundred variables or constraints should use a real LP package instead.
package refsimplex
