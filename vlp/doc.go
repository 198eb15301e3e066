// Package vlp reads the VLP plain-text problem format: a line-oriented
// description of a multi-objective linear program (constraint matrix,
// row/column bounds, objective matrix) consumed by oracle/refsimplex.
//
// No third-party library in the retrieved example pack parses this
// format; the parser below is hand-built against the format
// description, validating eagerly and returning a sentinel error on the
// first malformed line rather than accumulating partial state.
package vlp
