// Package ddengine implements the double-description approximation engine:
// a state machine that grows a polytope.Store one vertex at a time from
// answers returned by an oracle.Oracle, preserving combinatorial
// correctness of the vertex/facet incidence structure under floating-point
// arithmetic.
//
// The engine never touches a VLP file, a config file, or an output stream;
// it is driven entirely by Engine.Init followed by Engine.Run, and reports
// its outcome as a single tagged Result.
package ddengine
