// Package driver implements the outer control loop (spec §4.5): it owns
// Init/Run against the DD engine, periodic progress and memory reports,
// the end-of-run statistics block, and vertex/facet output formatting
// (fraction printing, the max-problem sign flip). It is the only layer
// that maps an ddengine.Result onto a process exit code.
package driver
