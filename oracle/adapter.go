package oracle

import (
	"context"
	"sync"
	"time"
)

// Stats accumulates oracle call instrumentation (SUPPLEMENTED FEATURE 1 in
// DESIGN.md, ported from original_source/src/inner.c's oracletime/oraclecalls
// globals, here made a per-Adapter instance instead of package state).
type Stats struct {
	Calls        int64
	TotalElapsed time.Duration
}

// AvgElapsed returns the mean wall-time per call, or zero if no calls have
// been made.
func (s Stats) AvgElapsed() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.TotalElapsed / time.Duration(s.Calls)
}

// Adapter wraps an Oracle with call-count and wall-time instrumentation.
// It is the sole way the DD engine talks to the oracle collaborator.
type Adapter struct {
	oracle Oracle
	dim    int

	mu    sync.Mutex
	stats Stats
}

// NewAdapter wraps oracle for use by the DD engine. dim is the expected
// length of every probe direction and returned vertex.
func NewAdapter(o Oracle, dim int) *Adapter {
	return &Adapter{oracle: o, dim: dim}
}

// Probe validates direction's dimension, times the call to the wrapped
// Oracle, and accumulates the result into Stats before returning.
func (a *Adapter) Probe(ctx context.Context, direction []float64) ([]float64, *OracleError) {
	if len(direction) != a.dim {
		return nil, &OracleError{Kind: Fail, Err: ErrDimensionMismatch}
	}

	start := time.Now()
	vertex, oerr := a.oracle.Probe(ctx, direction)
	elapsed := time.Since(start)

	a.mu.Lock()
	a.stats.Calls++
	a.stats.TotalElapsed += elapsed
	a.mu.Unlock()

	return vertex, oerr
}

// Stats returns a snapshot of the accumulated call instrumentation.
func (a *Adapter) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}
