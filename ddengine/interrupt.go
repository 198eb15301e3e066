package ddengine

import (
	"context"
	"sync/atomic"

	"github.com/csirmaz-dd/innerdd/polytope"
)

// handleInterrupt implements spec §4.3.7. With ExtractAfterBreak disabled,
// it terminates immediately reporting partial results. Otherwise it enters
// post-extract: every currently live facet (pending or final) is probed
// once, and any genuinely new vertex is recorded via the store directly,
// without extending adjacency or cutting off facets. A second interrupt
// observed mid-pass aborts post-extract itself.
func (e *Engine) handleInterrupt(ctx context.Context, breakFlag *int32, breakSeen int32) Result {
	if !e.cfg.ExtractAfterBreak {
		return Result{Outcome: Interrupted}
	}

	for _, fid := range e.store.LiveFacetIDs() {
		if atomic.LoadInt32(breakFlag) != breakSeen {
			return Result{Outcome: Interrupted, PostExtractAttempted: true, SecondInterrupt: true, Err: ErrSecondInterrupt}
		}

		f, err := e.store.Facet(fid)
		if err != nil {
			continue
		}
		w, oerr := e.oc.Probe(ctx, f.Eqn[:e.dim])
		e.recordOracleCall()
		if oerr != nil {
			r := e.oracleFailure(oerr)
			r.PostExtractAttempted = true
			return r
		}

		wv := polytope.Vertex{Coords: w}
		if signedDistance(f, wv) < -e.cfg.PolytopeEps {
			if _, err := e.store.AddVertex(wv); err != nil {
				r := e.storeFailure(err)
				r.PostExtractAttempted = true
				return r
			}
			e.stats.PostExtractVertices++
			e.notifyVertex(wv)
		}
	}
	return Result{Outcome: Interrupted, PostExtractAttempted: true}
}
