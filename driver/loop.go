package driver

import (
	"context"
	"time"

	"github.com/csirmaz-dd/innerdd/config"
	"github.com/csirmaz-dd/innerdd/ddengine"
	"github.com/csirmaz-dd/innerdd/polytope"
)

// RunLoop drives engine.Init then engine.Run to completion while a
// concurrent ticker emits progress and memory reports (spec §4.5). The
// state machine itself lives entirely inside ddengine.Engine; this loop
// only supplies the concurrent reporting cadence the engine's
// synchronous Run doesn't have a hook for. The select waits only for
// Run's result and the ticker; it does not watch ctx itself.
func RunLoop(ctx context.Context, breakFlag *int32, engine *ddengine.Engine, p config.Params, report *Report) ddengine.Result {
	start := time.Now()

	if res := engine.Init(ctx); res.Outcome != ddengine.Completed {
		return res
	}

	done := make(chan ddengine.Result, 1)
	go func() { done <- engine.Run(ctx, breakFlag) }()

	var tick <-chan time.Time
	if p.ShowProgress >= 5 {
		ticker := time.NewTicker(time.Duration(p.ShowProgress) * time.Second)
		defer ticker.Stop()
		tick = ticker.C
	}

	var lastGen uint64
	for {
		select {
		case res := <-done:
			return res
		case <-tick:
			reportProgress(report, engine.Store(), start)
			if p.ReportMemory != 0 {
				if gen := engine.Store().Generation(); gen != lastGen {
					report.Memory(gen, engine.Store().MemoryEstimate())
					lastGen = gen
				}
			}
		}
	}
}

func reportProgress(report *Report, store *polytope.Store, start time.Time) {
	finalFacets := 0
	for _, fid := range store.LiveFacetIDs() {
		f, err := store.Facet(fid)
		if err == nil && f.Status == polytope.FacetFinal {
			finalFacets++
		}
	}
	report.Progress(time.Since(start), store.VertexNum(), finalFacets, store.PendingNum())
}
