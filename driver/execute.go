package driver

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/csirmaz-dd/innerdd/config"
	"github.com/csirmaz-dd/innerdd/ddengine"
	"github.com/csirmaz-dd/innerdd/oracle"
	"github.com/csirmaz-dd/innerdd/oracle/refsimplex"
	"github.com/csirmaz-dd/innerdd/polytope"
	"github.com/csirmaz-dd/innerdd/vlp"
)

// Execute wires a parsed problem and its resolved parameters into an
// oracle, a polytope store, a ddengine.Engine, and the reporting/output
// layers, then runs the driver loop to completion. breakFlag is shared
// with the caller's signal handler: a nil value disables interrupt
// handling entirely (used by tests and by non-interactive embeddings).
func Execute(ctx context.Context, p config.Params, problem *vlp.Problem, breakFlag *int32) ExitCode {
	report := NewReport(p.ReportLevel)

	oc := refsimplex.New(problem,
		oracle.WithMethod(p.OracleMethod),
		oracle.WithPricing(p.OraclePricing),
		oracle.WithRatioTest(p.OracleRatioTest),
		oracle.WithScale(p.OracleScale != 0),
		oracle.WithIterLimit(p.OracleItLimit),
		oracle.WithTimeLimitSecs(p.OracleTimeLimit),
		oracle.WithMessage(p.OracleMessage),
		oracle.WithShuffleMatrix(p.ShuffleMatrix != 0),
		oracle.WithRoundVertices(p.RoundVertices != 0),
	)
	adapter := oracle.NewAdapter(oc, problem.Objs)
	store := polytope.NewStore(polytope.WithDimension(problem.Objs))

	maximize := problem.Direction == vlp.Maximize
	asFraction := p.PrintAsFraction != 0

	opts := []ddengine.EngineOption{}
	if p.ShowVertices != 0 {
		opts = append(opts, ddengine.WithVertexCallback(func(v polytope.Vertex) {
			if v.Ideal || report.Quiet {
				return
			}
			fmt.Println(FormatVertex(v.Coords, maximize, asFraction))
		}))
	}

	cfg := ddengine.NewConfig(
		ddengine.WithPolytopeEps(p.PolytopeEps),
		ddengine.WithLineqEps(p.LineqEps),
		ddengine.WithFacetRecalcEps(p.FacetRecalcEps),
		ddengine.WithRecalculateFacets(p.RecalculateFacets),
		ddengine.WithCheckConsistency(p.CheckConsistency),
		ddengine.WithRandomFacet(p.RandomFacet != 0),
		ddengine.WithExtractAfterBreak(p.ExtractAfterBreak != 0 &&
			(p.ShowVertices != 0 || p.DumpVertices == 2 || p.SaveVertices == 2)),
	)
	engine := ddengine.New(store, adapter, problem.Objs, cfg, opts...)

	start := time.Now()
	res := RunLoop(ctx, breakFlag, engine, p, report)
	elapsed := time.Since(start)

	normalExit := res.Outcome == ddengine.Completed
	outOfMemory := res.Outcome == ddengine.Aborted && res.Kind == ddengine.KindOutOfMemory
	if err := DumpAndSave(store, p, maximize, normalExit, os.Stdout); err != nil {
		if !report.Quiet {
			report.Final(engine.Statistics(), elapsed, outOfMemory)
		}
		return ExitNumericalError
	}

	report.Final(engine.Statistics(), elapsed, outOfMemory)
	return ExitFromResult(res)
}
