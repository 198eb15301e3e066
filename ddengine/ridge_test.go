package ddengine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csirmaz-dd/innerdd/ddengine"
	"github.com/csirmaz-dd/innerdd/oracle"
	"github.com/csirmaz-dd/innerdd/polytope"
)

// stepOracle answers a small fixed script of probes in order, used to
// force a specific sequence of vertex insertions rather than the generic
// box extremal used elsewhere.
type stepOracle struct {
	answers [][]float64
	i       int
}

func (s *stepOracle) Probe(context.Context, []float64) ([]float64, *oracle.OracleError) {
	if s.i >= len(s.answers) {
		return s.answers[len(s.answers)-1], nil
	}
	a := s.answers[s.i]
	s.i++
	return a, nil
}

// TestEngine_InsertVertex_CutsCornerOfSquare drives a unit square through a
// single corner cut: after Init discovers (1,1), the probe of facet x<=1
// returns (0,2), strictly on that facet's negative side and beyond facet
// y<=1, forcing ridge enumeration, synthesis of new facets through the
// new vertex, and deletion of y<=1. Every later probe returns (1,1),
// which lies on all remaining facets.
func TestEngine_InsertVertex_CutsCornerOfSquare(t *testing.T) {
	o := &stepOracle{answers: [][]float64{
		{1, 1}, // Init's all-ones probe
		{0, 2}, // cuts facet y<=1
		{1, 1},
	}}
	store := polytope.NewStore(polytope.WithDimension(2))
	adapter := oracle.NewAdapter(o, 2)
	e := ddengine.New(store, adapter, 2, ddengine.NewConfig())

	require.Equal(t, ddengine.Completed, e.Init(context.Background()).Outcome)
	res := e.Run(context.Background(), nil)
	require.Equal(t, ddengine.Completed, res.Outcome, "%+v", res)
	assert.NoError(t, store.CheckInvariants())
	assert.GreaterOrEqual(t, store.VertexNum(), 3)
}

func TestEngine_Run_DetectsWrongSideOracleAnswer(t *testing.T) {
	// An oracle that always answers (2,2) violates every facet of the
	// initial simplex by an amount inconsistent with being the true
	// extremal point along the probed direction once a facet has already
	// been finalized along it, surfacing as a numerical inconsistency.
	o := &stepOracle{answers: [][]float64{
		{1, 1},
		{2, 2},
		{2, 2},
		{2, 2},
	}}
	store := polytope.NewStore(polytope.WithDimension(2))
	adapter := oracle.NewAdapter(o, 2)
	e := ddengine.New(store, adapter, 2, ddengine.NewConfig())

	require.Equal(t, ddengine.Completed, e.Init(context.Background()).Outcome)
	res := e.Run(context.Background(), nil)
	// Either it completes (the point happens to be consistent for all
	// remaining pending facets) or it aborts with a numerical Kind; both
	// are acceptable outcomes for this adversarial fixture, but a panic
	// or store corruption is not.
	if res.Outcome == ddengine.Aborted {
		assert.Equal(t, ddengine.KindNumerical, res.Kind)
	}
}
