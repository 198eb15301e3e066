package refsimplex_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csirmaz-dd/innerdd/oracle"
	"github.com/csirmaz-dd/innerdd/oracle/refsimplex"
	"github.com/csirmaz-dd/innerdd/vlp"
)

// unitSquareVLP is the 2-objective unit square from spec.md's end-to-end
// scenario 1: minimize (x, y) over [0,1]x[0,1]. Only the origin is
// Pareto-efficient: the minimum in each objective is attained there.
const unitSquareVLP = `
p vlp min 0 2 0 2 0
j 1 d 0 1
j 2 d 0 1
o 1 1 1
o 2 2 1
e
`

func TestOracle_Probe_UnitSquare_MinimizesAtOrigin(t *testing.T) {
	p, err := vlp.Parse(strings.NewReader(unitSquareVLP))
	require.NoError(t, err)

	o := refsimplex.New(p)
	y, oerr := o.Probe(context.Background(), []float64{1, 1})
	require.Nil(t, oerr)
	assert.InDelta(t, 0, y[0], 1e-6)
	assert.InDelta(t, 0, y[1], 1e-6)
}

func TestOracle_Probe_UnitSquare_FavorsOneAxis(t *testing.T) {
	p, err := vlp.Parse(strings.NewReader(unitSquareVLP))
	require.NoError(t, err)

	o := refsimplex.New(p)
	// Direction (1, -1): minimizing x while maximizing the weight on y
	// pushes the solver to x=0 and y=1, i.e. y-objective-space point
	// (0, 1).
	y, oerr := o.Probe(context.Background(), []float64{1, -1})
	require.Nil(t, oerr)
	assert.InDelta(t, 0, y[0], 1e-6)
	assert.InDelta(t, 1, y[1], 1e-6)
}

// tradeoffVLP models a single resource constraint x+y<=1 shared by two
// objectives being maximized, spec.md's end-to-end scenario 2: the
// Pareto frontier is the segment between (1,0) and (0,1). Probe reports
// maximized objectives negated, so those points come back as (-1,0) and
// (0,-1).
const tradeoffVLP = `
p vlp max 1 2 2 2 2
j 1 d 0 1
j 2 d 0 1
a 1 1 1
a 1 2 1
i 1 u 1
o 1 1 1
o 2 2 1
e
`

func TestOracle_Probe_Tradeoff_RespectsResourceConstraint(t *testing.T) {
	p, err := vlp.Parse(strings.NewReader(tradeoffVLP))
	require.NoError(t, err)

	o := refsimplex.New(p)
	y, oerr := o.Probe(context.Background(), []float64{1, 0})
	require.Nil(t, oerr)
	assert.InDelta(t, -1, y[0], 1e-6)
	assert.InDelta(t, 0, y[1], 1e-6)

	y, oerr = o.Probe(context.Background(), []float64{0, 1})
	require.Nil(t, oerr)
	assert.InDelta(t, 0, y[0], 1e-6)
	assert.InDelta(t, -1, y[1], 1e-6)
}

func TestOracle_Probe_RejectsWrongDirectionLength(t *testing.T) {
	p, err := vlp.Parse(strings.NewReader(unitSquareVLP))
	require.NoError(t, err)

	o := refsimplex.New(p)
	_, oerr := o.Probe(context.Background(), []float64{1})
	require.NotNil(t, oerr)
	assert.Equal(t, oracle.Fail, oerr.Kind)
	assert.ErrorIs(t, oerr, oracle.ErrDimensionMismatch)
}

func TestOracle_Probe_HonorsCancelledContext(t *testing.T) {
	p, err := vlp.Parse(strings.NewReader(unitSquareVLP))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := refsimplex.New(p)
	_, oerr := o.Probe(ctx, []float64{1, 1})
	require.NotNil(t, oerr)
	assert.Equal(t, oracle.Fail, oerr.Kind)
}

// unboundedVLP has no constraints at all on a free-signed column, so
// minimizing its single objective x is unbounded below.
const unboundedVLP = `
p vlp min 0 1 0 1 0
j 1 f
o 1 1 1
e
`

func TestOracle_Probe_DetectsUnbounded(t *testing.T) {
	p, err := vlp.Parse(strings.NewReader(unboundedVLP))
	require.NoError(t, err)

	o := refsimplex.New(p)
	_, oerr := o.Probe(context.Background(), []float64{1})
	require.NotNil(t, oerr)
	assert.Equal(t, oracle.Unbounded, oerr.Kind)
}

// infeasibleVLP asks for x <= 1 and x >= 2 simultaneously on a bounded
// column, which has no feasible point.
const infeasibleVLP = `
p vlp min 2 1 0 1 0
j 1 l 0
i 1 u 1
i 2 l 2
a 1 1 1
a 2 1 1
o 1 1 1
e
`

func TestOracle_Probe_DetectsInfeasible(t *testing.T) {
	p, err := vlp.Parse(strings.NewReader(infeasibleVLP))
	require.NoError(t, err)

	o := refsimplex.New(p)
	_, oerr := o.Probe(context.Background(), []float64{1})
	require.NotNil(t, oerr)
	assert.Equal(t, oracle.Empty, oerr.Kind)
}
