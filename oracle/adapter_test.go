package oracle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csirmaz-dd/innerdd/oracle"
)

type stubOracle struct {
	vertex []float64
	err    *oracle.OracleError
	delay  time.Duration
}

func (s *stubOracle) Probe(ctx context.Context, direction []float64) ([]float64, *oracle.OracleError) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.vertex, s.err
}

func TestAdapter_Probe_AccumulatesStats(t *testing.T) {
	stub := &stubOracle{vertex: []float64{1, 2}, delay: time.Millisecond}
	a := oracle.NewAdapter(stub, 2)

	v, oerr := a.Probe(context.Background(), []float64{1, 0})
	require.Nil(t, oerr)
	assert.Equal(t, []float64{1, 2}, v)

	_, _ = a.Probe(context.Background(), []float64{0, 1})

	stats := a.Stats()
	assert.EqualValues(t, 2, stats.Calls)
	assert.Greater(t, stats.TotalElapsed, time.Duration(0))
	assert.Greater(t, stats.AvgElapsed(), time.Duration(0))
}

func TestAdapter_Probe_RejectsWrongDimension(t *testing.T) {
	stub := &stubOracle{}
	a := oracle.NewAdapter(stub, 3)

	_, oerr := a.Probe(context.Background(), []float64{1, 0})
	require.NotNil(t, oerr)
	assert.Equal(t, oracle.Fail, oerr.Kind)
	assert.ErrorIs(t, oerr, oracle.ErrDimensionMismatch)
}

func TestAdapter_Probe_PropagatesOracleError(t *testing.T) {
	stub := &stubOracle{err: &oracle.OracleError{Kind: oracle.Unbounded}}
	a := oracle.NewAdapter(stub, 1)

	_, oerr := a.Probe(context.Background(), []float64{1})
	require.NotNil(t, oerr)
	assert.True(t, oerr.Is(&oracle.OracleError{Kind: oracle.Unbounded}))
	assert.False(t, oerr.Is(&oracle.OracleError{Kind: oracle.Empty}))
}

func TestNewConfig_Defaults(t *testing.T) {
	c := oracle.NewConfig()
	assert.Equal(t, 0, c.Method)
	assert.Equal(t, 1, c.Pricing)
	assert.Equal(t, 1, c.RatioTest)
	assert.True(t, c.Scale)
	assert.Equal(t, 10000, c.IterLimit)
	assert.Equal(t, 20, c.TimeLimitSecs)
	assert.True(t, c.ShuffleMatrix)
	assert.True(t, c.RoundVertices)
}

func TestNewConfig_Overrides(t *testing.T) {
	c := oracle.NewConfig(
		oracle.WithMethod(1),
		oracle.WithIterLimit(500),
		oracle.WithScale(false),
	)
	assert.Equal(t, 1, c.Method)
	assert.Equal(t, 500, c.IterLimit)
	assert.False(t, c.Scale)
}

func TestErrorKind_String(t *testing.T) {
	cases := map[oracle.ErrorKind]string{
		oracle.Unbounded: "unbounded",
		oracle.Empty:     "empty",
		oracle.Limit:     "limit",
		oracle.Fail:      "fail",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}
