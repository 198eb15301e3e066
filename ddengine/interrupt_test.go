package ddengine_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csirmaz-dd/innerdd/ddengine"
	"github.com/csirmaz-dd/innerdd/oracle"
	"github.com/csirmaz-dd/innerdd/polytope"
)

// countingOracle behaves like boxOracle but increments an external counter
// on every probe, letting a test raise the break flag partway through a run.
type countingOracle struct {
	dim      int
	hi       float64
	calls    int32
	breakAt  int32
	breakVar *int32
}

func (c *countingOracle) Probe(_ context.Context, direction []float64) ([]float64, *oracle.OracleError) {
	n := atomic.AddInt32(&c.calls, 1)
	if n == c.breakAt && c.breakVar != nil {
		atomic.AddInt32(c.breakVar, 1)
	}
	out := make([]float64, c.dim)
	for i, v := range direction {
		if v > 0 {
			out[i] = c.hi
		}
	}
	return out, nil
}

func TestEngine_Run_InterruptTriggersPostExtract(t *testing.T) {
	var breakFlag int32
	o := &countingOracle{dim: 3, hi: 1, breakAt: 1, breakVar: &breakFlag}
	store := polytope.NewStore(polytope.WithDimension(3))
	adapter := oracle.NewAdapter(o, 3)
	e := ddengine.New(store, adapter, 3, ddengine.NewConfig(ddengine.WithExtractAfterBreak(true)))

	require.Equal(t, ddengine.Completed, e.Init(context.Background()).Outcome)
	res := e.Run(context.Background(), &breakFlag)
	assert.Equal(t, ddengine.Interrupted, res.Outcome)
	assert.True(t, res.PostExtractAttempted)
	assert.False(t, res.SecondInterrupt)
}

func TestEngine_Run_InterruptWithoutExtractReturnsImmediately(t *testing.T) {
	var breakFlag int32 = 1 // already raised before Run starts
	o := &countingOracle{dim: 2, hi: 1}
	store := polytope.NewStore(polytope.WithDimension(2))
	adapter := oracle.NewAdapter(o, 2)
	e := ddengine.New(store, adapter, 2, ddengine.NewConfig(ddengine.WithExtractAfterBreak(false)))

	require.Equal(t, ddengine.Completed, e.Init(context.Background()).Outcome)
	res := e.Run(context.Background(), &breakFlag)
	assert.Equal(t, ddengine.Interrupted, res.Outcome)
	assert.False(t, res.PostExtractAttempted)
}

func TestEngine_Run_SecondInterruptAbortsPostExtract(t *testing.T) {
	var breakFlag int32
	o := &secondInterruptOracle{dim: 3, hi: 1, breakFlag: &breakFlag}
	store := polytope.NewStore(polytope.WithDimension(3))
	adapter := oracle.NewAdapter(o, 3)
	e := ddengine.New(store, adapter, 3, ddengine.NewConfig(ddengine.WithExtractAfterBreak(true)))

	require.Equal(t, ddengine.Completed, e.Init(context.Background()).Outcome)
	// Simulate SIGINT having already been delivered once, right as Run
	// begins, so the very first loop iteration enters post-extract.
	atomic.AddInt32(&breakFlag, 1)
	res := e.Run(context.Background(), &breakFlag)
	assert.Equal(t, ddengine.Interrupted, res.Outcome)
	assert.True(t, res.PostExtractAttempted)
	assert.True(t, res.SecondInterrupt)
	assert.ErrorIs(t, res.Err, ddengine.ErrSecondInterrupt)
}

// secondInterruptOracle raises the break flag again on its very first
// post-extract probe, simulating a user hitting SIGINT a second time
// while extraction is already underway. Call 1 is Init's all-ones probe,
// so the first post-extract probe is call 2.
type secondInterruptOracle struct {
	dim       int
	hi        float64
	breakFlag *int32
	calls     int
}

func (s *secondInterruptOracle) Probe(_ context.Context, direction []float64) ([]float64, *oracle.OracleError) {
	s.calls++
	if s.calls == 2 {
		atomic.AddInt32(s.breakFlag, 1)
	}
	out := make([]float64, s.dim)
	for i, v := range direction {
		if v > 0 {
			out[i] = s.hi
		}
	}
	return out, nil
}
