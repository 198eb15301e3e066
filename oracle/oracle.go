package oracle

import "context"

// Oracle is the external scalar-LP solver collaborator the DD engine
// drives. Given a direction in objective space, it returns an extremal
// vertex of the feasible region, or a categorised OracleError.
//
// Implementations MUST respect ctx cancellation: a long-running probe
// should return promptly with ctx.Err() wrapped in a Fail-kind
// OracleError once the context is done, the same way flow.Dinic checks
// ctx.Err() at the top of its main loop rather than mid-computation.
type Oracle interface {
	Probe(ctx context.Context, direction []float64) ([]float64, *OracleError)
}

// Config is the LP configuration surface consumed once at start by an
// Oracle implementation (spec §4.4): method, pricing, ratio test, scaling,
// iteration/time limits, message verbosity, shuffling, rounding.
type Config struct {
	Method        int // 0 = primal, 1 = dual (per original_source's OracleMethod)
	Pricing       int
	RatioTest     int
	Scale         bool
	IterLimit     int
	TimeLimitSecs int
	Message       int // verbosity level, 0..3
	ShuffleMatrix bool
	RoundVertices bool
}

// Option configures a Config at construction time.
type Option func(*Config)

// WithMethod sets the LP method (0 = primal, 1 = dual).
func WithMethod(m int) Option { return func(c *Config) { c.Method = m } }

// WithPricing sets the pricing rule.
func WithPricing(p int) Option { return func(c *Config) { c.Pricing = p } }

// WithRatioTest sets the ratio test variant.
func WithRatioTest(r int) Option { return func(c *Config) { c.RatioTest = r } }

// WithScale toggles constraint-matrix scaling.
func WithScale(s bool) Option { return func(c *Config) { c.Scale = s } }

// WithIterLimit sets the per-call iteration limit.
func WithIterLimit(n int) Option { return func(c *Config) { c.IterLimit = n } }

// WithTimeLimitSecs sets the per-call wall-time limit in seconds.
func WithTimeLimitSecs(s int) Option { return func(c *Config) { c.TimeLimitSecs = s } }

// WithMessage sets the solver's own message verbosity.
func WithMessage(level int) Option { return func(c *Config) { c.Message = level } }

// WithShuffleMatrix toggles row/column shuffling before each solve.
func WithShuffleMatrix(s bool) Option { return func(c *Config) { c.ShuffleMatrix = s } }

// WithRoundVertices toggles rational rounding of returned vertex
// coordinates.
func WithRoundVertices(r bool) Option { return func(c *Config) { c.RoundVertices = r } }

// NewConfig builds a Config from documented defaults (matching
// original_source/params.c's DEF_Oracle* constants) with overrides
// applied in order.
func NewConfig(opts ...Option) Config {
	c := Config{
		Method:        0,
		Pricing:       1,
		RatioTest:     1,
		Scale:         true,
		IterLimit:     10000,
		TimeLimitSecs: 20,
		Message:       1,
		ShuffleMatrix: true,
		RoundVertices: true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
