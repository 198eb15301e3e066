package ddengine

import "time"

// Config holds the numerical tolerances and policy knobs the engine
// consults on every iteration (spec §4.3.4, §4.3.5, §4.3.2's RandomFacet,
// §4.3.7's ExtractAfterBreak). Defaults mirror original_source/params.c's
// DEF_* constants exactly.
type Config struct {
	PolytopeEps    float64
	LineqEps       float64
	FacetRecalcEps float64

	// RecalculateFacets is the period, in main-loop iterations (every
	// probe of a pending facet, whether it finalizes the facet or inserts
	// a vertex), between facet-equation recalculation passes. A value
	// <= 0 disables it. The command-line `-r` option raises values in
	// (0, 5) to 5; a value set through the RecalculateFacets keyword
	// reaches the engine unchanged.
	RecalculateFacets int

	// CheckConsistency is the period, in main-loop iterations, between
	// consistency-check passes. A value <= 0 disables it; no minimum is
	// applied.
	CheckConsistency int

	// RandomFacet selects uniform-random pending-facet selection instead
	// of FIFO.
	RandomFacet bool

	// ExtractAfterBreak enables the post-extract phase on interrupt (spec
	// §4.3.7). The driver loop is responsible for only setting this true
	// when at least one of "print vertices"/"save vertices in full" is
	// also requested.
	ExtractAfterBreak bool
}

// Option configures a Config at construction time.
type Option func(*Config)

func WithPolytopeEps(eps float64) Option { return func(c *Config) { c.PolytopeEps = eps } }
func WithLineqEps(eps float64) Option    { return func(c *Config) { c.LineqEps = eps } }
func WithFacetRecalcEps(eps float64) Option {
	return func(c *Config) { c.FacetRecalcEps = eps }
}
func WithRecalculateFacets(n int) Option { return func(c *Config) { c.RecalculateFacets = n } }
func WithCheckConsistency(n int) Option  { return func(c *Config) { c.CheckConsistency = n } }
func WithRandomFacet(b bool) Option      { return func(c *Config) { c.RandomFacet = b } }
func WithExtractAfterBreak(b bool) Option {
	return func(c *Config) { c.ExtractAfterBreak = b }
}

// NewConfig builds a Config from original_source/params.c's DEF_PolytopeEps
// (1.3e-8), DEF_LineqEps (8e-8), DEF_FacetRecalcEps (1e-6),
// DEF_RecalculateFacets (100), DEF_CheckConsistency (0), DEF_RandomFacet
// (false), DEF_ExtractAfterBreak (true), with overrides applied in order.
func NewConfig(opts ...Option) Config {
	c := Config{
		PolytopeEps:       1.3e-8,
		LineqEps:          8e-8,
		FacetRecalcEps:    1e-6,
		RecalculateFacets: 100,
		CheckConsistency:  0,
		RandomFacet:       false,
		ExtractAfterBreak: true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Outcome is the terminal state of an Engine run (spec §4.5's driver state
// machine, restricted to what the engine itself decides).
type Outcome uint8

const (
	// Completed means the pending set emptied out normally.
	Completed Outcome = iota
	// Aborted means a fatal error (see ErrorKind) stopped the run.
	Aborted
	// Interrupted means the break flag was observed and post-extract
	// was not configured, ran to completion, or was cut short by a
	// second interrupt (Result.SecondInterrupt is then set).
	Interrupted
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	case Interrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Result is the single tagged value the engine surfaces to its caller at
// the end of Run (spec §4.3.8, §7's "DD engine surfaces every fatal error
// to the driver loop as a single tagged result").
type Result struct {
	Outcome Outcome
	Kind    ErrorKind // meaningful only when Outcome == Aborted
	Err     error     // underlying cause, may be nil

	// PostExtractAttempted, SecondInterrupt distinguish the three
	// interrupt exit codes of spec §6: plain Interrupted (exit 3),
	// PostExtractAttempted && Outcome==Aborted (exit 4, an error surfaced
	// during post-extract itself), and SecondInterrupt (exit 5, a second
	// break observed while post-extract was running).
	PostExtractAttempted bool
	SecondInterrupt      bool
}

// Statistics is the engine-local replacement for the original's global
// dd_stats (spec §9's design note), owned by the Engine and readable by the
// driver loop at any time via Engine.Statistics.
type Statistics struct {
	Iterations           int
	VerticesAccepted     int
	FacetsCreated        int
	FacetsFinalized      int
	FacetsDeleted        int
	RidgeTests           int
	RidgeTestsMax        int // largest number of ridge tests in a single insertion
	RecalculationPasses  int
	ConsistencyPasses    int
	InstabilityWarnings  int
	OracleTime           time.Duration
	OracleCalls          int64
	PostExtractVertices  int
}
