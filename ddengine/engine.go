package ddengine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync/atomic"

	"github.com/csirmaz-dd/innerdd/bitmat"
	"github.com/csirmaz-dd/innerdd/oracle"
	"github.com/csirmaz-dd/innerdd/polytope"
)

// EngineOption configures an Engine at construction time, separate from
// Config since these knobs are wiring concerns (randomness source) rather
// than numerical policy.
type EngineOption func(*Engine)

// WithRNGSeed makes facet selection under RandomFacet deterministic, used
// by tests that need reproducible runs.
func WithRNGSeed(seed int64) EngineOption {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithVertexCallback registers fn to be called with every vertex as soon
// as it is accepted into the approximation, including the initial
// simplex's real vertex. It backs the ShowVertices=1 "report vertices
// immediately when generated" behavior (spec §6); the driver loop is the
// only caller that needs it; the engine itself never inspects the
// coordinates it hands over.
func WithVertexCallback(fn func(polytope.Vertex)) EngineOption {
	return func(e *Engine) { e.onVertex = fn }
}

// Engine is the double-description approximation state machine (spec
// §4.3). It holds a single exclusive reference to its polytope.Store for
// the duration of a Run, per spec §3's Ownership note.
type Engine struct {
	store *polytope.Store
	oc    *oracle.Adapter
	cfg   Config
	dim   int
	rng   *rand.Rand

	initialized bool
	stats       Statistics
	onVertex    func(polytope.Vertex)

	sinceRecalc int
	sinceCheck  int
}

func (e *Engine) notifyVertex(v polytope.Vertex) {
	if e.onVertex != nil {
		e.onVertex(v)
	}
}

// New builds an Engine over store (expected empty; Init populates it) and
// oc (expected to wrap an Oracle whose dimension matches dim).
func New(store *polytope.Store, oc *oracle.Adapter, dim int, cfg Config, opts ...EngineOption) *Engine {
	e := &Engine{
		store: store,
		oc:    oc,
		cfg:   cfg,
		dim:   dim,
		rng:   rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the engine's polytope store, for read-only inspection by
// the driver loop (dumping vertices/facets, computing output).
func (e *Engine) Store() *polytope.Store { return e.store }

// Statistics returns a snapshot of the engine's running counters.
func (e *Engine) Statistics() Statistics { return e.stats }

// Init builds the initial d-simplex (spec §4.3.1): one real vertex v0
// obtained by probing the all-ones direction, plus d ideal vertices
// encoding the recession cone's generators, combined into a (d+1)-vertex,
// (d+1)-facet simplex. Every facet starts pending.
func (e *Engine) Init(ctx context.Context) Result {
	if e.initialized {
		return Result{Outcome: Aborted, Kind: KindFail, Err: ErrAlreadyInitialized}
	}

	dir := make([]float64, e.dim)
	for i := range dir {
		dir[i] = 1
	}
	y0, oerr := e.oc.Probe(ctx, dir)
	e.recordOracleCall()
	if oerr != nil {
		return e.oracleFailure(oerr)
	}

	v0 := polytope.Vertex{Coords: append([]float64(nil), y0...)}
	v0id, err := e.store.AddVertex(v0)
	if err != nil {
		return e.storeFailure(err)
	}
	e.notifyVertex(v0)

	idealIDs := make([]int, e.dim)
	for axis := 0; axis < e.dim; axis++ {
		vid, err := e.store.AddVertex(polytope.Vertex{Ideal: true, IdealAxis: axis})
		if err != nil {
			return e.storeFailure(err)
		}
		idealIDs[axis] = vid
	}

	// facet_i, i in [0,dim): Eqn[i]=1, offset=-y0[i]. Adjacent to v0 and
	// every ideal vertex j != i (coefficient 0 along their axis).
	facetIDs := make([]int, e.dim+1)
	for i := 0; i < e.dim; i++ {
		eqn := make([]float64, e.dim+1)
		eqn[i] = 1
		eqn[e.dim] = -y0[i]
		fid, err := e.store.AddFacet(polytope.Facet{Eqn: eqn, Status: polytope.FacetPending})
		if err != nil {
			return e.storeFailure(err)
		}
		facetIDs[i] = fid
		e.stats.FacetsCreated++
		if err := e.store.SetAdjacent(v0id, fid); err != nil {
			return e.storeFailure(err)
		}
		for axis, vid := range idealIDs {
			if axis == i {
				continue
			}
			if err := e.store.SetAdjacent(vid, fid); err != nil {
				return e.storeFailure(err)
			}
		}
	}

	// facet_dim: the hyperplane through the d ideal vertices opposite v0.
	// Normal (1,...,1), offset chosen so v0 lies exactly on it; probing
	// this facet's own normal is exactly how v0 was found, so the oracle
	// will return v0 again here and certify it final on the first
	// main-loop iteration that selects it.
	sum := 0.0
	for _, c := range y0 {
		sum += c
	}
	eqn := make([]float64, e.dim+1)
	for i := range eqn[:e.dim] {
		eqn[i] = 1
	}
	eqn[e.dim] = -sum
	fid, err := e.store.AddFacet(polytope.Facet{Eqn: eqn, Status: polytope.FacetPending})
	if err != nil {
		return e.storeFailure(err)
	}
	facetIDs[e.dim] = fid
	e.stats.FacetsCreated++
	for _, vid := range idealIDs {
		if err := e.store.SetAdjacent(vid, fid); err != nil {
			return e.storeFailure(err)
		}
	}

	e.stats.VerticesAccepted++
	e.initialized = true
	return Result{Outcome: Completed}
}

// Run drives the main iteration (spec §4.3.2) to completion, interruption,
// or a fatal abort. breakFlag is polled cooperatively between iterations;
// a nil breakFlag means the run can never be interrupted cooperatively
// (only ctx cancellation, surfaced through the oracle, can stop it).
func (e *Engine) Run(ctx context.Context, breakFlag *int32) Result {
	if !e.initialized {
		return Result{Outcome: Aborted, Kind: KindFail, Err: ErrNotInitialized}
	}

	breakSeen := int32(0)
	for e.store.PendingNum() > 0 {
		if breakFlag != nil {
			cur := atomic.LoadInt32(breakFlag)
			if cur != breakSeen {
				if breakSeen == 0 {
					breakSeen = cur
					return e.handleInterrupt(ctx, breakFlag, breakSeen)
				}
			}
		}

		if res, done := e.step(ctx); done {
			return res
		}
	}
	return Result{Outcome: Completed}
}

// step runs exactly one main-loop iteration: select, probe, classify, and
// (if the vertex is new) insert. It returns done=true with a terminal
// Result only on a fatal error; success and "marked final" both return
// done=false so Run can loop.
func (e *Engine) step(ctx context.Context) (Result, bool) {
	fid, ok := e.selectPending()
	if !ok {
		return Result{}, false
	}
	f, err := e.store.Facet(fid)
	if err != nil {
		return e.storeFailure(err), true
	}

	w, oerr := e.oc.Probe(ctx, f.Eqn[:e.dim])
	e.recordOracleCall()
	if oerr != nil {
		return e.oracleFailure(oerr), true
	}

	wv := polytope.Vertex{Coords: w}
	delta := signedDistance(f, wv)
	switch {
	case delta > e.cfg.PolytopeEps:
		return Result{Outcome: Aborted, Kind: KindNumerical,
			Err: fmt.Errorf("ddengine: oracle returned point on wrong side of facet %d (delta=%g)", fid, delta)}, true
	case delta >= -e.cfg.PolytopeEps:
		if err := e.store.MarkFacetFinal(fid); err != nil {
			return e.storeFailure(err), true
		}
		e.stats.FacetsFinalized++
	default:
		if err := e.insertVertex(wv); err != nil {
			return e.toResult(err), true
		}
	}

	e.stats.Iterations++
	if res, done := e.maybeRecalculate(); done {
		return res, true
	}
	if res, done := e.maybeCheckConsistency(); done {
		return res, true
	}
	return Result{}, false
}

// selectPending returns a pending facet id per the configured policy: FIFO
// (lowest index) by default, uniform-random among pending facets when
// RandomFacet is set.
func (e *Engine) selectPending() (int, bool) {
	pending := e.store.LiveFacetIDs()
	candidates := pending[:0:0]
	for _, fid := range pending {
		f, err := e.store.Facet(fid)
		if err != nil {
			continue
		}
		if f.Status == polytope.FacetPending {
			candidates = append(candidates, fid)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	if e.cfg.RandomFacet {
		return candidates[e.rng.Intn(len(candidates))], true
	}
	return candidates[0], true
}

func (e *Engine) recordOracleCall() {
	e.stats.OracleCalls = e.oc.Stats().Calls
	e.stats.OracleTime = e.oc.Stats().TotalElapsed
}

func (e *Engine) oracleFailure(oerr *oracle.OracleError) Result {
	kind := KindFail
	switch oerr.Kind {
	case oracle.Unbounded:
		kind = KindUnbounded
	case oracle.Empty:
		kind = KindEmpty
	case oracle.Limit:
		kind = KindLimit
	}
	return Result{Outcome: Aborted, Kind: kind, Err: oerr}
}

func (e *Engine) storeFailure(err error) Result {
	kind := KindFail
	if errors.Is(err, bitmat.ErrOutOfMemory) {
		kind = KindOutOfMemory
	}
	return Result{Outcome: Aborted, Kind: kind, Err: err}
}

func (e *Engine) toResult(err error) Result {
	if err == nil {
		return Result{Outcome: Completed}
	}
	return e.storeFailure(err)
}
