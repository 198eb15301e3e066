package ddengine

// maybeCheckConsistency runs polytope.Store.CheckInvariants every
// CheckConsistency accepted iterations (spec §4.3.5). A value <= 0
// disables it entirely. Any violation is fatal: dump-and-save partial is
// the driver loop's responsibility once it receives a KindNumerical
// Result.
func (e *Engine) maybeCheckConsistency() (Result, bool) {
	if e.cfg.CheckConsistency <= 0 {
		return Result{}, false
	}
	e.sinceCheck++
	if e.sinceCheck < e.cfg.CheckConsistency {
		return Result{}, false
	}
	e.sinceCheck = 0
	e.stats.ConsistencyPasses++

	if err := e.store.CheckInvariants(); err != nil {
		return Result{Outcome: Aborted, Kind: KindNumerical, Err: err}, true
	}
	return Result{}, false
}
