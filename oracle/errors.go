package oracle

import "errors"

// ErrorKind classifies why a probe failed, mirroring the four outcomes the
// underlying scalar-LP solver's status codes collapse into (spec §4.4).
type ErrorKind uint8

const (
	// Unbounded indicates the feasible region is unbounded in the probed
	// direction.
	Unbounded ErrorKind = iota
	// Empty indicates the feasible region is empty (infeasible).
	Empty
	// Limit indicates the solver exhausted its iteration or time limit
	// before reaching a certified vertex.
	Limit
	// Fail indicates an internal solver failure unrelated to the problem's
	// feasibility (numerical breakdown, unexpected status code).
	Fail
)

func (k ErrorKind) String() string {
	switch k {
	case Unbounded:
		return "unbounded"
	case Empty:
		return "empty"
	case Limit:
		return "limit"
	case Fail:
		return "fail"
	default:
		return "unknown"
	}
}

// OracleError reports a failed Probe call. Callers branch on Kind, not on
// the error string.
type OracleError struct {
	Kind ErrorKind
	Err  error // underlying cause, if any; may be nil
}

func (e *OracleError) Error() string {
	if e.Err != nil {
		return "oracle: " + e.Kind.String() + ": " + e.Err.Error()
	}
	return "oracle: " + e.Kind.String()
}

func (e *OracleError) Unwrap() error { return e.Err }

// Is reports whether target is an *OracleError with the same Kind,
// letting callers write errors.Is(err, &oracle.OracleError{Kind: oracle.Unbounded}).
func (e *OracleError) Is(target error) bool {
	t, ok := target.(*OracleError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinel errors for adapter-level failures not originating from the
// wrapped Oracle itself.
var (
	// ErrDimensionMismatch indicates a probe direction whose length does
	// not match the configured problem dimension.
	ErrDimensionMismatch = errors.New("oracle: direction dimension mismatch")
)
