package bitmat

import "errors"

// Sentinel errors for bitmat operations.
var (
	// ErrOutOfMemory is returned when a requested column growth would
	// exceed the matrix's configured column cap. Callers treat this as
	// fatal and initiate graceful shutdown (spec §4.1, §7).
	ErrOutOfMemory = errors.New("bitmat: out of memory")

	// ErrRowOutOfRange indicates a row index outside [0, NumRows()).
	ErrRowOutOfRange = errors.New("bitmat: row index out of range")

	// ErrColOutOfRange indicates a column index outside [0, NumCols()).
	ErrColOutOfRange = errors.New("bitmat: column index out of range")

	// ErrDimensionMismatch indicates a keep-mask passed to
	// CompressColumns or CompressRows whose length does not match the
	// matrix.
	ErrDimensionMismatch = errors.New("bitmat: dimension mismatch")
)
