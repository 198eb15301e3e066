package vlp

import "errors"

// Sentinel errors for VLP parsing.
var (
	// ErrMissingProgramLine indicates the file's first non-comment line
	// was not a `p vlp ...` program line.
	ErrMissingProgramLine = errors.New("vlp: missing program line")

	// ErrDuplicateProgramLine indicates a second `p vlp ...` line appeared.
	ErrDuplicateProgramLine = errors.New("vlp: duplicate program line")

	// ErrBadDirection indicates the program line's direction was neither
	// "min" nor "max".
	ErrBadDirection = errors.New("vlp: direction must be min or max")

	// ErrMalformedLine indicates a line could not be tokenized according
	// to its line-kind's grammar.
	ErrMalformedLine = errors.New("vlp: malformed line")

	// ErrIndexOutOfRange indicates a row, column or objective index fell
	// outside the bounds declared on the program line.
	ErrIndexOutOfRange = errors.New("vlp: index out of range")

	// ErrMissingEndLine indicates the file ended without an `e` line.
	ErrMissingEndLine = errors.New("vlp: missing end-of-data line")

	// ErrUnknownLineKind indicates a line began with a letter that is not
	// one of c, p, i, j, a, o, e.
	ErrUnknownLineKind = errors.New("vlp: unknown line kind")
)
