package config

import "errors"

// Sentinel errors returned by the command-line parser, the config-file
// reader and PostProcess. Callers distinguish them with errors.Is; the
// CLI layer (cmd/innerdd) maps InputError-wrapping failures onto exit
// code 1 per spec §7.
var (
	ErrNoInputFile        = errors.New("config: missing input vlp file")
	ErrMultipleInputFiles = errors.New("config: only one input file can be specified")
	ErrUnknownOption      = errors.New("config: unknown option")
	ErrMissingArgument    = errors.New("config: option requires an argument")
	ErrArgumentOutOfRange = errors.New("config: option argument is out of range")
	ErrUnknownKeyword     = errors.New("config: unknown keyword")
	ErrKeywordOutOfRange  = errors.New("config: keyword value is out of range")
	ErrConfigFileOpen     = errors.New("config: cannot open config file")
	ErrNoOutputRequested  = errors.New("config: no output requested, all computation would be lost")
)

// InputError wraps one of the sentinels above with the offending text,
// matching the original program's "fatal, explain, point at --help"
// reporting style without pulling in a logging dependency at this layer.
type InputError struct {
	Err   error
	Detail string
}

func (e *InputError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *InputError) Unwrap() error { return e.Err }
