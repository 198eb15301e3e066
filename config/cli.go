package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Action reports what ParseArgs decided to do with a command line that
// asked for something other than "solve this problem": print help text,
// print the version banner, or dump the default config file, then exit
// without touching the engine at all. The zero value, ActionSolve, is
// the ordinary path.
type Action int

const (
	ActionSolve Action = iota
	ActionShortHelp
	ActionLongHelp
	ActionVLPHelp
	ActionOutHelp
	ActionVersion
	ActionDumpConfig
)

// overrides collects the five "-x value" options whose effect depends
// on other parameters (or on the config file) and so can't be applied
// to Params directly during parsing; PostProcess reconciles them.
type overrides struct {
	m, mSet       bool
	mVal          int
	y, ySet       bool
	yVal          int
	p, pSet       bool
	pVal          int
	r, rSet       bool
	rVal          int
	k, kSet       bool
	kVal          int
}

// ParseArgs parses the command-line arguments (excluding argv[0]) of
// spec §6's option grammar. On ActionSolve it returns Params ready for
// PostProcess; for every other Action, p and ov are nil and the caller
// should print the corresponding help/version/dump text and exit 0.
func ParseArgs(args []string) (action Action, p *Params, ov *overrides, f filled, err error) {
	if len(args) == 0 {
		return ActionShortHelp, nil, nil, nil, nil
	}
	switch args[0] {
	case "--version":
		return ActionVersion, nil, nil, nil, nil
	case "--dump":
		return ActionDumpConfig, nil, nil, nil, nil
	case "--help=vlp":
		return ActionVLPHelp, nil, nil, nil, nil
	case "--help=out":
		return ActionOutHelp, nil, nil, nil, nil
	case "--help":
		return ActionLongHelp, nil, nil, nil, nil
	case "-h", "-help":
		return ActionShortHelp, nil, nil, nil, nil
	}

	params := Defaults()
	filledSet := filled{}
	over := &overrides{}

	i := 0
	for i < len(args) {
		a := args[i]
		switch {
		case !strings.HasPrefix(a, "-"):
			if params.VlpFile != "" {
				return 0, nil, nil, nil, &InputError{Err: ErrMultipleInputFiles, Detail: a}
			}
			params.VlpFile = a
			i++

		case strings.HasPrefix(a, "--"):
			var consumed int
			consumed, err = parseLongOption(a, &params, filledSet)
			if err != nil {
				return 0, nil, nil, nil, err
			}
			i += consumed

		default:
			var consumed int
			consumed, err = parseShortOption(args, i, &params, over)
			if err != nil {
				return 0, nil, nil, nil, err
			}
			i += consumed
		}
	}

	if params.VlpFile == "" {
		return 0, nil, nil, nil, &InputError{Err: ErrNoInputFile}
	}
	return ActionSolve, &params, over, filledSet, nil
}

func parseLongOption(a string, p *Params, f filled) (int, error) {
	switch {
	case strings.HasPrefix(a, "--config="):
		p.ConfigFile = a[len("--config="):]
	case strings.HasPrefix(a, "--name="):
		p.ProblemName = a[len("--name="):]
	default:
		found, err := treatKeyword(a[2:], p, f)
		if err != nil {
			return 0, &InputError{Err: err, Detail: a}
		}
		if !found {
			return 0, &InputError{Err: ErrUnknownKeyword, Detail: a}
		}
	}
	return 1, nil
}

// parseShortOption handles one single-dash option starting at args[i],
// returning the number of args consumed (1, or 2 when the option takes
// its value from the following argv slot).
func parseShortOption(args []string, i int, p *Params, ov *overrides) (int, error) {
	a := args[i]
	next := func() (string, bool) {
		if i+1 < len(args) {
			return args[i+1], true
		}
		return "", false
	}

	switch {
	case a[1] == 'c':
		if len(a) > 2 {
			return 0, &InputError{Err: ErrUnknownOption, Detail: a}
		}
		v, ok := next()
		if !ok {
			return 0, &InputError{Err: ErrMissingArgument, Detail: a}
		}
		p.ConfigFile = v
		return 2, nil

	case a[1] == 'o':
		suffix := a[2:]
		if suffix != "" && suffix != "v" && suffix != "f" {
			return 0, &InputError{Err: ErrUnknownOption, Detail: a}
		}
		v, ok := next()
		if !ok {
			return 0, &InputError{Err: ErrMissingArgument, Detail: a}
		}
		switch suffix {
		case "v":
			p.SaveVertexFile = v
		case "f":
			p.SaveFacetFile = v
		default:
			p.SaveFile = v
		}
		return 2, nil

	case a[1] == 'n':
		if len(a) > 2 {
			return 0, &InputError{Err: ErrUnknownOption, Detail: a}
		}
		v, ok := next()
		if !ok {
			return 0, &InputError{Err: ErrMissingArgument, Detail: a}
		}
		p.ProblemName = v
		return 2, nil

	case a[1] == 'm':
		v, n, err := integerArg(args, i)
		if err != nil {
			return 0, err
		}
		if v < 0 || v > 3 {
			return 0, &InputError{Err: ErrArgumentOutOfRange, Detail: a}
		}
		ov.m, ov.mSet, ov.mVal = true, true, v
		return n, nil

	case a[1] == 'q':
		if len(a) > 2 {
			return 0, &InputError{Err: ErrUnknownOption, Detail: a}
		}
		ov.m, ov.mSet, ov.mVal = true, true, 0
		return 1, nil

	case a[1] == 'p':
		v, n, err := integerArg(args, i)
		if err != nil {
			return 0, err
		}
		if v < 0 || v > 1000000 {
			return 0, &InputError{Err: ErrArgumentOutOfRange, Detail: a}
		}
		ov.p, ov.pSet, ov.pVal = true, true, v
		return n, nil

	case a[1] == 'y':
		var v int
		switch a {
		case "-y", "-y+", "-y1":
			v = 1
		case "-y-", "-y0":
			v = 0
		default:
			return 0, &InputError{Err: ErrUnknownOption, Detail: a}
		}
		ov.y, ov.ySet, ov.yVal = true, true, v
		return 1, nil

	case a[1] == 'r':
		v, n, err := integerArg(args, i)
		if err != nil {
			return 0, err
		}
		if v < 0 || v > 1000000 {
			return 0, &InputError{Err: ErrArgumentOutOfRange, Detail: a}
		}
		ov.r, ov.rSet, ov.rVal = true, true, v
		return n, nil

	case a[1] == 'k':
		v, n, err := integerArg(args, i)
		if err != nil {
			return 0, err
		}
		if v < 0 || v > 1000000 {
			return 0, &InputError{Err: ErrArgumentOutOfRange, Detail: a}
		}
		ov.k, ov.kSet, ov.kVal = true, true, v
		return n, nil

	default:
		return 0, &InputError{Err: ErrUnknownOption, Detail: a}
	}
}

// integerArg implements the original's glued-or-separate integer
// argument convention: "-m2" and "-m 2" are both accepted. It returns
// the parsed value and how many argv slots it consumed (1 or 2).
func integerArg(args []string, i int) (int, int, error) {
	a := args[i]
	if len(a) > 2 {
		v, err := strconv.Atoi(a[2:])
		if err != nil {
			return 0, 0, &InputError{Err: ErrUnknownOption, Detail: a}
		}
		return v, 1, nil
	}
	if i+1 >= len(args) {
		return 0, 0, &InputError{Err: ErrMissingArgument, Detail: a}
	}
	v, err := strconv.Atoi(args[i+1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s requires an integer argument", ErrMissingArgument, a)
	}
	return v, 2, nil
}
