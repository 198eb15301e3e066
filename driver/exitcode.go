package driver

import "github.com/csirmaz-dd/innerdd/ddengine"

// ExitCode is the process exit status spec §6/§7 define. InputError
// conditions (exit 1) are decided entirely within the config/vlp layers
// before the driver loop ever starts, so ExitFromResult never returns 1;
// cmd/innerdd returns it directly from config/vlp errors instead.
type ExitCode int

const (
	ExitOK                    ExitCode = 0
	ExitInputError            ExitCode = 1
	ExitNumericalError        ExitCode = 2
	ExitInterrupted           ExitCode = 3
	ExitPostExtractError      ExitCode = 4
	ExitInterruptedDuringPost ExitCode = 5
)

// ExitFromResult maps a terminal ddengine.Result onto the exit code
// taxonomy of spec §7: ordinary completion is 0; a second interrupt
// observed mid-post-extract is 5; any other fatal error raised while
// post-extract was running is 4 (it already has a partial result from
// before the interrupt, but the extraction itself failed); a plain
// interrupt (with or without a completed post-extract pass) is 3; every
// other abort is 2.
func ExitFromResult(r ddengine.Result) ExitCode {
	switch r.Outcome {
	case ddengine.Completed:
		return ExitOK
	case ddengine.Interrupted:
		if r.SecondInterrupt {
			return ExitInterruptedDuringPost
		}
		return ExitInterrupted
	default: // Aborted
		if r.PostExtractAttempted {
			return ExitPostExtractError
		}
		return ExitNumericalError
	}
}
