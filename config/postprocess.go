package config

import "path/filepath"

// PostProcess reconciles the overrides gathered by ParseArgs with
// Params (which may since have been amended by ReadConfigFile), derives
// ProblemName from VlpFile when absent, resolves the save-file triple
// into concrete SaveVertices/SaveFacets flags, and rejects a
// configuration that has nowhere to send its results.
func PostProcess(p *Params, ov *overrides) error {
	if ov.mSet {
		p.OracleMessage = ov.mVal
		p.ReportLevel = ov.mVal
	}
	if ov.ySet {
		p.ShowVertices = ov.yVal
	}
	if ov.pSet {
		v := ov.pVal
		if v < 5 {
			v = 0
		}
		p.ShowProgress = v
	}
	if ov.rSet {
		// Open Question 1 (spec.md): -r floors 0<N<5 to 5; -k below does
		// not receive the same floor. Confirmed against the original
		// program as deliberate, asymmetric, historical behavior, not a
		// distillation artifact; preserved exactly rather than "fixed".
		v := ov.rVal
		if v > 0 && v < 5 {
			v = 5
		}
		p.RecalculateFacets = v
	}
	if ov.kSet {
		p.CheckConsistency = ov.kVal
	}

	if p.SaveFile != "" {
		if p.SaveVertexFile != "" && p.SaveFile == p.SaveVertexFile {
			p.SaveVertexFile = ""
		}
		if p.SaveFacetFile != "" && p.SaveFile == p.SaveFacetFile {
			p.SaveFacetFile = ""
		}
	}
	if p.SaveFile != "" || p.SaveVertexFile != "" {
		if p.SaveVertices == 0 {
			p.SaveVertices = 1
		}
	} else {
		p.SaveVertices = 0
	}
	if p.SaveFile != "" || p.SaveFacetFile != "" {
		if p.SaveFacets == 0 {
			p.SaveFacets = 1
		}
	} else {
		p.SaveFacets = 0
	}

	if err := Validate(p); err != nil {
		return err
	}

	if p.ProblemName == "" {
		p.ProblemName = filepath.Base(p.VlpFile)
	}
	return nil
}

// Validate reports ErrNoOutputRequested when every output channel
// (immediate vertex printing, the two dump flags, the two save flags)
// is disabled, matching the original's "all computation would be lost"
// fatal check (SUPPLEMENTED FEATURE 6).
func Validate(p *Params) error {
	if p.ShowVertices == 0 && p.DumpVertices == 0 && p.DumpFacets == 0 &&
		p.SaveVertices == 0 && p.SaveFacets == 0 {
		return &InputError{Err: ErrNoOutputRequested}
	}
	return nil
}

// Load runs the full pipeline spec §6 describes: parse the command
// line, read the config file it names (if any), fill in anything still
// unset from Defaults, and postprocess. It is the single entry point
// cmd/innerdd calls for ActionSolve.
func Load(args []string) (Action, *Params, error) {
	action, p, ov, f, err := ParseArgs(args)
	if err != nil || action != ActionSolve {
		return action, nil, err
	}

	if p.ConfigFile != "" {
		if err := ReadConfigFile(p.ConfigFile, p, f); err != nil {
			return 0, nil, err
		}
	}
	if err := PostProcess(p, ov); err != nil {
		return 0, nil, err
	}
	return ActionSolve, p, nil
}
