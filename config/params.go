package config

// Params is the complete parameter surface of the solver (spec §6):
// algorithm tolerances and knobs, oracle tuning, reporting behavior, and
// the file paths gathered from the command line. Every field here has a
// corresponding entry in either intKeywords or floatKeywords (see
// keywords.go), or is set directly by command-line parsing
// (VlpFile, ConfigFile, ProblemName, the Save*File paths).
type Params struct {
	// Algorithm (DD engine) parameters.
	RandomFacet       int // 0/1
	ExactFacetEq      int // 0/1
	RecalculateFacets int
	CheckConsistency  int
	ExtractAfterBreak int // 0/1

	// Oracle parameters.
	OracleMessage   int // 0..3
	OracleMethod    int // 0/1
	OraclePricing   int // 0/1
	OracleRatioTest int // 0/1
	OracleScale     int // 0/1
	OracleOutFreq   int
	OracleTimeLimit int
	OracleItLimit   int
	ShuffleMatrix   int // 0/1
	RoundVertices   int // 0/1

	// Tolerances.
	RoundEps       float64
	ScaleEps       float64
	PolytopeEps    float64
	LineqEps       float64
	FacetRecalcEps float64

	// Reporting.
	ReportLevel     int // 0..3
	ShowProgress    int
	ShowVertices    int // 0/1
	PrintAsFraction int // 0/1
	ReportMemory    int // 0/1
	DumpVertices    int // 0..2
	DumpFacets      int // 0..2
	SaveVertices    int // 0..2
	SaveFacets      int // 0..2

	// File paths and problem identity, set only by the CLI layer.
	VlpFile        string
	ConfigFile     string
	ProblemName    string
	SaveFile       string
	SaveVertexFile string
	SaveFacetFile  string
}

// Defaults mirrors original_source/params.c's DEF_* constants exactly;
// a later Go release of this program is free to change behavior, but
// this repository preserves the original numbers verbatim.
func Defaults() Params {
	return Params{
		RandomFacet:       0,
		ExactFacetEq:      0,
		RecalculateFacets: 100,
		CheckConsistency:  0,
		ExtractAfterBreak: 1,

		OracleMessage:   1,
		OracleMethod:    0,
		OraclePricing:   1,
		OracleRatioTest: 1,
		OracleScale:     1,
		OracleOutFreq:   10,
		OracleTimeLimit: 20,
		OracleItLimit:   10000,
		ShuffleMatrix:   1,
		RoundVertices:   1,

		RoundEps:       1e-9,
		ScaleEps:       3e-9,
		PolytopeEps:    1.3e-8,
		LineqEps:       8e-8,
		FacetRecalcEps: 1e-6,

		ReportLevel:     3,
		ShowProgress:    5,
		ShowVertices:    1,
		PrintAsFraction: 1,
		ReportMemory:    0,
		DumpVertices:    2,
		DumpFacets:      0,
		SaveVertices:    2,
		SaveFacets:      2,
	}
}
