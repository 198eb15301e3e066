package config

// intKeyword describes one named, integer-valued configuration knob
// accepted both as a "NAME = VALUE" config-file line and as a
// "--NAME=VALUE" long command-line option. max bounds the accepted
// value (inclusive); the original program uses the same table shape for
// its small 0/1 and 0..3 "char" parameters and its larger iteration
// counters, so this module does too rather than inventing a distinct
// boolean type the original never had.
type intKeyword struct {
	name string
	max  int
	get  func(*Params) int
	set  func(*Params, int)
}

// floatKeyword mirrors intKeyword for the five tolerance parameters.
// The original bounds every tolerance to (1.01e-15, 0.99); this module
// keeps that exact bound rather than widening it, since nothing in
// spec.md asks for a different one.
type floatKeyword struct {
	name string
	get  func(*Params) float64
	set  func(*Params, float64)
}

const (
	minFloatKeyword = 1.01e-15
	maxFloatKeyword = 0.99
)

var intKeywords = []intKeyword{
	{"ReportLevel", 3, func(p *Params) int { return p.ReportLevel }, func(p *Params, v int) { p.ReportLevel = v }},
	{"PrintAsFraction", 1, func(p *Params) int { return p.PrintAsFraction }, func(p *Params, v int) { p.PrintAsFraction = v }},
	{"ShowVertices", 1, func(p *Params) int { return p.ShowVertices }, func(p *Params, v int) { p.ShowVertices = v }},
	{"ReportMemory", 1, func(p *Params) int { return p.ReportMemory }, func(p *Params, v int) { p.ReportMemory = v }},
	{"DumpVertices", 2, func(p *Params) int { return p.DumpVertices }, func(p *Params, v int) { p.DumpVertices = v }},
	{"DumpFacets", 2, func(p *Params) int { return p.DumpFacets }, func(p *Params, v int) { p.DumpFacets = v }},
	{"SaveVertices", 2, func(p *Params) int { return p.SaveVertices }, func(p *Params, v int) { p.SaveVertices = v }},
	{"SaveFacets", 2, func(p *Params) int { return p.SaveFacets }, func(p *Params, v int) { p.SaveFacets = v }},
	{"RandomFacet", 1, func(p *Params) int { return p.RandomFacet }, func(p *Params, v int) { p.RandomFacet = v }},
	{"ExactFacetEq", 1, func(p *Params) int { return p.ExactFacetEq }, func(p *Params, v int) { p.ExactFacetEq = v }},
	{"ExtractAfterBreak", 1, func(p *Params) int { return p.ExtractAfterBreak }, func(p *Params, v int) { p.ExtractAfterBreak = v }},
	{"ShuffleMatrix", 1, func(p *Params) int { return p.ShuffleMatrix }, func(p *Params, v int) { p.ShuffleMatrix = v }},
	{"RoundVertices", 1, func(p *Params) int { return p.RoundVertices }, func(p *Params, v int) { p.RoundVertices = v }},
	{"OracleMessage", 3, func(p *Params) int { return p.OracleMessage }, func(p *Params, v int) { p.OracleMessage = v }},
	{"OracleScale", 1, func(p *Params) int { return p.OracleScale }, func(p *Params, v int) { p.OracleScale = v }},
	{"OracleMethod", 1, func(p *Params) int { return p.OracleMethod }, func(p *Params, v int) { p.OracleMethod = v }},
	{"OracleRatioTest", 1, func(p *Params) int { return p.OracleRatioTest }, func(p *Params, v int) { p.OracleRatioTest = v }},
	{"OraclePricing", 1, func(p *Params) int { return p.OraclePricing }, func(p *Params, v int) { p.OraclePricing = v }},

	{"ShowProgress", 1000000, func(p *Params) int { return p.ShowProgress }, func(p *Params, v int) { p.ShowProgress = v }},
	{"RecalculateFacets", 1000000, func(p *Params) int { return p.RecalculateFacets }, func(p *Params, v int) { p.RecalculateFacets = v }},
	{"CheckConsistency", 1000000, func(p *Params) int { return p.CheckConsistency }, func(p *Params, v int) { p.CheckConsistency = v }},
	{"OracleOutFreq", 1000000, func(p *Params) int { return p.OracleOutFreq }, func(p *Params, v int) { p.OracleOutFreq = v }},
	{"OracleItLimit", 10000000, func(p *Params) int { return p.OracleItLimit }, func(p *Params, v int) { p.OracleItLimit = v }},
	{"OracleTimeLimit", 1000000, func(p *Params) int { return p.OracleTimeLimit }, func(p *Params, v int) { p.OracleTimeLimit = v }},
}

var floatKeywords = []floatKeyword{
	{"RoundEps", func(p *Params) float64 { return p.RoundEps }, func(p *Params, v float64) { p.RoundEps = v }},
	{"ScaleEps", func(p *Params) float64 { return p.ScaleEps }, func(p *Params, v float64) { p.ScaleEps = v }},
	{"PolytopeEps", func(p *Params) float64 { return p.PolytopeEps }, func(p *Params, v float64) { p.PolytopeEps = v }},
	{"LineqEps", func(p *Params) float64 { return p.LineqEps }, func(p *Params, v float64) { p.LineqEps = v }},
	{"FacetRecalcEps", func(p *Params) float64 { return p.FacetRecalcEps }, func(p *Params, v float64) { p.FacetRecalcEps = v }},
}

func findIntKeyword(name string) (intKeyword, bool) {
	for _, k := range intKeywords {
		if k.name == name {
			return k, true
		}
	}
	return intKeyword{}, false
}

func findFloatKeyword(name string) (floatKeyword, bool) {
	for _, k := range floatKeywords {
		if k.name == name {
			return k, true
		}
	}
	return floatKeyword{}, false
}
