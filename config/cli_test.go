package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csirmaz-dd/innerdd/config"
)

func TestParseArgs_Defaults(t *testing.T) {
	action, p, err := config.Load([]string{"problem.vlp"})
	require.NoError(t, err)
	require.Equal(t, config.ActionSolve, action)
	assert.Equal(t, "problem.vlp", p.VlpFile)
	assert.Equal(t, "problem.vlp", p.ProblemName)
	assert.Equal(t, 100, p.RecalculateFacets)
	assert.Equal(t, 1.3e-8, p.PolytopeEps)
}

func TestParseArgs_MissingVlpFile(t *testing.T) {
	_, _, err := config.Load([]string{"-m2"})
	assert.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNoInputFile)
}

func TestParseArgs_MultipleVlpFiles(t *testing.T) {
	_, _, err := config.Load([]string{"a.vlp", "b.vlp"})
	assert.ErrorIs(t, err, config.ErrMultipleInputFiles)
}

func TestParseArgs_HelpActions(t *testing.T) {
	cases := map[string]config.Action{
		"--help":     config.ActionLongHelp,
		"--help=vlp": config.ActionVLPHelp,
		"--help=out": config.ActionOutHelp,
		"--version":  config.ActionVersion,
		"--dump":     config.ActionDumpConfig,
		"-h":         config.ActionShortHelp,
	}
	for arg, want := range cases {
		action, p, err := config.Load([]string{arg})
		require.NoError(t, err)
		assert.Equal(t, want, action)
		assert.Nil(t, p)
	}
}

func TestParseArgs_NoArgsIsShortHelp(t *testing.T) {
	action, p, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, config.ActionShortHelp, action)
	assert.Nil(t, p)
}

func TestParseArgs_MGlued(t *testing.T) {
	_, p, err := config.Load([]string{"-m2", "x.vlp"})
	require.NoError(t, err)
	assert.Equal(t, 2, p.OracleMessage)
	assert.Equal(t, 2, p.ReportLevel)
}

func TestParseArgs_MSeparate(t *testing.T) {
	_, p, err := config.Load([]string{"-m", "3", "x.vlp"})
	require.NoError(t, err)
	assert.Equal(t, 3, p.OracleMessage)
}

func TestParseArgs_QIsQuiet(t *testing.T) {
	_, p, err := config.Load([]string{"-q", "x.vlp"})
	require.NoError(t, err)
	assert.Equal(t, 0, p.OracleMessage)
}

func TestParseArgs_RFloorsSmallValues(t *testing.T) {
	_, p, err := config.Load([]string{"-r", "3", "x.vlp"})
	require.NoError(t, err)
	assert.Equal(t, 5, p.RecalculateFacets)
}

func TestParseArgs_RZeroStaysZero(t *testing.T) {
	_, p, err := config.Load([]string{"-r", "0", "x.vlp"})
	require.NoError(t, err)
	assert.Equal(t, 0, p.RecalculateFacets)
}

func TestParseArgs_KHasNoFloor(t *testing.T) {
	_, p, err := config.Load([]string{"-k", "3", "x.vlp"})
	require.NoError(t, err)
	assert.Equal(t, 3, p.CheckConsistency)
}

func TestParseArgs_YFlags(t *testing.T) {
	_, p, err := config.Load([]string{"-y-", "x.vlp"})
	require.NoError(t, err)
	assert.Equal(t, 0, p.ShowVertices)

	_, p, err = config.Load([]string{"-y+", "x.vlp"})
	require.NoError(t, err)
	assert.Equal(t, 1, p.ShowVertices)
}

func TestParseArgs_OutputFiles(t *testing.T) {
	_, p, err := config.Load([]string{"-o", "out.txt", "-ov", "v.txt", "-of", "f.txt", "x.vlp"})
	require.NoError(t, err)
	assert.Equal(t, "out.txt", p.SaveFile)
	assert.Equal(t, "v.txt", p.SaveVertexFile)
	assert.Equal(t, "f.txt", p.SaveFacetFile)
	// SaveVertices/SaveFacets default to 2 (save partial results too); since
	// a save path was given and the keyword wasn't otherwise touched, the
	// default is kept rather than forced down to 1.
	assert.Equal(t, 2, p.SaveVertices)
	assert.Equal(t, 2, p.SaveFacets)
}

func TestParseArgs_ProblemNameFromBasename(t *testing.T) {
	_, p, err := config.Load([]string{filepath.Join("path", "to", "cube.vlp")})
	require.NoError(t, err)
	assert.Equal(t, "cube.vlp", p.ProblemName)
}

func TestParseArgs_ExplicitName(t *testing.T) {
	_, p, err := config.Load([]string{"--name=mycube", "x.vlp"})
	require.NoError(t, err)
	assert.Equal(t, "mycube", p.ProblemName)
}

func TestParseArgs_KeywordLongOption(t *testing.T) {
	_, p, err := config.Load([]string{"--PolytopeEps=1e-10", "x.vlp"})
	require.NoError(t, err)
	assert.Equal(t, 1e-10, p.PolytopeEps)
}

func TestParseArgs_UnknownOption(t *testing.T) {
	_, _, err := config.Load([]string{"-z", "x.vlp"})
	assert.ErrorIs(t, err, config.ErrUnknownOption)
}

func TestParseArgs_NoOutputRequested(t *testing.T) {
	_, _, err := config.Load([]string{"-y-", "--DumpVertices=0", "--DumpFacets=0", "x.vlp"})
	assert.ErrorIs(t, err, config.ErrNoOutputRequested)
}

func TestReadConfigFile_AppliesUnfilledKeywords(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "inner.cfg")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"# a comment\nRecalculateFacets = 42\nCheckConsistency = 7 # inline comment\n"), 0o644))

	_, p, err := config.Load([]string{"-c", cfgPath, "x.vlp"})
	require.NoError(t, err)
	assert.Equal(t, 42, p.RecalculateFacets)
	assert.Equal(t, 7, p.CheckConsistency)
}

func TestReadConfigFile_CLIKeywordWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "inner.cfg")
	require.NoError(t, os.WriteFile(cfgPath, []byte("RecalculateFacets = 42\n"), 0o644))

	_, p, err := config.Load([]string{"--RecalculateFacets=9", "-c", cfgPath, "x.vlp"})
	require.NoError(t, err)
	assert.Equal(t, 9, p.RecalculateFacets)
}

func TestReadConfigFile_UnknownKeywordIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "inner.cfg")
	require.NoError(t, os.WriteFile(cfgPath, []byte("NotAKeyword = 1\n"), 0o644))

	_, _, err := config.Load([]string{"-c", cfgPath, "x.vlp"})
	assert.ErrorIs(t, err, config.ErrUnknownKeyword)
}

func TestReadConfigFile_OutOfRangeIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "inner.cfg")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ReportLevel = 9\n"), 0o644))

	_, _, err := config.Load([]string{"-c", cfgPath, "x.vlp"})
	assert.ErrorIs(t, err, config.ErrKeywordOutOfRange)
}
