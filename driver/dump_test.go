package driver_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csirmaz-dd/innerdd/config"
	"github.com/csirmaz-dd/innerdd/driver"
	"github.com/csirmaz-dd/innerdd/polytope"
)

func buildTwoVertexStore(t *testing.T) *polytope.Store {
	t.Helper()
	store := polytope.NewStore(polytope.WithDimension(2))
	_, err := store.AddVertex(polytope.Vertex{Coords: []float64{0, 0}})
	require.NoError(t, err)
	_, err = store.AddVertex(polytope.Vertex{Coords: []float64{1, 0.5}})
	require.NoError(t, err)
	fid, err := store.AddFacet(polytope.Facet{Eqn: []float64{1, 0, 0}, Status: polytope.FacetPending})
	require.NoError(t, err)
	require.NoError(t, store.MarkFacetFinal(fid))
	return store
}

func TestDumpAndSave_DumpsVerticesToStdout(t *testing.T) {
	store := buildTwoVertexStore(t)
	p := config.Defaults()
	p.DumpVertices = 2
	p.DumpFacets = 0
	p.SaveVertices = 0
	p.SaveFacets = 0
	p.PrintAsFraction = 0

	var buf bytes.Buffer
	require.NoError(t, driver.DumpAndSave(store, p, false, true, &buf))
	out := buf.String()
	assert.Contains(t, out, "V 0 0")
	assert.Contains(t, out, "V 1 0.5")
}

func TestDumpAndSave_SkipsWhenDumpLevelIsNever(t *testing.T) {
	store := buildTwoVertexStore(t)
	p := config.Defaults()
	p.DumpVertices = 0
	p.DumpFacets = 0
	p.SaveVertices = 0
	p.SaveFacets = 0

	var buf bytes.Buffer
	require.NoError(t, driver.DumpAndSave(store, p, false, true, &buf))
	assert.Empty(t, buf.String())
}

func TestDumpAndSave_OnNormalExitOnlyIsSkippedOnPartialResult(t *testing.T) {
	store := buildTwoVertexStore(t)
	p := config.Defaults()
	p.DumpVertices = 1
	p.DumpFacets = 0
	p.SaveVertices = 0
	p.SaveFacets = 0

	var buf bytes.Buffer
	require.NoError(t, driver.DumpAndSave(store, p, false, false, &buf))
	assert.Empty(t, buf.String())
}

func TestDumpAndSave_SavesVerticesToFile(t *testing.T) {
	store := buildTwoVertexStore(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "out.sol")

	p := config.Defaults()
	p.DumpVertices = 0
	p.DumpFacets = 0
	p.SaveVertices = 2
	p.SaveFacets = 0
	p.SaveFile = path

	var buf bytes.Buffer
	require.NoError(t, driver.DumpAndSave(store, p, false, true, &buf))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "V 0 0")
}

func TestDumpAndSave_SaveVertexFileOverridesSaveFile(t *testing.T) {
	store := buildTwoVertexStore(t)
	dir := t.TempDir()
	shared := filepath.Join(dir, "shared.sol")
	vertexOnly := filepath.Join(dir, "vertices.sol")

	p := config.Defaults()
	p.DumpVertices = 0
	p.DumpFacets = 0
	p.SaveVertices = 2
	p.SaveFacets = 0
	p.SaveFile = shared
	p.SaveVertexFile = vertexOnly

	var buf bytes.Buffer
	require.NoError(t, driver.DumpAndSave(store, p, false, true, &buf))

	_, err := os.Stat(shared)
	assert.True(t, os.IsNotExist(err))
	content, err := os.ReadFile(vertexOnly)
	require.NoError(t, err)
	assert.Contains(t, string(content), "V 0 0")
}

func TestDumpAndSave_MaximizeFlipsSignOnDump(t *testing.T) {
	store := buildTwoVertexStore(t)
	p := config.Defaults()
	p.DumpVertices = 2
	p.DumpFacets = 0
	p.SaveVertices = 0
	p.SaveFacets = 0
	p.PrintAsFraction = 0

	var buf bytes.Buffer
	require.NoError(t, driver.DumpAndSave(store, p, true, true, &buf))
	assert.Contains(t, buf.String(), "V -1 -0.5")
}
