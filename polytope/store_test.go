package polytope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csirmaz-dd/innerdd/polytope"
)

func newTriangleStore(t *testing.T) (*polytope.Store, []int, []int) {
	t.Helper()
	s := polytope.NewStore(polytope.WithDimension(2))

	var vids []int
	for _, c := range [][]float64{{0, 0}, {1, 0}, {0, 1}} {
		vid, err := s.AddVertex(polytope.Vertex{Coords: c})
		require.NoError(t, err)
		vids = append(vids, vid)
	}

	var fids []int
	for _, eqn := range [][]float64{{-1, 0, 0}, {0, -1, 0}, {1, 1, -1}} {
		fid, err := s.AddFacet(polytope.Facet{Eqn: eqn})
		require.NoError(t, err)
		fids = append(fids, fid)
	}

	// Every vertex touches exactly two of the three facet half-spaces.
	require.NoError(t, s.SetAdjacent(vids[0], fids[0]))
	require.NoError(t, s.SetAdjacent(vids[0], fids[1]))
	require.NoError(t, s.SetAdjacent(vids[1], fids[1]))
	require.NoError(t, s.SetAdjacent(vids[1], fids[2]))
	require.NoError(t, s.SetAdjacent(vids[2], fids[0]))
	require.NoError(t, s.SetAdjacent(vids[2], fids[2]))

	return s, vids, fids
}

func TestStore_AddVertexAddFacet_GrowsOtherDimension(t *testing.T) {
	s := polytope.NewStore(polytope.WithDimension(2))

	vid, err := s.AddVertex(polytope.Vertex{Coords: []float64{0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 0, vid)

	fid, err := s.AddFacet(polytope.Facet{Eqn: []float64{1, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 0, fid)

	assert.NoError(t, s.SetAdjacent(vid, fid))
	through, err := s.FacetsThrough(vid)
	require.NoError(t, err)
	assert.Equal(t, []int{fid}, through)

	on, err := s.VerticesOn(fid)
	require.NoError(t, err)
	assert.Equal(t, []int{vid}, on)
}

func TestStore_AddVertex_RejectsWrongDimension(t *testing.T) {
	s := polytope.NewStore(polytope.WithDimension(3))
	_, err := s.AddVertex(polytope.Vertex{Coords: []float64{0, 0}})
	assert.ErrorIs(t, err, polytope.ErrBadDimension)
}

func TestStore_MarkFacetDeleted_ClearsAdjacencyAndInvariants(t *testing.T) {
	s, vids, fids := newTriangleStore(t)
	require.NoError(t, s.CheckInvariants())

	require.NoError(t, s.MarkFacetDeleted(fids[0]))

	_, err := s.VerticesOn(fids[0])
	assert.ErrorIs(t, err, polytope.ErrFacetDeleted)

	through, err := s.FacetsThrough(vids[0])
	require.NoError(t, err)
	assert.NotContains(t, through, fids[0])
	assert.NoError(t, s.CheckInvariants())
}

func TestStore_VertexNumFacetNum_ExcludeDeleted(t *testing.T) {
	s, _, fids := newTriangleStore(t)
	assert.Equal(t, 3, s.VertexNum())
	assert.Equal(t, 3, s.FacetNum())
	assert.Equal(t, 3, s.PendingNum()) // facets start as FacetPending

	require.NoError(t, s.MarkFacetDeleted(fids[0]))
	assert.Equal(t, 2, s.FacetNum())
}

func TestStore_Compress_RenumbersAndPreservesOrder(t *testing.T) {
	s, vids, fids := newTriangleStore(t)
	require.NoError(t, s.MarkFacetDeleted(fids[1]))

	require.NoError(t, s.Compress())
	assert.Equal(t, 2, s.FacetNum())

	// The surviving facets (fids[0], fids[2]) must have been renumbered to
	// 0 and 1 in their original relative order.
	f0, err := s.Facet(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0, 0}, f0.Eqn)

	f1, err := s.Facet(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, -1}, f1.Eqn)

	require.NoError(t, s.CheckInvariants())

	through, err := s.FacetsThrough(vids[0])
	require.NoError(t, err)
	assert.Equal(t, []int{0}, through)
}

func TestStore_CheckInvariants_CatchesUnderpopulatedFacet(t *testing.T) {
	s := polytope.NewStore(polytope.WithDimension(2))
	vid, err := s.AddVertex(polytope.Vertex{Coords: []float64{0, 0}})
	require.NoError(t, err)
	fid, err := s.AddFacet(polytope.Facet{Eqn: []float64{1, 0, 0}})
	require.NoError(t, err)
	require.NoError(t, s.SetAdjacent(vid, fid))

	err = s.CheckInvariants()
	assert.ErrorIs(t, err, polytope.ErrInconsistent)
}

func TestStore_IdealVertex_SkipsDimensionCheck(t *testing.T) {
	s := polytope.NewStore(polytope.WithDimension(3))
	vid, err := s.AddVertex(polytope.Vertex{Ideal: true, IdealAxis: 1})
	require.NoError(t, err)
	v, err := s.Vertex(vid)
	require.NoError(t, err)
	assert.True(t, v.Ideal)
}

func TestStore_NotFoundErrors(t *testing.T) {
	s := polytope.NewStore(polytope.WithDimension(2))
	_, err := s.Vertex(0)
	assert.ErrorIs(t, err, polytope.ErrVertexNotFound)
	_, err = s.Facet(0)
	assert.ErrorIs(t, err, polytope.ErrFacetNotFound)
	err = s.SetAdjacent(0, 0)
	assert.ErrorIs(t, err, polytope.ErrVertexNotFound)
}

func TestStore_InstabilityWarnings(t *testing.T) {
	s := polytope.NewStore()
	assert.Equal(t, 0, s.InstabilityWarnings())
	s.RecordInstabilityWarning()
	s.RecordInstabilityWarning()
	assert.Equal(t, 2, s.InstabilityWarnings())
}

func TestStore_Generation_AdvancesOnMutation(t *testing.T) {
	s := polytope.NewStore(polytope.WithDimension(1))
	g0 := s.Generation()
	_, err := s.AddVertex(polytope.Vertex{Coords: []float64{0}})
	require.NoError(t, err)
	assert.Greater(t, s.Generation(), g0)
}
