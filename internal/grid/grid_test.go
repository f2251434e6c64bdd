package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvershinin/escat/internal/geom"
	"github.com/nvershinin/escat/internal/rng"
)

func block(shape geom.Shape) Snapshot {
	snap := New(shape)
	for i := 0; i < shape.NZ; i++ {
		for j := 0; j < shape.NY; j++ {
			for k := 0; k < shape.NX; k++ {
				snap.SetLabel(geom.VoxelIndex{I: i, J: j, K: k}, -2)
			}
		}
	}
	top := shape.NZ - 1
	for j := 0; j < shape.NY; j++ {
		for k := 0; k < shape.NX; k++ {
			snap.SetSurface(geom.VoxelIndex{I: top, J: j, K: k}, true)
		}
	}
	return snap
}

func TestSnapshotValidate(t *testing.T) {
	shape := geom.Shape{NZ: 2, NY: 2, NX: 2, CellDim: 1}
	snap := New(shape)
	assert.NoError(t, snap.Validate())

	bad := snap
	bad.Grid = bad.Grid[:1]
	assert.Error(t, bad.Validate())
}

func TestHighestSolidIndex(t *testing.T) {
	shape := geom.Shape{NZ: 10, NY: 10, NX: 10, CellDim: 1}
	snap := New(shape)
	_, found := snap.HighestSolidIndex(5, 5)
	assert.False(t, found)

	snap.SetLabel(geom.VoxelIndex{I: 3, J: 5, K: 5}, -2)
	top, found := snap.HighestSolidIndex(5, 5)
	require.True(t, found)
	assert.Equal(t, 3, top)
}

func TestFindSurfaceCrossingHitsTopOfBlock(t *testing.T) {
	shape := geom.Shape{NZ: 20, NY: 20, NX: 20, CellDim: 2}
	snap := block(shape)
	src := rng.ForElectron(1, 0)

	start := geom.Coordinate{Z: 20, Y: 10, X: 10}
	dir := geom.Coordinate{Z: 1, Y: 0, X: 0}
	c, ok := FindSurfaceCrossing(start, dir, 20, shape, snap, src)
	require.True(t, ok)
	assert.InDelta(t, 38, c.Point.Z, 0.1)
}

func TestFindReturnsMissBeyondMaxDistance(t *testing.T) {
	shape := geom.Shape{NZ: 20, NY: 20, NX: 20, CellDim: 2}
	snap := block(shape)
	src := rng.ForElectron(1, 0)

	start := geom.Coordinate{Z: 20, Y: 10, X: 10}
	dir := geom.Coordinate{Z: 1, Y: 0, X: 0}
	_, ok := FindSurfaceCrossing(start, dir, 10, shape, snap, src)
	assert.False(t, ok)
}

func TestFindDualCrossingThroughThinWallFindsWallAsSolid(t *testing.T) {
	shape := geom.Shape{NZ: 10, NY: 10, NX: 10, CellDim: 1}
	snap := New(shape)
	// a single solid layer at i=5 spanning the whole (j,k) plane: a
	// thin wall the ray clips through. The wall voxel is both the
	// surface crossing and the first solid (label <= -1) voxel beyond
	// the void-side surface point, so both crossings are found.
	for j := 0; j < shape.NY; j++ {
		for k := 0; k < shape.NX; k++ {
			idx := geom.VoxelIndex{I: 5, J: j, K: k}
			snap.SetLabel(idx, -2)
			snap.SetSurface(idx, true)
		}
	}
	src := rng.ForElectron(1, 0)

	start := geom.Coordinate{Z: 8, Y: 5, X: 5}
	dir := geom.Coordinate{Z: -1, Y: 0, X: 0}
	result := FindDualCrossing(start, dir, 5, shape, snap, src)
	require.Equal(t, FlagBothFound, result.Flag)
	assert.Greater(t, result.Surface.Distance, 0.0)
}

func TestFindDualCrossingThroughThickBlockFindsBoth(t *testing.T) {
	shape := geom.Shape{NZ: 20, NY: 20, NX: 20, CellDim: 2}
	snap := block(shape)
	src := rng.ForElectron(1, 0)

	start := geom.Coordinate{Z: 20, Y: 10, X: 10}
	dir := geom.Coordinate{Z: 1, Y: 0, X: 0}
	result := FindDualCrossing(start, dir, 20, shape, snap, src)
	require.Equal(t, FlagBothFound, result.Flag)
	assert.Greater(t, result.Solid.Distance, result.Surface.Distance)
}

func TestFindDualCrossingMissesInPureVoid(t *testing.T) {
	shape := geom.Shape{NZ: 10, NY: 10, NX: 10, CellDim: 1}
	snap := New(shape)
	src := rng.ForElectron(1, 0)

	start := geom.Coordinate{Z: 8, Y: 5, X: 5}
	dir := geom.Coordinate{Z: -1, Y: 0, X: 0}
	result := FindDualCrossing(start, dir, 5, shape, snap, src)
	assert.Equal(t, FlagMiss, result.Flag)
}
