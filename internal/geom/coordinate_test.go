package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSubScale(t *testing.T) {
	a := Coordinate{Z: 1, Y: 2, X: 3}
	b := Coordinate{Z: 0.5, Y: 0.5, X: 0.5}
	assert.Equal(t, Coordinate{Z: 1.5, Y: 2.5, X: 3.5}, Add(a, b))
	assert.Equal(t, Coordinate{Z: 0.5, Y: 1.5, X: 2.5}, Sub(a, b))
	assert.Equal(t, Coordinate{Z: 2, Y: 4, X: 6}, Scale(a, 2))
}

func TestNormAndDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Norm(Coordinate{Z: 3, Y: 4, X: 0}), 1e-9)
	assert.InDelta(t, 5.0, Distance(Coordinate{}, Coordinate{Z: 3, Y: 4, X: 0}), 1e-9)
}

func TestIndexAndInBounds(t *testing.T) {
	shape := Shape{NZ: 10, NY: 10, NX: 10, CellDim: 2}
	idx := Index(Coordinate{Z: 5, Y: 5, X: 5}, shape.CellDim)
	assert.Equal(t, VoxelIndex{I: 2, J: 2, K: 2}, idx)
	assert.True(t, idx.InBounds(shape))
	assert.False(t, VoxelIndex{I: -1, J: 0, K: 0}.InBounds(shape))
	assert.False(t, VoxelIndex{I: 10, J: 0, K: 0}.InBounds(shape))
}

func TestShapeAbs(t *testing.T) {
	shape := Shape{NZ: 10, NY: 20, NX: 30, CellDim: 2}
	assert.Equal(t, Coordinate{Z: 20, Y: 40, X: 60}, shape.Abs())
}

func TestClampedInsideBoxIsUnchanged(t *testing.T) {
	abs := Coordinate{Z: 100, Y: 100, X: 100}
	c, didClamp := Clamped(Coordinate{Z: 50, Y: 50, X: 50}, abs, 1e-6, 1e-6)
	assert.False(t, didClamp)
	assert.Equal(t, Coordinate{Z: 50, Y: 50, X: 50}, c)
}

func TestClampedOutsideBoxIsJitteredOffFace(t *testing.T) {
	abs := Coordinate{Z: 100, Y: 100, X: 100}
	c, didClamp := Clamped(Coordinate{Z: -5, Y: 50, X: 105}, abs, 1e-6, 1e-6)
	assert.True(t, didClamp)
	assert.InDelta(t, 2e-6, c.Z, 1e-12)
	assert.Equal(t, 50.0, c.Y)
	assert.InDelta(t, 100-2e-6, c.X, 1e-12)
}
