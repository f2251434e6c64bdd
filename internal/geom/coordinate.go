// Package geom holds the coordinate and shape types shared by the
// grid, electron and trajectory packages. Coordinates are kept as
// plain (z, y, x) scalar triples, and arithmetic is free-function
// style rather than operator-overloaded, matching the scalar-field
// discipline the teacher model uses throughout.
package geom

import "math"

// Coordinate is a point or direction triple in nanometers, ordered
// (z, y, x) so that z=0 is the bottom face of the volume and
// z=Z_abs is the top face.
type Coordinate struct {
	Z, Y, X float64
}

// Shape is the grid dimensions in cells (NZ, NY, NX) paired with the
// same multiplied out by CellDim to give the absolute bounding box.
type Shape struct {
	NZ, NY, NX int
	CellDim    float64
}

// Abs returns the absolute bounding box (Z_abs, Y_abs, X_abs) in nm.
func (s Shape) Abs() Coordinate {
	return Coordinate{
		Z: float64(s.NZ) * s.CellDim,
		Y: float64(s.NY) * s.CellDim,
		X: float64(s.NX) * s.CellDim,
	}
}

// Add returns a+b componentwise.
func Add(a, b Coordinate) Coordinate {
	return Coordinate{Z: a.Z + b.Z, Y: a.Y + b.Y, X: a.X + b.X}
}

// Sub returns a-b componentwise.
func Sub(a, b Coordinate) Coordinate {
	return Coordinate{Z: a.Z - b.Z, Y: a.Y - b.Y, X: a.X - b.X}
}

// Scale returns c*t componentwise.
func Scale(c Coordinate, t float64) Coordinate {
	return Coordinate{Z: c.Z * t, Y: c.Y * t, X: c.X * t}
}

// Norm returns the Euclidean length of c.
func Norm(c Coordinate) float64 {
	return math.Sqrt(c.Z*c.Z + c.Y*c.Y + c.X*c.X)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Coordinate) float64 {
	return Norm(Sub(a, b))
}

// VoxelIndex is an (i,j,k) = (z,y,x) cell index; Index computes it
// from a point as ⌊p/h⌋ componentwise.
type VoxelIndex struct {
	I, J, K int
}

// Index returns the voxel index containing point p under cell size h.
func Index(p Coordinate, h float64) VoxelIndex {
	return VoxelIndex{
		I: int(math.Floor(p.Z / h)),
		J: int(math.Floor(p.Y / h)),
		K: int(math.Floor(p.X / h)),
	}
}

// InBounds reports whether index idx addresses a cell within a grid
// of the given shape.
func (idx VoxelIndex) InBounds(s Shape) bool {
	return idx.I >= 0 && idx.I < s.NZ &&
		idx.J >= 0 && idx.J < s.NY &&
		idx.K >= 0 && idx.K < s.NX
}

// Clamped returns a copy of c with each axis clamped into
// [eps, axisAbs-eps], and reports whether any axis required clamping.
// A clamped axis is additionally jittered off the face by jitter, so
// the returned point never sits exactly on a bounding-box face.
func Clamped(c Coordinate, abs Coordinate, eps, jitter float64) (clamped Coordinate, didClamp bool) {
	clamp := func(v, max float64) (float64, bool) {
		if v < eps {
			return eps + jitter, true
		}
		if v > max-eps {
			return max - eps - jitter, true
		}
		return v, false
	}
	var cz, cy, cx bool
	clamped.Z, cz = clamp(c.Z, abs.Z)
	clamped.Y, cy = clamp(c.Y, abs.Y)
	clamped.X, cx = clamp(c.X, abs.X)
	didClamp = cz || cy || cx
	return
}
