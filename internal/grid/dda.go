package grid

import (
	"math"

	"github.com/nvershinin/escat/internal/constants"
	"github.com/nvershinin/escat/internal/geom"
	"github.com/nvershinin/escat/internal/rng"
)

// Crossing is one successful ray/voxel-boundary intersection found by
// the DDA: the distance along the ray and the nudged point.
type Crossing struct {
	Distance float64
	Point    geom.Coordinate
	Voxel    geom.VoxelIndex
}

// Resolution decision (see DESIGN.md "Open Question decisions"): the
// spec's t_a* > 1 termination only makes dimensional sense if the
// search is bounded to the current scattering step's sampled length,
// not an unbounded ray. FindSurfaceCrossing/FindSolidCrossing therefore
// take an explicit maxDistance (the step length of the segment being
// traced) and internally scale the direction by it, so t in [0,1]
// is the fraction of this segment traversed -- a miss is "no crossing
// before the end of this segment (or the edge of the grid)".

// axisDDA is the mutable per-axis state of the 3D DDA loop.
type axisDDA struct {
	t, step, d, sign float64
}

func newAxisDDA(p0, d, h float64) axisDDA {
	sign := math.Copysign(1, d)
	if d == 0 {
		sign = 0
	}
	delta := -math.Mod(p0, h)
	var ind1, ind2 float64
	if sign > 0 {
		ind1 = h
	}
	if delta == 0 {
		ind2 = sign * h
	}
	t := math.Abs((delta + ind1 + ind2) / d)
	step := math.Abs(h / d)
	return axisDDA{t: t, step: step, d: d, sign: sign}
}

// guardedUnitDirection replaces any exactly-zero component of a unit
// direction with a uniform(-1e-6, 1e-6) jitter, per spec.md §4.3's
// "zero is recovered to Uniform(-1e-6, 1e-6) to avoid division by zero".
func guardedUnitDirection(d geom.Coordinate, src *rng.Source) geom.Coordinate {
	guard := func(v float64) float64 {
		if v == 0 {
			return src.Uniform(-constants.DDAZeroDirectionJitter, constants.DDAZeroDirectionJitter)
		}
		return v
	}
	return geom.Coordinate{Z: guard(d.Z), Y: guard(d.Y), X: guard(d.X)}
}

// find runs the unified 3D DDA described in spec.md §4.3 from start
// along unitDir for up to maxDistance, returning the first voxel
// satisfying predicate.
func find(start, unitDir geom.Coordinate, maxDistance float64, shape geom.Shape, predicate func(geom.VoxelIndex) bool, src *rng.Source) (Crossing, bool) {
	guarded := guardedUnitDirection(unitDir, src)
	d := geom.Scale(guarded, maxDistance)
	h := shape.CellDim

	axes := [3]axisDDA{
		newAxisDDA(start.Z, d.Z, h),
		newAxisDDA(start.Y, d.Y, h),
		newAxisDDA(start.X, d.X, h),
	}

	// Safety bound on iterations: a straight ray crosses at most
	// NZ+NY+NX cell boundaries before leaving the bounding box, at
	// which point the in-bounds check below returns a miss; this bound
	// (four times that, plus slack) only guards against floating-point
	// stalls.
	maxIterations := 4 * (shape.NZ + shape.NY + shape.NX + 4)

	for iter := 0; iter < maxIterations; iter++ {
		axis := 0
		if axes[1].t < axes[axis].t {
			axis = 1
		}
		if axes[2].t < axes[axis].t {
			axis = 2
		}

		if axes[axis].t > 1 {
			return Crossing{}, false
		}

		t := axes[axis].t
		p := geom.Add(start, geom.Scale(d, t))
		idx := geom.Index(p, h)
		if !idx.InBounds(shape) {
			return Crossing{}, false
		}
		if predicate(idx) {
			return Crossing{Distance: t * maxDistance, Point: p, Voxel: idx}, true
		}
		axes[axis].t += axes[axis].step
	}
	return Crossing{}, false
}

// FindSurfaceCrossing searches for the first surface cell along the
// ray from start, within maxDistance. The returned point is nudged
// 1e-3 nm backward (toward void) along each axis, symmetrically on
// all three axes -- the deliberate, spec-mandated fix for the
// teacher-flagged "pushed by sign*0.001 three times on index 0"
// ambiguity (spec.md §9).
func FindSurfaceCrossing(start, unitDir geom.Coordinate, maxDistance float64, shape geom.Shape, snap Snapshot, src *rng.Source) (Crossing, bool) {
	c, ok := find(start, unitDir, maxDistance, shape, snap.IsSurface, src)
	if !ok {
		return Crossing{}, false
	}
	c.Point = nudge(c.Point, unitDir, -constants.SurfaceNudge)
	return c, true
}

// FindSolidCrossing searches for the first solid-interior cell (grid
// label <= -1) along the ray from start, within maxDistance. The
// returned point is nudged 1e-3 nm forward (into solid) along each
// axis, symmetrically.
func FindSolidCrossing(start, unitDir geom.Coordinate, maxDistance float64, shape geom.Shape, snap Snapshot, src *rng.Source) (Crossing, bool) {
	c, ok := find(start, unitDir, maxDistance, shape, snap.IsSolid, src)
	if !ok {
		return Crossing{}, false
	}
	c.Point = nudge(c.Point, unitDir, constants.SolidNudge)
	return c, true
}

// nudge pushes p by amount along the sign of each axis of dir,
// independently per axis (not along the combined unit vector); a
// negative amount pushes against dir.
func nudge(p geom.Coordinate, dir geom.Coordinate, amount float64) geom.Coordinate {
	push := func(v, d float64) float64 {
		if d == 0 {
			return v
		}
		return v + math.Copysign(1, d)*amount
	}
	return geom.Coordinate{
		Z: push(p.Z, dir.Z),
		Y: push(p.Y, dir.Y),
		X: push(p.X, dir.X),
	}
}

// DualFlag classifies the result of a dual surface/solid search, per
// spec.md §4.4 step 3.c.
type DualFlag int

const (
	// FlagBothFound: surface crossing found, solid crossing found beyond it.
	FlagBothFound DualFlag = 0
	// FlagSurfaceOnly: surface found, but the solid search beyond it missed
	// (the ray re-exits to void before reaching solid interior).
	FlagSurfaceOnly DualFlag = 1
	// FlagMiss: the surface search itself missed -- the segment is fully void.
	FlagMiss DualFlag = 2
)

// DualCrossingResult bundles the outcome of FindDualCrossing.
type DualCrossingResult struct {
	Flag    DualFlag
	Surface Crossing
	Solid   Crossing
}

// FindDualCrossing implements spec.md §4.3's "both crossings" search
// used by the void-segment branch of the trajectory driver: first the
// surface crossing, then -- if found -- the solid crossing beyond it,
// searched over the remaining portion of maxDistance. Both crossings'
// Distance values are measured from start.
func FindDualCrossing(start, unitDir geom.Coordinate, maxDistance float64, shape geom.Shape, snap Snapshot, src *rng.Source) DualCrossingResult {
	surface, ok := FindSurfaceCrossing(start, unitDir, maxDistance, shape, snap, src)
	if !ok {
		return DualCrossingResult{Flag: FlagMiss}
	}

	remaining := maxDistance - surface.Distance
	if remaining <= 0 {
		return DualCrossingResult{Flag: FlagSurfaceOnly, Surface: surface}
	}

	solid, ok := FindSolidCrossing(surface.Point, unitDir, remaining, shape, snap, src)
	if !ok {
		return DualCrossingResult{Flag: FlagSurfaceOnly, Surface: surface}
	}
	solid.Distance += surface.Distance
	return DualCrossingResult{Flag: FlagBothFound, Surface: surface, Solid: solid}
}
