package trajectory

import (
	"github.com/nvershinin/escat/internal/constants"
	"github.com/nvershinin/escat/internal/electron"
	"github.com/nvershinin/escat/internal/geom"
	"github.com/nvershinin/escat/internal/grid"
	"github.com/nvershinin/escat/internal/material"
	"github.com/nvershinin/escat/internal/physics"
	"github.com/nvershinin/escat/internal/rng"
)

// traceElectron runs the full driver of spec.md §4.4 for one incident
// electron, entering at the top face at (y0, x0) with energy e0, and
// returns its finished trajectory.
//
// Resolution decisions (the last two are also recorded in DESIGN.md
// "Open Question decisions"):
//   - the empty-column fast path (no solid anywhere below the entry)
//     pushes a second point at the bottom face and closes, giving the
//     2-point trajectory spec.md §8's S1 scenario expects;
//   - in the void branch's dual-crossing handling, a FlagMiss pushes
//     the proposed (possibly clamped) endpoint unchanged; a
//     FlagSurfaceOnly is treated identically to FlagBothFound for the
//     c_s push, with the solid-exit push simply omitted;
//   - the active material carries across void segments unchanged (the
//     spec's material-switch language is scoped to the solid-segment
//     branch only) and is re-resolved whenever a new solid voxel is
//     entered, whether via the main solid branch or the dual
//     crossing's c_s entry.
func traceElectron(electronIndex int, y0, x0, e0, eMin float64, snap grid.Snapshot, materials material.Table, src *rng.Source) (Result, error) {
	h := snap.Shape.CellDim
	abs := snap.Shape.Abs()

	entry := geom.Coordinate{Z: abs.Z - constants.TopFaceInset, Y: y0, X: x0}
	st := electron.New(entry, e0, geom.Coordinate{Z: -1, Y: 0, X: 0})

	rec := newRecord(8)
	rec.push(entry, e0, 0.0)

	errState := func() electron.State { return st }

	idx := geom.Index(entry, h)
	if !idx.InBounds(snap.Shape) {
		return Result{}, newInvalidInput(electronIndex, "beam entry (%v, %v) lies outside the grid", y0, x0)
	}

	var currentLabel float64
	if label := snap.LabelAt(idx); label > -1 {
		top, found := snap.HighestSolidIndex(idx.J, idx.K)
		if !found {
			bottom := geom.Coordinate{Z: constants.Epsilon, Y: entry.Y, X: entry.X}
			rec.push(bottom, e0, 0.0)
			return rec.Into(), nil
		}
		solidLabel := snap.LabelAt(geom.VoxelIndex{I: top, J: idx.J, K: idx.K})
		dropPoint := geom.Coordinate{Z: float64(top+1)*h - constants.TopFaceInset, Y: entry.Y, X: entry.X}
		st.RecordPoint(dropPoint)
		rec.push(dropPoint, e0, 0.0)
		currentLabel = solidLabel
	} else {
		currentLabel = label
	}

	mat, ok := materials.ByMark(int(currentLabel))
	if !ok {
		return Result{}, newGridConsistencyError(electronIndex, errState(), "no material with mark %d", int(currentLabel))
	}

	for st.Energy > eMin {
		alpha := physics.ScreeningParameter(st.Energy, mat.AtomicNumber)
		sigma := physics.ElasticCrossSection(st.Energy, mat.AtomicNumber, alpha)
		mfp := physics.ElasticMeanFreePath(mat.AtomicWeight, mat.Density, sigma)

		u := src.Uniform(constants.StepSampleLow, constants.StepSampleHigh)
		step := physics.StepLength(mfp, u)

		angles, err := physics.SampleScatteringAngles(alpha, src.Float64(), src.Float64())
		if err != nil {
			return Result{}, newPhysicsInvariantBroken(electronIndex, errState(), "%v", err)
		}
		st.UpdateDirection(angles)

		prevPoint := st.Point
		proposed := st.ProposeNext(step)

		exiting := false
		if clamped, didClamp := electron.Clamp(proposed, abs); didClamp {
			proposed = clamped
			step = geom.Distance(prevPoint, proposed)
			exiting = true
		}

		newIdx := geom.Index(proposed, h)
		if !newIdx.InBounds(snap.Shape) {
			return Result{}, newGridConsistencyError(electronIndex, errState(), "proposed point %v resolves outside the grid", proposed)
		}
		newLabel := snap.LabelAt(newIdx)

		if newLabel < 0 {
			segMat, ok := materials.ByMark(int(newLabel))
			if !ok {
				return Result{}, newGridConsistencyError(electronIndex, errState(), "no material with mark %d", int(newLabel))
			}
			delta := physics.EnergyLossOverStep(st.Energy, step, segMat)
			newEnergy := st.Energy + delta
			if newEnergy < 0 {
				return Result{}, newPhysicsInvariantBroken(electronIndex, errState(), "energy went negative (%.6f + %.6f)", st.Energy, delta)
			}
			st.Energy = newEnergy
			st.RecordPoint(proposed)
			rec.push(proposed, st.Energy, 1.0)
			mat = segMat
		} else {
			dual := grid.FindDualCrossing(prevPoint, st.Direction, step, snap.Shape, snap, src)
			switch dual.Flag {
			case grid.FlagMiss:
				st.RecordPoint(proposed)
				rec.push(proposed, st.Energy, 0.0)
			default:
				entryMat, ok := materials.ByMark(int(snap.LabelAt(dual.Surface.Voxel)))
				if !ok {
					return Result{}, newGridConsistencyError(electronIndex, errState(), "no material with mark %d", int(snap.LabelAt(dual.Surface.Voxel)))
				}
				delta := physics.EnergyLossOverStep(st.Energy, geom.Distance(dual.Surface.Point, prevPoint), mat)
				newEnergy := st.Energy + delta
				if newEnergy < 0 {
					return Result{}, newPhysicsInvariantBroken(electronIndex, errState(), "energy went negative (%.6f + %.6f)", st.Energy, delta)
				}
				st.Energy = newEnergy
				st.RecordPoint(dual.Surface.Point)
				rec.push(dual.Surface.Point, st.Energy, 1.0)
				mat = entryMat

				if dual.Flag == grid.FlagBothFound {
					if _, ok := materials.ByMark(int(snap.LabelAt(dual.Solid.Voxel))); !ok {
						return Result{}, newGridConsistencyError(electronIndex, errState(), "no material with mark %d", int(snap.LabelAt(dual.Solid.Voxel)))
					}
					st.RecordPoint(dual.Solid.Point)
					rec.push(dual.Solid.Point, st.Energy, 0.0)
				}
			}
		}

		if exiting {
			break
		}
	}

	return rec.Into(), nil
}
