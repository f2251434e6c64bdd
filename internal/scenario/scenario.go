// Package scenario synthesizes the seed grid snapshots of spec.md §8's
// "Seed scenarios" (S1-S6), used by escat-sim (the run configuration's
// Scenario field) and by
// the trajectory package's tests. There is no teacher analogue for
// this package (SPEC_FULL.md SUPPLEMENTED FEATURES): it is grounded on
// spec.md's own scenario descriptions, built directly on internal/grid
// and internal/geom the way the rest of this module constructs a
// Snapshot.
package scenario

import (
	"fmt"

	"github.com/nvershinin/escat/internal/geom"
	"github.com/nvershinin/escat/internal/grid"
)

const (
	depositMark   = -2
	substrateMark = -1
)

// Build returns the grid.Snapshot for one of the named seed scenarios
// (S1 through S6; S6 reuses S2's grid, since it differs only in how
// the caller runs Simulate).
func Build(name string, cellDim float64) (grid.Snapshot, error) {
	switch name {
	case "S1":
		return s1(cellDim), nil
	case "S2":
		return s2(cellDim), nil
	case "S3":
		return s3(cellDim), nil
	case "S4":
		return s2(cellDim), nil
	case "S5":
		return s5(cellDim), nil
	case "S6":
		return s2(cellDim), nil
	default:
		return grid.Snapshot{}, fmt.Errorf("unknown scenario %q", name)
	}
}

func fill(snap grid.Snapshot, label float64) {
	shape := snap.Shape
	for i := 0; i < shape.NZ; i++ {
		for j := 0; j < shape.NY; j++ {
			for k := 0; k < shape.NX; k++ {
				snap.SetLabel(geom.VoxelIndex{I: i, J: j, K: k}, label)
			}
		}
	}
}

// s1 builds the pure-void 10x10x10 grid of spec.md §8 S1: every cell
// labelled +1, no surface cells anywhere.
func s1(cellDim float64) grid.Snapshot {
	shape := geom.Shape{NZ: 10, NY: 10, NX: 10, CellDim: cellDim}
	snap := grid.New(shape)
	fill(snap, 1)
	return snap
}

// s2 builds the uniform 20x20x20 deposit block of spec.md §8 S2: every
// cell labelled -2, surface true only on the top layer.
func s2(cellDim float64) grid.Snapshot {
	shape := geom.Shape{NZ: 20, NY: 20, NX: 20, CellDim: cellDim}
	snap := grid.New(shape)
	fill(snap, depositMark)
	top := shape.NZ - 1
	for j := 0; j < shape.NY; j++ {
		for k := 0; k < shape.NX; k++ {
			snap.SetSurface(geom.VoxelIndex{I: top, J: j, K: k}, true)
		}
	}
	return snap
}

// s3 builds the slab-substrate-under-deposit grid of spec.md §8 S3:
// bottom 5 layers substrate (-1), next 10 deposit (-2), top 5 void,
// with a surface layer on top of the deposit.
func s3(cellDim float64) grid.Snapshot {
	shape := geom.Shape{NZ: 20, NY: 20, NX: 20, CellDim: cellDim}
	snap := grid.New(shape)
	fill(snap, 1)
	for i := 0; i < 5; i++ {
		for j := 0; j < shape.NY; j++ {
			for k := 0; k < shape.NX; k++ {
				snap.SetLabel(geom.VoxelIndex{I: i, J: j, K: k}, substrateMark)
			}
		}
	}
	for i := 5; i < 15; i++ {
		for j := 0; j < shape.NY; j++ {
			for k := 0; k < shape.NX; k++ {
				snap.SetLabel(geom.VoxelIndex{I: i, J: j, K: k}, depositMark)
			}
		}
	}
	depositTop := 14
	for j := 0; j < shape.NY; j++ {
		for k := 0; k < shape.NX; k++ {
			snap.SetSurface(geom.VoxelIndex{I: depositTop, J: j, K: k}, true)
		}
	}
	return snap
}

// s5 builds the cavity grid of spec.md §8 S5: a 30x30x30 volume with a
// one-voxel-thick solid floor and side walls (deposit), an open top,
// and void everywhere in the interior.
func s5(cellDim float64) grid.Snapshot {
	shape := geom.Shape{NZ: 30, NY: 30, NX: 30, CellDim: cellDim}
	snap := grid.New(shape)
	fill(snap, 1)

	isShell := func(idx geom.VoxelIndex) bool {
		return idx.I == 0 ||
			idx.J == 0 || idx.J == shape.NY-1 ||
			idx.K == 0 || idx.K == shape.NX-1
	}

	for i := 0; i < shape.NZ; i++ {
		for j := 0; j < shape.NY; j++ {
			for k := 0; k < shape.NX; k++ {
				idx := geom.VoxelIndex{I: i, J: j, K: k}
				if isShell(idx) {
					snap.SetLabel(idx, depositMark)
					snap.SetSurface(idx, true)
				}
			}
		}
	}
	return snap
}
