// Package grid implements the voxel grid snapshot and the 3D DDA
// traversal used to find surface and solid crossings (spec.md §4.3,
// component C4).
package grid

import (
	"fmt"

	"github.com/nvershinin/escat/internal/geom"
)

// Snapshot is a read-only voxel grid for the duration of one Simulate
// call. Grid and Surface are flat, row-major (i,j,k) = (z,y,x) arrays
// of the same Shape, matching spec.md §3.
type Snapshot struct {
	Shape geom.Shape

	// Grid holds the signed cell label: negative is solid (-2 deposit,
	// -1 substrate by convention), non-negative is void.
	Grid []float64

	// Surface is non-zero iff the cell is a surface (solid/void
	// interface) cell.
	Surface []byte

	// ZTop is the highest z-index containing any surface cell, scaled
	// by CellDim. New, the scenario builders and gridio leave it zero,
	// and the trajectory driver does not read it.
	ZTop float64
}

// New allocates a zeroed Snapshot of the given shape.
func New(shape geom.Shape) Snapshot {
	n := shape.NZ * shape.NY * shape.NX
	return Snapshot{
		Shape:   shape,
		Grid:    make([]float64, n),
		Surface: make([]byte, n),
	}
}

// Validate checks the grid/surface array lengths match Shape and
// CellDim is positive, returning an error otherwise (spec.md §7
// InvalidInput).
func (s Snapshot) Validate() error {
	n := s.Shape.NZ * s.Shape.NY * s.Shape.NX
	if len(s.Grid) != n {
		return fmt.Errorf("grid length %d does not match shape (%d cells)", len(s.Grid), n)
	}
	if len(s.Surface) != n {
		return fmt.Errorf("surface length %d does not match shape (%d cells)", len(s.Surface), n)
	}
	if s.Shape.CellDim <= 0 {
		return fmt.Errorf("cell_dim must be positive, got %f", s.Shape.CellDim)
	}
	return nil
}

func (s Snapshot) offset(idx geom.VoxelIndex) int {
	return (idx.I*s.Shape.NY+idx.J)*s.Shape.NX + idx.K
}

// LabelAt returns the grid label at idx.
func (s Snapshot) LabelAt(idx geom.VoxelIndex) float64 {
	return s.Grid[s.offset(idx)]
}

// IsSolid reports whether idx addresses a solid cell (label <= -1,
// per spec.md §4.3's solid-crossing predicate).
func (s Snapshot) IsSolid(idx geom.VoxelIndex) bool {
	return s.LabelAt(idx) <= -1
}

// IsSurface reports whether idx addresses a surface cell.
func (s Snapshot) IsSurface(idx geom.VoxelIndex) bool {
	return s.Surface[s.offset(idx)] != 0
}

// SetLabel sets the grid label at idx (used by scenario synthesis and
// tests; the driver itself never mutates the snapshot).
func (s Snapshot) SetLabel(idx geom.VoxelIndex, label float64) {
	s.Grid[s.offset(idx)] = label
}

// SetSurface marks or clears idx as a surface cell.
func (s Snapshot) SetSurface(idx geom.VoxelIndex, isSurface bool) {
	if isSurface {
		s.Surface[s.offset(idx)] = 1
	} else {
		s.Surface[s.offset(idx)] = 0
	}
}

// HighestSolidIndex returns the highest z-index j' in the column
// (j,k) such that Grid[j',j,k] < 0, and false if the column is
// entirely void. Used by the trajectory driver's "drop to solid" step
// (spec.md §4.4 step 2).
func (s Snapshot) HighestSolidIndex(j, k int) (top int, found bool) {
	for i := s.Shape.NZ - 1; i >= 0; i-- {
		if s.LabelAt(geom.VoxelIndex{I: i, J: j, K: k}) < 0 {
			return i, true
		}
	}
	return 0, false
}
