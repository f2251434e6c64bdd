// Package trajectory implements the trajectory driver (C5) and result
// packaging (C6) of spec.md §4.4-4.5, plus the Simulate entry point
// and its worker-pool fan-out (§5).
package trajectory

import (
	"unsafe"

	"github.com/nvershinin/escat/internal/geom"
)

// Record accumulates one electron's trajectory while the driver is
// tracing it: the k-th entry in each of Points/Energies/Masks refers
// to the segment ending at Points[k]; Energies[k] is the energy after
// that segment, and Masks[k] is 0.0 for a void segment, 1.0 for solid.
//
// Growth follows the teacher's "growable vector, move its backing
// array to the caller" shape (spec.md §9's "dynamic-length per-trajectory
// buffers"): append() already reserves geometric growth capacity, and
// the record owns its slices exclusively -- they are never reused
// across trajectories.
type Record struct {
	points   []geom.Coordinate
	energies []float64
	masks    []float64
}

func newRecord(capacityHint int) *Record {
	if capacityHint < 4 {
		capacityHint = 4
	}
	return &Record{
		points:   make([]geom.Coordinate, 0, capacityHint),
		energies: make([]float64, 0, capacityHint),
		masks:    make([]float64, 0, capacityHint),
	}
}

func (r *Record) push(p geom.Coordinate, energy, mask float64) {
	r.points = append(r.points, p)
	r.energies = append(r.energies, energy)
	r.masks = append(r.masks, mask)
}

// Len returns the number of recorded points.
func (r *Record) Len() int { return len(r.points) }

// Last returns the most recently pushed point, energy and mask.
func (r *Record) Last() (geom.Coordinate, float64, float64) {
	n := len(r.points)
	return r.points[n-1], r.energies[n-1], r.masks[n-1]
}

// Result is the finished, immutable trajectory handed to the caller:
// Points is an (L,3) row-major matrix of doubles viewed, not copied,
// over the Record's own backing array (spec.md §4.5/§9 "move-ownership
// to zero-copy views rather than borrowed pointers with implicit
// lifetimes" -- here the ownership transfer is explicit: once Into
// returns, the Record must not be reused).
type Result struct {
	Points   []float64 // len == 3*Len(), row-major (z,y,x) per row
	Energies []float64
	Masks    []float64
}

// Len returns the number of points in the trajectory.
func (r Result) Len() int { return len(r.Masks) }

// Into moves r's storage into a Result without copying the point
// buffer: geom.Coordinate is three contiguous float64 fields, so the
// backing array is reinterpreted in place via unsafe.Slice. r must not
// be used after calling Into.
func (r *Record) Into() Result {
	var flat []float64
	if n := len(r.points); n > 0 {
		flat = unsafe.Slice((*float64)(unsafe.Pointer(&r.points[0])), n*3)
	}
	res := Result{
		Points:   flat,
		Energies: r.energies,
		Masks:    r.masks,
	}
	r.points, r.energies, r.masks = nil, nil, nil
	return res
}
