// Package electron implements the per-electron state and its
// direction-update/clamp operations (spec.md §4.2, component C3).
// Grounded on the teacher's internal/model/particle.go Particle type:
// the same discipline of guarding near-singular denominators and
// recomputing derived scratch fields after every angle update, here
// restructured around a (z,y,x) direction cosine triple instead of
// the teacher's (mu, eta) azimuthal pair.
package electron

import (
	"math"

	"github.com/nvershinin/escat/internal/constants"
	"github.com/nvershinin/escat/internal/geom"
	"github.com/nvershinin/escat/internal/physics"
)

// State is one electron's current trajectory state.
type State struct {
	Point     geom.Coordinate
	Previous  geom.Coordinate
	Direction geom.Coordinate // unit vector (d_z, d_y, d_x)
	Energy    float64         // keV

	// Angles holds the most recently sampled scattering angles; kept
	// as scratch state so callers can inspect the last sample without
	// threading it through every call.
	Angles physics.ScatteringAngles
}

// New constructs an electron state at point with energy and an
// initial direction (normalized).
func New(point geom.Coordinate, energy float64, direction geom.Coordinate) State {
	n := geom.Norm(direction)
	if n == 0 {
		n = 1
	}
	return State{
		Point:     point,
		Previous:  point,
		Direction: geom.Scale(direction, 1/n),
		Energy:    energy,
	}
}

// RecordPoint pushes the current point to Previous and sets Point to p.
func (s *State) RecordPoint(p geom.Coordinate) {
	s.Previous = s.Point
	s.Point = p
}

// ProposeNext computes p_next = Point + step*Direction without
// mutating the state.
func (s *State) ProposeNext(step float64) geom.Coordinate {
	return geom.Add(s.Point, geom.Scale(s.Direction, step))
}

// UpdateDirection applies spec.md §4.1's direction-update formulas
// given freshly sampled scattering angles, replacing the electron's
// Direction in place.
//
// Any exact zero in the current d_z is replaced by 1e-5 before use
// (AxisSingularityGuard) to avoid the AM = -d_x/d_z singularity; any
// exact zero produced in the new direction is replaced by 1e-7
// (DirectionZeroGuard) to keep the ray non-axis-aligned for the DDA.
func (s *State) UpdateDirection(angles physics.ScatteringAngles) {
	s.Angles = angles

	dz := s.Direction.Z
	if dz == 0 {
		dz = constants.AxisSingularityGuard
	}
	dy := s.Direction.Y
	dx := s.Direction.X

	am := -dx / dz
	an := 1 / math.Sqrt(math.FMA(am, am, 1))

	cosTheta, sinTheta := angles.CosTheta, angles.SinTheta
	cosPsi, sinPsi := math.Cos(angles.Psi), math.Sin(angles.Psi)

	v1 := an * sinTheta
	v2 := an * am * sinTheta
	v3 := cosPsi
	v4 := sinPsi

	newX := math.FMA(dx, cosTheta, math.FMA(v1, v3, dy*v2*v4))
	newY := math.FMA(dy, cosTheta, v4*(dz*v1-dx*v2))
	newZ := math.FMA(dz, cosTheta, v2*v3-dy*v1*v4)

	guard := func(v float64) float64 {
		if v == 0 {
			return constants.DirectionZeroGuard
		}
		return v
	}

	s.Direction = geom.Coordinate{
		Z: guard(newZ),
		Y: guard(newY),
		X: guard(newX),
	}
}

// Clamp clamps p into [eps, axis_abs - eps] componentwise and reports
// whether clamping was needed -- the signal that this electron has
// exited the volume (spec.md §4.2).
func Clamp(p, abs geom.Coordinate) (clamped geom.Coordinate, exited bool) {
	return geom.Clamped(p, abs, constants.Epsilon, constants.Epsilon)
}
