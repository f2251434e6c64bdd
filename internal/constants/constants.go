// Package constants holds physical constants and numeric guard values
// shared across the physics, electron, grid and trajectory packages.
package constants

const (
	// AvogadroNumber is N_A, in mol^-1.
	AvogadroNumber float64 = 6.022141e23

	// ElectronRestEnergy is the electron rest mass energy, in keV.
	ElectronRestEnergy float64 = 511.

	// Epsilon is the general boundary-inset tolerance (nm) keeping
	// recorded points strictly inside the bounding box.
	Epsilon float64 = 1e-6

	// AxisSingularityGuard replaces an exact-zero direction-cosine
	// component before it is used as a divisor.
	AxisSingularityGuard float64 = 1e-5

	// DirectionZeroGuard replaces an exact-zero direction-cosine
	// component produced by the direction update.
	DirectionZeroGuard float64 = 1e-7

	// SurfaceNudge pushes a surface-crossing point backward (toward
	// void) along each axis after it is found, in nm.
	SurfaceNudge float64 = 1e-3

	// SolidNudge pushes a solid-crossing point forward (into solid)
	// along each axis after it is found, in nm.
	SolidNudge float64 = 1e-3

	// TopFaceInset offsets the beam entry point below the absolute top
	// face: Z_abs - TopFaceInset.
	TopFaceInset float64 = 1e-3

	// StepSampleLow/StepSampleHigh bound the uniform draw used for step
	// length sampling, avoiding log(0) and log(1) degeneracies.
	StepSampleLow  float64 = 1e-5
	StepSampleHigh float64 = 1 - 1e-5

	// DDAZeroDirectionJitter bounds the uniform jitter substituted for
	// an exactly-zero direction component inside the DDA sign test.
	DDAZeroDirectionJitter float64 = 1e-6
)
