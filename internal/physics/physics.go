// Package physics implements the closed-form screened-Rutherford
// scattering and Bethe continuous-slowing-down formulas of spec.md
// §4.1. Every formula here is a design-level truth: implementations
// must reproduce them with <=1 ulp drift from double-precision
// evaluation, so none of the numeric guards below are "tidied up"
// with a general epsilon — see the teacher's particle.go for the same
// discipline applied to its own FMA-heavy direction bookkeeping.
package physics

import (
	"math"

	"github.com/nvershinin/escat/internal/constants"
	"github.com/nvershinin/escat/internal/material"
)

// ScreeningParameter is alpha(E, Z) = 3.4e-3 * Z^0.67 / E.
func ScreeningParameter(energyKeV, atomicNumber float64) float64 {
	return 3.4e-3 * math.Pow(atomicNumber, 0.67) / energyKeV
}

// ElasticCrossSection is sigma(E, Z, alpha), in nm^2.
func ElasticCrossSection(energyKeV, atomicNumber, alpha float64) float64 {
	z2 := atomicNumber * atomicNumber
	e2 := energyKeV * energyKeV
	geometric := 4. * math.Pi / math.FMA(alpha, alpha, alpha) // alpha*(1+alpha)
	relativistic := (energyKeV + constants.ElectronRestEnergy) / (energyKeV + 2.*constants.ElectronRestEnergy)
	return 5.21e-7 * z2 / e2 * geometric * relativistic * relativistic
}

// ElasticMeanFreePath is lambda(E, Z, rho, A, alpha), in nm.
func ElasticMeanFreePath(atomicWeight, density, crossSection float64) float64 {
	return atomicWeight / (constants.AvogadroNumber * density * 1e-21 * crossSection)
}

// IonizationPotential is J(Z) = (9.76*Z + 58.5*Z^-0.19) * 1e-3, in keV.
func IonizationPotential(atomicNumber float64) float64 {
	return (9.76*atomicNumber + 58.5*math.Pow(atomicNumber, -0.19)) * 1e-3
}

// StepLength turns a uniform draw u (the caller samples it from
// Uniform(1e-5, 1-1e-5)) and the mean free path into a step length:
// step = -ln(u) * lambda.
func StepLength(meanFreePath, u float64) float64 {
	return -math.Log(u) * meanFreePath
}

// BetheEnergyLossRate is dE/ds, in keV/nm, always <= 0 above the
// threshold where the logarithm argument would flip sign. Per spec.md
// §9's second open question ("the implementer should clamp dE <= 0"),
// a positive raw value (which would otherwise increase the electron's
// energy) is clamped to zero rather than applied.
func BetheEnergyLossRate(energyKeV float64, el material.Element) float64 {
	j := el.Ionization
	if j == 0 {
		j = IonizationPotential(el.AtomicNumber)
	}
	raw := -7.85e-3 * el.Density * el.AtomicNumber / (el.AtomicWeight * energyKeV) *
		math.Log(1.166*(energyKeV/j+0.85))
	if raw > 0 {
		return 0
	}
	return raw
}

// EnergyLossOverStep applies dE/ds over a segment length, clamped so
// the returned loss never increases the electron's energy.
func EnergyLossOverStep(energyKeV, length float64, el material.Element) float64 {
	return BetheEnergyLossRate(energyKeV, el) * length
}

// ScatteringAngles holds one sampled elastic-scattering event: the
// polar cosine/sine and the azimuthal angle.
type ScatteringAngles struct {
	CosTheta float64
	SinTheta float64
	Psi      float64
}

// ErrPhysicsInvariantBroken is returned by SampleScatteringAngles when
// a NaN propagates out of the angle sampling, per spec.md §4.1/§7.
var ErrPhysicsInvariantBroken = physicsInvariantError{}

type physicsInvariantError struct{}

func (physicsInvariantError) Error() string {
	return "physics invariant broken: NaN in scattering angles"
}

// SampleScatteringAngles draws r1, r2 and computes cos(theta), sin(theta)
// and psi per spec.md §4.1. cos(theta) is downcast to float32 and back
// to clip the O(1e-12) oscillation that can push it below -1 — this
// downcast is a deliberate, literal part of the spec and must not be
// replaced by a clamp.
func SampleScatteringAngles(alpha, r1, r2 float64) (ScatteringAngles, error) {
	cosTheta := 1. - 2.*alpha*r1/(1.+alpha-r1)
	cosTheta = float64(float32(cosTheta))
	sinTheta := math.Sqrt(math.FMA(cosTheta, -cosTheta, 1.))
	psi := 2. * math.Pi * r2

	if math.IsNaN(cosTheta) || math.IsNaN(sinTheta) || math.IsNaN(psi) {
		return ScatteringAngles{}, ErrPhysicsInvariantBroken
	}
	return ScatteringAngles{CosTheta: cosTheta, SinTheta: sinTheta, Psi: psi}, nil
}
