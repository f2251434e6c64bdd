package config

import "fmt"

// Adapted from the teacher's internal/config/units.go: the same
// "table of conversion factors to a canonical unit, keyed by string"
// shape, retargeted from the gas-discharge Length/Current/Pressure
// classes to this domain's two unit-bearing quantities, length and
// energy.

var lengthToNM = map[string]float64{
	"nm": 1,
	"um": 1e3,
	"mm": 1e6,
}

var energyToKeV = map[string]float64{
	"keV": 1,
	"eV":  1e-3,
}

func normalizeLengthUnit(unit string) (factor float64, err error) {
	if unit == "" {
		unit = "nm"
	}
	factor, ok := lengthToNM[unit]
	if !ok {
		return 0, fmt.Errorf("unknown length unit %q (want one of nm, um, mm)", unit)
	}
	return factor, nil
}

func normalizeEnergyUnit(unit string) (factor float64, err error) {
	if unit == "" {
		unit = "keV"
	}
	factor, ok := energyToKeV[unit]
	if !ok {
		return 0, fmt.Errorf("unknown energy unit %q (want one of keV, eV)", unit)
	}
	return factor, nil
}
