// Package config loads the TOML run configuration for one simulation
// invocation (SPEC_FULL.md's AMBIENT STACK section). Grounded on the
// teacher's internal/config/parameters.go: toml.DecodeFile plus
// meta.IsDefined-driven defaulting survives; the teacher's
// reflect-based cross-field xor/and dependency graph does not
// (DESIGN.md: that machinery existed to reconcile mutually exclusive
// gas-discharge model parameters such as Pressure vs. PressureGapLength,
// which this domain has no analogue of).
package config

import (
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/nvershinin/escat/internal/material"
)

// Units selects the input unit for each unit-bearing quantity class.
type Units struct {
	Length string // "nm" (default), "um", "mm"
	Energy string // "keV" (default), "eV"
}

// BeamEntry is one (y, x) beam entry point in the configured length unit.
type BeamEntry struct {
	Y, X float64
}

// MaterialConfig is one TOML [[Materials]] row, mirroring material.Element.
type MaterialConfig struct {
	Name          string
	Density       float64
	AtomicNumber  float64
	AtomicWeight  float64
	Ionization    float64
	ElectronParam float64
	EscapeLength  float64
	Mark          int
}

// RunConfig is the top-level TOML document for one escat-sim invocation.
type RunConfig struct {
	OutputDir string
	Seed      int64
	Workers   int
	Verbose   bool

	// Scenario, if non-empty, selects one of internal/scenario's
	// synthesized seed grids (S1..S6) instead of a hand-specified one.
	// GridPath/GridFormat are used instead when Scenario is empty,
	// loading an externally supplied voxel dump via internal/gridio.
	Scenario   string
	CellDim    float64
	GridPath   string
	GridFormat string // "csv" (default) or "binary"

	E0   float64
	EMin float64
	Beam []BeamEntry

	Materials []MaterialConfig

	Units Units
}

var defaultValues = map[string]any{
	"Seed":    int64(1),
	"EMin":    0.1,
	"Workers": 0, // 0 means "use runtime.NumCPU()", resolved after load
	"Verbose": false,
	"CellDim": 2.0,
}

// LoadConfig decodes path (a TOML file) into a RunConfig, applying the
// teacher's meta.IsDefined-gated defaulting for any field the file
// omits, then normalizes every unit-bearing field to nanometers/keV.
func LoadConfig(path string) (RunConfig, error) {
	var cfg RunConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return RunConfig{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	if !meta.IsDefined("Seed") {
		cfg.Seed = defaultValues["Seed"].(int64)
	}
	if !meta.IsDefined("EMin") {
		cfg.EMin = defaultValues["EMin"].(float64)
	}
	if !meta.IsDefined("Verbose") {
		cfg.Verbose = defaultValues["Verbose"].(bool)
	}
	if !meta.IsDefined("CellDim") {
		cfg.CellDim = defaultValues["CellDim"].(float64)
	}
	if !meta.IsDefined("Workers") || cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	lengthFactor, err := normalizeLengthUnit(cfg.Units.Length)
	if err != nil {
		return RunConfig{}, err
	}
	energyFactor, err := normalizeEnergyUnit(cfg.Units.Energy)
	if err != nil {
		return RunConfig{}, err
	}

	cfg.CellDim *= lengthFactor
	cfg.E0 *= energyFactor
	cfg.EMin *= energyFactor
	for i := range cfg.Beam {
		cfg.Beam[i].Y *= lengthFactor
		cfg.Beam[i].X *= lengthFactor
	}
	for i := range cfg.Materials {
		cfg.Materials[i].EscapeLength *= lengthFactor
		if cfg.Materials[i].Ionization != 0 {
			cfg.Materials[i].Ionization *= energyFactor
		}
	}

	if len(cfg.Materials) == 0 {
		return RunConfig{}, fmt.Errorf("no materials provided")
	}
	if cfg.EMin >= cfg.E0 {
		return RunConfig{}, fmt.Errorf("e_min (%f) must be less than e0 (%f)", cfg.EMin, cfg.E0)
	}

	return cfg, nil
}

// MaterialTable converts the configured materials into a material.Table.
func (c RunConfig) MaterialTable() material.Table {
	table := make(material.Table, len(c.Materials))
	for i, m := range c.Materials {
		table[i] = material.Element{
			Name:          m.Name,
			Density:       m.Density,
			AtomicNumber:  m.AtomicNumber,
			AtomicWeight:  m.AtomicWeight,
			Ionization:    m.Ionization,
			ElectronParam: m.ElectronParam,
			EscapeLength:  m.EscapeLength,
			Mark:          m.Mark,
		}
	}
	return table
}

// Y0X0 splits Beam into the parallel arrays trajectory.Input expects.
func (c RunConfig) Y0X0() (y0, x0 []float64) {
	y0 = make([]float64, len(c.Beam))
	x0 = make([]float64, len(c.Beam))
	for i, b := range c.Beam {
		y0[i] = b.Y
		x0[i] = b.X
	}
	return
}
