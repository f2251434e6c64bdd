package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
OutputDir = "out"
Seed = 7
Scenario = "S2"
CellDim = 2.0
E0 = 5000.0
EMin = 100.0

[Units]
Length = "nm"
Energy = "eV"

[[Beam]]
Y = 20.0
X = 20.0

[[Materials]]
Name = "deposit"
Density = 21090.0
AtomicNumber = 78.0
AtomicWeight = 195.08
ElectronParam = 1.0
EscapeLength = 5.0
Mark = -2
`

func writeTOML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigNormalizesEnergyUnits(t *testing.T) {
	path := writeTOML(t, sampleTOML)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// E0/EMin were given in eV (5000, 100); after normalizing to keV
	// that is 5.0 and 0.1, respectively.
	assert.InDelta(t, 5.0, cfg.E0, 1e-9)
	assert.InDelta(t, 0.1, cfg.EMin, 1e-9)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "S2", cfg.Scenario)
	assert.Len(t, cfg.Beam, 1)
	assert.Equal(t, 20.0, cfg.Beam[0].Y)
}

func TestLoadConfigDefaultsSeedAndWorkers(t *testing.T) {
	path := writeTOML(t, `
E0 = 5.0
EMin = 0.1

[[Materials]]
Name = "deposit"
Mark = -2
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Greater(t, cfg.Workers, 0)
	assert.Equal(t, 2.0, cfg.CellDim)
}

func TestLoadConfigRejectsInvertedEnergyBounds(t *testing.T) {
	path := writeTOML(t, `
E0 = 1.0
EMin = 2.0

[[Materials]]
Name = "deposit"
Mark = -2
`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownUnit(t *testing.T) {
	path := writeTOML(t, `
E0 = 5.0
EMin = 0.1

[Units]
Length = "parsec"

[[Materials]]
Name = "deposit"
Mark = -2
`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestMaterialTableAndY0X0Conversion(t *testing.T) {
	path := writeTOML(t, sampleTOML)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	table := cfg.MaterialTable()
	require.Len(t, table, 1)
	assert.Equal(t, -2, table[0].Mark)

	y0, x0 := cfg.Y0X0()
	require.Len(t, y0, 1)
	assert.Equal(t, 20.0, y0[0])
	assert.Equal(t, 20.0, x0[0])
}
