package resultio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvershinin/escat/internal/trajectory"
)

func sampleResult() trajectory.Result {
	return trajectory.Result{
		Points:   []float64{0, 0, 0, 1, 2, 3},
		Energies: []float64{5, 4},
		Masks:    []float64{0, 1},
	}
}

func TestWriteCSVCreatesOneFilePerTrajectoryInNatsortOrder(t *testing.T) {
	dir := t.TempDir()
	results := make([]trajectory.Result, 12)
	for i := range results {
		results[i] = sampleResult()
	}
	names, err := WriteCSV(dir, results)
	require.NoError(t, err)
	require.Len(t, names, 12)
	assert.Equal(t, "trajectory_2.csv", names[2])
	assert.Equal(t, "trajectory_10.csv", names[10])

	content, err := os.ReadFile(filepath.Join(dir, names[0]))
	require.NoError(t, err)
	assert.Contains(t, string(content), "z,y,x,energy,mask")
}

func TestWriteBinaryRoundTripsPointCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "traj.bin")
	f, err := os.Create(path)
	require.NoError(t, err)

	r := sampleResult()
	require.NoError(t, WriteBinary(f, r))
	require.NoError(t, f.Close())

	readBack, err := os.Open(path)
	require.NoError(t, err)
	defer readBack.Close()

	var count int64
	require.NoError(t, binary.Read(readBack, binary.LittleEndian, &count))
	assert.Equal(t, int64(r.Len()), count)

	points := make([]float64, len(r.Points))
	require.NoError(t, binary.Read(readBack, binary.LittleEndian, &points))
	assert.Equal(t, r.Points, points)
}
