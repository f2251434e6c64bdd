package statutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvershinin/escat/internal/trajectory"
)

func TestAverageAndMeanVariance(t *testing.T) {
	s := []float64{1, 2, 3, 4, 5}
	assert.InDelta(t, 3.0, Average(s), 1e-9)

	mean, variance := MeanAndVariance(s, false)
	assert.InDelta(t, 3.0, mean, 1e-9)
	assert.InDelta(t, 2.0, variance, 1e-9)
}

func TestArgmax(t *testing.T) {
	assert.Equal(t, 2, Argmax([]int{1, 5, 9, 3}))
}

func TestSummarize(t *testing.T) {
	results := []trajectory.Result{
		{Points: make([]float64, 6), Energies: []float64{5, 4}, Masks: []float64{0, 1}},
		{Points: make([]float64, 9), Energies: []float64{5, 3, 2}, Masks: []float64{0, 1, 1}},
	}
	report := Summarize(results)
	assert.Equal(t, 2, report.Count)
	assert.InDelta(t, 2.5, report.MeanLength, 1e-9)
	assert.Equal(t, 1, report.MaxLengthIndex)
}
