// Package statutil computes batch summary statistics over a completed
// Simulate call's trajectories (SPEC_FULL.md SUPPLEMENTED FEATURES).
// Adapted from the teacher's internal/utils/utils.go generic
// mean/variance helpers, which the teacher uses to summarize
// per-run-series Townsend/drift-velocity data; here the same generic
// shape summarizes per-electron trajectory length and final energy
// instead.
package statutil

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/nvershinin/escat/internal/trajectory"
)

// Number is any type MeanAndVariance/Average can be computed over.
type Number interface {
	constraints.Float | constraints.Integer
}

// Average returns the arithmetic mean of s.
func Average[T Number](s []T) (mean float64) {
	for _, v := range s {
		mean += float64(v)
	}
	return mean / float64(len(s))
}

// MeanAndVariance returns the mean and (biased or unbiased) variance of s.
func MeanAndVariance[T Number](s []T, unbiased bool) (mean, variance float64) {
	mean = Average(s)
	for _, v := range s {
		d := float64(v) - mean
		variance += d * d
	}
	if unbiased {
		variance /= float64(len(s) - 1)
	} else {
		variance /= float64(len(s))
	}
	return
}

// Argmax returns the index of the largest element of arr.
func Argmax[T cmp.Ordered](arr []T) (argmax int) {
	for i := range arr {
		if cmp.Compare(arr[i], arr[argmax]) == 1 {
			argmax = i
		}
	}
	return
}

// BatchReport summarizes one Simulate call's trajectories.
type BatchReport struct {
	Count int

	MeanLength     float64
	LengthVariance float64

	MeanFinalEnergy     float64
	FinalEnergyVariance float64

	MaxLengthIndex int
}

// Summarize computes a BatchReport over results. results must be
// non-empty.
func Summarize(results []trajectory.Result) BatchReport {
	lengths := make([]int, len(results))
	finalEnergies := make([]float64, len(results))
	for i, r := range results {
		lengths[i] = r.Len()
		finalEnergies[i] = r.Energies[len(r.Energies)-1]
	}

	meanLen, varLen := MeanAndVariance(lengths, false)
	meanE, varE := MeanAndVariance(finalEnergies, false)

	return BatchReport{
		Count:               len(results),
		MeanLength:          meanLen,
		LengthVariance:      varLen,
		MeanFinalEnergy:     meanE,
		FinalEnergyVariance: varE,
		MaxLengthIndex:      Argmax(lengths),
	}
}
