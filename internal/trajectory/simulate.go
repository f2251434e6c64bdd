package trajectory

import (
	"fmt"
	"sync"

	"github.com/nvershinin/escat/internal/constants"
	"github.com/nvershinin/escat/internal/grid"
	"github.com/nvershinin/escat/internal/material"
	"github.com/nvershinin/escat/internal/rng"
)

// Input bundles the read-only arguments of one Simulate call (spec.md §6).
type Input struct {
	E0   float64 // initial beam energy, keV
	EMin float64 // termination threshold, keV

	// Y0, X0 are equal-length beam entry coordinate arrays (nm).
	Y0, X0 []float64

	Grid      grid.Snapshot
	Materials material.Table

	// Seed is the call-level deterministic seed (spec.md §5, §9): each
	// electron's PRNG is derived from (Seed, electron index) alone, so
	// results do not depend on worker count or completion order.
	Seed int64

	// Workers bounds the size of the internal worker pool. A value
	// <= 0 defaults to 1 (no parallelism).
	Workers int
}

func (in Input) validate() error {
	if err := in.Grid.Validate(); err != nil {
		return err
	}
	if err := in.Materials.Validate(); err != nil {
		return err
	}
	if in.EMin >= in.E0 {
		return fmt.Errorf("e_min (%f) must be less than e0 (%f)", in.EMin, in.E0)
	}
	if len(in.Y0) != len(in.X0) {
		return fmt.Errorf("y0 and x0 must have equal length, got %d and %d", len(in.Y0), len(in.X0))
	}
	abs := in.Grid.Shape.Abs()
	eps := constants.Epsilon
	for i := range in.Y0 {
		if in.Y0[i] < eps || in.Y0[i] > abs.Y-eps || in.X0[i] < eps || in.X0[i] > abs.X-eps {
			return fmt.Errorf("beam entry %d = (%f, %f) lies outside [eps, axis_abs-eps] = ([%f, %f], [%f, %f])",
				i, in.Y0[i], in.X0[i], eps, abs.Y-eps, eps, abs.X-eps)
		}
	}
	return nil
}

// Simulate traces every incident electron described by Input and
// returns the ordered list of trajectories (spec.md §6), fanning work
// out across an internal worker pool (spec.md §5). The returned slice
// is ordered by input beam-entry index regardless of completion order.
// Any single electron's error aborts the whole call; partial results
// are never returned (spec.md §7).
func Simulate(in Input) ([]Result, error) {
	if err := in.validate(); err != nil {
		return nil, newInvalidInput(-1, "%v", err)
	}

	n := len(in.Y0)
	results := make([]Result, n)

	workers := in.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers == 0 {
		return results, nil
	}

	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		firstFn *Error
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				mu.Lock()
				abort := firstFn != nil
				mu.Unlock()
				if abort {
					return
				}

				src := rng.ForElectron(in.Seed, i)
				res, err := traceElectron(i, in.Y0[i], in.X0[i], in.E0, in.EMin, in.Grid, in.Materials, src)
				if err != nil {
					mu.Lock()
					if firstFn == nil {
						if te, ok := err.(*Error); ok {
							firstFn = te
						} else {
							firstFn = newInvalidInput(i, "%v", err)
						}
					}
					mu.Unlock()
					continue
				}
				results[i] = res
			}
		}()
	}
	wg.Wait()

	if firstFn != nil {
		return nil, firstFn
	}
	return results, nil
}
