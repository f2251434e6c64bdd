// Package resultio exports trajectory.Results in the two ways
// SPEC_FULL.md's AMBIENT STACK section calls for: a human-readable CSV
// form (grounded on the teacher's internal/utils/csv.go and
// internal/model/extractor.go: encoding/csv plus facette/natsort
// ordering) and a flat binary form illustrating the zero-copy handoff
// spec.md §4.5/§9 asks for, writing each Result's already-contiguous
// Points/Energies/Masks buffers directly rather than re-encoding them
// value by value.
package resultio

import (
	"encoding/binary"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"unsafe"

	"github.com/facette/natsort"

	"github.com/nvershinin/escat/internal/trajectory"
)

// WriteCSV writes one CSV file per trajectory under dir, named
// "trajectory_<index>.csv" with columns z, y, x, energy, mask. It
// returns the written file names sorted the way the teacher's utils.CSV
// sorts rows before saving: by facette/natsort, so trajectory_2.csv
// comes before trajectory_10.csv.
func WriteCSV(dir string, results []trajectory.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("creating output dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(results))
	for i, r := range results {
		name := fmt.Sprintf("trajectory_%d.csv", i)
		if err := writeOneCSV(filepath.Join(dir, name), r); err != nil {
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		return natsort.Compare(names[i], names[j])
	})
	return names, nil
}

func writeOneCSV(path string, r trajectory.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"z", "y", "x", "energy", "mask"}); err != nil {
		return err
	}
	for k := 0; k < r.Len(); k++ {
		row := []string{
			strconv.FormatFloat(r.Points[3*k+0], 'f', -1, 64),
			strconv.FormatFloat(r.Points[3*k+1], 'f', -1, 64),
			strconv.FormatFloat(r.Points[3*k+2], 'f', -1, 64),
			strconv.FormatFloat(r.Energies[k], 'f', -1, 64),
			strconv.FormatFloat(r.Masks[k], 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteBinary writes r to w in a flat format: a little-endian int64
// point count, followed by the raw bytes of Points, Energies and Masks
// in a single Write call each -- their backing arrays are already
// contiguous float64 buffers, so this reinterprets rather than
// re-encodes them, in the spirit of spec.md §4.5's "surface to the
// host runtime without copying".
func WriteBinary(w *os.File, r trajectory.Result) error {
	if err := binary.Write(w, binary.LittleEndian, int64(r.Len())); err != nil {
		return err
	}
	for _, buf := range [][]float64{r.Points, r.Energies, r.Masks} {
		if len(buf) == 0 {
			continue
		}
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(buf)*int(unsafe.Sizeof(float64(0))))
		if _, err := w.Write(raw); err != nil {
			return err
		}
	}
	return nil
}
