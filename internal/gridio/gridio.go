// Package gridio loads a grid.Snapshot from an externally supplied
// voxel dump, the load-side counterpart of internal/resultio's export
// side. Grounded the same way resultio is: encoding/csv for the
// human-readable form and encoding/binary for a flat little-endian
// form, following the teacher's internal/utils/csv.go and
// internal/model/extractor.go read/write symmetry (the teacher loads
// its input deck with the same package it uses to save results).
package gridio

import (
	"bufio"
	"encoding/binary"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/nvershinin/escat/internal/geom"
	"github.com/nvershinin/escat/internal/grid"
)

// LoadCSV reads a voxel dump in the format WriteCSV produces: a
// "nz,ny,nx,cell_dim" header row, a shape-value row, a "label,surface"
// header row, and one row per voxel in row-major (i,j,k) order.
func LoadCSV(path string) (grid.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return grid.Snapshot{}, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		return grid.Snapshot{}, fmt.Errorf("reading shape header: %w", err)
	}
	shapeRow, err := r.Read()
	if err != nil {
		return grid.Snapshot{}, fmt.Errorf("reading shape values: %w", err)
	}
	shape, err := parseShapeRow(shapeRow)
	if err != nil {
		return grid.Snapshot{}, err
	}

	if _, err := r.Read(); err != nil {
		return grid.Snapshot{}, fmt.Errorf("reading voxel header: %w", err)
	}

	snap := grid.New(shape)
	n := shape.NZ * shape.NY * shape.NX
	for idx := 0; idx < n; idx++ {
		row, err := r.Read()
		if err != nil {
			return grid.Snapshot{}, fmt.Errorf("reading voxel %d: %w", idx, err)
		}
		if len(row) != 2 {
			return grid.Snapshot{}, fmt.Errorf("voxel %d: expected 2 columns, got %d", idx, len(row))
		}
		label, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return grid.Snapshot{}, fmt.Errorf("voxel %d: invalid label %q: %w", idx, row[0], err)
		}
		surface, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return grid.Snapshot{}, fmt.Errorf("voxel %d: invalid surface flag %q: %w", idx, row[1], err)
		}
		snap.Grid[idx] = label
		if surface != 0 {
			snap.Surface[idx] = 1
		}
	}

	if err := snap.Validate(); err != nil {
		return grid.Snapshot{}, err
	}
	return snap, nil
}

func parseShapeRow(row []string) (geom.Shape, error) {
	if len(row) != 4 {
		return geom.Shape{}, fmt.Errorf("shape row: expected 4 columns, got %d", len(row))
	}
	nz, err := strconv.Atoi(row[0])
	if err != nil {
		return geom.Shape{}, fmt.Errorf("shape row: invalid nz %q: %w", row[0], err)
	}
	ny, err := strconv.Atoi(row[1])
	if err != nil {
		return geom.Shape{}, fmt.Errorf("shape row: invalid ny %q: %w", row[1], err)
	}
	nx, err := strconv.Atoi(row[2])
	if err != nil {
		return geom.Shape{}, fmt.Errorf("shape row: invalid nx %q: %w", row[2], err)
	}
	cellDim, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return geom.Shape{}, fmt.Errorf("shape row: invalid cell_dim %q: %w", row[3], err)
	}
	return geom.Shape{NZ: nz, NY: ny, NX: nx, CellDim: cellDim}, nil
}

// WriteCSV writes snap in the format LoadCSV reads, so a synthesized
// or edited scenario can be round-tripped through disk.
func WriteCSV(path string, snap grid.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(bufio.NewWriter(f))
	if err := w.Write([]string{"nz", "ny", "nx", "cell_dim"}); err != nil {
		return err
	}
	shapeRow := []string{
		strconv.Itoa(snap.Shape.NZ),
		strconv.Itoa(snap.Shape.NY),
		strconv.Itoa(snap.Shape.NX),
		strconv.FormatFloat(snap.Shape.CellDim, 'f', -1, 64),
	}
	if err := w.Write(shapeRow); err != nil {
		return err
	}
	if err := w.Write([]string{"label", "surface"}); err != nil {
		return err
	}
	for idx := range snap.Grid {
		row := []string{
			strconv.FormatFloat(snap.Grid[idx], 'f', -1, 64),
			strconv.FormatFloat(float64(snap.Surface[idx]), 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Sync()
}

// gridHeader is the fixed-width binary preamble LoadBinary/WriteBinary
// exchange: NZ, NY, NX as little-endian int64, CellDim as float64.
type gridHeader struct {
	NZ, NY, NX int64
	CellDim    float64
}

// LoadBinary reads a voxel dump in the flat format WriteBinary
// produces: a gridHeader, then len(Grid) float64s, then len(Surface)
// bytes -- a file-based approximation of the same move-ownership
// buffer shape internal/resultio.WriteBinary uses for trajectories.
func LoadBinary(path string) (grid.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return grid.Snapshot{}, err
	}
	defer f.Close()

	var hdr gridHeader
	if err := binary.Read(f, binary.LittleEndian, &hdr); err != nil {
		return grid.Snapshot{}, fmt.Errorf("reading header: %w", err)
	}
	shape := geom.Shape{NZ: int(hdr.NZ), NY: int(hdr.NY), NX: int(hdr.NX), CellDim: hdr.CellDim}

	snap := grid.New(shape)
	if err := binary.Read(f, binary.LittleEndian, snap.Grid); err != nil {
		return grid.Snapshot{}, fmt.Errorf("reading grid labels: %w", err)
	}
	if err := binary.Read(f, binary.LittleEndian, snap.Surface); err != nil {
		return grid.Snapshot{}, fmt.Errorf("reading surface flags: %w", err)
	}

	if err := snap.Validate(); err != nil {
		return grid.Snapshot{}, err
	}
	return snap, nil
}

// WriteBinary writes snap in the format LoadBinary reads.
func WriteBinary(path string, snap grid.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	hdr := gridHeader{
		NZ:      int64(snap.Shape.NZ),
		NY:      int64(snap.Shape.NY),
		NX:      int64(snap.Shape.NX),
		CellDim: snap.Shape.CellDim,
	}
	if err := binary.Write(f, binary.LittleEndian, hdr); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, snap.Grid); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, snap.Surface); err != nil {
		return err
	}
	return f.Sync()
}

// Load reads path as either a CSV or binary voxel dump, dispatching on
// format ("csv" or "binary"; empty defaults to "csv").
func Load(path, format string) (grid.Snapshot, error) {
	switch format {
	case "", "csv":
		return LoadCSV(path)
	case "binary":
		return LoadBinary(path)
	default:
		return grid.Snapshot{}, fmt.Errorf("unknown grid format %q (want \"csv\" or \"binary\")", format)
	}
}
