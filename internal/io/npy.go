package io

import (
	"fmt"

	"github.com/kshedden/gonpy"

	"dkimaps/pkg/volume"
)

// SavePackedNpy writes a packed per-voxel table as a 2-D npy array with one
// row per voxel. The row width is values-per-voxel; indices travel separately
// (see SaveIndicesNpy) so the table can be scattered back into a volume.
func SavePackedNpy(path string, values []float64, rowWidth int) error {
	if rowWidth <= 0 || len(values)%rowWidth != 0 {
		return fmt.Errorf("packed table length %d is not a multiple of row width %d", len(values), rowWidth)
	}

	w, err := gonpy.NewFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	w.Shape = []int{len(values) / rowWidth, rowWidth}
	w.Version = 2
	if err := w.WriteFloat64(values); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// LoadPackedNpy reads a 2-D npy array as a packed per-voxel table, returning
// the flat values and the row width.
func LoadPackedNpy(path string) (values []float64, rowWidth int, err error) {
	r, err := gonpy.NewFileReader(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if len(r.Shape) != 2 {
		return nil, 0, fmt.Errorf("%s: want a 2-D packed table, got %d-D", path, len(r.Shape))
	}
	values, err = r.GetFloat64()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return values, r.Shape[1], nil
}

// SaveVolumeNpy writes a scalar volume as a flat 3-D npy array in the
// volume's native x-fastest order.
func SaveVolumeNpy(path string, v *volume.Volume) error {
	w, err := gonpy.NewFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	w.Shape = []int{v.Nz, v.Ny, v.Nx}
	w.Version = 2
	if err := w.WriteFloat64(v.Data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
