// Package volume provides the volumetric data model shared by the parameter
// estimation pipeline: scalar volumes, boolean voxel masks, and multi-channel
// tensor fields, together with the packed-per-voxel layout conversion used to
// batch in-mask voxels through the tensor machinery.
package volume

import (
	"fmt"
	"math"
)

// Volume represents a 3D scalar map as a 1D array in x-fastest order.
type Volume struct {
	// Data is the voxel data, indexed as (z*Ny+y)*Nx + x
	Data []float64

	// Nx, Ny, Nz are the volume dimensions in voxels
	Nx, Ny, Nz int
}

// NewVolume allocates a zero-filled volume of the given dimensions.
func NewVolume(nx, ny, nz int) *Volume {
	return &Volume{
		Data: make([]float64, nx*ny*nz),
		Nx:   nx, Ny: ny, Nz: nz,
	}
}

// NewNaNVolume allocates a volume with every voxel set to NaN, the state of
// an output map before any in-mask voxel has been written.
func NewNaNVolume(nx, ny, nz int) *Volume {
	v := NewVolume(nx, ny, nz)
	nan := math.NaN()
	for i := range v.Data {
		v.Data[i] = nan
	}
	return v
}

// Index returns the linear index of voxel (x, y, z).
func (v *Volume) Index(x, y, z int) int {
	return (z*v.Ny+y)*v.Nx + x
}

// At returns the value at voxel (x, y, z).
func (v *Volume) At(x, y, z int) float64 {
	return v.Data[v.Index(x, y, z)]
}

// Set writes the value at voxel (x, y, z).
func (v *Volume) Set(x, y, z int, value float64) {
	v.Data[v.Index(x, y, z)] = value
}

// Clone returns a deep copy of the volume.
func (v *Volume) Clone() *Volume {
	c := NewVolume(v.Nx, v.Ny, v.Nz)
	copy(c.Data, v.Data)
	return c
}

// SetPacked scatters packed per-voxel values back into the volume at the
// given linear indices. The two slices must have equal length.
func (v *Volume) SetPacked(indices []int, values []float64) {
	for i, idx := range indices {
		v.Data[idx] = values[i]
	}
}

// Mask is a boolean volume marking which voxels participate in processing.
type Mask struct {
	// Data is the per-voxel flag, indexed as (z*Ny+y)*Nx + x
	Data []bool

	// Nx, Ny, Nz are the mask dimensions in voxels
	Nx, Ny, Nz int
}

// NewMask allocates an all-false mask of the given dimensions.
func NewMask(nx, ny, nz int) *Mask {
	return &Mask{
		Data: make([]bool, nx*ny*nz),
		Nx:   nx, Ny: ny, Nz: nz,
	}
}

// Index returns the linear index of voxel (x, y, z).
func (m *Mask) Index(x, y, z int) int {
	return (z*m.Ny+y)*m.Nx + x
}

// At returns the flag at voxel (x, y, z).
func (m *Mask) At(x, y, z int) bool {
	return m.Data[m.Index(x, y, z)]
}

// Count returns the number of set voxels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Data {
		if b {
			n++
		}
	}
	return n
}

// SameShape reports whether the other mask has identical dimensions.
func (m *Mask) SameShape(o *Mask) bool {
	return o != nil && m.Nx == o.Nx && m.Ny == o.Ny && m.Nz == o.Nz
}

// Field represents a multi-channel volume, such as the 21-coefficient
// diffusion-kurtosis tensor field or the 3-vector principal-direction map.
// Channels are stored contiguously per voxel.
type Field struct {
	// Data holds Channels values per voxel, indexed as voxelIndex*Channels + c
	Data []float64

	// Nx, Ny, Nz are the spatial dimensions in voxels
	Nx, Ny, Nz int

	// Channels is the number of values stored per voxel
	Channels int
}

// NewField allocates a zero-filled field of the given shape.
func NewField(nx, ny, nz, channels int) *Field {
	return &Field{
		Data: make([]float64, nx*ny*nz*channels),
		Nx:   nx, Ny: ny, Nz: nz,
		Channels: channels,
	}
}

// NewNaNField allocates a field with every value set to NaN.
func NewNaNField(nx, ny, nz, channels int) *Field {
	f := NewField(nx, ny, nz, channels)
	nan := math.NaN()
	for i := range f.Data {
		f.Data[i] = nan
	}
	return f
}

// Index returns the linear spatial index of voxel (x, y, z).
func (f *Field) Index(x, y, z int) int {
	return (z*f.Ny+y)*f.Nx + x
}

// NumVoxels returns the number of spatial positions in the field.
func (f *Field) NumVoxels() int {
	return f.Nx * f.Ny * f.Nz
}

// Voxel returns the channel values of the voxel at the given linear spatial
// index as a slice sharing the field's backing array.
func (f *Field) Voxel(idx int) []float64 {
	return f.Data[idx*f.Channels : (idx+1)*f.Channels]
}

// Validate checks that the field has a usable shape: strictly positive 3-D
// spatial dimensions and exactly the expected channel count.
func (f *Field) Validate(wantChannels int) error {
	if f.Nx <= 0 || f.Ny <= 0 || f.Nz <= 0 {
		return fmt.Errorf("field spatial dimensions must be 3-D and positive, got %dx%dx%d", f.Nx, f.Ny, f.Nz)
	}
	if f.Channels != wantChannels {
		return fmt.Errorf("field has %d channels per voxel, want %d", f.Channels, wantChannels)
	}
	if len(f.Data) != f.Nx*f.Ny*f.Nz*f.Channels {
		return fmt.Errorf("field data length %d does not match shape %dx%dx%dx%d",
			len(f.Data), f.Nx, f.Ny, f.Nz, f.Channels)
	}
	return nil
}

// DefaultMask derives the processing mask from the field itself: a voxel is
// in-mask when its first channel is finite. This matches the convention that
// out-of-brain voxels carry NaN coefficients.
func (f *Field) DefaultMask() *Mask {
	m := NewMask(f.Nx, f.Ny, f.Nz)
	for i := 0; i < f.NumVoxels(); i++ {
		v := f.Data[i*f.Channels]
		m.Data[i] = !math.IsNaN(v)
	}
	return m
}

// Packed extracts the in-mask voxels as a packed table: the linear spatial
// index of each selected voxel and a flat row-major coefficient matrix with
// one row of Channels values per selected voxel. The packed layout lets the
// estimation stages run over a dense voxel list instead of the full grid.
func (f *Field) Packed(m *Mask) (indices []int, coeffs []float64) {
	for i := 0; i < f.NumVoxels(); i++ {
		if m.Data[i] {
			indices = append(indices, i)
		}
	}
	coeffs = make([]float64, len(indices)*f.Channels)
	for row, idx := range indices {
		copy(coeffs[row*f.Channels:(row+1)*f.Channels], f.Voxel(idx))
	}
	return indices, coeffs
}
