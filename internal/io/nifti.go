// Package io adapts the volumetric data model to the imaging file formats
// used around the estimator: NIfTI-1 volumes for tensor fields, masks, and
// output maps, and npy tables for packed per-voxel data exchange.
package io

import (
	"fmt"
	"math"

	"github.com/KyungWonPark/nifti"

	"dkimaps/pkg/volume"
)

// LoadTensorField reads a 4-D NIfTI image as a multi-channel tensor field,
// with the 4th (time) axis mapped to the per-voxel channels.
func LoadTensorField(path string) (*volume.Field, error) {
	var img nifti.Nifti1Image
	img.LoadImage(path, true)

	hdr := img.GetHeader()
	nx, ny, nz := int(hdr.Dim[1]), int(hdr.Dim[2]), int(hdr.Dim[3])
	nc := int(hdr.Dim[4])
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("nifti %s: non-3D spatial shape %dx%dx%d", path, nx, ny, nz)
	}
	if nc <= 0 {
		nc = 1
	}

	f := volume.NewField(nx, ny, nz, nc)
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				vox := f.Voxel(f.Index(x, y, z))
				for c := 0; c < nc; c++ {
					vox[c] = float64(img.GetAt(uint32(x), uint32(y), uint32(z), uint32(c)))
				}
			}
		}
	}
	return f, nil
}

// LoadMask reads a 3-D NIfTI image as a boolean mask: any non-zero, finite
// voxel is in-mask.
func LoadMask(path string) (*volume.Mask, error) {
	var img nifti.Nifti1Image
	img.LoadImage(path, true)

	hdr := img.GetHeader()
	nx, ny, nz := int(hdr.Dim[1]), int(hdr.Dim[2]), int(hdr.Dim[3])
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("nifti %s: non-3D spatial shape %dx%dx%d", path, nx, ny, nz)
	}

	m := volume.NewMask(nx, ny, nz)
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				v := float64(img.GetAt(uint32(x), uint32(y), uint32(z), 0))
				m.Data[m.Index(x, y, z)] = v != 0 && !math.IsNaN(v)
			}
		}
	}
	return m, nil
}

// SaveVolume writes a scalar map as a 3-D NIfTI image. When headerTemplate
// is non-empty, the header of that file (typically the input tensor image)
// is copied so the output stays aligned with the input geometry.
func SaveVolume(path string, v *volume.Volume, headerTemplate string) error {
	img := nifti.NewImg(v.Nx, v.Ny, v.Nz, 1)
	if headerTemplate != "" {
		var hdr nifti.Nifti1Header
		hdr.LoadHeader(headerTemplate)
		img.SetNewHeader(hdr)
		img.SetHeaderDim(v.Nx, v.Ny, v.Nz, 1)
	}

	for z := 0; z < v.Nz; z++ {
		for y := 0; y < v.Ny; y++ {
			for x := 0; x < v.Nx; x++ {
				img.SetAt(uint32(x), uint32(y), uint32(z), 0, float32(v.At(x, y, z)))
			}
		}
	}
	img.Save(path)
	return nil
}

// SaveField writes a multi-channel field as a 4-D NIfTI image, channels on
// the 4th axis.
func SaveField(path string, f *volume.Field, headerTemplate string) error {
	img := nifti.NewImg(f.Nx, f.Ny, f.Nz, f.Channels)
	if headerTemplate != "" {
		var hdr nifti.Nifti1Header
		hdr.LoadHeader(headerTemplate)
		img.SetNewHeader(hdr)
		img.SetHeaderDim(f.Nx, f.Ny, f.Nz, f.Channels)
	}

	for z := 0; z < f.Nz; z++ {
		for y := 0; y < f.Ny; y++ {
			for x := 0; x < f.Nx; x++ {
				vox := f.Voxel(f.Index(x, y, z))
				for c := 0; c < f.Channels; c++ {
					img.SetAt(uint32(x), uint32(y), uint32(z), uint32(c), float32(vox[c]))
				}
			}
		}
	}
	img.Save(path)
	return nil
}
