package volume

import (
	"math"
	"testing"
)

// TestVolumeIndexing verifies the x-fastest linear layout.
func TestVolumeIndexing(t *testing.T) {
	v := NewVolume(4, 3, 2)
	if len(v.Data) != 24 {
		t.Fatalf("volume holds %d voxels, want 24", len(v.Data))
	}

	v.Set(1, 2, 1, 42)
	if v.At(1, 2, 1) != 42 {
		t.Errorf("At(1,2,1) = %v, want 42", v.At(1, 2, 1))
	}
	if v.Index(1, 2, 1) != (1*3+2)*4+1 {
		t.Errorf("Index(1,2,1) = %d, want %d", v.Index(1, 2, 1), (1*3+2)*4+1)
	}
}

// TestNaNVolume verifies the NaN-initialized output-map state.
func TestNaNVolume(t *testing.T) {
	v := NewNaNVolume(2, 2, 2)
	for i, x := range v.Data {
		if !math.IsNaN(x) {
			t.Errorf("voxel %d = %v, want NaN", i, x)
		}
	}
}

// TestFieldDefaultMask verifies that the derived mask follows the first
// channel's finiteness.
func TestFieldDefaultMask(t *testing.T) {
	f := NewField(2, 1, 1, 21)
	f.Voxel(0)[0] = 1e-3
	f.Voxel(1)[0] = math.NaN()

	m := f.DefaultMask()
	if !m.Data[0] {
		t.Error("voxel 0 with finite first channel is out of the default mask")
	}
	if m.Data[1] {
		t.Error("voxel 1 with NaN first channel is inside the default mask")
	}
}

// TestPackedRoundTrip verifies that packing in-mask voxels and scattering
// results back lands values on the right voxels.
func TestPackedRoundTrip(t *testing.T) {
	f := NewField(2, 2, 1, 3)
	for i := 0; i < f.NumVoxels(); i++ {
		vox := f.Voxel(i)
		for c := range vox {
			vox[c] = float64(i*10 + c)
		}
	}

	m := NewMask(2, 2, 1)
	m.Data[1], m.Data[3] = true, true

	indices, coeffs := f.Packed(m)
	if len(indices) != 2 {
		t.Fatalf("packed %d voxels, want 2", len(indices))
	}
	if indices[0] != 1 || indices[1] != 3 {
		t.Errorf("packed indices = %v, want [1 3]", indices)
	}
	if coeffs[0] != 10 || coeffs[3] != 30 {
		t.Errorf("packed rows start with %v and %v, want 10 and 30", coeffs[0], coeffs[3])
	}

	out := NewNaNVolume(2, 2, 1)
	out.SetPacked(indices, []float64{1.5, 2.5})
	if out.Data[1] != 1.5 || out.Data[3] != 2.5 {
		t.Errorf("scattered values landed wrong: %v", out.Data)
	}
	if !math.IsNaN(out.Data[0]) || !math.IsNaN(out.Data[2]) {
		t.Error("unpacked voxels lost their NaN fill")
	}
}

// TestFieldValidate verifies the structural input checks.
func TestFieldValidate(t *testing.T) {
	good := NewField(2, 2, 2, 21)
	if err := good.Validate(21); err != nil {
		t.Errorf("valid field rejected: %v", err)
	}

	badChannels := NewField(2, 2, 2, 6)
	if err := badChannels.Validate(21); err == nil {
		t.Error("6-channel field accepted as 21-channel")
	}

	badShape := &Field{Data: make([]float64, 21), Nx: 1, Ny: 1, Nz: 0, Channels: 21}
	if err := badShape.Validate(21); err == nil {
		t.Error("zero-depth field accepted")
	}
}
