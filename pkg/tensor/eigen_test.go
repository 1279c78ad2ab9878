package tensor

import (
	"math"
	"testing"
)

const eigTol = 1e-12

// TestDecomposeDTOrdering verifies that eigenvalues come back descending and
// paired with the right eigenvectors for a diagonal tensor whose coefficient
// order scrambles the eigenvalue order.
func TestDecomposeDTOrdering(t *testing.T) {
	// Dxx=1, Dyy=3, Dzz=2: eigenvalues must come back as 3, 2, 1.
	sys := DecomposeDT([6]float64{1, 0, 0, 3, 0, 2})
	if !sys.Ok {
		t.Fatal("decomposition unexpectedly failed")
	}

	want := [3]float64{3, 2, 1}
	for i := range want {
		if math.Abs(sys.Values[i]-want[i]) > eigTol {
			t.Errorf("eigenvalue %d: got %v, want %v", i, sys.Values[i], want[i])
		}
	}

	// The principal eigenvector must span the y-axis (Dyy carries the
	// largest eigenvalue); sign is arbitrary.
	if math.Abs(math.Abs(sys.Vectors[0][1])-1) > 1e-9 {
		t.Errorf("principal eigenvector %v does not span the y-axis", sys.Vectors[0])
	}
}

// TestDecomposeDTDescendingRandomized verifies the descending invariant and
// MD = trace/3 over a batch of symmetric tensors.
func TestDecomposeDTDescendingRandomized(t *testing.T) {
	tensors := [][6]float64{
		{1.7e-3, 0.1e-3, -0.2e-3, 1.1e-3, 0.05e-3, 0.9e-3},
		{2.0e-3, 0, 0, 0.5e-3, 0, 0.5e-3},
		{1e-3, 1e-4, 1e-4, 1e-3, 1e-4, 1e-3},
		{3, -1, 0.5, 2, -0.25, 1},
	}

	for i, d := range tensors {
		sys := DecomposeDT(d)
		if !sys.Ok {
			t.Fatalf("tensor %d: decomposition failed", i)
		}
		if sys.Values[0] < sys.Values[1] || sys.Values[1] < sys.Values[2] {
			t.Errorf("tensor %d: eigenvalues not descending: %v", i, sys.Values)
		}

		trace := d[0] + d[3] + d[5]
		if math.Abs(sys.MD()-trace/3) > 1e-9*math.Abs(trace/3) {
			t.Errorf("tensor %d: MD = %v, want trace/3 = %v", i, sys.MD(), trace/3)
		}

		fa := sys.FA()
		if fa < 0 || fa > 1 {
			t.Errorf("tensor %d: FA = %v outside [0, 1]", i, fa)
		}
	}
}

// TestDerivedScalars verifies the closed-form DTI scalars against a known
// eigenvalue triple.
func TestDerivedScalars(t *testing.T) {
	sys := DecomposeDT([6]float64{1.8e-3, 0, 0, 0.4e-3, 0, 0.4e-3})
	if !sys.Ok {
		t.Fatal("decomposition unexpectedly failed")
	}

	if math.Abs(sys.AD()-1.8e-3) > eigTol {
		t.Errorf("AD = %v, want 1.8e-3", sys.AD())
	}
	if math.Abs(sys.RD()-0.4e-3) > eigTol {
		t.Errorf("RD = %v, want 0.4e-3", sys.RD())
	}
	wantMD := (1.8e-3 + 0.4e-3 + 0.4e-3) / 3
	if math.Abs(sys.MD()-wantMD) > eigTol {
		t.Errorf("MD = %v, want %v", sys.MD(), wantMD)
	}
}

// TestFAIsotropic verifies FA = 0 exactly when all eigenvalues coincide, and
// FA > 0 otherwise.
func TestFAIsotropic(t *testing.T) {
	iso := DecomposeDT([6]float64{1e-3, 0, 0, 1e-3, 0, 1e-3})
	if fa := iso.FA(); math.Abs(fa) > 1e-9 {
		t.Errorf("isotropic FA = %v, want 0", fa)
	}

	aniso := DecomposeDT([6]float64{2e-3, 0, 0, 1e-3, 0, 1e-3})
	if fa := aniso.FA(); fa <= 0 {
		t.Errorf("anisotropic FA = %v, want > 0", fa)
	}
}

// TestDecomposeDTInvalid verifies that non-finite input degrades to a NaN
// eigensystem instead of failing.
func TestDecomposeDTInvalid(t *testing.T) {
	cases := [][6]float64{
		{math.NaN(), 0, 0, 1, 0, 1},
		{1, 0, 0, math.Inf(1), 0, 1},
		{math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()},
	}
	for i, d := range cases {
		sys := DecomposeDT(d)
		if sys.Ok {
			t.Errorf("case %d: decomposition of non-finite input reported Ok", i)
		}
		for j := 0; j < 3; j++ {
			if !math.IsNaN(sys.Values[j]) {
				t.Errorf("case %d: eigenvalue %d = %v, want NaN", i, j, sys.Values[j])
			}
			for k := 0; k < 3; k++ {
				if !math.IsNaN(sys.Vectors[j][k]) {
					t.Errorf("case %d: eigenvector element (%d,%d) = %v, want NaN", i, j, k, sys.Vectors[j][k])
				}
			}
		}
	}
}
