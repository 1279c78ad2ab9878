package tensor

import "testing"

// TestBasisOrder2 verifies the diffusion-tensor basis: 6 unique index pairs
// in the canonical Dxx..Dzz order with permutation multiplicities.
func TestBasisOrder2(t *testing.T) {
	ind, cnt, err := Basis(2)
	if err != nil {
		t.Fatalf("Basis(2) failed: %v", err)
	}
	if len(ind) != 6 || len(cnt) != 6 {
		t.Fatalf("Basis(2) returned %d tuples and %d multiplicities, want 6 and 6", len(ind), len(cnt))
	}

	wantInd := [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 2}, {2, 2}}
	wantCnt := []float64{1, 2, 2, 1, 2, 1}
	for i := range wantInd {
		if ind[i][0] != wantInd[i][0] || ind[i][1] != wantInd[i][1] {
			t.Errorf("pair %d: got %v, want %v", i, ind[i], wantInd[i])
		}
		if cnt[i] != wantCnt[i] {
			t.Errorf("multiplicity %d: got %v, want %v", i, cnt[i], wantCnt[i])
		}
	}
}

// TestBasisOrder4 verifies the kurtosis-tensor basis: 15 unique quadruples
// with multinomial multiplicities summing to 3^4.
func TestBasisOrder4(t *testing.T) {
	ind, cnt, err := Basis(4)
	if err != nil {
		t.Fatalf("Basis(4) failed: %v", err)
	}
	if len(ind) != 15 || len(cnt) != 15 {
		t.Fatalf("Basis(4) returned %d tuples and %d multiplicities, want 15 and 15", len(ind), len(cnt))
	}

	wantCnt := []float64{1, 4, 4, 6, 12, 6, 4, 12, 12, 4, 1, 4, 6, 4, 1}
	total := 0.0
	for i, c := range cnt {
		if c != wantCnt[i] {
			t.Errorf("multiplicity %d: got %v, want %v", i, c, wantCnt[i])
		}
		total += c
	}
	if total != 81 {
		t.Errorf("multiplicities sum to %v, want 81 (all index permutations of a rank-4 tensor)", total)
	}

	// Every quadruple must be sorted ascending, since only the unique sorted
	// combinations are stored.
	for i, q := range ind {
		for j := 1; j < len(q); j++ {
			if q[j] < q[j-1] {
				t.Errorf("quadruple %d is not sorted: %v", i, q)
			}
		}
	}
}

// TestBasisInvalidOrder verifies that unsupported orders are rejected.
func TestBasisInvalidOrder(t *testing.T) {
	for _, order := range []int{0, 1, 3, 5, -2} {
		if _, _, err := Basis(order); err == nil {
			t.Errorf("Basis(%d) succeeded, want an error", order)
		}
	}
}
