// Package tensor implements the per-voxel tensor mathematics for
// diffusion-kurtosis imaging: the unique-coefficient basis tables for
// symmetric rank-2 and rank-4 tensors, fixed and derived directional
// sampling sets, symmetric eigen-decomposition, and the apparent
// diffusion/kurtosis coefficient (ADC/AKC) contraction machinery.
package tensor

import "fmt"

// basis2Ind lists the unique index pairs of a symmetric rank-2 tensor in the
// canonical coefficient order Dxx, Dxy, Dxz, Dyy, Dyz, Dzz.
var basis2Ind = [6][2]int{
	{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 2}, {2, 2},
}

// basis2Cnt holds the multiplicity of each unique pair: the number of
// permutations of the index tuple in the full 3x3 tensor.
var basis2Cnt = [6]float64{1, 2, 2, 1, 2, 1}

// basis4Ind lists the unique index quadruples of a symmetric rank-4 tensor in
// the canonical coefficient order W1111, W1112, W1113, W1122, W1123, W1133,
// W1222, W1223, W1233, W1333, W2222, W2223, W2233, W2333, W3333.
var basis4Ind = [15][4]int{
	{0, 0, 0, 0}, {0, 0, 0, 1}, {0, 0, 0, 2}, {0, 0, 1, 1}, {0, 0, 1, 2},
	{0, 0, 2, 2}, {0, 1, 1, 1}, {0, 1, 1, 2}, {0, 1, 2, 2}, {0, 2, 2, 2},
	{1, 1, 1, 1}, {1, 1, 1, 2}, {1, 1, 2, 2}, {1, 2, 2, 2}, {2, 2, 2, 2},
}

// basis4Cnt holds the multinomial multiplicity of each unique quadruple.
var basis4Cnt = [15]float64{1, 4, 4, 6, 12, 6, 4, 12, 12, 4, 1, 4, 6, 4, 1}

// Basis returns the unique index tuples and multiplicities for a symmetric
// tensor of the given order. Order 2 yields the 6 diffusion-tensor pairs,
// order 4 the 15 kurtosis-tensor quadruples. Only the unique (sorted) index
// combinations are stored, so contracting against a direction requires
// weighting each term by its multiplicity; Basis provides both.
//
// Any order other than 2 or 4 is an error.
func Basis(order int) (ind [][]int, cnt []float64, err error) {
	switch order {
	case 2:
		ind = make([][]int, len(basis2Ind))
		for i, p := range basis2Ind {
			ind[i] = []int{p[0], p[1]}
		}
		cnt = append(cnt, basis2Cnt[:]...)
	case 4:
		ind = make([][]int, len(basis4Ind))
		for i, q := range basis4Ind {
			ind[i] = []int{q[0], q[1], q[2], q[3]}
		}
		cnt = append(cnt, basis4Cnt[:]...)
	default:
		return nil, nil, fmt.Errorf("no tensor basis for order %d, want 2 or 4", order)
	}
	return ind, cnt, nil
}
