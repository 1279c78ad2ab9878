package tensor

import (
	"math"
	"testing"
)

// expand2 builds the full symmetric 3x3 tensor from the 6 unique coefficients.
func expand2(d [6]float64) [3][3]float64 {
	var full [3][3]float64
	for c, p := range basis2Ind {
		full[p[0]][p[1]] = d[c]
		full[p[1]][p[0]] = d[c]
	}
	return full
}

// expand4 builds the full symmetric 3x3x3x3 tensor from the 15 unique
// coefficients by assigning every permutation of each index quadruple.
func expand4(w [15]float64) [3][3][3][3]float64 {
	var full [3][3][3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					s := [4]int{i, j, k, l}
					// insertion sort of 4 small ints
					for a := 1; a < 4; a++ {
						for b := a; b > 0 && s[b] < s[b-1]; b-- {
							s[b], s[b-1] = s[b-1], s[b]
						}
					}
					for c, q := range basis4Ind {
						if q == s {
							full[i][j][k][l] = w[c]
						}
					}
				}
			}
		}
	}
	return full
}

// bruteADC contracts the dense rank-2 tensor over all 9 index combinations.
func bruteADC(d [6]float64, dir [3]float64) float64 {
	full := expand2(d)
	sum := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += full[i][j] * dir[i] * dir[j]
		}
	}
	return sum
}

// bruteQuartic contracts the dense rank-4 tensor over all 81 combinations.
func bruteQuartic(w [15]float64, dir [3]float64) float64 {
	full := expand4(w)
	sum := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					sum += full[i][j][k][l] * dir[i] * dir[j] * dir[k] * dir[l]
				}
			}
		}
	}
	return sum
}

var testDiffusion = [6]float64{1.7e-3, 0.2e-3, -0.1e-3, 1.2e-3, 0.05e-3, 0.8e-3}

var testKurtosis = [15]float64{
	1.2, 0.1, -0.05, 0.4, 0.02, 0.3,
	-0.08, 0.06, -0.01, 0.09, 1.1, 0.03,
	0.35, -0.04, 0.9,
}

// TestADCMatchesBruteForce validates the multiplicity bookkeeping of the
// basis-table contraction against a dense full-tensor expansion.
func TestADCMatchesBruteForce(t *testing.T) {
	dirs := Sphere256()[:16]
	got := ADC(testDiffusion, dirs)
	for k, d := range dirs {
		want := bruteADC(testDiffusion, d)
		if math.Abs(got[k]-want) > 1e-15 {
			t.Errorf("direction %d: ADC = %v, brute force = %v", k, got[k], want)
		}
	}
}

// TestAKCMatchesBruteForce validates the rank-4 contraction and the
// ADC/MD normalization against the dense 81-term expansion.
func TestAKCMatchesBruteForce(t *testing.T) {
	var full21 [21]float64
	copy(full21[:6], testDiffusion[:])
	copy(full21[6:], testKurtosis[:])

	dirs := Sphere256()[:16]
	got := AKC(full21, dirs)

	md := (testDiffusion[0] + testDiffusion[3] + testDiffusion[5]) / 3
	for k, d := range dirs {
		adc := bruteADC(testDiffusion, d)
		want := bruteQuartic(testKurtosis, d) * md * md / (adc * adc)
		if math.Abs(got[k]-want) > 1e-12*math.Abs(want) {
			t.Errorf("direction %d: AKC = %v, brute force = %v", k, got[k], want)
		}
	}
}

// TestADCIsotropic verifies that an isotropic diffusion tensor yields the
// same ADC along every direction.
func TestADCIsotropic(t *testing.T) {
	got := ADC([6]float64{1e-3, 0, 0, 1e-3, 0, 1e-3}, Sphere256())
	for k, v := range got {
		if math.Abs(v-1e-3) > 1e-15 {
			t.Errorf("direction %d: isotropic ADC = %v, want 1e-3", k, v)
		}
	}
}

// TestAKCUndefinedForNonPositiveADC verifies the NaN contract where the
// normalization denominator vanishes or goes negative.
func TestAKCUndefinedForNonPositiveADC(t *testing.T) {
	var zero [21]float64
	got := AKC(zero, Sphere256()[:4])
	for k, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("direction %d: AKC with zero tensor = %v, want NaN", k, v)
		}
	}

	var negative [21]float64
	negative[0], negative[3], negative[5] = -1e-3, -1e-3, -1e-3
	got = AKC(negative, Sphere256()[:4])
	for k, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("direction %d: AKC with negative-definite tensor = %v, want NaN", k, v)
		}
	}
}

// TestDesignMatrixShapes verifies the design matrices have one row per
// direction and one column per unique coefficient.
func TestDesignMatrixShapes(t *testing.T) {
	dirs := Sphere256()
	if r, c := ADCDesign(dirs).Dims(); r != 256 || c != 6 {
		t.Errorf("ADC design is %dx%d, want 256x6", r, c)
	}
	if r, c := AKCDesign(dirs).Dims(); r != 256 || c != 15 {
		t.Errorf("AKC design is %dx%d, want 256x15", r, c)
	}
}
