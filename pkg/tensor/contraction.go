package tensor

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ADCDesign builds the directions-by-coefficients design matrix for the
// apparent diffusion coefficient: row k holds, for each of the 6 unique
// diffusion coefficients, multiplicity * d_i * d_j evaluated at direction k.
// Multiplying the design matrix against a 6-vector of coefficients yields
// the ADC along every direction at once; the matrix depends only on the
// direction set and is shared across voxels.
func ADCDesign(dirs [][3]float64) *mat.Dense {
	a := mat.NewDense(len(dirs), len(basis2Ind), nil)
	for k, d := range dirs {
		for c, p := range basis2Ind {
			a.Set(k, c, basis2Cnt[c]*d[p[0]]*d[p[1]])
		}
	}
	return a
}

// AKCDesign builds the directions-by-coefficients design matrix for the
// quartic kurtosis contraction: row k holds, for each of the 15 unique
// kurtosis coefficients, multiplicity * d_i * d_j * d_k * d_l at direction k.
func AKCDesign(dirs [][3]float64) *mat.Dense {
	a := mat.NewDense(len(dirs), len(basis4Ind), nil)
	for k, d := range dirs {
		for c, q := range basis4Ind {
			a.Set(k, c, basis4Cnt[c]*d[q[0]]*d[q[1]]*d[q[2]]*d[q[3]])
		}
	}
	return a
}

// ADC evaluates the apparent diffusion coefficient of one voxel's diffusion
// tensor along each direction: the multiplicity-weighted quadratic form over
// the 6 unique coefficients (order Dxx, Dxy, Dxz, Dyy, Dyz, Dzz).
func ADC(d [6]float64, dirs [][3]float64) []float64 {
	var out mat.VecDense
	out.MulVec(ADCDesign(dirs), mat.NewVecDense(6, d[:]))
	return out.RawVector().Data
}

// AKC evaluates the apparent kurtosis coefficient of one voxel's full
// 21-coefficient diffusion-kurtosis tensor along each direction:
//
//	AKC(d) = W(d) * MD^2 / ADC(d)^2
//
// where W(d) is the quartic contraction of the 15 kurtosis coefficients and
// MD is the mean diffusivity (trace/3) of the diffusion part. The value is
// NaN along directions where ADC is not strictly positive, since the
// normalization is undefined there.
func AKC(t [21]float64, dirs [][3]float64) []float64 {
	var d [6]float64
	copy(d[:], t[:6])

	adc := ADC(d, dirs)

	var quartic mat.VecDense
	quartic.MulVec(AKCDesign(dirs), mat.NewVecDense(15, t[6:]))

	md := (t[0] + t[3] + t[5]) / 3

	out := make([]float64, len(dirs))
	for k := range dirs {
		if adc[k] <= 0 {
			out[k] = math.NaN()
			continue
		}
		out[k] = quartic.AtVec(k) * md * md / (adc[k] * adc[k])
	}
	return out
}
