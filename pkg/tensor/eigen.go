package tensor

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// EigenSystem holds one voxel's ordered symmetric eigen-decomposition.
// Eigenvalues are sorted descending (L1 >= L2 >= L3) and Vectors[i] is the
// unit eigenvector paired with L[i]; Vectors[0] is the principal diffusion
// direction. When the decomposition could not be computed (non-finite input
// or non-convergence) Ok is false and every value is NaN.
type EigenSystem struct {
	Values  [3]float64
	Vectors [3][3]float64
	Ok      bool
}

// DecomposeDT decomposes one voxel's diffusion tensor, given as the 6 unique
// coefficients in the order Dxx, Dxy, Dxz, Dyy, Dyz, Dzz, reassembled into a
// symmetric 3x3 matrix. A voxel whose tensor is non-finite, or whose
// decomposition does not converge, yields a NaN-filled EigenSystem rather
// than an error: one bad voxel must never abort a whole-volume batch.
func DecomposeDT(d [6]float64) EigenSystem {
	for _, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nanEigenSystem()
		}
	}

	sym := mat.NewSymDense(3, []float64{
		d[0], d[1], d[2],
		d[1], d[3], d[4],
		d[2], d[4], d[5],
	})

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nanEigenSystem()
	}

	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// gonum reports eigenvalues ascending; reverse into descending order so
	// index 0 is always the principal axis.
	var sys EigenSystem
	sys.Ok = true
	for i := 0; i < 3; i++ {
		src := 2 - i
		sys.Values[i] = vals[src]
		for j := 0; j < 3; j++ {
			sys.Vectors[i][j] = vecs.At(j, src)
		}
	}
	return sys
}

func nanEigenSystem() EigenSystem {
	nan := math.NaN()
	return EigenSystem{
		Values: [3]float64{nan, nan, nan},
		Vectors: [3][3]float64{
			{nan, nan, nan},
			{nan, nan, nan},
			{nan, nan, nan},
		},
	}
}

// MD returns the mean diffusivity, the eigenvalue average (trace/3).
func (e EigenSystem) MD() float64 {
	return (e.Values[0] + e.Values[1] + e.Values[2]) / 3
}

// RD returns the radial diffusivity, the average of the two minor eigenvalues.
func (e EigenSystem) RD() float64 {
	return (e.Values[1] + e.Values[2]) / 2
}

// AD returns the axial diffusivity, the principal eigenvalue.
func (e EigenSystem) AD() float64 {
	return e.Values[0]
}

// FA returns the fractional anisotropy. The result lies in [0, 1] for any
// real eigenvalue triple and is exactly 0 for an isotropic tensor; it is NaN
// when the eigenvalues are all zero or invalid.
func (e EigenSystem) FA() float64 {
	l1, l2, l3 := e.Values[0], e.Values[1], e.Values[2]
	den := math.Sqrt(l1*l1 + l2*l2 + l3*l3)
	if den == 0 {
		return math.NaN()
	}
	num := math.Sqrt((l1-l2)*(l1-l2) + (l2-l3)*(l2-l3) + (l3-l1)*(l3-l1))
	return math.Sqrt(0.5) * num / den
}
