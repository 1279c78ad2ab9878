package tensor

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sphere256 returns the fixed 256-direction sampling set as a fresh slice.
// The returned vectors are unit length and quasi-uniform over the sphere;
// their order is stable across calls and builds.
func Sphere256() [][3]float64 {
	dirs := make([][3]float64, len(sphere256))
	for i, d := range sphere256 {
		dirs[i] = d
	}
	return dirs
}

// EquatorialDirections returns n equally spaced unit directions in the plane
// orthogonal to axis. The directions are generated on the unit circle in the
// XY-plane and rotated so the circle's normal aligns with axis, using a
// Rodrigues rotation built from the cross product of the z-axis and axis.
//
// When axis is (anti-)parallel to the z-axis the cross product vanishes and
// the Rodrigues formula degenerates; that case falls back to the identity
// rotation (the XY-plane already is the equatorial plane). The fallback keeps
// the routine total: it never fails, for any non-zero axis.
func EquatorialDirections(axis [3]float64, n int) [][3]float64 {
	dirs := make([][3]float64, n)

	rot := rotationFromZ(axis)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		p := mat.NewVecDense(3, []float64{math.Cos(theta), math.Sin(theta), 0})

		var q mat.VecDense
		q.MulVec(rot, p)

		d := [3]float64{q.AtVec(0), q.AtVec(1), q.AtVec(2)}
		norm := math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
		dirs[i] = [3]float64{d[0] / norm, d[1] / norm, d[2] / norm}
	}
	return dirs
}

// rotationFromZ builds the rotation matrix taking the z-axis onto axis.
func rotationFromZ(axis [3]float64) *mat.Dense {
	norm := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	a := [3]float64{axis[0] / norm, axis[1] / norm, axis[2] / norm}

	// v = z x a, s = |v|, c = z . a
	v := [3]float64{-a[1], a[0], 0}
	s2 := v[0]*v[0] + v[1]*v[1]
	c := a[2]

	if s2 < 1e-24 {
		// Axis is (anti-)parallel to z: the equatorial plane is the XY-plane
		// either way, so the identity suffices for both orientations.
		return mat.NewDense(3, 3, []float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		})
	}

	// Rodrigues: R = I + [v]x + [v]x^2 * (1-c)/s^2
	vx := mat.NewDense(3, 3, []float64{
		0, -v[2], v[1],
		v[2], 0, -v[0],
		-v[1], v[0], 0,
	})

	var vx2 mat.Dense
	vx2.Mul(vx, vx)

	r := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	r.Add(r, vx)
	vx2.Scale((1-c)/s2, &vx2)
	r.Add(r, &vx2)
	return r
}
