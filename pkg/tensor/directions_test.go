package tensor

import (
	"math"
	"testing"
)

const dirTol = 1e-12

func norm3(d [3]float64) float64 {
	return math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// TestSphere256 verifies the fixed sampling table: 256 unit vectors in a
// stable order, returned as an independent copy.
func TestSphere256(t *testing.T) {
	dirs := Sphere256()
	if len(dirs) != 256 {
		t.Fatalf("Sphere256 returned %d directions, want 256", len(dirs))
	}

	for i, d := range dirs {
		if math.Abs(norm3(d)-1) > dirTol {
			t.Errorf("direction %d has norm %v, want 1", i, norm3(d))
		}
	}

	// The table is part of the numerical contract: the first entry must stay
	// put across calls, and mutating a returned copy must not leak back.
	first := dirs[0]
	dirs[0] = [3]float64{9, 9, 9}
	again := Sphere256()
	if again[0] != first {
		t.Errorf("Sphere256 table mutated through a returned copy: got %v, want %v", again[0], first)
	}
}

// TestEquatorialDirections verifies that the generated ring is unit length
// and orthogonal to the axis, for general axes and for both degenerate
// orientations along z where the Rodrigues construction needs its fallback.
func TestEquatorialDirections(t *testing.T) {
	axes := map[string][3]float64{
		"general":     {1, 2, 3},
		"x":           {1, 0, 0},
		"y":           {0, 1, 0},
		"z":           {0, 0, 1},
		"minus-z":     {0, 0, -1},
		"near-z":      {1e-9, 0, 1},
		"anisotropic": {-0.3, 0.8, -0.5},
	}

	for name, axis := range axes {
		t.Run(name, func(t *testing.T) {
			n := norm3(axis)
			unit := [3]float64{axis[0] / n, axis[1] / n, axis[2] / n}

			dirs := EquatorialDirections(axis, 256)
			if len(dirs) != 256 {
				t.Fatalf("got %d directions, want 256", len(dirs))
			}
			for i, d := range dirs {
				if math.Abs(norm3(d)-1) > 1e-9 {
					t.Errorf("direction %d has norm %v, want 1", i, norm3(d))
				}
				if math.Abs(dot3(d, unit)) > 1e-9 {
					t.Errorf("direction %d is not orthogonal to the axis: dot = %v", i, dot3(d, unit))
				}
			}
		})
	}
}

// TestEquatorialDirectionsSpacing verifies the ring is equally spaced: the
// angle between consecutive directions is 2*pi/n for every pair.
func TestEquatorialDirectionsSpacing(t *testing.T) {
	n := 16
	dirs := EquatorialDirections([3]float64{1, 1, 1}, n)
	want := math.Cos(2 * math.Pi / float64(n))
	for i := range dirs {
		next := dirs[(i+1)%n]
		if math.Abs(dot3(dirs[i], next)-want) > 1e-9 {
			t.Errorf("consecutive directions %d and %d are spaced by cos=%v, want %v",
				i, (i+1)%n, dot3(dirs[i], next), want)
		}
	}
}
