package nurbs

import (
	"math"
	"testing"
)

func TestBasisDegreeZero(t *testing.T) {
	knots := KnotVector{0, 1, 2, 2, 3}
	// Control point i is 1 exactly on [knots[i], knots[i+1]).
	tests := []struct {
		t    float64
		want [4]float64
	}{
		{-1, [4]float64{0, 0, 0, 0}},
		{0, [4]float64{1, 0, 0, 0}},
		{0.5, [4]float64{1, 0, 0, 0}},
		{1, [4]float64{0, 1, 0, 0}},
		{1.5, [4]float64{0, 1, 0, 0}},
		{2, [4]float64{0, 0, 0, 1}},
		{2.5, [4]float64{0, 0, 0, 1}},
		{3, [4]float64{0, 0, 0, 0}},
		{4, [4]float64{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		var got [4]float64
		for i := range got {
			got[i] = Basis(knots, i, 0, tt.t)
		}
		if got != tt.want {
			t.Errorf("t = %g: got %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestBasisLinear(t *testing.T) {
	// Degree 1 basis functions on uniform knots are hat functions.
	knots := KnotVector{0, 1, 2, 3}
	tests := []struct {
		t    float64
		want [2]float64
	}{
		{0, [2]float64{0, 0}},
		{0.5, [2]float64{0.5, 0}},
		{1, [2]float64{1, 0}},
		{1.25, [2]float64{0.75, 0.25}},
		{2, [2]float64{0, 1}},
		{2.5, [2]float64{0, 0.5}},
		{3, [2]float64{0, 0}},
	}
	for _, tt := range tests {
		got := [2]float64{Basis(knots, 0, 1, tt.t), Basis(knots, 1, 1, tt.t)}
		diff(t, tt.want, got, approx)
	}
}

var basisKnotVectors = []struct {
	name   string
	degree int
	knots  KnotVector
}{
	{"uniform linear", 1, DefaultKnotVector(1, 4)},
	{"uniform quadratic", 2, DefaultKnotVector(2, 5)},
	{"uniform cubic", 3, DefaultKnotVector(3, 6)},
	{"clamped quadratic", 2, clamped(2, 3, 1, 2)},
	{"clamped cubic", 3, clamped(3, 4, 1, 2, 3)},
	{"repeated interior", 2, clamped(2, 3, 1, 1, 2)},
	{"non-uniform", 3, clamped(3, 10, 0.5, 4, 4.25, 9)},
	{"degree zero", 0, KnotVector{0, 1, 3, 6}},
}

func parameters(lo, hi float64, n int) []float64 {
	ts := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		ts = append(ts, lo+(hi-lo)*float64(i)/float64(n))
	}
	return ts
}

func TestBasisFuncsMatchesRecursion(t *testing.T) {
	for _, tc := range basisKnotVectors {
		t.Run(tc.name, func(t *testing.T) {
			n := len(tc.knots) - tc.degree - 1
			var row []float64
			// Include parameters outside the knot range, where everything vanishes.
			for _, u := range parameters(tc.knots[0]-1, tc.knots[len(tc.knots)-1]+1, 97) {
				row = BasisFuncs(row, tc.knots, tc.degree, n, u)
				if len(row) != n {
					t.Fatalf("got %d basis values, want %d", len(row), n)
				}
				for i, got := range row {
					if want := Basis(tc.knots, i, tc.degree, u); got != want {
						t.Errorf("N(%d, %d, %g) = %g, want %g", i, tc.degree, u, got, want)
					}
				}
			}
		})
	}
}

func TestBasisPartitionOfUnity(t *testing.T) {
	for _, tc := range basisKnotVectors {
		t.Run(tc.name, func(t *testing.T) {
			n := len(tc.knots) - tc.degree - 1
			lo, hi := tc.knots.Domain(tc.degree)
			var row []float64
			for _, u := range parameters(lo, hi, 200) {
				if u >= hi {
					continue
				}
				row = BasisFuncs(row, tc.knots, tc.degree, n, u)
				var sum float64
				for _, b := range row {
					if b < 0 {
						t.Errorf("negative basis value %g at t = %g", b, u)
					}
					sum += b
				}
				if math.Abs(sum-1) > 1e-12 {
					t.Errorf("basis values at t = %g sum to %g", u, sum)
				}
			}
		})
	}
}

func TestBasisVanishesAtClampedEnd(t *testing.T) {
	knots := clamped(3, 4, 1, 2, 3)
	n := len(knots) - 3 - 1
	for i, b := range BasisFuncs(nil, knots, 3, n, 4) {
		if b != 0 {
			t.Errorf("N(%d, 3, 4) = %g, want 0", i, b)
		}
	}
}

func TestBasisFuncsReusesBuffer(t *testing.T) {
	knots := DefaultKnotVector(3, 6)
	buf := make([]float64, 0, 16)
	row := BasisFuncs(buf, knots, 3, 6, 4.5)
	if &row[0] != &buf[:1][0] {
		t.Error("BasisFuncs allocated despite sufficient capacity")
	}

	allocs := testing.AllocsPerRun(100, func() {
		row = BasisFuncs(row, knots, 3, 6, 4.5)
	})
	if allocs != 0 {
		t.Errorf("got %v allocations per call, want 0", allocs)
	}
}
