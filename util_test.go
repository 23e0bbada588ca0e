package nurbs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including the coordinates of points, with a small
// absolute tolerance.
var approx = cmpopts.EquateApprox(0, 1e-9)

// clamped returns a clamped knot vector for degree with the given interior
// knots: degree+1 zeros, the interior knots, and degree+1 copies of end.
func clamped(degree int, end float64, interior ...float64) KnotVector {
	var knots KnotVector
	for range degree + 1 {
		knots = append(knots, 0)
	}
	knots = append(knots, interior...)
	for range degree + 1 {
		knots = append(knots, end)
	}
	return knots
}
