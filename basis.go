package nurbs

// Basis computes the B-spline basis function N(i, j, t) of degree j for
// control point i over knots, using the Cox–de Boor recursion.
//
// The degree 0 functions are the indicators of the half-open spans
// [knots[i], knots[i+1]). Consequently every basis function vanishes at the
// last knot. Coefficients whose denominators vanish because of repeated knots
// are taken to be zero.
//
// knots must hold at least i+j+2 values. Basis recomputes lower degrees on
// every call and takes time exponential in j; use [BasisFuncs] to evaluate
// all functions at one parameter.
func Basis(knots KnotVector, i, j int, t float64) float64 {
	if j == 0 {
		if t >= knots[i] && t < knots[i+1] {
			return 1
		}
		return 0
	}
	a, b := blend(knots, i, j, t)
	return a*Basis(knots, i, j-1, t) + b*Basis(knots, i+1, j-1, t)
}

// BasisFuncs computes N(i, degree, t) for all i in [0, n) and returns them
// in dst[:n]. The results are identical to those of [Basis].
//
// The computation fills the triangular table of lower-degree values one
// degree at a time, keeping only the current row, which holds n+degree
// values. dst is used as that row if it has the capacity, so repeated calls
// with the returned slice do not allocate.
//
// knots must hold n+degree+1 values.
func BasisFuncs(dst []float64, knots KnotVector, degree, n int, t float64) []float64 {
	m := n + degree
	if cap(dst) < m {
		dst = make([]float64, m)
	}
	row := dst[:m]

	for i := range row {
		if t >= knots[i] && t < knots[i+1] {
			row[i] = 1
		} else {
			row[i] = 0
		}
	}
	for j := 1; j <= degree; j++ {
		// Ascending i reads row[i+1] before it is overwritten.
		for i := 0; i < m-j; i++ {
			a, b := blend(knots, i, j, t)
			row[i] = a*row[i] + b*row[i+1]
		}
	}
	return row[:n]
}

// blend returns the coefficients of N(i, j-1, t) and N(i+1, j-1, t) in the
// Cox–de Boor recursion for N(i, j, t).
func blend(knots KnotVector, i, j int, t float64) (a, b float64) {
	if d := knots[i+j] - knots[i]; d != 0 {
		a = (t - knots[i]) / d
	}
	if d := knots[i+j+1] - knots[i+1]; d != 0 {
		b = (knots[i+j+1] - t) / d
	}
	return a, b
}
