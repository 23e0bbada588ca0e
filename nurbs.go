package nurbs

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Curve is a rational B-spline curve: a degree, a knot vector, and weighted
// control points. It borrows its knots and control points; evaluation never
// modifies them, but the owner may change them between evaluations.
type Curve struct {
	Degree int
	Knots  KnotVector
	Points *Store
}

// Evaluate returns the point at parameter t of the curve with the given
// degree, knots and control points. See [Curve.Eval].
func Evaluate(t float64, degree int, knots KnotVector, store *Store) (Point, error) {
	return Curve{Degree: degree, Knots: knots, Points: store}.Eval(t)
}

// Sample returns steps points spread over the curve's domain. See
// [Curve.Sample].
func Sample(steps int, degree int, knots KnotVector, store *Store) (Polyline, error) {
	return Curve{Degree: degree, Knots: knots, Points: store}.Sample(steps)
}

func (c Curve) count() int {
	if c.Points == nil {
		return 0
	}
	return c.Points.Count()
}

// Validate reports whether the degree is non-negative and the number of
// knots matches the degree and the number of control points. A nil store
// counts as empty.
func (c Curve) Validate() error {
	if c.Degree < 0 {
		return fmt.Errorf("negative degree %d: %w", c.Degree, ErrLengthMismatch)
	}
	return c.Knots.Validate(c.Degree, c.count())
}

// Domain returns the ends of the range of parameters the curve can be
// evaluated at, in the order [Curve.Sample] visits them. If the degree is
// not less than the number of control points, or the knots decrease, lo may
// exceed hi.
func (c Curve) Domain() (lo, hi float64, err error) {
	if err := c.Validate(); err != nil {
		return 0, 0, err
	}
	lo, hi = c.Knots.Domain(c.Degree)
	return lo, hi, nil
}

// Eval returns the point at parameter t: the sum of the control points
// weighted by their basis functions and weights, divided by the sum of those
// weights.
//
// Eval fails with [ErrDomain] if t lies outside the curve's domain, or if
// the weighted sum of basis functions is zero at t. Because basis functions
// are supported on half-open spans, the latter is usually the case at the
// upper end of the domain. Inconsistent curves fail with
// [ErrLengthMismatch].
func (c Curve) Eval(t float64) (Point, error) {
	if err := c.Validate(); err != nil {
		return Point{}, err
	}
	pt, _, err := c.eval(nil, t)
	return pt, err
}

// eval evaluates a validated curve, using basis as scratch space. It returns
// the scratch space for reuse.
func (c Curve) eval(basis []float64, t float64) (Point, []float64, error) {
	lo, hi := c.Knots.Domain(c.Degree)
	lo, hi = min(lo, hi), max(lo, hi)
	if !(t >= lo && t <= hi) {
		return Point{}, basis, fmt.Errorf("t = %g not in [%g, %g]: %w", t, lo, hi, ErrDomain)
	}

	n := c.count()
	basis = BasisFuncs(basis, c.Knots, c.Degree, n, t)
	var h homogeneous
	for i, b := range basis {
		cp := c.Points.points[i]
		h = h.add(cp.Pos, cp.Weight, b)
	}
	pt, ok := h.project()
	if !ok {
		return Point{}, basis, fmt.Errorf("weighted basis sum vanishes at t = %g: %w", t, ErrDomain)
	}
	return pt, basis, nil
}

// sampleSlack keeps the last sample just short of the upper end of the
// domain. The i-th of n samples sits at fraction i / (n - sampleSlack).
const sampleSlack = 0.99999

// Sample evaluates the curve at steps parameters, from lo towards, but never
// reaching, hi, where lo and hi are the ends reported by [Curve.Domain]. The result depends only
// on the curve; sampling an unchanged curve again yields the same points.
//
// A non-positive steps yields no points.
func (c Curve) Sample(steps int) (Polyline, error) {
	return c.AppendSample(nil, steps)
}

// AppendSample is like [Curve.Sample] but appends the points to dst and
// returns the extended slice. On error, it returns dst with its original
// length. Points sampled before the failure may still have been written to
// dst's spare capacity.
func (c Curve) AppendSample(dst Polyline, steps int) (Polyline, error) {
	if steps <= 0 {
		return dst, nil
	}
	if err := c.Validate(); err != nil {
		return dst, err
	}

	lo, hi := c.Knots.Domain(c.Degree)
	out := dst
	var basis []float64
	for i := range steps {
		p := float64(i) / (float64(steps) - sampleSlack)
		t := lo*(1-p) + hi*p

		var pt Point
		var err error
		pt, basis, err = c.eval(basis, t)
		if err != nil {
			return dst, fmt.Errorf("sample %d of %d: %w", i, steps, err)
		}
		out = append(out, pt)
	}
	return out, nil
}

// Fingerprint returns a hash of the curve's degree, knots, control points
// and weights. Curves that differ in any of these have different
// fingerprints with overwhelming probability.
func (c Curve) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	putInt(c.Degree)
	putInt(len(c.Knots))
	for _, k := range c.Knots {
		putFloat(k)
	}
	putInt(c.count())
	if c.Points != nil {
		for _, cp := range c.Points.points {
			putFloat(cp.Pos.X)
			putFloat(cp.Pos.Y)
			putFloat(cp.Weight)
		}
	}
	return d.Sum64()
}
