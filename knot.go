package nurbs

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// KnotVector is a sequence of parameter values that partitions a curve's
// parameter range into spans. A curve of degree d with n control points
// needs exactly d+n+1 knots.
type KnotVector []float64

// KnotCount returns the number of knots a curve of the given degree with n
// control points requires.
func KnotCount(degree, n int) int {
	return degree + n + 1
}

// DefaultKnotVector returns the uniform knot vector 0, 1, …, degree+n. It
// always has the length required by degree and n.
func DefaultKnotVector(degree, n int) KnotVector {
	m := KnotCount(degree, n)
	if m <= 0 {
		return nil
	}
	knots := make(KnotVector, m)
	for i := range knots {
		knots[i] = float64(i)
	}
	return knots
}

// ParseKnots parses a comma-separated list of numbers. Blanks around elements
// are ignored. Empty, malformed and non-finite elements fail with [ErrParse].
func ParseKnots(raw string) (KnotVector, error) {
	fields := strings.Split(raw, ",")
	knots := make(KnotVector, 0, len(fields))
	for i, field := range fields {
		v, err := parseReal(field)
		if err != nil {
			return nil, fmt.Errorf("knot %d: %w", i, err)
		}
		knots = append(knots, v)
	}
	return knots, nil
}

// ValidateKnotVector parses raw and checks it against the length required by
// degree and n. It fails with [ErrParse] or [ErrLengthMismatch]. Callers
// that need a usable vector regardless should use [KnotsOrDefault].
func ValidateKnotVector(raw string, degree, n int) (KnotVector, error) {
	knots, err := ParseKnots(raw)
	if err != nil {
		return nil, err
	}
	if err := knots.Validate(degree, n); err != nil {
		return nil, err
	}
	return knots, nil
}

// KnotsOrDefault is like [ValidateKnotVector], but substitutes
// [DefaultKnotVector] when validation fails. The validation error is still
// returned so that it can be reported. The substitute satisfies the length
// requirement by construction and is not validated again.
func KnotsOrDefault(raw string, degree, n int) (KnotVector, error) {
	knots, err := ValidateKnotVector(raw, degree, n)
	if err != nil {
		return DefaultKnotVector(degree, n), err
	}
	return knots, nil
}

// Validate reports whether knots has the length required by degree and n.
func (knots KnotVector) Validate(degree, n int) error {
	if want := KnotCount(degree, n); len(knots) != want {
		return fmt.Errorf("got %d knots, need %d for degree %d and %d control points: %w",
			len(knots), want, degree, n, ErrLengthMismatch)
	}
	return nil
}

// Domain returns the parameter range [knots[degree], knots[len-1-degree]]
// over which a curve of the given degree is defined. The upper end belongs
// to the range only nominally; see [Evaluate].
func (knots KnotVector) Domain(degree int) (lo, hi float64) {
	return knots[degree], knots[len(knots)-1-degree]
}

// IsNonDecreasing reports whether no knot is smaller than its predecessor.
// Validation does not require this; decreasing vectors evaluate to
// curves that are rarely what the user meant.
func (knots KnotVector) IsNonDecreasing() bool {
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return false
		}
	}
	return true
}

func (knots KnotVector) Clone() KnotVector {
	return append(KnotVector(nil), knots...)
}

// String formats the knots in the form accepted by [ParseKnots].
func (knots KnotVector) String() string {
	var sb strings.Builder
	for i, k := range knots {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(k, 'g', -1, 64))
	}
	return sb.String()
}

// parseReal parses a single finite real number.
func parseReal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value: %w", ErrParse)
	}
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrParse)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%q is not finite: %w", s, ErrParse)
	}
	return v, nil
}

// parseCount parses a non-negative decimal integer, such as a degree or a
// number of control points.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrParse)
	}
	if v < 0 {
		return 0, fmt.Errorf("%q is negative: %w", s, ErrParse)
	}
	return v, nil
}
