package nurbs

import "errors"

var (
	// ErrParse reports text that is not a valid number or number list.
	ErrParse = errors.New("malformed number")
	// ErrLengthMismatch reports a knot vector whose length is not
	// degree + number of control points + 1.
	ErrLengthMismatch = errors.New("knot count mismatch")
	// ErrIndex reports a control point index outside the store.
	ErrIndex = errors.New("control point index out of range")
	// ErrDomain reports an evaluation outside the curve's parameter domain,
	// or at a parameter where the weighted basis sum vanishes.
	ErrDomain = errors.New("parameter outside curve domain")
)
