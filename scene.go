package nurbs

import (
	"fmt"

	"github.com/sgostarter/i/l"
)

// Scene is the curve being edited: its degree, knots and control points,
// plus the text parsing an editor needs to change them. It is the single
// owner of that state; evaluation borrows it through [Scene.Curve].
//
// Scene is not safe for concurrent use.
type Scene struct {
	logger l.Wrapper

	degree  int
	knots   KnotVector
	store   *Store
	samples *SampleCache
}

// NewScene returns an empty scene of degree 0 without control points.
func NewScene(logger l.Wrapper) *Scene {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &Scene{
		logger:  logger.WithFields(l.StringField(l.ClsKey, "scene")),
		knots:   DefaultKnotVector(0, 0),
		store:   &Store{},
		samples: NewSampleCache(DefaultSampleExpiry, logger),
	}
}

// Start begins a new curve. degreeText and countText must be non-negative
// decimal integers; otherwise Start fails with [ErrParse] and leaves the
// scene unchanged. The new curve has count control points of weight 1 in
// [DefaultLayout] and the default knot vector.
func (s *Scene) Start(degreeText, countText string) error {
	degree, err := parseCount(degreeText)
	if err != nil {
		s.logger.WithFields(l.ErrorField(err)).Error("invalid degree")

		return fmt.Errorf("degree: %w", err)
	}

	count, err := parseCount(countText)
	if err != nil {
		s.logger.WithFields(l.ErrorField(err)).Error("invalid control point count")

		return fmt.Errorf("control point count: %w", err)
	}

	s.degree = degree
	s.store.Reset(count, DefaultLayout)
	s.knots = DefaultKnotVector(degree, count)

	s.logger.WithFields(l.IntField("degree", degree), l.IntField("count", count)).Debug("started curve")

	return nil
}

// UpdateKnots replaces the knot vector with the one parsed from raw. If raw
// is malformed or has the wrong number of knots, the default knot vector is
// installed instead and the validation error is returned for the user to
// see. Either way, the installed vector is returned; a front end should
// show it in its knot entry.
func (s *Scene) UpdateKnots(raw string) (KnotVector, error) {
	knots, err := KnotsOrDefault(raw, s.degree, s.store.Count())
	if err != nil {
		s.logger.WithFields(l.ErrorField(err), l.StringField("knots", raw)).Error("invalid knots, using default")
	}

	s.knots = knots

	return knots.Clone(), err
}

// SetControlPoint replaces the position and weight of the i-th control
// point.
func (s *Scene) SetControlPoint(i int, x, y, weight float64) error {
	return s.store.Set(i, x, y, weight)
}

// SetControlPointText is like [Scene.SetControlPoint], but parses the values
// from text. If any of them is malformed, the control point is left
// unchanged and the error wraps [ErrParse].
func (s *Scene) SetControlPointText(i int, x, y, weight string) error {
	var vals [3]float64
	for j, text := range [3]string{x, y, weight} {
		v, err := parseReal(text)
		if err != nil {
			s.logger.WithFields(l.ErrorField(err), l.IntField("index", i)).Error("invalid control point data")

			return fmt.Errorf("control point %d: %w", i, err)
		}
		vals[j] = v
	}

	return s.store.Set(i, vals[0], vals[1], vals[2])
}

// MoveControlPoint moves the i-th control point to pt, keeping its weight.
func (s *Scene) MoveControlPoint(i int, pt Point) error {
	return s.store.Move(i, pt)
}

// ControlPointAt returns the index of the control point under pt, using
// [DefaultPickRadius].
func (s *Scene) ControlPointAt(pt Point) (int, bool) {
	return s.store.Hit(pt, DefaultPickRadius)
}

func (s *Scene) Degree() int {
	return s.degree
}

// Knots returns a copy of the current knot vector.
func (s *Scene) Knots() KnotVector {
	return s.knots.Clone()
}

// Store returns the scene's control points. Changes to the store are
// changes to the scene.
func (s *Scene) Store() *Store {
	return s.store
}

// Curve returns a view of the current curve. The view shares the scene's
// control points; it sees later edits to them but not later changes of
// degree or knots.
func (s *Scene) Curve() Curve {
	return Curve{Degree: s.degree, Knots: s.knots, Points: s.store}
}

// Sample samples the current curve at steps parameters. Samplings of an
// unchanged curve are served from a cache. A scene without control points
// has no curve and yields no points.
func (s *Scene) Sample(steps int) (Polyline, error) {
	if s.store.Count() == 0 {
		return nil, nil
	}

	return s.samples.Sample(s.Curve(), steps)
}
