package nurbs

import (
	"fmt"
	"iter"
)

// DefaultPickRadius is the distance within which [Store.Hit] considers a
// control point hit.
const DefaultPickRadius = 5

// DefaultLayout places control points on a horizontal row starting at
// (100, 500), 250 units apart.
var DefaultLayout = RowLayout(Pt(100, 500), 250)

// ControlPoint is a weighted position that pulls the curve towards itself.
// Larger weights pull harder. Weights are conventionally positive, but this
// is not enforced.
type ControlPoint struct {
	Pos    Point
	Weight float64
}

// NewControlPoint returns a control point at pt with weight 1.
func NewControlPoint(pt Point) ControlPoint {
	return ControlPoint{Pos: pt, Weight: 1}
}

func (cp ControlPoint) String() string {
	return fmt.Sprintf("Ctrl(%g, %g, %g)", cp.Pos.X, cp.Pos.Y, cp.Weight)
}

// Layout returns the initial position of the i-th control point.
type Layout func(i int) Point

// RowLayout returns a layout that places points at origin, origin+(spacing, 0),
// origin+(2·spacing, 0), and so on.
func RowLayout(origin Point, spacing float64) Layout {
	return func(i int) Point {
		return origin.Translate(Vec(float64(i)*spacing, 0))
	}
}

// Store is an ordered collection of control points. The order of the points
// is the order in which the curve passes by them. The number of points only
// changes through [Store.Reset].
//
// The zero value is an empty store.
type Store struct {
	points []ControlPoint
}

// NewStore returns a store with count control points of weight 1, placed by
// layout.
func NewStore(count int, layout Layout) *Store {
	s := &Store{}
	s.Reset(count, layout)
	return s
}

// Reset replaces all control points with count new points of weight 1,
// placed by layout. A nil layout places all points at the origin. Negative
// counts are treated as zero.
func (s *Store) Reset(count int, layout Layout) {
	count = max(count, 0)
	s.points = make([]ControlPoint, count)
	for i := range s.points {
		var pt Point
		if layout != nil {
			pt = layout(i)
		}
		s.points[i] = NewControlPoint(pt)
	}
}

// Count returns the number of control points.
func (s *Store) Count() int {
	return len(s.points)
}

// Get returns the i-th control point.
func (s *Store) Get(i int) (ControlPoint, error) {
	if err := s.check(i); err != nil {
		return ControlPoint{}, err
	}
	return s.points[i], nil
}

// Set replaces the position and weight of the i-th control point.
func (s *Store) Set(i int, x, y, weight float64) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.points[i] = ControlPoint{Pos: Pt(x, y), Weight: weight}
	return nil
}

// Move changes the position of the i-th control point and keeps its weight.
func (s *Store) Move(i int, pt Point) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.points[i].Pos = pt
	return nil
}

func (s *Store) check(i int) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("index %d, have %d control points: %w", i, len(s.points), ErrIndex)
	}
	return nil
}

// All returns an iterator over the control points and their indices, in order.
func (s *Store) All() iter.Seq2[int, ControlPoint] {
	return func(yield func(int, ControlPoint) bool) {
		for i, cp := range s.points {
			if !yield(i, cp) {
				return
			}
		}
	}
}

// ControlPolygon returns an iterator over the legs connecting neighbouring
// control points.
func (s *Store) ControlPolygon() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(s.points); i++ {
			if !yield(Line{s.points[i-1].Pos, s.points[i].Pos}) {
				return
			}
		}
	}
}

// BoundingBox returns the smallest rectangle enclosing all control points.
// It returns false for an empty store.
//
// If all weights are positive, the curve lies within this rectangle.
func (s *Store) BoundingBox() (Rect, bool) {
	pts := make([]Point, len(s.points))
	for i, cp := range s.points {
		pts[i] = cp.Pos
	}
	return boundingBox(pts)
}

// Hit returns the index of the control point strictly closer to pt than
// radius. Of overlapping points, the last one wins, as it is drawn on top.
func (s *Store) Hit(pt Point, radius float64) (int, bool) {
	r2 := radius * radius
	for i := len(s.points) - 1; i >= 0; i-- {
		if s.points[i].Pos.DistanceSquared(pt) < r2 {
			return i, true
		}
	}
	return -1, false
}
