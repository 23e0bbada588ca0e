package nurbs

import (
	"iter"
	"math"
)

// Polyline is a sequence of points joined by straight lines, such as a
// sampled curve.
type Polyline []Point

// Segments returns an iterator over the lines joining consecutive points.
func (pl Polyline) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(pl); i++ {
			if !yield(Line{pl[i-1], pl[i]}) {
				return
			}
		}
	}
}

// Length returns the total length of the segments. For a sampled curve, this
// approximates the curve's arc length from below.
func (pl Polyline) Length() float64 {
	var sum float64
	for l := range pl.Segments() {
		sum += l.Length()
	}
	return sum
}

// BoundingBox returns the smallest rectangle enclosing all points. It returns
// false for an empty polyline.
func (pl Polyline) BoundingBox() (Rect, bool) {
	return boundingBox(pl)
}

// Nearest finds the point of the polyline closest to pt. It returns the
// squared distance, the index of the segment containing the closest point,
// and the parameter of that point on the segment.
//
// A polyline consisting of a single point reports segment 0 and t = 0. An
// empty polyline reports an infinite distance and segment -1.
func (pl Polyline) Nearest(pt Point) (distSq float64, seg int, t float64) {
	switch len(pl) {
	case 0:
		return math.Inf(1), -1, 0
	case 1:
		return pl[0].DistanceSquared(pt), 0, 0
	}

	distSq = math.Inf(1)
	i := 0
	for l := range pl.Segments() {
		if d, lt := l.Nearest(pt); d < distSq {
			distSq, seg, t = d, i, lt
		}
		i++
	}
	return distSq, seg, t
}
