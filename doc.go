// Package nurbs evaluates planar rational B-spline (NURBS) curves. It is the
// computational core of an interactive curve editor: the editor owns a
// degree, a knot vector and a list of weighted control points, and asks this
// package for points on the curve.
//
// # Curves
//
// A [Curve] of degree d with n control points needs a [KnotVector] of
// exactly d+n+1 non-decreasing values. Its domain is the parameter range
// [knots[d], knots[n]]. The point at parameter t is
//
//	C(t) = Σ N(i, d, t)·wᵢ·Pᵢ / Σ N(i, d, t)·wᵢ
//
// where Pᵢ and wᵢ are the control points and their weights and N are the
// B-spline basis functions. With all weights equal to one, C is an ordinary
// B-spline. Raising a weight pulls the curve towards that control point.
//
// # Basis functions
//
// [Basis] implements the Cox–de Boor recursion literally and is meant for
// single queries and as a reference. [BasisFuncs] computes the same values
// for all control points at once, bottom-up, in a single reusable row; it
// is what [Curve.Eval] and [Curve.Sample] use.
//
// The degree 0 basis functions are indicators of half-open knot spans. For
// clamped knot vectors, whose last d+1 knots coincide, all basis functions
// therefore vanish at the upper end of the domain, and evaluating there
// fails with [ErrDomain]. [Curve.Sample] never reaches the upper end of the
// domain for this reason.
//
// # Knot vectors
//
// Knot vectors usually come from user input. [ValidateKnotVector] parses and
// checks them, and [KnotsOrDefault] falls back to [DefaultKnotVector], the
// uniform vector 0, 1, …, d+n, when they are unusable.
//
// # Editing
//
// [Store] holds the control points. [Scene] bundles a store with a degree
// and knot vector and offers the text-based operations of an editor:
// starting a new curve, entering knots, and entering control point data.
// Scenes sample through a [SampleCache], so redrawing an unchanged curve
// does not evaluate it again.
//
// # Errors
//
// Operations fail with errors wrapping [ErrParse], [ErrLengthMismatch],
// [ErrIndex] or [ErrDomain]. Test for them with [errors.Is].
//
// # Literature
//
//   - [The NURBS Book] by Les Piegl and Wayne Tiller
//   - [Non-uniform rational B-spline]
//
// [The NURBS Book]: https://doi.org/10.1007/978-3-642-59223-2
// [Non-uniform rational B-spline]: https://en.wikipedia.org/wiki/Non-uniform_rational_B-spline
package nurbs
