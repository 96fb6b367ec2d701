// Package lanecurve provides cubic Bézier curves for modelling path segments
// such as road lanes. A lane is built from three anchor points and can then be
// trimmed at either end, reversed, offset sideways, evaluated at arc-length
// distances, and queried for the point closest to a ray.
//
// # Curves and lanes
//
// The package has two layers.
//
// [CubicBez] and [QuadBez] are immutable geometric primitives in three
// dimensions. They are evaluated at a parameter t ∈ [0, 1] and know nothing
// about arc length beyond [CubicBez.Arclen].
//
// [Curve] wraps a single cubic Bézier together with an [ArclenTable], a fixed
// size table of 16 samples relating t to the cumulative arc length. The table
// is built once per geometry and consulted by every distance based operation.
// On top of the geometry, a Curve carries mutable state: how much has been
// trimmed from its start and end, and the lateral offset applied when
// evaluating positions.
//
// # Distances and parameters
//
// Arc length has no closed form inverse for cubic Béziers. [ArclenTable.SolveForArclen]
// therefore uses the table to find a bracketing pair of samples, linearly
// interpolates a first estimate, and refines it by bisection against the true
// curve until the estimate is within [ArclenTolerance], or [MaxArclenIterations]
// have been spent. [ArclenTable.ArclenAt] goes the other way.
//
// Distances given to [Curve.EvaluatePosition] and related methods are measured
// from the trimmed start of the curve, so that 0 always corresponds to
// [Curve.StartPos] and [Curve.Length] to [Curve.EndPos]. Distances given to
// [Curve.DistanceToT] are measured along the whole, untrimmed Bézier.
//
// # Offsets
//
// Offsets displace points along the curve's normal in the horizontal plane,
// which is the plane spanned by the x and z axes. The y axis points up. The
// normal of a tangent (x, y, z) is the normalized vector (-z, 0, x).
//
// # Concurrency
//
// Curves do no internal locking. Queries only read a curve; mutations such as
// [Curve.AddStartDistance] and [Curve.Reverse] modify it in place. Distinct
// curves can be used from different goroutines freely.
//
// # Contract violations
//
// Trimming a curve past its own length, or calling [Curve.Add] with a curve of
// different geometry, are programming errors and cause a panic. Numerical
// degeneracies, such as zero length curves or vanishing tangents, never panic;
// they produce zero vectors and clamped parameters instead.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Adaptive subdivision and the length and energy of Bézier curves] by Jens Gravesen
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Adaptive subdivision and the length and energy of Bézier curves]: https://doi.org/10.1016/0925-7721(95)00054-2
package lanecurve
