package lanecurve

import "cogentcore.org/core/math32"

const (
	// ArclenTolerance is the largest difference, in length units, between a
	// requested arc length and the arc length at the parameter that
	// [ArclenTable.SolveForArclen] returns for it, unless the iteration limit
	// is reached first.
	ArclenTolerance = 0.01

	// MaxArclenIterations limits the bisection steps of
	// [ArclenTable.SolveForArclen].
	MaxArclenIterations = 10
)

// SolveForArclen returns the parameter t at which the arc length of c,
// measured from its start, equals arclen. The table must have been built for
// c.
//
// The table brackets arclen between two samples. The bracket is then narrowed
// by bisection, measuring the true distance between the lower sample and the
// curve at each midpoint, so that the precision isn't limited by the
// resolution of the table. Once the bracket spans no more than
// [ArclenTolerance], or after [MaxArclenIterations] steps, t is linearly
// interpolated within it.
//
// Narrowing depends only on the bracket and on which side of each midpoint
// arclen falls, never on how close an earlier candidate came. As a result,
// larger lengths never map to smaller parameters.
//
// Non-positive lengths map to 0 and lengths at or beyond the end of the curve
// map to 1.
func (tab *ArclenTable) SolveForArclen(c CubicBez, arclen float32) float32 {
	if arclen <= 0 {
		return 0
	}
	if arclen >= tab.Length() {
		return 1
	}
	lo, hi := tab.bracket(arclen)
	if hi.Distance-lo.Distance <= 0 {
		return lo.T
	}

	origin := c.Eval(lo.T)
	dist := func(t float32) float32 {
		return lo.Distance + c.Eval(t).Sub(origin).Length()
	}
	t0, t1 := lo.T, hi.T
	d0, d1 := lo.Distance, dist(hi.T)
	for i := 0; d1-d0 > ArclenTolerance && i < MaxArclenIterations; i++ {
		mid := (t0 + t1) * 0.5
		if d := dist(mid); d < arclen {
			t0, d0 = mid, d
		} else {
			t1, d1 = mid, d
		}
	}
	if d1-d0 <= 0 {
		return t0
	}
	f := math32.Clamp((arclen-d0)/(d1-d0), 0, 1)
	// Written out rather than math32.Lerp so that rounding stays monotonic in f.
	return min(t0+f*(t1-t0), t1)
}

// ArclenAt returns the arc length of c from its start to t. It is the inverse
// of [ArclenTable.SolveForArclen] and measures distances the same way: the
// table's distance at the sample preceding t plus the true distance from that
// sample to the curve at t.
func (tab *ArclenTable) ArclenAt(c CubicBez, t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return tab.Length()
	}
	lo := tab.bracketT(t)
	d := lo.Distance + c.Eval(t).Sub(c.Eval(lo.T)).Length()
	return min(d, tab.Length())
}
