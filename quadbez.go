package lanecurve

import "cogentcore.org/core/math32"

var _ ParametricCurve = QuadBez{}

// QuadBez is a quadratic Bézier segment. Lanes are described by the three
// control points of a quadratic Bézier, and the derivative of a [CubicBez] is
// a quadratic Bézier, too.
type QuadBez struct {
	P0 math32.Vector3
	P1 math32.Vector3
	P2 math32.Vector3
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Add(q.P1.Sub(q.P0).MulScalar(2.0 / 3.0)),
		q.P2.Add(q.P1.Sub(q.P2).MulScalar(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) Eval(t float32) math32.Vector3 {
	mt := 1.0 - t
	return q.P0.MulScalar(mt * mt).
		Add(q.P1.MulScalar(mt * 2.0).Add(q.P2.MulScalar(t)).MulScalar(t))
}

func (q QuadBez) Start() math32.Vector3 {
	return q.P0
}

func (q QuadBez) End() math32.Vector3 {
	return q.P2
}

func (q QuadBez) IsInf() bool {
	return vecIsInf(q.P0) || vecIsInf(q.P1) || vecIsInf(q.P2)
}

func (q QuadBez) IsNaN() bool {
	return vecIsNaN(q.P0) || vecIsNaN(q.P1) || vecIsNaN(q.P2)
}
