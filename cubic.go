package lanecurve

import (
	"fmt"
	"slices"

	"cogentcore.org/core/math32"
)

// maxArclenDepth bounds the recursion of [CubicBez.Arclen].
const maxArclenDepth = 16

var _ ParametricCurve = CubicBez{}

// CubicBez is a cubic Bézier segment in three dimensions.
type CubicBez struct {
	P0 math32.Vector3
	P1 math32.Vector3
	P2 math32.Vector3
	P3 math32.Vector3
}

// CubicBezFromAnchors returns the cubic Bézier equivalent to the quadratic
// Bézier that starts at a0, is pulled towards the via point a1, and ends at
// a2. Any three points are accepted; coincident or collinear anchors produce
// straight or zero length curves.
func CubicBezFromAnchors(a0, a1, a2 math32.Vector3) CubicBez {
	return QuadBez{a0, a1, a2}.Raise()
}

func (c CubicBez) String() string {
	return fmt.Sprintf("CubicBez{%s, %s, %s, %s}",
		formatVec(c.P0), formatVec(c.P1), formatVec(c.P2), formatVec(c.P3))
}

func (c CubicBez) IsInf() bool {
	return vecIsInf(c.P0) || vecIsInf(c.P1) || vecIsInf(c.P2) || vecIsInf(c.P3)
}

func (c CubicBez) IsNaN() bool {
	return vecIsNaN(c.P0) || vecIsNaN(c.P1) || vecIsNaN(c.P2) || vecIsNaN(c.P3)
}

// Eval evaluates the Bernstein blend of the control points at t.
func (c CubicBez) Eval(t float32) math32.Vector3 {
	mt := 1.0 - t
	a := c.P0.MulScalar(mt * mt * mt)
	b := c.P1.MulScalar(mt * mt * 3.0)
	cc := c.P2.MulScalar(mt * 3.0)
	d := c.P3
	return a.Add(b.Add(cc.Add(d.MulScalar(t)).MulScalar(t)).MulScalar(t))
}

func (c CubicBez) Start() math32.Vector3 {
	return c.P0
}

func (c CubicBez) End() math32.Vector3 {
	return c.P3
}

// Differentiate returns the derivative of the curve, which is a quadratic
// Bézier.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		c.P1.Sub(c.P0).MulScalar(3),
		c.P2.Sub(c.P1).MulScalar(3),
		c.P3.Sub(c.P2).MulScalar(3),
	}
}

// Tangent returns the derivative of the curve at t. The result is not
// normalized and is the zero vector where the curve is stationary.
func (c CubicBez) Tangent(t float32) math32.Vector3 {
	return c.Differentiate().Eval(t)
}

// Reverse returns the same curve traversed in the opposite direction.
func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Add(c.P1).MulScalar(0.5),
			c.P0.Add(c.P1.MulScalar(2.0)).Add(c.P2).MulScalar(0.25),
			pm,
		},
		CubicBez{
			pm,
			c.P1.Add(c.P2.MulScalar(2.0)).Add(c.P3).MulScalar(0.25),
			c.P2.Add(c.P3).MulScalar(0.5),
			c.P3,
		}
}

// Subsegment returns the part of the curve between t0 and t1.
func (c CubicBez) Subsegment(t0, t1 float32) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Add(d.Eval(t0).MulScalar(scale))
	p2 := p3.Sub(d.Eval(t1).MulScalar(scale))
	return CubicBez{p0, p1, p2, p3}
}

// Arclen returns the arc length of the curve.
//
// It subdivides the curve until the length of the control polygon and the
// length of the chord of each piece differ by less than accuracy, and then
// uses Gravesen's estimate for each piece. This is considerably more expensive
// than an [ArclenTable] and is meant as a reference value.
func (c CubicBez) Arclen(accuracy float32) float32 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float32, depth int) float32 {
	chord := c.P3.Sub(c.P0).Length()
	poly := c.P1.Sub(c.P0).Length() + c.P2.Sub(c.P1).Length() + c.P3.Sub(c.P2).Length()
	if poly-chord <= accuracy || depth >= maxArclenDepth {
		return (chord + poly) * 0.5
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

// Extrema returns the parameters in (0, 1) at which the curve has an extremum
// along one of the axes, in increasing order.
func (c CubicBez) Extrema() ([MaxExtrema]float32, int) {
	var out [MaxExtrema]float32
	var outN int
	oneCoord := func(d0, d1, d2 float32) {
		roots, n := axisRoots(d0, d1, d2)
		outN += copy(out[outN:], roots[:n])
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	oneCoord(d0.Z, d1.Z, d2.Z)
	slices.Sort(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest axis-aligned box that encloses the curve.
func (c CubicBez) BoundingBox() math32.Box3 {
	pts := make([]math32.Vector3, 0, MaxExtrema+2)
	pts = append(pts, c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		pts = append(pts, c.Eval(t))
	}
	var bbox math32.Box3
	bbox.SetFromPoints(pts)
	return bbox
}
