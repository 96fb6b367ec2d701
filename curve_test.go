package lanecurve

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func straight() *Curve {
	return New(math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 50), math32.Vec3(0, 0, 100))
}

func bent() *Curve {
	return New(math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 50), math32.Vec3(50, 0, 50))
}

func TestCurveAttributes(t *testing.T) {
	c := straight()
	approx := cmpopts.EquateApprox(0, 1e-3)
	diff(t, float32(100), c.BezierLength(), approx)
	diff(t, c.BezierLength(), c.Length())
	diff(t, float32(0), c.StartDistance())
	diff(t, float32(0), c.EndDistance())
	diff(t, float32(0), c.StartT())
	diff(t, float32(1), c.EndT())
	diff(t, float32(0), c.Offset())
	diff(t, float32(1.5), c.SetOffset(1.5).Offset())
	near(t, math32.Vec3(-1.5, 0, 50), c.PositionAt(0.5), 1e-4)
}

func TestCurveMultipleAddDistance(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-3)
	c := straight()
	c.AddStartDistance(10)
	c.AddStartDistance(10)
	diff(t, float32(20), c.StartDistance(), approx)
	diff(t, float32(80), c.Length(), approx)

	c.AddEndDistance(30)
	diff(t, float32(30), c.EndDistance(), approx)
	diff(t, float32(50), c.Length(), approx)

	c.AddStartDistance(-5)
	diff(t, float32(15), c.StartDistance(), approx)
	diff(t, float32(55), c.Length(), approx)

	near(t, math32.Vec3(0, 0, 15), c.StartPos(), 0.02)
	near(t, math32.Vec3(0, 0, 70), c.EndPos(), 0.02)
}

func TestCurveTrimInverse(t *testing.T) {
	c := bent()
	c.AddStartDistance(12).AddEndDistance(7)
	c.AddStartDistance(-12).AddEndDistance(-7)
	diff(t, float32(0), c.StartDistance())
	diff(t, float32(0), c.EndDistance())
	diff(t, float32(0), c.StartT())
	diff(t, float32(1), c.EndT())
	diff(t, c.BezierLength(), c.Length())
}

func TestCurveTrimContract(t *testing.T) {
	mustPanic(t, func() { straight().AddStartDistance(-1) })
	mustPanic(t, func() { straight().AddEndDistance(-1) })
	mustPanic(t, func() { straight().AddStartDistance(101) })
	mustPanic(t, func() { straight().AddStartDistance(60).AddEndDistance(50) })
	mustPanic(t, func() { straight().AddEndDistance(60).AddStartDistance(50) })

	// Trimming the whole curve is allowed, and small rounding errors are
	// absorbed.
	c := straight()
	c.AddStartDistance(c.BezierLength() + 1e-4)
	diff(t, float32(0), c.Length())
	diff(t, c.BezierLength(), c.StartDistance())
	diff(t, float32(1), c.StartT())
	c.AddStartDistance(-c.BezierLength() - 1e-4)
	diff(t, float32(0), c.StartDistance())
}

func TestCurveReverse(t *testing.T) {
	c := bent()
	c.SetOffset(2).AddStartDistance(5).AddEndDistance(10)
	start, end := c.StartPos(), c.EndPos()
	length := c.Length()

	c.Reverse()
	near(t, end, c.StartPos(), 0.05)
	near(t, start, c.EndPos(), 0.05)
	diff(t, float32(-2), c.Offset())
	diff(t, float32(10), c.StartDistance(), cmpopts.EquateApprox(0, 1e-3))
	diff(t, float32(5), c.EndDistance(), cmpopts.EquateApprox(0, 1e-3))
	diff(t, length, c.Length(), cmpopts.EquateApprox(0, 1e-2))
	near(t, math32.Vec3(50, 0, 50), c.Bezier().P0, 0)
}

func TestCurveReverseInvolution(t *testing.T) {
	orig := bent()
	orig.SetOffset(-1.25).AddStartDistance(3).AddEndDistance(8)
	c := orig.Clone().Reverse().Reverse()
	diff(t, orig.Bezier(), c.Bezier())
	diff(t, orig.Offset(), c.Offset())
	approx := cmpopts.EquateApprox(0, 1e-3)
	diff(t, orig.StartDistance(), c.StartDistance(), approx)
	diff(t, orig.EndDistance(), c.EndDistance(), approx)
	diff(t, orig.StartT(), c.StartT(), approx)
	diff(t, orig.EndT(), c.EndT(), approx)
	near(t, orig.StartPos(), c.StartPos(), 1e-3)
	near(t, orig.EndPos(), c.EndPos(), 1e-3)
}

func TestCurveAdd(t *testing.T) {
	a := straight()
	b := a.Clone()
	a.AddEndDistance(60)
	b.AddStartDistance(40)
	total := a.Length() + b.Length()

	a.Add(b)
	approx := cmpopts.EquateApprox(0, 1e-3)
	diff(t, float32(0), a.Length(), approx)
	diff(t, total, a.Length()+b.Length(), approx)
	diff(t, float32(0), b.StartDistance(), approx)
	diff(t, float32(100), b.Length(), approx)
	near(t, math32.Vec3(0, 0, 0), b.StartPos(), 1e-3)

	mustPanic(t, func() { straight().Add(bent()) })
	mustPanic(t, func() {
		c := straight()
		c.Add(c)
	})
}

func TestCurveClone(t *testing.T) {
	c := bent()
	cc := c.Clone()
	cc.AddStartDistance(10).SetOffset(3)
	diff(t, float32(0), c.StartDistance())
	diff(t, float32(0), c.Offset())
	diff(t, c.BezierLength(), c.Length())

	c.Reverse()
	near(t, math32.Vec3(0, 0, 0), cc.Bezier().P0, 0)
}

func TestCurveDegenerate(t *testing.T) {
	p := math32.Vec3(3, 4, 5)
	c := New(p, p, p)
	diff(t, float32(0), c.Length())
	diff(t, p, c.EvaluatePosition(5))
	diff(t, p, c.StartPos())
	diff(t, p, c.EndPos())
	diff(t, math32.Vector3{}, c.StartNormal())
	diff(t, p, c.SetOffset(2).EvaluatePosition(0))

	var n int
	for range c.Samples(1) {
		n++
	}
	diff(t, 1, n)

	dist, at := c.NearestToRay(math32.Ray{Origin: math32.Vec3(3, 10, 7), Dir: math32.Vec3(0, -1, 0)}, 0)
	diff(t, float32(2), dist, cmpopts.EquateApprox(0, 1e-5))
	diff(t, float32(0), at)
}
