package lanecurve

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const stride = 6

func TestSolveForArclenEvenSpacing(t *testing.T) {
	s := math32.Vec3(stride, 0, 0)
	c := New(math32.Vector3{}, s, s.MulScalar(2))
	ts := c.DistanceToT(s.Length())
	diff(t, float32(0.5), ts, cmpopts.EquateApprox(0, 1e-3))
}

func TestSolveForArclenStable(t *testing.T) {
	s := math32.Vec3(stride, 0, 0)
	c := New(math32.Vector3{}, s, s.MulScalar(3))
	if c.BezierLength() <= 0 {
		t.Fatalf("got length %g, want a positive length", c.BezierLength())
	}
	want := c.DistanceToT(c.BezierLength() / 2)
	for range 10 {
		if got := c.DistanceToT(c.BezierLength() / 2); got != want {
			t.Fatalf("got %g, previously got %g", got, want)
		}
	}
}

func TestSolveForArclenStraight(t *testing.T) {
	// The curve is straight, so the distance from the start is the x coordinate.
	s := math32.Vec3(stride, 0, 0)
	c := New(math32.Vector3{}, s, s.MulScalar(3))
	bez := c.Bezier()
	length := c.BezierLength()
	for i := range 101 {
		d := length * float32(i) / 100
		p := bez.Eval(c.DistanceToT(d))
		diff(t, d, p.X, cmpopts.EquateApprox(0, ArclenTolerance+1e-4))
	}
}

func TestSolveForArclenMonotonic(t *testing.T) {
	curves := []*Curve{
		New(math32.Vec3(0, 0, 0), math32.Vec3(20, 0, 20), math32.Vec3(40, 0, 0)),
		New(math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 50), math32.Vec3(50, 0, 50)),
		New(math32.Vec3(0, 0, 0), math32.Vec3(10, 5, 30), math32.Vec3(40, 0, 40)),
	}
	for _, c := range curves {
		length := c.BezierLength()
		prev := float32(0)
		for i := range 101 {
			d := length * float32(i) / 100
			ts := c.DistanceToT(d)
			if ts < prev {
				t.Errorf("%s: t(%g) = %g is less than the previous %g", c, d, ts, prev)
			}
			if ts < 0 || ts > 1 {
				t.Errorf("%s: t(%g) = %g is out of range", c, d, ts)
			}
			prev = ts
		}
	}
}

func TestSolveForArclenMonotonicDense(t *testing.T) {
	// Neighboring lengths that end the search in different ways must still
	// map to ordered parameters.
	curves := []*Curve{
		New(math32.Vec3(0, 0, 0), math32.Vec3(20, 0, 20), math32.Vec3(40, 0, 0)),
		New(math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 50), math32.Vec3(50, 0, 50)),
		New(math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 500), math32.Vec3(500, 0, 500)),
		New(math32.Vec3(0, 0, 0), math32.Vec3(1000, 0, 1000), math32.Vec3(2000, 0, 0)),
	}
	const n = 100_000
	for _, c := range curves {
		length := c.BezierLength()
		var prev, prevD float32
		for i := range n + 1 {
			d := length * (float32(i) / n)
			ts := c.DistanceToT(d)
			if ts < prev {
				t.Fatalf("%s: t(%g) = %g is less than t(%g) = %g", c, d, ts, prevD, prev)
			}
			prev, prevD = ts, d
		}
		diff(t, float32(1), prev)
	}
}

func TestSolveForArclenRoundTrip(t *testing.T) {
	c := New(math32.Vec3(0, 0, 0), math32.Vec3(20, 0, 20), math32.Vec3(40, 0, 0))
	length := c.BezierLength()
	for i := range 51 {
		d := length * float32(i) / 50
		got := c.TToDistance(c.DistanceToT(d))
		diff(t, d, got, cmpopts.EquateApprox(0, ArclenTolerance+1e-4))
	}

	// Against a much finer measurement of the arc length.
	bez := c.Bezier()
	for _, d := range []float32{5, 12.5, 20, 31} {
		ts := c.DistanceToT(d)
		diff(t, d, bez.Subsegment(0, ts).Arclen(1e-4), cmpopts.EquateApprox(0, 0.06))
	}
}

func TestSolveForArclenBounds(t *testing.T) {
	c := New(math32.Vec3(0, 0, 0), math32.Vec3(20, 0, 20), math32.Vec3(40, 0, 0))
	length := c.BezierLength()
	diff(t, float32(0), c.DistanceToT(0))
	diff(t, float32(0), c.DistanceToT(-3))
	diff(t, float32(1), c.DistanceToT(length))
	diff(t, float32(1), c.DistanceToT(length+5))

	diff(t, float32(0), c.TToDistance(0))
	diff(t, float32(0), c.TToDistance(-1))
	diff(t, length, c.TToDistance(1))
	diff(t, length, c.TToDistance(2))
}

func BenchmarkSolveForArclen(b *testing.B) {
	c := New(math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 500), math32.Vec3(500, 0, 500))
	length := c.BezierLength()
	for i := range b.N {
		c.DistanceToT(length * float32(i%100) / 100)
	}
}
