package lanecurve

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// trimSlack is the relative amount by which trims may overshoot the curve's
// range before it counts as a contract violation. It absorbs rounding errors
// of repeated trimming; values within the slack are snapped into range.
const trimSlack = 1e-4

// Curve is a lane segment: a cubic Bézier with its arc length table, trimmed
// by some distance at either end and offset sideways by some distance.
//
// The usable part of the curve runs from StartDistance to BezierLength −
// EndDistance along the Bézier. Trimming never changes the Bézier itself.
//
// The zero value is a curve of zero length at the origin. Use [New] or
// [NewFromCubic] to construct curves. A Curve must not be mutated
// concurrently; copying it with [Curve.Clone] produces an independent curve.
type Curve struct {
	bez CubicBez
	lut ArclenTable

	startDistance float32
	endDistance   float32
	offset        float32

	// parameters at startDistance and BezierLength - endDistance
	startT float32
	endT   float32
}

// New returns an untrimmed, unoffset curve through the three anchor points:
// start, via and end. See [CubicBezFromAnchors].
func New(start, via, end math32.Vector3) *Curve {
	return NewFromCubic(CubicBezFromAnchors(start, via, end))
}

// NewFromCubic returns an untrimmed, unoffset curve for a cubic Bézier.
func NewFromCubic(c CubicBez) *Curve {
	return &Curve{
		bez:  c,
		lut:  NewArclenTable(c),
		endT: 1,
	}
}

// Clone returns an independent copy of the curve.
func (c *Curve) Clone() *Curve {
	cc := *c
	return &cc
}

func (c *Curve) String() string {
	return fmt.Sprintf("Curve{%s, start: %g, end: %g, offset: %g}",
		c.bez, c.startDistance, c.endDistance, c.offset)
}

// Bezier returns the underlying, untrimmed Bézier.
func (c *Curve) Bezier() CubicBez { return c.bez }

// Table returns a copy of the curve's arc length table.
func (c *Curve) Table() ArclenTable { return c.lut }

// BezierLength returns the length of the untrimmed Bézier.
func (c *Curve) BezierLength() float32 { return c.lut.Length() }

// Length returns the usable length of the curve, that is the length of the
// Bézier minus both trims.
func (c *Curve) Length() float32 {
	return max(c.lut.Length()-c.startDistance-c.endDistance, 0)
}

func (c *Curve) StartDistance() float32 { return c.startDistance }
func (c *Curve) EndDistance() float32   { return c.endDistance }

// StartT returns the parameter of the trimmed start.
func (c *Curve) StartT() float32 { return c.startT }

// EndT returns the parameter of the trimmed end.
func (c *Curve) EndT() float32 { return c.endT }

// Offset returns the lateral offset along the curve's normal.
func (c *Curve) Offset() float32 { return c.offset }

// SetOffset sets the lateral offset along the curve's normal. Positive offsets
// move points towards the normal returned by [Curve.NormalAt].
func (c *Curve) SetOffset(d float32) *Curve {
	c.offset = d
	return c
}

// DistanceToT maps an arc length, measured from the start of the untrimmed
// Bézier, to a parameter.
func (c *Curve) DistanceToT(d float32) float32 {
	return c.lut.SolveForArclen(c.bez, d)
}

// TToDistance maps a parameter to the arc length from the start of the
// untrimmed Bézier.
func (c *Curve) TToDistance(t float32) float32 {
	return c.lut.ArclenAt(c.bez, t)
}

// AddStartDistance trims d more from the start of the curve. Negative values
// restore previously trimmed length.
//
// It panics if the resulting trim is negative or overlaps the end trim.
func (c *Curve) AddStartDistance(d float32) *Curve {
	c.startDistance = c.checkTrim("start", c.startDistance+d, c.endDistance)
	c.startT = c.DistanceToT(c.startDistance)
	return c
}

// AddEndDistance trims d more from the end of the curve. Negative values
// restore previously trimmed length.
//
// It panics if the resulting trim is negative or overlaps the start trim.
func (c *Curve) AddEndDistance(d float32) *Curve {
	c.endDistance = c.checkTrim("end", c.endDistance+d, c.startDistance)
	c.endT = c.DistanceToT(c.lut.Length() - c.endDistance)
	return c
}

// checkTrim validates a new trim v for one end, given the trim of the other
// end, and returns it snapped into range.
func (c *Curve) checkTrim(which string, v, other float32) float32 {
	length := c.lut.Length()
	slack := trimSlack * max(length, 1)
	if v < -slack || v+other > length+slack {
		panic(fmt.Sprintf("%s distance %g out of range: other trim is %g, curve length is %g",
			which, v, other, length))
	}
	return math32.Clamp(v, 0, max(length-other, 0))
}

// Add hands the usable range of c over to other. Both curves must be views of
// the same Bézier, with c covering the range that immediately precedes
// other's.
//
// The boundary between the two views moves by the usable length u of c: the
// end trim of c grows by u, leaving c empty, and the start trim of other
// shrinks by u. The combined usable length of both curves is unchanged.
//
// It panics if c and other are the same curve, if the curves have different
// control points, or if the moved boundary leaves either curve's range.
func (c *Curve) Add(other *Curve) {
	if c == other {
		panic("curve added to itself")
	}
	if c.bez != other.bez {
		panic(fmt.Sprintf("given curves have different control points: %s and %s", c.bez, other.bez))
	}
	u := c.Length()
	c.AddEndDistance(u)
	other.AddStartDistance(-u)
}

// Reverse reverses the direction of the curve in place. The control points
// are swapped and the table rebuilt, the start and end trims trade places,
// and the offset is negated so that offset points stay on the same side of the
// lane. Afterwards, StartPos equals the previous EndPos.
func (c *Curve) Reverse() *Curve {
	c.bez = c.bez.Reverse()
	c.lut = NewArclenTable(c.bez)
	c.startDistance, c.endDistance = c.endDistance, c.startDistance
	c.offset = -c.offset

	// The rebuilt table can differ from the old one by rounding.
	length := c.lut.Length()
	c.startDistance = min(c.startDistance, length)
	c.endDistance = min(c.endDistance, length-c.startDistance)

	c.startT = c.DistanceToT(c.startDistance)
	c.endT = c.DistanceToT(length - c.endDistance)
	return c
}
