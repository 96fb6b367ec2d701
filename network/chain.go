package network

import (
	"cogentcore.org/core/math32"
	"honnef.co/go/lanecurve"
)

// Chain is a sequence of lanes traversed one after another. Distances along a
// chain start at the trimmed start of its first lane and add up the usable
// lengths of all lanes.
//
// A chain refers to its curves; trimming or reversing one of them changes the
// chain, too.
type Chain struct {
	curves []*lanecurve.Curve
}

// NewChain returns a chain of the curves, in order. It panics if no curves
// are given.
func NewChain(curves ...*lanecurve.Curve) *Chain {
	if len(curves) == 0 {
		panic("chain needs at least one curve")
	}
	return &Chain{curves: curves}
}

// Curves returns the curves of the chain.
func (ch *Chain) Curves() []*lanecurve.Curve { return ch.curves }

// Length returns the sum of the usable lengths of all lanes.
func (ch *Chain) Length() float32 {
	var l float32
	for _, c := range ch.curves {
		l += c.Length()
	}
	return l
}

// Locate finds the lane that contains distance d along the chain, and the
// distance from that lane's trimmed start. Distances outside the chain are
// clamped to its first or last point. A distance that falls exactly on the
// boundary of two lanes belongs to the earlier lane.
func (ch *Chain) Locate(d float32) (index int, local float32) {
	if d <= 0 {
		return 0, 0
	}
	last := len(ch.curves) - 1
	for i, c := range ch.curves {
		l := c.Length()
		if d <= l || i == last {
			return i, min(d, l)
		}
		d -= l
	}
	panic("unreachable")
}

// EvaluatePosition returns the position at distance d along the chain.
func (ch *Chain) EvaluatePosition(d float32) math32.Vector3 {
	i, local := ch.Locate(d)
	return ch.curves[i].EvaluatePosition(local)
}

// NearestToRay finds the point of the chain closest to the line through ray,
// searching every lane with [lanecurve.Curve.NearestToRay]. It returns the
// distance to the line, the point's distance along the chain, and the index
// of the lane that contains it. Ties go to the earlier lane.
func (ch *Chain) NearestToRay(ray math32.Ray, resolution int) (dist, at float32, index int) {
	dist = math32.Inf(1)
	var base float32
	for i, c := range ch.curves {
		if d, local := c.NearestToRay(ray, resolution); d < dist {
			dist, at, index = d, base+local, i
		}
		base += c.Length()
	}
	return dist, at, index
}
