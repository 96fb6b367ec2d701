package lanecurve

import (
	"iter"

	"cogentcore.org/core/math32"
)

// tAt maps a distance from the trimmed start to a parameter. Distances are
// clamped to the usable range of the curve.
func (c *Curve) tAt(d float32) float32 {
	if d <= 0 {
		return c.startT
	}
	if d >= c.Length() {
		return c.endT
	}
	return c.DistanceToT(c.startDistance + d)
}

// EvaluatePosition returns the offset position at distance d from the
// trimmed start of the curve.
func (c *Curve) EvaluatePosition(d float32) math32.Vector3 {
	return c.PositionAt(c.tAt(d))
}

// EvaluateTangent returns the derivative of the curve at distance d from the
// trimmed start.
func (c *Curve) EvaluateTangent(d float32) math32.Vector3 {
	return c.TangentAt(c.tAt(d))
}

// EvaluateNormal returns the horizontal unit normal at distance d from the
// trimmed start.
func (c *Curve) EvaluateNormal(d float32) math32.Vector3 {
	return c.NormalAt(c.tAt(d))
}

// MaxSamples bounds the number of positions [Curve.Samples] yields between
// the start and the end of a curve.
const MaxSamples = 100_000

// Samples returns an iterator over positions spaced step apart along the
// usable length of the curve, starting at the trimmed start. The trimmed end
// is always included, so the last two samples may be closer than step. Each
// position is yielded with its distance from the trimmed start.
//
// A non-positive step yields just the start and end. Steps shorter than the
// length divided by [MaxSamples] are widened to that.
func (c *Curve) Samples(step float32) iter.Seq2[float32, math32.Vector3] {
	return func(yield func(float32, math32.Vector3) bool) {
		length := c.Length()
		if !yield(0, c.StartPos()) || length == 0 {
			return
		}
		if step > 0 {
			step = max(step, length/MaxSamples)
			n := min(int(length/step), MaxSamples)
			for i := 1; i <= n; i++ {
				d := float32(i) * step
				if length-d < ArclenTolerance {
					break
				}
				if !yield(d, c.EvaluatePosition(d)) {
					return
				}
			}
		}
		yield(length, c.EndPos())
	}
}
