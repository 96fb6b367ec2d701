package lanecurve

import "cogentcore.org/core/math32"

// PositionAt evaluates the curve at parameter t, displaced along the normal
// by the curve's offset.
func (c *Curve) PositionAt(t float32) math32.Vector3 {
	p := c.bez.Eval(t)
	if c.offset == 0 {
		return p
	}
	return p.Add(c.NormalAt(t).MulScalar(c.offset))
}

// TangentAt returns the derivative of the underlying Bézier at t. Offsets
// don't affect tangents.
func (c *Curve) TangentAt(t float32) math32.Vector3 {
	return c.bez.Tangent(t)
}

// NormalAt returns the unit normal of the curve at t in the horizontal plane,
// or the zero vector if the curve has no horizontal direction at t.
func (c *Curve) NormalAt(t float32) math32.Vector3 {
	return planarNormal(c.bez.Tangent(t))
}

// StartPos returns the position of the trimmed start.
func (c *Curve) StartPos() math32.Vector3 { return c.PositionAt(c.startT) }

// EndPos returns the position of the trimmed end.
func (c *Curve) EndPos() math32.Vector3 { return c.PositionAt(c.endT) }

// StartNormal returns the normal at the trimmed start.
func (c *Curve) StartNormal() math32.Vector3 { return c.NormalAt(c.startT) }

// EndNormal returns the normal at the trimmed end.
func (c *Curve) EndNormal() math32.Vector3 { return c.NormalAt(c.endT) }

// BoundingBox returns an axis-aligned box that encloses the usable part of the
// curve. Offsets widen the box horizontally by their magnitude, so the box
// may be larger than needed.
func (c *Curve) BoundingBox() math32.Box3 {
	bbox := c.bez.Subsegment(c.startT, c.endT).BoundingBox()
	if c.offset != 0 {
		o := math32.Abs(c.offset)
		bbox.ExpandByVector(math32.Vec3(o, 0, o))
	}
	return bbox
}
