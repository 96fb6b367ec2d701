package lanecurve

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// degenerateLength2 is the squared magnitude below which a vector is treated
// as having no direction.
const degenerateLength2 = 1e-12

// normalize returns a vector of magnitude 1 with the same direction as v.
// Unlike [math32.Vector3.Normal], this returns the zero vector if v has no
// direction, instead of a NaN vector.
func normalize(v math32.Vector3) math32.Vector3 {
	l2 := v.LengthSquared()
	if l2 < degenerateLength2 {
		return math32.Vector3{}
	}
	return v.MulScalar(1 / math32.Sqrt(l2))
}

// planarNormal returns the unit normal of a tangent in the horizontal plane.
func planarNormal(tangent math32.Vector3) math32.Vector3 {
	return normalize(math32.Vec3(-tangent.Z, 0, tangent.X))
}

// distanceToLine returns the perpendicular distance between p and the
// infinite line through the ray. The ray's direction need not be normalized.
// A ray without direction degenerates to its origin.
func distanceToLine(p math32.Vector3, ray math32.Ray) float32 {
	v := p.Sub(ray.Origin)
	l2 := ray.Dir.LengthSquared()
	if l2 < degenerateLength2 {
		return v.Length()
	}
	return ray.Dir.Cross(v).Length() / math32.Sqrt(l2)
}

func vecIsNaN(v math32.Vector3) bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z)
}

func vecIsInf(v math32.Vector3) bool {
	return math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0) || math32.IsInf(v.Z, 0)
}

func formatVec(v math32.Vector3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
