package lanecurve

import "cogentcore.org/core/math32"

// DefaultRayResolution is the number of coarse steps used by
// [Curve.NearestToRay] when the given resolution isn't positive.
const DefaultRayResolution = 10

const (
	// nearestEpsilon is both the sampling offset around each midpoint and the final bracket width of
	// the refinement in NearestToRay.
	nearestEpsilon = 0.001
	// maxNearestIterations bounds the refinement even when float32 can no
	// longer halve the bracket.
	maxNearestIterations = 64
)

// NearestToRay finds the point of the curve closest to the infinite line
// through ray. It returns the perpendicular distance between that point and
// the line, and the point's distance from the trimmed start of the curve.
// Offsets are taken into account.
//
// The curve is first sampled in resolution equal steps. The bracket of one
// step on either side of the closest sample is then narrowed by comparing the
// distance just before and just after its midpoint, until it is narrower than
// 0.001 length units.
//
// This assumes that the distance has a single local minimum in the
// neighborhood of each coarse step. For tightly winding curves that isn't the
// case and the result may be a local minimum; a higher resolution reduces
// that risk.
func (c *Curve) NearestToRay(ray math32.Ray, resolution int) (dist, at float32) {
	if resolution < 1 {
		resolution = DefaultRayResolution
	}
	length := c.Length()
	f := func(d float32) float32 {
		return distanceToLine(c.EvaluatePosition(d), ray)
	}

	step := length / float32(resolution)
	var best option[int]
	var bestDist float32
	for i := range resolution + 1 {
		if d := f(float32(i) * step); !best.isSet || d < bestDist {
			best.set(i)
			bestDist = d
		}
	}
	coarse := float32(best.unwrap()) * step

	lo := max(coarse-step, 0)
	hi := min(coarse+step, length)
	for i := 0; hi-lo >= nearestEpsilon && i < maxNearestIterations; i++ {
		mid := (lo + hi) * 0.5
		if f(mid-nearestEpsilon) < f(mid+nearestEpsilon) {
			hi = mid
		} else {
			lo = mid
		}
	}

	at = (lo + hi) * 0.5
	dist = f(at)
	if bestDist < dist {
		// The refinement wandered off a plateau; the coarse sample is better.
		return bestDist, coarse
	}
	return dist, at
}
