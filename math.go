package lanecurve

import "cogentcore.org/core/math32"

// MaxExtrema is the maximum number of extrema that can be reported by
// [CubicBez.Extrema]: up to two per axis.
const MaxExtrema = 6

// ParametricCurve describes a curve parametrized by a scalar.
//
// If the result is interpreted as a point, this represents a curve. But the
// result can be interpreted as a vector as well, which is how the derivative
// of a [CubicBez] is represented.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float32) math32.Vector3
	Start() math32.Vector3
	End() math32.Vector3
}

// axisRoots returns the parameters in (0, 1), in increasing order, at which
// the quadratic Bézier with the scalar coefficients d0, d1, d2 is zero. The
// derivative of a [CubicBez] along one axis is such a quadratic, scaled by 3.
func axisRoots(d0, d1, d2 float32) ([2]float32, int) {
	a := d0 - 2*d1 + d2
	b := 2 * (d1 - d0)
	c := d0

	var cand [2]float32
	var n int
	if a == 0 {
		if b != 0 {
			cand[0], n = -c/b, 1
		}
	} else if disc := b*b - 4*a*c; disc >= 0 {
		// q has the sign of b, avoiding cancellation in -b ± √disc.
		q := -0.5 * (b + math32.Copysign(math32.Sqrt(disc), b))
		cand[0], n = q/a, 1
		if q != 0 {
			cand[1], n = c/q, 2
		}
	}

	var roots [2]float32
	var m int
	for _, t := range cand[:n] {
		if t > 0 && t < 1 {
			roots[m] = t
			m++
		}
	}
	if m == 2 && roots[1] < roots[0] {
		roots[0], roots[1] = roots[1], roots[0]
	}
	return roots, m
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}
