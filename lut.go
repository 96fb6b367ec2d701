package lanecurve

import "fmt"

// LUTSize is the number of samples in an [ArclenTable].
const LUTSize = 16

// ArclenSample relates a curve parameter to the arc length from the start of
// the curve to that parameter.
type ArclenSample struct {
	T        float32
	Distance float32
}

// ArclenTable approximates the arc length function of a [CubicBez] with
// [LUTSize] samples at t = 0, 1/15, 2/15, …, 1. Distances are cumulative
// chord lengths between consecutive samples, so they never decrease. The
// first sample is always (0, 0) and the last sample's distance is the length
// of the curve.
type ArclenTable [LUTSize]ArclenSample

// NewArclenTable samples c and returns its arc length table.
func NewArclenTable(c CubicBez) ArclenTable {
	var tab ArclenTable
	prev := c.P0
	var dist float32
	for i := 1; i < LUTSize; i++ {
		t := float32(i) / (LUTSize - 1)
		pos := c.Eval(t)
		dist += pos.Sub(prev).Length()
		tab[i] = ArclenSample{T: t, Distance: dist}
		prev = pos
	}
	return tab
}

// Length returns the length of the curve the table was built for.
func (tab *ArclenTable) Length() float32 {
	return tab[LUTSize-1].Distance
}

// bracket returns the pair of consecutive samples whose distances enclose
// arclen. Distances beyond the last sample map to the last pair.
func (tab *ArclenTable) bracket(arclen float32) (lo, hi ArclenSample) {
	lo, hi = tab[0], tab[1]
	for i := 2; arclen > hi.Distance && i < LUTSize; i++ {
		lo, hi = tab[i-1], tab[i]
	}
	return lo, hi
}

// bracketT returns the sample at or immediately before t.
func (tab *ArclenTable) bracketT(t float32) ArclenSample {
	i := int(t * (LUTSize - 1))
	return tab[min(max(i, 0), LUTSize-2)]
}

func (tab *ArclenTable) String() string {
	return fmt.Sprintf("ArclenTable{length: %g}", tab.Length())
}
