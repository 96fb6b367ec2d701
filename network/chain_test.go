package network

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func assertNear(t *testing.T, want, got math32.Vector3, delta float32) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, float64(delta), "x")
	assert.InDelta(t, want.Y, got.Y, float64(delta), "y")
	assert.InDelta(t, want.Z, got.Z, float64(delta), "z")
}

func testChain() *Chain {
	return NewChain(line(0, 10), line(10, 30), line(30, 35))
}

func TestChainLocate(t *testing.T) {
	ch := testChain()
	tests := []struct {
		d     float32
		index int
		local float32
	}{
		{-5, 0, 0},
		{0, 0, 0},
		{4, 0, 4},
		{9.5, 0, 9.5},
		{12, 1, 2},
		{29.5, 1, 19.5},
		{31, 2, 1},
		{35, 2, 5},
		{50, 2, 5},
	}
	for _, tt := range tests {
		i, local := ch.Locate(tt.d)
		assert.Equal(t, tt.index, i, "index of %g", tt.d)
		assert.InDelta(t, tt.local, local, 1e-3, "local distance of %g", tt.d)
	}
}

func TestChainEvaluatePosition(t *testing.T) {
	ch := testChain()
	for _, d := range []float32{0, 5, 10, 17.5, 30, 33, 35} {
		assertNear(t, math32.Vec3(d, 0, 0), ch.EvaluatePosition(d), 0.02)
	}
	assertNear(t, math32.Vec3(35, 0, 0), ch.EvaluatePosition(100), 1e-3)
}

func TestChainTrimmed(t *testing.T) {
	a := line(0, 10).AddEndDistance(2)
	b := line(8, 30)
	ch := NewChain(a, b)
	assert.InDelta(t, 30, ch.Length(), 1e-3)
	assertNear(t, math32.Vec3(8, 0, 0), ch.EvaluatePosition(8), 0.02)
	assertNear(t, math32.Vec3(20, 0, 0), ch.EvaluatePosition(20), 0.02)
}

func TestChainNearestToRay(t *testing.T) {
	ch := testChain()
	ray := math32.Ray{Origin: math32.Vec3(20, 10, 2), Dir: math32.Vec3(0, -1, 0)}
	dist, at, index := ch.NearestToRay(ray, 10)
	assert.InDelta(t, 2, dist, 0.02)
	assert.InDelta(t, 20, at, 0.02)
	assert.Equal(t, 1, index)

	ray.Origin = math32.Vec3(34, 10, 0)
	dist, at, index = ch.NearestToRay(ray, 0)
	assert.InDelta(t, 0, dist, 0.02)
	assert.InDelta(t, 34, at, 0.02)
	assert.Equal(t, 2, index)
}

func TestNewChainEmpty(t *testing.T) {
	assert.Panics(t, func() { NewChain() })
}
