package lanecurve

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// near reports an error if got is further than tolerance from want.
func near(t *testing.T, want, got math32.Vector3, tolerance float32) {
	t.Helper()
	if d := got.Sub(want).Length(); d > tolerance || math32.IsNaN(d) {
		t.Errorf("got %s, want %s (distance %g > %g)", formatVec(got), formatVec(want), d, tolerance)
	}
}

func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	fn()
}
