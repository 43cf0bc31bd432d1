package rotmath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// sameRotation reports whether a and b describe the same rotation within
// tol, allowing for the double cover (b may match as its negation).
func sameRotation(a, b Quat[float64], tol float64) bool {
	if a.Dot(b) < 0 {
		b = b.Negate()
	}
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol &&
		math.Abs(a.W-b.W) <= tol
}

func quatIsNaN(q Quat[float64]) bool {
	return math.IsNaN(q.X) || math.IsNaN(q.Y) || math.IsNaN(q.Z) || math.IsNaN(q.W)
}

// testRotations is a spread of unit quaternions covering small and large
// angles about mixed axes.
var testRotations = []Quat[float64]{
	Identity[float64](),
	FromEuler(Vec3[float64]{0.3, 0, 0}, OrderXYZ),
	FromEuler(Vec3[float64]{0, -1.1, 0}, OrderXYZ),
	FromEuler(Vec3[float64]{0, 0, 2.4}, OrderXYZ),
	FromEuler(Vec3[float64]{0.7, -0.4, 1.9}, OrderXYZ),
	FromEuler(Vec3[float64]{-2.8, 0.6, -0.2}, OrderZYX),
	FromEuler(Vec3[float64]{1.2, 2.9, -1.5}, OrderYZX),
}
