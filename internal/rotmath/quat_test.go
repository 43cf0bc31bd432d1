package rotmath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestIdentity(t *testing.T) {
	id := Identity[float64]()
	diff(t, Quat[float64]{0, 0, 0, 1}, id)

	for _, q := range testRotations {
		diff(t, q, q.Mul(id), cmpopts.EquateApprox(0, 1e-15))
		diff(t, q, id.Mul(q), cmpopts.EquateApprox(0, 1e-15))
	}
}

func TestDot(t *testing.T) {
	a := Quat[float64]{1, 2, 3, 4}
	b := Quat[float64]{-2, 1, 0.5, 3}
	diff(t, 13.5, a.Dot(b))
	diff(t, a.LengthSquared(), a.Dot(a))
}

func TestLength(t *testing.T) {
	q := Quat[float64]{1, 2, 2, 4}
	diff(t, 25.0, q.LengthSquared())
	diff(t, 5.0, q.Length())
}

func TestNormal(t *testing.T) {
	for _, q := range []Quat[float64]{
		{1, 2, 3, 4},
		{-0.1, 0, 0.7, 0.2},
		{100, -50, 25, 10},
	} {
		n := q.Normal()
		diff(t, 1.0, n.Length(), cmpopts.EquateApprox(0, 1e-14))
	}

	// Already-unit input stays put.
	for _, q := range testRotations {
		diff(t, q, q.Normal(), cmpopts.EquateApprox(0, 1e-14))
	}

	// The zero quaternion normalizes to identity, not NaN.
	diff(t, Identity[float64](), Quat[float64]{}.Normal())
}

func TestInvert(t *testing.T) {
	for _, q := range []Quat[float64]{
		testRotations[4],
		{1, 2, 3, 4}, // non-unit inputs invert too
		{-0.5, 0.5, -0.5, 0.5},
	} {
		diff(t, Identity[float64](), q.Mul(q.Invert()), cmpopts.EquateApprox(0, 1e-14))
		diff(t, Identity[float64](), q.Invert().Mul(q), cmpopts.EquateApprox(0, 1e-14))
	}

	// Degenerate input: the zero quaternion comes back unchanged.
	diff(t, Quat[float64]{}, Quat[float64]{}.Invert())
}

func TestMul(t *testing.T) {
	halfX := FromEuler(Vec3[float64]{math.Pi / 2, 0, 0}, OrderXYZ)
	fullX := FromEuler(Vec3[float64]{math.Pi, 0, 0}, OrderXYZ)
	diff(t, fullX, halfX.Mul(halfX), cmpopts.EquateApprox(0, 1e-14))

	// Not commutative.
	qx := FromEuler(Vec3[float64]{math.Pi / 2, 0, 0}, OrderXYZ)
	qy := FromEuler(Vec3[float64]{0, math.Pi / 2, 0}, OrderXYZ)
	if sameRotation(qx.Mul(qy), qy.Mul(qx), 1e-9) {
		t.Error("expected qx*qy and qy*qx to differ")
	}

	// Homomorphism: the product's matrix is the product of the matrices.
	for _, a := range testRotations {
		for _, b := range testRotations {
			diff(t, Mat3Mul(a.ToMat3(), b.ToMat3()), a.Mul(b).ToMat3(),
				cmpopts.EquateApprox(0, 1e-13))
		}
	}
}

func TestNegate(t *testing.T) {
	q := testRotations[4]
	n := q.Negate()
	diff(t, Quat[float64]{-q.X, -q.Y, -q.Z, -q.W}, n)

	// Double cover: the negation is a distinct value but the same rotation.
	if q == n {
		t.Error("negation should be a distinct value")
	}
	diff(t, q.ToMat3(), n.ToMat3(), cmpopts.EquateApprox(0, 1e-15))
}

func TestAngleTo(t *testing.T) {
	// acos near 1 amplifies the ~ulp round-off of a unit quaternion's
	// dot with itself into a few microdegrees, so the zero-angle checks
	// cannot be tighter than that.
	for _, q := range testRotations {
		diff(t, 0.0, q.AngleTo(q), cmpopts.EquateApprox(0, 1e-5))
		// A rotation and its negation are the same orientation.
		diff(t, 0.0, q.AngleTo(q.Negate()), cmpopts.EquateApprox(0, 1e-5))
	}

	id := Identity[float64]()
	quarterX := FromEuler(Vec3[float64]{math.Pi / 2, 0, 0}, OrderXYZ)
	diff(t, 90.0, id.AngleTo(quarterX), cmpopts.EquateApprox(0, 1e-9))

	halfZ := FromEuler(Vec3[float64]{0, 0, math.Pi}, OrderXYZ)
	diff(t, 180.0, id.AngleTo(halfZ), cmpopts.EquateApprox(0, 1e-9))
}

func TestInterpolate(t *testing.T) {
	a := Identity[float64]()
	b := Quat[float64]{1, 0, 0, 0}

	diff(t, a, a.Interpolate(b, 0))
	diff(t, b, a.Interpolate(b, 1))

	// Component lerp, deliberately not normalized.
	mid := a.Interpolate(b, 0.5)
	diff(t, Quat[float64]{0.5, 0, 0, 0.5}, mid)
	if math.Abs(mid.Length()-1) < 1e-3 {
		t.Error("midpoint of a 180° lerp should not be unit length")
	}
}

func TestSphericalInterpolateSelf(t *testing.T) {
	for _, q := range testRotations {
		for _, tt := range []float64{0, 0.25, 0.5, 1, 2} {
			diff(t, q, q.SphericalInterpolate(q, tt), cmpopts.EquateApprox(0, 1e-9))
		}
	}
}

func TestSphericalInterpolateEndpoints(t *testing.T) {
	for _, a := range testRotations {
		for _, b := range testRotations {
			got0 := a.SphericalInterpolate(b, 0)
			diff(t, a, got0, cmpopts.EquateApprox(0, 1e-9))

			got1 := a.SphericalInterpolate(b, 1)
			if !sameRotation(b, got1, 1e-9) {
				t.Errorf("slerp(a, b, 1) = %v, want %v up to sign", got1, b)
			}
		}
	}
}

func TestSphericalInterpolateConstantSpeed(t *testing.T) {
	a := FromEuler(Vec3[float64]{0.2, -0.5, 0.9}, OrderXYZ)
	b := FromEuler(Vec3[float64]{-1.4, 0.8, -0.3}, OrderXYZ)
	total := a.AngleTo(b)
	for _, tt := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		got := a.AngleTo(a.SphericalInterpolate(b, tt))
		diff(t, tt*total, got, cmpopts.EquateApprox(0, 1e-6))
	}
}

func TestSphericalInterpolateAntipodal(t *testing.T) {
	// cosom ≈ -1: the shorter-arc flip makes this the near-parallel
	// branch; it must stay finite, not divide by sin(0).
	for _, q := range testRotations {
		got := q.SphericalInterpolate(q.Negate(), 0.5)
		if quatIsNaN(got) {
			t.Fatalf("slerp(q, -q, 0.5) produced NaN for %v", q)
		}
		if !sameRotation(q, got, 1e-9) {
			t.Errorf("slerp(q, -q, 0.5) = %v, want the same rotation as %v", got, q)
		}
	}
}

func TestSphericalInterpolateOpposite(t *testing.T) {
	// Two orientations a full 180° of rotation apart (cosom = 0).
	a := Identity[float64]()
	b := Quat[float64]{1, 0, 0, 0}
	mid := a.SphericalInterpolate(b, 0.5)
	if quatIsNaN(mid) {
		t.Fatal("slerp across 180° produced NaN")
	}
	want := FromEuler(Vec3[float64]{math.Pi / 2, 0, 0}, OrderXYZ)
	diff(t, want, mid, cmpopts.EquateApprox(0, 1e-9))
}

func TestRotateTowards(t *testing.T) {
	a := Identity[float64]()
	b := FromEuler(Vec3[float64]{math.Pi / 2, 0, 0}, OrderXYZ) // 90° away

	// Step shorter than the remaining angle advances by exactly the step.
	step := a.RotateTowards(b, 30)
	diff(t, 30.0, a.AngleTo(step), cmpopts.EquateApprox(0, 1e-9))
	diff(t, 60.0, step.AngleTo(b), cmpopts.EquateApprox(0, 1e-9))

	// Step past the target clamps to the target.
	over := a.RotateTowards(b, 500)
	if !sameRotation(b, over, 1e-9) {
		t.Errorf("overshooting step should land on the target, got %v", over)
	}

	// Zero remaining angle returns the receiver unchanged.
	diff(t, b, b.RotateTowards(b, 10))
}
