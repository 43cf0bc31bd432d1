package rotmath

// FromRotationMatrix extracts a quaternion from the upper-left 3×3 block
// of m. The branch is selected on the trace: a positive trace feeds the
// direct formula, otherwise the largest diagonal entry picks one of
// three symmetric alternates, which keeps the divisor away from zero
// when the trace is small or negative. A non-rotation matrix produces a
// well-defined but meaningless result; no validation is performed.
func FromRotationMatrix[T Float](m Mat4[T]) Quat[T] {
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[4], m[5], m[6]
	m20, m21, m22 := m[8], m[9], m[10]

	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := T(0.5) / sqrt(trace+1)
		return Quat[T]{(m21 - m12) * s, (m02 - m20) * s, (m10 - m01) * s, T(0.25) / s}
	case m00 > m11 && m00 > m22:
		s := 2 * sqrt(1+m00-m11-m22)
		return Quat[T]{T(0.25) * s, (m01 + m10) / s, (m02 + m20) / s, (m21 - m12) / s}
	case m11 > m22:
		s := 2 * sqrt(1+m11-m00-m22)
		return Quat[T]{(m01 + m10) / s, T(0.25) * s, (m12 + m21) / s, (m02 - m20) / s}
	default:
		s := 2 * sqrt(1+m22-m00-m11)
		return Quat[T]{(m02 + m20) / s, (m12 + m21) / s, T(0.25) * s, (m10 - m01) / s}
	}
}

// ToMat3 expands q into a 3×3 rotation matrix via the doubled-product
// terms. q must be unit length.
func (q Quat[T]) ToMat3() Mat3[T] {
	x2, y2, z2 := q.X*2, q.Y*2, q.Z*2
	xx, yy, zz := q.X*x2, q.Y*y2, q.Z*z2
	xy, xz, yz := q.X*y2, q.X*z2, q.Y*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	return Mat3[T]{
		1 - (yy + zz), xy - wz, xz + wy,
		xy + wz, 1 - (xx + zz), yz - wx,
		xz - wy, yz + wx, 1 - (xx + yy),
	}
}

// ToMat4 expands q into a 4×4 rotation matrix with a homogeneous last
// row and column. q must be unit length.
func (q Quat[T]) ToMat4() Mat4[T] {
	x2, y2, z2 := q.X*2, q.Y*2, q.Z*2
	xx, yy, zz := q.X*x2, q.Y*y2, q.Z*z2
	xy, xz, yz := q.X*y2, q.X*z2, q.Y*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	return Mat4[T]{
		1 - (yy + zz), xy - wz, xz + wy, 0,
		xy + wz, 1 - (xx + zz), yz - wx, 0,
		xz - wy, yz + wx, 1 - (xx + yy), 0,
		0, 0, 0, 1,
	}
}

// RotTrans builds the 4×4 transform that rotates by q and translates by t.
func (q Quat[T]) RotTrans(t Vec3[T]) Mat4[T] {
	return FromMat3Translation(q.ToMat3(), t)
}

// RotTransOrigin builds the 4×4 transform that rotates by q around the
// pivot origin and then translates by t, so origin itself maps to
// origin + t instead of being swung around the coordinate origin.
func (q Quat[T]) RotTransOrigin(t, origin Vec3[T]) Mat4[T] {
	r := q.ToMat3()
	return FromMat3Translation(r, Vec3[T]{
		t[0] + origin[0] - (r[0]*origin[0] + r[1]*origin[1] + r[2]*origin[2]),
		t[1] + origin[1] - (r[3]*origin[0] + r[4]*origin[1] + r[5]*origin[2]),
		t[2] + origin[2] - (r[6]*origin[0] + r[7]*origin[1] + r[8]*origin[2]),
	})
}
