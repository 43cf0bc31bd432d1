package rotmath

// Quat is a rotation quaternion (x, y, z, w) = w + xi + yj + zk.
// The zero value is degenerate; use Identity for the identity rotation.
// Operations that assume unit length (ToMat3, ToMat4, ToEuler) do not
// validate their input — call Normal first if unsure.
type Quat[T Float] struct {
	X, Y, Z, W T
}

// Identity returns the identity rotation (0, 0, 0, 1).
func Identity[T Float]() Quat[T] {
	return Quat[T]{0, 0, 0, 1}
}

// Dot returns the four-component dot product of q and r.
func (q Quat[T]) Dot(r Quat[T]) T {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// LengthSquared returns the sum of squared components.
func (q Quat[T]) LengthSquared() T {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the Euclidean norm of q.
func (q Quat[T]) Length() T {
	return sqrt(q.LengthSquared())
}

// Normal returns q scaled to unit length. A zero quaternion normalizes
// to the identity rotation.
func (q Quat[T]) Normal() Quat[T] {
	ls := q.LengthSquared()
	if ls == 0 {
		return Identity[T]()
	}
	inv := 1 / sqrt(ls)
	return Quat[T]{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Invert returns the multiplicative inverse of q: the conjugate scaled
// by 1/LengthSquared. A zero quaternion has no inverse and comes back
// as the zero quaternion.
func (q Quat[T]) Invert() Quat[T] {
	ls := q.LengthSquared()
	if ls == 0 {
		return Quat[T]{}
	}
	inv := 1 / ls
	return Quat[T]{-q.X * inv, -q.Y * inv, -q.Z * inv, q.W * inv}
}

// Mul returns the Hamilton product q·r. Applied to a vector, the result
// rotates by r first and then by q; the product is not commutative.
func (q Quat[T]) Mul(r Quat[T]) Quat[T] {
	return Quat[T]{
		q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Negate returns -q, which represents the same rotation as q.
func (q Quat[T]) Negate() Quat[T] {
	return Quat[T]{-q.X, -q.Y, -q.Z, -q.W}
}

const twoDegPerRad = 114.59155902616465 // 2 · 180/π

// AngleTo returns the angle between the rotations q and r in degrees.
// The dot product is clamped to [-1, 1] first so round-off cannot push
// it outside the acos domain; taking |dot| folds the double cover, so a
// rotation and its negation are zero degrees apart.
func (q Quat[T]) AngleTo(r Quat[T]) T {
	d := clamp(q.Dot(r), -1, 1)
	if d < 0 {
		d = -d
	}
	return acos(d) * twoDegPerRad
}

// Interpolate linearly blends each component independently. The result
// is not normalized; callers needing an orientation normalize it.
func (q Quat[T]) Interpolate(r Quat[T], t T) Quat[T] {
	return Quat[T]{
		q.X + (r.X-q.X)*t,
		q.Y + (r.Y-q.Y)*t,
		q.Z + (r.Z-q.Z)*t,
		q.W + (r.W-q.W)*t,
	}
}

// SphericalInterpolate blends q toward r at constant angular speed.
// When the inputs sit on opposite sheets of the double cover, r's sign
// is flipped so the interpolation takes the shorter arc. Near-parallel
// inputs fall back to a linear blend rather than dividing by a
// vanishing sin(omega).
func (q Quat[T]) SphericalInterpolate(r Quat[T], t T) Quat[T] {
	cosom := q.Dot(r)
	rx, ry, rz, rw := r.X, r.Y, r.Z, r.W
	if cosom < 0 {
		cosom = -cosom
		rx, ry, rz, rw = -rx, -ry, -rz, -rw
	}

	var scale0, scale1 T
	if 1-cosom > 1e-6 {
		omega := acos(cosom)
		sinom := sin(omega)
		scale0 = sin((1-t)*omega) / sinom
		scale1 = sin(t*omega) / sinom
	} else {
		scale0 = 1 - t
		scale1 = t
	}

	return Quat[T]{
		scale0*q.X + scale1*rx,
		scale0*q.Y + scale1*ry,
		scale0*q.Z + scale1*rz,
		scale0*q.W + scale1*rw,
	}
}

// RotateTowards advances q toward r by at most stepDegrees, stopping
// exactly at r once the remaining angle is smaller than the step.
func (q Quat[T]) RotateTowards(r Quat[T], stepDegrees T) Quat[T] {
	angle := q.AngleTo(r)
	if angle == 0 {
		return q
	}
	t := stepDegrees / angle
	if t > 1 {
		t = 1
	}
	return q.SphericalInterpolate(r, t)
}
