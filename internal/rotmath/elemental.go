package rotmath

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX[T Float](a T) Mat3[T] {
	c, s := cos(a), sin(a)
	return Mat3[T]{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY[T Float](a T) Mat3[T] {
	c, s := cos(a), sin(a)
	return Mat3[T]{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ[T Float](a T) Mat3[T] {
	c, s := cos(a), sin(a)
	return Mat3[T]{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}
