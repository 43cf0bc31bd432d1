package rotmath

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3[T Float] [3]T

func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3[T]) Len() T {
	return sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.Len()
	if l < 1e-12 {
		return Vec3[T]{}
	}
	return Vec3[T]{v[0] / l, v[1] / l, v[2] / l}
}
