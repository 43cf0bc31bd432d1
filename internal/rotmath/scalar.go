// Package rotmath implements 3D rotation math built around quaternions:
// construction from Euler angles and rotation matrices, conversion back
// under six axis orderings, interpolation, and composition. All types are
// plain values parameterized over the float kind; every operation returns
// a new value and never mutates its inputs.
package rotmath

import "math"

// Float constrains the scalar kinds a rotation can be expressed in.
type Float interface {
	~float32 | ~float64
}

// Transcendentals go through float64; the result is rounded back to T,
// so a float32 instantiation stays float32 after every step.

func sqrt[T Float](v T) T { return T(math.Sqrt(float64(v))) }

func sin[T Float](v T) T { return T(math.Sin(float64(v))) }

func cos[T Float](v T) T { return T(math.Cos(float64(v))) }

func asin[T Float](v T) T { return T(math.Asin(float64(v))) }

func acos[T Float](v T) T { return T(math.Acos(float64(v))) }

func atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func clamp[T Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Deg2Rad converts degrees to radians.
func Deg2Rad[T Float](d T) T {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg[T Float](r T) T {
	return r * 180 / math.Pi
}
