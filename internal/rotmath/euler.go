package rotmath

import "fmt"

// RotationOrder names the order in which elemental rotations about the
// X, Y and Z axes compose: OrderXYZ corresponds to the matrix product
// Rx·Ry·Rz in the column-vector convention. The same order must be used
// building a quaternion from Euler angles and decomposing it back, or
// the round trip reproduces neither the rotation nor the angles.
type RotationOrder int

const (
	OrderXYZ RotationOrder = iota
	OrderXZY
	OrderYXZ
	OrderYZX
	OrderZXY
	OrderZYX
)

var orderNames = [...]string{"XYZ", "XZY", "YXZ", "YZX", "ZXY", "ZYX"}

func (o RotationOrder) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("RotationOrder(%d)", int(o))
	}
	return orderNames[o]
}

// ParseOrder converts an order name like "XYZ" to its RotationOrder.
func ParseOrder(s string) (RotationOrder, error) {
	for i, name := range orderNames {
		if s == name {
			return RotationOrder(i), nil
		}
	}
	return 0, fmt.Errorf("rotmath: unknown rotation order %q", s)
}

// FromEuler builds the quaternion composing elemental rotations about
// the X, Y and Z axes by the given angles (radians) in the given order.
// Each order has its own closed-form sign pattern; the formulas are not
// interchangeable between orders.
func FromEuler[T Float](e Vec3[T], order RotationOrder) Quat[T] {
	c1, s1 := cos(e[0]/2), sin(e[0]/2)
	c2, s2 := cos(e[1]/2), sin(e[1]/2)
	c3, s3 := cos(e[2]/2), sin(e[2]/2)

	switch order {
	case OrderXYZ:
		return Quat[T]{
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
			c1*c2*s3 + s1*s2*c3,
			c1*c2*c3 - s1*s2*s3,
		}
	case OrderXZY:
		return Quat[T]{
			s1*c2*c3 - c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
			c1*c2*s3 + s1*s2*c3,
			c1*c2*c3 + s1*s2*s3,
		}
	case OrderYXZ:
		return Quat[T]{
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
			c1*c2*s3 - s1*s2*c3,
			c1*c2*c3 + s1*s2*s3,
		}
	case OrderYZX:
		return Quat[T]{
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 + s1*c2*s3,
			c1*c2*s3 - s1*s2*c3,
			c1*c2*c3 - s1*s2*s3,
		}
	case OrderZXY:
		return Quat[T]{
			s1*c2*c3 - c1*s2*s3,
			c1*s2*c3 + s1*c2*s3,
			c1*c2*s3 + s1*s2*c3,
			c1*c2*c3 - s1*s2*s3,
		}
	case OrderZYX:
		return Quat[T]{
			s1*c2*c3 - c1*s2*s3,
			c1*s2*c3 + s1*c2*s3,
			c1*c2*s3 - s1*s2*c3,
			c1*c2*c3 + s1*s2*s3,
		}
	}
	return Identity[T]()
}

// gimbalLockEps: how close the asin-fed matrix entry may get to ±1
// before the two remaining axes are treated as aligned.
const gimbalLockEps = 1e-7

// ToEuler decomposes q into Euler angles (radians) for the given order.
// q is normalized and converted to matrix form; one angle comes from a
// clamped asin, the other two from atan2. When the asin entry is within
// gimbalLockEps of ±1 the remaining two axes coincide and only their sum
// or difference is determined; one deterministic solution is returned,
// with one of the two ambiguous angles fixed at 0.
func (q Quat[T]) ToEuler(order RotationOrder) Vec3[T] {
	m := q.Normal().ToMat4()
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[4], m[5], m[6]
	m20, m21, m22 := m[8], m[9], m[10]

	const lock = 1 - gimbalLockEps

	var e Vec3[T]
	switch order {
	case OrderXYZ:
		e[1] = asin(clamp(m02, -1, 1))
		if abs(m02) < lock {
			e[0] = atan2(-m12, m22)
			e[2] = atan2(-m01, m00)
		} else {
			e[0] = atan2(m21, m11)
			e[2] = 0
		}
	case OrderXZY:
		e[2] = asin(-clamp(m01, -1, 1))
		if abs(m01) < lock {
			e[0] = atan2(m21, m11)
			e[1] = atan2(m02, m00)
		} else {
			e[0] = atan2(-m12, m22)
			e[1] = 0
		}
	case OrderYXZ:
		e[0] = asin(-clamp(m12, -1, 1))
		if abs(m12) < lock {
			e[1] = atan2(m02, m22)
			e[2] = atan2(m10, m11)
		} else {
			e[1] = atan2(-m20, m00)
			e[2] = 0
		}
	case OrderYZX:
		e[2] = asin(clamp(m10, -1, 1))
		if abs(m10) < lock {
			e[0] = atan2(-m12, m11)
			e[1] = atan2(-m20, m00)
		} else {
			e[0] = 0
			e[1] = atan2(m02, m22)
		}
	case OrderZXY:
		e[0] = asin(clamp(m21, -1, 1))
		if abs(m21) < lock {
			e[1] = atan2(-m20, m22)
			e[2] = atan2(-m01, m11)
		} else {
			e[1] = 0
			e[2] = atan2(m10, m00)
		}
	case OrderZYX:
		e[1] = asin(-clamp(m20, -1, 1))
		if abs(m20) < lock {
			e[0] = atan2(m21, m22)
			e[2] = atan2(m10, m00)
		} else {
			e[0] = 0
			e[2] = atan2(-m01, m11)
		}
	}
	return e
}
