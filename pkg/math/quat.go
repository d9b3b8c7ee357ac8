package math

import "math"

// lazyNormalizeTolerance is how far |q|^2 may drift from 1 before LazyNormalize rescales.
const lazyNormalizeTolerance = 0.21

// Quat represents a quaternion for 3D rotations.
// W is the scalar part.
type Quat struct {
	W, X, Y, Z float64
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromEuler builds a rotation from Euler angles in radians.
// x is roll, y is pitch and z is yaw, composed in ZYX order.
func QuatFromEuler(x, y, z float64) Quat {
	sa, ca := math.Sincos(x * 0.5)
	sb, cb := math.Sincos(y * 0.5)
	sc, cc := math.Sincos(z * 0.5)

	return Quat{
		W: cc*cb*ca + sc*sb*sa,
		X: cc*cb*sa - sc*sb*ca,
		Y: cc*sb*ca + sc*cb*sa,
		Z: sc*cb*ca - cc*sb*sa,
	}
}

// Mul returns the Hamilton product q * other.
// The product is not commutative; q * other applies other first.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y + q.Y*other.W + q.Z*other.X - q.X*other.Z,
		Z: q.W*other.Z + q.Z*other.W + q.X*other.Y - q.Y*other.X,
	}
}

// LengthSquared returns |q|^2.
func (q Quat) LengthSquared() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// LazyNormalize rescales q to unit length only once |q|^2 has drifted
// at least 0.21 away from 1. Smaller drift is returned untouched.
func (q Quat) LazyNormalize() Quat {
	magSq := q.LengthSquared()
	if math.Abs(1-magSq) < lazyNormalizeTolerance {
		return q
	}
	mag := math.Sqrt(magSq)
	return Quat{W: q.W / mag, X: q.X / mag, Y: q.Y / mag, Z: q.Z / mag}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	p := q.Mul(Quat{X: v.X, Y: v.Y, Z: v.Z}).Mul(q.Conjugate())
	return Vec3{p.X, p.Y, p.Z}
}

// Conjugate returns the inverse rotation of a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// basis returns the rotation as three row basis vectors, each scaled by the
// matching component of scale, in the row-vector layout used by Mat4.
func (q Quat) basis(scale Vec3) [3][3]float64 {
	wx := q.W * q.X * 2
	wy := q.W * q.Y * 2
	wz := q.W * q.Z * 2
	xx := q.X * q.X * 2
	xy := q.X * q.Y * 2
	xz := q.X * q.Z * 2
	yy := q.Y * q.Y * 2
	yz := q.Y * q.Z * 2
	zz := q.Z * q.Z * 2

	return [3][3]float64{
		{(1 - yy - zz) * scale.X, (xy + wz) * scale.X, (xz - wy) * scale.X},
		{(xy - wz) * scale.Y, (1 - xx - zz) * scale.Y, (yz + wx) * scale.Y},
		{(xz + wy) * scale.Z, (yz - wx) * scale.Z, (1 - xx - yy) * scale.Z},
	}
}

// WriteRotation overwrites the 3x3 rotation block of m with q scaled by scale.
// Translation and homogeneous weights are left alone.
func (q Quat) WriteRotation(m *Mat4, scale Vec3) {
	b := q.basis(scale)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[row][col] = b[row][col]
		}
	}
}

// WriteRotation3x4 is WriteRotation for the 3x4 layout.
func (q Quat) WriteRotation3x4(m *Mat3x4, scale Vec3) {
	b := q.basis(scale)
	for row := 0; row < 3; row++ {
		m[row] = b[row]
	}
}
