// Package transform provides the affine pose of a scene object or camera.
package transform

import (
	"fmt"

	"github.com/Faultbox/softraster/pkg/math"
)

// Transform holds an affine forward matrix and a lazily recomputed inverse.
//
// Mutators update the forward matrix immediately and mark the inverse stale.
// The inverse is rebuilt on the next InverseMatrix call; the stale flag is
// cleared only when that rebuild succeeds.
type Transform struct {
	affine   math.Mat3x4
	inverse  math.Mat4
	dirty    bool
	rotation math.Quat
	scale    math.Vec3
}

// New returns an identity transform.
func New() *Transform {
	return &Transform{
		affine:   math.Identity3x4(),
		inverse:  math.Identity(),
		rotation: math.QuatIdentity(),
		scale:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Translate moves the transform by delta in parent space.
func (t *Transform) Translate(delta math.Vec3) {
	t.affine[3][0] += delta.X
	t.affine[3][1] += delta.Y
	t.affine[3][2] += delta.Z
	t.dirty = true
}

// SetPosition places the transform at p.
func (t *Transform) SetPosition(p math.Vec3) {
	t.affine[3][0] = p.X
	t.affine[3][1] = p.Y
	t.affine[3][2] = p.Z
	t.dirty = true
}

// Rotate composes an Euler rotation (radians) onto the current rotation.
// The quaternion is renormalized lazily so repeated small steps do not drift.
func (t *Transform) Rotate(x, y, z float64) {
	t.rotation = t.rotation.Mul(math.QuatFromEuler(x, y, z)).LazyNormalize()
	t.rotation.WriteRotation3x4(&t.affine, t.scale)
	t.dirty = true
}

// SetScale replaces the per-axis scale and rewrites the rotation block.
func (t *Transform) SetScale(s math.Vec3) {
	t.scale = s
	t.rotation.WriteRotation3x4(&t.affine, t.scale)
	t.dirty = true
}

// Position returns the translation row.
func (t *Transform) Position() math.Vec3 {
	return math.Vec3{X: t.affine[3][0], Y: t.affine[3][1], Z: t.affine[3][2]}
}

// Rotation returns the current rotation quaternion.
func (t *Transform) Rotation() math.Quat {
	return t.rotation
}

// Scale returns the current per-axis scale.
func (t *Transform) Scale() math.Vec3 {
	return t.scale
}

// Dirty reports whether the cached inverse is stale.
func (t *Transform) Dirty() bool {
	return t.dirty
}

// Matrix returns the local-to-world matrix. It is always current.
func (t *Transform) Matrix() math.Mat4 {
	return t.affine.Mat4()
}

// Affine returns the local-to-world matrix in the compact 3x4 layout.
func (t *Transform) Affine() math.Mat3x4 {
	return t.affine
}

// InverseMatrix returns the world-to-local matrix, recomputing it if the
// transform changed since the last call.
//
// If the forward matrix is singular the previously cached inverse is returned
// along with an error wrapping math.ErrNotInvertible, and the next call retries.
func (t *Transform) InverseMatrix() (math.Mat4, error) {
	if !t.dirty {
		return t.inverse, nil
	}
	inv, err := math.InvertMat4(t.affine.Mat4(), true)
	if err != nil {
		return t.inverse, fmt.Errorf("inverting transform: %w", err)
	}
	t.inverse = inv
	t.dirty = false
	return t.inverse, nil
}

// ToWorldSpace maps a local point to world space.
func (t *Transform) ToWorldSpace(v math.Vec3) math.Vec3 {
	return t.affine.TransformPoint(v)
}

// ToLocalSpace maps a world point to local space.
func (t *Transform) ToLocalSpace(v math.Vec3) (math.Vec3, error) {
	inv, err := t.InverseMatrix()
	if err != nil {
		return math.Vec3{}, err
	}
	return inv.TransformPoint(v), nil
}
