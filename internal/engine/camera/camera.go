// Package camera provides the perspective camera used to project camera-space
// geometry into normalized device coordinates.
package camera

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/softraster/internal/engine/transform"
	"github.com/Faultbox/softraster/pkg/math"
)

// ErrInvalidIntrinsics is returned for clip distances, field of view or
// aspect ratios that cannot form a perspective projection.
var ErrInvalidIntrinsics = errors.New("invalid camera intrinsics")

// ProjectionData holds the four coefficients of the perspective projection.
//
//	x' = x * WScale
//	y' = y * HScale
//	z' = z * M1 + M2
//	w  = -z
type ProjectionData struct {
	WScale float64
	HScale float64
	M1     float64
	M2     float64
}

// GenerateProjection computes projection coefficients for a horizontal field
// of view in degrees and an aspect ratio of width over height.
func GenerateProjection(near, far, fovDegrees, aspect float64) ProjectionData {
	t := gomath.Tan(fovDegrees * gomath.Pi / 360)
	return ProjectionData{
		WScale: 1 / t,
		HScale: aspect / t,
		M1:     -far / (far - near),
		M2:     -(far * near) / (far - near),
	}
}

// Camera is a perspective camera looking down its local -Z axis.
type Camera struct {
	// Transform places the camera in the world.
	Transform *transform.Transform

	near      float64
	far       float64
	fov       float64 // degrees
	aspectNum float64
	aspectDen float64

	projection ProjectionData
	dirty      bool
}

// New creates a camera. fovDegrees is the horizontal field of view; the
// aspect ratio is aspectNum:aspectDen (for example 16:9).
func New(near, far, fovDegrees, aspectNum, aspectDen float64) (*Camera, error) {
	if err := validate(near, far, fovDegrees, aspectNum, aspectDen); err != nil {
		return nil, err
	}
	return &Camera{
		Transform: transform.New(),
		near:      near,
		far:       far,
		fov:       fovDegrees,
		aspectNum: aspectNum,
		aspectDen: aspectDen,
		dirty:     true,
	}, nil
}

func validate(near, far, fov, aspectNum, aspectDen float64) error {
	switch {
	case !(near > 0):
		return fmt.Errorf("near plane %v must be positive: %w", near, ErrInvalidIntrinsics)
	case !(far > near):
		return fmt.Errorf("far plane %v must lie beyond near plane %v: %w", far, near, ErrInvalidIntrinsics)
	case !(fov > 0 && fov < 180):
		return fmt.Errorf("field of view %v must be in (0, 180) degrees: %w", fov, ErrInvalidIntrinsics)
	case !(aspectNum > 0 && aspectDen > 0):
		return fmt.Errorf("aspect ratio %v:%v must be positive: %w", aspectNum, aspectDen, ErrInvalidIntrinsics)
	}
	return nil
}

// Near returns the near clip distance.
func (c *Camera) Near() float64 { return c.near }

// Far returns the far clip distance.
func (c *Camera) Far() float64 { return c.far }

// FOV returns the horizontal field of view in degrees.
func (c *Camera) FOV() float64 { return c.fov }

// AspectRatio returns the aspect ratio as width over height.
func (c *Camera) AspectRatio() float64 { return c.aspectNum / c.aspectDen }

// SetNear changes the near clip distance.
func (c *Camera) SetNear(near float64) error {
	if err := validate(near, c.far, c.fov, c.aspectNum, c.aspectDen); err != nil {
		return err
	}
	c.near = near
	c.dirty = true
	return nil
}

// SetFar changes the far clip distance.
func (c *Camera) SetFar(far float64) error {
	if err := validate(c.near, far, c.fov, c.aspectNum, c.aspectDen); err != nil {
		return err
	}
	c.far = far
	c.dirty = true
	return nil
}

// SetFOV changes the horizontal field of view in degrees.
func (c *Camera) SetFOV(fovDegrees float64) error {
	if err := validate(c.near, c.far, fovDegrees, c.aspectNum, c.aspectDen); err != nil {
		return err
	}
	c.fov = fovDegrees
	c.dirty = true
	return nil
}

// SetAspectRatio changes the aspect ratio to num:den.
func (c *Camera) SetAspectRatio(num, den float64) error {
	if err := validate(c.near, c.far, c.fov, num, den); err != nil {
		return err
	}
	c.aspectNum = num
	c.aspectDen = den
	c.dirty = true
	return nil
}

// Projection returns the projection coefficients, regenerating them only if
// an intrinsic changed since the last call.
func (c *Camera) Projection() ProjectionData {
	if c.dirty {
		c.projection = GenerateProjection(c.near, c.far, c.fov, c.AspectRatio())
		c.dirty = false
	}
	return c.projection
}

// ProjectToScreenSpace projects a camera-space point. It returns the point in
// normalized device coordinates along with the clip weight w. Points in front
// of the camera have w > 0; visible depth maps to [0, 1].
func (c *Camera) ProjectToScreenSpace(p math.Vec3) (math.Vec3, float64) {
	pd := c.Projection()
	w := -p.Z
	screen := math.Vec3{
		X: p.X * pd.WScale,
		Y: p.Y * pd.HScale,
		Z: p.Z*pd.M1 + pd.M2,
	}
	if w == 0 {
		return screen, 0
	}
	return screen.Scale(1 / w), w
}

// ViewMatrix returns the world-to-camera matrix.
func (c *Camera) ViewMatrix() (math.Mat4, error) {
	return c.Transform.InverseMatrix()
}

// LookAt yaws the camera so that it faces target on the XZ plane.
// It is meant for level cameras; a pitched camera is yawed about its own Y axis.
func (c *Camera) LookAt(target math.Vec3) {
	pos := c.Transform.Position()
	d := target.Sub(pos)
	if d.X == 0 && d.Z == 0 {
		return
	}
	// The camera's forward is -Z, so a yaw of atan2(-dx, -dz) faces the target.
	want := gomath.Atan2(-d.X, -d.Z)
	have := yaw(c.Transform.Rotation())
	c.Transform.Rotate(0, want-have, 0)
}

// yaw extracts the rotation about Y of a quaternion.
func yaw(q math.Quat) float64 {
	fwd := q.Rotate(math.Vec3{Z: -1})
	return gomath.Atan2(-fwd.X, -fwd.Z)
}
