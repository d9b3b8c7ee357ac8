// Package picking provides ray casting and object picking utilities.
package picking

import (
	gomath "math"

	"github.com/Faultbox/softraster/internal/engine/camera"
	"github.com/Faultbox/softraster/internal/engine/model"
	"github.com/Faultbox/softraster/internal/engine/scene"
	"github.com/Faultbox/softraster/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay returns the world-space ray through the centre of pixel
// (px, py) of a width x height viewport.
func ScreenToRay(cam *camera.Camera, px, py, width, height int) Ray {
	// Convert pixel centre to normalized device coords (-1 to 1)
	ndcX := 2*(float64(px)+0.5)/float64(width) - 1
	ndcY := 1 - 2*(float64(py)+0.5)/float64(height) // Flip Y

	// Undo the projection scale at unit depth in front of the camera
	pd := cam.Projection()
	local := math.Vec3{X: ndcX / pd.WScale, Y: ndcY / pd.HScale, Z: -1}

	m := cam.Transform.Matrix()
	dir := m.TransformDirection(local)
	if l := dir.Length(); l > 0 {
		dir = dir.Scale(1 / l)
	}
	return Ray{Origin: m.Translation(), Direction: dir}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box model.Bounds) (t float64, hit bool) {
	tmin := gomath.Inf(-1)
	tmax := gomath.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < 0 || tmin > tmax {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// Hit is the result of a successful pick.
type Hit struct {
	Object   *scene.Object
	Distance float64 // along the world ray
	Point    math.Vec3
}

// Pick returns the nearest object whose mesh bounds the ray hits.
// Objects with a singular transform cannot be tested and are ignored.
func Pick(s *scene.Scene, ray Ray) (Hit, bool) {
	var best Hit
	found := false
	for _, obj := range s.Objects() {
		mesh, ok := obj.Mesh()
		if !ok {
			continue
		}
		inv, err := obj.Transform.InverseMatrix()
		if err != nil {
			continue
		}
		// An affine map keeps the ray parameter, so t is comparable across
		// objects.
		local := Ray{
			Origin:    inv.TransformPoint(ray.Origin),
			Direction: inv.TransformDirection(ray.Direction),
		}
		t, hit := local.IntersectAABB(mesh.Bounds())
		if !hit || (found && t >= best.Distance) {
			continue
		}
		best = Hit{Object: obj, Distance: t, Point: ray.At(t)}
		found = true
	}
	return best, found
}
