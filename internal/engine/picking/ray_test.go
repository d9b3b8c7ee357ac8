package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/softraster/internal/engine/camera"
	"github.com/Faultbox/softraster/internal/engine/model"
	"github.com/Faultbox/softraster/internal/engine/scene"
	"github.com/Faultbox/softraster/pkg/math"
)

const eps = 1e-9

func newScene(t *testing.T) *scene.Scene {
	t.Helper()
	cam, err := camera.New(1, 100, 90, 1, 1)
	if err != nil {
		t.Fatalf("camera.New: %v", err)
	}
	cam.Transform.SetPosition(math.V3(0, 0, -10))
	cam.LookAt(math.Vec3{})
	return scene.New(cam)
}

func TestScreenToRayCentre(t *testing.T) {
	s := newScene(t)
	ray := ScreenToRay(s.Camera, 50, 50, 101, 101)
	if !ray.Origin.ApproxEqual(math.V3(0, 0, -10), eps) {
		t.Errorf("origin = %v, want camera position", ray.Origin)
	}
	if !ray.Direction.ApproxEqual(math.V3(0, 0, 1), 1e-6) {
		t.Errorf("direction = %v, want +Z", ray.Direction)
	}
}

func TestScreenToRayEdge(t *testing.T) {
	s := newScene(t)
	// A 90 degree field of view puts the right edge at 45 degrees. The
	// camera faces +Z, so screen right is world -X.
	ray := ScreenToRay(s.Camera, 99, 50, 100, 101)
	angle := gomath.Atan2(-ray.Direction.X, ray.Direction.Z)
	want := gomath.Atan(0.99)
	if gomath.Abs(angle-want) > 1e-6 {
		t.Errorf("angle = %v rad, want %v", angle, want)
	}
}

func TestIntersectAABB(t *testing.T) {
	box := model.Bounds{Min: math.V3(-1, -1, -1), Max: math.V3(1, 1, 1)}
	tests := []struct {
		name  string
		ray   Ray
		wantT float64
		hit   bool
	}{
		{"straight on", Ray{math.V3(0, 0, -5), math.V3(0, 0, 1)}, 4, true},
		{"from inside", Ray{math.Vec3{}, math.V3(1, 0, 0)}, 1, true},
		{"pointing away", Ray{math.V3(0, 0, -5), math.V3(0, 0, -1)}, 0, false},
		{"parallel outside", Ray{math.V3(0, 2, -5), math.V3(0, 0, 1)}, 0, false},
		{"miss diagonal", Ray{math.V3(-5, 3, 0), math.V3(1, 0, 0)}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectAABB(box)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && gomath.Abs(got-tt.wantT) > eps {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestPickNearest(t *testing.T) {
	s := newScene(t)
	near := scene.NewMeshObject("near", model.Cube(1), model.Tint{})
	near.Transform.SetPosition(math.V3(0, 0, -3))
	far := scene.NewMeshObject("far", model.Cube(1), model.Tint{})
	far.Transform.SetPosition(math.V3(0, 0, 3))
	big := scene.NewMeshObject("big", model.Cube(1), model.Tint{})
	big.Transform.SetScale(math.V3(3, 3, 3))
	big.Transform.SetPosition(math.V3(20, 0, 0))
	s.Add(far, near, big, scene.NewObject("empty"))

	ray := Ray{Origin: math.V3(0, 0, -10), Direction: math.V3(0, 0, 1)}
	hit, ok := Pick(s, ray)
	if !ok || hit.Object != near {
		t.Fatalf("Pick() = (%v, %v), want near", hit.Object, ok)
	}
	if gomath.Abs(hit.Distance-6) > eps {
		t.Errorf("distance = %v, want 6", hit.Distance)
	}
	if !hit.Point.ApproxEqual(math.V3(0, 0, -4), eps) {
		t.Errorf("point = %v, want (0, 0, -4)", hit.Point)
	}

	// The scaled cube spans x in [17, 23].
	hit, ok = Pick(s, Ray{Origin: math.V3(17.5, 0, -10), Direction: math.V3(0, 0, 1)})
	if !ok || hit.Object != big {
		t.Errorf("Pick() = (%v, %v), want big", hit.Object, ok)
	}
	if gomath.Abs(hit.Distance-7) > eps {
		t.Errorf("distance = %v, want 7", hit.Distance)
	}

	if _, ok := Pick(s, Ray{Origin: math.V3(10, 10, -10), Direction: math.V3(0, 0, 1)}); ok {
		t.Error("ray between objects should miss")
	}
}

func TestPickIgnoresSingular(t *testing.T) {
	s := newScene(t)
	flat := scene.NewMeshObject("flat", model.Cube(1), model.Tint{})
	flat.Transform.SetScale(math.V3(1, 0, 1))
	s.Add(flat)
	if _, ok := Pick(s, Ray{Origin: math.V3(0, 0, -10), Direction: math.V3(0, 0, 1)}); ok {
		t.Error("singular object should not be pickable")
	}
}
