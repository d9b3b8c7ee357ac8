package scene

import (
	"testing"

	"github.com/Faultbox/softraster/internal/engine/camera"
	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/internal/engine/model"
	"github.com/Faultbox/softraster/pkg/math"
)

func newCamera(t *testing.T) *camera.Camera {
	t.Helper()
	cam, err := camera.New(1, 100, 90, 1, 1)
	if err != nil {
		t.Fatalf("camera.New: %v", err)
	}
	return cam
}

func TestObjectComponents(t *testing.T) {
	obj := NewObject("empty")
	if _, ok := obj.Mesh(); ok {
		t.Error("new object should have no mesh")
	}
	if obj.Transform.Position() != (math.Vec3{}) {
		t.Error("new object should sit at the origin")
	}

	red := model.Tint{Color: framebuffer.Red}
	obj = NewMeshObject("tri", model.Triangle(), red)
	mesh, ok := obj.Mesh()
	if !ok || len(mesh.Triangles) != 1 {
		t.Fatalf("Mesh() = (%v, %v)", mesh, ok)
	}
	tint, ok := obj.Tint()
	if !ok || tint.Color != framebuffer.Red {
		t.Fatalf("Tint() = (%v, %v)", tint, ok)
	}

	// The returned component is the stored one.
	tint.Color = framebuffer.Blue
	if again, _ := obj.Tint(); again.Color != framebuffer.Blue {
		t.Error("mutating the returned tint should update the object")
	}
}

func TestSceneOrder(t *testing.T) {
	s := New(newCamera(t))
	s.Add(NewObject("a"), NewObject("b"))
	s.Add(NewObject("c"))

	names := func() string {
		var out string
		for _, o := range s.Objects() {
			out += o.Name
		}
		return out
	}
	if got := names(); got != "abc" {
		t.Errorf("order = %q, want abc", got)
	}

	if !s.Remove("b") {
		t.Fatal("Remove(b) = false")
	}
	if s.Remove("b") {
		t.Error("second Remove(b) should report false")
	}
	if got := names(); got != "ac" {
		t.Errorf("order after remove = %q, want ac", got)
	}

	if o, ok := s.Find("c"); !ok || o.Name != "c" {
		t.Errorf("Find(c) = (%v, %v)", o, ok)
	}
	if _, ok := s.Find("zzz"); ok {
		t.Error("Find of a missing name should fail")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}
