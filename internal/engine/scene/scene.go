// Package scene holds the objects and camera drawn each frame.
package scene

import "github.com/Faultbox/softraster/internal/engine/camera"

// Scene is an ordered list of objects viewed through one camera.
// Objects are drawn in insertion order.
type Scene struct {
	Camera  *camera.Camera
	objects []*Object
}

// New creates an empty scene viewed through cam.
func New(cam *camera.Camera) *Scene {
	return &Scene{Camera: cam}
}

// Add appends objects to the draw order.
func (s *Scene) Add(objs ...*Object) {
	s.objects = append(s.objects, objs...)
}

// Objects returns the objects in draw order. The slice aliases the scene.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Find returns the first object with the given name.
func (s *Scene) Find(name string) (*Object, bool) {
	for _, o := range s.objects {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// Remove deletes the first object with the given name, keeping the order
// of the rest. It reports whether an object was removed.
func (s *Scene) Remove(name string) bool {
	for i, o := range s.objects {
		if o.Name == name {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return true
		}
	}
	return false
}
