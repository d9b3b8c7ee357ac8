package model

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/softraster/pkg/formats"
	"github.com/Faultbox/softraster/pkg/math"
)

// NewMesh validates and wraps mesh data. The slices are used as given.
func NewMesh(name string, vertices []math.Vec3, triangles [][3]int) (*Mesh, error) {
	m := &Mesh{Name: name, Vertices: vertices, Triangles: triangles}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks that the mesh has geometry, that every coordinate is
// finite and that every triangle names three distinct existing vertices.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("mesh %q has no vertices: %w", m.Name, ErrInvalidMesh)
	}
	if len(m.Triangles) == 0 {
		return fmt.Errorf("mesh %q has no triangles: %w", m.Name, ErrInvalidMesh)
	}
	for i, v := range m.Vertices {
		if !finite(v.X) || !finite(v.Y) || !finite(v.Z) {
			return fmt.Errorf("mesh %q vertex %d is not finite (%v, %v, %v): %w",
				m.Name, i, v.X, v.Y, v.Z, ErrInvalidMesh)
		}
	}
	for i, tri := range m.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("mesh %q triangle %d index %d outside %d vertices: %w",
					m.Name, i, idx, len(m.Vertices), ErrInvalidMesh)
			}
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[0] == tri[2] {
			return fmt.Errorf("mesh %q triangle %d repeats a vertex %v: %w", m.Name, i, tri, ErrInvalidMesh)
		}
	}
	return nil
}

// FromOBJ builds a mesh from parsed OBJ geometry.
func FromOBJ(obj *formats.OBJ) (*Mesh, error) {
	vertices := make([]math.Vec3, len(obj.Vertices))
	for i, v := range obj.Vertices {
		vertices[i] = math.Vec3{X: v[0], Y: v[1], Z: v[2]}
	}
	triangles := make([][3]int, len(obj.Triangles))
	copy(triangles, obj.Triangles)
	return NewMesh(obj.Name, vertices, triangles)
}

// LoadOBJ reads an OBJ file and builds a mesh from it.
func LoadOBJ(path string) (*Mesh, error) {
	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading mesh %s: %w", path, err)
	}
	if obj.Name == "" {
		obj.Name = path
	}
	return FromOBJ(obj)
}

// Bounds returns the bounding box of the vertices.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b.Min = math.Vec3{X: min(b.Min.X, v.X), Y: min(b.Min.Y, v.Y), Z: min(b.Min.Z, v.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, v.X), Y: max(b.Max.Y, v.Y), Z: max(b.Max.Z, v.Z)}
	}
	return b
}

func finite(f float64) bool {
	return !gomath.IsNaN(f) && !gomath.IsInf(f, 0)
}
