// Package model provides the mesh and tint components attached to scene objects.
package model

import (
	"errors"

	"github.com/Faultbox/softraster/internal/engine/component"
	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/pkg/math"
)

// ErrInvalidMesh is returned for meshes with no vertices, no triangles, or
// triangle indices outside the vertex list.
var ErrInvalidMesh = errors.New("invalid mesh")

// Component tags.
const (
	MeshType component.Type = "Mesh"
	TintType component.Type = "Tint"
)

// Mesh is an indexed triangle mesh in object space.
// Triangles reference Vertices by 0-based index.
type Mesh struct {
	Name      string
	Vertices  []math.Vec3
	Triangles [][3]int
}

// ComponentType implements component.Component.
func (*Mesh) ComponentType() component.Type { return MeshType }

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the edge lengths of the box.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Tint is the flat color an object is drawn with.
type Tint struct {
	Color framebuffer.Color
}

// ComponentType implements component.Component.
func (*Tint) ComponentType() component.Type { return TintType }
