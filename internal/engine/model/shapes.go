package model

import "github.com/Faultbox/softraster/pkg/math"

// Triangle returns a single triangle in the XY plane, facing -Z, spanning
// [-1, 1] on both axes.
func Triangle() *Mesh {
	return &Mesh{
		Name: "triangle",
		Vertices: []math.Vec3{
			{X: -1, Y: -1},
			{X: 0, Y: 1},
			{X: 1, Y: -1},
		},
		Triangles: [][3]int{{0, 1, 2}},
	}
}

// Cube returns a cube of the given half-extent centred on the origin.
// Faces are wound counter-clockwise when seen from outside.
func Cube(half float64) *Mesh {
	v := func(x, y, z float64) math.Vec3 {
		return math.Vec3{X: x * half, Y: y * half, Z: z * half}
	}
	return &Mesh{
		Name: "cube",
		Vertices: []math.Vec3{
			v(-1, -1, -1), v(1, -1, -1), v(1, 1, -1), v(-1, 1, -1),
			v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1),
		},
		Triangles: [][3]int{
			{0, 3, 2}, {0, 2, 1}, // -Z
			{4, 5, 6}, {4, 6, 7}, // +Z
			{0, 4, 7}, {0, 7, 3}, // -X
			{1, 2, 6}, {1, 6, 5}, // +X
			{0, 1, 5}, {0, 5, 4}, // -Y
			{3, 7, 6}, {3, 6, 2}, // +Y
		},
	}
}
