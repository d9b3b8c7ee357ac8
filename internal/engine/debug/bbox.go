package debug

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/internal/engine/model"
	"github.com/Faultbox/softraster/internal/engine/renderer"
	"github.com/Faultbox/softraster/internal/engine/scene"
	"github.com/Faultbox/softraster/pkg/math"
)

// DefaultBBoxPadding is the default padding for bounding box overlays.
const DefaultBBoxPadding = 0.05

const maxNDC = 16

// bboxEdges lists the 12 edges of a box as corner index pairs. Corner i
// takes max on X when bit 0 is set, on Y for bit 1 and on Z for bit 2.
var bboxEdges = [12][2]int{
	// Bottom face
	{0, 1}, {1, 5}, {5, 4}, {4, 0},
	// Top face
	{2, 3}, {3, 7}, {7, 6}, {6, 2},
	// Vertical edges
	{0, 2}, {1, 3}, {5, 7}, {4, 6},
}

// BBoxCorners returns the 8 corners of b grown by padding on all sides.
func BBoxCorners(b model.Bounds, padding float64) [8]math.Vec3 {
	lo := b.Min.Sub(math.V3(padding, padding, padding))
	hi := b.Max.Add(math.V3(padding, padding, padding))
	var out [8]math.Vec3
	for i := range out {
		out[i] = lo
		if i&1 != 0 {
			out[i].X = hi.X
		}
		if i&2 != 0 {
			out[i].Y = hi.Y
		}
		if i&4 != 0 {
			out[i].Z = hi.Z
		}
	}
	return out
}

// DrawBounds draws the object-space bounding box of every mesh in s as a
// wireframe. Edges with an endpoint behind the camera or far off screen
// are skipped.
// It returns the number of edges drawn. A singular camera transform falls
// back to its last good view and is reported in the error.
func DrawBounds(r *renderer.Renderer, s *scene.Scene, col framebuffer.Color) (int, error) {
	view, err := s.Camera.ViewMatrix()
	if err != nil {
		err = fmt.Errorf("camera: %w", err)
	}
	drawn := 0
	for _, obj := range s.Objects() {
		mesh, ok := obj.Mesh()
		if !ok {
			continue
		}
		toCamera := obj.Transform.Matrix().Mul(view)

		var pts [8]renderer.Point
		var visible [8]bool
		for i, c := range BBoxCorners(mesh.Bounds(), DefaultBBoxPadding) {
			ndc, w := s.Camera.ProjectToScreenSpace(toCamera.TransformPoint(c))
			if !(w > 0) || !(gomath.Abs(ndc.X) <= maxNDC) || !(gomath.Abs(ndc.Y) <= maxNDC) {
				continue
			}
			pts[i], visible[i] = r.NDCToPixel(ndc), true
		}
		for _, e := range bboxEdges {
			if visible[e[0]] && visible[e[1]] {
				r.DrawLine(pts[e[0]], pts[e[1]], col)
				drawn++
			}
		}
	}
	return drawn, err
}
