package renderer

import (
	"fmt"
	gomath "math"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/internal/engine/model"
	"github.com/Faultbox/softraster/internal/engine/scene"
	"github.com/Faultbox/softraster/pkg/math"
)

// guardBand bounds |ndc.x| and |ndc.y| of usable vertices. Vertices close
// to the camera plane project arbitrarily far and are dropped instead.
const guardBand = 16

// projected is the memoized screen position of one vertex.
type projected struct {
	done    bool
	visible bool
	pt      Point
}

// Render draws every object of s in order into the framebuffer and returns
// it. The buffer is not cleared first.
//
// A singular camera transform reuses its last good view matrix. Objects
// whose transform is singular are skipped. Both cases are reported in the
// returned error while the rest of the frame is still drawn.
func (r *Renderer) Render(s *scene.Scene) (*framebuffer.Framebuffer, error) {
	start := time.Now()
	r.stats = Stats{Frame: r.stats.Frame + 1}

	var errs error
	view, err := s.Camera.ViewMatrix()
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("camera: %w", err))
		r.log.Warn("camera transform not invertible, reusing previous view", zap.Error(err))
	}

	for _, obj := range s.Objects() {
		mesh, ok := obj.Mesh()
		if !ok {
			r.stats.ObjectsSkipped++
			continue
		}
		if _, err := obj.Transform.InverseMatrix(); err != nil {
			r.stats.ObjectsSkipped++
			errs = multierr.Append(errs, fmt.Errorf("object %q: %w", obj.Name, err))
			r.log.Warn("skipping object with singular transform",
				zap.String("object", obj.Name),
				zap.Error(err),
			)
			continue
		}

		col := r.color
		if tint, ok := obj.Tint(); ok {
			col = tint.Color
		}
		r.drawMesh(s, mesh, obj.Transform.Matrix().Mul(view), col)
		r.stats.Objects++
	}

	r.stats.Duration = time.Since(start)
	r.log.Debug("frame rendered",
		zap.Uint64("frame", r.stats.Frame),
		zap.Int("objects", r.stats.Objects),
		zap.Int("skipped", r.stats.ObjectsSkipped),
		zap.Int("triangles", r.stats.Triangles),
		zap.Int("culled", r.stats.TrianglesCulled),
		zap.Int("clipped", r.stats.TrianglesClipped),
		zap.Duration("took", r.stats.Duration),
	)
	return r.fb, errs
}

func (r *Renderer) drawMesh(s *scene.Scene, mesh *model.Mesh, toCamera math.Mat4, col framebuffer.Color) {
	r.resetMemo(len(mesh.Vertices))
	project := func(i int) projected {
		p := &r.memo[i]
		if !p.done {
			*p = r.project(s, toCamera.TransformPoint(mesh.Vertices[i]))
			r.stats.Vertices++
		}
		return *p
	}

	if r.mode == ModePoints {
		for i := range mesh.Vertices {
			if p := project(i); p.visible {
				r.plot(p.pt.X, p.pt.Y, col)
			}
		}
		return
	}

	for _, tri := range mesh.Triangles {
		p0, p1, p2 := project(tri[0]), project(tri[1]), project(tri[2])
		if !p0.visible || !p1.visible || !p2.visible {
			r.stats.TrianglesClipped++
			continue
		}
		a, b, c := p0.pt, p1.pt, p2.pt

		if r.mode == ModeWireframe {
			r.DrawLine(a, b, col)
			r.DrawLine(b, c, col)
			r.DrawLine(c, a, col)
			r.stats.Triangles++
			continue
		}

		// The screen y flip turns counter-clockwise into the winding
		// FillTriangle accepts only after swapping two vertices.
		if r.winding == CounterClockwise {
			b, c = c, b
		}
		if edge(a, b, c) < 0 {
			if r.winding != BothFaces {
				r.stats.TrianglesCulled++
				continue
			}
			b, c = c, b
		}
		r.FillTriangle(a, b, c, col)
		r.stats.Triangles++
	}
}

func (r *Renderer) resetMemo(n int) {
	if cap(r.memo) < n {
		r.memo = make([]projected, n)
		return
	}
	r.memo = r.memo[:n]
	clear(r.memo)
}

// project maps a camera-space point to the screen.
func (r *Renderer) project(s *scene.Scene, p math.Vec3) projected {
	ndc, w := s.Camera.ProjectToScreenSpace(p)
	// Written positively so NaN fails every test.
	if !(w > 0) || !(ndc.Z >= 0 && ndc.Z <= 1) {
		return projected{done: true}
	}
	if !(gomath.Abs(ndc.X) <= guardBand) || !(gomath.Abs(ndc.Y) <= guardBand) {
		return projected{done: true}
	}
	return projected{done: true, visible: true, pt: r.NDCToPixel(ndc)}
}
