package renderer

import (
	gomath "math"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/pkg/math"
)

// Point is a pixel coordinate with y growing downward.
type Point struct {
	X, Y int
}

// NDCToPixel maps normalized device coordinates to pixel coordinates.
// [-1, 1] spans the buffer left to right and top to bottom; ndc 1 on x and
// -1 on y land on the last column and row. Points outside the unit square
// map outside the buffer.
func (r *Renderer) NDCToPixel(ndc math.Vec3) Point {
	w, h := r.fb.Size()
	return Point{
		X: toPixel((ndc.X+1)/2, w),
		Y: toPixel((1-ndc.Y)/2, h),
	}
}

func toPixel(t float64, n int) int {
	if t == 1 {
		return n - 1
	}
	return int(gomath.Floor(t * float64(n)))
}

// DrawLine draws a line from a to b inclusive with integer Bresenham.
// Pixels outside the buffer are skipped.
func (r *Renderer) DrawLine(a, b Point, c framebuffer.Color) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		r.plot(x, y, c)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x == b.X {
				return
			}
			err += dy
			x += sx
		}
		if e2 <= dx {
			if y == b.Y {
				return
			}
			err += dx
			y += sy
		}
	}
}

// FillTriangle fills every pixel whose edge functions against a->b, b->c and
// c->a are all non-negative. Pixels on an edge are inside. With y growing
// downward this accepts triangles that appear clockwise on screen; the
// opposite winding fills nothing.
func (r *Renderer) FillTriangle(a, b, c Point, col framebuffer.Color) {
	w, h := r.fb.Size()
	minX := max(min(a.X, b.X, c.X), 0)
	minY := max(min(a.Y, b.Y, c.Y), 0)
	maxX := min(max(a.X, b.X, c.X), w-1)
	maxY := min(max(a.Y, b.Y, c.Y), h-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := Point{x, y}
			if edge(a, b, p) >= 0 && edge(b, c, p) >= 0 && edge(c, a, p) >= 0 {
				r.plot(x, y, col)
			}
		}
	}
}

// edge is the edge function of p against the directed edge e0->e1.
func edge(e0, e1, p Point) int {
	return (p.Y-e0.Y)*(e1.X-e0.X) - (p.X-e0.X)*(e1.Y-e0.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
