// Package renderer rasterizes scenes into a software framebuffer.
package renderer

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/internal/logger"
)

// Stats describes the last rendered frame.
type Stats struct {
	Frame            uint64
	Objects          int // objects drawn
	ObjectsSkipped   int // objects without a mesh or with a singular transform
	Vertices         int // vertices projected
	Triangles        int // triangles drawn
	TrianglesCulled  int // back faces dropped
	TrianglesClipped int // triangles with a vertex behind the camera or outside the depth range
	Pixels           int // pixel writes
	Duration         time.Duration
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSink mirrors every pixel write to s in addition to the framebuffer.
func WithSink(s framebuffer.Sink) Option {
	return func(r *Renderer) { r.sink = s }
}

// WithFormat sets the framebuffer pixel format.
func WithFormat(f framebuffer.PixelFormat) Option {
	return func(r *Renderer) { r.format = f }
}

// WithMode sets the draw mode.
func WithMode(m Mode) Option {
	return func(r *Renderer) { r.mode = m }
}

// WithWinding sets which triangles are front faces.
func WithWinding(w Winding) Option {
	return func(r *Renderer) { r.winding = w }
}

// WithBackground sets the color Clear fills the buffer with.
func WithBackground(c framebuffer.Color) Option {
	return func(r *Renderer) { r.background = c }
}

// WithColor sets the color of objects that carry no tint.
func WithColor(c framebuffer.Color) Option {
	return func(r *Renderer) { r.color = c }
}

// WithLogger sets the logger used for frame diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) { r.log = l }
}

// Renderer owns the framebuffer and draws scenes into it.
// It is not safe for concurrent use.
type Renderer struct {
	fb   *framebuffer.Framebuffer
	sink framebuffer.Sink
	log  *zap.Logger

	format     framebuffer.PixelFormat
	mode       Mode
	winding    Winding
	background framebuffer.Color
	color      framebuffer.Color

	// Per-object vertex memo, reused between objects.
	memo  []projected
	stats Stats
}

// New creates a renderer with a width x height framebuffer.
func New(width, height int, opts ...Option) *Renderer {
	r := &Renderer{
		format: framebuffer.PackedU32LowBlueHighRed,
		color:  framebuffer.White,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.Named("renderer")
	}
	r.fb = framebuffer.New(width, height, r.format)
	r.Clear()
	return r
}

// Framebuffer returns the render target.
func (r *Renderer) Framebuffer() *framebuffer.Framebuffer {
	return r.fb
}

// Size returns the framebuffer dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.fb.Size()
}

// Resize changes the framebuffer dimensions and clears it.
func (r *Renderer) Resize(width, height int) {
	r.fb.Resize(width, height)
	r.Clear()
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Mode returns the draw mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// SetMode changes the draw mode for subsequent frames.
func (r *Renderer) SetMode(m Mode) {
	r.mode = m
}

// Stats returns the statistics of the last frame.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Clear fills the framebuffer with the background color. Custom sinks are
// not cleared.
func (r *Renderer) Clear() {
	r.fb.Fill(r.background)
}

func (r *Renderer) plot(x, y int, c framebuffer.Color) {
	w, h := r.fb.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.fb.SetPixel(x, y, c)
	if r.sink != nil {
		r.sink.SetPixel(x, y, c)
	}
	r.stats.Pixels++
}
