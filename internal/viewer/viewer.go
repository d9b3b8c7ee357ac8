// Package viewer runs the interactive SDL2 frame loop.
package viewer

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/softraster/internal/app"
	"github.com/Faultbox/softraster/internal/engine/debug"
	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/internal/engine/input"
	"github.com/Faultbox/softraster/internal/engine/picking"
	"github.com/Faultbox/softraster/internal/engine/renderer"
	"github.com/Faultbox/softraster/internal/engine/window"
	"github.com/Faultbox/softraster/internal/logger"
	"github.com/Faultbox/softraster/pkg/math"
)

// orbitStep is the camera orbit per frame while an arrow key is held.
const orbitStep = 2 * gomath.Pi / 180

var boundsColor = framebuffer.NewColor(0, 255, 128)

// Config holds viewer configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	FPSLimit   int
	Bounds     bool
}

// Viewer presents a spinning scene in a window.
type Viewer struct {
	config   Config
	running  bool
	paused   bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	world    *app.World
	capture  *debug.ScreenshotCapture
	fps      fpsCounter
}

// New opens the window. The renderer and world are owned by the caller and
// must outlive the viewer.
func New(cfg Config, r *renderer.Renderer, w *app.World, capture *debug.ScreenshotCapture) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)

	v := &Viewer{
		config:   cfg,
		renderer: r,
		world:    w,
		capture:  capture,
		input:    input.New(),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	return v, nil
}

// Run starts the main loop and returns when the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	var frameBudget time.Duration
	if v.config.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(v.config.FPSLimit)
	}

	logger.Info("starting viewer loop")
	for v.running {
		start := time.Now()

		// 1. Process input
		if v.input.Update() {
			// Quit event received
			v.running = false
			break
		}
		v.handleInput()

		// 2. Render
		v.renderer.Clear()
		fb, err := v.renderer.Render(v.world.Scene)
		if err != nil {
			// Already logged per object; the frame is still usable.
			logger.Debug("frame rendered with errors", zap.Error(err))
		}
		if v.config.Bounds {
			if _, err := debug.DrawBounds(v.renderer, v.world.Scene, boundsColor); err != nil {
				logger.Debug("bounds drawn with errors", zap.Error(err))
			}
		}

		// 3. Present
		if err := v.window.Present(fb); err != nil {
			return fmt.Errorf("present error: %w", err)
		}

		// 4. Animate
		if !v.paused {
			v.world.Step()
		}

		if v.fps.tick(time.Since(start)) {
			v.window.SetTitle(fmt.Sprintf("%s - %.0f fps", v.config.Title, v.fps.last))
		}
		if frameBudget > 0 {
			if spare := frameBudget - time.Since(start); spare > 0 {
				sdl.Delay(uint32(spare.Milliseconds()))
			}
		}
	}
	return nil
}

func (v *Viewer) handleInput() {
	for _, event := range v.input.Events() {
		if event.Type == input.EventMouseDown && event.Button == sdl.BUTTON_LEFT {
			v.pick(event.MouseX, event.MouseY)
			continue
		}
		if event.Type != input.EventKeyDown || event.Repeat {
			continue
		}
		switch event.Key {
		case sdl.SCANCODE_ESCAPE:
			v.running = false
		case sdl.SCANCODE_1:
			v.setMode(renderer.ModeFill)
		case sdl.SCANCODE_2:
			v.setMode(renderer.ModeWireframe)
		case sdl.SCANCODE_3:
			v.setMode(renderer.ModePoints)
		case sdl.SCANCODE_B:
			v.config.Bounds = !v.config.Bounds
		case sdl.SCANCODE_P:
			v.paused = !v.paused
		case sdl.SCANCODE_SPACE:
			st := v.renderer.Stats()
			logger.Info("frame stats",
				zap.Float64("fps", v.fps.last),
				zap.Duration("frame_time", st.Duration),
				zap.Int("triangles", st.Triangles),
				zap.Int("culled", st.TrianglesCulled),
				zap.Int("pixels", st.Pixels),
			)
		}
	}

	if v.input.IsKeyPressed(sdl.SCANCODE_F12) {
		v.screenshot()
	}
	if w, h, ok := v.input.Resized(); ok {
		v.resize(w, h)
	}

	if v.input.IsKeyHeld(sdl.SCANCODE_LEFT) {
		v.orbit(-orbitStep)
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_RIGHT) {
		v.orbit(orbitStep)
	}
}

// resize matches the framebuffer and camera aspect to the window.
func (v *Viewer) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.renderer.Resize(width, height)
	if err := v.world.Scene.Camera.SetAspectRatio(float64(width), float64(height)); err != nil {
		logger.Warn("keeping camera aspect ratio", zap.Error(err))
	}
	logger.Info("window resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

func (v *Viewer) setMode(m renderer.Mode) {
	v.renderer.SetMode(m)
	logger.Info("render mode changed", zap.Stringer("mode", m))
}

// orbit swings the camera around the world origin on the XZ plane.
func (v *Viewer) orbit(angle float64) {
	cam := v.world.Scene.Camera
	pos := cam.Transform.Position()
	sin, cos := gomath.Sincos(angle)
	cam.Transform.SetPosition(math.Vec3{
		X: pos.X*cos + pos.Z*sin,
		Y: pos.Y,
		Z: -pos.X*sin + pos.Z*cos,
	})
	cam.LookAt(math.Vec3{})
}

// pick logs the object under a window pixel.
func (v *Viewer) pick(x, y int) {
	winW, winH := v.window.GetSize()
	ray := picking.ScreenToRay(v.world.Scene.Camera, x, y, winW, winH)
	hit, ok := picking.Pick(v.world.Scene, ray)
	if !ok {
		logger.Info("nothing picked", zap.Int("x", x), zap.Int("y", y))
		return
	}
	logger.Info("object picked",
		zap.String("object", hit.Object.Name),
		zap.Float64("distance", hit.Distance),
		zap.Float64s("point", []float64{hit.Point.X, hit.Point.Y, hit.Point.Z}),
	)
}

func (v *Viewer) screenshot() {
	if v.capture == nil {
		return
	}
	path, err := v.capture.CaptureFromImage(v.renderer.Framebuffer().Image())
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")
	if v.window != nil {
		v.window.Close()
	}
}
