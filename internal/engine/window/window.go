// Package window presents software framebuffers in an SDL2 window.
package window

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/internal/logger"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps an SDL2 window and the streaming texture frames are
// uploaded to.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	renderer  *sdl.Renderer

	texture       *sdl.Texture
	textureFormat framebuffer.PixelFormat
	textureW      int
	textureH      int
}

// TextureFormat maps a framebuffer pixel format to its SDL equivalent.
func TextureFormat(f framebuffer.PixelFormat) (uint32, error) {
	switch f {
	case framebuffer.PackedU32LowBlueHighRed:
		return sdl.PIXELFORMAT_RGB888, nil
	case framebuffer.PackedU32LowRedHighBlue:
		return sdl.PIXELFORMAT_BGR888, nil
	case framebuffer.RGB24Triples:
		return sdl.PIXELFORMAT_RGB24, nil
	default:
		return 0, fmt.Errorf("no SDL texture format for %v", f)
	}
}

// New creates a window with an accelerated 2D renderer.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
	}

	// Initialize SDL2
	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Keep frame pixels sharp when the window is scaled
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rendererFlags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.sdlWindow, -1, rendererFlags)
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Present uploads fb into the streaming texture and shows it scaled to the
// window. The texture is recreated when the frame size or format changes.
func (w *Window) Present(fb *framebuffer.Framebuffer) error {
	width, height := fb.Size()
	if err := w.ensureTexture(fb.Format(), width, height); err != nil {
		return err
	}

	var err error
	if fb.Format() == framebuffer.RGB24Triples {
		pix := fb.Bytes()
		err = w.texture.Update(nil, unsafe.Pointer(&pix[0]), fb.Pitch())
	} else {
		pix := fb.Pixels()
		err = w.texture.Update(nil, unsafe.Pointer(&pix[0]), fb.Pitch())
	}
	if err != nil {
		return fmt.Errorf("updating texture: %w", err)
	}

	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("copying texture: %w", err)
	}
	w.renderer.Present()
	return nil
}

func (w *Window) ensureTexture(format framebuffer.PixelFormat, width, height int) error {
	if w.texture != nil && w.textureFormat == format && w.textureW == width && w.textureH == height {
		return nil
	}
	sdlFormat, err := TextureFormat(format)
	if err != nil {
		return err
	}
	if w.texture != nil {
		w.texture.Destroy()
		w.texture = nil
	}

	w.texture, err = w.renderer.CreateTexture(sdlFormat, sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		return fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}
	w.textureFormat, w.textureW, w.textureH = format, width, height

	logger.Debug("streaming texture created",
		zap.Stringer("format", format),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// GetSize returns the current window size.
func (w *Window) GetSize() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
