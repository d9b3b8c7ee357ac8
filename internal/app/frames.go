package app

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/softraster/internal/engine/debug"
	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/internal/engine/renderer"
	"github.com/Faultbox/softraster/internal/logger"
)

// FrameOptions controls a headless render.
type FrameOptions struct {
	Frames  int
	Bounds  bool
	Capture *debug.ScreenshotCapture
	// OnFrame, if set, is called after each frame is written.
	OnFrame func(n int, path string)
}

// boundsColor is the overlay color of bounding boxes.
var boundsColor = framebuffer.NewColor(0, 255, 128)

// RenderFrames renders opts.Frames frames of w, writing each through
// opts.Capture, and returns the written paths. Render errors are non-fatal
// and are returned together once all frames are done; a capture failure or
// a cancelled ctx stops the loop.
func RenderFrames(ctx context.Context, r *renderer.Renderer, w *World, opts FrameOptions) ([]string, error) {
	var (
		paths     []string
		renderErr error
	)
	for n := 0; n < opts.Frames; n++ {
		if err := ctx.Err(); err != nil {
			return paths, multierr.Append(renderErr, err)
		}

		r.Clear()
		fb, err := r.Render(w.Scene)
		if err != nil {
			renderErr = multierr.Append(renderErr, fmt.Errorf("frame %d: %w", n, err))
		}
		if opts.Bounds {
			if _, err := debug.DrawBounds(r, w.Scene, boundsColor); err != nil {
				renderErr = multierr.Append(renderErr, fmt.Errorf("frame %d bounds: %w", n, err))
			}
		}

		if opts.Capture != nil {
			path, err := opts.Capture.CaptureFrame(fb.Image(), n)
			if err != nil {
				return paths, multierr.Append(renderErr, fmt.Errorf("writing frame %d: %w", n, err))
			}
			paths = append(paths, path)
			if opts.OnFrame != nil {
				opts.OnFrame(n, path)
			}
		} else if opts.OnFrame != nil {
			opts.OnFrame(n, "")
		}

		st := r.Stats()
		logger.Debug("frame done",
			zap.Int("frame", n),
			zap.Int("triangles", st.Triangles),
			zap.Int("pixels", st.Pixels),
			zap.Duration("took", st.Duration),
		)
		w.Step()
	}
	return paths, renderErr
}
