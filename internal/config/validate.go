package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/softraster/internal/engine/camera"
	"github.com/Faultbox/softraster/internal/engine/debug"
	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/internal/engine/renderer"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs error
	if c.Graphics.Width < 1 || c.Graphics.Height < 1 {
		errs = multierr.Append(errs, fmt.Errorf("graphics: size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if _, err := renderer.ParseMode(c.Graphics.Mode); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("graphics: %w", err))
	}
	if _, err := renderer.ParseWinding(c.Graphics.Winding); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("graphics: %w", err))
	}
	if _, err := framebuffer.ParsePixelFormat(c.Graphics.PixelFormat); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("graphics: %w", err))
	}
	if _, err := framebuffer.ParseColor(c.Graphics.Background); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("graphics: background: %w", err))
	}

	num, den := c.Aspect()
	if _, err := camera.New(c.Camera.Near, c.Camera.Far, c.Camera.FOV, num, den); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("camera: %w", err))
	}

	for i, obj := range c.Scene.Objects {
		if obj.Model == "" && obj.Shape != "cube" && obj.Shape != "triangle" {
			errs = multierr.Append(errs, fmt.Errorf("scene: object %d: unknown shape %q", i, obj.Shape))
		}
		if obj.Color != "" {
			if _, err := framebuffer.ParseColor(obj.Color); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("scene: object %d: %w", i, err))
			}
		}
	}

	if _, err := debug.ParseImageFormat(c.Output.Format); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("output: %w", err))
	}
	if c.Output.Frames < 0 {
		errs = multierr.Append(errs, fmt.Errorf("output: frames %d must not be negative", c.Output.Frames))
	}
	return errs
}
