package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagWidth   = flag.Int("width", 0, "Framebuffer width")
	flagHeight  = flag.Int("height", 0, "Framebuffer height")
	flagMode    = flag.String("mode", "", "Render mode: fill, wireframe or points")
	flagWinding = flag.String("winding", "", "Front face winding: ccw, cw or both")
	flagFormat  = flag.String("format", "", "Output image format: png or bmp")
	flagFrames  = flag.Int("frames", -1, "Number of frames to render")
	flagOut     = flag.String("out", "", "Output directory for frames")
	flagModel   = flag.String("model", "", "OBJ file to render instead of the configured scene")
	flagBounds  = flag.Bool("bounds", false, "Draw object bounding boxes")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagMode != "" {
		cfg.Graphics.Mode = *flagMode
	}
	if *flagWinding != "" {
		cfg.Graphics.Winding = *flagWinding
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagFrames >= 0 {
		cfg.Output.Frames = *flagFrames
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagBounds {
		cfg.Output.Bounds = true
	}
	if *flagModel != "" {
		cfg.Scene.Objects = []ObjectConfig{{
			Name:  "model",
			Model: *flagModel,
			Spin:  [3]float64{0, 1, 0},
		}}
	}
}
