// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds framebuffer and rasterizer settings.
type GraphicsConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Mode        string `yaml:"mode"`         // fill, wireframe, points
	PixelFormat string `yaml:"pixel_format"` // xrgb, xbgr, rgb24
	Winding     string `yaml:"winding"`      // ccw, cw, both
	Background  string `yaml:"background"`   // #rrggbb
	Fullscreen  bool   `yaml:"fullscreen"`
	VSync       bool   `yaml:"vsync"`
	FPSLimit    int    `yaml:"fps_limit"`
}

// CameraConfig holds camera intrinsics and placement.
type CameraConfig struct {
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
	FOV  float64 `yaml:"fov"` // horizontal, degrees
	// AspectNum:AspectDen; zero means width:height.
	AspectNum float64    `yaml:"aspect_num"`
	AspectDen float64    `yaml:"aspect_den"`
	Position  [3]float64 `yaml:"position"`
	LookAt    [3]float64 `yaml:"look_at"`
}

// SceneConfig lists the objects to render.
type SceneConfig struct {
	Objects []ObjectConfig `yaml:"objects"`
}

// ObjectConfig describes one scene object. Model, when set, is an OBJ
// file and takes priority over Shape.
type ObjectConfig struct {
	Name     string     `yaml:"name"`
	Shape    string     `yaml:"shape"` // cube, triangle
	Model    string     `yaml:"model"`
	Color    string     `yaml:"color"`
	Position [3]float64 `yaml:"position"`
	Rotation [3]float64 `yaml:"rotation"` // degrees
	Scale    [3]float64 `yaml:"scale"`    // zero means 1
	Spin     [3]float64 `yaml:"spin"`     // degrees per frame
}

// OutputConfig holds headless frame output settings.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"` // png, bmp
	Frames int    `yaml:"frames"`
	Bounds bool   `yaml:"bounds"` // draw bounding boxes
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:       640,
			Height:      480,
			Mode:        "fill",
			PixelFormat: "xrgb",
			Winding:     "ccw",
			Background:  "#101018",
			VSync:       true,
		},
		Camera: CameraConfig{
			Near:     0.1,
			Far:      100,
			FOV:      90,
			Position: [3]float64{0, 0, -5},
		},
		Scene: SceneConfig{
			Objects: []ObjectConfig{{
				Name:  "cube",
				Shape: "cube",
				Color: "#e0a040",
				Spin:  [3]float64{1, 2, 0},
			}},
		},
		Output: OutputConfig{
			Dir:    "frames",
			Prefix: "frame",
			Format: "png",
			Frames: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Aspect returns the camera aspect ratio as numerator and denominator.
func (c *Config) Aspect() (num, den float64) {
	if c.Camera.AspectNum > 0 && c.Camera.AspectDen > 0 {
		return c.Camera.AspectNum, c.Camera.AspectDen
	}
	return float64(c.Graphics.Width), float64(c.Graphics.Height)
}
