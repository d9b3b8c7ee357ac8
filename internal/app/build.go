// Package app assembles renderers and scenes from configuration and drives
// frame loops.
package app

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/softraster/internal/config"
	"github.com/Faultbox/softraster/internal/engine/camera"
	"github.com/Faultbox/softraster/internal/engine/framebuffer"
	"github.com/Faultbox/softraster/internal/engine/model"
	"github.com/Faultbox/softraster/internal/engine/renderer"
	"github.com/Faultbox/softraster/internal/engine/scene"
	"github.com/Faultbox/softraster/internal/logger"
	"github.com/Faultbox/softraster/pkg/math"
)

// defaultTint is used for objects whose config names no color.
var defaultTint = framebuffer.NewColor(224, 224, 224)

// Spin rotates one object by a fixed Euler step (radians) each frame.
type Spin struct {
	Object  *scene.Object
	X, Y, Z float64
}

// World is a scene plus the per-frame animation applied to it.
type World struct {
	Scene *scene.Scene
	Spins []Spin
}

// Step advances every spinning object by one frame.
func (w *World) Step() {
	for _, s := range w.Spins {
		s.Object.Transform.Rotate(s.X, s.Y, s.Z)
	}
}

// NewRenderer creates a renderer from the graphics section of cfg.
func NewRenderer(cfg *config.Config, opts ...renderer.Option) (*renderer.Renderer, error) {
	mode, err := renderer.ParseMode(cfg.Graphics.Mode)
	if err != nil {
		return nil, err
	}
	winding, err := renderer.ParseWinding(cfg.Graphics.Winding)
	if err != nil {
		return nil, err
	}
	format, err := framebuffer.ParsePixelFormat(cfg.Graphics.PixelFormat)
	if err != nil {
		return nil, err
	}
	bg, err := framebuffer.ParseColor(cfg.Graphics.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	base := []renderer.Option{
		renderer.WithMode(mode),
		renderer.WithWinding(winding),
		renderer.WithFormat(format),
		renderer.WithBackground(bg),
		renderer.WithColor(defaultTint),
	}
	return renderer.New(cfg.Graphics.Width, cfg.Graphics.Height, append(base, opts...)...), nil
}

// NewCamera creates the camera described by cfg.
func NewCamera(cfg *config.Config) (*camera.Camera, error) {
	num, den := cfg.Aspect()
	cam, err := camera.New(cfg.Camera.Near, cfg.Camera.Far, cfg.Camera.FOV, num, den)
	if err != nil {
		return nil, err
	}
	cam.Transform.SetPosition(vec(cfg.Camera.Position))
	cam.LookAt(vec(cfg.Camera.LookAt))
	return cam, nil
}

// Build creates the camera and every configured object. OBJ files named by
// more than one object are loaded once and share a mesh.
func Build(cfg *config.Config) (*World, error) {
	cam, err := NewCamera(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating camera: %w", err)
	}

	w := &World{Scene: scene.New(cam)}
	meshes := make(map[string]*model.Mesh)
	for i, oc := range cfg.Scene.Objects {
		obj, err := buildObject(oc, i, meshes)
		if err != nil {
			return nil, err
		}
		w.Scene.Add(obj)
		if oc.Spin != ([3]float64{}) {
			w.Spins = append(w.Spins, Spin{
				Object: obj,
				X:      radians(oc.Spin[0]),
				Y:      radians(oc.Spin[1]),
				Z:      radians(oc.Spin[2]),
			})
		}
	}

	logger.Info("scene built",
		zap.Int("objects", w.Scene.Len()),
		zap.Int("spinning", len(w.Spins)),
		zap.Int("meshes_loaded", len(meshes)),
	)
	return w, nil
}

func buildObject(oc config.ObjectConfig, i int, meshes map[string]*model.Mesh) (*scene.Object, error) {
	name := oc.Name
	if name == "" {
		name = fmt.Sprintf("object%d", i)
	}

	var mesh *model.Mesh
	switch {
	case oc.Model != "":
		mesh = meshes[oc.Model]
		if mesh == nil {
			var err error
			if mesh, err = model.LoadOBJ(oc.Model); err != nil {
				return nil, fmt.Errorf("object %q: %w", name, err)
			}
			meshes[oc.Model] = mesh
			logger.Debug("mesh loaded",
				zap.String("path", oc.Model),
				zap.Int("vertices", len(mesh.Vertices)),
				zap.Int("triangles", len(mesh.Triangles)),
			)
		}
	case oc.Shape == "cube":
		mesh = model.Cube(1)
	case oc.Shape == "triangle":
		mesh = model.Triangle()
	default:
		return nil, fmt.Errorf("object %q: unknown shape %q", name, oc.Shape)
	}

	tint := model.Tint{Color: defaultTint}
	if oc.Color != "" {
		c, err := framebuffer.ParseColor(oc.Color)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", name, err)
		}
		tint.Color = c
	}

	obj := scene.NewMeshObject(name, mesh, tint)
	if oc.Scale != ([3]float64{}) {
		obj.Transform.SetScale(vec(oc.Scale))
	}
	if oc.Rotation != ([3]float64{}) {
		obj.Transform.Rotate(radians(oc.Rotation[0]), radians(oc.Rotation[1]), radians(oc.Rotation[2]))
	}
	obj.Transform.SetPosition(vec(oc.Position))
	return obj, nil
}

func vec(v [3]float64) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func radians(deg float64) float64 {
	return deg * gomath.Pi / 180
}
