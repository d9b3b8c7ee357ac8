package renderer

import (
	"fmt"
	"strings"
)

// Mode selects how triangles are drawn.
type Mode int

const (
	// ModeFill rasterizes solid triangles.
	ModeFill Mode = iota
	// ModeWireframe draws triangle edges.
	ModeWireframe
	// ModePoints plots projected vertices only.
	ModePoints
)

var modeNames = []string{"fill", "wireframe", "points"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a config name to a mode.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown render mode %q (want %s)", s, strings.Join(modeNames, ", "))
}

// Winding selects which triangles count as front-facing in ModeFill.
type Winding int

const (
	// CounterClockwise treats triangles wound counter-clockwise as seen by
	// the camera as front faces. This is the OBJ convention.
	CounterClockwise Winding = iota
	// Clockwise treats clockwise triangles as front faces.
	Clockwise
	// BothFaces draws every triangle.
	BothFaces
)

var windingNames = []string{"ccw", "cw", "both"}

func (w Winding) String() string {
	if w >= 0 && int(w) < len(windingNames) {
		return windingNames[w]
	}
	return fmt.Sprintf("Winding(%d)", int(w))
}

// ParseWinding maps a config name to a winding.
func ParseWinding(s string) (Winding, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range windingNames {
		if name == s {
			return Winding(i), nil
		}
	}
	return 0, fmt.Errorf("unknown winding %q (want %s)", s, strings.Join(windingNames, ", "))
}
