package framebuffer

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
	Red   = Color{R: 255}
	Green = Color{G: 255}
	Blue  = Color{B: 255}
)

// NewColor builds a color from integer channels. A channel outside
// [0, 255] becomes 0.
func NewColor(r, g, b int) Color {
	return Color{R: channel(r), G: channel(g), B: channel(b)}
}

func channel(v int) uint8 {
	if v < 0 || v > 255 {
		return 0
	}
	return uint8(v)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// ParseColor parses "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b uint8
	if len(s) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

// String returns the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// PixelFormat selects how a color is laid out in the buffer.
type PixelFormat int

const (
	// PackedU32LowBlueHighRed packs 0x00RRGGBB, blue in the low byte.
	PackedU32LowBlueHighRed PixelFormat = iota
	// PackedU32LowRedHighBlue packs 0x00BBGGRR, red in the low byte.
	PackedU32LowRedHighBlue
	// RGB24Triples stores R, G, B bytes per pixel.
	RGB24Triples
)

var formatNames = map[PixelFormat]string{
	PackedU32LowBlueHighRed: "xrgb",
	PackedU32LowRedHighBlue: "xbgr",
	RGB24Triples:            "rgb24",
}

func (f PixelFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// ParsePixelFormat maps a config name to a format.
func ParsePixelFormat(s string) (PixelFormat, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown pixel format %q (want xrgb, xbgr or rgb24)", s)
}

// BytesPerPixel is the size of one pixel in Bytes output.
func (f PixelFormat) BytesPerPixel() int {
	if f == RGB24Triples {
		return 3
	}
	return 4
}

// Pack encodes a color into a 32-bit word. RGB24Triples uses the
// low-blue layout.
func (f PixelFormat) Pack(c Color) uint32 {
	if f == PackedU32LowRedHighBlue {
		return uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
	}
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack decodes a word produced by Pack.
func (f PixelFormat) Unpack(v uint32) Color {
	hi, mid, lo := uint8(v>>16), uint8(v>>8), uint8(v)
	if f == PackedU32LowRedHighBlue {
		return Color{R: lo, G: mid, B: hi}
	}
	return Color{R: hi, G: mid, B: lo}
}
