// Package framebuffer provides the software render target the rasterizer draws into.
package framebuffer

import (
	"encoding/binary"
	"image"
)

// Sink receives pixels from the rasterizer.
type Sink interface {
	SetPixel(x, y int, c Color)
}

// Framebuffer is a row-major buffer of packed pixels.
type Framebuffer struct {
	pixels []uint32
	width  int
	height int
	format PixelFormat
}

// New creates a framebuffer with the given dimensions, cleared to black.
func New(width, height int, format PixelFormat) *Framebuffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Framebuffer{
		pixels: make([]uint32, width*height),
		width:  width,
		height: height,
		format: format,
	}
}

// SetPixel writes a pixel. Coordinates outside the buffer are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	fb.pixels[y*fb.width+x] = fb.format.Pack(c)
}

// At returns the pixel at (x, y), or black outside the buffer.
func (fb *Framebuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return Black
	}
	return fb.format.Unpack(fb.pixels[y*fb.width+x])
}

// Clear resets every pixel to black.
func (fb *Framebuffer) Clear() {
	clear(fb.pixels)
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c Color) {
	v := fb.format.Pack(c)
	for i := range fb.pixels {
		fb.pixels[i] = v
	}
}

// Pixels returns the packed words. The slice aliases the buffer.
func (fb *Framebuffer) Pixels() []uint32 {
	return fb.pixels
}

// Format returns the buffer's pixel format.
func (fb *Framebuffer) Format() PixelFormat {
	return fb.format
}

// Pitch returns the length of one row of Bytes output.
func (fb *Framebuffer) Pitch() int {
	return fb.width * fb.format.BytesPerPixel()
}

// Bytes returns the pixels laid out for upload: R, G, B triples for
// RGB24Triples, little-endian words otherwise.
func (fb *Framebuffer) Bytes() []byte {
	bpp := fb.format.BytesPerPixel()
	out := make([]byte, len(fb.pixels)*bpp)
	for i, v := range fb.pixels {
		if bpp == 3 {
			c := fb.format.Unpack(v)
			out[i*3], out[i*3+1], out[i*3+2] = c.R, c.G, c.B
			continue
		}
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// Image copies the buffer into an opaque RGBA image.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.format.Unpack(fb.pixels[y*fb.width+x])
			off := img.PixOffset(x, y)
			img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3] = c.R, c.G, c.B, 255
		}
	}
	return img
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int) {
	return fb.width, fb.height
}

// Resize updates the framebuffer dimensions if they have changed.
// The contents are discarded.
func (fb *Framebuffer) Resize(width, height int) {
	if width == fb.width && height == fb.height {
		return
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	fb.width = width
	fb.height = height
	fb.pixels = make([]uint32, width*height)
}
