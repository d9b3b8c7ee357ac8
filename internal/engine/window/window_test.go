package window

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/softraster/internal/engine/framebuffer"
)

func TestTextureFormat(t *testing.T) {
	tests := []struct {
		format framebuffer.PixelFormat
		want   uint32
	}{
		{framebuffer.PackedU32LowBlueHighRed, sdl.PIXELFORMAT_RGB888},
		{framebuffer.PackedU32LowRedHighBlue, sdl.PIXELFORMAT_BGR888},
		{framebuffer.RGB24Triples, sdl.PIXELFORMAT_RGB24},
	}
	for _, tt := range tests {
		got, err := TextureFormat(tt.format)
		if err != nil {
			t.Fatalf("TextureFormat(%v): %v", tt.format, err)
		}
		if got != tt.want {
			t.Errorf("TextureFormat(%v) = %#x, want %#x", tt.format, got, tt.want)
		}
	}
	if _, err := TextureFormat(framebuffer.PixelFormat(42)); err == nil {
		t.Error("unknown pixel format should fail")
	}
}
