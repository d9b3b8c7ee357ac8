package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func key(typ uint32, code sdl.Scancode, repeat uint8) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{Type: typ, Repeat: repeat, Keysym: sdl.Keysym{Scancode: code}}
}

func TestKeyTracking(t *testing.T) {
	in := New()
	in.handle(key(sdl.KEYDOWN, sdl.SCANCODE_LEFT, 0))
	in.handle(key(sdl.KEYDOWN, sdl.SCANCODE_B, 1))

	if !in.IsKeyPressed(sdl.SCANCODE_LEFT) {
		t.Error("LEFT should be pressed this frame")
	}
	if in.IsKeyPressed(sdl.SCANCODE_B) {
		t.Error("repeated key should not count as pressed")
	}
	if !in.IsKeyHeld(sdl.SCANCODE_LEFT) {
		t.Error("LEFT should be held")
	}

	in.handle(key(sdl.KEYUP, sdl.SCANCODE_LEFT, 0))
	if in.IsKeyHeld(sdl.SCANCODE_LEFT) {
		t.Error("LEFT should be released")
	}
}

func TestQuitAndResize(t *testing.T) {
	in := New()
	in.handle(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600})
	if w, h, ok := in.Resized(); !ok || w != 800 || h != 600 {
		t.Errorf("Resized() = (%d, %d, %v)", w, h, ok)
	}
	if !in.handle(&sdl.QuitEvent{}) {
		t.Error("quit event should request exit")
	}
	if got := in.Events()[len(in.Events())-1].Type; got != EventQuit {
		t.Errorf("last event = %v, want EventQuit", got)
	}
}

func TestMouseDown(t *testing.T) {
	in := New()
	in.handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 12, Y: 34})
	in.handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: 12, Y: 34})

	events := in.Events()
	if len(events) != 1 {
		t.Fatalf("expected only the button press, got %d events", len(events))
	}
	e := events[0]
	if e.Type != EventMouseDown || e.MouseX != 12 || e.MouseY != 34 || e.Button != sdl.BUTTON_LEFT {
		t.Errorf("unexpected event %+v", e)
	}
}
