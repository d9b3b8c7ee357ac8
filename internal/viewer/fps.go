package viewer

import "time"

// fpsCounter averages frame rate over one-second windows.
type fpsCounter struct {
	frames  int
	elapsed time.Duration
	last    float64
}

// tick records one frame taking dt and reports whether a new average is
// available in last.
func (f *fpsCounter) tick(dt time.Duration) bool {
	f.frames++
	f.elapsed += dt
	if f.elapsed < time.Second {
		return false
	}
	f.last = float64(f.frames) / f.elapsed.Seconds()
	f.frames = 0
	f.elapsed = 0
	return true
}
