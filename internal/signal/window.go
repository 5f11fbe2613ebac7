package signal

import "vitals_monitor/internal/models"

// DefaultWindowSize matches the dashboard chart: 80 retained points plus the newest.
const DefaultWindowSize = 81

// Window is a fixed-capacity FIFO of the most recent samples.
// It is not safe for concurrent use; callers hold their own lock.
type Window struct {
	buf   []models.Sample
	start int // index of the oldest sample
	n     int
}

// NewWindow returns an empty window. Sizes below 1 fall back to DefaultWindowSize.
func NewWindow(size int) *Window {
	if size < 1 {
		size = DefaultWindowSize
	}
	return &Window{buf: make([]models.Sample, size)}
}

// Cap returns the fixed capacity.
func (w *Window) Cap() int { return len(w.buf) }

// Len returns the number of retained samples.
func (w *Window) Len() int { return w.n }

// Push appends s, evicting the oldest sample when full.
// It reports whether an eviction happened.
func (w *Window) Push(s models.Sample) bool {
	if w.n < len(w.buf) {
		w.buf[(w.start+w.n)%len(w.buf)] = s
		w.n++
		return false
	}
	w.buf[w.start] = s
	w.start = (w.start + 1) % len(w.buf)
	return true
}

// Samples returns a copy ordered oldest to newest.
func (w *Window) Samples() []models.Sample {
	out := make([]models.Sample, w.n)
	for i := 0; i < w.n; i++ {
		out[i] = w.buf[(w.start+i)%len(w.buf)]
	}
	return out
}

// Last returns the newest sample, if any.
func (w *Window) Last() (models.Sample, bool) {
	if w.n == 0 {
		return models.Sample{}, false
	}
	return w.buf[(w.start+w.n-1)%len(w.buf)], true
}
