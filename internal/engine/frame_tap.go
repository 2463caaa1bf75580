package engine

import (
	"sync"
	"time"
)

// FrameTap records the durations of the last N frames in a ring buffer so
// the debug overlay and the shutdown log can report frame timing.
type FrameTap struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func NewFrameTap(ringSize int) *FrameTap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &FrameTap{buffer: make([]time.Duration, ringSize)}
}

func (t *FrameTap) Record(d time.Duration) {
	t.mu.Lock()
	t.buffer[t.nextIndex] = d
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.filled < len(t.buffer) {
		t.filled++
	}
	t.mu.Unlock()
}

// Snapshot returns up to the last n recorded durations, oldest first.
func (t *FrameTap) Snapshot(n int) []time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > t.filled {
		n = t.filled
	}
	if n <= 0 {
		return nil
	}
	out := make([]time.Duration, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}

// Average returns the mean of the recorded durations, or 0 if none.
func (t *FrameTap) Average() time.Duration {
	recent := t.Snapshot(len(t.buffer))
	if len(recent) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range recent {
		sum += d
	}
	return sum / time.Duration(len(recent))
}
