package engine

import "time"

// Scheduler is a cooperative request-frame loop. A frame callback asks for
// the next frame with RequestFrame; the host calls Tick once per display
// refresh. One tick runs at most one frame, so slow frames delay later ones
// instead of being skipped or batched.
//
// Stop is final: once set, RequestFrame is ignored and Tick never runs a
// callback again. Not safe for concurrent use.
type Scheduler struct {
	pending func()
	stopped bool
	frames  uint64
	tap     *FrameTap
	now     func() time.Time
}

func NewScheduler(tapSize int) *Scheduler {
	return &Scheduler{tap: NewFrameTap(tapSize), now: time.Now}
}

// RequestFrame arms fn to run on the next tick, replacing any callback
// already pending.
func (s *Scheduler) RequestFrame(fn func()) {
	if s.stopped {
		return
	}
	s.pending = fn
}

// Tick runs the pending frame, if any, and reports whether one ran.
func (s *Scheduler) Tick() bool {
	if s.stopped || s.pending == nil {
		return false
	}
	fn := s.pending
	s.pending = nil

	start := s.now()
	fn()
	s.tap.Record(s.now().Sub(start))
	s.frames++
	return true
}

func (s *Scheduler) Stop() {
	s.stopped = true
	s.pending = nil
}

func (s *Scheduler) Stopped() bool { return s.stopped }

// Frames returns the number of frames run so far.
func (s *Scheduler) Frames() uint64 { return s.frames }

func (s *Scheduler) Tap() *FrameTap { return s.tap }
