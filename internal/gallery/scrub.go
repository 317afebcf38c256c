package gallery

import (
	"context"

	m "github.com/Faultbox/shardgallery/pkg/math"
)

// Scrub defaults.
const (
	// DragThreshold is the pointer displacement that starts a new
	// transition when none is being hijacked.
	DragThreshold = 30.0
	// SeekSpeed converts pointer displacement to progress delta.
	SeekSpeed = 0.001
)

// Scrub converts pointer-drag input into direct manipulation of the
// active transition's progress. It never creates more than one
// concurrent transition; it relies on the controller's in-flight guard
// and only manipulates the handle the controller already produced.
type Scrub struct {
	ctrl      *Controller
	threshold float32
	seekSpeed float32

	pressed   bool
	decided   bool
	bound     bool // gesture hijacked an already-running transition
	direction int  // +1 next, -1 previous, 0 unknown
	total     float32
	lastX     float32
}

// NewScrub creates a scrub controller with default threshold and speed.
func NewScrub(ctrl *Controller) *Scrub {
	return &Scrub{
		ctrl:      ctrl,
		threshold: DragThreshold,
		seekSpeed: SeekSpeed,
	}
}

// Press begins a gesture at pointer position x. If a transition handle
// exists and has not finished, it is paused and the gesture binds to it;
// the drag direction is decided opportunistically on the first move.
func (s *Scrub) Press(x float32) {
	s.pressed = true
	s.decided = false
	s.bound = false
	s.direction = 0
	s.total = 0
	s.lastX = x

	if tl := s.ctrl.ActiveTimeline(); tl != nil && tl.Progress() < 1 {
		tl.Pause()
		s.bound = true
	}
}

// Move handles pointer movement to position x while pressed.
func (s *Scrub) Move(ctx context.Context, x float32) {
	if !s.pressed {
		return
	}

	dx := x - s.lastX
	s.lastX = x
	s.total += dx

	if !s.decided {
		if s.bound {
			if dx == 0 {
				return
			}
			if dx > 0 {
				s.direction = 1
			} else {
				s.direction = -1
			}
			s.decided = true
			// fall through: this movement already scrubs
		} else if s.total > s.threshold || s.total < -s.threshold {
			prev := s.ctrl.ActiveTimeline()
			if s.total > 0 {
				s.direction = 1
				s.ctrl.Next(ctx)
			} else {
				s.direction = -1
				s.ctrl.Previous(ctx)
			}
			// A dropped or failed navigation leaves the previous,
			// already-finished handle in place; binding to it would
			// rewind the displayed slide. Only take a fresh handle.
			tl := s.ctrl.ActiveTimeline()
			if tl == nil || tl == prev {
				s.direction = 0
				return
			}
			// Pause the fresh handle immediately while the pointer is
			// still held, so the drag controls it from progress 0.
			tl.Pause()
			s.decided = true
			return
		} else {
			return
		}
	}

	tl := s.ctrl.ActiveTimeline()
	if tl == nil {
		return
	}

	delta := dx * s.seekSpeed
	if s.direction < 0 {
		// Leftward drag still increases progress for previous.
		delta = -delta
	}
	tl.SetProgress(m.Clamp(tl.Progress()+delta, 0, 1))
}

// Release ends the gesture and resumes playback from wherever the drag
// left the transition.
func (s *Scrub) Release() {
	if !s.pressed {
		return
	}
	if tl := s.ctrl.ActiveTimeline(); tl != nil {
		tl.Play()
	}
	s.pressed = false
	s.decided = false
	s.bound = false
	s.direction = 0
	s.total = 0
}

// Pressed reports whether a gesture is in progress.
func (s *Scrub) Pressed() bool {
	return s.pressed
}
