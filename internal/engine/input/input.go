// Package input translates SDL2 events into gallery events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventPointerDown
	EventPointerMove
	EventPointerUp
)

// Event represents a processed input event. Pointer coordinates are in
// window points.
type Event struct {
	Type     EventType
	Key      sdl.Scancode
	Width    int
	Height   int
	PointerX float32
	PointerY float32
}

// Input polls SDL and buffers the frame's events.
type Input struct {
	events   []Event
	dragging bool
}

// New creates an input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them. Returns true when the
// application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				break
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.dragging = true
				i.events = append(i.events, Event{
					Type:     EventPointerDown,
					PointerX: float32(e.X),
					PointerY: float32(e.Y),
				})
			} else if e.Type == sdl.MOUSEBUTTONUP {
				i.dragging = false
				i.events = append(i.events, Event{
					Type:     EventPointerUp,
					PointerX: float32(e.X),
					PointerY: float32(e.Y),
				})
			}

		case *sdl.MouseMotionEvent:
			// Motion only matters mid-drag; hover is noise.
			if i.dragging {
				i.events = append(i.events, Event{
					Type:     EventPointerMove,
					PointerX: float32(e.X),
					PointerY: float32(e.Y),
				})
			}
		}
	}

	return false
}

// Events returns the events buffered by the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Dragging reports whether the primary button is currently held.
func (i *Input) Dragging() bool {
	return i.dragging
}
