// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	Wheel  float32
}

// Input polls SDL and tracks the grooming pointer (left button) and the
// orbit drag (right button).
type Input struct {
	events  []Event
	pointer Tracker
	orbit   Tracker
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events for one frame.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.pointer.BeginFrame()
	i.orbit.BeginFrame()

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := convert(event); ok {
			i.Apply(e)
			if e.Type == EventQuit {
				quit = true
			}
		}
	}

	return quit
}

// Apply records one event and feeds it to the pointer trackers.
func (i *Input) Apply(e Event) {
	i.events = append(i.events, e)

	x, y := float32(e.MouseX), float32(e.MouseY)
	switch e.Type {
	case EventMouseMove:
		i.pointer.Move(x, y)
		i.orbit.Move(x, y)
	case EventMouseDown:
		switch e.Button {
		case sdl.BUTTON_LEFT:
			i.pointer.Press(x, y)
		case sdl.BUTTON_RIGHT:
			i.orbit.Press(x, y)
		}
	case EventMouseUp:
		switch e.Button {
		case sdl.BUTTON_LEFT:
			i.pointer.Release(x, y)
		case sdl.BUTTON_RIGHT:
			i.orbit.Release(x, y)
		}
	}
}

func convert(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return Event{}, false
		}
		if e.Type == sdl.KEYDOWN {
			return Event{Type: EventKeyDown, Key: e.Keysym.Scancode}, true
		}
		return Event{Type: EventKeyUp, Key: e.Keysym.Scancode}, true

	case *sdl.MouseMotionEvent:
		return Event{Type: EventMouseMove, MouseX: int(e.X), MouseY: int(e.Y)}, true

	case *sdl.MouseButtonEvent:
		t := EventMouseDown
		if e.Type == sdl.MOUSEBUTTONUP {
			t = EventMouseUp
		}
		return Event{Type: t, MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button}, true

	case *sdl.MouseWheelEvent:
		return Event{Type: EventMouseWheel, Wheel: float32(e.Y)}, true
	}

	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Pointer returns the grooming pointer state for this frame.
func (i *Input) Pointer() PointerState {
	return i.pointer.State()
}

// Orbit returns the camera drag state for this frame.
func (i *Input) Orbit() PointerState {
	return i.orbit.State()
}

// Wheel returns the summed scroll this frame.
func (i *Input) Wheel() float32 {
	var w float32
	for _, e := range i.events {
		if e.Type == EventMouseWheel {
			w += e.Wheel
		}
	}
	return w
}
