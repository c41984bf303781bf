// Package input translates SDL2 events into editor events.
package input

import (
	"strings"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/boxedit/internal/interact"
)

// EventType distinguishes host events from pointer and key events.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventWheel
	EventInteract
)

// Event represents a processed input event.
type Event struct {
	Type EventType

	// EventWindowResize
	Width  int
	Height int

	// EventWheel, positive away from the user
	Wheel float64

	// EventInteract
	Interact interact.Event
}

// Input handles all input processing.
type Input struct {
	events  []Event
	keyName func(sdl.Keycode) string
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:  make([]Event, 0, 16),
		keyName: sdl.GetKeyName,
	}
}

// Update collects pending SDL events and converts them to editor events. If
// wait is positive and nothing is pending, it blocks up to wait for the first
// event. Returns true if the application should quit.
func (i *Input) Update(wait time.Duration) bool {
	i.events = i.events[:0] // Clear previous events

	var event sdl.Event
	if wait > 0 {
		event = sdl.WaitEventTimeout(int(wait.Milliseconds()))
	} else {
		event = sdl.PollEvent()
	}

	for ; event != nil; event = sdl.PollEvent() {
		ev, ok := i.translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, ev)
		if ev.Type == EventQuit {
			return true
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

func (i *Input) translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		// Auto-repeat would toggle modes continuously while a key is held.
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return Event{}, false
		}
		name := strings.ToLower(i.keyName(e.Keysym.Sym))
		if name == "" {
			return Event{}, false
		}
		return Event{Type: EventInteract, Interact: interact.KeyPress(name)}, true

	case *sdl.MouseMotionEvent:
		return Event{Type: EventInteract, Interact: interact.PointerMove(float64(e.X), float64(e.Y))}, true

	case *sdl.MouseButtonEvent:
		b, ok := button(e.Button)
		if !ok {
			return Event{}, false
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return Event{Type: EventInteract, Interact: interact.PointerDown(b, float64(e.X), float64(e.Y))}, true
		}
		return Event{Type: EventInteract, Interact: interact.PointerUp(b)}, true

	case *sdl.MouseWheelEvent:
		y := float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		return Event{Type: EventWheel, Wheel: y}, true
	}

	return Event{}, false
}

// button maps SDL buttons to pointer buttons. Only left and right are used.
func button(b uint8) (interact.Button, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return interact.ButtonPrimary, true
	case sdl.BUTTON_RIGHT:
		return interact.ButtonSecondary, true
	default:
		return 0, false
	}
}
