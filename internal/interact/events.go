package interact

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Button is a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventKeyPress
)

// Event is a host input event in screen coordinates.
type Event struct {
	Type   EventType
	Button Button
	Screen mgl64.Vec2
	Key    string
}

// PointerDown builds a button press event.
func PointerDown(b Button, x, y float64) Event {
	return Event{Type: EventPointerDown, Button: b, Screen: mgl64.Vec2{x, y}}
}

// PointerMove builds a motion event.
func PointerMove(x, y float64) Event {
	return Event{Type: EventPointerMove, Screen: mgl64.Vec2{x, y}}
}

// PointerUp builds a button release event.
func PointerUp(b Button) Event {
	return Event{Type: EventPointerUp, Button: b}
}

// KeyPress builds a key event carrying the key symbol.
func KeyPress(symbol string) Event {
	return Event{Type: EventKeyPress, Key: symbol}
}
