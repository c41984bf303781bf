// Package interact implements direct manipulation of the six faces of a
// bounding box: face dragging with adjacent-face synchronization, group
// rotation, and switching between camera orbit and face manipulation.
//
// Everything runs synchronously on the host's event-dispatch path. A
// Controller is not safe for concurrent use.
package interact

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/boxedit/internal/box"
)

// Projection turns a screen position at a normalized depth into a homogeneous
// world vector (x, y, z, w). The caller performs the perspective divide.
type Projection interface {
	Project(screen mgl64.Vec2, depth float64) mgl64.Vec4
}

// Picker casts a ray through a screen position and reports the face it hits.
type Picker interface {
	PickAt(screen mgl64.Vec2) (box.FaceID, bool)
}

// Scene is the rendering collaborator the controller drives.
type Scene interface {
	Projection
	Picker

	// BindGeometry updates a face's render proxy to new corner data.
	BindGeometry(id box.FaceID, origin, edge1, edge2 mgl64.Vec3)

	// SetTransform replaces the user transform of a face's render proxy.
	SetTransform(id box.FaceID, m mgl64.Mat4)

	// RequestRender asks the host loop to draw a frame. It must not block.
	RequestRender()
}

// CameraController receives every event the controller does not consume
// while in camera orbit mode.
type CameraController interface {
	OnPointerDown(button Button, screen mgl64.Vec2)
	OnPointerMove(screen mgl64.Vec2)
	OnPointerUp(button Button)
	OnKeyPress(symbol string)
}

type noCamera struct{}

func (noCamera) OnPointerDown(Button, mgl64.Vec2) {}
func (noCamera) OnPointerMove(mgl64.Vec2)         {}
func (noCamera) OnPointerUp(Button)               {}
func (noCamera) OnKeyPress(string)                {}
