// Package camera provides the orbit camera used to inspect the box.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/boxedit/internal/interact"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center mgl64.Vec3

	// Spherical coordinates
	Distance  float64 // Distance from center
	RotationX float64 // Pitch (vertical angle, radians)
	RotationY float64 // Yaw (horizontal angle, radians)

	// Lens
	FOV  float64 // Vertical field of view, degrees
	Near float64
	Far  float64

	// Constraints
	MinDistance float64
	MaxDistance float64
	MinPitch    float64
	MaxPitch    float64

	// Sensitivity
	DragSensitivity float64 // radians per pixel
	ZoomSensitivity float64 // fraction of distance per unit of zoom input
	WheelScale      float64 // zoom units per wheel notch

	// Active pointer gesture
	dragging bool
	button   interact.Button
	last     mgl64.Vec2
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        250.0,
		RotationX:       0.5,
		RotationY:       0.5,
		FOV:             30,
		Near:            1,
		Far:             2000,
		MinDistance:     20.0,
		MaxDistance:     5000.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.01,
		ZoomSensitivity: 0.01,
		WheelScale:      10,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl64.Vec3 {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)
	return c.Center.Add(mgl64.Vec3{x, y, z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position(), c.Center, mgl64.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float64) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	// Clamp pitch
	c.RotationX = mgl64.Clamp(c.RotationX, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on zoom delta. Positive moves closer.
func (c *OrbitCamera) HandleZoom(delta float64) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = mgl64.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// HandleWheel zooms by scroll wheel notches.
func (c *OrbitCamera) HandleWheel(notches float64) {
	c.HandleZoom(notches * c.WheelScale)
}

// HandleMovement pans the camera center point based on keyboard input.
func (c *OrbitCamera) HandleMovement(forward, right, up float64) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	dirX, dirZ := math.Sin(c.RotationY), math.Cos(c.RotationY)
	rightX, rightZ := math.Cos(c.RotationY), -math.Sin(c.RotationY)

	// Negate forward so W moves "into" the scene
	c.Center[0] += (-dirX*forward + rightX*right) * speed
	c.Center[2] += (-dirZ*forward + rightZ*right) * speed
	c.Center[1] += up * speed
}

// FitToBounds centers the camera on a box and backs off far enough to see it.
func (c *OrbitCamera) FitToBounds(lo, hi mgl64.Vec3) {
	c.Center = lo.Add(hi).Mul(0.5)

	radius := hi.Sub(lo).Len() / 2
	c.Distance = radius / math.Sin(mgl64.DegToRad(c.FOV)/2)
	c.Distance = mgl64.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// OnPointerDown starts a rotate (primary) or zoom (secondary) gesture.
func (c *OrbitCamera) OnPointerDown(button interact.Button, screen mgl64.Vec2) {
	if c.dragging {
		return
	}
	c.dragging = true
	c.button = button
	c.last = screen
}

// OnPointerMove applies the active gesture.
func (c *OrbitCamera) OnPointerMove(screen mgl64.Vec2) {
	if !c.dragging {
		return
	}
	d := screen.Sub(c.last)
	c.last = screen

	switch c.button {
	case interact.ButtonPrimary:
		c.HandleDrag(d[0], d[1])
	case interact.ButtonSecondary:
		// Dragging up moves closer.
		c.HandleZoom(-d[1])
	}
}

// OnPointerUp ends the gesture started with the same button.
func (c *OrbitCamera) OnPointerUp(button interact.Button) {
	if c.dragging && button == c.button {
		c.dragging = false
	}
}

// OnKeyPress pans the center with WASD, Q and E.
func (c *OrbitCamera) OnKeyPress(symbol string) {
	switch symbol {
	case "w":
		c.HandleMovement(1, 0, 0)
	case "s":
		c.HandleMovement(-1, 0, 0)
	case "a":
		c.HandleMovement(0, -1, 0)
	case "d":
		c.HandleMovement(0, 1, 0)
	case "q":
		c.HandleMovement(0, 0, -1)
	case "e":
		c.HandleMovement(0, 0, 1)
	}
}

var _ interact.CameraController = (*OrbitCamera)(nil)
