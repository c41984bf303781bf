package interact

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/boxedit/internal/box"
)

// GroupRotation turns pointer motion into one rotation applied to every face.
//
// The rotation is rebuilt from identity on every move: it never composes
// across events. Sensitivity is a plain gain in degrees per world unit of
// pointer motion, not a physically normalized quantity.
type GroupRotation struct {
	sensitivity float64
	current     mgl64.Mat4
}

// NewGroupRotation creates a rotation controller with the given gain.
func NewGroupRotation(sensitivity float64) *GroupRotation {
	return &GroupRotation{sensitivity: sensitivity, current: mgl64.Ident4()}
}

// Rotation returns the matrix for a world-space motion at the pick depth.
// The axis is the in-plane motion (dx, dy) turned 90 degrees, lifted to
// (-dy, dx, 0). Zero motion gives identity.
func (g *GroupRotation) Rotation(motion mgl64.Vec3) mgl64.Mat4 {
	dx, dy := motion[0], motion[1]
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		return mgl64.Ident4()
	}
	axis := mgl64.Vec3{-dy / mag, dx / mag, 0}
	return mgl64.HomogRotate3D(mgl64.DegToRad(g.sensitivity*mag), axis)
}

// Apply resets every face's proxy transform to a single fresh rotation built
// from motion, then requests a render.
func (g *GroupRotation) Apply(scene Scene, motion mgl64.Vec3) mgl64.Mat4 {
	g.current = g.Rotation(motion)
	for id := box.FaceID(0); id < box.NumFaces; id++ {
		scene.SetTransform(id, g.current)
	}
	scene.RequestRender()
	return g.current
}

// Current returns the transform applied by the last Apply.
func (g *GroupRotation) Current() mgl64.Mat4 {
	return g.current
}
