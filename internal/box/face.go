package box

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// FaceID identifies one of the six faces (0..5).
type FaceID int

// NumFaces is the number of faces of the box.
const NumFaces = 6

// Valid reports whether id names an existing face.
func (id FaceID) Valid() bool {
	return id >= 0 && id < NumFaces
}

// Opposite returns the parallel face sharing the same axis.
func (id FaceID) Opposite() FaceID {
	return id ^ 1
}

func (id FaceID) String() string {
	return fmt.Sprintf("face%d", int(id))
}

// Slot is the constrained axis and wall a face occupies.
type Slot struct {
	Axis     Axis
	Extremum Extremum
}

// slots maps each face to its drag axis. Within a pair the first face is the
// near one and the second the far one.
var slots = [NumFaces]Slot{
	{AxisZ, Near},
	{AxisZ, Far},
	{AxisX, Near},
	{AxisX, Far},
	{AxisY, Near},
	{AxisY, Far},
}

// SlotOf resolves the axis and extremum of a face. ok is false for ids out of range.
func SlotOf(id FaceID) (slot Slot, ok bool) {
	if !id.Valid() {
		return Slot{}, false
	}
	return slots[id], true
}

// tangents are the two in-plane axes of a face normal to the key axis, in the
// order used for edge1 and edge2.
var tangents = [3][2]Axis{
	AxisX: {AxisY, AxisZ},
	AxisY: {AxisX, AxisZ},
	AxisZ: {AxisX, AxisY},
}

// Corner indexes the three defining points of a face parallelogram.
type Corner int

const (
	Origin Corner = iota
	Edge1
	Edge2
)

// Face is one planar boundary patch. The fourth corner is implied:
// Edge1 + Edge2 - Origin.
type Face struct {
	ID       FaceID
	Axis     Axis
	Extremum Extremum
	Corners  [3]mgl64.Vec3
}

// Origin returns the origin corner.
func (f Face) Origin() mgl64.Vec3 { return f.Corners[Origin] }

// Edge1 returns the corner reached along the first edge.
func (f Face) Edge1() mgl64.Vec3 { return f.Corners[Edge1] }

// Edge2 returns the corner reached along the second edge.
func (f Face) Edge2() mgl64.Vec3 { return f.Corners[Edge2] }

// Quad returns all four corners in winding order.
func (f Face) Quad() [4]mgl64.Vec3 {
	o, e1, e2 := f.Corners[Origin], f.Corners[Edge1], f.Corners[Edge2]
	return [4]mgl64.Vec3{o, e1, e1.Add(e2).Sub(o), e2}
}

// Level returns the face's coordinate along its own axis, read from the origin.
func (f Face) Level() float64 {
	return f.Corners[Origin][f.Axis]
}

// Planar reports whether all three corners share the coordinate along the
// face's own axis.
func (f Face) Planar() bool {
	l := f.Level()
	return f.Corners[Edge1][f.Axis] == l && f.Corners[Edge2][f.Axis] == l
}

// BuildFaces lays out the six faces at rest. Each face sits on its wall and is
// inset by margin from the four walls it abuts.
func BuildFaces(b Bounds, margin float64) [NumFaces]Face {
	var faces [NumFaces]Face
	for i := range faces {
		id := FaceID(i)
		slot := slots[id]
		u, v := tangents[slot.Axis][0], tangents[slot.Axis][1]

		var origin mgl64.Vec3
		origin[slot.Axis] = b.Wall(slot.Axis, slot.Extremum)
		origin[u] = b.Min[u] + margin
		origin[v] = b.Min[v] + margin

		edge1 := origin
		edge1[u] = b.Max[u] - margin

		edge2 := origin
		edge2[v] = b.Max[v] - margin

		faces[i] = Face{
			ID:       id,
			Axis:     slot.Axis,
			Extremum: slot.Extremum,
			Corners:  [3]mgl64.Vec3{origin, edge1, edge2},
		}
	}
	return faces
}
