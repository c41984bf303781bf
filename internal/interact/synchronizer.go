package interact

import (
	"fmt"
	"math"

	"github.com/Faultbox/boxedit/internal/box"
)

// Epsilon is the tolerance used to decide whether a corner rests on an inset wall.
const Epsilon = 1e-16

// side records which inset wall a corner rests on along one axis.
type side int8

const (
	sideNone side = iota
	sideNear
	sideFar
)

func sideOf(e box.Extremum) side {
	if e == box.Near {
		return sideNear
	}
	return sideFar
}

// Synchronizer keeps the six faces consistent while one of them slides.
//
// Every corner is classified once, against the rest geometry, as sitting on
// the near inset wall, the far inset wall, or neither, for each axis. When a
// face on axis j moves to value v, the corners of the other non-parallel faces
// that were classified on the moving face's side follow it to inset+v, clamped
// between the two inset walls. Corners on the opposite side never move.
// Deriving positions from the rest pose makes the update a pure function of v,
// so repeating a value is idempotent and returning to 0 restores the rest pose.
type Synchronizer struct {
	bounds box.Bounds
	margin float64

	rest  [box.NumFaces]box.Face
	faces [box.NumFaces]box.Face
	sides [box.NumFaces][3][3]side // face, corner, axis
}

// NewSynchronizer captures faces as the rest pose. Faces must be indexed by id.
func NewSynchronizer(b box.Bounds, margin float64, faces [box.NumFaces]box.Face) (*Synchronizer, error) {
	s := &Synchronizer{bounds: b, margin: margin}

	for i, f := range faces {
		id := box.FaceID(i)
		slot, _ := box.SlotOf(id)
		if f.ID != id {
			return nil, fmt.Errorf("face at index %d has id %d", i, f.ID)
		}
		f.Axis, f.Extremum = slot.Axis, slot.Extremum
		if !f.Planar() {
			return nil, fmt.Errorf("%s corners do not share a %s coordinate", id, slot.Axis)
		}
		s.rest[i] = f
	}
	s.faces = s.rest

	for n := range s.rest {
		for c, p := range s.rest[n].Corners {
			for a := box.AxisX; a <= box.AxisZ; a++ {
				s.sides[n][c][a] = s.classify(a, p[a])
			}
		}
	}
	return s, nil
}

// classify reports which inset wall coord rests on along axis.
func (s *Synchronizer) classify(axis box.Axis, coord float64) side {
	near, far := s.insets(axis)
	switch {
	case math.Abs(coord-near) < Epsilon:
		return sideNear
	case math.Abs(coord-far) < Epsilon:
		return sideFar
	default:
		return sideNone
	}
}

// insets returns the near and far walls pulled in by the margin.
func (s *Synchronizer) insets(axis box.Axis) (near, far float64) {
	return s.bounds.Min[axis] + s.margin, s.bounds.Max[axis] - s.margin
}

// Apply moves face id to value v and updates every non-parallel face. It
// rebinds each touched face on scene and requests one render. Unknown ids are
// ignored.
func (s *Synchronizer) Apply(scene Scene, id box.FaceID, v float64) {
	slot, ok := box.SlotOf(id)
	if !ok {
		return
	}
	j, e := slot.Axis, slot.Extremum

	// The dragged face slides as a whole from its wall.
	moved := &s.faces[id]
	level := s.bounds.Wall(j, e) + v
	for c := range moved.Corners {
		moved.Corners[c][j] = level
	}
	bind(scene, *moved)

	want := sideOf(e)
	near, far := s.insets(j)
	inset := near
	if e == box.Far {
		inset = far
	}

	for n := range s.faces {
		f := &s.faces[n]
		if f.Axis == j {
			continue
		}
		for c := range f.Corners {
			if s.sides[n][c][j] != want {
				continue
			}
			f.Corners[c][j] = clamp(inset+v, near, far)
		}
		bind(scene, *f)
	}

	scene.RequestRender()
}

// Restore rebinds the rest pose on every face.
func (s *Synchronizer) Restore(scene Scene) {
	s.faces = s.rest
	for _, f := range s.faces {
		bind(scene, f)
	}
	scene.RequestRender()
}

// Faces returns a copy of the current face geometry.
func (s *Synchronizer) Faces() [box.NumFaces]box.Face {
	return s.faces
}

// Face returns the current geometry of one face.
func (s *Synchronizer) Face(id box.FaceID) (box.Face, bool) {
	if !id.Valid() {
		return box.Face{}, false
	}
	return s.faces[id], true
}

func bind(scene Scene, f box.Face) {
	scene.BindGeometry(f.ID, f.Corners[box.Origin], f.Corners[box.Edge1], f.Corners[box.Edge2])
}
