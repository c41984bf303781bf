package interact

import (
	"github.com/Faultbox/boxedit/internal/box"
)

// Accumulator holds the persistent drive value of every face. Values are
// absolute displacements from the face's wall and survive across gestures.
type Accumulator struct {
	bounds box.Bounds
	values [box.NumFaces]float64
}

// NewAccumulator starts every face at zero.
func NewAccumulator(b box.Bounds) *Accumulator {
	return &Accumulator{bounds: b}
}

// Range returns the admissible interval of a face's value: [0, span] for a
// near face and [-span, 0] for a far face.
func (a *Accumulator) Range(id box.FaceID) (lo, hi float64) {
	slot, ok := box.SlotOf(id)
	if !ok {
		return 0, 0
	}
	span := a.bounds.Span(slot.Axis)
	if slot.Extremum == box.Near {
		return 0, span
	}
	return -span, 0
}

// Update moves a face's value by one step in the direction of delta and
// clamps it into range. Only the sign of delta matters. The new value is
// returned; unknown ids return 0 and change nothing.
func (a *Accumulator) Update(id box.FaceID, delta, step float64) float64 {
	if !id.Valid() {
		return 0
	}

	v := a.values[id]
	switch {
	case delta > 0:
		v += step
	case delta < 0:
		v -= step
	}

	lo, hi := a.Range(id)
	a.values[id] = clamp(v, lo, hi)
	return a.values[id]
}

// Value returns a face's current value.
func (a *Accumulator) Value(id box.FaceID) float64 {
	if !id.Valid() {
		return 0
	}
	return a.values[id]
}

// Reset zeroes every face.
func (a *Accumulator) Reset() {
	a.values = [box.NumFaces]float64{}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
