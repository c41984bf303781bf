// Package box describes the six faces of an axis-aligned bounding volume and
// the fixed table that maps each face to the axis it slides along.
package box

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis is one of the three world axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Extremum tells whether a face sits at the near (min) or far (max) wall.
type Extremum int

const (
	Near Extremum = iota
	Far
)

func (e Extremum) String() string {
	if e == Near {
		return "near"
	}
	return "far"
}

// ErrInvalidBounds is returned when a box has no extent along some axis.
var ErrInvalidBounds = errors.New("invalid bounds")

// Bounds is the immutable outer box. It defines the total admissible travel
// of every face.
type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBounds validates that min < max on every axis.
func NewBounds(min, max mgl64.Vec3) (Bounds, error) {
	for a := AxisX; a <= AxisZ; a++ {
		if !(min[a] < max[a]) {
			return Bounds{}, fmt.Errorf("%w: %s min %g >= max %g", ErrInvalidBounds, a, min[a], max[a])
		}
	}
	return Bounds{Min: min, Max: max}, nil
}

// Cube returns bounds of the given half extent centered on the origin.
func Cube(half float64) Bounds {
	return Bounds{
		Min: mgl64.Vec3{-half, -half, -half},
		Max: mgl64.Vec3{half, half, half},
	}
}

// Wall returns the coordinate of the near or far wall along axis.
func (b Bounds) Wall(axis Axis, e Extremum) float64 {
	if e == Near {
		return b.Min[axis]
	}
	return b.Max[axis]
}

// Span is far wall minus near wall along axis.
func (b Bounds) Span(axis Axis) float64 {
	return b.Max[axis] - b.Min[axis]
}

// Center returns the middle of the box.
func (b Bounds) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}
