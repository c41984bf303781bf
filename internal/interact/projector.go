package interact

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrDegenerateProjection is returned when unprojection yields w == 0.
var ErrDegenerateProjection = errors.New("degenerate projection")

// Projector unprojects screen positions at a fixed depth into world points.
type Projector struct {
	src Projection
}

// NewProjector wraps a projection source.
func NewProjector(src Projection) Projector {
	return Projector{src: src}
}

// Unproject returns the world point under screen at depth.
func (p Projector) Unproject(screen mgl64.Vec2, depth float64) (mgl64.Vec3, error) {
	h := p.src.Project(screen, depth)
	if h[3] == 0 {
		return mgl64.Vec3{}, fmt.Errorf("unproject (%g, %g): %w", screen[0], screen[1], ErrDegenerateProjection)
	}
	return h.Vec3().Mul(1 / h[3]), nil
}

// Motion returns the world displacement between two screen positions, both
// unprojected at depth.
func (p Projector) Motion(from, to mgl64.Vec2, depth float64) (mgl64.Vec3, error) {
	next, err := p.Unproject(to, depth)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	prev, err := p.Unproject(from, depth)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return next.Sub(prev), nil
}
