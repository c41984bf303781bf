package interact

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/boxedit/internal/box"
)

func TestRotationZeroMotionIsIdentity(t *testing.T) {
	g := NewGroupRotation(100)
	if m := g.Rotation(mgl64.Vec3{}); m != mgl64.Ident4() {
		t.Errorf("zero motion gave %v", m)
	}
	// Depth-only motion has no in-plane component.
	if m := g.Rotation(mgl64.Vec3{0, 0, 5}); m != mgl64.Ident4() {
		t.Errorf("z-only motion gave %v", m)
	}
}

func TestRotationAxisAndAngle(t *testing.T) {
	g := NewGroupRotation(90)

	// Motion along +X rotates about +Y by 90 degrees.
	m := g.Rotation(mgl64.Vec3{1, 0, 0})
	got := m.Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()
	if !got.ApproxEqualThreshold(mgl64.Vec3{0, 0, -1}, 1e-12) {
		t.Errorf("rotated X = %v, want (0, 0, -1)", got)
	}

	// The axis itself is fixed by the rotation.
	motion := mgl64.Vec3{0.3, -0.4, 0}
	axis := mgl64.Vec3{0.4, 0.3, 0}
	m = g.Rotation(motion)
	if got := m.Mul4x1(axis.Vec4(1)).Vec3(); !got.ApproxEqualThreshold(axis, 1e-12) {
		t.Errorf("axis moved: %v -> %v", axis, got)
	}
}

func TestRotationDoesNotCompose(t *testing.T) {
	g := NewGroupRotation(100)
	scene := newFakeScene()

	first := g.Apply(scene, mgl64.Vec3{0.2, 0.1, 0})
	second := g.Apply(scene, mgl64.Vec3{0.2, 0.1, 0})
	if !first.ApproxEqualThreshold(second, 1e-15) {
		t.Errorf("same motion gave different transforms:\n%v\n%v", first, second)
	}

	if len(scene.transforms) != box.NumFaces {
		t.Fatalf("expected all %d faces transformed, got %d", box.NumFaces, len(scene.transforms))
	}
	for id, m := range scene.transforms {
		if m != second {
			t.Errorf("face %d has a different transform", id)
		}
	}
	if scene.renders != 2 {
		t.Errorf("renders = %d, want 2", scene.renders)
	}
	if g.Current() != second {
		t.Error("Current should return the last transform")
	}
}
