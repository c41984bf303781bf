package interact

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/boxedit/internal/box"
)

// fakeScene records everything the controller asks of the host.
type fakeScene struct {
	project func(screen mgl64.Vec2, depth float64) mgl64.Vec4
	pick    func(screen mgl64.Vec2) (box.FaceID, bool)

	geometry   map[box.FaceID][3]mgl64.Vec3
	transforms map[box.FaceID]mgl64.Mat4
	binds      int
	renders    int
}

// newFakeScene maps screen x to world X and Z and screen y to world Y at w=1.
// Every position with x >= 0 hits face 0.
func newFakeScene() *fakeScene {
	return &fakeScene{
		project: func(s mgl64.Vec2, _ float64) mgl64.Vec4 {
			return mgl64.Vec4{s[0], s[1], s[0], 1}
		},
		pick: func(s mgl64.Vec2) (box.FaceID, bool) {
			if s[0] < 0 {
				return 0, false
			}
			return 0, true
		},
		geometry:   make(map[box.FaceID][3]mgl64.Vec3),
		transforms: make(map[box.FaceID]mgl64.Mat4),
	}
}

func (f *fakeScene) Project(screen mgl64.Vec2, depth float64) mgl64.Vec4 {
	return f.project(screen, depth)
}

func (f *fakeScene) PickAt(screen mgl64.Vec2) (box.FaceID, bool) {
	return f.pick(screen)
}

func (f *fakeScene) BindGeometry(id box.FaceID, origin, edge1, edge2 mgl64.Vec3) {
	f.geometry[id] = [3]mgl64.Vec3{origin, edge1, edge2}
	f.binds++
}

func (f *fakeScene) SetTransform(id box.FaceID, m mgl64.Mat4) {
	f.transforms[id] = m
}

func (f *fakeScene) RequestRender() {
	f.renders++
}

// pickFace makes every hit resolve to id.
func (f *fakeScene) pickFace(id box.FaceID) {
	f.pick = func(s mgl64.Vec2) (box.FaceID, bool) {
		if s[0] < 0 {
			return 0, false
		}
		return id, true
	}
}

// recordingCamera counts delegated events.
type recordingCamera struct {
	downs, moves, ups int
	keys              []string
}

func (r *recordingCamera) OnPointerDown(Button, mgl64.Vec2) { r.downs++ }
func (r *recordingCamera) OnPointerMove(mgl64.Vec2)         { r.moves++ }
func (r *recordingCamera) OnPointerUp(Button)               { r.ups++ }
func (r *recordingCamera) OnKeyPress(s string)              { r.keys = append(r.keys, s) }

func restFaces() [box.NumFaces]box.Face {
	return box.BuildFaces(box.Cube(50), 10)
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func approxVec(a, b mgl64.Vec3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > Epsilon {
			return false
		}
	}
	return true
}

func approxFaces(t *testing.T, got, want [box.NumFaces]box.Face) {
	t.Helper()
	for n := range got {
		for c := range got[n].Corners {
			if !approxVec(got[n].Corners[c], want[n].Corners[c]) {
				t.Errorf("face %d corner %d = %v, want %v", n, c, got[n].Corners[c], want[n].Corners[c])
			}
		}
	}
}
