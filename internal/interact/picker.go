package interact

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/boxedit/internal/box"
)

// FacePicker resolves a screen position to a face. A miss is not an error.
type FacePicker struct {
	src Picker
	log *zap.Logger
}

// NewFacePicker wraps an external pick primitive.
func NewFacePicker(src Picker, log *zap.Logger) FacePicker {
	return FacePicker{src: src, log: log}
}

// Pick returns the face under screen. Ids outside 0..5 from the external
// picker are logged and treated as a miss.
func (p FacePicker) Pick(screen mgl64.Vec2) (box.FaceID, bool) {
	id, ok := p.src.PickAt(screen)
	if !ok {
		return 0, false
	}
	if !id.Valid() {
		p.log.Warn("picker returned unknown face",
			zap.Int("face", int(id)),
			zap.Float64("x", screen[0]),
			zap.Float64("y", screen[1]),
		)
		return 0, false
	}
	return id, true
}
