package interact

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/boxedit/internal/box"
	"github.com/Faultbox/boxedit/internal/logger"
)

// Mode is the top-level interaction mode.
type Mode int

const (
	ModeCameraOrbit Mode = iota
	ModeFaceManipulate
)

func (m Mode) String() string {
	if m == ModeCameraOrbit {
		return "camera"
	}
	return "manipulate"
}

// SubState is the face manipulation sub-state. It is kept while the
// controller is in camera mode.
type SubState int

const (
	Idle SubState = iota
	DraggingFace
	DraggingGroup
)

func (s SubState) String() string {
	switch s {
	case Idle:
		return "idle"
	case DraggingFace:
		return "dragging-face"
	case DraggingGroup:
		return "dragging-group"
	default:
		return fmt.Sprintf("SubState(%d)", int(s))
	}
}

// ErrInvalidOptions is returned by New for unusable options.
var ErrInvalidOptions = errors.New("invalid interaction options")

// Options configures a Controller.
type Options struct {
	Bounds              box.Bounds
	Margin              float64
	StepSize            float64
	RotationSensitivity float64 // degrees per world unit of pointer motion
	PickDepth           float64 // normalized depth used for unprojection
	ToggleKey           string
	ResetKey            string // empty disables reset
	StartMode           Mode

	// Camera receives unconsumed events in camera mode. Nil ignores them.
	Camera CameraController
	// Logger defaults to the "interact" child of the global logger.
	Logger *zap.Logger
}

// DefaultOptions matches the classic 100-unit box with a 10-unit margin.
func DefaultOptions() Options {
	return Options{
		Bounds:              box.Cube(50),
		Margin:              10,
		StepSize:            1,
		RotationSensitivity: 100,
		PickDepth:           0,
		ToggleKey:           "c",
		ResetKey:            "r",
		StartMode:           ModeCameraOrbit,
	}
}

func (o Options) validate() error {
	if o.Margin < 0 {
		return fmt.Errorf("%w: negative margin %g", ErrInvalidOptions, o.Margin)
	}
	for a := box.AxisX; a <= box.AxisZ; a++ {
		if 2*o.Margin > o.Bounds.Span(a) {
			return fmt.Errorf("%w: margin %g exceeds half of %s span %g", ErrInvalidOptions, o.Margin, a, o.Bounds.Span(a))
		}
	}
	if !(o.StepSize > 0) {
		return fmt.Errorf("%w: step size must be positive, got %g", ErrInvalidOptions, o.StepSize)
	}
	if o.ToggleKey == "" {
		return fmt.Errorf("%w: empty toggle key", ErrInvalidOptions)
	}
	return nil
}

type handlers struct {
	down func(Button, mgl64.Vec2)
	move func(mgl64.Vec2)
	up   func(Button)
	key  func(string)
}

// Controller is the interaction state machine. It owns the accumulators, the
// face geometry and the drag session for one interactive session.
type Controller struct {
	scene  Scene
	camera CameraController
	log    *zap.Logger
	opts   Options

	projector Projector
	picker    FacePicker
	accum     *Accumulator
	sync      *Synchronizer
	rotation  *GroupRotation

	mode     Mode
	sub      SubState
	selected box.FaceID
	last     mgl64.Vec2

	dispatch [2]handlers
}

// New attaches a controller to scene. faces is the geometry the scene was
// built with, indexed by face id.
func New(scene Scene, faces [box.NumFaces]box.Face, opts Options) (*Controller, error) {
	if scene == nil {
		return nil, fmt.Errorf("%w: nil scene", ErrInvalidOptions)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	sync, err := NewSynchronizer(opts.Bounds, opts.Margin, faces)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	c := &Controller{
		scene:    scene,
		camera:   opts.Camera,
		log:      opts.Logger,
		opts:     opts,
		accum:    NewAccumulator(opts.Bounds),
		sync:     sync,
		rotation: NewGroupRotation(opts.RotationSensitivity),
		mode:     opts.StartMode,
	}
	if c.camera == nil {
		c.camera = noCamera{}
	}
	if c.log == nil {
		c.log = logger.Named("interact")
	}
	c.projector = NewProjector(scene)
	c.picker = NewFacePicker(scene, c.log)

	c.dispatch[ModeCameraOrbit] = handlers{
		down: c.camera.OnPointerDown,
		move: c.orbit,
		up:   c.camera.OnPointerUp,
		key:  c.camera.OnKeyPress,
	}
	c.dispatch[ModeFaceManipulate] = handlers{
		down: c.press,
		move: c.drag,
		up:   c.release,
		key:  c.command,
	}

	c.log.Debug("controller attached",
		zap.Stringer("mode", c.mode),
		zap.Float64("margin", opts.Margin),
		zap.Float64("step", opts.StepSize),
	)
	return c, nil
}

// Handle dispatches one input event.
func (c *Controller) Handle(ev Event) {
	switch ev.Type {
	case EventPointerDown:
		c.PointerDown(ev.Button, ev.Screen)
	case EventPointerMove:
		c.PointerMove(ev.Screen)
	case EventPointerUp:
		c.PointerUp(ev.Button)
	case EventKeyPress:
		c.KeyPress(ev.Key)
	}
}

// PointerDown handles a button press at screen.
func (c *Controller) PointerDown(b Button, screen mgl64.Vec2) {
	c.dispatch[c.mode].down(b, screen)
}

// PointerMove handles pointer motion to screen.
func (c *Controller) PointerMove(screen mgl64.Vec2) {
	c.dispatch[c.mode].move(screen)
}

// PointerUp handles a button release. The position is irrelevant: release
// outside the viewport still ends the gesture.
func (c *Controller) PointerUp(b Button) {
	c.dispatch[c.mode].up(b)
}

// KeyPress handles a key symbol. The toggle key swaps modes in both modes.
func (c *Controller) KeyPress(symbol string) {
	if symbol == c.opts.ToggleKey {
		c.toggle()
		return
	}
	c.dispatch[c.mode].key(symbol)
}

func (c *Controller) toggle() {
	if c.mode == ModeCameraOrbit {
		c.mode = ModeFaceManipulate
	} else {
		c.mode = ModeCameraOrbit
	}
	c.log.Info("switched mode", zap.Stringer("mode", c.mode), zap.Stringer("state", c.sub))
}

func (c *Controller) orbit(screen mgl64.Vec2) {
	c.camera.OnPointerMove(screen)
	c.scene.RequestRender()
}

func (c *Controller) press(b Button, screen mgl64.Vec2) {
	if c.sub != Idle {
		return
	}

	id, ok := c.picker.Pick(screen)
	if !ok {
		return
	}

	c.last = screen
	switch b {
	case ButtonPrimary:
		c.sub = DraggingFace
		c.selected = id
		c.log.Debug("face selected", zap.Stringer("face", id))
	case ButtonSecondary:
		c.sub = DraggingGroup
		c.log.Debug("group rotation armed", zap.Stringer("face", id))
	}
}

func (c *Controller) drag(screen mgl64.Vec2) {
	switch c.sub {
	case DraggingFace:
		c.dragFace(screen)
	case DraggingGroup:
		c.dragGroup(screen)
	}
}

func (c *Controller) dragFace(screen mgl64.Vec2) {
	motion, err := c.projector.Motion(c.last, screen, c.opts.PickDepth)
	if err != nil {
		c.log.Warn("face move aborted",
			zap.Error(err),
			zap.Stringer("face", c.selected),
			zap.Float64s("screen", screen[:]),
		)
		return
	}

	slot, _ := box.SlotOf(c.selected)
	v := c.accum.Update(c.selected, motion[slot.Axis], c.opts.StepSize)
	c.sync.Apply(c.scene, c.selected, v)
	c.last = screen
}

func (c *Controller) dragGroup(screen mgl64.Vec2) {
	motion, err := c.projector.Motion(c.last, screen, c.opts.PickDepth)
	if err != nil {
		c.log.Warn("group rotation aborted", zap.Error(err), zap.Float64s("screen", screen[:]))
		return
	}

	c.rotation.Apply(c.scene, motion)
	c.last = screen
}

func (c *Controller) release(b Button) {
	switch {
	case c.sub == DraggingFace && b == ButtonPrimary:
		c.log.Debug("face released",
			zap.Stringer("face", c.selected),
			zap.Float64("value", c.accum.Value(c.selected)),
		)
	case c.sub == DraggingGroup && b == ButtonSecondary:
		c.log.Debug("group rotation released")
	default:
		return
	}
	c.sub = Idle
}

func (c *Controller) command(symbol string) {
	if symbol == c.opts.ResetKey && c.opts.ResetKey != "" {
		c.Reset()
	}
}

// Reset returns every face to its rest pose, zeroes all accumulators and
// clears the group rotation. It is ignored during a gesture.
func (c *Controller) Reset() {
	if c.sub != Idle {
		return
	}
	c.accum.Reset()
	c.sync.Restore(c.scene)
	c.rotation.Apply(c.scene, mgl64.Vec3{})
	c.log.Info("faces reset")
}

// Mode returns the current top-level mode.
func (c *Controller) Mode() Mode { return c.mode }

// SubState returns the face manipulation sub-state.
func (c *Controller) SubState() SubState { return c.sub }

// Selected returns the face being dragged, if any.
func (c *Controller) Selected() (box.FaceID, bool) {
	if c.sub != DraggingFace {
		return 0, false
	}
	return c.selected, true
}

// Accumulator returns the drive value of a face.
func (c *Controller) Accumulator(id box.FaceID) float64 {
	return c.accum.Value(id)
}

// Range returns the admissible interval of a face's drive value.
func (c *Controller) Range(id box.FaceID) (lo, hi float64) {
	return c.accum.Range(id)
}

// Faces returns the current geometry of all faces.
func (c *Controller) Faces() [box.NumFaces]box.Face {
	return c.sync.Faces()
}

// Transform returns the group rotation currently applied to every face.
func (c *Controller) Transform() mgl64.Mat4 {
	return c.rotation.Current()
}
