package app

import (
	"fmt"

	"github.com/Faultbox/boxedit/internal/config"
	"github.com/Faultbox/boxedit/internal/engine/camera"
	"github.com/Faultbox/boxedit/internal/interact"
)

// ControllerOptions maps the interaction config onto controller options.
// Camera and Logger are left for the caller.
func ControllerOptions(cfg *config.Config) (interact.Options, error) {
	bounds, err := cfg.Bounds()
	if err != nil {
		return interact.Options{}, err
	}

	mode, err := startMode(cfg.Interaction.StartMode)
	if err != nil {
		return interact.Options{}, err
	}

	ic := cfg.Interaction
	return interact.Options{
		Bounds:              bounds,
		Margin:              ic.Margin,
		StepSize:            ic.StepSize,
		RotationSensitivity: ic.RotationSensitivity,
		PickDepth:           ic.PickDepth,
		ToggleKey:           ic.ToggleKey,
		ResetKey:            ic.ResetKey,
		StartMode:           mode,
	}, nil
}

func startMode(s string) (interact.Mode, error) {
	switch s {
	case config.StartCamera, "":
		return interact.ModeCameraOrbit, nil
	case config.StartManipulate:
		return interact.ModeFaceManipulate, nil
	default:
		return 0, fmt.Errorf("unknown start mode %q", s)
	}
}

// NewCamera builds the orbit camera from config, centered on the box.
func NewCamera(cfg *config.Config) *camera.OrbitCamera {
	cc := cfg.Camera
	cam := camera.NewOrbitCamera()
	cam.Distance = cc.Distance
	cam.RotationX = cc.Pitch
	cam.RotationY = cc.Yaw
	cam.FOV = cc.FOV
	cam.Near = cc.Near
	cam.Far = cc.Far
	cam.DragSensitivity = cc.DragSensitivity
	cam.ZoomSensitivity = cc.ZoomSensitivity

	if bounds, err := cfg.Bounds(); err == nil {
		cam.Center = bounds.Center()
	}
	return cam
}

// title describes the current mode in the window title.
func title(mode interact.Mode, sub interact.SubState) string {
	if mode == interact.ModeCameraOrbit {
		return "BoxEdit - camera (c: edit faces)"
	}
	if sub == interact.Idle {
		return "BoxEdit - faces (c: camera, r: reset)"
	}
	return fmt.Sprintf("BoxEdit - faces [%s]", sub)
}
