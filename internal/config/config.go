// Package config handles editor configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/boxedit/internal/box"
)

// Start modes accepted by InteractionConfig.StartMode.
const (
	StartCamera     = "camera"
	StartManipulate = "manipulate"
)

// Config holds all editor settings.
type Config struct {
	Box         BoxConfig         `yaml:"box"`
	Interaction InteractionConfig `yaml:"interaction"`
	Camera      CameraConfig      `yaml:"camera"`
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// BoxConfig holds the outer walls of the bounding volume.
type BoxConfig struct {
	Min [3]float64 `yaml:"min"`
	Max [3]float64 `yaml:"max"`
}

// InteractionConfig holds drag and rotation tuning.
type InteractionConfig struct {
	Margin              float64 `yaml:"margin"`               // Inset between a face edge and the wall it abuts
	StepSize            float64 `yaml:"step_size"`            // Accumulator increment per move event
	RotationSensitivity float64 `yaml:"rotation_sensitivity"` // Degrees per world unit of pointer motion
	PickDepth           float64 `yaml:"pick_depth"`           // Normalized depth used for unprojection
	ToggleKey           string  `yaml:"toggle_key"`
	ResetKey            string  `yaml:"reset_key"`
	StartMode           string  `yaml:"start_mode"`
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Distance        float64 `yaml:"distance"`
	Pitch           float64 `yaml:"pitch"` // radians
	Yaw             float64 `yaml:"yaw"`   // radians
	FOV             float64 `yaml:"fov"`   // vertical, degrees
	Near            float64 `yaml:"near"`
	Far             float64 `yaml:"far"`
	DragSensitivity float64 `yaml:"drag_sensitivity"`
	ZoomSensitivity float64 `yaml:"zoom_sensitivity"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	VSync       bool    `yaml:"vsync"`
	FaceOpacity float32 `yaml:"face_opacity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config matching the classic 100-unit demo box.
func Default() *Config {
	return &Config{
		Box: BoxConfig{
			Min: [3]float64{-50, -50, -50},
			Max: [3]float64{50, 50, 50},
		},
		Interaction: InteractionConfig{
			Margin:              10,
			StepSize:            1,
			RotationSensitivity: 100,
			PickDepth:           0,
			ToggleKey:           "c",
			ResetKey:            "r",
			StartMode:           StartCamera,
		},
		Camera: CameraConfig{
			Distance:        250,
			Pitch:           0.5,
			Yaw:             0.5,
			FOV:             30,
			Near:            1,
			Far:             2000,
			DragSensitivity: 0.01,
			ZoomSensitivity: 0.01,
		},
		Graphics: GraphicsConfig{
			Width:       640,
			Height:      480,
			VSync:       true,
			FaceOpacity: 0.3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Bounds converts the box section into validated bounds.
func (c *Config) Bounds() (box.Bounds, error) {
	return box.NewBounds(mgl64.Vec3(c.Box.Min), mgl64.Vec3(c.Box.Max))
}

// Validate checks that the settings describe a usable session.
func (c *Config) Validate() error {
	b, err := c.Bounds()
	if err != nil {
		return fmt.Errorf("box: %w", err)
	}

	in := c.Interaction
	var errs []error
	if in.Margin < 0 {
		errs = append(errs, fmt.Errorf("interaction.margin must not be negative, got %g", in.Margin))
	}
	for a := box.AxisX; a <= box.AxisZ; a++ {
		if 2*in.Margin > b.Span(a) {
			errs = append(errs, fmt.Errorf("interaction.margin %g too large for %s span %g", in.Margin, a, b.Span(a)))
		}
	}
	if in.StepSize <= 0 {
		errs = append(errs, fmt.Errorf("interaction.step_size must be positive, got %g", in.StepSize))
	}
	if in.RotationSensitivity < 0 {
		errs = append(errs, fmt.Errorf("interaction.rotation_sensitivity must not be negative, got %g", in.RotationSensitivity))
	}
	if in.PickDepth < 0 || in.PickDepth > 1 {
		errs = append(errs, fmt.Errorf("interaction.pick_depth must be in [0, 1], got %g", in.PickDepth))
	}
	if in.ToggleKey == "" {
		errs = append(errs, errors.New("interaction.toggle_key must be set"))
	}
	if in.ResetKey != "" && in.ResetKey == in.ToggleKey {
		errs = append(errs, fmt.Errorf("interaction.reset_key %q collides with toggle_key", in.ResetKey))
	}
	if in.StartMode != StartCamera && in.StartMode != StartManipulate {
		errs = append(errs, fmt.Errorf("interaction.start_mode must be %q or %q, got %q", StartCamera, StartManipulate, in.StartMode))
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip range invalid: near %g far %g", c.Camera.Near, c.Camera.Far))
	}
	return errors.Join(errs...)
}
