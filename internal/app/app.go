// Package app runs the face editor: window, input, scene, controller and
// renderer wired into one event loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/boxedit/internal/box"
	"github.com/Faultbox/boxedit/internal/config"
	"github.com/Faultbox/boxedit/internal/engine/camera"
	"github.com/Faultbox/boxedit/internal/engine/input"
	"github.com/Faultbox/boxedit/internal/engine/renderer"
	"github.com/Faultbox/boxedit/internal/engine/window"
	"github.com/Faultbox/boxedit/internal/interact"
	"github.com/Faultbox/boxedit/internal/logger"
	"github.com/Faultbox/boxedit/internal/scene"
)

// idleWait bounds how long the loop blocks for input when nothing is due.
const idleWait = 50 * time.Millisecond

// App is the main editor instance.
type App struct {
	config  *config.Config
	running bool
	log     *zap.Logger

	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	camera     *camera.OrbitCamera
	scene      *scene.Scene
	controller *interact.Controller

	title string
}

// New creates the window and GL state and attaches a controller to the
// initial six faces.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}

	opts, err := ControllerOptions(cfg)
	if err != nil {
		return nil, fmt.Errorf("interaction config: %w", err)
	}
	faces := box.BuildFaces(opts.Bounds, opts.Margin)

	a.log.Info("initializing editor",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Stringer("mode", opts.StartMode),
	)

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:  "BoxEdit",
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:       dw,
		Height:      dh,
		FaceOpacity: cfg.Graphics.FaceOpacity,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.renderer.SetWalls(opts.Bounds)

	ww, wh := a.window.Size()
	a.camera = NewCamera(cfg)
	a.scene = scene.New(a.camera, ww, wh, faces)
	a.input = input.New()

	opts.Camera = a.camera
	a.controller, err = interact.New(a.scene, faces, opts)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to attach controller: %w", err)
	}

	a.log.Info("editor initialized")
	return a, nil
}

// Run processes input until the window closes. A frame is drawn only when
// the scene has a pending render request.
func (a *App) Run() error {
	a.running = true
	a.log.Info("starting event loop")

	wait := time.Duration(0)
	for a.running {
		if a.input.Update(wait) {
			a.running = false
			break
		}

		for _, ev := range a.input.Events() {
			a.dispatch(ev)
		}

		a.updateTitle()

		if a.scene.TakeRenderRequest() {
			selected, ok := a.controller.Selected()
			a.renderer.Draw(a.scene, selected, ok)
			a.window.SwapBuffers()
			wait = 0
		} else {
			wait = idleWait
		}
	}

	return nil
}

func (a *App) dispatch(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		a.scene.Resize(a.window.Size())
		a.renderer.Resize(a.window.DrawableSize())

	case input.EventWheel:
		if a.controller.Mode() == interact.ModeCameraOrbit {
			a.camera.HandleWheel(ev.Wheel)
			a.scene.RequestRender()
		}

	case input.EventInteract:
		if ev.Interact.Type == interact.EventKeyPress && ev.Interact.Key == "escape" {
			a.running = false
			return
		}
		a.controller.Handle(ev.Interact)
	}
}

func (a *App) updateTitle() {
	t := title(a.controller.Mode(), a.controller.SubState())
	if t != a.title {
		a.window.SetTitle(t)
		a.title = t
	}
}

// Close cleans up editor resources.
func (a *App) Close() {
	a.log.Info("closing editor")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
