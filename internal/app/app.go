// Package app implements the interactive grooming viewer's frame loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/furgroom/internal/config"
	"github.com/Faultbox/furgroom/internal/engine/camera"
	"github.com/Faultbox/furgroom/internal/engine/debug"
	"github.com/Faultbox/furgroom/internal/engine/input"
	"github.com/Faultbox/furgroom/internal/engine/renderer"
	"github.com/Faultbox/furgroom/internal/engine/window"
	"github.com/Faultbox/furgroom/internal/fur"
	"github.com/Faultbox/furgroom/internal/logger"
	"github.com/Faultbox/furgroom/internal/trace"
	"github.com/Faultbox/furgroom/pkg/math"
)

const (
	windowTitle = "Fur Groom"
	// maxFrameTime bounds dt after stalls so recovery does not jump.
	maxFrameTime = 0.1
)

// App is the viewer instance.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	host     *sceneHost
	scene    *fur.Scene

	trace       *trace.Recorder
	screenshots *debug.ScreenshotCapture
	updates     <-chan *config.Config
	stopWatch   context.CancelFunc

	running    bool
	screenshot bool
	frame      int
	elapsed    float32
}

// New opens the window, builds the demo scene and, when configPath is set,
// starts watching it for live reloads.
func New(cfg *config.Config, configPath string) (*App, error) {
	a := &App{
		cfg:         cfg,
		log:         logger.Named("app"),
		input:       input.New(),
		camera:      camera.NewOrbitCamera(),
		screenshots: debug.NewScreenshotCapture(cfg.Window.ScreenshotDir, "furgroom"),
	}

	a.log.Info("initializing viewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("shells", cfg.Fur.ShellCount),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after window, since the OpenGL context must exist.
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		ClearColor: math.Color{R: 0.1, G: 0.1, B: 0.15, A: 1},
		BaseColor:  math.Color{R: 0.25, G: 0.18, B: 0.12, A: 1},
		LightDir:   cfg.Light.Direction(),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.host = &sceneHost{camera: a.camera}
	a.host.setViewport(a.window.GetSize())
	a.scene = fur.NewScene(a.host)
	a.host.scene = a.scene

	for _, s := range demoSurfaces() {
		if err := Configure(s, cfg); err != nil {
			a.Close()
			return nil, err
		}
		if err := s.Activate(); err != nil {
			a.Close()
			return nil, err
		}
		a.scene.Add(s)
	}
	a.resetCamera()

	if cfg.Trace.Enabled {
		a.trace, err = trace.NewRecorder(cfg.Trace.Path)
		if err != nil {
			a.Close()
			return nil, err
		}
	}

	if configPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		updates, err := config.Watch(ctx, configPath)
		if err != nil {
			cancel()
			a.log.Warn("config hot reload unavailable", zap.Error(err))
		} else {
			a.updates, a.stopWatch = updates, cancel
		}
	}

	a.log.Info("viewer initialized")
	return a, nil
}

// Run starts the main loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now
		dt = min(dt, maxFrameTime)

		// 1. Input
		if a.input.Update() {
			break
		}
		a.handleEvents()
		a.drainConfig()
		a.updateCamera()

		// 2. Tick and render every surface
		dw, dh := a.window.DrawableSize()
		a.renderer.Begin(a.camera.ViewProjection(float32(dw) / float32(max(dh, 1))))
		if err := a.scene.Frame(dt, a.pointer(), a.renderer); err != nil {
			a.log.Debug("frame errors", zap.Error(err))
		}
		a.renderer.End()

		a.elapsed += dt
		a.recordTrace()
		if a.screenshot {
			a.captureScreenshot()
			a.screenshot = false
		}
		a.frame++

		// 3. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.window.SetTitle(fmt.Sprintf("%s - %d fps", windowTitle, frameCount))
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.stopWatch != nil {
		a.stopWatch()
	}
	if a.scene != nil {
		for _, s := range a.scene.Surfaces() {
			s.Deactivate()
		}
	}
	if err := a.trace.Close(); err != nil {
		a.log.Warn("closing trace", zap.Error(err))
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(a.window.DrawableSize())
			a.host.setViewport(a.window.GetSize())
		case input.EventMouseWheel:
			a.camera.HandleZoom(event.Wheel)
		case input.EventKeyDown:
			a.handleAction(actionFor(event.Key))
		}
	}
}

func (a *App) handleAction(act action) {
	if kind, ok := gestureFor(act); ok {
		for _, s := range a.scene.Surfaces() {
			s.EnableGesture(kind, !s.GestureEnabled(kind))
		}
		a.log.Info("gesture toggled", zap.Stringer("gesture", kind))
		return
	}

	switch act {
	case actionQuit:
		a.running = false
	case actionToggleFur:
		s := a.scene.Surface(SphereID)
		if s == nil {
			return
		}
		if s.Active() {
			s.Deactivate()
		} else if err := s.Activate(); err != nil {
			a.log.Error("reactivating surface", zap.Error(err))
		}
	case actionReseed:
		a.cfg.Pattern.Seed++
		a.applyAll()
	case actionVerticalFur:
		if a.cfg.Fur.VerticalPreset > 0 {
			a.cfg.Fur.VerticalPreset = 0
			a.cfg.Fur.VerticalBlend = 0
			a.cfg.Sweep.Vertical.Enabled = false
		} else {
			a.cfg.Fur.VerticalPreset = 0.8
		}
		a.applyAll()
	case actionResetCamera:
		a.resetCamera()
	case actionScreenshot:
		a.screenshot = true
	}
}

// drainConfig applies the newest reloaded config, if any.
func (a *App) drainConfig() {
	select {
	case cfg, ok := <-a.updates:
		if !ok {
			a.updates = nil
			return
		}
		a.cfg = cfg
		a.screenshots.SetOutputDir(cfg.Window.ScreenshotDir)
		a.renderer.SetLightDir(cfg.Light.Direction())
		a.applyAll()
	default:
	}
}

func (a *App) applyAll() {
	for _, s := range a.scene.Surfaces() {
		if err := Configure(s, a.cfg); err != nil {
			if errors.Is(err, fur.ErrConfiguration) {
				a.log.Warn("config not applied", zap.Uint32("surface", uint32(s.ID)), zap.Error(err))
				continue
			}
			a.log.Error("config not applied", zap.Error(err))
		}
	}
}

func (a *App) updateCamera() {
	orbit := a.input.Orbit()
	if orbit.Down && !orbit.Pressed {
		a.camera.HandleDrag(orbit.DX, orbit.DY)
	}
}

func (a *App) resetCamera() {
	if s := a.scene.Surface(SphereID); s != nil {
		a.camera.FitToBounds(s.Mesh.Bounds)
	}
}

func (a *App) pointer() fur.Input {
	p := a.input.Pointer()
	return fur.Input{
		Down:     p.Down,
		Pressed:  p.Pressed,
		Released: p.Released,
		Position: math.Vec2{X: p.X, Y: p.Y},
	}
}

func (a *App) recordTrace() {
	if a.trace == nil {
		return
	}
	for _, s := range a.scene.Surfaces() {
		if err := a.trace.WriteFrame(a.frame, a.elapsed, uint32(s.ID), s.Frame()); err != nil {
			a.log.Warn("trace disabled", zap.Error(err))
			_ = a.trace.Close()
			a.trace = nil
			return
		}
	}
}

func (a *App) captureScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}
