// Package app wires the window, scene and gallery into the main loop.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/shardgallery/internal/config"
	"github.com/Faultbox/shardgallery/internal/engine/input"
	"github.com/Faultbox/shardgallery/internal/engine/scene"
	"github.com/Faultbox/shardgallery/internal/engine/timeline"
	"github.com/Faultbox/shardgallery/internal/engine/window"
	"github.com/Faultbox/shardgallery/internal/gallery"
	"github.com/Faultbox/shardgallery/internal/logger"
	"github.com/Faultbox/shardgallery/internal/source"
)

// App is the running gallery application.
type App struct {
	cfg     *config.Config
	ctx     context.Context
	running bool

	window *window.Window
	scene  *scene.Scene
	input  *input.Input
	runner *timeline.Runner
	ctrl   *gallery.Controller
	scrub  *gallery.Scrub

	autoAdvanceLeft float64
}

// New creates the window, GL scene and gallery controller, and shows
// the first image.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		ctx: context.Background(),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Shard Gallery",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := a.window.DrawableSize()
	a.scene, err = scene.New(dw, dh)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	seed := cfg.Gallery.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var shuffleRng *rand.Rand
	if cfg.Gallery.Shuffle {
		shuffleRng = rng
	}
	loader, err := source.Open(cfg.Gallery.ImageSource, shuffleRng)
	if err != nil {
		a.close()
		return nil, err
	}

	a.input = input.New()
	a.runner = timeline.NewRunner()

	a.ctrl, err = gallery.NewController(a.ctx, gallery.Options{
		MaxPlaneWidth:      cfg.Gallery.MaxPlaneWidth,
		MaxPlaneHeight:     cfg.Gallery.MaxPlaneHeight,
		SegmentsX:          cfg.Gallery.SegmentsX,
		SegmentsY:          cfg.Gallery.SegmentsY,
		TransitionDuration: float32(cfg.Gallery.TransitionDuration.Seconds()),
		TransitionDelay:    float32(cfg.Gallery.TransitionDelay.Seconds()),
		PreloadRadius:      cfg.Gallery.PreloadRadius,
	}, loader, a.scene.NewMesh, a.runner, rng, logger.Log)
	if err != nil {
		a.close()
		return nil, err
	}
	a.scrub = gallery.NewScrub(a.ctrl)
	a.autoAdvanceLeft = cfg.Gallery.AutoAdvanceDelay.Seconds()

	// Warm the neighbours of the first image while it sits on screen.
	go a.ctrl.PreloadAround(a.ctx, 0, cfg.Gallery.PreloadRadius)

	return a, nil
}

// Run drives the main loop until quit.
func (a *App) Run() error {
	a.running = true
	lastTime := time.Now()

	logger.Info("starting gallery loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		a.updateAutoAdvance(dt)
		a.runner.Update(float32(dt))

		a.scene.Render()
		a.window.SwapBuffers()
	}

	return nil
}

func (a *App) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventQuit:
		a.running = false

	case input.EventWindowResize:
		dw, dh := a.window.DrawableSize()
		a.scene.Resize(dw, dh)

	case input.EventKeyDown:
		a.handleKey(event.Key)

	case input.EventPointerDown:
		a.scrub.Press(event.PointerX)

	case input.EventPointerMove:
		a.scrub.Move(a.ctx, event.PointerX)

	case input.EventPointerUp:
		a.scrub.Release()
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_RIGHT, sdl.SCANCODE_N:
		a.navigate(a.ctrl.Next(a.ctx))
	case sdl.SCANCODE_LEFT, sdl.SCANCODE_P:
		a.navigate(a.ctrl.Previous(a.ctx))
	case sdl.SCANCODE_R:
		a.navigate(a.ctrl.Reset(a.ctx))
	case sdl.SCANCODE_SPACE:
		a.ctrl.TogglePause()
	case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
		a.running = false
	}
}

// navigate restarts the auto-advance countdown and schedules a preload
// around the new index once the transition settles.
func (a *App) navigate(done <-chan error) {
	a.autoAdvanceLeft = a.cfg.Gallery.AutoAdvanceDelay.Seconds()

	go func() {
		if err := <-done; err != nil {
			logger.Warn("navigation failed", zap.Error(err))
			return
		}
		a.ctrl.PreloadAround(a.ctx, a.ctrl.Index(), a.cfg.Gallery.PreloadRadius)
	}()
}

// updateAutoAdvance counts down to the next automatic transition. The
// countdown holds while a transition runs or the pointer is dragging.
func (a *App) updateAutoAdvance(dt float64) {
	if !a.cfg.Gallery.AutoAdvance {
		return
	}
	if a.ctrl.IsTransitioning() || a.scrub.Pressed() {
		a.autoAdvanceLeft = a.cfg.Gallery.AutoAdvanceDelay.Seconds()
		return
	}

	a.autoAdvanceLeft -= dt
	if a.autoAdvanceLeft <= 0 {
		a.navigate(a.ctrl.Next(a.ctx))
	}
}

// Close releases GL resources and the window.
func (a *App) Close() {
	logger.Info("closing gallery")
	a.close()
}

func (a *App) close() {
	if a.scene != nil {
		a.scene.Destroy()
		a.scene = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
