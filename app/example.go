package app

import (
	"log/slog"

	"flatquad/config"
	"flatquad/internal/logging"
	"flatquad/lifecycle"
	"flatquad/render"
	"flatquad/scene"
)

// Example drives one static scene: a camera and a flat quad. It quits on a window
// close request or Escape.
type Example struct {
	bundle *render.Bundle
	log    *slog.Logger
	scene  *scene.Scene
	state  lifecycle.State
	frames uint64
}

var _ lifecycle.Driver = (*Example)(nil)

func New(bundle *render.Bundle, log *slog.Logger) *Example {
	if log == nil {
		log = logging.Discard()
	}
	return &Example{bundle: bundle, log: log}
}

// OnStart builds the scene and enters StateRunning. Later calls do nothing.
func (e *Example) OnStart() {
	if e.state != lifecycle.StateIdle {
		return
	}
	sc := scene.New()
	InitCamera(sc)
	InitSquare(sc)
	e.scene = sc
	e.state = lifecycle.StateRunning
	e.log.Debug("scene ready", "cameras", sc.NumCameras(), "drawables", sc.NumDrawables())
}

// HandleEvent moves a running driver to StateQuitting on a close request or
// Escape. Events before OnStart are ignored.
func (e *Example) HandleEvent(ev lifecycle.Event) lifecycle.Trans {
	switch e.state {
	case lifecycle.StateIdle:
		return lifecycle.TransNone
	case lifecycle.StateQuitting:
		return lifecycle.TransQuit
	}
	if lifecycle.IsCloseRequested(ev) || lifecycle.IsKey(ev, lifecycle.KeyEscape) {
		e.state = lifecycle.StateQuitting
		e.log.Info("quit requested", "event", ev, "frames", e.frames)
		return lifecycle.TransQuit
	}
	return lifecycle.TransNone
}

// Update submits the scene to s. The scene is static, so nothing changes between
// calls.
func (e *Example) Update(s render.Surface) lifecycle.Trans {
	if s != nil {
		s.Submit(render.NewFrame(e.bundle.Pipeline, e.scene))
	}
	e.frames++
	return lifecycle.TransNone
}

func (e *Example) State() lifecycle.State        { return e.state }
func (e *Example) Scene() *scene.Scene           { return e.scene }
func (e *Example) Display() config.DisplayConfig { return e.bundle.Display }

// Frames returns how many times Update ran.
func (e *Example) Frames() uint64 { return e.frames }
