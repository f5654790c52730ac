package app

import (
	"log/slog"

	"flatquad/config"
	"flatquad/internal/logging"
	"flatquad/render"
	"flatquad/scene"
)

// ClearColor is the background painted before the quad every frame.
var ClearColor = scene.RGBA(0.00196, 0.23726, 0.21765, 1.0)

type Config struct {
	// DisplayPath is the display configuration file; empty means config.DefaultPath.
	DisplayPath string
	Logger      *slog.Logger
}

// NewPipeline returns the forward pipeline: one backbuffer stage cleared to
// ClearColor at depth 1 with a single flat pass.
func NewPipeline() *render.PipelineBuilder {
	return render.NewPipeline().WithStage(
		render.BackbufferStage().
			ClearTarget(ClearColor, 1.0).
			WithPass(render.DrawFlat),
	)
}

// Setup loads the display configuration and builds the render bundle. Any failure
// is returned as is (*config.LoadError or *render.BuildError) and no driver exists.
func Setup(cfg Config) (*Example, error) {
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	path := cfg.DisplayPath
	if path == "" {
		path = config.DefaultPath
	}

	display, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	log.Info("display config loaded",
		"path", path,
		"title", display.Title,
		"width", display.Width(),
		"height", display.Height(),
		"vsync", display.VSync,
	)

	bundle, err := render.NewBundle(NewPipeline(), display)
	if err != nil {
		return nil, err
	}
	return New(bundle, log), nil
}
