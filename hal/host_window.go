//go:build cgo

package hal

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"flatquad/config"
	"flatquad/internal/logging"
	"flatquad/lifecycle"
)

// RunWindow opens a desktop window configured from display and drives d until it
// quits. It blocks until the window closes.
func RunWindow(d lifecycle.Driver, display config.DisplayConfig, log *slog.Logger) error {
	if log == nil {
		log = logging.Discard()
	}
	applyDisplay(display)

	g := &hostGame{
		d:       d,
		in:      newHostInput(),
		surface: newHostSurface(display.Multisampling > 1),
		log:     log,
	}
	d.OnStart()
	log.Info("window open", "title", display.Title, "width", display.Width(), "height", display.Height())
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	log.Info("window closed", "ticks", g.ticks)
	return nil
}

func applyDisplay(c config.DisplayConfig) {
	ebiten.SetWindowTitle(c.Title)
	ebiten.SetWindowSize(c.Width(), c.Height())

	minW, minH, maxW, maxH := -1, -1, -1, -1
	if c.MinDimensions != nil {
		minW, minH = c.MinDimensions[0], c.MinDimensions[1]
	}
	if c.MaxDimensions != nil {
		maxW, maxH = c.MaxDimensions[0], c.MaxDimensions[1]
	}
	ebiten.SetWindowSizeLimits(minW, minH, maxW, maxH)

	if c.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetWindowDecorated(c.Decorated())
	ebiten.SetWindowFloating(c.AlwaysOnTop)
	ebiten.SetFullscreen(c.Fullscreen)
	ebiten.SetVsyncEnabled(c.VSync)
	ebiten.SetTPS(c.TPS)

	// The driver decides when to quit; a close request is just an event.
	ebiten.SetWindowClosingHandled(true)
}

type hostGame struct {
	d       lifecycle.Driver
	in      *hostInput
	surface *hostSurface
	log     *slog.Logger
	events  []lifecycle.Event
	ticks   uint64
	quit    bool
}

func (g *hostGame) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.ticks++
	g.events = g.in.Poll(g.events[:0])
	if lifecycle.Step(g.d, g.events, g.surface) == lifecycle.TransQuit {
		g.quit = true
		g.log.Debug("driver quit", "tick", g.ticks)
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.surface.draw(screen)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
