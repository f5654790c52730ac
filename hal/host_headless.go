package hal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flatquad/internal/logging"
	"flatquad/lifecycle"
	"flatquad/render"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64 // stop after N ticks (0 = until the driver quits)
}

// RunHeadless drives d from a ticker instead of a window. It returns nil when the
// driver quits or the tick limit is reached, and ctx.Err() when ctx ends first.
func RunHeadless(ctx context.Context, d lifecycle.Driver, in Input, s render.Surface, cfg HeadlessConfig, log *slog.Logger) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if log == nil {
		log = logging.Discard()
	}

	period := time.Second / time.Duration(cfg.Hz)
	if period <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(period)
	defer t.Stop()

	d.OnStart()
	log.Info("headless run", "hz", cfg.Hz, "ticks", cfg.Ticks)

	var (
		tick   uint64
		events []lifecycle.Event
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			tick++
			if in != nil {
				events = in.Poll(events[:0])
			}
			if lifecycle.Step(d, events, s) == lifecycle.TransQuit {
				log.Info("driver quit", "tick", tick)
				return nil
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				log.Info("tick limit reached", "tick", tick)
				return nil
			}
		}
	}
}
