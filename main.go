package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"flatquad/app"
	"flatquad/config"
	"flatquad/hal"
	"flatquad/internal/buildinfo"
	"flatquad/internal/logging"
	"flatquad/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("flatquad", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfg      hal.HeadlessConfig
		path     string
		script   string
		snapshot string
		level    string
	)
	fs.StringVar(&path, "config", config.DefaultPath, "Display configuration file (YAML).")
	fs.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	fs.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	fs.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until quit).")
	fs.StringVar(&script, "script", "", "Headless input script, e.g. \"idle,key:a,key:escape\".")
	fs.StringVar(&snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	fs.StringVar(&level, "log-level", "info", "Log level: debug, info, warn, error.")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	lvl, err := logging.ParseLevel(level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log := logging.New(stderr, lvl)
	log.Info("starting", buildinfo.Attrs())

	example, err := app.Setup(app.Config{DisplayPath: path, Logger: log})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	display := example.Display()

	if !cfg.Enabled {
		if err := hal.RunWindow(example, display, log); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	in, err := hal.ParseScript(script)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	surface := render.NewImageSurface(display.Width(), display.Height())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := hal.RunHeadless(ctx, example, in, surface, cfg, log); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if snapshot != "" {
		if err := surface.WritePNG(snapshot); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		log.Info("snapshot written", "path", snapshot, "frames", surface.Frames())
	}
	return 0
}
