package main

import (
	"flag"
	"fmt"
	"os"

	"flatquad/config"
)

func main() {
	var (
		outPath     = flag.String("out", config.DefaultPath, "Output file.")
		title       = flag.String("title", config.DefaultTitle, "Window title.")
		width       = flag.Int("width", config.DefaultWidth, "Window width.")
		height      = flag.Int("height", config.DefaultHeight, "Window height.")
		fullscreen  = flag.Bool("fullscreen", false, "Start fullscreen.")
		vsync       = flag.Bool("vsync", true, "Enable vsync.")
		resizable   = flag.Bool("resizable", true, "Allow resizing.")
		multisample = flag.Int("multisampling", 1, "Samples per pixel (>1 enables antialiasing).")
		tps         = flag.Int("tps", config.DefaultTPS, "Ticks per second.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: mkdisplay -out display_config.yaml [-title T] [-width W] [-height H] [-fullscreen] [-vsync=false]")
	}

	cfg := config.Default()
	cfg.Title = *title
	cfg.Dimensions = [2]int{*width, *height}
	cfg.Fullscreen = *fullscreen
	cfg.VSync = *vsync
	cfg.Resizable = *resizable
	cfg.Multisampling = *multisample
	cfg.TPS = *tps

	if err := config.Save(*outPath, cfg); err != nil {
		fatalf("mkdisplay: %v", err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", *outPath, cfg.Width(), cfg.Height())
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
