// Package buildinfo exposes identifiers stamped at link time, for example:
//
//	go build -ldflags "-X flatquad/internal/buildinfo.Version=v0.1.0 -X flatquad/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "log/slog"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for window titles and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Attrs returns the build identifiers as log attributes.
func Attrs() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("date", Date),
	)
}
