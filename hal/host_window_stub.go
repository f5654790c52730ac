//go:build !cgo

package hal

import (
	"errors"
	"log/slog"

	"flatquad/config"
	"flatquad/lifecycle"
)

func RunWindow(_ lifecycle.Driver, _ config.DisplayConfig, _ *slog.Logger) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1, or use -headless)")
}
