// Package hal hosts a lifecycle.Driver: it owns the window (or the headless
// ticker), turns device input into lifecycle events and provides the render surface.
package hal

import "flatquad/lifecycle"

// Input yields the events observed since the previous tick.
type Input interface {
	// Poll appends this tick's events to dst and returns it.
	Poll(dst []lifecycle.Event) []lifecycle.Event
}
