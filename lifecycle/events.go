// Package lifecycle defines what a host loop feeds a frame driver: input events,
// state transitions and the per-tick call order.
package lifecycle

import "fmt"

// Event is a raw input event delivered by the host.
type Event interface {
	isEvent()
}

// CloseRequested is sent when the window manager asks the window to close.
type CloseRequested struct{}

// KeyPressed is sent once when a key goes down.
type KeyPressed struct {
	Key Key
}

// KeyReleased is sent once when a key goes up.
type KeyReleased struct {
	Key Key
}

func (CloseRequested) isEvent() {}
func (KeyPressed) isEvent()     {}
func (KeyReleased) isEvent()    {}

func (CloseRequested) String() string { return "close-requested" }
func (e KeyPressed) String() string   { return fmt.Sprintf("key-pressed(%s)", e.Key) }
func (e KeyReleased) String() string  { return fmt.Sprintf("key-released(%s)", e.Key) }

// IsCloseRequested reports whether ev asks the window to close.
func IsCloseRequested(ev Event) bool {
	_, ok := ev.(CloseRequested)
	return ok
}

// IsKey reports whether ev is a press of k.
func IsKey(ev Event, k Key) bool {
	p, ok := ev.(KeyPressed)
	return ok && p.Key == k
}
