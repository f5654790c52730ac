package lifecycle

import "flatquad/render"

// State is the frame driver state.
type State uint8

const (
	// StateIdle is the zero value: the driver has not started.
	StateIdle State = iota
	StateRunning
	// StateQuitting is terminal.
	StateQuitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateQuitting:
		return "quitting"
	default:
		return "invalid"
	}
}

// Trans is what a driver callback asks of the host loop.
type Trans uint8

const (
	TransNone Trans = iota
	TransQuit
)

func (t Trans) String() string {
	if t == TransQuit {
		return "quit"
	}
	return "none"
}

// Driver is the per-frame contract between a host loop and the program.
//
// Hosts call OnStart once, then Step every tick until it returns TransQuit. All
// calls happen on one goroutine. Events delivered before OnStart do not change
// state.
type Driver interface {
	OnStart()
	HandleEvent(ev Event) Trans
	Update(s render.Surface) Trans
}

// Step runs one host tick: every event in order, then one Update. The first event
// that yields TransQuit ends the tick; later events are dropped and Update is not
// called.
func Step(d Driver, events []Event, s render.Surface) Trans {
	for _, ev := range events {
		if d.HandleEvent(ev) == TransQuit {
			return TransQuit
		}
	}
	return d.Update(s)
}
