package hal

import (
	"fmt"
	"strings"

	"flatquad/lifecycle"
)

// ScriptInput replays a fixed event script, one step per tick. It stands in for a
// keyboard in headless runs.
type ScriptInput struct {
	steps [][]lifecycle.Event
	next  int
}

// ParseScript parses a comma-separated list of tick steps. A step is one or more
// '+'-joined items:
//
//	key:<name>      key press (names as lifecycle.ParseKey)
//	release:<name>  key release
//	close           window close request
//	idle            no event this tick
//
// For example "idle,key:a,key:escape" presses A on tick 2 and Escape on tick 3.
func ParseScript(script string) (*ScriptInput, error) {
	in := &ScriptInput{}
	script = strings.TrimSpace(script)
	if script == "" {
		return in, nil
	}
	for i, step := range strings.Split(script, ",") {
		var events []lifecycle.Event
		for _, item := range strings.Split(step, "+") {
			ev, err := parseItem(strings.TrimSpace(item))
			if err != nil {
				return nil, fmt.Errorf("script step %d: %w", i+1, err)
			}
			if ev != nil {
				events = append(events, ev)
			}
		}
		in.steps = append(in.steps, events)
	}
	return in, nil
}

func parseItem(item string) (lifecycle.Event, error) {
	kind, arg, _ := strings.Cut(item, ":")
	switch strings.ToLower(kind) {
	case "idle":
		return nil, nil
	case "close":
		return lifecycle.CloseRequested{}, nil
	case "key", "release":
		k, ok := lifecycle.ParseKey(arg)
		if !ok {
			return nil, fmt.Errorf("unknown key %q", arg)
		}
		if strings.EqualFold(kind, "release") {
			return lifecycle.KeyReleased{Key: k}, nil
		}
		return lifecycle.KeyPressed{Key: k}, nil
	default:
		return nil, fmt.Errorf("unknown item %q", item)
	}
}

func (in *ScriptInput) Poll(dst []lifecycle.Event) []lifecycle.Event {
	if in.next < len(in.steps) {
		dst = append(dst, in.steps[in.next]...)
	}
	in.next++
	return dst
}

// Steps returns the number of scripted ticks.
func (in *ScriptInput) Steps() int { return len(in.steps) }

// Done reports whether every step has been delivered.
func (in *ScriptInput) Done() bool { return in.next >= len(in.steps) }
