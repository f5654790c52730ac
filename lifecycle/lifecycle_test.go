package lifecycle

import (
	"testing"

	"flatquad/render"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
		ok   bool
	}{
		{"Escape", KeyEscape, true},
		{"esc", KeyEscape, true},
		{"A", KeyA, true},
		{"z", KeyZ, true},
		{"Digit7", Key0 + 7, true},
		{"3", Key0 + 3, true},
		{"ArrowUp", KeyUp, true},
		{"F2", KeyF2, true},
		{" space ", KeySpace, true},
		{"", KeyUnknown, false},
		{"ShiftLeft", KeyUnknown, false},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseKey(%q)=%v,%v, want %v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyStringRoundTrips(t *testing.T) {
	for k := KeyUp; k <= Key9; k++ {
		got, ok := ParseKey(k.String())
		if !ok || got != k {
			t.Fatalf("ParseKey(%q)=%v,%v, want %v", k.String(), got, ok, k)
		}
	}
}

func TestEventPredicates(t *testing.T) {
	if !IsCloseRequested(CloseRequested{}) || IsCloseRequested(KeyPressed{Key: KeyEscape}) {
		t.Fatalf("IsCloseRequested mismatch")
	}
	if !IsKey(KeyPressed{Key: KeyEscape}, KeyEscape) {
		t.Fatalf("IsKey should match a press")
	}
	if IsKey(KeyReleased{Key: KeyEscape}, KeyEscape) || IsKey(KeyPressed{Key: KeyA}, KeyEscape) {
		t.Fatalf("IsKey should only match presses of the same key")
	}
}

type recordingDriver struct {
	events  []Event
	updates int
	quitOn  Key
}

func (d *recordingDriver) OnStart() {}

func (d *recordingDriver) HandleEvent(ev Event) Trans {
	d.events = append(d.events, ev)
	if IsKey(ev, d.quitOn) {
		return TransQuit
	}
	return TransNone
}

func (d *recordingDriver) Update(render.Surface) Trans {
	d.updates++
	return TransNone
}

func TestStepRunsEventsThenUpdate(t *testing.T) {
	d := &recordingDriver{quitOn: KeyEscape}
	tr := Step(d, []Event{KeyPressed{Key: KeyA}, KeyReleased{Key: KeyA}}, nil)
	if tr != TransNone || len(d.events) != 2 || d.updates != 1 {
		t.Fatalf("trans=%v events=%d updates=%d", tr, len(d.events), d.updates)
	}
	if Step(d, nil, nil) != TransNone || d.updates != 2 {
		t.Fatalf("empty tick should still update once")
	}
}

func TestStepStopsAtQuit(t *testing.T) {
	d := &recordingDriver{quitOn: KeyEscape}
	tr := Step(d, []Event{KeyPressed{Key: KeyEscape}, KeyPressed{Key: KeyA}}, nil)
	if tr != TransQuit {
		t.Fatalf("trans=%v, want quit", tr)
	}
	if len(d.events) != 1 || d.updates != 0 {
		t.Fatalf("events=%d updates=%d after quit", len(d.events), d.updates)
	}
}

func TestStateStrings(t *testing.T) {
	if StateIdle.String() != "idle" || StateRunning.String() != "running" || StateQuitting.String() != "quitting" {
		t.Fatalf("unexpected state names")
	}
}
