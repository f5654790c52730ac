//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"flatquad/lifecycle"
)

// hostInput reads window and keyboard state once per tick.
type hostInput struct {
	keys []ebiten.Key
}

func newHostInput() *hostInput {
	return &hostInput{keys: make([]ebiten.Key, 0, 16)}
}

func (in *hostInput) Poll(dst []lifecycle.Event) []lifecycle.Event {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, lifecycle.CloseRequested{})
	}

	// Keys without a lifecycle.Key still arrive, as KeyUnknown.
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		key, _ := lifecycle.ParseKey(k.String())
		dst = append(dst, lifecycle.KeyPressed{Key: key})
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		key, _ := lifecycle.ParseKey(k.String())
		dst = append(dst, lifecycle.KeyReleased{Key: key})
	}
	return dst
}
