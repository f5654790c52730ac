//go:build cgo

package hal

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"flatquad/lifecycle"
)

func TestEbitenKeyNames(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want lifecycle.Key
	}{
		{ebiten.KeyEscape, lifecycle.KeyEscape},
		{ebiten.KeyEnter, lifecycle.KeyEnter},
		{ebiten.KeySpace, lifecycle.KeySpace},
		{ebiten.KeyBackspace, lifecycle.KeyBackspace},
		{ebiten.KeyTab, lifecycle.KeyTab},
		{ebiten.KeyArrowUp, lifecycle.KeyUp},
		{ebiten.KeyArrowDown, lifecycle.KeyDown},
		{ebiten.KeyArrowLeft, lifecycle.KeyLeft},
		{ebiten.KeyArrowRight, lifecycle.KeyRight},
		{ebiten.KeyA, lifecycle.KeyA},
		{ebiten.KeyZ, lifecycle.KeyZ},
		{ebiten.KeyDigit0, lifecycle.Key0},
		{ebiten.KeyDigit9, lifecycle.Key9},
		{ebiten.KeyF1, lifecycle.KeyF1},
	}
	for _, tt := range tests {
		got, ok := lifecycle.ParseKey(tt.key.String())
		if !ok || got != tt.want {
			t.Fatalf("ParseKey(%q)=%v,%v, want %v", tt.key.String(), got, ok, tt.want)
		}
	}
}

func TestEbitenUnmappedKeyIsUnknown(t *testing.T) {
	got, ok := lifecycle.ParseKey(ebiten.KeyNumpadEnter.String())
	if ok || got != lifecycle.KeyUnknown {
		t.Fatalf("ParseKey(%q)=%v,%v, want unknown", ebiten.KeyNumpadEnter.String(), got, ok)
	}
}
