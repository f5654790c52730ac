package lifecycle

import "strings"

// Key is a minimal key identifier.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyDelete
	KeyHome
	KeyEnd
	KeyF1
	KeyF2
	KeyF3

	// KeyA..KeyZ and Key0..Key9 are contiguous.
	KeyA
	KeyZ = KeyA + 25
	Key0 = KeyZ + 1
	Key9 = Key0 + 9
)

var keyNames = map[Key]string{
	KeyUnknown:   "unknown",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeySpace:     "space",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
}

// Aliases accepted by ParseKey besides the canonical names. The Arrow* spellings
// are what ebiten.Key.String returns.
var keyAliases = map[string]Key{
	"esc":        KeyEscape,
	"return":     KeyEnter,
	"arrowup":    KeyUp,
	"arrowdown":  KeyDown,
	"arrowleft":  KeyLeft,
	"arrowright": KeyRight,
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + (k - KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	}
	return "unknown"
}

// ParseKey resolves a key name case-insensitively. It accepts the names produced by
// Key.String and by ebiten.Key.String ("Escape", "A", "Digit1", "ArrowUp").
func ParseKey(name string) (Key, bool) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return KeyUnknown, false
	}
	if k, ok := keyAliases[s]; ok {
		return k, true
	}
	s = strings.TrimPrefix(s, "digit")
	if len(s) == 1 {
		switch c := s[0]; {
		case c >= 'a' && c <= 'z':
			return KeyA + Key(c-'a'), true
		case c >= '0' && c <= '9':
			return Key0 + Key(c-'0'), true
		}
	}
	for k, n := range keyNames {
		if k != KeyUnknown && n == s {
			return k, true
		}
	}
	return KeyUnknown, false
}
