package scene

// Color is a straight-alpha RGBA color with float channels in [0, 1].
//
// It implements color.Color, so it can be handed to image/draw directly.
type Color struct {
	R, G, B, A float32
}

func RGB(r, g, b float32) Color     { return Color{R: r, G: g, B: b, A: 1} }
func RGBA(r, g, b, a float32) Color { return Color{R: r, G: g, B: b, A: a} }

// RGBA returns alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(clamp01(c.R)*alpha*0xFFFF + 0.5)
	g = uint32(clamp01(c.G)*alpha*0xFFFF + 0.5)
	b = uint32(clamp01(c.B)*alpha*0xFFFF + 0.5)
	a = uint32(alpha*0xFFFF + 0.5)
	return r, g, b, a
}

// InRange reports whether every channel lies in [0, 1].
func (c Color) InRange() bool {
	for _, v := range [4]float32{c.R, c.G, c.B, c.A} {
		if v < 0 || v > 1 || v != v {
			return false
		}
	}
	return true
}

func (c Color) WithAlpha(a float32) Color { c.A = a; return c }

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
