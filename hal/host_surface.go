//go:build cgo

package hal

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"flatquad/render"
)

// Indices are uint16, so one DrawTriangles call takes at most this many vertices.
const maxBatchVertices = (1<<16 - 1) / 3 * 3

// hostSurface keeps the last submitted frame and replays it on every Draw.
type hostSurface struct {
	frame     render.Frame
	submitted bool
	antiAlias bool

	src      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newHostSurface(antiAlias bool) *hostSurface {
	// Sample from the center pixel of a 3x3 white image so edges never bleed.
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &hostSurface{
		antiAlias: antiAlias,
		src:       white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (s *hostSurface) Submit(f render.Frame) {
	s.frame = f
	s.submitted = true
}

func (s *hostSurface) draw(screen *ebiten.Image) {
	if !s.submitted {
		return
	}
	screen.Fill(s.frame.Clear)

	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	opts := &ebiten.DrawTrianglesOptions{AntiAlias: s.antiAlias}
	for _, dc := range s.frame.Draws {
		n := render.Triangles(dc.Vertices) * 3
		for start := 0; start < n; start += maxBatchVertices {
			end := min(start+maxBatchVertices, n)
			s.vertices = s.vertices[:0]
			s.indices = s.indices[:0]
			for i, v := range dc.Vertices[start:end] {
				x, y := render.Project(s.frame.Camera, dc.Transform, v, w, h)
				s.vertices = append(s.vertices, ebiten.Vertex{
					DstX:   x,
					DstY:   y,
					SrcX:   1 + v.TexCoord[0],
					SrcY:   1 + v.TexCoord[1],
					ColorR: dc.Color.R,
					ColorG: dc.Color.G,
					ColorB: dc.Color.B,
					ColorA: dc.Color.A,
				})
				s.indices = append(s.indices, uint16(i))
			}
			screen.DrawTriangles(s.vertices, s.indices, s.src, opts)
		}
	}
}
