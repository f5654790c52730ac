package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"flatquad/scene"
)

// DrawCall is one primitive submitted for a frame.
type DrawCall struct {
	Vertices  []scene.Vertex
	Color     scene.Color
	Transform scene.Transform
}

// Frame is everything a surface needs to draw one tick.
type Frame struct {
	Clear  scene.Color
	Camera scene.Camera
	Draws  []DrawCall
}

// Surface accepts per-frame draw submissions.
//
// Implementations clear to Frame.Clear once, then draw every call in submission
// order in a single pass. Vertices are consumed three at a time; a trailing partial
// triangle is ignored.
type Surface interface {
	Submit(f Frame)
}

// NewFrame assembles the frame for s using the pipeline clear color and the first
// scene camera. Draw calls follow scene registration order.
func NewFrame(p *Pipeline, s *scene.Scene) Frame {
	f := Frame{Clear: p.ClearColor(), Camera: scene.CameraStandard2D}
	if cam, ok := s.Camera(); ok {
		f.Camera = cam
	}
	drawables := s.Drawables()
	f.Draws = make([]DrawCall, 0, len(drawables))
	for _, d := range drawables {
		f.Draws = append(f.Draws, DrawCall{
			Vertices:  d.Vertices,
			Color:     d.Color,
			Transform: d.Transform,
		})
	}
	return f
}

// Project maps a vertex to pixel coordinates on a w x h target with Y pointing down.
func Project(cam scene.Camera, t scene.Transform, v scene.Vertex, w, h int) (x, y float32) {
	mvp := cam.Projection().Mul4(t.Matrix())
	clip := mvp.Mul4x1(mgl32.Vec4{v.Position[0], v.Position[1], v.Position[2], 1})
	cw := clip.W()
	if cw == 0 {
		cw = 1
	}
	nx, ny := clip.X()/cw, clip.Y()/cw
	x = (nx*0.5 + 0.5) * float32(w)
	y = (1 - (ny*0.5 + 0.5)) * float32(h)
	return x, y
}

// Triangles returns the number of whole triangles in a flat vertex list.
func Triangles(vertices []scene.Vertex) int {
	return len(vertices) / 3
}
