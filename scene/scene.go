package scene

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a position plus texture coordinate (PosTex layout).
type Vertex struct {
	Position [3]float32
	TexCoord [2]float32
}

// Transform is an object-to-world matrix. The zero value means identity.
type Transform mgl32.Mat4

func IdentityTransform() Transform { return Transform(mgl32.Ident4()) }

// Matrix returns the transform as a matrix, substituting identity for the zero value.
func (t Transform) Matrix() mgl32.Mat4 {
	if t == (Transform{}) {
		return mgl32.Ident4()
	}
	return mgl32.Mat4(t)
}

// Drawable is a flat-colored triangle list with an object transform.
type Drawable struct {
	Vertices  []Vertex
	Color     Color
	Transform Transform
}

// Scene owns the cameras and drawables of a run.
type Scene struct {
	cameras   []Camera
	drawables []Drawable
}

func New() *Scene {
	return &Scene{}
}

// Init registers a camera. Each call adds one more; callers register exactly one.
func (s *Scene) Init(camera Camera) {
	s.cameras = append(s.cameras, camera)
}

// AddDrawable appends a drawable. Geometry is not validated: a list that does not
// form a whole triangle is stored as is and renders nothing for the leftover vertices.
func (s *Scene) AddDrawable(vertices []Vertex, color Color, transform Transform) {
	v := make([]Vertex, len(vertices))
	copy(v, vertices)
	s.drawables = append(s.drawables, Drawable{
		Vertices:  v,
		Color:     color,
		Transform: transform,
	})
}

// Camera returns the first registered camera.
func (s *Scene) Camera() (Camera, bool) {
	if s == nil || len(s.cameras) == 0 {
		return 0, false
	}
	return s.cameras[0], true
}

func (s *Scene) Cameras() []Camera {
	if s == nil {
		return nil
	}
	out := make([]Camera, len(s.cameras))
	copy(out, s.cameras)
	return out
}

// Drawables returns a copy of the drawable list in registration order. Vertex slices
// are shared with the scene and must not be modified.
func (s *Scene) Drawables() []Drawable {
	if s == nil {
		return nil
	}
	out := make([]Drawable, len(s.drawables))
	copy(out, s.drawables)
	return out
}

func (s *Scene) NumCameras() int {
	if s == nil {
		return 0
	}
	return len(s.cameras)
}

func (s *Scene) NumDrawables() int {
	if s == nil {
		return 0
	}
	return len(s.drawables)
}
