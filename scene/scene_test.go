package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSceneInitRegistersEachCall(t *testing.T) {
	s := New()
	if _, ok := s.Camera(); ok {
		t.Fatalf("empty scene reported a camera")
	}
	s.Init(CameraStandard2D)
	if got := s.NumCameras(); got != 1 {
		t.Fatalf("NumCameras=%d, want 1", got)
	}
	s.Init(CameraStandard2D)
	if got := s.NumCameras(); got != 2 {
		t.Fatalf("NumCameras=%d after second Init, want 2", got)
	}
	cam, ok := s.Camera()
	if !ok || cam != CameraStandard2D {
		t.Fatalf("Camera()=%v,%v", cam, ok)
	}
}

func TestAddDrawableAcceptsDegenerateGeometry(t *testing.T) {
	s := New()
	s.AddDrawable([]Vertex{{Position: [3]float32{0, 0, 0}}}, RGB(1, 0, 0), Transform{})
	s.AddDrawable(nil, RGB(0, 1, 0), IdentityTransform())
	if got := s.NumDrawables(); got != 2 {
		t.Fatalf("NumDrawables=%d, want 2", got)
	}
	d := s.Drawables()
	if len(d[0].Vertices) != 1 || len(d[1].Vertices) != 0 {
		t.Fatalf("unexpected vertex counts: %d, %d", len(d[0].Vertices), len(d[1].Vertices))
	}
}

func TestAddDrawableCopiesVertices(t *testing.T) {
	s := New()
	v := []Vertex{{Position: [3]float32{1, 2, 3}}}
	s.AddDrawable(v, RGB(1, 1, 1), Transform{})
	v[0].Position[0] = 9
	if got := s.Drawables()[0].Vertices[0].Position[0]; got != 1 {
		t.Fatalf("scene vertex changed through caller slice: %v", got)
	}
}

func TestNilSceneAccessors(t *testing.T) {
	var s *Scene
	if s.NumCameras() != 0 || s.NumDrawables() != 0 || s.Cameras() != nil || s.Drawables() != nil {
		t.Fatalf("nil scene should be empty")
	}
}

func TestZeroTransformIsIdentity(t *testing.T) {
	if (Transform{}).Matrix() != mgl32.Ident4() {
		t.Fatalf("zero transform should resolve to identity")
	}
	m := mgl32.Translate3D(1, 2, 3)
	if Transform(m).Matrix() != m {
		t.Fatalf("non-zero transform changed")
	}
}

func TestStandard2DProjectionMapsUnitSquare(t *testing.T) {
	p := CameraStandard2D.Projection()
	got := p.Mul4x1(mgl32.Vec4{0.5, -0.25, 0, 1})
	if got.X() != 0.5 || got.Y() != -0.25 || got.W() != 1 {
		t.Fatalf("projection moved point: %v", got)
	}
}

func TestColorRGBAPremultiplies(t *testing.T) {
	r, g, b, a := RGBA(1, 0.5, 0, 0.5).RGBA()
	if a != 0x8000 {
		t.Fatalf("a=%#x, want 0x8000", a)
	}
	if r != 0x8000 || g != 0x4000 || b != 0 {
		t.Fatalf("rgb=%#x,%#x,%#x", r, g, b)
	}
}

func TestColorInRange(t *testing.T) {
	tests := []struct {
		c    Color
		want bool
	}{
		{RGB(0, 0, 0), true},
		{RGBA(1, 1, 1, 1), true},
		{RGB(1.5, 0, 0), false},
		{RGBA(0, 0, 0, -0.1), false},
	}
	for _, tt := range tests {
		if got := tt.c.InRange(); got != tt.want {
			t.Errorf("%+v.InRange()=%v, want %v", tt.c, got, tt.want)
		}
	}
}
