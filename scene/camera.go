package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera selects a projection. It carries no mutable state.
type Camera uint8

const (
	// CameraStandard2D is an orthographic projection of the square [-1, 1] x [-1, 1]
	// with Y pointing up.
	CameraStandard2D Camera = iota + 1
)

func (c Camera) String() string {
	switch c {
	case CameraStandard2D:
		return "standard-2d"
	default:
		return "unknown"
	}
}

// Projection returns the camera projection matrix.
//
// Unknown cameras project through identity, which for this camera family is the
// same square.
func (c Camera) Projection() mgl32.Mat4 {
	switch c {
	case CameraStandard2D:
		return mgl32.Ortho2D(-1, 1, -1, 1)
	default:
		return mgl32.Ident4()
	}
}
