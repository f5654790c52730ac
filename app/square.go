package app

import "flatquad/scene"

// Quad bounds in camera space.
const (
	quadLeft   = 0.25
	quadRight  = 0.75
	quadBottom = 0.25
	quadUp     = 0.75
)

func InitCamera(sc *scene.Scene) {
	sc.Init(scene.CameraStandard2D)
}

// GenVertices returns the quad as two triangles. The third and fourth vertices both
// use tex coord (1,1); no texture is sampled, so the mapping is kept as is.
func GenVertices() []scene.Vertex {
	return []scene.Vertex{
		{Position: [3]float32{quadLeft, quadBottom, 0}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{quadRight, quadBottom, 0}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{quadLeft, quadUp, 0}, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{quadRight, quadUp, 0}, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{quadLeft, quadUp, 0}, TexCoord: [2]float32{0, 1}},
		{Position: [3]float32{quadRight, quadBottom, 0}, TexCoord: [2]float32{0, 0}},
	}
}

func GenColors() scene.Color {
	return scene.RGBA(0.25, 0.25, 0.0, 1.0)
}

// InitSquare adds the quad with an identity transform.
func InitSquare(sc *scene.Scene) {
	sc.AddDrawable(GenVertices(), GenColors(), scene.IdentityTransform())
}
