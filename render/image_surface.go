package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ImageSurface is a software Surface that rasterizes into an RGBA image.
//
// Create it once and reuse it; the rasterizer buffers are kept between frames.
type ImageSurface struct {
	img    *image.RGBA
	raster *vector.Rasterizer
	frames uint64
}

func NewImageSurface(w, h int) *ImageSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ImageSurface{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		raster: vector.NewRasterizer(w, h),
	}
}

func (s *ImageSurface) Submit(f Frame) {
	b := s.img.Bounds()
	w, h := b.Dx(), b.Dy()
	draw.Draw(s.img, b, image.NewUniform(f.Clear), image.Point{}, draw.Src)

	for _, dc := range f.Draws {
		n := Triangles(dc.Vertices) * 3
		if n == 0 {
			continue
		}
		s.raster.Reset(w, h)
		for i := 0; i < n; i += 3 {
			x0, y0 := Project(f.Camera, dc.Transform, dc.Vertices[i+0], w, h)
			x1, y1 := Project(f.Camera, dc.Transform, dc.Vertices[i+1], w, h)
			x2, y2 := Project(f.Camera, dc.Transform, dc.Vertices[i+2], w, h)
			s.raster.MoveTo(x0, y0)
			s.raster.LineTo(x1, y1)
			s.raster.LineTo(x2, y2)
			s.raster.ClosePath()
		}
		s.raster.DrawOp = draw.Over
		s.raster.Draw(s.img, b, image.NewUniform(dc.Color), image.Point{})
	}
	s.frames++
}

// Image returns the backing image. It is overwritten by the next Submit.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Frames returns how many frames were submitted.
func (s *ImageSurface) Frames() uint64 { return s.frames }

// WritePNG encodes the current image to path.
func (s *ImageSurface) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, s.img); err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return f.Close()
}
