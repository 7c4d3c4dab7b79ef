// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/shapes"
)

// ImageSurface is a CPU-side sink backed by an *image.RGBA.
//
// Writes outside the surface are ignored. Every write replaces the pixel;
// there is no blending.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	s.Clear(shapes.White)
//	_ = shapes.NewCircle(shapes.Pt(400, 300), 100).Draw(s, shapes.Red)
//	img := s.Snapshot()
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface creates a transparent surface with the given dimensions.
// Non-positive dimensions are raised to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface will render into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	return &ImageSurface{img: img}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int { return s.img.Bounds().Dx() }

// Height returns the surface height.
func (s *ImageSurface) Height() int { return s.img.Bounds().Dy() }

// Bounds returns the rectangle covered by the surface.
func (s *ImageSurface) Bounds() image.Rectangle { return s.img.Bounds() }

// SetPixel implements shapes.Sink.
func (s *ImageSurface) SetPixel(x, y int, c shapes.Color) {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return
	}
	s.img.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// At returns the non-premultiplied color at (x, y), or Transparent outside
// the surface.
func (s *ImageSurface) At(x, y int) shapes.Color {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return shapes.Transparent
	}
	return shapes.FromColor(s.img.RGBAAt(x, y))
}

// Clear fills the entire surface with c.
func (s *ImageSurface) Clear(c shapes.Color) {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Image returns the backing image. Writes to it are visible to the surface.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out
}

// Scaled returns a copy enlarged by an integer factor with nearest-neighbour
// sampling, keeping every pixel a crisp square. Factors below 2 return a plain
// Snapshot.
func (s *ImageSurface) Scaled(factor int) *image.RGBA {
	if factor < 2 {
		return s.Snapshot()
	}
	b := s.img.Rect
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(out, out.Rect, s.img, b, draw.Src, nil)
	return out
}

// Encode writes the surface in the named format (see RegisterFormat).
func (s *ImageSurface) Encode(w io.Writer, format string) error {
	return Encode(w, format, s.img)
}

// SaveFile encodes the surface into path, choosing the format from the file
// extension.
func (s *ImageSurface) SaveFile(path string) error {
	return saveImage(path, s.img)
}

// SaveScaledFile is SaveFile for Scaled(factor).
func (s *ImageSurface) SaveScaledFile(path string, factor int) error {
	return saveImage(path, s.Scaled(factor))
}

func saveImage(path string, img image.Image) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, format, img); err != nil {
		return fmt.Errorf("surface: encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	b := img.Bounds()
	shapes.Logger().Info("surface: saved image", "path", path, "format", format,
		"width", b.Dx(), "height", b.Dy())
	return f.Close()
}
