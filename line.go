package shapes

import "github.com/gogpu/shapes/internal/raster"

// Line is a segment between two endpoints. A line whose endpoints coincide
// draws a single pixel.
type Line struct {
	A, B Point
}

// Ln is a convenience function to create a Line.
func Ln(a, b Point) Line {
	return Line{A: a, B: b}
}

// Length returns the Euclidean distance between the endpoints.
func (l Line) Length() float64 {
	return l.A.Distance(l.B)
}

// Reverse returns the line with its endpoints swapped.
func (l Line) Reverse() Line {
	return Line{A: l.B, B: l.A}
}

// Degenerate reports whether both endpoints are the same point.
func (l Line) Degenerate() bool {
	return l.A == l.B
}

// maxPixelsHint caps the capacity Pixels preallocates.
const maxPixelsHint = 1 << 12

// Pixels returns the pixels Draw would write, in write order.
func (l Line) Pixels() []Point {
	out := make([]Point, 0, min(raster.LineLen(l.A.X, l.A.Y, l.B.X, l.B.Y), maxPixelsHint))
	raster.Line(l.A.X, l.A.Y, l.B.X, l.B.Y, func(x, y int) {
		out = append(out, Point{X: x, Y: y})
	})
	return out
}

// Draw rasterizes the segment, writing each covered pixel exactly once.
func (l Line) Draw(dst Sink, c Color) error {
	raster.Line(l.A.X, l.A.Y, l.B.X, l.B.Y, func(x, y int) {
		dst.SetPixel(x, y, c)
	})
	return nil
}

// Edges returns the line itself.
func (l Line) Edges() ([]Line, error) {
	return []Line{l}, nil
}

// drawEdges rasterizes every line in order with the same color.
func drawEdges(dst Sink, edges []Line, c Color) {
	for _, e := range edges {
		raster.Line(e.A.X, e.A.Y, e.B.X, e.B.Y, func(x, y int) {
			dst.SetPixel(x, y, c)
		})
	}
}
