package shapes

// Sink receives colored pixels.
//
// SetPixel may be called any number of times for the same coordinate; which
// write wins is up to the sink. Coordinates may fall outside whatever area the
// sink covers and must be tolerated (typically by ignoring them).
type Sink interface {
	SetPixel(x, y int, c Color)
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(x, y int, c Color)

// SetPixel calls f(x, y, c).
func (f SinkFunc) SetPixel(x, y int, c Color) {
	f(x, y, c)
}

// Shape is anything that can be rasterized onto a Sink.
//
// Draw either writes the whole shape and returns nil, or returns an error
// before writing any pixel.
type Shape interface {
	Draw(dst Sink, c Color) error
}

// Outliner is implemented by shapes built entirely from line segments.
type Outliner interface {
	Shape
	Edges() ([]Line, error)
}

// Kind returns a short lower-case name for the shape's type, such as "circle"
// or "cube". Unknown implementations are reported as "shape".
func Kind(s Shape) string {
	switch s.(type) {
	case Point, *Point:
		return "point"
	case Line, *Line:
		return "line"
	case Triangle, *Triangle:
		return "triangle"
	case Rectangle, *Rectangle:
		return "rectangle"
	case Circle, *Circle:
		return "circle"
	case Polygon, *Polygon:
		return "polygon"
	case Cube, *Cube, DeferredCube, *DeferredCube:
		return "cube"
	default:
		return "shape"
	}
}
