package shapes

import (
	"fmt"

	"github.com/gogpu/shapes/internal/raster"
)

// Circle is a one-pixel ring around Center.
type Circle struct {
	Center Point
	Radius int
}

// NewCircle creates a circle.
func NewCircle(center Point, radius int) Circle {
	return Circle{Center: center, Radius: radius}
}

// Pixels returns the pixels Draw would write, in write order. Symmetry-axis
// pixels appear more than once.
func (c Circle) Pixels() ([]Point, error) {
	if c.Radius < 0 {
		return nil, fmt.Errorf("circle radius %d: %w", c.Radius, ErrNegativeRadius)
	}
	var out []Point
	raster.Circle(c.Center.X, c.Center.Y, c.Radius, func(x, y int) {
		out = append(out, Point{X: x, Y: y})
	})
	return out, nil
}

// Draw rasterizes the ring.
func (c Circle) Draw(dst Sink, col Color) error {
	if c.Radius < 0 {
		return fmt.Errorf("circle radius %d: %w", c.Radius, ErrNegativeRadius)
	}
	raster.Circle(c.Center.X, c.Center.Y, c.Radius, func(x, y int) {
		dst.SetPixel(x, y, col)
	})
	return nil
}
