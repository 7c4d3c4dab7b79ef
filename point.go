package shapes

import "math"

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) int {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Midpoint returns the point halfway between p and q, each axis rounded to
// the nearest integer (halves away from zero).
func (p Point) Midpoint(q Point) Point {
	return Point{
		X: int(math.Round((float64(p.X) + float64(q.X)) / 2)),
		Y: int(math.Round((float64(p.Y) + float64(q.Y)) / 2)),
	}
}

// Draw writes the single pixel at p.
func (p Point) Draw(dst Sink, c Color) error {
	dst.SetPixel(p.X, p.Y, c)
	return nil
}
