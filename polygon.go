package shapes

import (
	"fmt"
	"math"
)

// Polygon is an approximately regular polygon walked from Start.
//
// Each vertex is the previous one advanced by Length along a heading that
// turns by 2π/Corners per step, starting at Orientation radians. Every vertex is
// rounded to the pixel grid independently, so for some orientations the
// closing edge is slightly shorter or longer than the rest.
type Polygon struct {
	Start       Point
	Length      int
	Corners     int
	Orientation float64
}

// NewPolygon creates a polygon and validates its parameters.
func NewPolygon(start Point, length, corners int, orientation float64) (Polygon, error) {
	p := Polygon{Start: start, Length: length, Corners: corners, Orientation: orientation}
	if err := p.validate(); err != nil {
		return Polygon{}, err
	}
	return p, nil
}

func (p Polygon) validate() error {
	if p.Corners < 3 {
		return fmt.Errorf("polygon with %d corners: %w", p.Corners, ErrTooFewCorners)
	}
	if p.Length <= 0 {
		return fmt.Errorf("polygon edge length %d: %w", p.Length, ErrNonPositiveLength)
	}
	return nil
}

// Vertices returns the Corners vertices in walk order. The first one is Start.
func (p Polygon) Vertices() ([]Point, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	step := 2 * math.Pi / float64(p.Corners)
	size := float64(p.Length)

	pts := make([]Point, 1, p.Corners)
	pts[0] = p.Start
	for i := 1; i < p.Corners; i++ {
		heading := p.Orientation + float64(i-1)*step
		prev := pts[i-1]
		pts = append(pts, Point{
			X: int(math.Round(float64(prev.X) + size*math.Cos(heading))),
			Y: int(math.Round(float64(prev.Y) + size*math.Sin(heading))),
		})
	}
	return pts, nil
}

// Edges returns one edge per vertex. The last edge runs from the final vertex
// back to Start.
func (p Polygon) Edges() ([]Line, error) {
	pts, err := p.Vertices()
	if err != nil {
		return nil, err
	}
	edges := make([]Line, len(pts))
	for i := range pts {
		edges[i] = Line{A: pts[i], B: pts[(i+1)%len(pts)]}
	}
	return edges, nil
}

// Draw rasterizes every edge.
func (p Polygon) Draw(dst Sink, c Color) error {
	edges, err := p.Edges()
	if err != nil {
		return err
	}
	drawEdges(dst, edges, c)
	return nil
}
