package shapes

// Rectangle is an axis-aligned outline spanned by two opposite corners.
type Rectangle struct {
	A, B Point
}

// NewRectangle creates a rectangle from two opposite corners.
func NewRectangle(a, b Point) Rectangle {
	return Rectangle{A: a, B: b}
}

// Corners returns the four corners, starting at A and walking around the
// outline.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{
		r.A,
		{X: r.B.X, Y: r.A.Y},
		r.B,
		{X: r.A.X, Y: r.B.Y},
	}
}

// Edges returns the four sides.
func (r Rectangle) Edges() ([]Line, error) {
	c := r.Corners()
	return []Line{{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]}}, nil
}

// Draw rasterizes the four sides.
func (r Rectangle) Draw(dst Sink, c Color) error {
	edges, _ := r.Edges()
	drawEdges(dst, edges, c)
	return nil
}
