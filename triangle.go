package shapes

// Triangle is the outline through three corners.
type Triangle struct {
	A, B, C Point
}

// NewTriangle creates a triangle from three corners.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Edges returns AB, BC and CA.
func (t Triangle) Edges() ([]Line, error) {
	return []Line{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}, nil
}

// Draw rasterizes the three edges.
func (t Triangle) Draw(dst Sink, c Color) error {
	edges, _ := t.Edges()
	drawEdges(dst, edges, c)
	return nil
}
