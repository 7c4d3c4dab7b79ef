package shapes

type write struct {
	P Point
	C Color
}

// recordSink remembers every write in order.
type recordSink struct {
	writes []write
}

func (r *recordSink) SetPixel(x, y int, c Color) {
	r.writes = append(r.writes, write{Point{x, y}, c})
}

func (r *recordSink) points() []Point {
	out := make([]Point, len(r.writes))
	for i, w := range r.writes {
		out[i] = w.P
	}
	return out
}

func (r *recordSink) set() map[Point]bool {
	m := make(map[Point]bool, len(r.writes))
	for _, w := range r.writes {
		m[w.P] = true
	}
	return m
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
