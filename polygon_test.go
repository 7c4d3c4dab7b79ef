package shapes

import (
	"errors"
	"math"
	"testing"
)

func TestPolygonVertices(t *testing.T) {
	for _, corners := range []int{3, 4, 5, 6, 9, 12} {
		for _, orientation := range []float64{0, 0.3, math.Pi / 3, 4.1} {
			p, err := NewPolygon(Pt(200, 200), 40, corners, orientation)
			if err != nil {
				t.Fatalf("NewPolygon: %v", err)
			}
			pts, err := p.Vertices()
			if err != nil {
				t.Fatalf("Vertices: %v", err)
			}
			if len(pts) != corners {
				t.Fatalf("n=%d: got %d vertices", corners, len(pts))
			}
			if pts[0] != p.Start {
				t.Errorf("n=%d: first vertex %v, want start %v", corners, pts[0], p.Start)
			}
			for i := 1; i < len(pts); i++ {
				d := pts[i].Distance(pts[i-1])
				if math.Abs(d-40) > 1 {
					t.Errorf("n=%d θ=%v: edge %d has length %v, want 40±1", corners, orientation, i, d)
				}
			}
		}
	}
}

func TestPolygonEdgesClose(t *testing.T) {
	p := Polygon{Start: Pt(10, 10), Length: 25, Corners: 5, Orientation: 1}
	pts, _ := p.Vertices()
	edges, err := p.Edges()
	if err != nil {
		t.Fatalf("Edges: %v", err)
	}
	if len(edges) != 5 {
		t.Fatalf("got %d edges, want 5", len(edges))
	}
	for i := 0; i < 4; i++ {
		if edges[i] != Ln(pts[i], pts[i+1]) {
			t.Errorf("edge %d = %v, want %v-%v", i, edges[i], pts[i], pts[i+1])
		}
	}
	if last := edges[4]; last.A != pts[4] || last.B != pts[0] {
		t.Errorf("closing edge = %v, want %v-%v", last, pts[4], pts[0])
	}
}

func TestPolygonSquare(t *testing.T) {
	p := Polygon{Start: Pt(0, 0), Length: 10, Corners: 4}
	pts, _ := p.Vertices()
	want := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestPolygonInvalid(t *testing.T) {
	if _, err := NewPolygon(Pt(0, 0), 10, 2, 0); !errors.Is(err, ErrTooFewCorners) {
		t.Errorf("2 corners: err = %v, want ErrTooFewCorners", err)
	}
	if _, err := NewPolygon(Pt(0, 0), 0, 5, 0); !errors.Is(err, ErrNonPositiveLength) {
		t.Errorf("zero length: err = %v, want ErrNonPositiveLength", err)
	}

	var rec recordSink
	if err := (Polygon{Length: 5, Corners: 1}).Draw(&rec, White); !errors.Is(err, ErrTooFewCorners) {
		t.Errorf("Draw err = %v, want ErrTooFewCorners", err)
	}
	if len(rec.writes) != 0 {
		t.Errorf("invalid polygon wrote %d pixels", len(rec.writes))
	}
}

func TestPolygonDrawDeterministic(t *testing.T) {
	p := Polygon{Start: Pt(100, 100), Length: 60, Corners: 7, Orientation: 2.5}
	var a, b recordSink
	_ = p.Draw(&a, Red)
	_ = p.Draw(&b, Red)
	if len(a.writes) != len(b.writes) {
		t.Fatalf("write counts differ: %d vs %d", len(a.writes), len(b.writes))
	}
	for i := range a.writes {
		if a.writes[i] != b.writes[i] {
			t.Fatalf("write %d differs: %v vs %v", i, a.writes[i], b.writes[i])
		}
	}
}
