package shapes

import (
	"fmt"
	"math"
)

// CubeSolution holds the intermediate geometry used to extrude a front face
// into a cube.
type CubeSolution struct {
	// D completes A, B, C into the parallelogram A, B, C, D.
	D Point

	// Diag1 is the longer diagonal of the front face, Diag2 the other one.
	Diag1, Diag2 Line

	// Mid is the rounded midpoint of A and C.
	Mid Point

	// Angle1 >= Angle2 are the angles at Mid between the diagonals, in radians.
	Angle1, Angle2 float64

	// Height is the length of the depth offset before truncation.
	Height float64

	// Offset translates the front face onto the back face.
	Offset Point
}

// SolveCube derives a depth offset for the front face spanned by a, b and c.
//
// No camera is involved: the offset direction bisects the angles between the
// face's diagonals, and its length shrinks the more the face looks top-down
// (unequal diagonals) and the more it looks edge-on (the second diagonal's
// start projecting near the middle of the first one). It fails with
// ErrZeroLengthReference only when both diagonals collapse, i.e. a == b == c.
func SolveCube(a, b, c Point) (CubeSolution, error) {
	d := a.Add(c.Sub(b))

	diag1 := Line{A: a, B: c}
	diag2 := Line{A: b, B: d}
	len1, len2 := diag1.Length(), diag2.Length()
	if len2 > len1 {
		diag1, diag2 = diag2, diag1
		len1 = len2
	}

	mid := a.Midpoint(c)

	angle1 := angleAt(diag1.A, mid, diag2.A)
	angle2 := angleAt(diag2.A, mid, diag1.B)
	if angle2 > angle1 {
		angle1, angle2 = angle2, angle1
	}

	height := cubeHeight(diag1, diag2, len1)

	offset, err := offsetFrom(diag1, (angle1+angle2)/2, height)
	if err != nil {
		return CubeSolution{}, err
	}

	return CubeSolution{
		D:      d,
		Diag1:  diag1,
		Diag2:  diag2,
		Mid:    mid,
		Angle1: angle1,
		Angle2: angle2,
		Height: height,
		Offset: offset,
	}, nil
}

// angleAt returns the angle ABC in radians, in [0, π]. It is 0 when a or c
// coincides with b.
func angleAt(a, b, c Point) float64 {
	ba := a.Sub(b)
	bc := c.Sub(b)

	if ba == (Point{}) || bc == (Point{}) {
		return 0
	}

	// Same value as acos of the cosine, but exactly 0 or π for collinear rays.
	cross := ba.X*bc.Y - ba.Y*bc.X
	return math.Atan2(math.Abs(float64(cross)), float64(ba.Dot(bc)))
}

// offsetFrom returns the unit direction of ref rotated by angle and scaled by
// length, each axis truncated toward zero.
func offsetFrom(ref Line, angle, length float64) (Point, error) {
	dir := ref.B.Sub(ref.A)
	n := dir.Length()
	if n == 0 {
		return Point{}, ErrZeroLengthReference
	}
	ux := float64(dir.X) / n
	uy := float64(dir.Y) / n

	sin, cos := math.Sincos(angle)
	return Point{
		X: int((ux*cos - uy*sin) * length),
		Y: int((ux*sin + uy*cos) * length),
	}, nil
}

// cubeHeight estimates the apparent depth of the cube from its front face
// diagonals. len1 is the length of d1.
func cubeHeight(d1, d2 Line, len1 float64) float64 {
	if len1 == 0 {
		return 0
	}
	s := projectOntoLine(d1, d2.A)

	lenAS := d1.A.Distance(s)
	lenBS := d2.A.Distance(s)

	// rot1: 0 looking at an edge, 1 looking at a face.
	rot1 := math.Abs(lenAS/len1-0.5) * 2
	// rot2: 0 looking from the side, 1 looking from the top.
	rot2 := lenBS * 2 / len1

	base := (1-rot1)*(len1/math.Sqrt2) + rot1*len1
	h := (1 - rot2) * base
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0
	}
	return h
}

// projectOntoLine returns the orthogonal projection of p onto the infinite
// line through l, rounded to the pixel grid. A degenerate line projects
// everything onto l.A.
func projectOntoLine(l Line, p Point) Point {
	ac := l.B.Sub(l.A)
	ap := p.Sub(l.A)

	acLen2 := float64(ac.Dot(ac))
	if acLen2 == 0 {
		return l.A
	}

	t := float64(ap.Dot(ac)) / acLen2
	return Point{
		X: l.A.X + int(math.Round(t*float64(ac.X))),
		Y: l.A.Y + int(math.Round(t*float64(ac.Y))),
	}
}

// Cube is a front face A1 B1 C1 D1 and back face A2 B2 C2 D2 whose corners are
// fixed when the cube is created.
type Cube struct {
	A1, B1, C1, D1 Point
	A2, B2, C2, D2 Point
}

// NewCube completes a, b, c into a parallelogram front face and extrudes it by
// the offset SolveCube derives.
func NewCube(a, b, c Point) (Cube, error) {
	sol, err := SolveCube(a, b, c)
	if err != nil {
		return Cube{}, fmt.Errorf("cube %v %v %v: %w", a, b, c, err)
	}
	off := sol.Offset
	return Cube{
		A1: a, B1: b, C1: c, D1: sol.D,
		A2: a.Add(off), B2: b.Add(off), C2: c.Add(off), D2: sol.D.Add(off),
	}, nil
}

// Edges returns the four front edges, the four edges joining the faces and
// the four back edges, in that order.
func (c Cube) Edges() ([]Line, error) {
	return []Line{
		{c.A1, c.B1}, {c.B1, c.C1}, {c.C1, c.D1}, {c.D1, c.A1},
		{c.A1, c.A2}, {c.B1, c.B2}, {c.C1, c.C2}, {c.D1, c.D2},
		{c.A2, c.B2}, {c.B2, c.C2}, {c.C2, c.D2}, {c.D2, c.A2},
	}, nil
}

// Draw rasterizes all twelve edges.
func (c Cube) Draw(dst Sink, col Color) error {
	edges, _ := c.Edges()
	drawEdges(dst, edges, col)
	return nil
}

// DeferredCube stores only the three input corners and solves the back face
// every time it is drawn.
type DeferredCube struct {
	A, B, C Point
}

// Solve returns the Cube this DeferredCube draws.
func (d DeferredCube) Solve() (Cube, error) {
	return NewCube(d.A, d.B, d.C)
}

// Edges solves the cube and returns its twelve edges.
func (d DeferredCube) Edges() ([]Line, error) {
	c, err := d.Solve()
	if err != nil {
		return nil, err
	}
	return c.Edges()
}

// Draw solves the cube and rasterizes it. Nothing is written when solving fails.
func (d DeferredCube) Draw(dst Sink, col Color) error {
	c, err := d.Solve()
	if err != nil {
		return err
	}
	return c.Draw(dst, col)
}
