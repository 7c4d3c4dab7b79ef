// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package placement

import (
	"math/rand/v2"

	"github.com/gogpu/shapes"
)

// Scene composes the demo picture: one random line, one random point, a fixed
// rectangle and triangle, the requested number of random circles, one pentagon
// and one cube.
// Fixed shapes are positioned relative to a 1000x1000 canvas and scaled to
// width x height.
func Scene(r *rand.Rand, width, height, circles int) []shapes.Shape {
	w, h := size(width), size(height)
	at := func(x, y int) shapes.Point {
		return shapes.Pt(x*w/1000, y*h/1000)
	}

	out := []shapes.Shape{
		Line(r, w, h),
		Point(r, w, h),
		shapes.NewRectangle(at(150, 300), at(50, 60)),
		shapes.NewTriangle(at(500, 500), at(250, 700), at(700, 800)),
	}
	for range max(circles, 0) {
		out = append(out, Circle(r, w, h))
	}
	out = append(out, Polygon(r, w, h))
	if cube, ok := Cube(r, w, h); ok {
		out = append(out, cube)
	}

	shapes.Logger().Debug("placement: scene composed", "shapes", len(out), "width", w, "height", h)
	return out
}
