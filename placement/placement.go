// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package placement scatters shapes over a canvas.
//
// Every function takes its randomness from an explicit *rand.Rand, so a scene
// is fully determined by the generator's seed. Canvas sizes are in pixels;
// non-positive sizes are treated as 1.
package placement

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/shapes"
)

const (
	polygonCorners = 5
	polygonMinEdge = 30
	polygonMaxEdge = 1500 / polygonCorners
)

// maxCubeAttempts bounds how often Cube redraws corners that fail to solve.
const maxCubeAttempts = 64

// New returns a PCG-backed generator for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between returns a uniform integer in [lo, hi]. hi < lo returns lo.
func between(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

func size(v int) int { return max(v, 1) }

// Point returns a point anywhere on the canvas.
func Point(r *rand.Rand, width, height int) shapes.Point {
	return shapes.Pt(r.IntN(size(width)), r.IntN(size(height)))
}

// Line returns a segment between two random points.
func Line(r *rand.Rand, width, height int) shapes.Line {
	return shapes.Ln(Point(r, width, height), Point(r, width, height))
}

// Triangle returns a triangle with three random corners.
func Triangle(r *rand.Rand, width, height int) shapes.Triangle {
	return shapes.NewTriangle(Point(r, width, height), Point(r, width, height), Point(r, width, height))
}

// Rectangle returns a rectangle between two random corners.
func Rectangle(r *rand.Rand, width, height int) shapes.Rectangle {
	return shapes.NewRectangle(Point(r, width, height), Point(r, width, height))
}

// Circle returns a circle centered anywhere with radius in [1, min(w,h)/2].
func Circle(r *rand.Rand, width, height int) shapes.Circle {
	maxR := max(min(size(width), size(height))/2, 1)
	return shapes.NewCircle(Point(r, width, height), between(r, 1, maxR))
}

// Polygon returns a pentagon starting anywhere on the canvas, with an edge
// length in [30, 300] and a random whole-degree orientation.
func Polygon(r *rand.Rand, width, height int) shapes.Polygon {
	edge := between(r, polygonMinEdge, polygonMaxEdge)
	start := shapes.Pt(between(r, 0, size(width)), between(r, 0, size(height)))
	orientation := float64(r.IntN(360)) * math.Pi / 180
	return shapes.Polygon{Start: start, Length: edge, Corners: polygonCorners, Orientation: orientation}
}

// cubeCorners draws three corners from the middle half of the canvas.
func cubeCorners(r *rand.Rand, width, height int) (a, b, c shapes.Point) {
	w, h := size(width), size(height)
	minX, maxX := w/4, w*3/4
	minY, maxY := h/4, h*3/4
	pick := func() shapes.Point {
		return shapes.Pt(between(r, minX, maxX), between(r, minY, maxY))
	}
	return pick(), pick(), pick()
}

// Cube returns a solved cube whose front-face corners lie in the middle half
// of the canvas. Corner triples that cannot be solved are redrawn; ok is false
// if every attempt failed, which only happens on canvases too small to hold
// two distinct corners.
func Cube(r *rand.Rand, width, height int) (shapes.Cube, bool) {
	for range maxCubeAttempts {
		a, b, c := cubeCorners(r, width, height)
		cube, err := shapes.NewCube(a, b, c)
		if err == nil {
			return cube, true
		}
		shapes.Logger().Debug("placement: redrawing cube corners", "err", err)
	}
	return shapes.Cube{}, false
}

// DeferredCube returns unsolved cube corners from the middle half of the
// canvas. They may be degenerate; the cube is solved when drawn.
func DeferredCube(r *rand.Rand, width, height int) shapes.DeferredCube {
	a, b, c := cubeCorners(r, width, height)
	return shapes.DeferredCube{A: a, B: b, C: c}
}
