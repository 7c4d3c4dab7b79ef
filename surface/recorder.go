// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/shapes"

// Write is one recorded SetPixel call.
type Write struct {
	X, Y  int
	Color shapes.Color
}

// Point returns the coordinate of the write.
func (w Write) Point() shapes.Point { return shapes.Pt(w.X, w.Y) }

// Recorder is a sink that keeps every write in call order, duplicates
// included.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	writes []Write
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetPixel implements shapes.Sink.
func (r *Recorder) SetPixel(x, y int, c shapes.Color) {
	r.writes = append(r.writes, Write{X: x, Y: y, Color: c})
}

// Len returns the number of recorded writes.
func (r *Recorder) Len() int { return len(r.writes) }

// Writes returns a copy of the recorded writes.
func (r *Recorder) Writes() []Write {
	return append([]Write(nil), r.writes...)
}

// Points returns the coordinates of all writes in call order.
func (r *Recorder) Points() []shapes.Point {
	out := make([]shapes.Point, len(r.writes))
	for i, w := range r.writes {
		out[i] = w.Point()
	}
	return out
}

// Distinct returns the set of written coordinates.
func (r *Recorder) Distinct() map[shapes.Point]bool {
	m := make(map[shapes.Point]bool, len(r.writes))
	for _, w := range r.writes {
		m[w.Point()] = true
	}
	return m
}

// Replay writes every recorded pixel to dst in the order they were made.
func (r *Recorder) Replay(dst shapes.Sink) {
	for _, w := range r.writes {
		dst.SetPixel(w.X, w.Y, w.Color)
	}
}

// Reset discards all recorded writes.
func (r *Recorder) Reset() {
	r.writes = r.writes[:0]
}
