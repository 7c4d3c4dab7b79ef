// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"slices"
	"testing"

	"github.com/gogpu/shapes"
)

func TestRecorderOrder(t *testing.T) {
	rec := NewRecorder()
	_ = shapes.Ln(shapes.Pt(3, 0), shapes.Pt(0, 0)).Draw(rec, shapes.Red)

	want := []shapes.Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	if got := rec.Points(); !slices.Equal(got, want) {
		t.Errorf("Points() = %v, want %v", got, want)
	}
	if rec.Len() != 4 {
		t.Errorf("Len() = %d, want 4", rec.Len())
	}
	for _, w := range rec.Writes() {
		if w.Color != shapes.Red {
			t.Errorf("write %v has color %v", w.Point(), w.Color)
		}
	}
}

func TestRecorderKeepsDuplicates(t *testing.T) {
	rec := NewRecorder()
	_ = shapes.NewCircle(shapes.Pt(0, 0), 0).Draw(rec, shapes.White)
	if rec.Len() < 2 {
		t.Errorf("Len() = %d, want duplicated center writes", rec.Len())
	}
	if d := rec.Distinct(); len(d) != 1 || !d[shapes.Pt(0, 0)] {
		t.Errorf("Distinct() = %v, want only the center", d)
	}
}

func TestRecorderReplayAndReset(t *testing.T) {
	rec := NewRecorder()
	_ = shapes.NewTriangle(shapes.Pt(0, 0), shapes.Pt(6, 0), shapes.Pt(3, 5)).Draw(rec, shapes.Green)

	img := NewImageSurface(8, 8)
	rec.Replay(img)
	for _, p := range rec.Points() {
		if img.At(p.X, p.Y) != shapes.Green {
			t.Errorf("replayed pixel %v missing", p)
		}
	}

	w := rec.Writes()
	w[0].X = 99
	if rec.Writes()[0].X == 99 {
		t.Error("Writes() exposes internal storage")
	}

	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("Len() after Reset = %d", rec.Len())
	}
}

func TestBounds(t *testing.T) {
	rec := NewRecorder()
	b := NewBounds(rec)
	if _, ok := b.Rect(); ok {
		t.Error("empty Bounds reports an area")
	}

	_ = shapes.NewRectangle(shapes.Pt(2, 3), shapes.Pt(7, 9)).Draw(b, shapes.White)
	r, ok := b.Rect()
	if !ok {
		t.Fatal("Rect() reports nothing written")
	}
	if want := image.Rect(2, 3, 8, 10); r != want {
		t.Errorf("Rect() = %v, want %v", r, want)
	}
	if rec.Len() == 0 {
		t.Error("Bounds did not forward writes")
	}

	b.Reset()
	if _, ok := b.Rect(); ok {
		t.Error("Rect() after Reset reports an area")
	}

	// A nil Next is allowed.
	NewBounds(nil).SetPixel(-4, -4, shapes.Red)
}
