// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/shapes"
)

// Bounds is a sink that tracks the smallest rectangle containing every
// written pixel and forwards each write to Next, if set.
type Bounds struct {
	Next shapes.Sink

	rect image.Rectangle
	any  bool
}

// NewBounds creates a Bounds tracker forwarding to next, which may be nil.
func NewBounds(next shapes.Sink) *Bounds {
	return &Bounds{Next: next}
}

// SetPixel implements shapes.Sink.
func (b *Bounds) SetPixel(x, y int, c shapes.Color) {
	px := image.Rect(x, y, x+1, y+1)
	if b.any {
		b.rect = b.rect.Union(px)
	} else {
		b.rect = px
		b.any = true
	}
	if b.Next != nil {
		b.Next.SetPixel(x, y, c)
	}
}

// Rect returns the covered rectangle (half-open, as image.Rectangle) and
// whether anything was written.
func (b *Bounds) Rect() (image.Rectangle, bool) {
	return b.rect, b.any
}

// Reset forgets the tracked area.
func (b *Bounds) Reset() {
	b.rect = image.Rectangle{}
	b.any = false
}
