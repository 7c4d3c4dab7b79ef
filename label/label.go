// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package label draws short text captions through any shapes.Sink.
//
// Glyphs come from tinyfont bitmap fonts, so captions are pixel-exact and
// need no anti-aliasing, matching the rest of the shapes output.
package label

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/surface"
)

// Local glyph origin, far enough from zero that every glyph pixel lands on a
// positive int16 coordinate.
const (
	originX = 64
	originY = 256
)

// Writer draws text with one font.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	font  tinyfont.Fonter
	title cases.Caser
}

// Option configures a Writer.
type Option func(*Writer)

// WithFont sets the tinyfont font used for glyphs. A nil font keeps the
// default.
func WithFont(f tinyfont.Fonter) Option {
	return func(w *Writer) {
		if f != nil {
			w.font = f
		}
	}
}

// New creates a Writer. The default font is proggy.TinySZ8pt7b.
func New(opts ...Option) *Writer {
	w := &Writer{
		font:  &proggy.TinySZ8pt7b,
		title: cases.Title(language.English),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Draw writes text with its baseline at at.
func (w *Writer) Draw(dst shapes.Sink, at shapes.Point, text string, c shapes.Color) {
	if text == "" {
		return
	}
	// tinyfont positions are int16. Glyphs are laid out around a fixed local
	// origin and translated afterwards, so any anchor in the int range works.
	off := offsetSink{dst: dst, dx: at.X - originX, dy: at.Y - originY}
	d := surface.AsDisplayer(off, math.MaxInt16, math.MaxInt16)
	tinyfont.WriteLine(d, w.font, originX, originY, text, color.RGBAModel.Convert(c).(color.RGBA))
}

// Width returns the advance width of text in pixels.
func (w *Writer) Width(text string) int {
	_, outbox := tinyfont.LineWidth(w.font, text)
	return int(outbox)
}

// Caption writes the title-cased kind of s ("Cube", "Polygon", ...) just
// above the area r, left-aligned with it.
func (w *Writer) Caption(dst shapes.Sink, s shapes.Shape, r image.Rectangle, c shapes.Color) string {
	text := w.title.String(shapes.Kind(s))
	w.Draw(dst, shapes.Pt(r.Min.X, r.Min.Y-2), text, c)
	return text
}

// offsetSink translates every write by (dx, dy).
type offsetSink struct {
	dst    shapes.Sink
	dx, dy int
}

func (o offsetSink) SetPixel(x, y int, c shapes.Color) {
	o.dst.SetPixel(x+o.dx, y+o.dy, c)
}
