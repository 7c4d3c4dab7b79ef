// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"

	"github.com/gogpu/shapes"
)

// displayerSink forwards writes to a drivers.Displayer.
type displayerSink struct {
	d drivers.Displayer
}

// FromDisplayer returns a sink drawing into a TinyGo display driver.
//
// Writes outside the display's Size are dropped. Colors are passed through as
// color.RGBA, which for opaque colors is the same as the non-premultiplied
// value. Call the display's Display method to flush buffered drivers.
func FromDisplayer(d drivers.Displayer) shapes.Sink {
	return &displayerSink{d: d}
}

func (s *displayerSink) SetPixel(x, y int, c shapes.Color) {
	w, h := s.d.Size()
	if x < 0 || y < 0 || x >= int(w) || y >= int(h) {
		return
	}
	s.d.SetPixel(int16(x), int16(y), color.RGBAModel.Convert(c).(color.RGBA))
}

// sinkDisplayer exposes a shapes.Sink as a drivers.Displayer.
type sinkDisplayer struct {
	dst  shapes.Sink
	w, h int16
}

// AsDisplayer wraps dst so that drivers-based code (tinyfont, for instance)
// can draw through it. width and height are reported by Size and clamped to
// the int16 range drivers use.
func AsDisplayer(dst shapes.Sink, width, height int) drivers.Displayer {
	return &sinkDisplayer{dst: dst, w: clampInt16(width), h: clampInt16(height)}
}

func (d *sinkDisplayer) Size() (x, y int16) { return d.w, d.h }

func (d *sinkDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.dst.SetPixel(int(x), int(y), shapes.FromColor(c))
}

func (d *sinkDisplayer) Display() error { return nil }

func clampInt16(v int) int16 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxInt16:
		return math.MaxInt16
	default:
		return int16(v)
	}
}
