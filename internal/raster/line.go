// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// Line emits the pixels of the segment (x0,y0)-(x1,y1).
//
// Iteration runs along the dominant axis from the endpoint with the smaller
// coordinate to the one with the larger, so exactly max(|dx|,|dy|)+1 pixels are
// emitted and swapping the endpoints yields the same sequence. The minor
// coordinate is interpolated from the completion ratio along the major axis and
// rounded half away from zero.
//
// Any int coordinates are accepted, including endpoints at math.MinInt and
// math.MaxInt. Spans are counted in uint so they never overflow, and the loop
// is driven by a step counter rather than the coordinate itself.
func Line(x0, y0, x1, y1 int, plot Plot) {
	if span(y0, y1) > span(x0, x1) {
		// Steep: one pixel per row.
		if y0 > y1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		n := span(y0, y1)
		minor := span(x0, x1)
		for i := uint(0); ; i++ {
			t := float64(i) / float64(n)
			plot(along(x0, x1, minor, t), int(uint(y0)+i))
			if i == n {
				return
			}
		}
	}

	if x0 > x1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	n := span(x0, x1)
	if n == 0 {
		plot(x0, y0)
		return
	}
	minor := span(y0, y1)
	for i := uint(0); ; i++ {
		t := float64(i) / float64(n)
		plot(int(uint(x0)+i), along(y0, y1, minor, t))
		if i == n {
			return
		}
	}
}

// LineLen returns the number of pixels Line emits for the given segment,
// saturating at math.MaxInt.
func LineLen(x0, y0, x1, y1 int) int {
	n := max(span(x0, x1), span(y0, y1))
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n) + 1
}

// span returns |b-a| without overflow.
func span(a, b int) uint {
	if a <= b {
		return uint(b) - uint(a)
	}
	return uint(a) - uint(b)
}

// along returns round(a + t*(b-a)) with halves rounded away from zero on the
// absolute coordinate. n is span(a, b). The result always lies between a and b.
func along(a, b int, n uint, t float64) int {
	switch {
	case t <= 0 || n == 0:
		return a
	case t >= 1:
		return b
	}

	off := t * float64(n)
	k := math.Floor(off)
	frac := off - k

	var m uint
	if k >= 1<<64 {
		m = n
	} else {
		m = min(uint(k), n)
	}

	up := b > a
	w := move(a, m, up)
	switch {
	case frac < 0.5:
		return w
	case frac > 0.5:
		if m == n {
			return w
		}
		return move(a, m+1, up)
	}

	// Exactly halfway between w and its neighbour towards b.
	if up {
		if w >= 0 && m < n {
			return w + 1
		}
		return w
	}
	if w <= 0 && m < n {
		return w - 1
	}
	return w
}

// move returns a+m when up is set and a-m otherwise, in wrapping uint
// arithmetic so intermediate values never overflow.
func move(a int, m uint, up bool) int {
	if up {
		return int(uint(a) + m)
	}
	return int(uint(a) - m)
}
