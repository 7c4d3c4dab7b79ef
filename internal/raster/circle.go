// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// Circle emits the ring of pixels approximating a circle of radius r around
// (cx, cy).
//
// Only the first octant is computed: for every horizontal displacement s in
// [0, r/√2] the matching vertical displacement is round(√(r²−s²)), and the
// pair is mirrored into all eight octants. The sweep continues past r/√2 while
// the rounded displacement has not dropped below s, which closes the one-pixel
// notch some radii leave on the diagonals. Pixels on the symmetry axes are
// emitted more than once. A radius of zero emits the center. Negative radii
// emit nothing.
func Circle(cx, cy, r int, plot Plot) {
	if r < 0 {
		return
	}
	rr := float64(r) * float64(r)
	for s := 0; s <= r; s++ {
		off := int(math.Round(math.Sqrt(rr - float64(s)*float64(s))))
		if off < s {
			break
		}

		plot(cx+s, cy+off)
		plot(cx+s, cy-off)
		plot(cx-s, cy+off)
		plot(cx-s, cy-off)

		plot(cx+off, cy+s)
		plot(cx+off, cy-s)
		plot(cx-off, cy+s)
		plot(cx-off, cy-s)
	}
}
