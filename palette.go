package shapes

import "math/rand/v2"

// ColorSource picks the color for each shape drawn by Render.
type ColorSource interface {
	Next() Color
}

// ColorFunc adapts an ordinary function to the ColorSource interface.
type ColorFunc func() Color

// Next calls f.
func (f ColorFunc) Next() Color { return f() }

// Solid returns a ColorSource that always yields c.
func Solid(c Color) ColorSource {
	return ColorFunc(func() Color { return c })
}

// Cycle returns a ColorSource that repeats colors in order. With no colors it
// yields White.
func Cycle(colors ...Color) ColorSource {
	if len(colors) == 0 {
		return Solid(White)
	}
	cs := append([]Color(nil), colors...)
	i := 0
	return ColorFunc(func() Color {
		c := cs[i%len(cs)]
		i++
		return c
	})
}

// RandomColors returns a ColorSource of opaque colors with uniformly random
// channels drawn from r.
func RandomColors(r *rand.Rand) ColorSource {
	return ColorFunc(func() Color {
		return RGB(uint8(r.IntN(256)), uint8(r.IntN(256)), uint8(r.IntN(256)))
	})
}
