package mandelbrot

import "image/color"

// Palette is the iteration-count → color lookup table. It is built once for a
// given iteration cap, never mutated afterwards, and shared read-only by all
// render workers. Index by the clamped escape count; length is maxIter+1.
type Palette []color.RGBA

// NewPalette builds the smooth gradient table for the given iteration cap.
//
// Channel intensities follow the classic cubic/quartic smoothing polynomials
//
//	r = 9·(1−t)·t³   g = 15·(1−t)²·t²   b = 8.5·(1−t)³·t
//
// scaled to [0,255] with opaque alpha. Escaped counts evaluate the
// polynomials at t = (i+1)/(maxIter+1) so the first entry is not the same
// black as the in-set entry; index maxIter (never escaped) is pure black.
func NewPalette(maxIter int) Palette {
	p := make(Palette, maxIter+1)
	for i := 0; i < maxIter; i++ {
		t := float64(i+1) / float64(maxIter+1)
		p[i] = color.RGBA{
			R: uint8(9 * (1 - t) * t * t * t * 255),
			G: uint8(15 * (1 - t) * (1 - t) * t * t * 255),
			B: uint8(8.5 * (1 - t) * (1 - t) * (1 - t) * t * 255),
			A: 0xff,
		}
	}
	p[maxIter] = color.RGBA{A: 0xff}
	return p
}
