package mandelbrot

import (
	"image/color"
	"testing"
)

func TestNewPaletteLength(t *testing.T) {
	for _, cap := range []int{1, 16, 100, 1000} {
		if got := len(NewPalette(cap)); got != cap+1 {
			t.Errorf("len(NewPalette(%d)) = %d, want %d", cap, got, cap+1)
		}
	}
}

func TestNewPaletteEndpointsDiffer(t *testing.T) {
	// The first escaped entry and the in-set entry must differ in at least
	// one channel; otherwise a near-instant escape is indistinguishable from
	// a bounded point.
	for _, cap := range []int{1, 16, 100, 1000} {
		p := NewPalette(cap)
		first, last := p[0], p[cap]
		if first == last {
			t.Errorf("NewPalette(%d): entry 0 %v equals entry %d %v", cap, first, cap, last)
		}
	}
}

func TestNewPaletteInSetEntryIsBlack(t *testing.T) {
	p := NewPalette(100)
	if want := (color.RGBA{A: 0xff}); p[100] != want {
		t.Errorf("in-set entry = %v, want %v", p[100], want)
	}
}

func TestNewPaletteOpaque(t *testing.T) {
	for i, c := range NewPalette(256) {
		if c.A != 0xff {
			t.Fatalf("entry %d alpha = %d, want 255", i, c.A)
		}
	}
}

func TestNewPaletteDeterministic(t *testing.T) {
	a, b := NewPalette(64), NewPalette(64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("entry %d differs between identical builds: %v vs %v", i, a[i], b[i])
		}
	}
}
