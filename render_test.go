package mandelbrot

import (
	"bytes"
	"image/color"
	"testing"
)

func classicConfig(workers int) Config {
	return Config{
		Width: 100, Height: 100,
		MaxIter: 100,
		Workers: workers,
		CenterX: -0.5, CenterY: 0,
		Zoom: 1,
	}
}

func TestRenderFrameDeterministic(t *testing.T) {
	r, err := NewRenderer(classicConfig(4))
	if err != nil {
		t.Fatal(err)
	}
	view := classicConfig(4).View()

	first := r.RenderFrame(view)
	snapshot := bytes.Clone(first.Img.Pix)
	second := r.RenderFrame(view)

	if !bytes.Equal(snapshot, second.Img.Pix) {
		t.Error("two renders of the same view are not byte-identical")
	}
}

func TestRenderFrameWorkerCountInvariant(t *testing.T) {
	// The band decomposition is a scheduling detail; the frame content must
	// not depend on it.
	base, err := NewRenderer(classicConfig(1))
	if err != nil {
		t.Fatal(err)
	}
	want := bytes.Clone(base.RenderFrame(classicConfig(1).View()).Img.Pix)

	for _, workers := range []int{2, 7, 16, 100, 128} {
		r, err := NewRenderer(classicConfig(workers))
		if err != nil {
			t.Fatal(err)
		}
		got := r.RenderFrame(classicConfig(workers).View()).Img.Pix
		if !bytes.Equal(want, got) {
			t.Errorf("%d workers produced a different frame than 1 worker", workers)
		}
	}
}

func TestRenderFrameClassicView(t *testing.T) {
	cfg := classicConfig(4)
	r, err := NewRenderer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	frame := r.RenderFrame(cfg.View())

	// The image center maps to c = −0.5, inside the main cardioid: the
	// in-set black entry.
	if got := frame.Img.RGBAAt(50, 50); got != (color.RGBA{A: 0xff}) {
		t.Errorf("center pixel = %v, want opaque black", got)
	}

	// The corner maps to c = −1.5 − i, far outside: escapes within a
	// handful of steps.
	re, im := cfg.View().PixelToComplex(0, 0, cfg.Width, cfg.Height)
	count := Iterate(re, im, cfg.MaxIter)
	if count >= 5 {
		t.Errorf("corner escape count = %d, want < 5", count)
	}
	palette := NewPalette(cfg.MaxIter)
	if got := frame.Img.RGBAAt(0, 0); got != palette[count] {
		t.Errorf("corner pixel = %v, want palette[%d] = %v", got, count, palette[count])
	}
}

func TestRenderFrameBandsCoverImage(t *testing.T) {
	cfg := classicConfig(7)
	r, err := NewRenderer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	frame := r.RenderFrame(cfg.View())

	if len(frame.Bands) != cfg.Workers {
		t.Fatalf("frame has %d bands, want %d", len(frame.Bands), cfg.Workers)
	}
	if frame.Bands[0].Start != 0 {
		t.Errorf("first band starts at %d", frame.Bands[0].Start)
	}
	for i := 1; i < len(frame.Bands); i++ {
		if frame.Bands[i].Start != frame.Bands[i-1].End {
			t.Errorf("band %d does not continue band %d", i, i-1)
		}
	}
	if last := frame.Bands[len(frame.Bands)-1]; last.End != cfg.Height {
		t.Errorf("last band ends at %d, want %d", last.End, cfg.Height)
	}
}

func TestNewRendererRejectsDegenerateConfig(t *testing.T) {
	bad := []Config{
		{Width: 0, Height: 100, MaxIter: 10, Workers: 1, Zoom: 1},
		{Width: 100, Height: -1, MaxIter: 10, Workers: 1, Zoom: 1},
		{Width: 100, Height: 100, MaxIter: 0, Workers: 1, Zoom: 1},
		{Width: 100, Height: 100, MaxIter: 10, Workers: 0, Zoom: 1},
		{Width: 100, Height: 100, MaxIter: 10, Workers: 1, Zoom: 0},
		{Width: 100, Height: 100, MaxIter: 10, Workers: 1, Zoom: -2},
	}
	for _, cfg := range bad {
		if _, err := NewRenderer(cfg); err == nil {
			t.Errorf("NewRenderer(%+v) accepted a degenerate config", cfg)
		}
	}
}

func TestRenderFrameMoreWorkersThanRows(t *testing.T) {
	cfg := classicConfig(4)
	cfg.Height = 3
	cfg.Workers = 8
	r, err := NewRenderer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	frame := r.RenderFrame(cfg.View())
	if last := frame.Bands[len(frame.Bands)-1]; last.End != cfg.Height {
		t.Errorf("last band ends at %d, want %d", last.End, cfg.Height)
	}
}
