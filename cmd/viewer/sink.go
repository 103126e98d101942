package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	mandelbrot "github.com/viirret/mandelbrot-renderer"
)

// textureSink uploads joined frames into the window texture, one band at a
// time, so only the regions written during the pass touch the GPU.
type textureSink struct {
	tex *ebiten.Image
}

func newTextureSink(w, h int) *textureSink {
	return &textureSink{tex: ebiten.NewImage(w, h)}
}

var _ mandelbrot.Sink = (*textureSink)(nil)

func (s *textureSink) Present(frame *mandelbrot.Frame) error {
	img := frame.Img
	for _, b := range frame.Bands {
		if b.Rows() == 0 {
			continue
		}
		region := image.Rect(0, b.Start, img.Rect.Dx(), b.End)
		sub := s.tex.SubImage(region).(*ebiten.Image)
		sub.WritePixels(img.Pix[b.Start*img.Stride : b.End*img.Stride])
	}
	return nil
}
