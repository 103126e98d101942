package mandelbrot

import (
	"image"
	"sync"
)

// Frame is a fully joined render result: the live pixel buffer plus the row
// bands written during the pass. The bands let a presentation sink upload
// only the regions that changed.
type Frame struct {
	Img   *image.RGBA
	Bands []Band
}

// Renderer computes escape-time frames in parallel. It owns the single live
// pixel buffer (each frame overwrites the previous in place) and the
// immutable color table. One Renderer is bound to one image size and
// iteration cap; rebuild it if either changes.
type Renderer struct {
	width, height int
	maxIter       int
	workers       int
	palette       Palette
	img           *image.RGBA
}

// NewRenderer validates cfg, builds the color table and allocates the frame
// buffer. The buffer's backing array is cache-line aligned so band
// boundaries never straddle a line shared with foreign writes.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	img := &image.RGBA{
		Pix:    alignedBytes(cfg.Width * cfg.Height * 4),
		Stride: 4 * cfg.Width,
		Rect:   image.Rect(0, 0, cfg.Width, cfg.Height),
	}
	return &Renderer{
		width:   cfg.Width,
		height:  cfg.Height,
		maxIter: cfg.MaxIter,
		workers: cfg.Workers,
		palette: NewPalette(cfg.MaxIter),
		img:     img,
	}, nil
}

// Size returns the frame dimensions.
func (r *Renderer) Size() (w, h int) { return r.width, r.height }

// MaxIter returns the iteration cap the renderer was built with.
func (r *Renderer) MaxIter() int { return r.maxIter }

// task is the per-worker descriptor for one frame: an immutable view
// snapshot, the assigned band and an exclusive sub-slice of the frame
// buffer. Padded out so adjacent descriptors in the tasks slice never share
// a cache line while workers run.
type task struct {
	view View
	band Band
	rows []byte
	_    [cacheLineSize]byte
}

// RenderFrame renders one complete frame for the given view snapshot. One
// goroutine is dispatched per band; each writes only its own row slice, so
// the shared buffer needs no locking. RenderFrame blocks until every worker
// has joined — a caller never observes a partial frame.
func (r *Renderer) RenderFrame(view View) *Frame {
	bands := PartitionRows(r.height, r.workers)
	tasks := make([]task, len(bands))

	var wg sync.WaitGroup
	for i, b := range bands {
		lo := b.Start * r.img.Stride
		hi := b.End * r.img.Stride
		// Three-index slice: a worker cannot even accidentally write past
		// its band.
		tasks[i] = task{view: view, band: b, rows: r.img.Pix[lo:hi:hi]}

		wg.Add(1)
		go func(t *task) {
			defer wg.Done()
			r.renderBand(t)
		}(&tasks[i])
	}
	wg.Wait()

	return &Frame{Img: r.img, Bands: bands}
}

// renderBand fills the task's rows. The imaginary coordinate is constant
// across a row, so it is derived once per row; only the real coordinate is
// recomputed per column.
func (r *Renderer) renderBand(t *task) {
	w, h := r.width, r.height
	for y := t.band.Start; y < t.band.End; y++ {
		_, im := t.view.PixelToComplex(0, float64(y), w, h)
		row := t.rows[(y-t.band.Start)*r.img.Stride:]

		for x := 0; x < w; x++ {
			re, _ := t.view.PixelToComplex(float64(x), 0, w, h)
			c := r.palette[Iterate(re, im, r.maxIter)]

			o := x * 4
			row[o+0] = c.R
			row[o+1] = c.G
			row[o+2] = c.B
			row[o+3] = c.A
		}
	}
}
