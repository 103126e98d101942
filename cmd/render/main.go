// Command render produces a single PNG snapshot of a configured view.
// It is the headless frontend: same engine as the interactive viewers, with
// a file on disk as the presentation sink.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	mandelbrot "github.com/viirret/mandelbrot-renderer"
)

var (
	size     = flag.String("size", "800x800", "size of the output image, WxH")
	iter     = flag.Int("iter", 1000, "escape-time iteration cap")
	workers  = flag.Int("workers", runtime.NumCPU(), "number of render workers")
	landmark = flag.String("landmark", "home", "named view, one of: "+strings.Join(mandelbrot.LandmarkNames(), ", "))
	zoom     = flag.Float64("zoom", 0, "zoom override (> 0; 0 keeps the landmark's zoom)")
	output   = flag.String("out", "mandelbrot.png", "name of the output image file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	cfg, err := configFromFlags()
	if err != nil {
		return err
	}

	renderer, err := mandelbrot.NewRenderer(cfg)
	if err != nil {
		return err
	}

	log.Printf("rendering %dx%d at %q (zoom %g) with %d workers", cfg.Width, cfg.Height, *landmark, cfg.Zoom, cfg.Workers)
	start := time.Now()
	frame := renderer.RenderFrame(cfg.View())
	log.Printf("render took %s", time.Since(start))

	var sink mandelbrot.Sink = pngSink{path: *output}
	if err := sink.Present(frame); err != nil {
		return err
	}

	log.Printf("snapshot saved to %q", *output)
	return nil
}

func configFromFlags() (mandelbrot.Config, error) {
	cfg := mandelbrot.DefaultConfig()

	w, h, err := parseSize(*size)
	if err != nil {
		return cfg, err
	}
	cfg.Width, cfg.Height = w, h
	cfg.MaxIter = *iter
	cfg.Workers = *workers

	l, err := mandelbrot.LookupLandmark(*landmark)
	if err != nil {
		return cfg, err
	}
	cfg.CenterX, cfg.CenterY, cfg.Zoom = l.CenterX, l.CenterY, l.Zoom
	if *zoom > 0 {
		cfg.Zoom = *zoom
	}
	return cfg, cfg.Validate()
}

func parseSize(s string) (w, h int, err error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("size must be WxH, got %q", s)
	}
	w, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("size width %q: %w", parts[0], err)
	}
	h, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("size height %q: %w", parts[1], err)
	}
	return w, h, nil
}

// pngSink writes each presented frame to a file. Bands are ignored: a
// snapshot is always a whole frame.
type pngSink struct {
	path string
}

func (s pngSink) Present(frame *mandelbrot.Frame) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create %q: %w", s.path, err)
	}
	defer f.Close()

	if err := png.Encode(f, frame.Img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
