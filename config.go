package mandelbrot

import "fmt"

// Config carries the fixed parameters of a viewing session. Validate rejects
// degenerate values up front so the partitioner and renderer never see them.
type Config struct {
	Width, Height int // image size in pixels
	MaxIter       int // escape-time iteration cap
	Workers       int // parallel render workers

	// Initial view.
	CenterX, CenterY float64
	Zoom             float64
}

// DefaultConfig is the classic full-set view: 800×800, 1000 iterations,
// 16 workers, centered on (−0.5, 0) at zoom 1.
func DefaultConfig() Config {
	return Config{
		Width:   800,
		Height:  800,
		MaxIter: 1000,
		Workers: 16,
		CenterX: -0.5,
		CenterY: 0,
		Zoom:    1,
	}
}

// Validate reports the first degenerate parameter, if any.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("iteration cap must be positive, got %d", c.MaxIter)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", c.Workers)
	}
	if c.Zoom <= 0 {
		return fmt.Errorf("zoom must be positive, got %g", c.Zoom)
	}
	return nil
}

// View returns the initial view state described by the config.
func (c Config) View() View {
	return View{CenterX: c.CenterX, CenterY: c.CenterY, Zoom: c.Zoom}
}
