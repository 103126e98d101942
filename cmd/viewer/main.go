// Command viewer is the interactive desktop frontend: an ebiten window where
// the mouse wheel zooms and a left-button drag pans. All computation happens
// in the core renderer; this command only translates input events and
// uploads joined frames into the window texture.
package main

import (
	"flag"
	"log"
	"runtime"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	mandelbrot "github.com/viirret/mandelbrot-renderer"
)

var (
	iter     = flag.Int("iter", 1000, "escape-time iteration cap")
	workers  = flag.Int("workers", runtime.NumCPU(), "number of render workers")
	landmark = flag.String("landmark", "home", "named view, one of: "+strings.Join(mandelbrot.LandmarkNames(), ", "))
	winSize  = flag.Int("size", 800, "window size in pixels (square)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	cfg := mandelbrot.DefaultConfig()
	cfg.Width, cfg.Height = *winSize, *winSize
	cfg.MaxIter = *iter
	cfg.Workers = *workers

	l, err := mandelbrot.LookupLandmark(*landmark)
	if err != nil {
		return err
	}
	cfg.CenterX, cfg.CenterY, cfg.Zoom = l.CenterX, l.CenterY, l.Zoom

	session, err := mandelbrot.NewSession(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Mandelbrot Set")

	return ebiten.RunGame(&game{
		session: session,
		sink:    newTextureSink(cfg.Width, cfg.Height),
		width:   cfg.Width,
		height:  cfg.Height,
	})
}

type game struct {
	session       *mandelbrot.Session
	sink          *textureSink
	width, height int
}

// Update translates this tick's input into session events, then re-renders
// and uploads only if the view changed.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.session.Handle(mandelbrot.QuitEvent{})
	}
	if g.session.Done() {
		return ebiten.Termination
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.session.Handle(mandelbrot.WheelEvent{DeltaY: dy})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.session.Handle(mandelbrot.PointerDownEvent{X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.session.Handle(mandelbrot.PointerUpEvent{})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.session.Handle(mandelbrot.PointerMoveEvent{X: x, Y: y})
	}

	if g.session.Dirty() {
		if err := g.sink.Present(g.session.Frame()); err != nil {
			return err
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.sink.tex, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
