// Command webviewer serves the viewer to a browser: a static canvas page
// plus a websocket endpoint that streams rendered frame bands one way and
// carries input events the other. Each connection gets its own independent
// session and renderer.
package main

import (
	"flag"
	"log"
	"net/http"
	"runtime"
	"strings"
	"time"

	mandelbrot "github.com/viirret/mandelbrot-renderer"
)

var (
	addr      = flag.String("addr", ":8080", "http listen address")
	staticDir = flag.String("static", "./static", "directory with the canvas client")
	winSize   = flag.Int("size", 800, "canvas size in pixels (square)")
	iter      = flag.Int("iter", 1000, "escape-time iteration cap")
	workers   = flag.Int("workers", runtime.NumCPU(), "number of render workers per session")
	landmark  = flag.String("landmark", "home", "named view, one of: "+strings.Join(mandelbrot.LandmarkNames(), ", "))
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

	// Reject a degenerate configuration here, before the first connection.
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv := &server{cfg: cfg}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleWS)
	mux.Handle("/", http.FileServer(http.Dir(*staticDir)))

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", *addr)
	return httpServer.ListenAndServe()
}
