package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandelbrot "github.com/viirret/mandelbrot-renderer"
)

type server struct {
	cfg mandelbrot.Config
}

// handleWS upgrades the connection and runs one viewing session on it until
// the client quits or disconnects.
func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "session aborted")

	log.Printf("session started: %s", r.RemoteAddr)
	if err := s.serveSession(r.Context(), c); err != nil {
		log.Printf("session %s: %v", r.RemoteAddr, err)
		return
	}
	log.Printf("session finished: %s", r.RemoteAddr)
	c.Close(websocket.StatusNormalClosure, "")
}

// helloMsg tells the client the canvas dimensions before any frame data.
type helloMsg struct {
	Type    string `json:"type"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	MaxIter int    `json:"maxIter"`
}

// inputMsg is one input event from the canvas client.
type inputMsg struct {
	Type   string  `json:"type"` // quit, wheel, down, up, move
	X      int     `json:"x"`
	Y      int     `json:"y"`
	DeltaY float64 `json:"deltaY"`
}

func (m inputMsg) event() (mandelbrot.Event, bool) {
	switch m.Type {
	case "quit":
		return mandelbrot.QuitEvent{}, true
	case "wheel":
		return mandelbrot.WheelEvent{DeltaY: m.DeltaY}, true
	case "down":
		return mandelbrot.PointerDownEvent{X: m.X, Y: m.Y}, true
	case "up":
		return mandelbrot.PointerUpEvent{}, true
	case "move":
		return mandelbrot.PointerMoveEvent{X: m.X, Y: m.Y}, true
	}
	return nil, false
}

// serveSession runs the frame loop for one connection: push the initial
// frame, then block for input, apply every pending event between frames and
// re-render only when the view changed.
func (s *server) serveSession(ctx context.Context, c *websocket.Conn) error {
	session, err := mandelbrot.NewSession(s.cfg)
	if err != nil {
		return err
	}

	hello := helloMsg{Type: "hello", Width: s.cfg.Width, Height: s.cfg.Height, MaxIter: s.cfg.MaxIter}
	if err := wsjson.Write(ctx, c, hello); err != nil {
		return fmt.Errorf("write hello: %w", err)
	}

	events := make(chan mandelbrot.Event, 64)
	go readEvents(ctx, c, events)

	sink := &bandSink{ctx: ctx, conn: c}
	if err := sink.Present(session.Frame()); err != nil {
		return err
	}

	for !session.Done() {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil // client went away
			}
			session.Handle(ev)
		case <-ctx.Done():
			return ctx.Err()
		}

		// Drain whatever else arrived; events apply between frames only.
		for drained := false; !drained; {
			select {
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				session.Handle(ev)
			default:
				drained = true
			}
		}

		if session.Dirty() {
			if err := sink.Present(session.Frame()); err != nil {
				return err
			}
		}
	}
	return nil
}

// readEvents decodes input messages until the connection drops, then closes
// the channel.
func readEvents(ctx context.Context, c *websocket.Conn, out chan<- mandelbrot.Event) {
	defer close(out)
	for {
		var msg inputMsg
		if err := wsjson.Read(ctx, c, &msg); err != nil {
			return
		}
		ev, ok := msg.event()
		if !ok {
			log.Printf("ignoring unknown input type %q", msg.Type)
			continue
		}
		out <- ev
	}
}
