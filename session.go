package mandelbrot

// Event is a discrete input event delivered by a frontend. A Session
// consumes events strictly between frames, so a render pass always sees an
// immutable view snapshot.
type Event interface{ isEvent() }

// QuitEvent ends the session.
type QuitEvent struct{}

// WheelEvent is one scroll-wheel notch; the sign of DeltaY picks the zoom
// direction.
type WheelEvent struct{ DeltaY float64 }

// PointerDownEvent starts a drag at the given pixel.
type PointerDownEvent struct{ X, Y int }

// PointerUpEvent ends the current drag.
type PointerUpEvent struct{}

// PointerMoveEvent reports the pointer position; it pans the view only while
// a drag is active.
type PointerMoveEvent struct{ X, Y int }

func (QuitEvent) isEvent()        {}
func (WheelEvent) isEvent()       {}
func (PointerDownEvent) isEvent() {}
func (PointerUpEvent) isEvent()   {}
func (PointerMoveEvent) isEvent() {}

// wheelZoomStep is the zoom change per wheel notch.
const wheelZoomStep = 1.1

// Session drives one interactive viewing session. It owns the view state and
// the drag bookkeeping, translates events into view mutations, and
// re-renders through its Renderer only when an event actually changed the
// view.
type Session struct {
	width, height int
	view          View
	renderer      *Renderer

	dragging     bool
	prevX, prevY int

	dirty bool
	done  bool
	frame *Frame
}

// NewSession builds a renderer for cfg and starts the session at its initial
// view.
func NewSession(cfg Config) (*Session, error) {
	r, err := NewRenderer(cfg)
	if err != nil {
		return nil, err
	}
	return &Session{
		width:    cfg.Width,
		height:   cfg.Height,
		view:     cfg.View(),
		renderer: r,
		dirty:    true,
	}, nil
}

// Handle applies one input event to the session state.
func (s *Session) Handle(ev Event) {
	switch ev := ev.(type) {
	case QuitEvent:
		s.done = true

	case WheelEvent:
		switch {
		case ev.DeltaY > 0:
			s.view.ZoomBy(wheelZoomStep)
		case ev.DeltaY < 0:
			s.view.ZoomBy(1 / wheelZoomStep)
		default:
			return
		}
		s.dirty = true

	case PointerDownEvent:
		s.dragging = true
		s.prevX, s.prevY = ev.X, ev.Y

	case PointerUpEvent:
		s.dragging = false

	case PointerMoveEvent:
		if !s.dragging {
			return
		}
		dx, dy := ev.X-s.prevX, ev.Y-s.prevY
		if dx != 0 || dy != 0 {
			s.view.PanByPixelDelta(float64(dx), float64(dy), s.width, s.height)
			s.dirty = true
		}
		s.prevX, s.prevY = ev.X, ev.Y
	}
}

// Done reports whether a quit event has been received.
func (s *Session) Done() bool { return s.done }

// View returns the current view state.
func (s *Session) View() View { return s.view }

// Dirty reports whether the next Frame call will re-render.
func (s *Session) Dirty() bool { return s.dirty || s.frame == nil }

// Frame returns the frame for the current view, rendering only if an event
// changed the view since the last call. The first call always renders.
func (s *Session) Frame() *Frame {
	if s.dirty || s.frame == nil {
		s.frame = s.renderer.RenderFrame(s.view)
		s.dirty = false
	}
	return s.frame
}
