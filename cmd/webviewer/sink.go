package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"

	"github.com/coder/websocket"

	mandelbrot "github.com/viirret/mandelbrot-renderer"
)

// bandSink streams each joined frame to the browser as one binary message
// per band: an 8-byte big-endian (startRow, endRow) header followed by the
// raw RGBA rows. The canvas client blits each band with putImageData at its
// row offset, so only changed regions are redrawn.
type bandSink struct {
	ctx  context.Context
	conn *websocket.Conn
	buf  bytes.Buffer
}

var _ mandelbrot.Sink = (*bandSink)(nil)

func (s *bandSink) Present(frame *mandelbrot.Frame) error {
	img := frame.Img
	for _, b := range frame.Bands {
		if b.Rows() == 0 {
			continue
		}

		s.buf.Reset()
		var hdr [8]byte
		binary.BigEndian.PutUint32(hdr[:4], uint32(b.Start))
		binary.BigEndian.PutUint32(hdr[4:], uint32(b.End))
		s.buf.Write(hdr[:])
		s.buf.Write(img.Pix[b.Start*img.Stride : b.End*img.Stride])

		if err := s.conn.Write(s.ctx, websocket.MessageBinary, s.buf.Bytes()); err != nil {
			return fmt.Errorf("write band [%d,%d): %w", b.Start, b.End, err)
		}
	}
	return nil
}
