package mandelbrot

import "unsafe"

// cacheLineSize is the assumed cache line size. 64 bytes covers every
// platform this runs on; it sizes both the frame buffer alignment and the
// padding of per-worker task descriptors.
const cacheLineSize = 64

// alignedBytes allocates a byte slice whose backing array starts on a cache
// line boundary, so a worker's first row never shares a line with memory
// another goroutine writes.
func alignedBytes(size int) []byte {
	if size == 0 {
		return nil
	}
	buf := make([]byte, size+cacheLineSize-1)

	off := uintptr(0)
	if mod := uintptr(unsafe.Pointer(&buf[0])) % cacheLineSize; mod != 0 {
		off = cacheLineSize - mod
	}
	return buf[off : off+uintptr(size)]
}
