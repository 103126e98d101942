package mandelbrot

// View describes which part of the complex plane is visible: the plane point
// at the image center and a multiplicative zoom factor. Zoom must stay
// positive; larger zoom means a smaller plane extent per pixel.
//
// A View is a plain value. The render loop snapshots it before dispatching
// workers, so mutation is confined to the event layer between frames.
type View struct {
	CenterX, CenterY float64
	Zoom             float64
}

// PixelToComplex maps pixel (px, py) of a w×h image to its plane sample.
// This is the single source of truth for the plane mapping; the inverse and
// the renderer both derive from it.
func (v View) PixelToComplex(px, py float64, w, h int) (re, im float64) {
	re = (px-float64(w)/2)/(0.5*v.Zoom*float64(w)) + v.CenterX
	im = (py-float64(h)/2)/(0.5*v.Zoom*float64(h)) + v.CenterY
	return re, im
}

// ComplexToPixel is the exact inverse of PixelToComplex.
func (v View) ComplexToPixel(re, im float64, w, h int) (px, py float64) {
	px = (re-v.CenterX)*0.5*v.Zoom*float64(w) + float64(w)/2
	py = (im-v.CenterY)*0.5*v.Zoom*float64(h) + float64(h)/2
	return px, py
}

// ZoomBy multiplies the zoom factor. factor > 1 zooms in, factor in (0,1)
// zooms out. There is no upper bound; at extreme zoom float64 runs out of
// mantissa and the image pixelates. That is a known limitation of
// fixed-precision arithmetic, not something this type papers over.
func (v *View) ZoomBy(factor float64) {
	v.Zoom *= factor
}

// PanByPixelDelta converts a pointer drag delta in pixels into a plane-space
// delta at the current zoom and moves the center against it: dragging the
// content right moves the visible window left.
func (v *View) PanByPixelDelta(dx, dy float64, w, h int) {
	v.CenterX -= dx / (v.Zoom * float64(w))
	v.CenterY -= dy / (v.Zoom * float64(h))
}
