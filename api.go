package mandelbrot

// Sink is the presentation side of the viewer. It receives fully joined
// frames and is responsible for getting them on screen; the Bands on a Frame
// tell it which row regions were written, for partial texture updates. A
// frame handed to Present is never still being written.
type Sink interface {
	Present(*Frame) error
}
