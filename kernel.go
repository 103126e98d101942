package mandelbrot

// Iterate runs the escape-time test for c = re + i·im and returns the
// iteration index at which |z|² first reached 4, or maxIter if the point
// never escaped within the cap (presumed inside the set).
//
// The recurrence is z ← z² + c from z₀ = 0. The zero step is skipped (z₁ = c),
// so a point already at the threshold, such as c = 2, reports count 0.
//
// Hot inner loop: zr² and zi² are computed once per step and reused both for
// the escape test and the next iterate, which keeps the loop at five
// multiplies-adds per step and lets the compiler keep everything in registers.
func Iterate(re, im float64, maxIter int) int {
	zr, zi := re, im
	for i := 0; i < maxIter; i++ {
		zr2 := zr * zr
		zi2 := zi * zi
		if zr2+zi2 >= 4 {
			return i
		}
		zi = 2*zr*zi + im
		zr = zr2 - zi2 + re
	}
	return maxIter
}
