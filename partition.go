package mandelbrot

// Band is a contiguous range of image rows [Start, End) assigned to one
// worker for one frame.
type Band struct {
	Start, End int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int { return b.End - b.Start }

// PartitionRows splits [0, height) into workers contiguous row bands: no
// gaps, no overlaps, their union exactly the full row range. Each band gets
// height/workers rows; the final band absorbs the remainder.
//
// workers may exceed height, in which case the leading bands are empty and
// the final band holds every row — still a valid partition. workers must be
// positive.
func PartitionRows(height, workers int) []Band {
	if workers <= 0 {
		panic("worker count must be positive")
	}

	bands := make([]Band, workers)
	rows := height / workers
	for i := range bands {
		bands[i].Start = i * rows
		bands[i].End = (i + 1) * rows
	}
	bands[workers-1].End = height
	return bands
}
