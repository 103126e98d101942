package mandelbrot

import "testing"

func TestPartitionRowsExactCover(t *testing.T) {
	tests := []struct {
		height, workers int
	}{
		{800, 16},
		{800, 1},
		{100, 7},
		{1080, 12},
		{1, 1},
		{5, 10}, // more workers than rows
		{0, 3},  // empty image still partitions
	}
	for _, tt := range tests {
		bands := PartitionRows(tt.height, tt.workers)

		if len(bands) != tt.workers {
			t.Errorf("PartitionRows(%d, %d): got %d bands, want %d", tt.height, tt.workers, len(bands), tt.workers)
			continue
		}
		if bands[0].Start != 0 {
			t.Errorf("PartitionRows(%d, %d): first band starts at %d", tt.height, tt.workers, bands[0].Start)
		}
		if last := bands[len(bands)-1]; last.End != tt.height {
			t.Errorf("PartitionRows(%d, %d): last band ends at %d, want %d", tt.height, tt.workers, last.End, tt.height)
		}
		for i, b := range bands {
			if b.Rows() < 0 {
				t.Errorf("PartitionRows(%d, %d): band %d has negative size %+v", tt.height, tt.workers, i, b)
			}
			if i > 0 && b.Start != bands[i-1].End {
				t.Errorf("PartitionRows(%d, %d): gap or overlap between band %d and %d: %+v, %+v",
					tt.height, tt.workers, i-1, i, bands[i-1], b)
			}
		}
	}
}

func TestPartitionRowsFinalBandAbsorbsRemainder(t *testing.T) {
	bands := PartitionRows(100, 7)
	// 100/7 = 14 rows per band, final band takes 14 + remainder 2.
	for i := 0; i < 6; i++ {
		if bands[i].Rows() != 14 {
			t.Errorf("band %d has %d rows, want 14", i, bands[i].Rows())
		}
	}
	if bands[6].Rows() != 16 {
		t.Errorf("final band has %d rows, want 16", bands[6].Rows())
	}
}

func TestPartitionRowsRejectsNonPositiveWorkers(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("PartitionRows(10, 0) did not panic")
		}
	}()
	PartitionRows(10, 0)
}
