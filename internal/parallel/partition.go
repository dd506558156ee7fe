// Package parallel provides row-partitioned parallel sampling for gogpu/noise.
//
// A sampling call splits its output rows into one contiguous range per
// worker, runs every range on its own goroutine, and folds the per-range
// extrema once all workers have joined.
package parallel

import "runtime"

// RowRange is a half-open range of buffer rows [Start, End).
type RowRange struct {
	// Start is the first row of the range.
	Start int

	// End is one past the last row of the range.
	End int
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int {
	return r.End - r.Start
}

// DefaultWorkers returns the worker count used when none is configured,
// the number of CPUs available to the scheduler.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Partition splits height rows into contiguous ranges, one per worker.
//
// The worker count is clamped to [1, height]. Every range holds
// height/workers rows and the last range also absorbs the remainder, so the
// ranges cover [0, height) exactly once and in order.
//
// Partition returns nil if height <= 0.
func Partition(height, workers int) []RowRange {
	if height <= 0 {
		return nil
	}
	workers = max(1, min(workers, height))

	per := height / workers
	ranges := make([]RowRange, workers)
	for i := range ranges {
		ranges[i] = RowRange{Start: i * per, End: (i + 1) * per}
	}
	ranges[workers-1].End = height
	return ranges
}
