package parallel

import gopar "github.com/dgravesa/go-parallel/parallel"

// Run calls fn once for every range, each on its own goroutine, waits for
// all of them and returns the merged extrema.
//
// Each worker writes its result into a dedicated slot, so no locking is
// needed until the join. A single range runs on the calling goroutine.
//
// fn must only write buffer rows inside the range it is given.
func Run(ranges []RowRange, fn func(RowRange) Extrema) Extrema {
	total := NewExtrema()
	switch len(ranges) {
	case 0:
		return total
	case 1:
		total.Merge(fn(ranges[0]))
		return total
	}

	results := make([]Extrema, len(ranges))
	gopar.WithNumGoroutines(len(ranges)).For(len(ranges), func(i, _ int) {
		results[i] = fn(ranges[i])
	})

	for _, r := range results {
		total.Merge(r)
	}
	return total
}
