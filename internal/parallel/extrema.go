package parallel

import "math"

// Extrema is a running minimum and maximum of sampled values.
//
// The zero value is not ready for use; start from NewExtrema so that the
// first value folded in becomes both bounds.
type Extrema struct {
	Min float32
	Max float32
}

// NewExtrema returns the identity for Merge: Min at +MaxFloat32 and Max at
// -MaxFloat32.
func NewExtrema() Extrema {
	return Extrema{Min: math.MaxFloat32, Max: -math.MaxFloat32}
}

// Add folds v into the extrema.
func (e *Extrema) Add(v float32) {
	e.Min = min(e.Min, v)
	e.Max = max(e.Max, v)
}

// Merge folds o into the extrema.
func (e *Extrema) Merge(o Extrema) {
	e.Min = min(e.Min, o.Min)
	e.Max = max(e.Max, o.Max)
}

// Empty reports whether nothing has been folded in.
func (e Extrema) Empty() bool {
	return e.Min > e.Max
}
