package sampler

import (
	"math"

	"github.com/gogpu/noise/internal/kernel"
	"github.com/gogpu/noise/internal/parallel"
	"github.com/gogpu/noise/internal/wide"
)

// Lanes samples rows with a lane kernel, Width() consecutive columns per
// kernel call.
//
// Thread safety: Rows may be called concurrently for disjoint row ranges.
type Lanes[F wide.Float[F, I], I wide.Int[I, F]] struct {
	// Fn is the fully composed kernel, normalization included.
	Fn kernel.Func[F]

	// Map places each cell in 3D space.
	Map Mapping

	// Width is the number of columns per row.
	Width int

	// Out is the row-major output, Width values per row.
	Out []float32
}

// Rows fills rows [r.Start, r.End) of Out and returns their extrema.
//
// A trailing partial batch repeats the last valid column in its padding
// lanes. Only valid lanes are stored, and the padding values equal a stored
// value, so folding whole batches into the extrema is exact.
func (j *Lanes[F, I]) Rows(r parallel.RowRange) parallel.Extrema {
	var z F
	w := z.Width()
	xs := make([]float32, j.Width)
	ys := make([]float32, j.Width)

	lo := z.Splat(math.MaxFloat32)
	hi := z.Splat(-math.MaxFloat32)
	for y := r.Start; y < r.End; y++ {
		vz := z.Splat(j.Map.Row(y, xs, ys))
		row := j.Out[y*j.Width : (y+1)*j.Width]

		x := 0
		for ; x+w <= j.Width; x += w {
			v := j.Fn(z.Load(xs[x:]), z.Load(ys[x:]), vz)
			v.Store(row[x:])
			lo, hi = lo.Min(v), hi.Max(v)
		}
		if n := j.Width - x; n > 0 {
			v := j.Fn(z.LoadN(xs[x:], n), z.LoadN(ys[x:], n), vz)
			v.StoreN(row[x:], n)
			lo, hi = lo.Min(v), hi.Max(v)
		}
	}

	e := parallel.NewExtrema()
	for i := range w {
		e.Merge(parallel.Extrema{Min: lo.Lane(i), Max: hi.Lane(i)})
	}
	return e
}

// Scalar samples rows one cell at a time.
//
// Thread safety: Rows may be called concurrently for disjoint row ranges.
type Scalar struct {
	// Fn is the fully composed kernel, normalization included.
	Fn kernel.ScalarFunc

	// Map places each cell in 3D space.
	Map Mapping

	// Width is the number of columns per row.
	Width int

	// Out is the row-major output, Width values per row.
	Out []float32
}

// Rows fills rows [r.Start, r.End) of Out and returns their extrema.
func (j *Scalar) Rows(r parallel.RowRange) parallel.Extrema {
	xs := make([]float32, j.Width)
	ys := make([]float32, j.Width)

	e := parallel.NewExtrema()
	for y := r.Start; y < r.End; y++ {
		z := j.Map.Row(y, xs, ys)
		row := j.Out[y*j.Width : (y+1)*j.Width]
		for x := range row {
			v := j.Fn(xs[x], ys[x], z)
			row[x] = v
			e.Add(v)
		}
	}
	return e
}
