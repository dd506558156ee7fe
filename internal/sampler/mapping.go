// Package sampler maps buffer cells to 3D points and fills row ranges with
// noise values.
package sampler

import (
	"math"

	"github.com/gogpu/noise/internal/cache"
)

// Mapping turns buffer coordinates into 3D sample points.
//
// Row fills xs and ys with the x and y coordinates of every column of row y
// and returns the z coordinate shared by the whole row. Implementations must
// be safe for concurrent use by multiple workers and must derive each point
// from its indices alone, so that a row is identical whichever worker
// samples it.
type Mapping interface {
	Row(y int, xs, ys []float32) (z float32)
}

// Sphere maps a width×height grid onto the unit sphere. Column x sits at
// longitude theta = (x+1)·2π/width and row y at colatitude
// phi = (y+1)·π/(height+1), giving the point
// (cos θ·sin φ, sin θ·sin φ, cos φ).
type Sphere struct {
	height int
	*columns
}

// columns holds cos θ and sin θ for every column of one grid width.
type columns struct {
	cosT []float32
	sinT []float32
}

// tables shares column trigonometry between grids of the same width.
var tables = cache.New[int, *columns](16)

// NewSphere returns the mapping for a grid of the given size. The column
// tables are computed once per width and are read-only afterwards.
func NewSphere(width, height int) *Sphere {
	return &Sphere{
		height:  height,
		columns: tables.GetOrCreate(width, func() *columns { return newColumns(width) }),
	}
}

func newColumns(width int) *columns {
	c := &columns{
		cosT: make([]float32, width),
		sinT: make([]float32, width),
	}
	step := 2 * math.Pi / float64(width)
	for x := range width {
		theta := float64(x+1) * step
		c.cosT[x] = float32(math.Cos(theta))
		c.sinT[x] = float32(math.Sin(theta))
	}
	return c
}

// Row implements Mapping.
func (s *Sphere) Row(y int, xs, ys []float32) float32 {
	phi := float64(y+1) * math.Pi / float64(s.height+1)
	sinP := float32(math.Sin(phi))
	for x := range s.cosT {
		xs[x] = float32(s.cosT[x] * sinP)
		ys[x] = float32(s.sinT[x] * sinP)
	}
	return float32(math.Cos(phi))
}

// Plane maps the grid onto the plane z = Z. Cell (x, y) samples
// (OriginX + x·Step, OriginY + y·Step, Z).
type Plane struct {
	OriginX float32
	OriginY float32
	Z       float32
	Step    float32
}

// Row implements Mapping.
func (p Plane) Row(y int, xs, ys []float32) float32 {
	py := p.OriginY + float32(float32(y)*p.Step)
	for x := range xs {
		xs[x] = p.OriginX + float32(float32(x)*p.Step)
		ys[x] = py
	}
	return p.Z
}
