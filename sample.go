package noise

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/noise/internal/fractal"
	"github.com/gogpu/noise/internal/kernel"
	"github.com/gogpu/noise/internal/parallel"
	"github.com/gogpu/noise/internal/sampler"
	"github.com/gogpu/noise/internal/wide"
)

// Sample fills a width×height buffer with the fractal f of noise kernel n,
// evaluating several columns per kernel call.
//
// The grid covers the unit sphere unless WithPlane is given. Rows are split
// across WithWorkers goroutines (GOMAXPROCS by default), all of which have
// returned before Sample does. The buffer is aligned to the lane width in
// bytes and records the minimum and maximum value.
//
// Arguments are checked before anything is allocated. On error the buffer is
// nil and the error wraps one of ErrInvalidSize, ErrInvalidOctaves,
// ErrUnknownFractal, ErrUnknownNoise or ErrInvalidLaneWidth.
func Sample(width, height int, p Params, f FractalType, n NoiseType, opts ...SampleOption) (*Buffer, error) {
	o := applyOptions(opts)
	lanes := LaneWidth()
	if o.forceLanes {
		if !o.laneWidth.Valid() {
			return nil, fmt.Errorf("noise: lane width %d: %w", int(o.laneWidth), ErrInvalidLaneWidth)
		}
		lanes = int(o.laneWidth)
	}

	c, err := newCall(width, height, p, f, n, o)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var buf *Buffer
	switch wide.Width(lanes) {
	case wide.Width8:
		buf = sampleLanes[wide.F32x8, wide.I32x8](c, lanes)
	case wide.Width4:
		buf = sampleLanes[wide.F32x4, wide.I32x4](c, lanes)
	default:
		buf = sampleLanes[wide.F32x1, wide.I32x1](c, lanes)
	}
	c.log(lanes, start)
	return buf, nil
}

// SampleScalar is the reference version of Sample. It evaluates one cell per
// kernel call into a buffer with plain float32 alignment and produces the same
// values as Sample, bit for bit. WithLaneWidth is ignored.
func SampleScalar(width, height int, p Params, f FractalType, n NoiseType, opts ...SampleOption) (*Buffer, error) {
	c, err := newCall(width, height, p, f, n, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	noise, _ := kernel.Scalar(c.noise)
	fn, _ := fractal.Scalar(c.fractal, c.settings, noise)
	if c.normalize {
		fn = fractal.NormalizedScalar(fn, c.offset, c.scale)
	}

	buf := newBuffer(c.width, c.height, 4)
	job := &sampler.Scalar{Fn: fn, Map: c.mapping, Width: c.width, Out: buf.data}
	buf.ext = parallel.Run(c.ranges, job.Rows)
	c.log(1, start)
	return buf, nil
}

// Noise evaluates kernel n once at (x, y, z) with no fractal composition.
func Noise(x, y, z float32, n NoiseType) (float32, error) {
	k, ok := n.kind()
	if !ok {
		return 0, fmt.Errorf("noise: %v: %w", n, ErrUnknownNoise)
	}
	fn, _ := kernel.Scalar(k)
	return fn(x, y, z), nil
}

var laneWidth = sync.OnceValue(func() int {
	w := wide.Detect()
	Logger().Debug("noise: lane width selected", "lanes", int(w), "isa", w.String())
	return int(w)
})

// LaneWidth returns the number of columns Sample evaluates per kernel call on
// this CPU: 8 with AVX2, 4 with SSE4.1 or NEON, otherwise 1.
func LaneWidth() int {
	return laneWidth()
}

// call is a validated sampling request with every selector resolved.
type call struct {
	width, height int
	fractalType   FractalType
	noiseType     NoiseType

	fractal  fractal.Kind
	noise    kernel.Kind
	settings fractal.Settings

	normalize     bool
	offset, scale float32

	mapping sampler.Mapping
	ranges  []parallel.RowRange
}

func applyOptions(opts []SampleOption) sampleOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// newCall validates the request. Nothing is allocated for the output until
// every check has passed.
func newCall(width, height int, p Params, f FractalType, n NoiseType, o sampleOptions) (*call, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("noise: %dx%d: %w", width, height, ErrInvalidSize)
	}
	if p.Octaves < 1 {
		return nil, fmt.Errorf("noise: %d octaves: %w", p.Octaves, ErrInvalidOctaves)
	}
	fk, ok := f.kind()
	if !ok {
		return nil, fmt.Errorf("noise: %v: %w", f, ErrUnknownFractal)
	}
	nk, ok := n.kind()
	if !ok {
		return nil, fmt.Errorf("noise: %v: %w", n, ErrUnknownNoise)
	}
	fk, _ = fractal.Resolve(fk, p.Octaves)

	c := &call{
		width:       width,
		height:      height,
		fractalType: f,
		noiseType:   n,
		fractal:     fk,
		noise:       nk,
		settings:    p.settings(),
		normalize:   o.plane == nil,
	}
	if o.normalize != nil {
		c.normalize = *o.normalize
	}
	if c.normalize {
		octaves := p.Octaves
		if fk == fractal.KindPlain {
			octaves = 1
		}
		c.offset, c.scale = fractal.Normalization(octaves)
	}

	if o.plane != nil {
		c.mapping = sampler.Plane(*o.plane)
	} else {
		c.mapping = sampler.NewSphere(width, height)
	}

	workers := o.workers
	if workers <= 0 {
		workers = parallel.DefaultWorkers()
	}
	c.ranges = parallel.Partition(height, workers)
	return c, nil
}

func sampleLanes[F wide.Float[F, I], I wide.Int[I, F]](c *call, lanes int) *Buffer {
	noise, _ := kernel.Lanes[F, I](c.noise)
	fn, _ := fractal.Lanes[F, I](c.fractal, c.settings, noise)
	if c.normalize {
		fn = fractal.NormalizedLanes[F, I](fn, c.offset, c.scale)
	}

	buf := newBuffer(c.width, c.height, 4*lanes)
	job := &sampler.Lanes[F, I]{Fn: fn, Map: c.mapping, Width: c.width, Out: buf.data}
	buf.ext = parallel.Run(c.ranges, job.Rows)
	return buf
}

func (c *call) log(lanes int, start time.Time) {
	Logger().Debug("noise: sampled",
		"width", c.width,
		"height", c.height,
		"fractal", c.fractalType,
		"noise", c.noiseType,
		"octaves", c.settings.Octaves,
		"workers", len(c.ranges),
		"lanes", lanes,
		"elapsed", time.Since(start),
	)
}
