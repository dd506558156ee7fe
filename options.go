package noise

import "github.com/gogpu/noise/internal/wide"

// SampleOption configures a Sample or SampleScalar call.
// Use functional options to customize sampling behavior.
//
// Example:
//
//	// Sphere surface, all CPUs, detected lane width
//	buf, err := noise.Sample(512, 256, noise.DefaultParams(), noise.FBM, noise.Perlin)
//
//	// Planar tile on four workers
//	buf, err := noise.Sample(256, 256, p, noise.Ridge, noise.Simplex,
//	    noise.WithPlane(noise.Plane{Step: 1.0 / 64}),
//	    noise.WithWorkers(4))
type SampleOption func(*sampleOptions)

// sampleOptions holds optional configuration for a sampling call.
type sampleOptions struct {
	workers    int
	laneWidth  wide.Width
	forceLanes bool
	plane      *Plane
	normalize  *bool
}

// defaultOptions returns the default sampling options.
func defaultOptions() sampleOptions {
	return sampleOptions{
		workers:    0,     // GOMAXPROCS
		forceLanes: false, // detected lane width
		plane:      nil,   // sphere
		normalize:  nil,   // on for the sphere, off for a plane
	}
}

// Plane places a planar grid in 3D space. Cell (x, y) samples the point
// (OriginX + x*Step, OriginY + y*Step, Z).
type Plane struct {
	OriginX float32
	OriginY float32
	Z       float32
	Step    float32
}

// WithWorkers sets the number of goroutines that share the rows.
// Zero or a negative value uses runtime.GOMAXPROCS(0). The count is capped
// at the buffer height.
func WithWorkers(n int) SampleOption {
	return func(o *sampleOptions) {
		o.workers = n
	}
}

// WithLaneWidth forces the number of columns evaluated per kernel call in
// Sample. Valid widths are 1, 4 and 8; anything else makes Sample fail with
// ErrInvalidLaneWidth. All widths produce identical buffers, so this is
// mainly useful for benchmarks and cross-checks. SampleScalar ignores it.
func WithLaneWidth(w int) SampleOption {
	return func(o *sampleOptions) {
		o.laneWidth = wide.Width(w)
		o.forceLanes = true
	}
}

// WithSphere wraps the grid around the unit sphere. This is the default.
func WithSphere() SampleOption {
	return func(o *sampleOptions) {
		o.plane = nil
	}
}

// WithPlane lays the grid out on a plane instead of the sphere.
func WithPlane(p Plane) SampleOption {
	return func(o *sampleOptions) {
		o.plane = &p
	}
}

// WithNormalization turns the empirical (sum + offset) * scale mapping
// toward [0, 1] on or off. It defaults to on for the sphere and off for a
// plane.
func WithNormalization(on bool) SampleOption {
	return func(o *sampleOptions) {
		o.normalize = &on
	}
}
