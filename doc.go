// Package noise computes 3D gradient noise fields for procedural generation.
//
// # Overview
//
// noise samples continuous pseudorandom scalar fields over a 2D grid, either
// wrapped around the surface of the unit sphere or laid out on a plane. Each
// cell is one evaluation of a fractal composition of Perlin or simplex noise.
// Rows are spread across goroutines and evaluated several columns at a time
// with fixed-width lane types that the Go compiler can vectorize.
//
// # Quick Start
//
//	import "github.com/gogpu/noise"
//
//	buf, err := noise.Sample(1024, 512, noise.DefaultParams(), noise.FBM, noise.Perlin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(buf.Min(), buf.Max())
//
// # Fractals
//
// Plain evaluates the kernel once. FBM sums octaves, Turbulence sums their
// absolute values and Ridge builds sharp crests where each octave is weighted
// by the previous one. FBM and Turbulence with a single octave run as Plain.
//
// # Determinism
//
// Every lane width and the scalar reference path produce bit-identical
// buffers, and the result does not depend on the number of workers.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Sample, SampleScalar, Noise, Buffer, Params
//   - Internal: wide (lane types), kernel (Perlin, simplex), fractal
//     (octave composition), sampler (grid mapping), parallel (row scheduling)
//   - Tools: cmd/noisedemo (image preview), cmd/noisebench (timing)
package noise

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
