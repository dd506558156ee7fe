package noise

import "errors"

// Sentinel errors returned by Sample and SampleScalar. They are wrapped with
// call details; test for them with errors.Is.
var (
	// ErrUnknownFractal is returned for a FractalType outside the defined set.
	ErrUnknownFractal = errors.New("noise: unknown fractal type")

	// ErrUnknownNoise is returned for a NoiseType outside the defined set.
	ErrUnknownNoise = errors.New("noise: unknown noise type")

	// ErrInvalidSize is returned when width or height is not positive.
	ErrInvalidSize = errors.New("noise: invalid buffer size")

	// ErrInvalidOctaves is returned when Params.Octaves is less than 1.
	ErrInvalidOctaves = errors.New("noise: octaves must be at least 1")

	// ErrInvalidLaneWidth is returned by WithLaneWidth values other than 1, 4 or 8.
	ErrInvalidLaneWidth = errors.New("noise: unsupported lane width")
)
