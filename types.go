package noise

import (
	"fmt"
	"strings"

	"github.com/gogpu/noise/internal/fractal"
	"github.com/gogpu/noise/internal/kernel"
)

// FractalType selects how octaves of the kernel are combined.
type FractalType int

const (
	// Plain evaluates the kernel once at the base frequency.
	Plain FractalType = iota
	// FBM sums octaves with decreasing amplitude.
	FBM
	// Turbulence sums the absolute value of each octave.
	Turbulence
	// Ridge sums inverted, squared octaves weighted by the previous octave.
	Ridge
)

// String returns the lowercase name of the fractal type.
func (f FractalType) String() string {
	switch f {
	case Plain:
		return "plain"
	case FBM:
		return "fbm"
	case Turbulence:
		return "turbulence"
	case Ridge:
		return "ridge"
	default:
		return fmt.Sprintf("FractalType(%d)", int(f))
	}
}

// kind maps f to the internal compositor selector.
func (f FractalType) kind() (fractal.Kind, bool) {
	switch f {
	case Plain:
		return fractal.KindPlain, true
	case FBM:
		return fractal.KindFBM, true
	case Turbulence:
		return fractal.KindTurbulence, true
	case Ridge:
		return fractal.KindRidge, true
	default:
		return 0, false
	}
}

// ParseFractalType returns the fractal type named s, ignoring case.
func ParseFractalType(s string) (FractalType, error) {
	for f := Plain; f <= Ridge; f++ {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFractal, s)
}

// NoiseType selects the gradient noise kernel.
type NoiseType int

const (
	// Perlin is improved Perlin noise.
	Perlin NoiseType = iota
	// Simplex is 3D simplex noise.
	Simplex
)

// String returns the lowercase name of the noise type.
func (n NoiseType) String() string {
	switch n {
	case Perlin:
		return "perlin"
	case Simplex:
		return "simplex"
	default:
		return fmt.Sprintf("NoiseType(%d)", int(n))
	}
}

func (n NoiseType) kind() (kernel.Kind, bool) {
	switch n {
	case Perlin:
		return kernel.KindPerlin, true
	case Simplex:
		return kernel.KindSimplex, true
	default:
		return 0, false
	}
}

// ParseNoiseType returns the noise type named s, ignoring case.
func ParseNoiseType(s string) (NoiseType, error) {
	for n := Perlin; n <= Simplex; n++ {
		if strings.EqualFold(s, n.String()) {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNoise, s)
}
