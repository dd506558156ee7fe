// Package fractal layers octaves of a noise kernel into fractal signals.
package fractal

import (
	"github.com/gogpu/noise/internal/kernel"
	"github.com/gogpu/noise/internal/wide"
)

// Kind selects how octaves are combined.
type Kind uint8

const (
	// KindPlain is a single kernel evaluation at the base frequency.
	KindPlain Kind = iota
	// KindFBM is fractional Brownian motion, a weighted sum of octaves.
	KindFBM
	// KindTurbulence sums the absolute value of each octave.
	KindTurbulence
	// KindRidge builds sharp crests from inverted absolute octaves,
	// each weighted by the previous one.
	KindRidge
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindFBM:
		return "fbm"
	case KindTurbulence:
		return "turbulence"
	case KindRidge:
		return "ridge"
	default:
		return "unknown"
	}
}

// Settings holds the fractal parameters of one sampling call.
// It is read-only once sampling starts.
type Settings struct {
	Frequency  float32
	Lacunarity float32
	Gain       float32
	Offset     float32
	Octaves    int
}

// Resolve returns the variant that actually runs for k at the given octave
// count. FBM and turbulence with a single octave are one kernel evaluation
// at amplitude 1, which is exactly the plain variant. A single ridge octave
// stays a ridge. The second result is false if k is unknown.
func Resolve(k Kind, octaves int) (Kind, bool) {
	switch k {
	case KindPlain, KindRidge:
		return k, true
	case KindFBM, KindTurbulence:
		if octaves == 1 {
			return KindPlain, true
		}
		return k, true
	default:
		return k, false
	}
}

// Lanes composes the lane kernel noise into the variant k.
// k should already be resolved; the second result is false if it is unknown.
func Lanes[F wide.Float[F, I], I wide.Int[I, F]](k Kind, s Settings, noise kernel.Func[F]) (kernel.Func[F], bool) {
	switch k {
	case KindPlain:
		return func(x, y, z F) F {
			freq := x.Splat(s.Frequency)
			return noise(x.Mul(freq), y.Mul(freq), z.Mul(freq))
		}, true

	case KindFBM:
		return func(x, y, z F) F {
			var sum F
			freq, amp := s.Frequency, float32(1)
			for range s.Octaves {
				fv := sum.Splat(freq)
				n := noise(x.Mul(fv), y.Mul(fv), z.Mul(fv))
				sum = sum.Add(n.Mul(sum.Splat(amp)))
				freq = float32(freq * s.Lacunarity)
				amp = float32(amp * s.Gain)
			}
			return sum
		}, true

	case KindTurbulence:
		return func(x, y, z F) F {
			var sum F
			freq, amp := s.Frequency, float32(1)
			for range s.Octaves {
				fv := sum.Splat(freq)
				n := wide.Abs[F, I](noise(x.Mul(fv), y.Mul(fv), z.Mul(fv)))
				sum = sum.Add(n.Mul(sum.Splat(amp)))
				freq = float32(freq * s.Lacunarity)
				amp = float32(amp * s.Gain)
			}
			return sum
		}, true

	case KindRidge:
		return func(x, y, z F) F {
			var sum F
			offset := sum.Splat(s.Offset)
			prev := sum.Splat(1)
			freq, amp := s.Frequency, float32(1)
			for range s.Octaves {
				fv := sum.Splat(freq)
				r := wide.Abs[F, I](noise(x.Mul(fv), y.Mul(fv), z.Mul(fv)))
				r = offset.Sub(r)
				r = r.Mul(r).Mul(sum.Splat(amp)).Mul(prev)
				sum = sum.Add(r)
				prev = r
				freq = float32(freq * s.Lacunarity)
				amp = float32(amp * s.Gain)
			}
			return sum
		}, true

	default:
		return nil, false
	}
}

// Scalar composes the scalar kernel noise into the variant k, performing the
// same float32 operations in the same order as Lanes.
func Scalar(k Kind, s Settings, noise kernel.ScalarFunc) (kernel.ScalarFunc, bool) {
	switch k {
	case KindPlain:
		return func(x, y, z float32) float32 {
			f := s.Frequency
			return noise(float32(x*f), float32(y*f), float32(z*f))
		}, true

	case KindFBM:
		return func(x, y, z float32) float32 {
			var sum float32
			freq, amp := s.Frequency, float32(1)
			for range s.Octaves {
				n := noise(float32(x*freq), float32(y*freq), float32(z*freq))
				sum += float32(n * amp)
				freq = float32(freq * s.Lacunarity)
				amp = float32(amp * s.Gain)
			}
			return sum
		}, true

	case KindTurbulence:
		return func(x, y, z float32) float32 {
			var sum float32
			freq, amp := s.Frequency, float32(1)
			for range s.Octaves {
				n := abs(noise(float32(x*freq), float32(y*freq), float32(z*freq)))
				sum += float32(n * amp)
				freq = float32(freq * s.Lacunarity)
				amp = float32(amp * s.Gain)
			}
			return sum
		}, true

	case KindRidge:
		return func(x, y, z float32) float32 {
			var sum float32
			prev := float32(1)
			freq, amp := s.Frequency, float32(1)
			for range s.Octaves {
				r := abs(noise(float32(x*freq), float32(y*freq), float32(z*freq)))
				r = s.Offset - r
				r = float32(float32(float32(r*r)*amp) * prev)
				sum += r
				prev = r
				freq = float32(freq * s.Lacunarity)
				amp = float32(amp * s.Gain)
			}
			return sum
		}, true

	default:
		return nil, false
	}
}

// abs matches wide.Abs, including the sign of zero.
func abs(v float32) float32 {
	return max(0-v, v)
}
