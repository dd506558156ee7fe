package fractal

import (
	"github.com/gogpu/noise/internal/kernel"
	"github.com/gogpu/noise/internal/wide"
)

// Normalization returns the empirical (offset, scale) pair that maps a
// fractal sum with the given octave count toward [0, 1] as
// (sum + offset) * scale.
func Normalization(octaves int) (offset, scale float32) {
	switch {
	case octaves <= 1:
		return 0, 1.066
	case octaves == 2:
		return 0.073, 0.8584
	case octaves == 3:
		return 0.1189, 0.8120
	case octaves == 4:
		return 0.1440, 0.8083
	case octaves == 5:
		return 0.1530, 0.8049
	default:
		return 0.16, 0.8003
	}
}

// NormalizedLanes wraps fn so that its output is (v + offset) * scale.
func NormalizedLanes[F wide.Float[F, I], I wide.Int[I, F]](fn kernel.Func[F], offset, scale float32) kernel.Func[F] {
	return func(x, y, z F) F {
		v := fn(x, y, z)
		return v.Add(v.Splat(offset)).Mul(v.Splat(scale))
	}
}

// NormalizedScalar wraps fn so that its output is (v + offset) * scale.
func NormalizedScalar(fn kernel.ScalarFunc, offset, scale float32) kernel.ScalarFunc {
	return func(x, y, z float32) float32 {
		return float32((fn(x, y, z) + offset) * scale)
	}
}
