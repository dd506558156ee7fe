package kernel

import "github.com/gogpu/noise/internal/wide"

// Kind selects a noise kernel.
type Kind uint8

const (
	// KindPerlin is improved Perlin gradient noise.
	KindPerlin Kind = iota
	// KindSimplex is 3D simplex noise.
	KindSimplex
)

// String returns the kernel name.
func (k Kind) String() string {
	switch k {
	case KindPerlin:
		return "perlin"
	case KindSimplex:
		return "simplex"
	default:
		return "unknown"
	}
}

// Func is a lane kernel.
type Func[F any] func(x, y, z F) F

// ScalarFunc is a scalar kernel.
type ScalarFunc func(x, y, z float32) float32

// Lanes returns the lane kernel for k, or false if k is unknown.
func Lanes[F wide.Float[F, I], I wide.Int[I, F]](k Kind) (Func[F], bool) {
	switch k {
	case KindPerlin:
		return Perlin[F, I], true
	case KindSimplex:
		return Simplex[F, I], true
	default:
		return nil, false
	}
}

// Scalar returns the scalar kernel for k, or false if k is unknown.
func Scalar(k Kind) (ScalarFunc, bool) {
	switch k {
	case KindPerlin:
		return Perlin3, true
	case KindSimplex:
		return Simplex3, true
	default:
		return nil, false
	}
}
