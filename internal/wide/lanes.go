package wide

import "math"

// Float is the method set shared by F32x1, F32x4 and F32x8.
// I is the matching mask/index lane type.
type Float[F any, I any] interface {
	// Width returns the number of lanes.
	Width() int
	// Lane returns the value of lane i.
	Lane(i int) float32
	// Splat returns a value with every lane set to x. The receiver is ignored.
	Splat(x float32) F
	// Load reads Width() values from src.
	Load(src []float32) F
	// LoadN reads n values from src and repeats src[n-1] into the remaining lanes.
	LoadN(src []float32, n int) F
	// Store writes all lanes to dst.
	Store(dst []float32)
	// StoreN writes the first n lanes to dst.
	StoreN(dst []float32, n int)

	Add(o F) F
	Sub(o F) F
	Mul(o F) F
	Min(o F) F
	Max(o F) F

	// And, Or and AndNot operate on the IEEE 754 bit patterns.
	// AndNot returns v &^ o.
	And(o F) F
	Or(o F) F
	AndNot(o F) F

	Floor() F
	// ToInt converts each lane to int32, truncating toward zero.
	ToInt() I
	// Bits reinterprets each lane's bit pattern as int32.
	Bits() I

	Lt(o F) I
	Gt(o F) I
	Eq(o F) I
	Neq(o F) I
}

// Int is the method set shared by I32x1, I32x4 and I32x8.
// F is the matching float lane type.
type Int[I any, F any] interface {
	// Splat returns a value with every lane set to x. The receiver is ignored.
	Splat(x int32) I

	Add(o I) I
	Sub(o I) I
	And(o I) I
	Or(o I) I
	// AndNot returns v &^ o.
	AndNot(o I) I

	Lt(o I) I
	Gt(o I) I
	Eq(o I) I

	// ToFloat converts each lane to float32.
	ToFloat() F
	// AsFloat reinterprets each lane's bit pattern as float32.
	AsFloat() F

	// Gather returns table[v[i]] for each lane. Indices must be in range.
	Gather(table []int32) I
	// GatherF32 returns table[v[i]] for each lane. Indices must be in range.
	GatherF32(table []float32) F
}

// Select returns a where mask is all-ones and b where it is zero.
func Select[F Float[F, I], I Int[I, F]](mask I, a, b F) F {
	m := mask.AsFloat()
	return m.And(a).Or(b.AndNot(m))
}

// Abs returns |v| as max(0-v, v).
func Abs[F Float[F, I], I Int[I, F]](v F) F {
	var zero F
	return zero.Sub(v).Max(v)
}

// The helpers below hold the per-lane loops so that each width only declares
// thin methods. dst, a and b always have the same length.

func addF32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subF32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulF32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = float32(a[i] * b[i])
	}
}

func minF32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = min(a[i], b[i])
	}
}

func maxF32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = max(a[i], b[i])
	}
}

func andF32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = math.Float32frombits(math.Float32bits(a[i]) & math.Float32bits(b[i]))
	}
}

func orF32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = math.Float32frombits(math.Float32bits(a[i]) | math.Float32bits(b[i]))
	}
}

func andNotF32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = math.Float32frombits(math.Float32bits(a[i]) &^ math.Float32bits(b[i]))
	}
}

func floorF32(dst, a []float32) {
	for i := range dst {
		dst[i] = float32(math.Floor(float64(a[i])))
	}
}

func toIntF32(dst []int32, a []float32) {
	for i := range dst {
		dst[i] = int32(a[i])
	}
}

func bitsF32(dst []int32, a []float32) {
	for i := range dst {
		dst[i] = int32(math.Float32bits(a[i])) // #nosec G115 -- bit reinterpretation
	}
}

// mask converts a predicate into an all-ones/all-zeros lane.
func mask(b bool) int32 {
	if b {
		return -1
	}
	return 0
}

func ltF32(dst []int32, a, b []float32) {
	for i := range dst {
		dst[i] = mask(a[i] < b[i])
	}
}

func gtF32(dst []int32, a, b []float32) {
	for i := range dst {
		dst[i] = mask(a[i] > b[i])
	}
}

func eqF32(dst []int32, a, b []float32) {
	for i := range dst {
		dst[i] = mask(a[i] == b[i])
	}
}

func neqF32(dst []int32, a, b []float32) {
	for i := range dst {
		dst[i] = mask(a[i] != b[i])
	}
}

func loadNF32(dst, src []float32, n int) {
	copy(dst[:n], src[:n])
	for i := n; i < len(dst); i++ {
		dst[i] = src[n-1]
	}
}

func addI32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subI32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func andI32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

func orI32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

func andNotI32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] &^ b[i]
	}
}

func ltI32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = mask(a[i] < b[i])
	}
}

func gtI32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = mask(a[i] > b[i])
	}
}

func eqI32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = mask(a[i] == b[i])
	}
}

func toFloatI32(dst []float32, a []int32) {
	for i := range dst {
		dst[i] = float32(a[i])
	}
}

func asFloatI32(dst []float32, a []int32) {
	for i := range dst {
		dst[i] = math.Float32frombits(uint32(a[i])) // #nosec G115 -- bit reinterpretation
	}
}

func gatherI32(dst, idx, table []int32) {
	for i := range dst {
		dst[i] = table[idx[i]]
	}
}

func gatherF32(dst []float32, idx []int32, table []float32) {
	for i := range dst {
		dst[i] = table[idx[i]]
	}
}
