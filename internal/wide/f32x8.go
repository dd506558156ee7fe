package wide

// F32x8 represents 8 float32 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// Eight lanes match one AVX2 register.
type F32x8 [8]float32

// I32x8 represents 8 int32 values: lattice indices, hashes or lane masks.
type I32x8 [8]int32

// Width returns the number of lanes (8).
func (F32x8) Width() int { return 8 }

// Lane returns the value of lane i.
func (v F32x8) Lane(i int) float32 { return v[i] }

// Splat returns F32x8 with all elements set to x.
// This is useful for initializing constants or broadcasting a single value.
func (F32x8) Splat(x float32) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = x
	}
	return r
}

// Load reads 8 values from src. src must hold at least 8 elements.
func (F32x8) Load(src []float32) F32x8 {
	var r F32x8
	copy(r[:], src[:8])
	return r
}

// LoadN reads the first n values from src and repeats src[n-1] into the
// remaining lanes, so partial batches never see uninitialized data.
func (F32x8) LoadN(src []float32, n int) F32x8 {
	var r F32x8
	loadNF32(r[:], src, n)
	return r
}

// Store writes all 8 lanes to dst.
func (v F32x8) Store(dst []float32) { copy(dst[:8], v[:]) }

// StoreN writes the first n lanes to dst.
func (v F32x8) StoreN(dst []float32, n int) { copy(dst[:n], v[:n]) }

// Add performs element-wise addition.
func (v F32x8) Add(o F32x8) F32x8 {
	var r F32x8
	addF32(r[:], v[:], o[:])
	return r
}

// Sub performs element-wise subtraction.
func (v F32x8) Sub(o F32x8) F32x8 {
	var r F32x8
	subF32(r[:], v[:], o[:])
	return r
}

// Mul performs element-wise multiplication.
// Each product is rounded to float32 before it can feed an addition.
func (v F32x8) Mul(o F32x8) F32x8 {
	var r F32x8
	mulF32(r[:], v[:], o[:])
	return r
}

// Min returns the element-wise minimum.
func (v F32x8) Min(o F32x8) F32x8 {
	var r F32x8
	minF32(r[:], v[:], o[:])
	return r
}

// Max returns the element-wise maximum.
func (v F32x8) Max(o F32x8) F32x8 {
	var r F32x8
	maxF32(r[:], v[:], o[:])
	return r
}

// And returns the bitwise AND of the IEEE 754 bit patterns.
func (v F32x8) And(o F32x8) F32x8 {
	var r F32x8
	andF32(r[:], v[:], o[:])
	return r
}

// Or returns the bitwise OR of the IEEE 754 bit patterns.
func (v F32x8) Or(o F32x8) F32x8 {
	var r F32x8
	orF32(r[:], v[:], o[:])
	return r
}

// AndNot returns v &^ o on the IEEE 754 bit patterns.
func (v F32x8) AndNot(o F32x8) F32x8 {
	var r F32x8
	andNotF32(r[:], v[:], o[:])
	return r
}

// Floor rounds each element toward negative infinity.
func (v F32x8) Floor() F32x8 {
	var r F32x8
	floorF32(r[:], v[:])
	return r
}

// ToInt converts each element to int32, truncating toward zero.
func (v F32x8) ToInt() I32x8 {
	var r I32x8
	toIntF32(r[:], v[:])
	return r
}

// Bits reinterprets each element's bit pattern as int32.
func (v F32x8) Bits() I32x8 {
	var r I32x8
	bitsF32(r[:], v[:])
	return r
}

// Lt returns an all-ones mask where v[i] < o[i].
func (v F32x8) Lt(o F32x8) I32x8 {
	var r I32x8
	ltF32(r[:], v[:], o[:])
	return r
}

// Gt returns an all-ones mask where v[i] > o[i].
func (v F32x8) Gt(o F32x8) I32x8 {
	var r I32x8
	gtF32(r[:], v[:], o[:])
	return r
}

// Eq returns an all-ones mask where v[i] == o[i].
func (v F32x8) Eq(o F32x8) I32x8 {
	var r I32x8
	eqF32(r[:], v[:], o[:])
	return r
}

// Neq returns an all-ones mask where v[i] != o[i].
func (v F32x8) Neq(o F32x8) I32x8 {
	var r I32x8
	neqF32(r[:], v[:], o[:])
	return r
}

// Splat returns I32x8 with all elements set to x.
func (I32x8) Splat(x int32) I32x8 {
	var r I32x8
	for i := range r {
		r[i] = x
	}
	return r
}

// Add performs element-wise addition with wrap-around.
func (v I32x8) Add(o I32x8) I32x8 {
	var r I32x8
	addI32(r[:], v[:], o[:])
	return r
}

// Sub performs element-wise subtraction with wrap-around.
func (v I32x8) Sub(o I32x8) I32x8 {
	var r I32x8
	subI32(r[:], v[:], o[:])
	return r
}

// And performs element-wise bitwise AND.
func (v I32x8) And(o I32x8) I32x8 {
	var r I32x8
	andI32(r[:], v[:], o[:])
	return r
}

// Or performs element-wise bitwise OR.
func (v I32x8) Or(o I32x8) I32x8 {
	var r I32x8
	orI32(r[:], v[:], o[:])
	return r
}

// AndNot returns v &^ o.
func (v I32x8) AndNot(o I32x8) I32x8 {
	var r I32x8
	andNotI32(r[:], v[:], o[:])
	return r
}

// Lt returns an all-ones mask where v[i] < o[i].
func (v I32x8) Lt(o I32x8) I32x8 {
	var r I32x8
	ltI32(r[:], v[:], o[:])
	return r
}

// Gt returns an all-ones mask where v[i] > o[i].
func (v I32x8) Gt(o I32x8) I32x8 {
	var r I32x8
	gtI32(r[:], v[:], o[:])
	return r
}

// Eq returns an all-ones mask where v[i] == o[i].
func (v I32x8) Eq(o I32x8) I32x8 {
	var r I32x8
	eqI32(r[:], v[:], o[:])
	return r
}

// ToFloat converts each element to float32.
func (v I32x8) ToFloat() F32x8 {
	var r F32x8
	toFloatI32(r[:], v[:])
	return r
}

// AsFloat reinterprets each element's bit pattern as float32.
func (v I32x8) AsFloat() F32x8 {
	var r F32x8
	asFloatI32(r[:], v[:])
	return r
}

// Gather returns table[v[i]] for each lane.
func (v I32x8) Gather(table []int32) I32x8 {
	var r I32x8
	gatherI32(r[:], v[:], table)
	return r
}

// GatherF32 returns table[v[i]] for each lane.
func (v I32x8) GatherF32(table []float32) F32x8 {
	var r F32x8
	gatherF32(r[:], v[:], table)
	return r
}
