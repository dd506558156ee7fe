package wide

// F32x4 represents 4 float32 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// Four lanes match one SSE or NEON register.
type F32x4 [4]float32

// I32x4 represents 4 int32 values: lattice indices, hashes or lane masks.
type I32x4 [4]int32

// Width returns the number of lanes (4).
func (F32x4) Width() int { return 4 }

// Lane returns the value of lane i.
func (v F32x4) Lane(i int) float32 { return v[i] }

// Splat returns F32x4 with all elements set to x.
// This is useful for initializing constants or broadcasting a single value.
func (F32x4) Splat(x float32) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = x
	}
	return r
}

// Load reads 4 values from src. src must hold at least 4 elements.
func (F32x4) Load(src []float32) F32x4 {
	var r F32x4
	copy(r[:], src[:4])
	return r
}

// LoadN reads the first n values from src and repeats src[n-1] into the
// remaining lanes, so partial batches never see uninitialized data.
func (F32x4) LoadN(src []float32, n int) F32x4 {
	var r F32x4
	loadNF32(r[:], src, n)
	return r
}

// Store writes all 4 lanes to dst.
func (v F32x4) Store(dst []float32) { copy(dst[:4], v[:]) }

// StoreN writes the first n lanes to dst.
func (v F32x4) StoreN(dst []float32, n int) { copy(dst[:n], v[:n]) }

// Add performs element-wise addition.
func (v F32x4) Add(o F32x4) F32x4 {
	var r F32x4
	addF32(r[:], v[:], o[:])
	return r
}

// Sub performs element-wise subtraction.
func (v F32x4) Sub(o F32x4) F32x4 {
	var r F32x4
	subF32(r[:], v[:], o[:])
	return r
}

// Mul performs element-wise multiplication.
// Each product is rounded to float32 before it can feed an addition.
func (v F32x4) Mul(o F32x4) F32x4 {
	var r F32x4
	mulF32(r[:], v[:], o[:])
	return r
}

// Min returns the element-wise minimum.
func (v F32x4) Min(o F32x4) F32x4 {
	var r F32x4
	minF32(r[:], v[:], o[:])
	return r
}

// Max returns the element-wise maximum.
func (v F32x4) Max(o F32x4) F32x4 {
	var r F32x4
	maxF32(r[:], v[:], o[:])
	return r
}

// And returns the bitwise AND of the IEEE 754 bit patterns.
func (v F32x4) And(o F32x4) F32x4 {
	var r F32x4
	andF32(r[:], v[:], o[:])
	return r
}

// Or returns the bitwise OR of the IEEE 754 bit patterns.
func (v F32x4) Or(o F32x4) F32x4 {
	var r F32x4
	orF32(r[:], v[:], o[:])
	return r
}

// AndNot returns v &^ o on the IEEE 754 bit patterns.
func (v F32x4) AndNot(o F32x4) F32x4 {
	var r F32x4
	andNotF32(r[:], v[:], o[:])
	return r
}

// Floor rounds each element toward negative infinity.
func (v F32x4) Floor() F32x4 {
	var r F32x4
	floorF32(r[:], v[:])
	return r
}

// ToInt converts each element to int32, truncating toward zero.
func (v F32x4) ToInt() I32x4 {
	var r I32x4
	toIntF32(r[:], v[:])
	return r
}

// Bits reinterprets each element's bit pattern as int32.
func (v F32x4) Bits() I32x4 {
	var r I32x4
	bitsF32(r[:], v[:])
	return r
}

// Lt returns an all-ones mask where v[i] < o[i].
func (v F32x4) Lt(o F32x4) I32x4 {
	var r I32x4
	ltF32(r[:], v[:], o[:])
	return r
}

// Gt returns an all-ones mask where v[i] > o[i].
func (v F32x4) Gt(o F32x4) I32x4 {
	var r I32x4
	gtF32(r[:], v[:], o[:])
	return r
}

// Eq returns an all-ones mask where v[i] == o[i].
func (v F32x4) Eq(o F32x4) I32x4 {
	var r I32x4
	eqF32(r[:], v[:], o[:])
	return r
}

// Neq returns an all-ones mask where v[i] != o[i].
func (v F32x4) Neq(o F32x4) I32x4 {
	var r I32x4
	neqF32(r[:], v[:], o[:])
	return r
}

// Splat returns I32x4 with all elements set to x.
func (I32x4) Splat(x int32) I32x4 {
	var r I32x4
	for i := range r {
		r[i] = x
	}
	return r
}

// Add performs element-wise addition with wrap-around.
func (v I32x4) Add(o I32x4) I32x4 {
	var r I32x4
	addI32(r[:], v[:], o[:])
	return r
}

// Sub performs element-wise subtraction with wrap-around.
func (v I32x4) Sub(o I32x4) I32x4 {
	var r I32x4
	subI32(r[:], v[:], o[:])
	return r
}

// And performs element-wise bitwise AND.
func (v I32x4) And(o I32x4) I32x4 {
	var r I32x4
	andI32(r[:], v[:], o[:])
	return r
}

// Or performs element-wise bitwise OR.
func (v I32x4) Or(o I32x4) I32x4 {
	var r I32x4
	orI32(r[:], v[:], o[:])
	return r
}

// AndNot returns v &^ o.
func (v I32x4) AndNot(o I32x4) I32x4 {
	var r I32x4
	andNotI32(r[:], v[:], o[:])
	return r
}

// Lt returns an all-ones mask where v[i] < o[i].
func (v I32x4) Lt(o I32x4) I32x4 {
	var r I32x4
	ltI32(r[:], v[:], o[:])
	return r
}

// Gt returns an all-ones mask where v[i] > o[i].
func (v I32x4) Gt(o I32x4) I32x4 {
	var r I32x4
	gtI32(r[:], v[:], o[:])
	return r
}

// Eq returns an all-ones mask where v[i] == o[i].
func (v I32x4) Eq(o I32x4) I32x4 {
	var r I32x4
	eqI32(r[:], v[:], o[:])
	return r
}

// ToFloat converts each element to float32.
func (v I32x4) ToFloat() F32x4 {
	var r F32x4
	toFloatI32(r[:], v[:])
	return r
}

// AsFloat reinterprets each element's bit pattern as float32.
func (v I32x4) AsFloat() F32x4 {
	var r F32x4
	asFloatI32(r[:], v[:])
	return r
}

// Gather returns table[v[i]] for each lane.
func (v I32x4) Gather(table []int32) I32x4 {
	var r I32x4
	gatherI32(r[:], v[:], table)
	return r
}

// GatherF32 returns table[v[i]] for each lane.
func (v I32x4) GatherF32(table []float32) F32x4 {
	var r F32x4
	gatherF32(r[:], v[:], table)
	return r
}
