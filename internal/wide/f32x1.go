package wide

// F32x1 is the single-lane float type. It runs the generic kernels one value
// at a time and is the portable fallback on CPUs without usable vector units.
type F32x1 [1]float32

// I32x1 is the single-lane int type matching F32x1.
type I32x1 [1]int32

func (F32x1) Width() int            { return 1 }
func (v F32x1) Lane(i int) float32  { return v[i] }
func (F32x1) Splat(x float32) F32x1 { return F32x1{x} }

func (F32x1) Load(src []float32) F32x1 { return F32x1{src[0]} }

// LoadN reads src[0]. n must be 1.
func (F32x1) LoadN(src []float32, n int) F32x1 { return F32x1{src[n-1]} }
func (v F32x1) Store(dst []float32)            { dst[0] = v[0] }
func (v F32x1) StoreN(dst []float32, n int)    { copy(dst[:n], v[:n]) }

func (v F32x1) Add(o F32x1) F32x1 {
	var r F32x1
	addF32(r[:], v[:], o[:])
	return r
}

func (v F32x1) Sub(o F32x1) F32x1 {
	var r F32x1
	subF32(r[:], v[:], o[:])
	return r
}

func (v F32x1) Mul(o F32x1) F32x1 {
	var r F32x1
	mulF32(r[:], v[:], o[:])
	return r
}

func (v F32x1) Min(o F32x1) F32x1 {
	var r F32x1
	minF32(r[:], v[:], o[:])
	return r
}

func (v F32x1) Max(o F32x1) F32x1 {
	var r F32x1
	maxF32(r[:], v[:], o[:])
	return r
}

func (v F32x1) And(o F32x1) F32x1 {
	var r F32x1
	andF32(r[:], v[:], o[:])
	return r
}

func (v F32x1) Or(o F32x1) F32x1 {
	var r F32x1
	orF32(r[:], v[:], o[:])
	return r
}

func (v F32x1) AndNot(o F32x1) F32x1 {
	var r F32x1
	andNotF32(r[:], v[:], o[:])
	return r
}

func (v F32x1) Floor() F32x1 {
	var r F32x1
	floorF32(r[:], v[:])
	return r
}

func (v F32x1) ToInt() I32x1 {
	var r I32x1
	toIntF32(r[:], v[:])
	return r
}

func (v F32x1) Bits() I32x1 {
	var r I32x1
	bitsF32(r[:], v[:])
	return r
}

func (v F32x1) Lt(o F32x1) I32x1  { return I32x1{mask(v[0] < o[0])} }
func (v F32x1) Gt(o F32x1) I32x1  { return I32x1{mask(v[0] > o[0])} }
func (v F32x1) Eq(o F32x1) I32x1  { return I32x1{mask(v[0] == o[0])} }
func (v F32x1) Neq(o F32x1) I32x1 { return I32x1{mask(v[0] != o[0])} }

func (I32x1) Splat(x int32) I32x1      { return I32x1{x} }
func (v I32x1) Add(o I32x1) I32x1      { return I32x1{v[0] + o[0]} }
func (v I32x1) Sub(o I32x1) I32x1      { return I32x1{v[0] - o[0]} }
func (v I32x1) And(o I32x1) I32x1      { return I32x1{v[0] & o[0]} }
func (v I32x1) Or(o I32x1) I32x1       { return I32x1{v[0] | o[0]} }
func (v I32x1) AndNot(o I32x1) I32x1   { return I32x1{v[0] &^ o[0]} }
func (v I32x1) Lt(o I32x1) I32x1       { return I32x1{mask(v[0] < o[0])} }
func (v I32x1) Gt(o I32x1) I32x1       { return I32x1{mask(v[0] > o[0])} }
func (v I32x1) Eq(o I32x1) I32x1       { return I32x1{mask(v[0] == o[0])} }
func (v I32x1) Gather(t []int32) I32x1 { return I32x1{t[v[0]]} }

func (v I32x1) ToFloat() F32x1 {
	var r F32x1
	toFloatI32(r[:], v[:])
	return r
}

func (v I32x1) AsFloat() F32x1 {
	var r F32x1
	asFloatI32(r[:], v[:])
	return r
}

func (v I32x1) GatherF32(t []float32) F32x1 { return F32x1{t[v[0]]} }
