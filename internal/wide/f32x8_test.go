package wide

import (
	"math"
	"testing"
)

func TestF32x8_Splat(t *testing.T) {
	tests := []struct {
		name  string
		value float32
	}{
		{"zero", 0.0},
		{"one", 1.0},
		{"half", 0.5},
		{"negative", -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := F32x8{}.Splat(tt.value)
			for i, v := range result {
				if v != tt.value {
					t.Errorf("element %d = %f, want %f", i, v, tt.value)
				}
			}
		})
	}
}

func TestF32x8_Arithmetic(t *testing.T) {
	a := F32x8{1, 2, 3, 4, -1, -2, 0.5, 10}
	b := F32x8{1, 1, 2, 8, 1, -3, 0.25, -10}

	tests := []struct {
		name string
		got  F32x8
		want F32x8
	}{
		{"add", a.Add(b), F32x8{2, 3, 5, 12, 0, -5, 0.75, 0}},
		{"sub", a.Sub(b), F32x8{0, 1, 1, -4, -2, 1, 0.25, 20}},
		{"mul", a.Mul(b), F32x8{1, 2, 6, 32, -1, 6, 0.125, -100}},
		{"min", a.Min(b), F32x8{1, 1, 2, 4, -1, -3, 0.25, -10}},
		{"max", a.Max(b), F32x8{1, 2, 3, 8, 1, -2, 0.5, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestF32x8_Floor(t *testing.T) {
	in := F32x8{0, 0.5, -0.5, 1, -1, -1.5, 255.99, -256}
	want := F32x8{0, 0, -1, 1, -1, -2, 255, -256}

	if got := in.Floor(); got != want {
		t.Errorf("Floor() = %v, want %v", got, want)
	}
}

func TestF32x8_ToInt(t *testing.T) {
	in := F32x8{0, 1.9, -1.9, 3, -3, 255, -256, 7.5}
	want := I32x8{0, 1, -1, 3, -3, 255, -256, 7}

	if got := in.ToInt(); got != want {
		t.Errorf("ToInt() = %v, want %v", got, want)
	}
}

func TestF32x8_Compare(t *testing.T) {
	a := F32x8{1, 2, 3, 4, 5, 6, 7, 8}
	b := F32x8{2, 2, 2, 2, 9, 9, 0, 8}

	tests := []struct {
		name string
		got  I32x8
		want I32x8
	}{
		{"lt", a.Lt(b), I32x8{-1, 0, 0, 0, -1, -1, 0, 0}},
		{"gt", a.Gt(b), I32x8{0, 0, -1, -1, 0, 0, -1, 0}},
		{"eq", a.Eq(b), I32x8{0, -1, 0, 0, 0, 0, 0, -1}},
		{"neq", a.Neq(b), I32x8{-1, 0, -1, -1, -1, -1, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestF32x8_LoadStore(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}

	v := F32x8{}.Load(src)
	if v != (F32x8{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("Load() = %v", v)
	}

	dst := make([]float32, 8)
	v.Store(dst)
	for i := range dst {
		if dst[i] != src[i] {
			t.Errorf("Store()[%d] = %f, want %f", i, dst[i], src[i])
		}
	}
}

func TestF32x8_LoadN(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want F32x8
	}{
		{"one", 1, F32x8{1, 1, 1, 1, 1, 1, 1, 1}},
		{"three", 3, F32x8{1, 2, 3, 3, 3, 3, 3, 3}},
		{"seven", 7, F32x8{1, 2, 3, 4, 5, 6, 7, 7}},
		{"full", 8, F32x8{1, 2, 3, 4, 5, 6, 7, 8}},
	}

	src := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (F32x8{}).LoadN(src[:tt.n], tt.n); got != tt.want {
				t.Errorf("LoadN(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestF32x8_StoreN(t *testing.T) {
	v := F32x8{1, 2, 3, 4, 5, 6, 7, 8}
	dst := []float32{-1, -1, -1, -1}

	v.StoreN(dst, 3)
	want := []float32{1, 2, 3, -1}
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %f, want %f", i, dst[i], want[i])
		}
	}
}

func TestF32x8_Bitwise(t *testing.T) {
	ones := I32x8{}.Splat(-1).AsFloat()
	v := F32x8{1, -2, 3, -4, 0.5, 0, 7, 8}

	if got := v.And(ones); got != v {
		t.Errorf("And(all-ones) = %v, want %v", got, v)
	}
	if got := v.AndNot(ones); got != (F32x8{}) {
		t.Errorf("AndNot(all-ones) = %v, want zeros", got)
	}
	if got := (F32x8{}).Or(v); got != v {
		t.Errorf("zero.Or(v) = %v, want %v", got, v)
	}
	if got := v.Bits().AsFloat(); got != v {
		t.Errorf("Bits().AsFloat() = %v, want %v", got, v)
	}
}

func TestI32x8_Arithmetic(t *testing.T) {
	a := I32x8{0, 1, 255, 256, -1, 12, 14, 15}
	b := I32x8{}.Splat(0xFF)

	if got := a.And(b); got != (I32x8{0, 1, 255, 0, 255, 12, 14, 15}) {
		t.Errorf("And(0xFF) = %v", got)
	}
	if got := a.Add(I32x8{}.Splat(1)); got != (I32x8{1, 2, 256, 257, 0, 13, 15, 16}) {
		t.Errorf("Add(1) = %v", got)
	}
	if got := a.Sub(a); got != (I32x8{}) {
		t.Errorf("Sub(self) = %v", got)
	}
	if got := a.Lt(I32x8{}.Splat(8)); got != (I32x8{-1, -1, 0, 0, -1, 0, 0, 0}) {
		t.Errorf("Lt(8) = %v", got)
	}
	if got := a.Eq(I32x8{}.Splat(12)); got != (I32x8{0, 0, 0, 0, 0, -1, 0, 0}) {
		t.Errorf("Eq(12) = %v", got)
	}
	if got := a.Or(a.AndNot(a)); got != a {
		t.Errorf("Or(AndNot) = %v", got)
	}
}

func TestI32x8_Gather(t *testing.T) {
	table := make([]int32, 16)
	ftable := make([]float32, 16)
	for i := range table {
		table[i] = int32(i * 10)
		ftable[i] = float32(i) / 2
	}

	idx := I32x8{0, 15, 3, 3, 7, 1, 0, 8}
	if got := idx.Gather(table); got != (I32x8{0, 150, 30, 30, 70, 10, 0, 80}) {
		t.Errorf("Gather() = %v", got)
	}
	if got := idx.GatherF32(ftable); got != (F32x8{0, 7.5, 1.5, 1.5, 3.5, 0.5, 0, 4}) {
		t.Errorf("GatherF32() = %v", got)
	}
}

func TestI32x8_ToFloat(t *testing.T) {
	in := I32x8{0, 1, -1, 255, -256, 1 << 20, 42, -42}
	want := F32x8{0, 1, -1, 255, -256, 1 << 20, 42, -42}

	if got := in.ToFloat(); got != want {
		t.Errorf("ToFloat() = %v, want %v", got, want)
	}
}

func TestF32x8_NaNMinMax(t *testing.T) {
	nan := float32(math.NaN())
	v := F32x8{}.Splat(1)
	v[2] = nan

	got := v.Max(F32x8{}.Splat(0))
	if !math.IsNaN(float64(got[2])) {
		t.Errorf("Max(NaN, 0) = %f, want NaN", got[2])
	}
	if got[0] != 1 {
		t.Errorf("Max(1, 0) = %f, want 1", got[0])
	}
}
