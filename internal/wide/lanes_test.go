package wide

import "testing"

func TestSelect(t *testing.T) {
	a := F32x8{1, 2, 3, 4, 5, 6, 7, 8}
	b := F32x8{-1, -2, -3, -4, -5, -6, -7, -8}
	m := I32x8{-1, 0, -1, 0, 0, 0, -1, -1}

	want := F32x8{1, -2, 3, -4, -5, -6, 7, 8}
	if got := Select(m, a, b); got != want {
		t.Errorf("Select() = %v, want %v", got, want)
	}
}

func TestAbs(t *testing.T) {
	in := F32x8{0, 1, -1, 0.5, -0.5, 100, -100, -0.25}
	want := F32x8{0, 1, 1, 0.5, 0.5, 100, 100, 0.25}

	if got := Abs[F32x8, I32x8](in); got != want {
		t.Errorf("Abs() = %v, want %v", got, want)
	}
}

// widthProbe evaluates a small expression that exercises every method kind
// and writes one result per input element.
func widthProbe[F Float[F, I], I Int[I, F]](in, out []float32) {
	var z F
	var zi I
	w := z.Width()
	table := []int32{3, 1, 4, 1, 5, 9, 2, 6}
	for x := 0; x < len(in); x += w {
		n := min(w, len(in)-x)
		v := z.LoadN(in[x:], n)
		fl := v.Floor()
		frac := v.Sub(fl)
		idx := fl.ToInt().And(zi.Splat(7))
		g := idx.Gather(table).ToFloat()
		r := Select(frac.Lt(z.Splat(0.5)), frac.Mul(g), Abs[F, I](v))
		r.StoreN(out[x:], n)
	}
}

func TestWidthsAgree(t *testing.T) {
	in := make([]float32, 37)
	for i := range in {
		in[i] = float32(i)*0.37 - 6.1
	}

	out1 := make([]float32, len(in))
	out4 := make([]float32, len(in))
	out8 := make([]float32, len(in))
	widthProbe[F32x1, I32x1](in, out1)
	widthProbe[F32x4, I32x4](in, out4)
	widthProbe[F32x8, I32x8](in, out8)

	for i := range in {
		if out1[i] != out4[i] || out1[i] != out8[i] {
			t.Errorf("element %d: x1=%v x4=%v x8=%v", i, out1[i], out4[i], out8[i])
		}
	}
}
