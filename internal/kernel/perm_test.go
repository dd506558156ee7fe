package kernel

import "testing"

func TestTableIsDoubledPermutation(t *testing.T) {
	table := Table()

	var seen [256]bool
	for i := 0; i < 256; i++ {
		v := table[i]
		if v < 0 || v > 255 {
			t.Fatalf("table[%d] = %d out of [0, 255]", i, v)
		}
		if seen[v] {
			t.Fatalf("value %d repeated", v)
		}
		seen[v] = true
		if table[i+256] != v {
			t.Errorf("table[%d] = %d, want %d", i+256, table[i+256], v)
		}
	}

	if table[0] != 151 || table[255] != 180 {
		t.Errorf("table ends = %d, %d, want 151, 180", table[0], table[255])
	}
}

func TestHashStaysInTable(t *testing.T) {
	step := 1
	if testing.Short() {
		step = 7
	}

	for ix := int32(0); ix < 256; ix += int32(step) {
		for iy := int32(0); iy < 256; iy++ {
			for iz := int32(0); iz < 256; iz++ {
				if h := Hash(ix, iy, iz); h < 0 || h > 255 {
					t.Fatalf("Hash(%d, %d, %d) = %d", ix, iy, iz, h)
				}
			}
		}
	}
}

func TestHashMasksInput(t *testing.T) {
	tests := [][3]int32{
		{-1, -1, -1},
		{256, 512, -256},
		{1 << 20, -(1 << 20), 7},
	}

	for _, c := range tests {
		want := Hash(c[0]&0xFF, c[1]&0xFF, c[2]&0xFF)
		if got := Hash(c[0], c[1], c[2]); got != want {
			t.Errorf("Hash%v = %d, want %d", c, got, want)
		}
	}
}

func TestPermMod12(t *testing.T) {
	mod := permMod12()
	for i, v := range mod {
		if v != perm[i]%12 {
			t.Fatalf("permMod12[%d] = %d, want %d", i, v, perm[i]%12)
		}
	}
	if permMod12() != mod {
		t.Error("permMod12 rebuilt on second call")
	}
}
