package parallel

import (
	"runtime"
	"testing"
)

// =============================================================================
// Partition Tests
// =============================================================================

func TestPartition_Coverage(t *testing.T) {
	tests := []struct {
		name    string
		height  int
		workers int
		want    int // expected number of ranges
	}{
		{"single row", 1, 1, 1},
		{"even split", 32, 4, 4},
		{"non-divisor", 32, 3, 3},
		{"non-divisor prime", 97, 7, 7},
		{"more workers than rows", 5, 16, 5},
		{"zero workers", 10, 0, 1},
		{"negative workers", 10, -3, 1},
		{"one worker", 1000, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges := Partition(tt.height, tt.workers)
			if len(ranges) != tt.want {
				t.Fatalf("Partition(%d, %d) returned %d ranges, want %d",
					tt.height, tt.workers, len(ranges), tt.want)
			}

			next := 0
			for i, r := range ranges {
				if r.Start != next {
					t.Errorf("range %d starts at %d, want %d", i, r.Start, next)
				}
				if r.Len() <= 0 {
					t.Errorf("range %d is empty: %+v", i, r)
				}
				next = r.End
			}
			if next != tt.height {
				t.Errorf("ranges end at %d, want %d", next, tt.height)
			}
		})
	}
}

func TestPartition_RemainderGoesLast(t *testing.T) {
	ranges := Partition(10, 3)

	want := []RowRange{{0, 3}, {3, 6}, {6, 10}}
	for i := range want {
		if ranges[i] != want[i] {
			t.Errorf("range %d = %+v, want %+v", i, ranges[i], want[i])
		}
	}
}

func TestPartition_EmptyHeight(t *testing.T) {
	if got := Partition(0, 4); got != nil {
		t.Errorf("Partition(0, 4) = %v, want nil", got)
	}
	if got := Partition(-1, 4); got != nil {
		t.Errorf("Partition(-1, 4) = %v, want nil", got)
	}
}

func TestDefaultWorkers(t *testing.T) {
	if got, want := DefaultWorkers(), runtime.GOMAXPROCS(0); got != want {
		t.Errorf("DefaultWorkers() = %d, want %d (GOMAXPROCS)", got, want)
	}
}
