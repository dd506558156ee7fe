package wide

import (
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"
)

// Width is a supported lane count.
type Width int

// Supported lane widths.
const (
	Width1 Width = 1
	Width4 Width = 4
	Width8 Width = 8
)

// String names the instruction set that backs w on this architecture.
func (w Width) String() string {
	switch w {
	case Width8:
		return "avx2"
	case Width4:
		if runtime.GOARCH == "arm64" {
			return "neon"
		}
		return "sse4.1"
	case Width1:
		return "scalar"
	default:
		return "invalid"
	}
}

// Valid reports whether w is a supported lane width.
func (w Width) Valid() bool {
	return w == Width1 || w == Width4 || w == Width8
}

// detected holds the widest lane type the running CPU can execute natively.
var detected = sync.OnceValue(func() Width {
	switch {
	case cpu.X86.HasAVX2:
		return Width8
	case cpu.X86.HasSSE41:
		return Width4
	case runtime.GOARCH == "arm64" && cpu.ARM64.HasASIMD:
		return Width4
	default:
		return Width1
	}
})

// Detect returns the lane width chosen for this process.
// The CPU is probed once; later calls return the cached result.
func Detect() Width {
	return detected()
}
