package noise

import (
	"image"
	"unsafe"

	"golang.org/x/image/draw"

	"github.com/gogpu/noise/internal/parallel"
)

// Buffer holds one sampled noise field.
//
// Values are stored row-major: cell (x, y) is Data()[y*Width()+x]. The
// backing slice starts on an Align()-byte boundary.
type Buffer struct {
	width  int
	height int
	align  int
	data   []float32
	ext    parallel.Extrema
}

// newBuffer allocates a zeroed buffer whose data starts on an align-byte
// boundary. align must be a positive multiple of 4.
func newBuffer(width, height, align int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		align:  align,
		data:   alignedFloats(width*height, align),
	}
}

// alignedFloats returns n zeroed float32 values whose first element sits on
// an align-byte boundary. The Go heap does not move objects, so the
// alignment holds for the life of the slice.
func alignedFloats(n, align int) []float32 {
	const size = int(unsafe.Sizeof(float32(0)))
	if align <= size {
		return make([]float32, n)
	}
	pad := align / size
	raw := make([]float32, n+pad)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	skip := (align - int(addr%uintptr(align))) % align / size
	return raw[skip : skip+n : skip+n]
}

// Width returns the number of columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return b.height
}

// Len returns the number of cells, Width()*Height().
func (b *Buffer) Len() int {
	return len(b.data)
}

// Align returns the byte alignment of Data()[0].
func (b *Buffer) Align() int {
	return b.align
}

// Data returns the raw values in row-major order.
func (b *Buffer) Data() []float32 {
	return b.data
}

// At returns the value of cell (x, y), or 0 outside the buffer.
func (b *Buffer) At(x, y int) float32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.data[y*b.width+x]
}

// Min returns the smallest value in the buffer.
func (b *Buffer) Min() float32 {
	return b.ext.Min
}

// Max returns the largest value in the buffer.
func (b *Buffer) Max() float32 {
	return b.ext.Max
}

// Image converts the buffer to 16-bit grayscale, stretching [Min, Max] to
// [0, 0xFFFF]. A constant buffer maps to black.
func (b *Buffer) Image() *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, b.width, b.height))

	span := float64(b.ext.Max) - float64(b.ext.Min)
	if span <= 0 {
		return img
	}
	scale := 0xFFFF / span
	for i, v := range b.data {
		g := uint16((float64(v)-float64(b.ext.Min))*scale + 0.5)
		img.Pix[2*i] = uint8(g >> 8)
		img.Pix[2*i+1] = uint8(g)
	}
	return img
}

// Preview returns the buffer's grayscale image resampled to width×height
// with Catmull-Rom filtering.
func (b *Buffer) Preview(width, height int) *image.Gray16 {
	src := b.Image()
	dst := image.NewGray16(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
