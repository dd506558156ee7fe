// Package wide provides fixed-width lane types for batch noise evaluation.
//
// This package implements lane types (F32x1, F32x4, F32x8 and their I32
// counterparts) that are designed to enable Go compiler auto-vectorization.
// By using fixed-size arrays and simple loops, these types allow the compiler
// to generate SIMD instructions on supported architectures (SSE, AVX, NEON).
//
// # Lane Types
//
// F32xN: N float32 values for coordinates, weights and noise values.
// I32xN: N int32 values for lattice indices, hashes and comparison masks.
//
// Comparisons return all-ones (-1) or all-zeros masks as I32xN, so selection
// is a bitwise blend exactly like the hardware intrinsics:
//
//	m := x.Lt(y)
//	v := wide.Select(m, a, b) // a where x < y, b elsewhere
//
// # Generic Kernels
//
// The Float and Int constraints describe the shared method set, so a kernel is
// written once and instantiated per width:
//
//	func Fade[F wide.Float[F, I], I wide.Int[I, F]](t F) F { ... }
//
// # Determinism
//
// Every width produces bit-identical results for the same inputs. Products are
// rounded to float32 explicitly, which forbids the compiler from fusing a
// multiply and an add into one FMA instruction on architectures that have it.
//
// # Width Selection
//
// Detect picks the widest lane type the CPU supports once per process, using
// golang.org/x/sys/cpu. Width1 is the portable fallback.
package wide
