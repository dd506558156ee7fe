// Package kernel implements 3D gradient noise over a fixed permutation table.
//
// Two kernels are provided, improved Perlin noise and simplex noise. Each has
// a generic lane version, instantiated per wide.F32xN type, and a plain
// float32 reference version. For the same input coordinates every lane of the
// lane version equals the reference bit for bit.
//
// All table lookups are masked into [0, 255] before indexing, so any chained
// lookup perm[a+perm[b+perm[c]]] stays inside the 512-entry table.
package kernel
