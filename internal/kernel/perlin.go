package kernel

import (
	"math"

	"github.com/gogpu/noise/internal/wide"
)

// perlinScale brings improved 3D noise close to the range of classic Perlin
// noise.
const perlinScale = 0.936

// Perlin evaluates improved Perlin noise at each lane's (x, y, z).
func Perlin[F wide.Float[F, I], I wide.Int[I, F]](x, y, z F) F {
	var f F
	var n I
	one := f.Splat(1)
	mask := n.Splat(0xFF)
	inc := n.Splat(1)

	flx, fly, flz := x.Floor(), y.Floor(), z.Floor()
	ix0, iy0, iz0 := flx.ToInt(), fly.ToInt(), flz.ToInt()

	fx0, fy0, fz0 := x.Sub(flx), y.Sub(fly), z.Sub(flz)
	fx1, fy1, fz1 := fx0.Sub(one), fy0.Sub(one), fz0.Sub(one)

	ix1 := ix0.Add(inc).And(mask)
	iy1 := iy0.Add(inc).And(mask)
	iz1 := iz0.Add(inc).And(mask)
	ix0, iy0, iz0 = ix0.And(mask), iy0.And(mask), iz0.And(mask)

	r := fade[F, I](fz0)
	t := fade[F, I](fy0)
	s := fade[F, I](fx0)

	table := perm[:]
	pz0 := iz0.Gather(table)
	pz1 := iz1.Gather(table)
	py0z0 := iy0.Add(pz0).Gather(table)
	py0z1 := iy0.Add(pz1).Gather(table)
	py1z0 := iy1.Add(pz0).Gather(table)
	py1z1 := iy1.Add(pz1).Gather(table)

	nx0 := lerp[F, I](r, grad[F, I](ix0.Add(py0z0).Gather(table), fx0, fy0, fz0), grad[F, I](ix0.Add(py0z1).Gather(table), fx0, fy0, fz1))
	nx1 := lerp[F, I](r, grad[F, I](ix0.Add(py1z0).Gather(table), fx0, fy1, fz0), grad[F, I](ix0.Add(py1z1).Gather(table), fx0, fy1, fz1))
	n0 := lerp[F, I](t, nx0, nx1)

	nx0 = lerp[F, I](r, grad[F, I](ix1.Add(py0z0).Gather(table), fx1, fy0, fz0), grad[F, I](ix1.Add(py0z1).Gather(table), fx1, fy0, fz1))
	nx1 = lerp[F, I](r, grad[F, I](ix1.Add(py1z0).Gather(table), fx1, fy1, fz0), grad[F, I](ix1.Add(py1z1).Gather(table), fx1, fy1, fz1))
	n1 := lerp[F, I](t, nx0, nx1)

	return f.Splat(perlinScale).Mul(lerp[F, I](s, n0, n1))
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3, evaluated as ((((t*6-15)*t+10)*t)*t)*t.
func fade[F wide.Float[F, I], I wide.Int[I, F]](t F) F {
	var f F
	return t.Mul(f.Splat(6)).Sub(f.Splat(15)).Mul(t).Add(f.Splat(10)).Mul(t).Mul(t).Mul(t)
}

func lerp[F wide.Float[F, I], I wide.Int[I, F]](t, a, b F) F {
	return a.Add(t.Mul(b.Sub(a)))
}

// grad picks one of 12 gradient directions from the low 4 bits of hash and
// returns its dot product with (x, y, z).
func grad[F wide.Float[F, I], I wide.Int[I, F]](hash I, x, y, z F) F {
	var f F
	var n I
	h := hash.And(n.Splat(15))
	zero := n.Splat(0)

	u := wide.Select[F, I](h.Lt(n.Splat(8)), x, y)
	xz := wide.Select[F, I](h.Eq(n.Splat(12)).Or(h.Eq(n.Splat(14))), x, z)
	v := wide.Select[F, I](h.Lt(n.Splat(4)), y, xz)

	negU := h.And(n.Splat(1)).Eq(zero)
	negV := h.And(n.Splat(2)).Eq(zero)
	u = wide.Select[F, I](negU, u, f.Sub(u))
	v = wide.Select[F, I](negV, v, f.Sub(v))
	return u.Add(v)
}

// Perlin3 is the scalar reference for Perlin.
func Perlin3(x, y, z float32) float32 {
	flx := float32(math.Floor(float64(x)))
	fly := float32(math.Floor(float64(y)))
	flz := float32(math.Floor(float64(z)))
	ix0, iy0, iz0 := int32(flx), int32(fly), int32(flz)

	fx0, fy0, fz0 := x-flx, y-fly, z-flz
	fx1, fy1, fz1 := fx0-1, fy0-1, fz0-1

	ix1 := (ix0 + 1) & 0xFF
	iy1 := (iy0 + 1) & 0xFF
	iz1 := (iz0 + 1) & 0xFF
	ix0, iy0, iz0 = ix0&0xFF, iy0&0xFF, iz0&0xFF

	r := fade1(fz0)
	t := fade1(fy0)
	s := fade1(fx0)

	nx0 := lerp1(r, grad1(perm[ix0+perm[iy0+perm[iz0]]], fx0, fy0, fz0), grad1(perm[ix0+perm[iy0+perm[iz1]]], fx0, fy0, fz1))
	nx1 := lerp1(r, grad1(perm[ix0+perm[iy1+perm[iz0]]], fx0, fy1, fz0), grad1(perm[ix0+perm[iy1+perm[iz1]]], fx0, fy1, fz1))
	n0 := lerp1(t, nx0, nx1)

	nx0 = lerp1(r, grad1(perm[ix1+perm[iy0+perm[iz0]]], fx1, fy0, fz0), grad1(perm[ix1+perm[iy0+perm[iz1]]], fx1, fy0, fz1))
	nx1 = lerp1(r, grad1(perm[ix1+perm[iy1+perm[iz0]]], fx1, fy1, fz0), grad1(perm[ix1+perm[iy1+perm[iz1]]], fx1, fy1, fz1))
	n1 := lerp1(t, nx0, nx1)

	return float32(perlinScale * lerp1(s, n0, n1))
}

func fade1(t float32) float32 {
	f := float32(t*6) - 15
	f = float32(f*t) + 10
	f = float32(f * t)
	f = float32(f * t)
	return float32(f * t)
}

func lerp1(t, a, b float32) float32 {
	return a + float32(t*(b-a))
}

func grad1(hash int32, x, y, z float32) float32 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	v := z
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	}
	if h&1 != 0 {
		u = 0 - u
	}
	if h&2 != 0 {
		v = 0 - v
	}
	return u + v
}
