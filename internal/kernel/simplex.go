package kernel

import (
	"math"

	"github.com/gogpu/noise/internal/wide"
)

// Skew and unskew factors for three dimensions.
const (
	f3 = float32(1.0 / 3.0)
	g3 = float32(1.0 / 6.0)
)

// simplexScale maps the summed corner contributions to roughly [-1, 1].
const simplexScale = 32

// Components of the 12 gradient directions, the midpoints of a cube's edges.
var (
	gradX = [12]float32{1, -1, 1, -1, 1, -1, 1, -1, 0, 0, 0, 0}
	gradY = [12]float32{1, 1, -1, -1, 0, 0, 0, 0, 1, -1, 1, -1}
	gradZ = [12]float32{0, 0, 0, 0, 1, 1, -1, -1, 1, 1, -1, -1}
)

// Simplex evaluates 3D simplex noise at each lane's (x, y, z).
// The simplex cell is chosen with comparison masks, so the path is the same
// for every lane.
func Simplex[F wide.Float[F, I], I wide.Int[I, F]](x, y, z F) F {
	var f F
	var n I
	ones := n.Splat(-1)
	inc := n.Splat(1)
	mask := n.Splat(0xFF)
	unit := f.Splat(1)

	s := x.Add(y).Add(z).Mul(f.Splat(f3))
	i := x.Add(s).Floor()
	j := y.Add(s).Floor()
	k := z.Add(s).Floor()
	t := i.Add(j).Add(k).Mul(f.Splat(g3))

	x0 := x.Sub(i.Sub(t))
	y0 := y.Sub(j.Sub(t))
	z0 := z.Sub(k.Sub(t))

	geXY := ones.AndNot(x0.Lt(y0))
	geYZ := ones.AndNot(y0.Lt(z0))
	geXZ := ones.AndNot(x0.Lt(z0))

	i1 := geXY.And(geXZ)
	j1 := geYZ.AndNot(geXY)
	k1 := ones.AndNot(geXZ.Or(geYZ))
	i2 := geXY.Or(geXZ)
	j2 := geYZ.Or(ones.AndNot(geXY))
	k2 := ones.AndNot(geXZ.And(geYZ))

	g := f.Splat(g3)
	x1 := x0.Sub(i1.AsFloat().And(unit)).Add(g)
	y1 := y0.Sub(j1.AsFloat().And(unit)).Add(g)
	z1 := z0.Sub(k1.AsFloat().And(unit)).Add(g)

	g = f.Splat(f3)
	x2 := x0.Sub(i2.AsFloat().And(unit)).Add(g)
	y2 := y0.Sub(j2.AsFloat().And(unit)).Add(g)
	z2 := z0.Sub(k2.AsFloat().And(unit)).Add(g)

	half := f.Splat(0.5)
	x3 := x0.Sub(half)
	y3 := y0.Sub(half)
	z3 := z0.Sub(half)

	ii := i.ToInt().And(mask)
	jj := j.ToInt().And(mask)
	kk := k.ToInt().And(mask)

	table := perm[:]
	mod12 := permMod12()[:]
	gi0 := ii.Add(jj.Add(kk.Gather(table)).Gather(table)).Gather(mod12)
	gi1 := ii.Add(i1.And(inc)).Add(jj.Add(j1.And(inc)).Add(kk.Add(k1.And(inc)).Gather(table)).Gather(table)).Gather(mod12)
	gi2 := ii.Add(i2.And(inc)).Add(jj.Add(j2.And(inc)).Add(kk.Add(k2.And(inc)).Gather(table)).Gather(table)).Gather(mod12)
	gi3 := ii.Add(inc).Add(jj.Add(inc).Add(kk.Add(inc).Gather(table)).Gather(table)).Gather(mod12)

	sum := corner[F, I](gi0, x0, y0, z0)
	sum = sum.Add(corner[F, I](gi1, x1, y1, z1))
	sum = sum.Add(corner[F, I](gi2, x2, y2, z2))
	sum = sum.Add(corner[F, I](gi3, x3, y3, z3))
	return f.Splat(simplexScale).Mul(sum)
}

// corner returns one simplex corner's contribution, zero outside radius 0.6.
func corner[F wide.Float[F, I], I wide.Int[I, F]](gi I, x, y, z F) F {
	var f F
	t := f.Splat(0.6).Sub(x.Mul(x)).Sub(y.Mul(y)).Sub(z.Mul(z))
	dot := gi.GatherF32(gradX[:]).Mul(x).
		Add(gi.GatherF32(gradY[:]).Mul(y)).
		Add(gi.GatherF32(gradZ[:]).Mul(z))
	inside := t.Gt(f)
	t = t.Mul(t)
	return wide.Select[F, I](inside, t.Mul(t).Mul(dot), f)
}

// Simplex3 is the scalar reference for Simplex.
func Simplex3(x, y, z float32) float32 {
	s := float32((x + y + z) * f3)
	i := float32(math.Floor(float64(x + s)))
	j := float32(math.Floor(float64(y + s)))
	k := float32(math.Floor(float64(z + s)))
	t := float32((i + j + k) * g3)

	x0 := x - (i - t)
	y0 := y - (j - t)
	z0 := z - (k - t)

	geXY := !(x0 < y0)
	geYZ := !(y0 < z0)
	geXZ := !(x0 < z0)

	i1 := b2i(geXY && geXZ)
	j1 := b2i(geYZ && !geXY)
	k1 := b2i(!(geXZ || geYZ))
	i2 := b2i(geXY || geXZ)
	j2 := b2i(geYZ || !geXY)
	k2 := b2i(!(geXZ && geYZ))

	x1 := x0 - float32(i1) + g3
	y1 := y0 - float32(j1) + g3
	z1 := z0 - float32(k1) + g3

	x2 := x0 - float32(i2) + f3
	y2 := y0 - float32(j2) + f3
	z2 := z0 - float32(k2) + f3

	x3 := x0 - 0.5
	y3 := y0 - 0.5
	z3 := z0 - 0.5

	ii := int32(i) & 0xFF
	jj := int32(j) & 0xFF
	kk := int32(k) & 0xFF

	mod12 := permMod12()
	sum := corner1(mod12[ii+perm[jj+perm[kk]]], x0, y0, z0)
	sum += corner1(mod12[ii+i1+perm[jj+j1+perm[kk+k1]]], x1, y1, z1)
	sum += corner1(mod12[ii+i2+perm[jj+j2+perm[kk+k2]]], x2, y2, z2)
	sum += corner1(mod12[ii+1+perm[jj+1+perm[kk+1]]], x3, y3, z3)
	return float32(simplexScale * sum)
}

func corner1(gi int32, x, y, z float32) float32 {
	t := 0.6 - float32(x*x) - float32(y*y) - float32(z*z)
	dot := float32(gradX[gi]*x) + float32(gradY[gi]*y) + float32(gradZ[gi]*z)
	if t > 0 {
		t = float32(t * t)
		return float32(float32(t*t) * dot)
	}
	return 0
}

func b2i(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
