package noise

import "math"

// 4D skew/unskent factors for the simplex lattice, same closed forms used
// by the standard Gustavson-style 4D simplex construction referenced in
// spec.md's GLOSSARY ("the minimal N-dimensional analog of a triangle").
// There is no teacher analogue for 4D noise; this file follows the same
// corner-contribution-kernel idiom as Noise2/Noise3 in simplex.go, adapted
// to the rank-based corner ordering 4D simplices require.
var (
	f4 = (math.Sqrt(5) - 1) / 4
	g4 = (5 - math.Sqrt(5)) / 20
)

// Noise4 computes 4D simplex-style gradient noise in [-1, 1].
func (e *Engine) Noise4(x, y, z, w float64) float64 {
	s := (x + y + z + w) * f4
	i := floor(x + s)
	j := floor(y + s)
	k := floor(z + s)
	l := floor(w + s)

	t := float64(i+j+k+l) * g4
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)
	w0 := w - (float64(l) - t)

	// Rank each coordinate by how many of the others it exceeds; the rank
	// determines the traversal order through the 5 simplex corners.
	rankx, ranky, rankz, rankw := 0, 0, 0, 0
	cmp := func(a, b float64) (int, int) {
		if a > b {
			return 1, 0
		}
		return 0, 1
	}
	dx, dy := cmp(x0, y0)
	rankx += dx
	ranky += dy
	dx, dz := cmp(x0, z0)
	rankx += dx
	rankz += dz
	dx, dw := cmp(x0, w0)
	rankx += dx
	rankw += dw
	dy, dz = cmp(y0, z0)
	ranky += dy
	rankz += dz
	dy, dw = cmp(y0, w0)
	ranky += dy
	rankw += dw
	dz, dw = cmp(z0, w0)
	rankz += dz
	rankw += dw

	at := func(rank int) float64 {
		if rank >= 3 {
			return 1
		}
		return 0
	}
	i1, j1, k1, l1 := at(rankx), at(ranky), at(rankz), at(rankw)
	at2 := func(rank int) float64 {
		if rank >= 2 {
			return 1
		}
		return 0
	}
	i2, j2, k2, l2 := at2(rankx), at2(ranky), at2(rankz), at2(rankw)
	at1 := func(rank int) float64 {
		if rank >= 1 {
			return 1
		}
		return 0
	}
	i3, j3, k3, l3 := at1(rankx), at1(ranky), at1(rankz), at1(rankw)

	x1 := x0 - i1 + g4
	y1 := y0 - j1 + g4
	z1 := z0 - k1 + g4
	w1 := w0 - l1 + g4
	x2 := x0 - i2 + 2*g4
	y2 := y0 - j2 + 2*g4
	z2 := z0 - k2 + 2*g4
	w2 := w0 - l2 + 2*g4
	x3 := x0 - i3 + 3*g4
	y3 := y0 - j3 + 3*g4
	z3 := z0 - k3 + 3*g4
	w3 := w0 - l3 + 3*g4
	x4 := x0 - 1 + 4*g4
	y4 := y0 - 1 + 4*g4
	z4 := z0 - 1 + 4*g4
	w4 := w0 - 1 + 4*g4

	si := int32(e.seed)
	ii := (i + si) & 255
	jj := (j + si) & 255
	kk := (k + si) & 255
	ll := (l + si) & 255

	g0 := e.grad4[e.perm4(ii, jj, kk, ll, 0, 0, 0, 0)]
	g1 := e.grad4[e.perm4(ii, jj, kk, ll, int32(i1), int32(j1), int32(k1), int32(l1))]
	g2 := e.grad4[e.perm4(ii, jj, kk, ll, int32(i2), int32(j2), int32(k2), int32(l2))]
	g3 := e.grad4[e.perm4(ii, jj, kk, ll, int32(i3), int32(j3), int32(k3), int32(l3))]
	g4v := e.grad4[e.perm4(ii, jj, kk, ll, 1, 1, 1, 1)]

	var n float64
	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0 - w0*w0; t0 > 0 {
		n += pow4(t0) * dot4(g0, x0, y0, z0, w0)
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1 - w1*w1; t1 > 0 {
		n += pow4(t1) * dot4(g1, x1, y1, z1, w1)
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2 - w2*w2; t2 > 0 {
		n += pow4(t2) * dot4(g2, x2, y2, z2, w2)
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3 - w3*w3; t3 > 0 {
		n += pow4(t3) * dot4(g3, x3, y3, z3, w3)
	}
	if t4 := 0.6 - x4*x4 - y4*y4 - z4*z4 - w4*w4; t4 > 0 {
		n += pow4(t4) * dot4(g4v, x4, y4, z4, w4)
	}

	return clampUnit(27.0 * n)
}

// perm4 chains four permutation lookups for a 4D corner offset, mirroring
// simplex.go's perm3 one dimension further.
func (e *Engine) perm4(ii, jj, kk, ll, di, dj, dk, dl int32) int32 {
	a := e.perm[(ll+dl)&255]
	b := e.perm[(kk+dk+int32(a))&255]
	c := e.perm[(jj+dj+int32(b))&255]
	d := e.perm[(ii+di+int32(c))&255]
	return int32(d)
}

// ---------------------------------- Global façade ----------------------------------

func Noise4(x, y, z, w float64) float64 { return Default().Noise4(x, y, z, w) }
