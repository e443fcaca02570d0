package noise

import "math"

// Simplex skew/unskew factors, computed from their closed forms rather
// than transcribed as decimal literals (teacher's simplex.go hardcodes
// float32 truncations of these same constants).
var (
	f2 = 0.5 * (math.Sqrt(3) - 1)
	g2 = (3 - math.Sqrt(3)) / 6
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0
)

// pow4 raises v to the 4th power, used by the simplex radial falloff
// kernel. Grounded on simplex.go's pow4.
func pow4(v float64) float64 {
	v *= v
	return v * v
}

// floor is an allocation-free integer floor, grounded on simplex.go's floor
// (there implemented for float32; here for float64).
func floor(x float64) int32 {
	v := int32(x)
	if x < float64(v) {
		return v - 1
	}
	return v
}

// Noise2 computes 2D simplex-style gradient noise in [-1, 1], seeded by e.
// Algorithm grounded on simplex.go's noise2D: skew to the simplex lattice,
// pick the enclosing triangle by comparing the skewed fractional
// coordinates, then sum the pow4(r²-d²) gradient contributions of the
// three corners.
func (e *Engine) Noise2(x, y float64) float64 {
	s := (x + y) * f2
	i := floor(x + s)
	j := floor(y + s)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	var i1, j1 float64
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - i1 + g2
	y1 := y0 - j1 + g2
	cg := 2*g2 - 1
	x2 := x0 + cg
	y2 := y0 + cg

	si := int32(e.seed)
	gi0 := e.gradIndex2(i+si, j+si, 0, 0)
	gi1 := e.gradIndex2(i+si, j+si, int32(i1), int32(j1))
	gi2 := e.gradIndex2(i+si, j+si, 1, 1)

	var n float64
	if t0 := 0.5 - x0*x0 - y0*y0; t0 > 0 {
		n += pow4(t0) * dot2(gi0, x0, y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 > 0 {
		n += pow4(t1) * dot2(gi1, x1, y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 > 0 {
		n += pow4(t2) * dot2(gi2, x2, y2)
	}

	return clampUnit(70.0 * n)
}

// gradIndex2 looks up the 2D gradient for the corner offset (di, dj) from
// the base cell (i, j), chaining through the permutation table the same
// way simplex.go's noise2D does via pp/gg slices.
func (e *Engine) gradIndex2(i, j, di, dj int32) [2]float64 {
	jj := (j + dj) & 255
	p := e.perm[jj]
	ii := (i + di + int32(p)) & 511
	return e.grad2[ii]
}

// Noise3 computes 3D simplex-style gradient noise in [-1, 1].
// Grounded on simplex.go's noise3D (corner ordering via pairwise
// comparisons of the skewed coordinates).
func (e *Engine) Noise3(x, y, z float64) float64 {
	s := (x + y + z) * f3
	i := floor(x + s)
	j := floor(y + s)
	k := floor(z + s)

	t := float64(i+j+k) * g3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	var i1, j1, k1 float64
	var i2, j2, k2 float64

	if x0 >= y0 {
		if y0 >= z0 {
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 1, 0
		} else if x0 >= z0 {
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 0, 1
		} else {
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 1, 0, 1
		}
	} else {
		if y0 < z0 {
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 0, 1, 1
		} else if x0 < z0 {
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 0, 1, 1
		} else {
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 1, 1, 0
		}
	}

	x1 := x0 - i1 + g3
	y1 := y0 - j1 + g3
	z1 := z0 - k1 + g3
	x2 := x0 - i2 + 2.0*g3
	y2 := y0 - j2 + 2.0*g3
	z2 := z0 - k2 + 2.0*g3
	x3 := x0 - 1.0 + 3.0*g3
	y3 := y0 - 1.0 + 3.0*g3
	z3 := z0 - 1.0 + 3.0*g3

	si := int32(e.seed)
	ii := (i + si) & 255
	jj := (j + si) & 255
	kk := (k + si) & 255

	gi0 := e.grad3[e.perm3(ii, jj, kk, 0, 0, 0)]
	gi1 := e.grad3[e.perm3(ii, jj, kk, int32(i1), int32(j1), int32(k1))]
	gi2 := e.grad3[e.perm3(ii, jj, kk, int32(i2), int32(j2), int32(k2))]
	gi3 := e.grad3[e.perm3(ii, jj, kk, 1, 1, 1)]

	var n float64
	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0; t0 > 0 {
		n += pow4(t0) * dot3(gi0, x0, y0, z0)
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1; t1 > 0 {
		n += pow4(t1) * dot3(gi1, x1, y1, z1)
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2; t2 > 0 {
		n += pow4(t2) * dot3(gi2, x2, y2, z2)
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3; t3 > 0 {
		n += pow4(t3) * dot3(gi3, x3, y3, z3)
	}

	return clampUnit(32.0 * n)
}

// perm3 chains three permutation lookups for a 3D corner offset, mirroring
// simplex.go's gi0/gi1/gi2/gi3 computation.
func (e *Engine) perm3(ii, jj, kk, di, dj, dk int32) int32 {
	a := e.perm[(kk+dk)&255]
	b := e.perm[(jj+dj+int32(a))&255]
	c := e.perm[(ii+di+int32(b))&255]
	return int32(c)
}

// clampUnit saturates a value to [-1, 1] so floating point overshoot at
// extreme/very large coordinates never escapes the documented range
// (spec.md §4.2 edge policy).
func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}

// ---------------------------------- Global façade ----------------------------------

func Noise2(x, y float64) float64    { return Default().Noise2(x, y) }
func Noise3(x, y, z float64) float64 { return Default().Noise3(x, y, z) }
