package noise

import "math/bits"

// xxhash64 is an unrolled xxh3-compatible finalizer, used here purely as a
// fast integer mixing step for hash_to_float and Worley jitter. Grounded on
// kelindar/noise's noise.go, which uses the same construction for its
// White/Float32/Float64 family.
func xxhash64(v, seed uint64) uint64 {
	x := v ^ (0x1cad21f72c81017c ^ 0xdb979083e96dd4de) + seed
	x ^= bits.RotateLeft64(x, 49) ^ bits.RotateLeft64(x, 24)
	x *= 0x9fb21c651e98df25
	x ^= (x >> 35) + 4
	x *= 0x9fb21c651e98df25
	x ^= (x >> 28)
	return x
}

// Hash2D implements the chained permutation-table hash of spec.md §4.1:
// P[(P[ix&255]+iy)&255]. Integer coordinates wrap mod 256 for any input,
// including negative values, because Go's & on two's-complement integers
// already behaves like a mod-256 mask.
func (e *Engine) Hash2D(ix, iy int32) int32 {
	a := e.perm[ix&255]
	b := e.perm[(int32(a)+iy)&255]
	return int32(b)
}

// Hash3D chains one more permutation lookup than Hash2D.
func (e *Engine) Hash3D(ix, iy, iz int32) int32 {
	a := e.perm[ix&255]
	b := e.perm[(int32(a)+iy)&255]
	c := e.perm[(int32(b)+iz)&255]
	return int32(c)
}

// Hash4D chains one more permutation lookup than Hash3D.
func (e *Engine) Hash4D(ix, iy, iz, iw int32) int32 {
	a := e.perm[ix&255]
	b := e.perm[(int32(a)+iy)&255]
	c := e.perm[(int32(b)+iz)&255]
	d := e.perm[(int32(c)+iw)&255]
	return int32(d)
}

// HashToFloat maps any hash (including the outputs of Hash2D/3D/4D) to a
// uniform-ish float64 in [0, 1), independent of the seed used to produce h
// (the seed dependence already happened when h was computed).
func HashToFloat(h int32) float64 {
	mixed := xxhash64(uint64(uint32(h)), 0x9e3779b97f4a7c15)
	return float64(mixed) / float64(1<<64)
}

// ---------------------------------- Global façade ----------------------------------

func Hash2D(ix, iy int32) int32             { return Default().Hash2D(ix, iy) }
func Hash3D(ix, iy, iz int32) int32         { return Default().Hash3D(ix, iy, iz) }
func Hash4D(ix, iy, iz, iw int32) int32     { return Default().Hash4D(ix, iy, iz, iw) }
