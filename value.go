package noise

// Value2 computes 2D value noise in [0, 1]: per-lattice-vertex hashed
// scalars, smoothed by the quintic smootherstep interpolation spec.md
// §4.2 requires. Grounded on the teacher's hash-to-scalar style
// (noise.go's Float64), generalized from white noise to lattice-vertex
// interpolation.
func (e *Engine) Value2(x, y float64) float64 {
	ix0 := floor(x)
	iy0 := floor(y)
	ix1 := ix0 + 1
	iy1 := iy0 + 1

	tx := x - float64(ix0)
	ty := y - float64(iy0)
	sx := smootherstep(0, 1, tx)
	sy := smootherstep(0, 1, ty)

	v00 := HashToFloat(e.Hash2D(ix0, iy0))
	v10 := HashToFloat(e.Hash2D(ix1, iy0))
	v01 := HashToFloat(e.Hash2D(ix0, iy1))
	v11 := HashToFloat(e.Hash2D(ix1, iy1))

	return bilerp(v00, v10, v01, v11, sx, sy)
}

// Value3 is the 3D counterpart of Value2, trilinearly interpolating the
// eight cube-corner hashed scalars.
func (e *Engine) Value3(x, y, z float64) float64 {
	ix0 := floor(x)
	iy0 := floor(y)
	iz0 := floor(z)
	ix1 := ix0 + 1
	iy1 := iy0 + 1
	iz1 := iz0 + 1

	tx := x - float64(ix0)
	ty := y - float64(iy0)
	tz := z - float64(iz0)
	sx := smootherstep(0, 1, tx)
	sy := smootherstep(0, 1, ty)
	sz := smootherstep(0, 1, tz)

	v000 := HashToFloat(e.Hash3D(ix0, iy0, iz0))
	v100 := HashToFloat(e.Hash3D(ix1, iy0, iz0))
	v010 := HashToFloat(e.Hash3D(ix0, iy1, iz0))
	v110 := HashToFloat(e.Hash3D(ix1, iy1, iz0))
	v001 := HashToFloat(e.Hash3D(ix0, iy0, iz1))
	v101 := HashToFloat(e.Hash3D(ix1, iy0, iz1))
	v011 := HashToFloat(e.Hash3D(ix0, iy1, iz1))
	v111 := HashToFloat(e.Hash3D(ix1, iy1, iz1))

	return trilerp(v000, v100, v010, v110, v001, v101, v011, v111, sx, sy, sz)
}

// ---------------------------------- Global façade ----------------------------------

func Value2(x, y float64) float64    { return Default().Value2(x, y) }
func Value3(x, y, z float64) float64 { return Default().Value3(x, y, z) }
