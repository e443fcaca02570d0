package noise

// Fixed large decorrelation offsets for the two (2D) or three (3D) warp
// vectors, per spec.md §4.4: "fixed large offsets to decorrelate the warp
// vectors from the sampled field." Grounded on other_examples's
// NoiseGenerator.DomainWarp, which uses a single +100 offset; here each
// warp field gets its own non-integer offset (between about 19 and 272
// lattice cells) so the warp fields are not copies of one another or of
// the base field.
const (
	warpAx, warpAy = 19.1, 47.3
	warpBx, warpBy = 113.7, 271.9
	warpCz         = 59.5 // extra 3D offset component
)

// DomainWarp2 evaluates Noise2 at coordinates displaced by two
// independent Noise2 fields, producing organic coordinate distortion
// while keeping the base primitive's [-1, 1] range.
func (e *Engine) DomainWarp2(x, y, strength float64) float64 {
	wx := x + strength*e.Noise2(x+warpAx, y+warpAy)
	wy := y + strength*e.Noise2(x+warpBx, y+warpBy)
	return e.Noise2(wx, wy)
}

// DomainWarp3 is the 3D counterpart of DomainWarp2, using three warp
// offsets.
func (e *Engine) DomainWarp3(x, y, z, strength float64) float64 {
	wx := x + strength*e.Noise3(x+warpAx, y+warpAy, z+warpCz)
	wy := y + strength*e.Noise3(x+warpBx, y+warpBy, z+warpCz*2)
	wz := z + strength*e.Noise3(x+warpCz, y+warpCz*2, z+warpAx)
	return e.Noise3(wx, wy, wz)
}

// ---------------------------------- Global façade ----------------------------------

func DomainWarp2(x, y, strength float64) float64 { return Default().DomainWarp2(x, y, strength) }
func DomainWarp3(x, y, z, strength float64) float64 {
	return Default().DomainWarp3(x, y, z, strength)
}
