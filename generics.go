package noise

import "golang.org/x/exp/constraints"

// Clamp restricts v to the inclusive range [lo, hi] for any ordered type.
// The core noise math does not call it: it uses the NaN-aware float64
// clamp in fractal.go instead, since Clamp's ordering comparisons silently
// pass NaN through unclamped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
