package noise

import "math"

// FractalParams bundles the octave/persistence/lacunarity parameters
// shared by every L3 combinator, per spec.md §3's "Fractal parameter
// bundle". Grounded on the teacher's FBM2/FBM.Eval octave loop
// (simplex.go), generalized from three positional float32 args to a named
// struct so the six combinators in spec.md §4.3 can share one type.
type FractalParams struct {
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// DefaultFractalParams returns the spec.md-mandated defaults:
// persistence=0.5, lacunarity=2.0.
func DefaultFractalParams(octaves int) FractalParams {
	return FractalParams{Octaves: octaves, Persistence: 0.5, Lacunarity: 2.0}
}

// normalize applies spec.md §4.3's failure-mode substitutions: octaves < 1
// becomes 1, non-positive persistence/lacunarity fall back to defaults.
func (p FractalParams) normalize() FractalParams {
	if p.Octaves < 1 {
		p.Octaves = 1
	}
	if p.Persistence <= 0 {
		p.Persistence = 0.5
	}
	if p.Lacunarity <= 0 {
		p.Lacunarity = 2.0
	}
	return p
}

// octaveShift decorrelates successive octaves by a large fixed coordinate
// offset per axis, rather than by re-seeding (the teacher's FBM2
// decorrelates by offsetting the *seed* per octave, which doesn't compose
// with an immutable *Engine value here — see DESIGN.md). The offsets are
// large and irrationally-scaled relative to each other so octaves don't
// alias against one another.
func octaveShift(o int) (ox, oy, oz, ow float64) {
	base := float64(o) * 9999.1234
	return base, base * 1.37291, base * 2.11471, base * 3.03941
}

func (e *Engine) accumulate2(x, y float64, p FractalParams, transform func(float64) float64) (sum, totalAmp float64) {
	amp, freq := 1.0, 1.0
	for o := 0; o < p.Octaves; o++ {
		ox, oy, _, _ := octaveShift(o)
		n := e.Noise2(x*freq+ox, y*freq+oy)
		sum += amp * transform(n)
		totalAmp += amp
		freq *= p.Lacunarity
		amp *= p.Persistence
	}
	return sum, totalAmp
}

func (e *Engine) accumulate3(x, y, z float64, p FractalParams, transform func(float64) float64) (sum, totalAmp float64) {
	amp, freq := 1.0, 1.0
	for o := 0; o < p.Octaves; o++ {
		ox, oy, oz, _ := octaveShift(o)
		n := e.Noise3(x*freq+ox, y*freq+oy, z*freq+oz)
		sum += amp * transform(n)
		totalAmp += amp
		freq *= p.Lacunarity
		amp *= p.Persistence
	}
	return sum, totalAmp
}

func identity(n float64) float64 { return n }
func abs64(n float64) float64    { return math.Abs(n) }
func ridgeTransform(n float64) float64 {
	r := 1 - math.Abs(n)
	return r * r
}

// FBM2 computes fractal Brownian motion over Noise2, normalized to [0, 1]
// as spec.md §4.3 requires. Grounded on the teacher's FBM2/FBM.Eval.
func (e *Engine) FBM2(x, y float64, params FractalParams) float64 {
	p := params.normalize()
	sum, total := e.accumulate2(x, y, p, identity)
	v := 0.0
	if total > 0 {
		v = sum / total
	}
	return (v + 1) / 2
}

// FBM3 is the 3D counterpart of FBM2.
func (e *Engine) FBM3(x, y, z float64, params FractalParams) float64 {
	p := params.normalize()
	sum, total := e.accumulate3(x, y, z, p, identity)
	v := 0.0
	if total > 0 {
		v = sum / total
	}
	return (v + 1) / 2
}

// Turbulence2 sums |octave| contributions without amplitude normalization,
// yielding a non-negative value roughly in [0, ~1.5] per spec.md §4.3.
func (e *Engine) Turbulence2(x, y float64, params FractalParams) float64 {
	p := params.normalize()
	sum, _ := e.accumulate2(x, y, p, abs64)
	return sum
}

// Turbulence3 is the 3D counterpart of Turbulence2.
func (e *Engine) Turbulence3(x, y, z float64, params FractalParams) float64 {
	p := params.normalize()
	sum, _ := e.accumulate3(x, y, z, p, abs64)
	return sum
}

// Ridged2 sums (1 - |octave|)² contributions, normalized to [0, 1],
// producing the sharp ridge lines spec.md's GLOSSARY describes.
func (e *Engine) Ridged2(x, y float64, params FractalParams) float64 {
	p := params.normalize()
	sum, total := e.accumulate2(x, y, p, ridgeTransform)
	if total <= 0 {
		return 0
	}
	return clamp01(sum / total)
}

// Ridged3 is the 3D counterpart of Ridged2.
func (e *Engine) Ridged3(x, y, z float64, params FractalParams) float64 {
	p := params.normalize()
	sum, total := e.accumulate3(x, y, z, p, ridgeTransform)
	if total <= 0 {
		return 0
	}
	return clamp01(sum / total)
}

// Billowy2 sums |octave| contributions, normalized to [0, 1], giving the
// puffy "billow" look described in spec.md §4.3.
func (e *Engine) Billowy2(x, y float64, params FractalParams) float64 {
	p := params.normalize()
	sum, total := e.accumulate2(x, y, p, abs64)
	if total <= 0 {
		return 0
	}
	return clamp01(sum / total)
}

// Billowy3 is the 3D counterpart of Billowy2.
func (e *Engine) Billowy3(x, y, z float64, params FractalParams) float64 {
	p := params.normalize()
	sum, total := e.accumulate3(x, y, z, p, abs64)
	if total <= 0 {
		return 0
	}
	return clamp01(sum / total)
}

// Swiss2 is turbulence-of-turbulence over a self-warped input: each
// octave's sample point is displaced by a warp accumulated over the
// earlier octaves (x by their signed noise values, y by a second noise
// sample taken 1000 units away, both scaled by half the octave amplitude)
// before that octave's magnitude is accumulated. Output is
// clamped to spec.md §4.3's documented [0, 2] range. The feedback formula
// is an open question in spec.md §9; this resolves it the way the
// terrain-generation literature commonly does ("swiss" multifractal:
// turbulence plus coordinate feedback), see SPEC_FULL.md §4.3.
func (e *Engine) Swiss2(x, y float64, params FractalParams) float64 {
	p := params.normalize()
	var sum, amp, freq, wx, wy float64
	amp, freq = 1, 1
	for o := 0; o < p.Octaves; o++ {
		ox, oy, _, _ := octaveShift(o)
		n := e.Noise2(x*freq+ox+wx, y*freq+oy+wy)
		sum += amp * math.Abs(n)
		wx += n * amp * 0.5
		wy += e.Noise2(x*freq+ox+1000, y*freq+oy+1000) * amp * 0.5
		freq *= p.Lacunarity
		amp *= p.Persistence
	}
	return clamp(sum, 0, 2)
}

// Jordan2 is a ridged multifractal with gradient-weighted feedback between
// octaves: each octave's ridge contribution is weighted by the previous
// octave's ridge value and signed by the underlying noise value. Range is
// documented only as roughly [-10, 10] by spec.md §8; the feedback formula
// itself is an open question there, resolved here and recorded in
// DESIGN.md.
func (e *Engine) Jordan2(x, y float64, params FractalParams) float64 {
	p := params.normalize()
	var sum, amp, freq float64 = 0, 1, 1
	prevRidge := 1.0
	for o := 0; o < p.Octaves; o++ {
		ox, oy, _, _ := octaveShift(o)
		n := e.Noise2(x*freq+ox, y*freq+oy)
		ridge := 1 - math.Abs(n)
		ridge *= ridge
		weighted := ridge * prevRidge
		sign := 1.0
		if n < 0 {
			sign = -1.0
		}
		sum += amp * weighted * sign
		prevRidge = ridge
		freq *= p.Lacunarity
		amp *= p.Persistence
	}
	return clamp(sum*10, -10, 10)
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ---------------------------------- Global façade ----------------------------------

func FBM2(x, y float64, p FractalParams) float64         { return Default().FBM2(x, y, p) }
func FBM3(x, y, z float64, p FractalParams) float64       { return Default().FBM3(x, y, z, p) }
func Turbulence2(x, y float64, p FractalParams) float64   { return Default().Turbulence2(x, y, p) }
func Turbulence3(x, y, z float64, p FractalParams) float64 {
	return Default().Turbulence3(x, y, z, p)
}
func Ridged2(x, y float64, p FractalParams) float64   { return Default().Ridged2(x, y, p) }
func Ridged3(x, y, z float64, p FractalParams) float64 { return Default().Ridged3(x, y, z, p) }
func Billowy2(x, y float64, p FractalParams) float64  { return Default().Billowy2(x, y, p) }
func Billowy3(x, y, z float64, p FractalParams) float64 {
	return Default().Billowy3(x, y, z, p)
}
func Swiss2(x, y float64, p FractalParams) float64  { return Default().Swiss2(x, y, p) }
func Jordan2(x, y float64, p FractalParams) float64 { return Default().Jordan2(x, y, p) }
