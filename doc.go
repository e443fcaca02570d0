// Package noise implements a deterministic, seedable coherent-noise engine:
// gradient and value noise, Worley cellular noise, fractal combinators,
// domain warping, blending utilities, and heightmap erosion.
//
// The package exposes a stateless API centered on *Engine, which owns the
// permutation and gradient tables for a given seed. A package-level default
// Engine is kept behind an atomic pointer so Seed can be called safely
// alongside concurrent reads; construct an explicit Engine with NewEngine
// when isolation from the default engine is required.
package noise
