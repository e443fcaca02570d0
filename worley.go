package noise

import "math"

// Metric selects the distance function Worley2/3 measure cell distances
// with, per spec.md §4.2's recognized metric set.
type Metric int

const (
	Euclidean Metric = iota
	Manhattan
	Chebyshev
)

// ParseMetric maps a string parameter to a Metric, falling back to
// Euclidean for any unrecognized value, as spec.md §6 requires.
func ParseMetric(s string) Metric {
	switch s {
	case "manhattan":
		return Manhattan
	case "chebyshev":
		return Chebyshev
	default:
		return Euclidean
	}
}

func distanceFor(metric Metric, dx, dy float64) float64 {
	switch metric {
	case Manhattan:
		return math.Abs(dx) + math.Abs(dy)
	case Chebyshev:
		return math.Max(math.Abs(dx), math.Abs(dy))
	default:
		return math.Hypot(dx, dy)
	}
}

func distanceFor3(metric Metric, dx, dy, dz float64) float64 {
	switch metric {
	case Manhattan:
		return math.Abs(dx) + math.Abs(dy) + math.Abs(dz)
	case Chebyshev:
		return math.Max(math.Abs(dx), math.Max(math.Abs(dy), math.Abs(dz)))
	default:
		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
}

// featurePoint2 returns the jittered offset of the feature point inside
// lattice cell (cx, cy), using the z-axis of Hash3D purely as an
// independent salt for the second coordinate so the two jitter components
// don't move in lockstep. Per spec.md §9's resolved open question,
// jitter=0 collapses every cell's feature point exactly to its center.
func (e *Engine) featurePoint2(cx, cy int32, jitter float64) (fx, fy float64) {
	if jitter == 0 {
		return 0.5, 0.5
	}
	hx := HashToFloat(e.Hash3D(cx, cy, 0))
	hy := HashToFloat(e.Hash3D(cx, cy, 1))
	return 0.5 + (hx-0.5)*jitter, 0.5 + (hy-0.5)*jitter
}

func (e *Engine) featurePoint3(cx, cy, cz int32, jitter float64) (fx, fy, fz float64) {
	if jitter == 0 {
		return 0.5, 0.5, 0.5
	}
	hx := HashToFloat(e.Hash4D(cx, cy, cz, 0))
	hy := HashToFloat(e.Hash4D(cx, cy, cz, 1))
	hz := HashToFloat(e.Hash4D(cx, cy, cz, 2))
	return 0.5 + (hx-0.5)*jitter, 0.5 + (hy-0.5)*jitter, 0.5 + (hz-0.5)*jitter
}

// packCellID2 folds a 2D integer cell coordinate into a stable int64,
// biasing each axis so ordering comparisons ("lower cell_id") behave
// lexicographically by (cx, cy) across negative and positive cells alike.
// Each axis occupies 21 bits, so this holds only for coordinates in
// [-2^20, 2^20); outside that range distinct cells can share an ID.
func packCellID2(cx, cy int32) int64 {
	const bias = int64(1) << 20
	ux := int64(cx) + bias
	uy := int64(cy) + bias
	return (ux << 21) | uy
}

func packCellID3(cx, cy, cz int32) int64 {
	const bias = int64(1) << 20
	ux := int64(cx) + bias
	uy := int64(cy) + bias
	uz := int64(cz) + bias
	return (ux << 42) | (uy << 21) | uz
}

// Worley2 computes 2D cellular (Voronoi) noise: the distances to the
// nearest and second-nearest feature points among the 3×3 neighboring
// lattice cells, plus the winning cell's stable identifier. Grounded on
// spec.md §4.2's algorithm description; jitter is clamped to [0, 1] and a
// negative jitter saturates to 0 rather than producing negative offsets.
func (e *Engine) Worley2(x, y, jitter float64, metric Metric) (d1, d2 float64, cellID int64) {
	jitter = clamp(jitter, 0, 1)
	ix := floor(x)
	iy := floor(y)

	d1, d2 = math.Inf(1), math.Inf(1)
	haveID := false

	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			cx, cy := ix+dx, iy+dy
			fx, fy := e.featurePoint2(cx, cy, jitter)
			px := float64(cx) + fx
			py := float64(cy) + fy
			d := distanceFor(metric, x-px, y-py)
			id := packCellID2(cx, cy)

			switch {
			case d < d1 || (d == d1 && (!haveID || id < cellID)):
				d2 = d1
				d1 = d
				cellID = id
				haveID = true
			case d < d2:
				d2 = d
			}
		}
	}
	return d1, d2, cellID
}

// Worley3 is the 3D counterpart of Worley2, scanning the 3×3×3 neighbor
// cells.
func (e *Engine) Worley3(x, y, z, jitter float64, metric Metric) (d1, d2 float64, cellID int64) {
	jitter = clamp(jitter, 0, 1)
	ix := floor(x)
	iy := floor(y)
	iz := floor(z)

	d1, d2 = math.Inf(1), math.Inf(1)
	haveID := false

	for dz := int32(-1); dz <= 1; dz++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dx := int32(-1); dx <= 1; dx++ {
				cx, cy, cz := ix+dx, iy+dy, iz+dz
				fx, fy, fz := e.featurePoint3(cx, cy, cz, jitter)
				px := float64(cx) + fx
				py := float64(cy) + fy
				pz := float64(cz) + fz
				d := distanceFor3(metric, x-px, y-py, z-pz)
				id := packCellID3(cx, cy, cz)

				switch {
				case d < d1 || (d == d1 && (!haveID || id < cellID)):
					d2 = d1
					d1 = d
					cellID = id
					haveID = true
				case d < d2:
					d2 = d
				}
			}
		}
	}
	return d1, d2, cellID
}

// ---------------------------------- Global façade ----------------------------------

func Worley2(x, y, jitter float64, metric Metric) (float64, float64, int64) {
	return Default().Worley2(x, y, jitter, metric)
}

func Worley3(x, y, z, jitter float64, metric Metric) (float64, float64, int64) {
	return Default().Worley3(x, y, z, jitter, metric)
}
