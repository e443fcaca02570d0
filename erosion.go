package noise

import "math"

// Heightmap is a row-major 2D scalar field, per spec.md §3. Every L6
// operation returns a new Heightmap of identical dimensions; none mutate
// their input. There is no teacher analogue for a dense 2D grid type —
// this is new code, laid out as a flat slice (rather than [][]float64) to
// keep each erosion step a single allocation, in the same near-zero-alloc
// spirit as the teacher's benchmarked hot paths (noise_test.go's
// "0 B/op" results).
type Heightmap struct {
	W, H  int
	Cells []float64
}

// NewHeightmap allocates a zeroed Heightmap. Non-positive dimensions yield
// an empty Heightmap (W=H=0, nil Cells), per spec.md §7's "degenerate
// input -> safe default, never raise" policy.
func NewHeightmap(w, h int) *Heightmap {
	if w <= 0 || h <= 0 {
		return &Heightmap{}
	}
	return &Heightmap{W: w, H: h, Cells: make([]float64, w*h)}
}

// Sample fills a new Heightmap by calling fn once per cell, supplementing
// spec.md with the common "heightmap-from-sampler" convenience other
// procedural-generation code in the pack exposes (other_examples's
// NoiseGenerator.CreateNoiseTexture/CreateHeightmap).
func Sample(w, h int, fn func(x, y float64) float64) *Heightmap {
	m := NewHeightmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Cells[y*w+x] = fn(float64(x), float64(y))
		}
	}
	return m
}

// At reads a cell with replicate-edge (clamp-to-border) boundary policy,
// per spec.md §4.6.
func (m *Heightmap) At(x, y int) float64 {
	if m.W <= 0 || m.H <= 0 {
		return 0
	}
	if x < 0 {
		x = 0
	} else if x >= m.W {
		x = m.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= m.H {
		y = m.H - 1
	}
	return m.Cells[y*m.W+x]
}

func (m *Heightmap) clone() *Heightmap {
	out := NewHeightmap(m.W, m.H)
	copy(out.Cells, m.Cells)
	return out
}

func (m *Heightmap) set(x, y int, v float64) {
	m.Cells[y*m.W+x] = v
}

// HydraulicErosionStep runs one iteration of a coarse hydraulic model: each
// cell transfers rate*slope of material toward its lowest 4-neighbor,
// capped at half the height difference so no cell can cross below its
// lowest neighbor's floor. Flat terrain is a fixed point; strict local
// maxima surrounded by strictly lower neighbors always lose height.
func HydraulicErosionStep(m *Heightmap, rate float64) *Heightmap {
	if m.W <= 0 || m.H <= 0 {
		return &Heightmap{}
	}
	out := m.clone()
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			h := m.At(x, y)
			lowest, lx, ly := h, x, y
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				if nh := m.At(x+d[0], y+d[1]); nh < lowest {
					lowest, lx, ly = nh, x+d[0], y+d[1]
				}
			}
			if lowest < h {
				slope := h - lowest
				transfer := rate * slope
				if max := slope / 2; transfer > max {
					transfer = max
				}
				out.Cells[y*m.W+x] -= transfer
				out.Cells[ly*m.W+lx] += transfer
			}
		}
	}
	return out
}

// ThermalErosionStep applies Musgrave-style thermal erosion: wherever the
// steepest drop to a 4-neighbor exceeds talusAngle, half the excess above
// the threshold is removed from the cell. Never raises a local maximum;
// flat terrain is a fixed point.
func ThermalErosionStep(m *Heightmap, talusAngle float64) *Heightmap {
	if m.W <= 0 || m.H <= 0 {
		return &Heightmap{}
	}
	out := m.clone()
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			h := m.At(x, y)
			maxDrop := 0.0
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				if drop := h - m.At(x+d[0], y+d[1]); drop > maxDrop {
					maxDrop = drop
				}
			}
			if maxDrop > talusAngle {
				excess := maxDrop - talusAngle
				out.set(x, y, h-excess*0.5)
			} else {
				out.set(x, y, h)
			}
		}
	}
	return out
}

// ApplyErosionMask attenuates each cell by intensity times its local slope
// magnitude (central-difference gradient norm), per spec.md §4.6.
func ApplyErosionMask(m *Heightmap, intensity float64) *Heightmap {
	if m.W <= 0 || m.H <= 0 {
		return &Heightmap{}
	}
	out := m.clone()
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			h := m.At(x, y)
			dx := (m.At(x+1, y) - m.At(x-1, y)) / 2
			dy := (m.At(x, y+1) - m.At(x, y-1)) / 2
			slope := math.Hypot(dx, dy)
			out.set(x, y, h-intensity*slope)
		}
	}
	return out
}

// SedimentDeposition fills valleys: any cell strictly lower than one or
// more of its 4-neighbors is raised toward the weighted average of those
// higher neighbors (weighted by how much higher they are), scaled by
// amount. Local maxima (no higher neighbor) are left untouched, and no
// strict local minimum ever decreases.
func SedimentDeposition(m *Heightmap, amount float64) *Heightmap {
	if m.W <= 0 || m.H <= 0 {
		return &Heightmap{}
	}
	out := m.clone()
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			h := m.At(x, y)
			var sumWeight, sumWeighted float64
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nh := m.At(x+d[0], y+d[1])
				if nh > h {
					w := nh - h
					sumWeight += w
					sumWeighted += w * nh
				}
			}
			if sumWeight <= 0 {
				out.set(x, y, h)
				continue
			}
			avgHigher := sumWeighted / sumWeight
			out.set(x, y, h+amount*(avgHigher-h))
		}
	}
	return out
}
