package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmoothstep_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, Smoothstep(0, 1, 0))
	assert.Equal(t, 1.0, Smoothstep(0, 1, 1))
	assert.Equal(t, 0.0, Smoothstep(0, 1, -5))
	assert.Equal(t, 1.0, Smoothstep(0, 1, 5))
}

func TestSmoothstep_Symmetry(t *testing.T) {
	for _, t0 := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		assert.InDelta(t, Smoothstep(0, 1, t0), 1-Smoothstep(0, 1, 1-t0), 1e-9)
	}
}

func TestSmootherstep_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, Smootherstep(0, 1, 0))
	assert.Equal(t, 1.0, Smootherstep(0, 1, 1))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 2.0, Lerp(2, 8, 0))
	assert.Equal(t, 8.0, Lerp(2, 8, 1))
	assert.Equal(t, 5.0, Lerp(2, 8, 0.5))
	// linear in t
	assert.InDelta(t, Lerp(2, 8, 0.25)-Lerp(2, 8, 0), Lerp(2, 8, 0.5)-Lerp(2, 8, 0.25), 1e-9)
}

func TestBilerp_Corners(t *testing.T) {
	assert.Equal(t, 1.0, Bilerp(1, 2, 3, 4, 0, 0))
	assert.Equal(t, 2.0, Bilerp(1, 2, 3, 4, 1, 0))
	assert.Equal(t, 3.0, Bilerp(1, 2, 3, 4, 0, 1))
	assert.Equal(t, 4.0, Bilerp(1, 2, 3, 4, 1, 1))
}

func TestTrilerp_Corners(t *testing.T) {
	assert.Equal(t, 1.0, Trilerp(1, 2, 3, 4, 5, 6, 7, 8, 0, 0, 0))
	assert.Equal(t, 8.0, Trilerp(1, 2, 3, 4, 5, 6, 7, 8, 1, 1, 1))
}

func TestCubicInterp_EndpointsApprox(t *testing.T) {
	assert.InDelta(t, 1.0, CubicInterp(0, 1, 2, 3, 0), 1e-9)
	assert.InDelta(t, 2.0, CubicInterp(0, 1, 2, 3, 1), 1e-9)
}

func TestWeightedBlend(t *testing.T) {
	assert.Equal(t, 19.0, WeightedBlend([]float64{10, 20, 30}, []float64{0.2, 0.3, 0.5}))
	assert.InDelta(t, 20.0, WeightedBlend([]float64{10, 20, 30}, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}), 1e-9)
	assert.Equal(t, 0.0, WeightedBlend([]float64{10, 20}, []float64{0, 0}))
}

func TestWeightedBlend_EmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, WeightedBlend(nil, nil))
}

func TestDistanceWeight(t *testing.T) {
	assert.Equal(t, 1.0, DistanceWeight(0, 10))
	assert.Equal(t, 0.0, DistanceWeight(10, 10))
	assert.Equal(t, 0.0, DistanceWeight(20, 10))
	v := DistanceWeight(5, 10)
	assert.Greater(t, v, 0.0)
	assert.Less(t, v, 1.0)
}

// S6
func TestScenario_S6(t *testing.T) {
	assert.Equal(t, 19.0, WeightedBlend([]float64{10, 20, 30}, []float64{0.2, 0.3, 0.5}))
	assert.InDelta(t, 20.0, WeightedBlend([]float64{10, 20, 30}, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}), 1e-9)
	assert.Equal(t, 0.0, WeightedBlend([]float64{10, 20}, []float64{0, 0}))
}
