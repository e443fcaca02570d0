package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFractalParams_Normalize(t *testing.T) {
	p := FractalParams{Octaves: 0, Persistence: -1, Lacunarity: -1}.normalize()
	assert.Equal(t, 1, p.Octaves)
	assert.Equal(t, 0.5, p.Persistence)
	assert.Equal(t, 2.0, p.Lacunarity)
}

func TestDefaultFractalParams(t *testing.T) {
	p := DefaultFractalParams(6)
	assert.Equal(t, 6, p.Octaves)
	assert.Equal(t, 0.5, p.Persistence)
	assert.Equal(t, 2.0, p.Lacunarity)
}

func TestFBM2_Range(t *testing.T) {
	e := NewEngine(1)
	p := DefaultFractalParams(4)
	for i := 1; i <= 100; i++ {
		v := e.FBM2(float64(i)*0.2, float64(i)*0.3, p)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestFBM3_Range(t *testing.T) {
	e := NewEngine(1)
	p := DefaultFractalParams(4)
	v := e.FBM3(1.1, 2.2, 3.3, p)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}

func TestRidged2_Range(t *testing.T) {
	e := NewEngine(1)
	p := DefaultFractalParams(5)
	for i := -30; i <= 30; i++ {
		v := e.Ridged2(float64(i)*0.17, float64(i)*0.31, p)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestBillowy2_Range(t *testing.T) {
	e := NewEngine(1)
	p := DefaultFractalParams(5)
	for i := -30; i <= 30; i++ {
		v := e.Billowy2(float64(i)*0.17, float64(i)*0.31, p)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestTurbulence2_NonNegative(t *testing.T) {
	e := NewEngine(1)
	p := DefaultFractalParams(5)
	for i := -30; i <= 30; i++ {
		v := e.Turbulence2(float64(i)*0.17, float64(i)*0.31, p)
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestSwiss2_Range(t *testing.T) {
	e := NewEngine(1)
	p := DefaultFractalParams(5)
	for i := -20; i <= 20; i++ {
		v := e.Swiss2(float64(i)*0.19, float64(i)*0.23, p)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 2.0)
	}
}

func TestJordan2_Range(t *testing.T) {
	e := NewEngine(1)
	p := DefaultFractalParams(5)
	for i := -20; i <= 20; i++ {
		v := e.Jordan2(float64(i)*0.19, float64(i)*0.23, p)
		assert.GreaterOrEqual(t, v, -10.0)
		assert.LessOrEqual(t, v, 10.0)
	}
}

func TestFBM2_Deterministic(t *testing.T) {
	e := NewEngine(42)
	p := DefaultFractalParams(4)
	assert.Equal(t, e.FBM2(1.5, 2.5, p), e.FBM2(1.5, 2.5, p))
}

func TestFractal_NeverNaN(t *testing.T) {
	e := NewEngine(1)
	p := DefaultFractalParams(4)
	fns := []func() float64{
		func() float64 { return e.FBM2(1, 1, p) },
		func() float64 { return e.Turbulence2(1, 1, p) },
		func() float64 { return e.Ridged2(1, 1, p) },
		func() float64 { return e.Billowy2(1, 1, p) },
		func() float64 { return e.Swiss2(1, 1, p) },
		func() float64 { return e.Jordan2(1, 1, p) },
	}
	for _, fn := range fns {
		assert.False(t, math.IsNaN(fn()))
	}
}

// S3
func TestScenario_S3(t *testing.T) {
	Seed(11111)
	p := DefaultFractalParams(4)
	for i := 1; i <= 100; i++ {
		v := FBM2(float64(i)*0.2, float64(i)*0.3, p)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

// S4
func TestScenario_S4(t *testing.T) {
	Seed(11111)
	p := DefaultFractalParams(4)
	const n = 128
	var min, max, sum float64 = math.Inf(1), math.Inf(-1), 0
	m := Sample(n, n, func(x, y float64) float64 {
		v := FBM2(x*0.05, y*0.05, p)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
		return v
	})
	assert.Equal(t, n*n, len(m.Cells))
	assert.GreaterOrEqual(t, min, 0.0)
	assert.LessOrEqual(t, max, 1.0)
	mean := sum / float64(n*n)
	assert.InDelta(t, 0.5, mean, 0.15)
}
