package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/kelindar/bench"
	"github.com/kelindar/noise"
)

func main() {
	bench.Run(func(b *bench.B) {
		runPrimitives(b)
		runFractals(b)
		runWorley(b)
		runErosion(b)
	}, bench.WithDuration(10*time.Millisecond), bench.WithSamples(100))
}

var shapes = []struct {
	name string
	gen  func(int) [][2]float64
}{
	{"seq", dataSeq},
	{"rnd", dataRand},
	{"circ", dataCircle},
}

func runPrimitives(b *bench.B) {
	const size = 1000
	e := noise.NewEngine(0)
	for _, shape := range shapes {
		points := shape.gen(size)
		b.Run(fmt.Sprintf("simplex2 %s (%s)", formatSize(size), shape.name), func(i int) {
			p := points[i%len(points)]
			_ = e.Noise2(p[0], p[1])
		})
		b.Run(fmt.Sprintf("value2 %s (%s)", formatSize(size), shape.name), func(i int) {
			p := points[i%len(points)]
			_ = e.Value2(p[0], p[1])
		})
	}
}

func runFractals(b *bench.B) {
	const size = 1000
	e := noise.NewEngine(0)

	configs := []struct {
		name   string
		params noise.FractalParams
	}{
		{"basic", noise.FractalParams{Octaves: 4, Persistence: 0.5, Lacunarity: 2.0}},
		{"detailed", noise.FractalParams{Octaves: 6, Persistence: 0.5, Lacunarity: 2.0}},
		{"rough", noise.FractalParams{Octaves: 4, Persistence: 0.7, Lacunarity: 2.0}},
		{"smooth", noise.FractalParams{Octaves: 4, Persistence: 0.3, Lacunarity: 2.0}},
	}

	for _, config := range configs {
		for _, shape := range shapes {
			points := shape.gen(size)
			name := fmt.Sprintf("fbm2-%s %s (%s)", config.name, formatSize(size), shape.name)
			b.Run(name, func(i int) {
				p := points[i%len(points)]
				_ = e.FBM2(p[0], p[1], config.params)
			})
			name = fmt.Sprintf("ridged2-%s %s (%s)", config.name, formatSize(size), shape.name)
			b.Run(name, func(i int) {
				p := points[i%len(points)]
				_ = e.Ridged2(p[0], p[1], config.params)
			})
		}
	}
}

func runWorley(b *bench.B) {
	const size = 1000
	e := noise.NewEngine(0)
	for _, shape := range shapes {
		points := shape.gen(size)
		name := fmt.Sprintf("worley2 %s (%s)", formatSize(size), shape.name)
		b.Run(name, func(i int) {
			p := points[i%len(points)]
			_, _, _ = e.Worley2(p[0], p[1], 1.0, noise.Euclidean)
		})
	}
}

func runErosion(b *bench.B) {
	sizes := []int{32, 128}
	for _, n := range sizes {
		m := noise.Sample(n, n, func(x, y float64) float64 {
			return noise.Default().Value2(x*0.1, y*0.1)
		})
		name := fmt.Sprintf("hydraulic %dx%d", n, n)
		b.Run(name, func(i int) {
			_ = noise.HydraulicErosionStep(m, 0.3)
		})
	}
}

func formatSize(size int) string {
	if size >= 1e6 {
		return fmt.Sprintf("%.0fM", float64(size)/1e6)
	}
	return fmt.Sprintf("%.0fK", float64(size)/1e3)
}

func dataSeq(n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		f := float64(i)
		pts[i] = [2]float64{f, f}
	}
	return pts
}

func dataRand(n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		pts[i] = [2]float64{rand.Float64(), rand.Float64()}
	}
	return pts
}

func dataCircle(n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(angle), math.Sin(angle)}
	}
	return pts
}
