package noise

// Gradient vector sets, indexed by a permutation value taken modulo the
// table length (see Engine.Reseed), for spec.md §3 "Gradient tables".
// Values are small integers so that the
// per-corner dot products reduce to additions/subtractions, the same trick
// the teacher's simplex.go uses for its 2D/3D tables.

// grad2Table holds the 12-vector 2D gradient set: four diagonals, four
// horizontals and four verticals (duplicated so a mod-12 index distributes
// evenly across all three families). Grounded on simplex.go's g2d table.
var grad2Table = [12][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
	{0, 1}, {0, -1}, {0, 1}, {0, -1},
}

// grad3Table holds the 12 edge-midpoint vectors of a cube, as spec.md §3
// requires for the 3D gradient set. Grounded on simplex.go's g3d table.
var grad3Table = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// grad4Table holds the 32 permutations of (±1, ±1, ±1, 0) required for 4D
// simplex noise by spec.md §3. There is no teacher analogue for 4D; the
// table is built mechanically below in init so the 32 entries need not be
// hand-transcribed.
var grad4Table [32][4]float64

func init() {
	signs := [2]float64{1, -1}
	idx := 0
	// Every placement of the 0 among 4 slots, times every sign combination
	// of the remaining three ±1 components: 4 * 8 = 32 vectors.
	for zeroAt := 0; zeroAt < 4; zeroAt++ {
		for sa := 0; sa < 2; sa++ {
			for sb := 0; sb < 2; sb++ {
				for sc := 0; sc < 2; sc++ {
					vals := [3]float64{signs[sa], signs[sb], signs[sc]}
					var v [4]float64
					vi := 0
					for comp := 0; comp < 4; comp++ {
						if comp == zeroAt {
							v[comp] = 0
							continue
						}
						v[comp] = vals[vi]
						vi++
					}
					grad4Table[idx] = v
					idx++
				}
			}
		}
	}
}

func dot2(g [2]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}

func dot3(g [3]float64, x, y, z float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z
}

func dot4(g [4]float64, x, y, z, w float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z + g[3]*w
}
