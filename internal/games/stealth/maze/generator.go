package maze

import "math/rand"

// Generate builds a w×h maze: a spanning tree carved on odd coordinates,
// then hiding spots, extra loops and a few open rooms. Dimensions below 1
// are raised to 1. Generation never fails; grids too small for a pass
// simply skip it.
func Generate(w, h int, rng *rand.Rand) *Grid {
	g := NewGrid(w, h)
	carve(g, rng)
	addHidingSpots(g, rng)
	addPaths(g, rng)
	openAreas(g, rng)
	return g
}

// oddSpan returns the largest odd number ≤ n.
func oddSpan(n int) int {
	if n%2 == 1 {
		return n
	}
	return n - 1
}

// randBetween returns a uniform int in [lo, hi]. The caller guarantees lo <= hi.
func randBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

var jumps = [4]Point{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

// carve runs an iterative randomized depth-first search over cells two apart,
// clearing each visited cell and the wall between it and its parent.
func carve(g *Grid, rng *rand.Rand) {
	wOdd, hOdd := oddSpan(g.W), oddSpan(g.H)
	if wOdd < 3 || hOdd < 3 {
		return
	}

	start := Point{
		X: 1 + 2*rng.Intn((wOdd-1)/2),
		Y: 1 + 2*rng.Intn((hOdd-1)/2),
	}
	g.Set(start.X, start.Y, Empty)

	stack := []Point{start}
	var next []Point
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		next = next[:0]
		for _, j := range jumps {
			nx, ny := cur.X+j.X, cur.Y+j.Y
			if nx >= 1 && nx < g.W-1 && ny >= 1 && ny < g.H-1 && g.At(nx, ny) == Wall {
				next = append(next, Point{X: nx, Y: ny})
			}
		}

		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		n := next[rng.Intn(len(next))]
		g.Set(n.X, n.Y, Empty)
		g.Set((cur.X+n.X)/2, (cur.Y+n.Y)/2, Empty)
		stack = append(stack, n)
	}
}

// addHidingSpots samples (w*h)/15 interior cells and turns the empty ones
// into hiding spots.
func addHidingSpots(g *Grid, rng *rand.Rand) {
	if g.W < 3 || g.H < 3 {
		return
	}
	for range g.W * g.H / 15 {
		x := randBetween(rng, 1, g.W-2)
		y := randBetween(rng, 1, g.H-2)
		if g.At(x, y) == Empty {
			g.Set(x, y, HideSpot)
		}
	}
}

// addPaths knocks out (w*h)/20 sampled walls that already touch at least two
// empty cells, adding loops to the spanning tree. Hiding spots do not count
// as empty neighbors.
func addPaths(g *Grid, rng *rand.Rand) {
	if g.W < 5 || g.H < 5 {
		return
	}
	for range g.W * g.H / 20 {
		x := randBetween(rng, 2, g.W-3)
		y := randBetween(rng, 2, g.H-3)
		if g.At(x, y) != Wall {
			continue
		}

		open := 0
		for _, d := range dirs4 {
			if g.At(x+d.X, y+d.Y) == Empty {
				open++
			}
		}
		if open >= 2 {
			g.Set(x, y, Empty)
		}
	}
}

// openAreas clears roughly 70% of the walls in a few square patches of
// radius 2 or 3. The outer border is never touched.
func openAreas(g *Grid, rng *rand.Rand) {
	if g.W < 7 || g.H < 7 {
		return
	}
	for range max(2, g.W*g.H/100) {
		cx := randBetween(rng, 3, g.W-4)
		cy := randBetween(rng, 3, g.H-4)
		r := randBetween(rng, 2, 3)

		for y := cy - r; y <= cy+r; y++ {
			for x := cx - r; x <= cx+r; x++ {
				if x <= 0 || x >= g.W-1 || y <= 0 || y >= g.H-1 {
					continue
				}
				if g.At(x, y) == Wall && rng.Float64() < 0.7 {
					g.Set(x, y, Empty)
				}
			}
		}
	}
}
