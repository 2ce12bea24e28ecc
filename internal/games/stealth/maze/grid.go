// Package maze generates the tile grids that stealth levels are built from.
package maze

import "strings"

// Kind is the content of one grid cell.
type Kind uint8

const (
	Wall Kind = iota
	Empty
	HideSpot
	Exit
)

// Rune returns the debug glyph for a cell kind.
func (k Kind) Rune() rune {
	switch k {
	case Wall:
		return '#'
	case Empty:
		return '.'
	case HideSpot:
		return '%'
	case Exit:
		return 'E'
	default:
		return '?'
	}
}

func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Empty:
		return "empty"
	case HideSpot:
		return "hide_spot"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Grid is a row-major array of cell kinds.
type Grid struct {
	W, H  int
	cells []Kind
}

// NewGrid returns a w×h grid filled with walls.
func NewGrid(w, h int) *Grid {
	w, h = max(1, w), max(1, h)
	return &Grid{W: w, H: h, cells: make([]Kind, w*h)}
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the kind at (x, y). Cells outside the grid read as Wall.
func (g *Grid) At(x, y int) Kind {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.W+x]
}

// Set writes a cell. Writes outside the grid are ignored.
func (g *Grid) Set(x, y int, k Kind) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.W+x] = k
}

// Passable reports whether an entity may stand on (x, y).
func (g *Grid) Passable(x, y int) bool {
	return g.At(x, y) != Wall
}

// Count returns how many cells hold the given kind.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, c := range g.cells {
		if c == k {
			n++
		}
	}
	return n
}

var dirs4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Reachable flood-fills passable cells from start and returns the visited set.
// The result is empty if start itself is not passable.
func (g *Grid) Reachable(start Point) map[Point]bool {
	seen := make(map[Point]bool)
	if !g.Passable(start.X, start.Y) {
		return seen
	}

	queue := []Point{start}
	seen[start] = true
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range dirs4 {
			n := Point{X: p.X + d.X, Y: p.Y + d.Y}
			if seen[n] || !g.Passable(n.X, n.Y) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

// String renders the grid one rune per cell, rows separated by newlines.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := range g.H {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range g.W {
			b.WriteRune(g.At(x, y).Rune())
		}
	}
	return b.String()
}
