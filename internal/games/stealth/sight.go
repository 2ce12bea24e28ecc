package stealth

import (
	"iter"

	"github.com/vovakirdan/openstate/internal/core"
)

// linePoints yields the Bresenham points from (x0, y0) to (x1, y1), both
// endpoints included.
func linePoints(x0, y0, x1, y1 int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		dx := core.Abs(x1 - x0)
		dy := core.Abs(y1 - y0)
		sx, sy := 1, 1
		if x0 >= x1 {
			sx = -1
		}
		if y0 >= y1 {
			sy = -1
		}
		err := dx - dy

		for {
			if !yield(x0, y0) {
				return
			}
			if x0 == x1 && y0 == y1 {
				return
			}
			e2 := 2 * err
			if e2 > -dy {
				err -= dy
				x0 += sx
			}
			if e2 < dx {
				err += dx
				y0 += sy
			}
		}
	}
}

// sightBlocked reports whether any point of the segment lies inside a wall.
func sightBlocked(lvl *Level, x0, y0, x1, y1 int) bool {
	for x, y := range linePoints(x0, y0, x1, y1) {
		if lvl.BlockedAt(x, y) {
			return true
		}
	}
	return false
}
