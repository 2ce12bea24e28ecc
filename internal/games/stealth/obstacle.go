package stealth

import "github.com/vovakirdan/openstate/internal/core"

// MovingWall is a tile-sized block sliding back and forth between two
// tile-aligned pixel positions.
type MovingWall struct {
	From, To core.Vec
	Pos      core.Vec
	Speed    float64
	Delta    core.Vec // Movement on the last Advance; zero on a turnaround
	size     int
	toEnd    bool
}

func newMovingWall(from, to core.Vec, speed float64, size int) *MovingWall {
	return &MovingWall{From: from, To: to, Pos: from, Speed: speed, size: size, toEnd: true}
}

// Advance moves the wall one tick toward its current target, reversing
// direction on the tick it arrives within Speed of it.
func (w *MovingWall) Advance() {
	target := w.From
	if w.toEnd {
		target = w.To
	}

	d := target.Sub(w.Pos)
	dist := d.Len()
	if dist > w.Speed {
		w.Delta = core.Vec{X: d.X / dist * w.Speed, Y: d.Y / dist * w.Speed}
		w.Pos.X += w.Delta.X
		w.Pos.Y += w.Delta.Y
		return
	}
	w.Delta = core.Vec{}
	w.toEnd = !w.toEnd
}

// Retreat undoes the last Advance and turns the wall around.
func (w *MovingWall) Retreat() {
	w.Pos = w.Pos.Sub(w.Delta)
	w.Delta = core.Vec{}
	w.toEnd = !w.toEnd
}

// Rect returns the wall's current collision box.
func (w *MovingWall) Rect() core.Rect {
	return core.NewRect(int(w.Pos.X), int(w.Pos.Y), w.size, w.size)
}

// Scroll is a collectible.
type Scroll struct {
	rect core.Rect
}

// Rect returns the scroll's box.
func (s Scroll) Rect() core.Rect {
	return s.rect
}

// reachedBy reports whether the player's center is within radius of the
// scroll's center on both axes (exclusive).
func (s Scroll) reachedBy(p core.Rect, radius int) bool {
	px, py := p.Center()
	sx, sy := s.rect.Center()
	return core.Abs(px-sx) < radius && core.Abs(py-sy) < radius
}
