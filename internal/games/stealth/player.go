package stealth

import (
	"math"
	"slices"

	"github.com/vovakirdan/openstate/internal/config"
	"github.com/vovakirdan/openstate/internal/core"
)

// Player is the ninja.
type Player struct {
	Pos         core.Vec
	Vel         core.Vec
	FacingRight bool
	Crouching   bool
	Hidden      bool

	size  int
	speed float64
}

func newPlayer(start core.Vec, cfg config.PlayerConfig) *Player {
	return &Player{
		Pos:         start,
		FacingRight: true,
		size:        cfg.Size,
		speed:       cfg.Speed,
	}
}

// Rect returns the player's collision box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(int(p.Pos.X), int(p.Pos.Y), p.size, p.size)
}

// Moving reports whether the current input produced any velocity.
func (p *Player) Moving() bool {
	return p.Vel.X != 0 || p.Vel.Y != 0
}

// ApplyInput sets velocity and stance from the held actions.
func (p *Player) ApplyInput(in core.InputFrame) {
	p.Vel = core.Vec{}
	if in.Has(core.ActionLeft) {
		p.Vel.X = -p.speed
		p.FacingRight = false
	}
	if in.Has(core.ActionRight) {
		p.Vel.X = p.speed
		p.FacingRight = true
	}
	if in.Has(core.ActionUp) {
		p.Vel.Y = -p.speed
	}
	if in.Has(core.ActionDown) {
		p.Vel.Y = p.speed
	}
	p.Crouching = in.Has(core.ActionCrouch)
}

// Move applies velocity one axis at a time, pushing the player out of any
// wall it enters, then clamps to the level bounds.
func (p *Player) Move(lvl *Level) {
	p.Pos.X += p.Vel.X
	r := p.Rect()
	for w := range lvl.Walls() {
		if !r.Intersects(w) {
			continue
		}
		switch {
		case p.Vel.X > 0:
			r.X = w.X - r.W
		case p.Vel.X < 0:
			r.X = w.Right()
		}
		p.Pos.X = float64(r.X)
	}

	p.Pos.Y += p.Vel.Y
	r = p.Rect()
	for w := range lvl.Walls() {
		if !r.Intersects(w) {
			continue
		}
		switch {
		case p.Vel.Y > 0:
			r.Y = w.Y - r.H
		case p.Vel.Y < 0:
			r.Y = w.Bottom()
		}
		p.Pos.Y = float64(r.Y)
	}

	p.Pos.X = core.ClampF(p.Pos.X, 0, float64(lvl.Width-p.size))
	p.Pos.Y = core.ClampF(p.Pos.Y, 0, float64(lvl.Height-p.size))
}

// Displace pushes the player out of any moving wall that slid onto it,
// preferring the wall's direction of travel. When the player has nowhere
// to go the wall backs off instead.
func (p *Player) Displace(lvl *Level) {
	for _, m := range lvl.Moving {
		r, w := p.Rect(), m.Rect()
		if !r.Intersects(w) {
			continue
		}

		placed := false
		for _, c := range pushOut(r, w, m.Delta) {
			if lvl.fits(c) {
				p.Pos = core.Vec{X: float64(c.X), Y: float64(c.Y)}
				placed = true
				break
			}
		}
		if !placed {
			m.Retreat()
		}
	}
}

// pushOut lists the positions where r touches w on each side, the side w
// is moving toward first and the rest by how far r has to move. A moving
// wall never carries the player through to its trailing side.
func pushOut(r, w core.Rect, dir core.Vec) []core.Rect {
	sides := []core.Rect{
		r.Moved(w.Right(), r.Y),
		r.Moved(w.X-r.W, r.Y),
		r.Moved(r.X, w.Bottom()),
		r.Moved(r.X, w.Y-r.H),
	}
	ahead := -1
	switch {
	case math.Abs(dir.X) > math.Abs(dir.Y):
		ahead = 0
		if dir.X < 0 {
			ahead = 1
		}
	case dir.Y != 0:
		ahead = 2
		if dir.Y < 0 {
			ahead = 3
		}
	}

	cost := func(i int) int {
		if i == ahead {
			return -1
		}
		return core.Abs(sides[i].X-r.X) + core.Abs(sides[i].Y-r.Y)
	}
	order := make([]int, 0, len(sides))
	for i := range sides {
		if ahead >= 0 && i == ahead^1 {
			continue
		}
		order = append(order, i)
	}
	slices.SortStableFunc(order, func(a, b int) int { return cost(a) - cost(b) })

	out := make([]core.Rect, 0, len(order))
	for _, i := range order {
		out = append(out, sides[i])
	}
	return out
}

// UpdateHidden marks the player hidden while crouching over a hiding spot.
func (p *Player) UpdateHidden(lvl *Level) {
	p.Hidden = false
	if !p.Crouching {
		return
	}
	r := p.Rect()
	for _, h := range lvl.HideSpots() {
		if r.Intersects(h) {
			p.Hidden = true
			return
		}
	}
}
