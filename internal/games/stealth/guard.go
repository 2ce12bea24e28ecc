package stealth

import (
	"math"

	"github.com/vovakirdan/openstate/internal/config"
	"github.com/vovakirdan/openstate/internal/core"
)

// GuardState is the behavior a guard is currently running.
type GuardState int

const (
	GuardPatrol GuardState = iota
	GuardAlerted
	GuardPursuing
	GuardReturning
)

func (s GuardState) String() string {
	switch s {
	case GuardPatrol:
		return "patrol"
	case GuardAlerted:
		return "alerted"
	case GuardPursuing:
		return "pursuing"
	case GuardReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// Facing directions in degrees, y pointing down.
const (
	FaceRight = 0
	FaceDown  = 90
	FaceLeft  = 180
	FaceUp    = 270
)

// Guard patrols a fixed route and watches a cone in front of it.
type Guard struct {
	Pos    core.Vec
	Facing float64
	State  GuardState

	route    []core.Vec
	waypoint int
	speed    float64
	size     int
	tuning   config.GuardConfig

	pauseTicks   int
	alertTicks   int
	pursuitTicks int
}

func newGuard(route []core.Vec, speed float64, tuning config.GuardConfig) *Guard {
	return &Guard{
		Pos:    route[0],
		Facing: FaceRight,
		State:  GuardPatrol,
		route:  route,
		speed:  speed,
		size:   tuning.Size,
		tuning: tuning,
	}
}

// Rect returns the guard's box.
func (g *Guard) Rect() core.Rect {
	return core.NewRect(int(g.Pos.X), int(g.Pos.Y), g.size, g.size)
}

// Route returns the patrol waypoints (top-left pixel positions).
func (g *Guard) Route() []core.Vec {
	return g.route
}

// Speed returns the patrol speed in pixels per tick.
func (g *Guard) Speed() float64 {
	return g.speed
}

// Waypoint returns the index of the waypoint the guard is heading to.
func (g *Guard) Waypoint() int {
	return g.waypoint
}

// Update runs one tick of the state machine and then, unless pursuing,
// checks for the player. It reports whether the player was detected.
func (g *Guard) Update(lvl *Level, p *Player) bool {
	switch g.State {
	case GuardPursuing:
		g.pursue(lvl, p)
	case GuardReturning:
		g.returnToRoute()
	case GuardAlerted:
		g.alertTicks--
		if g.alertTicks <= 0 {
			g.State = GuardPatrol
		}
	default:
		g.patrol()
	}

	if g.State == GuardPursuing {
		return false
	}
	return g.detect(lvl, p)
}

func (g *Guard) patrol() {
	if g.pauseTicks > 0 {
		g.pauseTicks--
		return
	}

	target := g.route[g.waypoint]
	if !g.stepToward(target, g.speed) {
		g.pauseTicks = g.tuning.PauseTicks
		g.waypoint = (g.waypoint + 1) % len(g.route)
	}
}

func (g *Guard) pursue(lvl *Level, p *Player) {
	g.pursuitTicks--
	if g.pursuitTicks <= 0 {
		g.State = GuardReturning
		return
	}

	gx, gy := g.Rect().Center()
	px, py := p.Rect().Center()
	if sightBlocked(lvl, gx, gy, px, py) {
		return
	}
	// Aim the guard's center at the player's center.
	target := core.Vec{X: float64(px - g.size/2), Y: float64(py - g.size/2)}
	g.stepToward(target, g.speed*g.tuning.PursuitMultiplier)
}

// returnToRoute walks to the nearest waypoint and resumes patrol from it.
// A guard still carrying alert time stands alert first.
func (g *Guard) returnToRoute() {
	nearest := 0
	best := math.Inf(1)
	for i, wp := range g.route {
		if d := core.Dist(wp.X, wp.Y, g.Pos.X, g.Pos.Y); d < best {
			best, nearest = d, i
		}
	}

	if g.stepToward(g.route[nearest], g.speed) {
		return
	}

	g.waypoint = nearest
	if g.alertTicks > 0 {
		g.State = GuardAlerted
	} else {
		g.State = GuardPatrol
	}
}

// stepToward moves speed pixels toward target and faces the dominant axis.
// It returns false without moving when target is within speed.
func (g *Guard) stepToward(target core.Vec, speed float64) bool {
	d := target.Sub(g.Pos)
	dist := d.Len()
	if dist <= speed {
		return false
	}
	g.Pos.X += d.X / dist * speed
	g.Pos.Y += d.Y / dist * speed
	g.Facing = facingFor(d.X, d.Y)
	return true
}

func facingFor(dx, dy float64) float64 {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return FaceRight
		}
		return FaceLeft
	}
	if dy > 0 {
		return FaceDown
	}
	return FaceUp
}

// Sees reports whether pixel (x, y) is inside the guard's vision cone with
// a clear line of sight. A point at the guard's own center is always seen.
func (g *Guard) Sees(lvl *Level, x, y int) bool {
	gx, gy := g.Rect().Center()
	dx, dy := float64(x-gx), float64(y-gy)
	dist := core.Dist(float64(gx), float64(gy), float64(x), float64(y))
	if dist > g.tuning.VisionRange {
		return false
	}

	if dist > 0 {
		angle := math.Atan2(dy, dx) * 180 / math.Pi
		diff := math.Mod(angle-g.Facing, 360)
		if diff < 0 {
			diff += 360
		}
		half := g.tuning.VisionAngle / 2
		if diff > half && diff < 360-half {
			return false
		}
	}

	return !sightBlocked(lvl, gx, gy, x, y)
}

// detect checks the player against the vision cone and starts pursuit on
// a hit. Hidden players are never seen.
func (g *Guard) detect(lvl *Level, p *Player) bool {
	if p.Hidden {
		return false
	}
	px, py := p.Rect().Center()
	if !g.Sees(lvl, px, py) {
		return false
	}

	g.State = GuardPursuing
	g.pursuitTicks = g.tuning.PursuitTicks
	g.alertTicks = g.tuning.AlertTicks
	return true
}
